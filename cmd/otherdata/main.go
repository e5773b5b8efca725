package main

import "github.com/rawbytedev/otherdata/cmd/otherdata/cmd"

func main() {
	cmd.Execute()
}
