package cmd

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/otherdata"
	"github.com/spf13/cobra"
)

func newProfileCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:    "profile",
		Short:  "Write a heap profile of an encode/decode loop",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			n, _ := cmd.Flags().GetInt("iterations")
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			prev := runtime.MemProfileRate
			runtime.MemProfileRate = 1
			defer func() { runtime.MemProfileRate = prev }()

			items := otherdata.Items{
				otherdata.NumericValue{Value: 120}, otherdata.NumericValue{Value: 80},
				otherdata.StringValue{Text: "left,arm"},
				otherdata.NamedValue{Name: "pulse", Value: "64"},
			}
			for i := 0; i < n; i++ {
				if _, err := otherdata.Decode(otherdata.Encode(items)); err != nil {
					return err
				}
			}
			if err := pprof.WriteHeapProfile(f); err != nil {
				return fmt.Errorf("write profile: %w", err)
			}
			a.logger.Info("wrote heap profile", "path", out, "iterations", n)
			return nil
		},
	}
	c.Flags().String("out", "mem.prof", "profile output path")
	c.Flags().Int("iterations", 10000, "encode/decode round trips to run")
	return c
}
