package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/rawbytedev/otherdata"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newEncodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [file]",
		Short: "Encode a YAML or JSON item list into a raw payload",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				data []byte
				err  error
			)
			if len(args) > 0 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return fmt.Errorf("read items: %w", err)
			}
			items, err := parseItems(data)
			if err != nil {
				return err
			}
			env := a.codec().Encode(items)
			text, _ := env.Text()
			a.logger.Debug("encoded items", "items", len(items), "bytes", len(text))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

// parseItems accepts YAML, and JSON as its subset.
func parseItems(data []byte) (otherdata.Items, error) {
	var recs []itemRecord
	if err := yaml.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	return fromRecords(recs)
}
