package cmd

import (
	"fmt"
	"os"

	"github.com/rawbytedev/otherdata"
	"github.com/rawbytedev/otherdata/pkg/frame"
	"github.com/spf13/cobra"
)

func newPackCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "pack [text]",
		Short: "Store a raw payload as a checksummed frame file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if out == "" {
				return fmt.Errorf("--out is required")
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			// reject payloads the codec would not read back
			env := otherdata.NewEnvelope(text, otherdata.ContentTypeCSV)
			if _, err := a.codec().Decode(env); err != nil {
				return err
			}

			w, err := frame.NewWriter(frame.Options{
				Compress:        a.cfg.Frame.Compress,
				MinCompressSize: a.cfg.Frame.MinCompressSize,
			})
			if err != nil {
				return err
			}
			defer w.Close()
			data, err := w.Encode(env)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write frame: %w", err)
			}
			a.logger.Info("packed payload", "path", out, "payload_bytes", len(text), "frame_bytes", len(data))
			return nil
		},
	}
	c.Flags().String("out", "", "frame file to write")
	return c
}

func newUnpackCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "unpack <file>",
		Short: "Read a frame file and print its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read frame: %w", err)
			}
			r, err := frame.NewReader()
			if err != nil {
				return err
			}
			defer r.Close()
			env, err := r.Decode(data)
			if err != nil {
				a.logger.Error("bad frame", "path", args[0], "error", err)
				return err
			}
			if raw, _ := cmd.Flags().GetBool("raw"); raw {
				text, ok := env.Text()
				if !ok {
					return otherdata.ErrNullPayload
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
				return err
			}
			items, err := a.codec().Decode(env)
			if err != nil {
				return err
			}
			return writeItems(cmd.OutOrStdout(), a.cfg.Output.Format, items)
		},
	}
	c.Flags().Bool("raw", false, "print the raw payload instead of items")
	return c
}
