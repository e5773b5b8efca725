package cmd

import (
	"github.com/rawbytedev/otherdata"
	"github.com/spf13/cobra"
)

func newDecodeCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:   "decode [text]",
		Short: "Decode a raw payload into items",
		Long:  "Decode reads the raw payload from the argument or stdin and prints the classified items.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			ctype, _ := cmd.Flags().GetString("content-type")
			cenc, _ := cmd.Flags().GetString("content-encoding")
			if numeric, _ := cmd.Flags().GetBool("numeric"); numeric {
				a.cfg.Codec.Numeric = true
			}

			env := &otherdata.Envelope{RawText: &text, ContentType: ctype, ContentEncoding: cenc}
			items, err := a.codec().Decode(env)
			if err != nil {
				a.logger.Error("decode failed", "content_type", ctype, "error", err)
				return err
			}
			a.logger.Debug("decoded payload", "bytes", len(text), "items", len(items))
			return writeItems(cmd.OutOrStdout(), a.cfg.Output.Format, items)
		},
	}
	c.Flags().String("content-type", otherdata.ContentTypeCSV, "declared content type of the payload")
	c.Flags().String("content-encoding", "", "declared content encoding (empty or base64)")
	c.Flags().Bool("numeric", false, "promote every plain value to a number")
	return c
}
