package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rawbytedev/otherdata"
	"github.com/rawbytedev/otherdata/internal/config"
	"github.com/rawbytedev/otherdata/internal/logging"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration between the root pre-run hook and
// the subcommands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (a *app) codec() *otherdata.Codec {
	return otherdata.NewCodec(otherdata.Options{
		Numeric:     a.cfg.Codec.Numeric,
		AllowBase64: a.cfg.Codec.AllowBase64,
	})
}

// NewRootCmd builds the otherdata command tree.
func NewRootCmd() *cobra.Command {
	a := &app{cfg: config.DefaultConfig()}
	root := &cobra.Command{
		Use:   "otherdata",
		Short: "Encode and decode other-data payloads",
		Long: `otherdata converts between the escaped comma separated text stored in a
record's other-data field and a typed item list.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().String("config", "", "path to a YAML config file")
	root.PersistentFlags().String("log-level", "", "debug, info, warn or error")
	root.PersistentFlags().String("log-format", "", "text or json")
	root.PersistentFlags().StringP("output", "o", "", "output format: text, json or yaml")

	root.AddCommand(
		newDecodeCmd(a),
		newEncodeCmd(a),
		newPackCmd(a),
		newUnpackCmd(a),
		newProfileCmd(a),
	)
	return root
}

// setup loads the config file, applies flag overrides and installs logging.
func (a *app) setup(cmd *cobra.Command) error {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if v, _ := cmd.Flags().GetString("log-level"); v != "" {
		a.cfg.Logging.Level = v
	}
	if v, _ := cmd.Flags().GetString("log-format"); v != "" {
		a.cfg.Logging.Format = v
	}
	if v, _ := cmd.Flags().GetString("output"); v != "" {
		a.cfg.Output.Format = v
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), a.cfg.Logging.Level, a.cfg.Logging.Format)
	if err != nil {
		return err
	}
	a.logger = logger
	slog.SetDefault(logger)
	return nil
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// readInput returns args[0] when given, otherwise all of stdin with one
// trailing newline removed.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
