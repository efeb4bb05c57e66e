package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-daq/felib/internal/config"
)

var applyCmd = &cobra.Command{
	Use:   "apply <config.yaml>",
	Short: "Apply a YAML parameter configuration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(args[0])
		if err != nil {
			return err
		}

		dev, err := openDevice()
		if err != nil {
			return err
		}
		defer dev.Close()

		if err := cfg.Apply(dev); err != nil {
			return err
		}
		slog.Info("configuration applied",
			slog.Int("params", len(cfg.Params)),
			slog.Int("channel blocks", len(cfg.Channels)),
			slog.Int("commands", len(cfg.Commands)))
		return nil
	},
}
