// felibctl drives CAEN digitizers through the FELib library: discovery,
// node-tree inspection, parameter access, commands and endpoint readout.
package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/go-daq/felib/pkg/felib"
)

var (
	flagURL     string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "felibctl",
	Short:         "Control CAEN digitizers through the FELib library",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if flagVerbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagURL, "url", "u", "", "device URL (e.g. dig2://192.0.2.1), defaults to $FELIB_URL")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd, discoverCmd, treeCmd, getCmd, setCmd, commandCmd, readCmd, applyCmd)
}

func deviceURL() (string, error) {
	if flagURL != "" {
		return flagURL, nil
	}
	if v := os.Getenv("FELIB_URL"); v != "" {
		return v, nil
	}
	return "", errors.New("no device URL: pass --url or set FELIB_URL")
}

func openDevice() (*felib.Device, error) {
	url, err := deviceURL()
	if err != nil {
		return nil, err
	}
	slog.Debug("connecting", slog.String("url", url))
	return felib.Open(url)
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
