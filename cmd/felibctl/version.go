package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-daq/felib/pkg/felib"
)

var flagVersionFull bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the native library version",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := felib.Default()
		if err != nil {
			return err
		}
		v, err := lib.Version()
		if err != nil {
			return err
		}
		fmt.Printf("CAEN FELib %s (%s)\n", v, lib.Path())

		if !flagVersionFull {
			return nil
		}
		info, err := lib.Info()
		if err != nil {
			return err
		}
		return printJSON(info)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&flagVersionFull, "full", false, "also print the library build info")
}

func printJSON(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		// Not valid JSON; print as-is rather than hiding it.
		fmt.Println(string(raw))
		return nil
	}
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(buf))
	return nil
}
