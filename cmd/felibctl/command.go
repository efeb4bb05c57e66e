package main

import (
	"github.com/spf13/cobra"
)

var commandCmd = &cobra.Command{
	Use:   "cmd <path>...",
	Short: "Execute command nodes",
	Long: `Execute one or more command nodes in order, e.g.

  felibctl cmd /cmd/ARMACQUISITION /cmd/SWSTARTACQUISITION`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice()
		if err != nil {
			return err
		}
		defer dev.Close()

		for _, path := range args {
			if err := dev.SendCommand(path); err != nil {
				return err
			}
		}
		return nil
	},
}
