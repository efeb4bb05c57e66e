package main

import (
	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Write a parameter value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice()
		if err != nil {
			return err
		}
		defer dev.Close()

		return dev.SetValueAt(args[0], args[1])
	},
}
