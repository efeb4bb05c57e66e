package main

import (
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [path]",
	Short: "Print the device tree as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice()
		if err != nil {
			return err
		}
		defer dev.Close()

		node := dev.Node
		if len(args) == 1 {
			if node, err = dev.At(args[0]); err != nil {
				return err
			}
		}
		tree, err := node.DeviceTree()
		if err != nil {
			return err
		}
		return printJSON(tree)
	},
}
