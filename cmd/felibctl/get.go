package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <path>...",
	Short: "Read parameter values",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dev, err := openDevice()
		if err != nil {
			return err
		}
		defer dev.Close()

		for _, path := range args {
			v, err := dev.ValueAt(path)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				fmt.Println(v)
			} else {
				fmt.Printf("%s\t%s\n", path, v)
			}
		}
		return nil
	},
}
