package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-daq/felib/internal/usbscan"
	"github.com/go-daq/felib/pkg/felib"
)

var (
	flagDiscoverTimeout time.Duration
	flagDiscoverUSB     bool
)

var discoverCmd = &cobra.Command{
	Use:   "discover",
	Short: "Scan for reachable digitizers",
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagDiscoverUSB {
			return discoverUSB()
		}
		out, err := felib.Discover(flagDiscoverTimeout)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

func init() {
	discoverCmd.Flags().DurationVar(&flagDiscoverTimeout, "timeout", 5*time.Second, "discovery timeout")
	discoverCmd.Flags().BoolVar(&flagDiscoverUSB, "usb", false, "enumerate attached CAEN USB devices instead of asking the library")
}

func discoverUSB() error {
	devs, err := usbscan.Scan()
	if err != nil {
		return err
	}
	if len(devs) == 0 {
		fmt.Println("no CAEN USB devices attached")
		return nil
	}
	for _, d := range devs {
		fmt.Printf("bus %d addr %d  %04x:%04x  %s  serial=%s\n",
			d.Bus, d.Address, d.VendorID, d.ProductID, d.Product, d.Serial)
	}
	return nil
}
