// Package usbscan enumerates CAEN hardware attached over USB. It is a
// fallback for when library discovery finds nothing: it cannot tell whether
// a board is reachable, only that one is plugged in.
package usbscan

import (
	"fmt"
	"log/slog"

	"github.com/google/gousb"
)

// CAENVendorID is the USB vendor ID assigned to CAEN SpA.
const CAENVendorID = 0x21e1

// Device describes one attached USB device.
type Device struct {
	Bus       int
	Address   int
	VendorID  uint16
	ProductID uint16
	Product   string
	Serial    string
}

// Scan lists attached CAEN USB devices.
func Scan() ([]Device, error) {
	return scanVendor(CAENVendorID)
}

func scanVendor(vendor uint16) ([]Device, error) {
	ctx := gousb.NewContext()
	defer ctx.Close()

	devs, err := ctx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		return desc.Vendor == gousb.ID(vendor)
	})
	for _, d := range devs {
		defer d.Close()
	}
	if err != nil && len(devs) == 0 {
		return nil, fmt.Errorf("usb enumerate: %w", err)
	}
	if err != nil {
		// Some devices opened, some did not (typically permissions).
		slog.Warn("partial USB enumeration", slog.Any("error", err))
	}

	out := make([]Device, 0, len(devs))
	for _, d := range devs {
		info := Device{
			Bus:       d.Desc.Bus,
			Address:   d.Desc.Address,
			VendorID:  uint16(d.Desc.Vendor),
			ProductID: uint16(d.Desc.Product),
		}
		if s, err := d.Product(); err == nil {
			info.Product = s
		}
		if s, err := d.SerialNumber(); err == nil {
			info.Serial = s
		}
		out = append(out, info)
	}
	return out, nil
}
