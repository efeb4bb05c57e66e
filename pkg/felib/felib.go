// Package felib is a Go binding for the CAEN FELib digitizer library.
//
// The native shared library must be installed on the system; it is loaded
// at runtime, so no C toolchain is needed to build this module. The binding
// marshals calls and data buffers between Go and the C function table:
// handle-based sessions, slash-delimited node-tree navigation, string-valued
// parameters, commands and typed endpoint data buffers.
//
// A typical acquisition loop:
//
//	dig, err := felib.Open("dig2://192.0.2.1")
//	if err != nil {
//		// handle
//	}
//	defer dig.Close()
//
//	ep, _ := dig.Endpoint("scope")
//	data, _ := ep.SetReadDataFormat([]felib.Field{
//		{Name: "TIMESTAMP", Type: felib.U64},
//		{Name: "WAVEFORM", Type: felib.U16, Dim: 2, Shape: []int{64, 1024}},
//	})
//	wave := felib.Matrix[uint16](data[1])
//
//	dig.Cmd("ARMACQUISITION")
//	for {
//		err := ep.ReadData(100*time.Millisecond, data)
//		if errors.Is(err, felib.ErrTimeout) {
//			continue
//		}
//		if errors.Is(err, felib.ErrStop) {
//			break
//		}
//		// wave now holds the event
//	}
package felib

import (
	"encoding/json"
	"time"
)

// Version reports the native library version through the default instance.
func Version() (string, error) {
	l, err := Default()
	if err != nil {
		return "", err
	}
	return l.Version()
}

// Info returns the library build information through the default instance.
func Info() (json.RawMessage, error) {
	l, err := Default()
	if err != nil {
		return nil, err
	}
	return l.Info()
}

// Discover scans for reachable devices through the default instance.
func Discover(timeout time.Duration) (json.RawMessage, error) {
	l, err := Default()
	if err != nil {
		return nil, err
	}
	return l.Discover(timeout)
}
