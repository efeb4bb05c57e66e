package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/go-daq/felib/pkg/felib"
	"github.com/go-daq/felib/pkg/record"
)

var (
	flagReadEndpoint string
	flagReadFormat   string
	flagReadCount    int
	flagReadTimeout  time.Duration
	flagReadRecord   string
	flagReadArm      bool
	flagReadTrigger  bool
)

var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read events from a data endpoint",
	Long: `Read events from a data endpoint using a JSON format description,
a list of field objects as accepted by CAEN_FELib_SetReadDataFormat plus a
local "shape" entry per dimension:

  [
    {"name": "TIMESTAMP", "type": "U64"},
    {"name": "WAVEFORM", "type": "U16", "dim": 2, "shape": [64, 4096]}
  ]`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := loadFormat(flagReadFormat)
		if err != nil {
			return err
		}

		dev, err := openDevice()
		if err != nil {
			return err
		}
		defer dev.Close()

		ep, err := dev.Endpoint(flagReadEndpoint)
		if err != nil {
			return err
		}
		data, err := ep.SetReadDataFormat(fields)
		if err != nil {
			return err
		}
		if err := dev.SetValueAt("/endpoint/par/ACTIVEENDPOINT", flagReadEndpoint); err != nil {
			return err
		}

		var rec *record.Writer
		if flagReadRecord != "" {
			f, err := os.Create(flagReadRecord)
			if err != nil {
				return err
			}
			defer f.Close()
			rec, err = record.NewWriter(f, record.Header{
				Endpoint: flagReadEndpoint,
				Fields:   fields,
				Created:  time.Now().UTC(),
			})
			if err != nil {
				return err
			}
		}

		if flagReadArm {
			if err := dev.Cmd("ARMACQUISITION"); err != nil {
				return err
			}
			if err := dev.Cmd("SWSTARTACQUISITION"); err != nil {
				return err
			}
			defer func() {
				if err := dev.Cmd("DISARMACQUISITION"); err != nil {
					slog.Warn("disarm failed", slog.Any("error", err))
				}
			}()
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return readLoop(ctx, dev, ep, data, rec)
	},
}

func init() {
	readCmd.Flags().StringVar(&flagReadEndpoint, "endpoint", "scope", "endpoint to read from")
	readCmd.Flags().StringVar(&flagReadFormat, "format", "", "JSON file describing the data format (required)")
	readCmd.Flags().IntVar(&flagReadCount, "count", 0, "stop after this many events (0 = until interrupted)")
	readCmd.Flags().DurationVar(&flagReadTimeout, "timeout", 100*time.Millisecond, "per-read timeout")
	readCmd.Flags().StringVar(&flagReadRecord, "record", "", "record events to this file")
	readCmd.Flags().BoolVar(&flagReadArm, "arm", false, "arm and start acquisition before reading, disarm after")
	readCmd.Flags().BoolVar(&flagReadTrigger, "trigger", false, "send a software trigger before every read")
	_ = readCmd.MarkFlagRequired("format")
}

func loadFormat(path string) ([]felib.Field, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read format: %w", err)
	}
	var fields []felib.Field
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, fmt.Errorf("parse format: %w", err)
	}
	if len(fields) == 0 {
		return nil, errors.New("format declares no fields")
	}
	return fields, nil
}

func readLoop(ctx context.Context, dev *felib.Device, ep felib.Node, data []*felib.Data, rec *record.Writer) error {
	var eventBytes int
	for _, d := range data {
		eventBytes += len(d.Bytes())
	}

	var events, bytesRead uint64
	start := time.Now()
	defer func() {
		elapsed := time.Since(start)
		rate := float64(bytesRead) / elapsed.Seconds()
		fmt.Printf("%d events, %s in %s (%s/s)\n",
			events, humanize.Bytes(bytesRead), elapsed.Round(time.Millisecond),
			humanize.Bytes(uint64(rate)))
	}()

	for ctx.Err() == nil {
		if flagReadCount > 0 && events >= uint64(flagReadCount) {
			return nil
		}
		if flagReadTrigger {
			if err := dev.Cmd("SENDSWTRIGGER"); err != nil {
				return err
			}
		}

		err := ep.ReadData(flagReadTimeout, data)
		switch {
		case errors.Is(err, felib.ErrTimeout):
			continue
		case errors.Is(err, felib.ErrStop):
			slog.Info("acquisition stopped")
			return nil
		case err != nil:
			return err
		}

		events++
		bytesRead += uint64(eventBytes)
		if rec != nil {
			if err := rec.Write(data); err != nil {
				return err
			}
		}
	}
	return nil
}
