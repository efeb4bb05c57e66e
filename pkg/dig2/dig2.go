// Package dig2 holds the decoded-event types reported by Dig2-class
// digitizers running DPP-PHA and DPP-PSD firmware.
package dig2

import (
	"fmt"
	"strings"
)

// AnalogProbeType identifies the source of an analog probe trace.
type AnalogProbeType uint8

const (
	AnalogADCInput AnalogProbeType = 0b0000
	// PHA specific
	AnalogTimeFilter                AnalogProbeType = 0b0001
	AnalogEnergyFilter              AnalogProbeType = 0b0010
	AnalogEnergyFilterBaseline      AnalogProbeType = 0b0011
	AnalogEnergyFilterMinusBaseline AnalogProbeType = 0b0100
	// PSD specific
	AnalogBaseline AnalogProbeType = 0b1001
	AnalogCFD      AnalogProbeType = 0b1010

	AnalogUnknown AnalogProbeType = 0xff
)

var analogProbeNames = map[AnalogProbeType]string{
	AnalogADCInput:                  "ADCInput",
	AnalogTimeFilter:                "TimeFilter",
	AnalogEnergyFilter:              "EnergyFilter",
	AnalogEnergyFilterBaseline:      "EnergyFilterBaseline",
	AnalogEnergyFilterMinusBaseline: "EnergyFilterMinusBaseline",
	AnalogBaseline:                  "Baseline",
	AnalogCFD:                       "CFD",
	AnalogUnknown:                   "Unknown",
}

func (t AnalogProbeType) String() string {
	if s, ok := analogProbeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("AnalogProbeType(%d)", uint8(t))
}

// DigitalProbeType identifies the source of a digital probe trace.
type DigitalProbeType uint8

const (
	DigitalTrigger                   DigitalProbeType = 0b00000
	DigitalTimeFilterArmed           DigitalProbeType = 0b00001
	DigitalReTriggerGuard            DigitalProbeType = 0b00010
	DigitalEnergyFilterBaselineFreeze DigitalProbeType = 0b00011
	DigitalEventPileUp               DigitalProbeType = 0b00111
	// PHA specific
	DigitalEnergyFilterPeaking     DigitalProbeType = 0b00100
	DigitalEnergyFilterPeakReady   DigitalProbeType = 0b00101
	DigitalEnergyFilterPileUpGuard DigitalProbeType = 0b00110
	DigitalADCSaturation           DigitalProbeType = 0b01000
	DigitalADCSaturationProtection DigitalProbeType = 0b01001
	DigitalPostSaturationEvent     DigitalProbeType = 0b01010
	DigitalEnergyFilterSaturation  DigitalProbeType = 0b01011
	DigitalSignalInhibit           DigitalProbeType = 0b01100
	// PSD specific
	DigitalOverThreshold         DigitalProbeType = 0b10100
	DigitalChargeReady           DigitalProbeType = 0b10101
	DigitalLongGate              DigitalProbeType = 0b10110
	DigitalShortGate             DigitalProbeType = 0b11000
	DigitalInputSaturation       DigitalProbeType = 0b11001
	DigitalChargeOverRange       DigitalProbeType = 0b11010
	DigitalNegativeOverThreshold DigitalProbeType = 0b11011

	DigitalUnknown DigitalProbeType = 0xff
)

var digitalProbeNames = map[DigitalProbeType]string{
	DigitalTrigger:                    "Trigger",
	DigitalTimeFilterArmed:            "TimeFilterArmed",
	DigitalReTriggerGuard:             "ReTriggerGuard",
	DigitalEnergyFilterBaselineFreeze: "EnergyFilterBaselineFreeze",
	DigitalEventPileUp:                "EventPileUp",
	DigitalEnergyFilterPeaking:        "EnergyFilterPeaking",
	DigitalEnergyFilterPeakReady:      "EnergyFilterPeakReady",
	DigitalEnergyFilterPileUpGuard:    "EnergyFilterPileUpGuard",
	DigitalADCSaturation:              "ADCSaturation",
	DigitalADCSaturationProtection:    "ADCSaturationProtection",
	DigitalPostSaturationEvent:        "PostSaturationEvent",
	DigitalEnergyFilterSaturation:     "EnergyFilterSaturation",
	DigitalSignalInhibit:              "SignalInhibit",
	DigitalOverThreshold:              "OverThreshold",
	DigitalChargeReady:                "ChargeReady",
	DigitalLongGate:                   "LongGate",
	DigitalShortGate:                  "ShortGate",
	DigitalInputSaturation:            "InputSaturation",
	DigitalChargeOverRange:            "ChargeOverRange",
	DigitalNegativeOverThreshold:      "NegativeOverThreshold",
	DigitalUnknown:                    "Unknown",
}

func (t DigitalProbeType) String() string {
	if s, ok := digitalProbeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("DigitalProbeType(%d)", uint8(t))
}

// PHAFlags is the high priority flag word of DPP-PHA events.
type PHAFlags uint16

const (
	PHAPileUp             PHAFlags = 0x01
	PHAPileUpRejectorGuard PHAFlags = 0x02
	PHAEventSaturation    PHAFlags = 0x04
	PHAPostSaturation     PHAFlags = 0x08
	PHATrapezoidSaturation PHAFlags = 0x10
	PHASCASelected        PHAFlags = 0x20
)

func (f PHAFlags) String() string {
	return flagString(uint32(f), []flagName{
		{0x01, "PileUp"},
		{0x02, "PileUpRejectorGuard"},
		{0x04, "EventSaturation"},
		{0x08, "PostSaturation"},
		{0x10, "TrapezoidSaturation"},
		{0x20, "SCASelected"},
	})
}

// PSDFlags is the high priority flag word of DPP-PSD events.
type PSDFlags uint16

const (
	PSDPileUp          PSDFlags = 0x01
	PSDEventSaturation PSDFlags = 0x04
	PSDPostSaturation  PSDFlags = 0x08
	PSDChargeOverflow  PSDFlags = 0x10
	PSDSCASelected     PSDFlags = 0x20
	PSDFineTimestamp   PSDFlags = 0x40
)

func (f PSDFlags) String() string {
	return flagString(uint32(f), []flagName{
		{0x01, "PileUp"},
		{0x04, "EventSaturation"},
		{0x08, "PostSaturation"},
		{0x10, "ChargeOverflow"},
		{0x20, "SCASelected"},
		{0x40, "FineTimestamp"},
	})
}

// LowPriorityFlags is the low priority flag word of DPP-PHA and DPP-PSD
// events.
type LowPriorityFlags uint16

const (
	LowWaveOnExtInhibit    LowPriorityFlags = 0x001
	LowWaveUnderSaturation LowPriorityFlags = 0x002
	LowWaveOverSaturation  LowPriorityFlags = 0x004
	LowExternalTrigger     LowPriorityFlags = 0x008
	LowGlobalTrigger       LowPriorityFlags = 0x010
	LowSoftwareTrigger     LowPriorityFlags = 0x020
	LowSelfTrigger         LowPriorityFlags = 0x040
	LowLVDSTrigger         LowPriorityFlags = 0x080
	LowCH64Trigger         LowPriorityFlags = 0x100
	LowITLATrigger         LowPriorityFlags = 0x200
	LowITLBTrigger         LowPriorityFlags = 0x400
)

func (f LowPriorityFlags) String() string {
	return flagString(uint32(f), []flagName{
		{0x001, "WaveOnExtInhibit"},
		{0x002, "WaveUnderSaturation"},
		{0x004, "WaveOverSaturation"},
		{0x008, "ExternalTrigger"},
		{0x010, "GlobalTrigger"},
		{0x020, "SoftwareTrigger"},
		{0x040, "SelfTrigger"},
		{0x080, "LVDSTrigger"},
		{0x100, "CH64Trigger"},
		{0x200, "ITLATrigger"},
		{0x400, "ITLBTrigger"},
	})
}

type flagName struct {
	flag uint32
	name string
}

func flagString(f uint32, names []flagName) string {
	if f == 0 {
		return "0"
	}
	var out []string
	rest := f
	for _, fn := range names {
		if f&fn.flag != 0 {
			out = append(out, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		out = append(out, fmt.Sprintf("0x%x", rest))
	}
	return strings.Join(out, "|")
}
