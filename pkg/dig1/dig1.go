// Package dig1 holds the decoded-event types reported by Dig1-class
// digitizers running DPP firmware.
package dig1

import (
	"fmt"
	"strings"
)

// ProbeType identifies the source of a decoded DPP probe trace.
type ProbeType int

const (
	ProbeInvalid       ProbeType = -1
	ProbeNone          ProbeType = 0
	ProbeInput         ProbeType = 1
	ProbeDelta         ProbeType = 2
	ProbeDelta2        ProbeType = 3
	ProbeTrapezoid     ProbeType = 4
	ProbeBaseline      ProbeType = 5
	ProbeThreshold     ProbeType = 6
	ProbeCFD           ProbeType = 7
	ProbeTrapCorrected ProbeType = 8
	ProbeRTDiscWid     ProbeType = 9
	ProbeArmed         ProbeType = 10
	ProbePkRun         ProbeType = 11
	ProbePeaking       ProbeType = 12
	ProbeTrgValWin     ProbeType = 13
	ProbeBLHoldoff     ProbeType = 14
	ProbeTrgHoldoff    ProbeType = 15
	ProbeTrgVal        ProbeType = 16
	ProbeAcqVeto       ProbeType = 17
	ProbeBFMVeto       ProbeType = 18
	ProbeExtTrg        ProbeType = 19
	ProbeOverThreshold ProbeType = 20
	ProbeTrgOut        ProbeType = 21
	ProbeCoincidence   ProbeType = 22
	ProbePileUp        ProbeType = 23
	ProbeGate          ProbeType = 24
	ProbeGateShort     ProbeType = 25
	ProbeTrigger       ProbeType = 26
	ProbeBusy          ProbeType = 27
	ProbePileUpTrig    ProbeType = 28
	ProbeIsNeutron     ProbeType = 29
	ProbeTriggerAccept ProbeType = 30
	ProbeTrgWin        ProbeType = 31
	ProbeCoincWin      ProbeType = 32
	ProbeFastTriang    ProbeType = 33
	ProbeSlowTriang    ProbeType = 34
	ProbeBslFreeze     ProbeType = 35
	ProbeInhibitFlag   ProbeType = 36
	ProbePeakReady     ProbeType = 37
	ProbeArmedSt       ProbeType = 38
	ProbeGateInh       ProbeType = 39
	ProbeTestWave      ProbeType = 40
	ProbeSmoothInput   ProbeType = 41
	ProbeADCSat        ProbeType = 42
	ProbeADCSatProtect ProbeType = 43
	ProbePostSat       ProbeType = 44
	ProbeEnergySat     ProbeType = 45
	ProbePileUpGuard   ProbeType = 46
	ProbeChargeReady   ProbeType = 47
	ProbeChargeSat     ProbeType = 48
	ProbeNegOverThr    ProbeType = 49
	ProbeTrapBaseline  ProbeType = 50
)

var probeTypeNames = map[ProbeType]string{
	ProbeInvalid:       "Invalid",
	ProbeNone:          "None",
	ProbeInput:         "Input",
	ProbeDelta:         "Delta",
	ProbeDelta2:        "Delta2",
	ProbeTrapezoid:     "Trapezoid",
	ProbeBaseline:      "Baseline",
	ProbeThreshold:     "Threshold",
	ProbeCFD:           "CFD",
	ProbeTrapCorrected: "TrapCorrected",
	ProbeRTDiscWid:     "RTDiscWid",
	ProbeArmed:         "Armed",
	ProbePkRun:         "PkRun",
	ProbePeaking:       "Peaking",
	ProbeTrgValWin:     "TrgValWin",
	ProbeBLHoldoff:     "BLHoldoff",
	ProbeTrgHoldoff:    "TrgHoldoff",
	ProbeTrgVal:        "TrgVal",
	ProbeAcqVeto:       "AcqVeto",
	ProbeBFMVeto:       "BFMVeto",
	ProbeExtTrg:        "ExtTrg",
	ProbeOverThreshold: "OverThreshold",
	ProbeTrgOut:        "TrgOut",
	ProbeCoincidence:   "Coincidence",
	ProbePileUp:        "PileUp",
	ProbeGate:          "Gate",
	ProbeGateShort:     "GateShort",
	ProbeTrigger:       "Trigger",
	ProbeBusy:          "Busy",
	ProbePileUpTrig:    "PileUpTrig",
	ProbeIsNeutron:     "IsNeutron",
	ProbeTriggerAccept: "TriggerAccept",
	ProbeTrgWin:        "TrgWin",
	ProbeCoincWin:      "CoincWin",
	ProbeFastTriang:    "FastTriang",
	ProbeSlowTriang:    "SlowTriang",
	ProbeBslFreeze:     "BslFreeze",
	ProbeInhibitFlag:   "InhibitFlag",
	ProbePeakReady:     "PeakReady",
	ProbeArmedSt:       "ArmedSt",
	ProbeGateInh:       "GateInh",
	ProbeTestWave:      "TestWave",
	ProbeSmoothInput:   "SmoothInput",
	ProbeADCSat:        "ADCSat",
	ProbeADCSatProtect: "ADCSatProtect",
	ProbePostSat:       "PostSat",
	ProbeEnergySat:     "EnergySat",
	ProbePileUpGuard:   "PileUpGuard",
	ProbeChargeReady:   "ChargeReady",
	ProbeChargeSat:     "ChargeSat",
	ProbeNegOverThr:    "NegOverThr",
	ProbeTrapBaseline:  "TrapBaseline",
}

func (t ProbeType) String() string {
	if s, ok := probeTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("ProbeType(%d)", int(t))
}

// Flags is the per-event flag word of Dig1 DPP events.
type Flags uint32

const (
	FlagDeadTime   Flags = 0x0000001 // first event after a dead time
	FlagTTRollover Flags = 0x0000002 // trigger time stamp roll-over before this event
	FlagTTReset    Flags = 0x0000004 // trigger time stamp reset forced from S-IN/GPI
	FlagEvtFake    Flags = 0x0000008 // fake event, no physical counterpart
	FlagMemFull    Flags = 0x0000010 // reading memory full
	FlagTrgLost    Flags = 0x0000020 // first event after a trigger lost
	FlagNTrgLost   Flags = 0x0000040 // raised every N lost events
	FlagOverRange  Flags = 0x0000080 // energy overranged
	Flag1024Trg    Flags = 0x0000100 // raised every 1024 counted events
	FlagLostEvt    Flags = 0x0000200 // first event after events lost on board memory full
	FlagInputSat   Flags = 0x0000400 // input dynamics saturated (clipping)
	FlagNTrgTot    Flags = 0x0000800 // raised every N total events
	FlagOldSort    Flags = 0x0001000 // event not sorted, sent for waveform
	FlagEOR        Flags = 0x0002000 // fake event at end of run
	FlagFineTT     Flags = 0x0004000 // event carries a fine time stamp
	FlagPileUp     Flags = 0x0008000 // pile up event
	FlagTimeValue  Flags = 0x0010000 // fake event on a time stamp roll-over
	FlagEnergySkim Flags = 0x0020000 // energy skimming
	FlagSatRej     Flags = 0x0040000 // detector inhibited due to saturation
	FlagPLLLoss    Flags = 0x0080000 // fake event reporting a PLL lock loss
	FlagOverTemp   Flags = 0x0100000 // fake event reporting over temperature
	FlagShutdown   Flags = 0x0200000 // fake event reporting an ADC shutdown
	FlagMemorySort Flags = 0x0400000 // fake event reporting memory overload while sorting
	FlagMCS        Flags = 0x0800000 // MCS event
	FlagStopCond   Flags = 0x1000000 // first event after a stop condition
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagDeadTime, "DeadTime"},
	{FlagTTRollover, "TTRollover"},
	{FlagTTReset, "TTReset"},
	{FlagEvtFake, "EvtFake"},
	{FlagMemFull, "MemFull"},
	{FlagTrgLost, "TrgLost"},
	{FlagNTrgLost, "NTrgLost"},
	{FlagOverRange, "OverRange"},
	{Flag1024Trg, "1024Trg"},
	{FlagLostEvt, "LostEvt"},
	{FlagInputSat, "InputSat"},
	{FlagNTrgTot, "NTrgTot"},
	{FlagOldSort, "OldSort"},
	{FlagEOR, "EOR"},
	{FlagFineTT, "FineTT"},
	{FlagPileUp, "PileUp"},
	{FlagTimeValue, "TimeValue"},
	{FlagEnergySkim, "EnergySkim"},
	{FlagSatRej, "SatRej"},
	{FlagPLLLoss, "PLLLoss"},
	{FlagOverTemp, "OverTemp"},
	{FlagShutdown, "Shutdown"},
	{FlagMemorySort, "MemorySort"},
	{FlagMCS, "MCS"},
	{FlagStopCond, "StopCond"},
}

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var names []string
	rest := f
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			names = append(names, fn.name)
			rest &^= fn.flag
		}
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(rest)))
	}
	return strings.Join(names, "|")
}
