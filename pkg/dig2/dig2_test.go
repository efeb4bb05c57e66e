package dig2

import "testing"

func TestProbeTypeStrings(t *testing.T) {
	if got := AnalogEnergyFilter.String(); got != "EnergyFilter" {
		t.Fatalf("analog probe name = %q", got)
	}
	if got := AnalogProbeType(0b0101).String(); got != "AnalogProbeType(5)" {
		t.Fatalf("unknown analog probe = %q", got)
	}
	if got := DigitalShortGate.String(); got != "ShortGate" {
		t.Fatalf("digital probe name = %q", got)
	}
}

func TestFlagStrings(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{PHAFlags(0).String(), "0"},
		{(PHAPileUp | PHASCASelected).String(), "PileUp|SCASelected"},
		{(PSDChargeOverflow | PSDFineTimestamp).String(), "ChargeOverflow|FineTimestamp"},
		{(LowSoftwareTrigger | LowITLBTrigger).String(), "SoftwareTrigger|ITLBTrigger"},
		{LowPriorityFlags(0x800).String(), "0x800"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("flag string = %q, want %q", tt.got, tt.want)
		}
	}
}
