package dig1

import "testing"

func TestProbeTypeString(t *testing.T) {
	tests := []struct {
		typ  ProbeType
		want string
	}{
		{ProbeInvalid, "Invalid"},
		{ProbeInput, "Input"},
		{ProbeTrapBaseline, "TrapBaseline"},
		{ProbeType(77), "ProbeType(77)"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestFlagsString(t *testing.T) {
	tests := []struct {
		flags Flags
		want  string
	}{
		{0, "0"},
		{FlagPileUp, "PileUp"},
		{FlagDeadTime | FlagEOR, "DeadTime|EOR"},
		{FlagStopCond | 0x80000000, "StopCond|0x80000000"},
	}
	for _, tt := range tests {
		if got := tt.flags.String(); got != tt.want {
			t.Errorf("Flags(%#x).String() = %q, want %q", uint32(tt.flags), got, tt.want)
		}
	}
}
