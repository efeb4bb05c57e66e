package felib

import (
	"errors"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	if got := Timeout.String(); got != "Timeout" {
		t.Fatalf("Timeout.String() = %q", got)
	}
	if got := ErrorCode(-99).String(); got != "ErrorCode(-99)" {
		t.Fatalf("unknown code string = %q", got)
	}
}

func TestErrorFormatting(t *testing.T) {
	err := &Error{Code: CommandError, Func: "CAEN_FELib_SendCommand", Message: "command rejected"}
	want := "CAEN_FELib_SendCommand: CommandError: command rejected"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}

	bare := &Error{Code: Stop, Func: "CAEN_FELib_ReadData"}
	if bare.Error() != "CAEN_FELib_ReadData: Stop" {
		t.Fatalf("Error() = %q", bare.Error())
	}
}

func TestErrorIsMatchesOnCode(t *testing.T) {
	err := &Error{Code: Timeout, Func: "CAEN_FELib_ReadData", Message: "timed out"}
	if !errors.Is(err, ErrTimeout) {
		t.Fatal("expected errors.Is match on Timeout")
	}
	if errors.Is(err, ErrStop) {
		t.Fatal("unexpected errors.Is match on Stop")
	}
}
