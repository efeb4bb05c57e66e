package felib

import "fmt"

// ErrorCode enumerates the CAEN_FELib return codes. Zero is success; every
// failure is negative.
type ErrorCode int

const (
	Success                   ErrorCode = 0
	GenericError              ErrorCode = -1
	InvalidParam              ErrorCode = -2
	DeviceAlreadyOpen         ErrorCode = -3
	DeviceNotFound            ErrorCode = -4
	MaxDevicesError           ErrorCode = -5
	CommandError              ErrorCode = -6
	InternalError             ErrorCode = -7
	NotImplemented            ErrorCode = -8
	InvalidHandle             ErrorCode = -9
	DeviceLibraryNotAvailable ErrorCode = -10
	Timeout                   ErrorCode = -11
	Stop                      ErrorCode = -12
	Disabled                  ErrorCode = -13
	BadLibraryVersion         ErrorCode = -14
	CommunicationError        ErrorCode = -15
)

var errorCodeNames = map[ErrorCode]string{
	Success:                   "Success",
	GenericError:              "GenericError",
	InvalidParam:              "InvalidParam",
	DeviceAlreadyOpen:         "DeviceAlreadyOpen",
	DeviceNotFound:            "DeviceNotFound",
	MaxDevicesError:           "MaxDevicesError",
	CommandError:              "CommandError",
	InternalError:             "InternalError",
	NotImplemented:            "NotImplemented",
	InvalidHandle:             "InvalidHandle",
	DeviceLibraryNotAvailable: "DeviceLibraryNotAvailable",
	Timeout:                   "Timeout",
	Stop:                      "Stop",
	Disabled:                  "Disabled",
	BadLibraryVersion:         "BadLibraryVersion",
	CommunicationError:        "CommunicationError",
}

func (c ErrorCode) String() string {
	if s, ok := errorCodeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// Error is returned when a CAEN_FELib entry point reports a negative code.
// Message carries the library's last-error description when available.
type Error struct {
	Code    ErrorCode
	Func    string
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Func, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Func, e.Code, e.Message)
}

// Is matches on the error code, so acquisition loops can test against
// ErrTimeout and ErrStop with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	// ErrTimeout matches read calls that expire with no data.
	ErrTimeout = &Error{Code: Timeout}
	// ErrStop matches read calls interrupted by the end of acquisition.
	ErrStop = &Error{Code: Stop}
)
