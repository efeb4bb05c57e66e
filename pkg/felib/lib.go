package felib

import (
	"bytes"
	"encoding/json"
	"sync"
	"time"

	"github.com/go-daq/felib/internal/capi"
)

// LibName is the base name of the native shared library, resolved to
// libCAEN_FELib.so, libCAEN_FELib.dylib or CAEN_FELib.dll by the loader.
const LibName = "CAEN_FELib"

// Initial buffer sizes for the size-reporting C calls. The JSON documents
// (library info, device tree) can be large on multi-channel boards.
const (
	initialInfoSize     = 1 << 22
	initialTreeSize     = 1 << 22
	initialChildren     = 1 << 6
	initialDiscoverSize = 1 << 20
)

// Lib wraps a loaded CAEN_FELib function table.
type Lib struct {
	api  capi.API
	path string
}

var defaultLib = sync.OnceValues(func() (*Lib, error) {
	return Load(LibName)
})

// Load opens the named shared library and binds its entry points.
func Load(name string) (*Lib, error) {
	api, path, err := capi.Load(name)
	if err != nil {
		return nil, err
	}
	return &Lib{api: api, path: path}, nil
}

// Default returns the process-wide library instance, loading CAEN_FELib on
// first use.
func Default() (*Lib, error) {
	return defaultLib()
}

// NewLib wraps an already-bound function table. It exists so tests can
// substitute a capi.Mock for the native library.
func NewLib(api capi.API) *Lib {
	return &Lib{api: api, path: "(custom)"}
}

// Path returns the file name the library was loaded from.
func (l *Lib) Path() string {
	return l.path
}

// check translates a negative C return code into an *Error carrying the
// library's last-error description.
func (l *Lib) check(code int, fn string) error {
	if code >= 0 {
		return nil
	}
	msg, _ := l.LastError()
	return &Error{Code: ErrorCode(code), Func: fn, Message: msg}
}

// cString trims a NUL-terminated C string out of buf.
func cString(buf []byte) string {
	if i := bytes.IndexByte(buf, 0); i >= 0 {
		return string(buf[:i])
	}
	return string(buf)
}

// growingString retries a size-reporting C call until the result fits. Such
// calls return the required size when the buffer is too small; a result
// equal to the buffer size still means truncation.
func (l *Lib) growingString(size int, fn string, call func([]byte) int) (string, error) {
	for {
		buf := make([]byte, size)
		res := call(buf)
		if err := l.check(res, fn); err != nil {
			return "", err
		}
		if res < size {
			return cString(buf), nil
		}
		size = res + 1
	}
}

// Version reports the native library version.
func (l *Lib) Version() (string, error) {
	buf := make([]byte, 16)
	if err := l.check(l.api.GetLibVersion(buf), "CAEN_FELib_GetLibVersion"); err != nil {
		return "", err
	}
	return cString(buf), nil
}

// Info returns the JSON document describing the native library build.
func (l *Lib) Info() (json.RawMessage, error) {
	s, err := l.growingString(initialInfoSize, "CAEN_FELib_GetLibInfo", l.api.GetLibInfo)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(s), nil
}

// ErrorName resolves a code to the library's short error name.
func (l *Lib) ErrorName(code ErrorCode) (string, error) {
	buf := make([]byte, 32)
	if err := l.check(l.api.GetErrorName(int(code), buf), "CAEN_FELib_GetErrorName"); err != nil {
		return "", err
	}
	return cString(buf), nil
}

// ErrorDescription resolves a code to the library's long description.
func (l *Lib) ErrorDescription(code ErrorCode) (string, error) {
	buf := make([]byte, 256)
	if err := l.check(l.api.GetErrorDescription(int(code), buf), "CAEN_FELib_GetErrorDescription"); err != nil {
		return "", err
	}
	return cString(buf), nil
}

// LastError returns the description of the last failure on the calling
// thread.
func (l *Lib) LastError() (string, error) {
	buf := make([]byte, 1024)
	if l.api.GetLastError(buf) < 0 {
		return "", &Error{Code: GenericError, Func: "CAEN_FELib_GetLastError"}
	}
	return cString(buf), nil
}

// Discover scans for reachable devices and returns the JSON device list.
// A negative timeout lets the library use its own default.
func (l *Lib) Discover(timeout time.Duration) (json.RawMessage, error) {
	buf := make([]byte, initialDiscoverSize)
	code := l.api.DevicesDiscovery(buf, timeoutMs(timeout))
	if err := l.check(code, "CAEN_FELib_DevicesDiscovery"); err != nil {
		return nil, err
	}
	return json.RawMessage(cString(buf)), nil
}

// timeoutMs converts a duration into the millisecond convention of the C
// API, where -1 means blocking with no timeout.
func timeoutMs(d time.Duration) int {
	if d < 0 {
		return -1
	}
	return int(d / time.Millisecond)
}
