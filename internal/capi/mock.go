package capi

import "unsafe"

// Mock implements API with stubbable entry points for tests. A call whose
// stub is nil succeeds and leaves its output arguments untouched.
type Mock struct {
	GetLibInfoFn          func(buf []byte) int
	GetLibVersionFn       func(buf []byte) int
	GetErrorNameFn        func(code int, buf []byte) int
	GetErrorDescriptionFn func(code int, buf []byte) int
	GetLastErrorFn        func(buf []byte) int
	DevicesDiscoveryFn    func(buf []byte, timeoutMs int) int

	OpenFn              func(url string, handle *uint64) int
	CloseFn             func(handle uint64) int
	GetDeviceTreeFn     func(handle uint64, buf []byte) int
	GetChildHandlesFn   func(handle uint64, path string, out []uint64) int
	GetParentHandleFn   func(handle uint64, path string, out *uint64) int
	GetHandleFn         func(handle uint64, path string, out *uint64) int
	GetPathFn           func(handle uint64, buf []byte) int
	GetNodePropertiesFn func(handle uint64, path string, name []byte, nodeType *int32) int
	GetValueFn          func(handle uint64, path string, value []byte) int
	SetValueFn          func(handle uint64, path, value string) int
	GetUserRegisterFn   func(handle uint64, address uint32, value *uint32) int
	SetUserRegisterFn   func(handle uint64, address uint32, value uint32) int
	SendCommandFn       func(handle uint64, path string) int
	SetReadDataFormatFn func(handle uint64, format string) int
	HasDataFn           func(handle uint64, timeoutMs int) int
	ReadDataFn          func(handle uint64, timeoutMs int, args []unsafe.Pointer) int
}

// PutString writes s into a C string output buffer, NUL terminated,
// truncating if needed. It returns 0 so stubs can use it as their result.
func PutString(buf []byte, s string) int {
	n := copy(buf, s)
	if n == len(buf) && n > 0 {
		n--
	}
	if n < len(buf) {
		buf[n] = 0
	}
	return 0
}

func (m *Mock) GetLibInfo(buf []byte) int {
	if m.GetLibInfoFn != nil {
		return m.GetLibInfoFn(buf)
	}
	return 0
}

func (m *Mock) GetLibVersion(buf []byte) int {
	if m.GetLibVersionFn != nil {
		return m.GetLibVersionFn(buf)
	}
	return 0
}

func (m *Mock) GetErrorName(code int, buf []byte) int {
	if m.GetErrorNameFn != nil {
		return m.GetErrorNameFn(code, buf)
	}
	return 0
}

func (m *Mock) GetErrorDescription(code int, buf []byte) int {
	if m.GetErrorDescriptionFn != nil {
		return m.GetErrorDescriptionFn(code, buf)
	}
	return 0
}

func (m *Mock) GetLastError(buf []byte) int {
	if m.GetLastErrorFn != nil {
		return m.GetLastErrorFn(buf)
	}
	return 0
}

func (m *Mock) DevicesDiscovery(buf []byte, timeoutMs int) int {
	if m.DevicesDiscoveryFn != nil {
		return m.DevicesDiscoveryFn(buf, timeoutMs)
	}
	return 0
}

func (m *Mock) Open(url string, handle *uint64) int {
	if m.OpenFn != nil {
		return m.OpenFn(url, handle)
	}
	return 0
}

func (m *Mock) Close(handle uint64) int {
	if m.CloseFn != nil {
		return m.CloseFn(handle)
	}
	return 0
}

func (m *Mock) GetDeviceTree(handle uint64, buf []byte) int {
	if m.GetDeviceTreeFn != nil {
		return m.GetDeviceTreeFn(handle, buf)
	}
	return 0
}

func (m *Mock) GetChildHandles(handle uint64, path string, out []uint64) int {
	if m.GetChildHandlesFn != nil {
		return m.GetChildHandlesFn(handle, path, out)
	}
	return 0
}

func (m *Mock) GetParentHandle(handle uint64, path string, out *uint64) int {
	if m.GetParentHandleFn != nil {
		return m.GetParentHandleFn(handle, path, out)
	}
	return 0
}

func (m *Mock) GetHandle(handle uint64, path string, out *uint64) int {
	if m.GetHandleFn != nil {
		return m.GetHandleFn(handle, path, out)
	}
	return 0
}

func (m *Mock) GetPath(handle uint64, buf []byte) int {
	if m.GetPathFn != nil {
		return m.GetPathFn(handle, buf)
	}
	return 0
}

func (m *Mock) GetNodeProperties(handle uint64, path string, name []byte, nodeType *int32) int {
	if m.GetNodePropertiesFn != nil {
		return m.GetNodePropertiesFn(handle, path, name, nodeType)
	}
	return 0
}

func (m *Mock) GetValue(handle uint64, path string, value []byte) int {
	if m.GetValueFn != nil {
		return m.GetValueFn(handle, path, value)
	}
	return 0
}

func (m *Mock) SetValue(handle uint64, path, value string) int {
	if m.SetValueFn != nil {
		return m.SetValueFn(handle, path, value)
	}
	return 0
}

func (m *Mock) GetUserRegister(handle uint64, address uint32, value *uint32) int {
	if m.GetUserRegisterFn != nil {
		return m.GetUserRegisterFn(handle, address, value)
	}
	return 0
}

func (m *Mock) SetUserRegister(handle uint64, address uint32, value uint32) int {
	if m.SetUserRegisterFn != nil {
		return m.SetUserRegisterFn(handle, address, value)
	}
	return 0
}

func (m *Mock) SendCommand(handle uint64, path string) int {
	if m.SendCommandFn != nil {
		return m.SendCommandFn(handle, path)
	}
	return 0
}

func (m *Mock) SetReadDataFormat(handle uint64, format string) int {
	if m.SetReadDataFormatFn != nil {
		return m.SetReadDataFormatFn(handle, format)
	}
	return 0
}

func (m *Mock) HasData(handle uint64, timeoutMs int) int {
	if m.HasDataFn != nil {
		return m.HasDataFn(handle, timeoutMs)
	}
	return 0
}

func (m *Mock) ReadData(handle uint64, timeoutMs int, args []unsafe.Pointer) int {
	if m.ReadDataFn != nil {
		return m.ReadDataFn(handle, timeoutMs, args)
	}
	return 0
}
