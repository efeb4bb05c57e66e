package capi

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// lib binds the exported CAEN_FELib symbols through purego. Every function
// field mirrors one C prototype; ReadData is variadic and kept as a raw
// symbol address called through purego.SyscallN.
type lib struct {
	path string

	getLibInfo          func(buf []byte, size uintptr) int32
	getLibVersion       func(buf []byte) int32
	getErrorName        func(code int32, buf []byte) int32
	getErrorDescription func(code int32, buf []byte) int32
	getLastError        func(buf []byte) int32
	devicesDiscovery    func(buf []byte, size uintptr, timeout int32) int32

	open              func(url string, handle *uint64) int32
	close             func(handle uint64) int32
	getDeviceTree     func(handle uint64, buf []byte, size uintptr) int32
	getChildHandles   func(handle uint64, path string, out []uint64, size uintptr) int32
	getParentHandle   func(handle uint64, path string, out *uint64) int32
	getHandle         func(handle uint64, path string, out *uint64) int32
	getPath           func(handle uint64, buf []byte) int32
	getNodeProperties func(handle uint64, path string, name []byte, nodeType *int32) int32
	getValue          func(handle uint64, path string, value []byte) int32
	setValue          func(handle uint64, path, value string) int32
	getUserRegister   func(handle uint64, address uint32, value *uint32) int32
	setUserRegister   func(handle uint64, address uint32, value uint32) int32
	sendCommand       func(handle uint64, path string) int32
	setReadDataFormat func(handle uint64, format string) int32
	hasData           func(handle uint64, timeout int32) int32

	readData uintptr
}

// Load opens the shared library by base name (e.g. "CAEN_FELib") and
// resolves every entry point. It returns the bound table and the file name
// handed to the platform loader.
func Load(name string) (api API, path string, err error) {
	handle, path, err := dlopen(name)
	if err != nil {
		return nil, "", fmt.Errorf("load %s: %w", name, err)
	}

	// RegisterLibFunc panics on a missing symbol; turn that into an error
	// so callers see a broken installation instead of a crash.
	defer func() {
		if r := recover(); r != nil {
			api, err = nil, fmt.Errorf("bind %s: %v", path, r)
		}
	}()

	l := &lib{path: path}
	purego.RegisterLibFunc(&l.getLibInfo, handle, "CAEN_FELib_GetLibInfo")
	purego.RegisterLibFunc(&l.getLibVersion, handle, "CAEN_FELib_GetLibVersion")
	purego.RegisterLibFunc(&l.getErrorName, handle, "CAEN_FELib_GetErrorName")
	purego.RegisterLibFunc(&l.getErrorDescription, handle, "CAEN_FELib_GetErrorDescription")
	purego.RegisterLibFunc(&l.getLastError, handle, "CAEN_FELib_GetLastError")
	purego.RegisterLibFunc(&l.devicesDiscovery, handle, "CAEN_FELib_DevicesDiscovery")
	purego.RegisterLibFunc(&l.open, handle, "CAEN_FELib_Open")
	purego.RegisterLibFunc(&l.close, handle, "CAEN_FELib_Close")
	purego.RegisterLibFunc(&l.getDeviceTree, handle, "CAEN_FELib_GetDeviceTree")
	purego.RegisterLibFunc(&l.getChildHandles, handle, "CAEN_FELib_GetChildHandles")
	purego.RegisterLibFunc(&l.getParentHandle, handle, "CAEN_FELib_GetParentHandle")
	purego.RegisterLibFunc(&l.getHandle, handle, "CAEN_FELib_GetHandle")
	purego.RegisterLibFunc(&l.getPath, handle, "CAEN_FELib_GetPath")
	purego.RegisterLibFunc(&l.getNodeProperties, handle, "CAEN_FELib_GetNodeProperties")
	purego.RegisterLibFunc(&l.getValue, handle, "CAEN_FELib_GetValue")
	purego.RegisterLibFunc(&l.setValue, handle, "CAEN_FELib_SetValue")
	purego.RegisterLibFunc(&l.getUserRegister, handle, "CAEN_FELib_GetUserRegister")
	purego.RegisterLibFunc(&l.setUserRegister, handle, "CAEN_FELib_SetUserRegister")
	purego.RegisterLibFunc(&l.sendCommand, handle, "CAEN_FELib_SendCommand")
	purego.RegisterLibFunc(&l.setReadDataFormat, handle, "CAEN_FELib_SetReadDataFormat")
	purego.RegisterLibFunc(&l.hasData, handle, "CAEN_FELib_HasData")

	l.readData, err = dlsym(handle, "CAEN_FELib_ReadData")
	if err != nil {
		return nil, "", fmt.Errorf("bind %s: %w", path, err)
	}

	return l, path, nil
}

func (l *lib) GetLibInfo(buf []byte) int {
	return int(l.getLibInfo(buf, uintptr(len(buf))))
}

func (l *lib) GetLibVersion(buf []byte) int {
	return int(l.getLibVersion(buf))
}

func (l *lib) GetErrorName(code int, buf []byte) int {
	return int(l.getErrorName(int32(code), buf))
}

func (l *lib) GetErrorDescription(code int, buf []byte) int {
	return int(l.getErrorDescription(int32(code), buf))
}

func (l *lib) GetLastError(buf []byte) int {
	return int(l.getLastError(buf))
}

func (l *lib) DevicesDiscovery(buf []byte, timeoutMs int) int {
	return int(l.devicesDiscovery(buf, uintptr(len(buf)), int32(timeoutMs)))
}

func (l *lib) Open(url string, handle *uint64) int {
	return int(l.open(url, handle))
}

func (l *lib) Close(handle uint64) int {
	return int(l.close(handle))
}

func (l *lib) GetDeviceTree(handle uint64, buf []byte) int {
	return int(l.getDeviceTree(handle, buf, uintptr(len(buf))))
}

func (l *lib) GetChildHandles(handle uint64, path string, out []uint64) int {
	return int(l.getChildHandles(handle, path, out, uintptr(len(out))))
}

func (l *lib) GetParentHandle(handle uint64, path string, out *uint64) int {
	return int(l.getParentHandle(handle, path, out))
}

func (l *lib) GetHandle(handle uint64, path string, out *uint64) int {
	return int(l.getHandle(handle, path, out))
}

func (l *lib) GetPath(handle uint64, buf []byte) int {
	return int(l.getPath(handle, buf))
}

func (l *lib) GetNodeProperties(handle uint64, path string, name []byte, nodeType *int32) int {
	return int(l.getNodeProperties(handle, path, name, nodeType))
}

func (l *lib) GetValue(handle uint64, path string, value []byte) int {
	return int(l.getValue(handle, path, value))
}

func (l *lib) SetValue(handle uint64, path, value string) int {
	return int(l.setValue(handle, path, value))
}

func (l *lib) GetUserRegister(handle uint64, address uint32, value *uint32) int {
	return int(l.getUserRegister(handle, address, value))
}

func (l *lib) SetUserRegister(handle uint64, address uint32, value uint32) int {
	return int(l.setUserRegister(handle, address, value))
}

func (l *lib) SendCommand(handle uint64, path string) int {
	return int(l.sendCommand(handle, path))
}

func (l *lib) SetReadDataFormat(handle uint64, format string) int {
	return int(l.setReadDataFormat(handle, format))
}

func (l *lib) HasData(handle uint64, timeoutMs int) int {
	return int(l.hasData(handle, int32(timeoutMs)))
}

func (l *lib) ReadData(handle uint64, timeoutMs int, args []unsafe.Pointer) int {
	call := make([]uintptr, 0, 2+len(args))
	call = append(call, uintptr(handle), uintptr(timeoutMs))
	for _, a := range args {
		call = append(call, uintptr(a))
	}
	r1, _, _ := purego.SyscallN(l.readData, call...)
	runtime.KeepAlive(args)
	return int(int32(r1))
}
