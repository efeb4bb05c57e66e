// Package capi loads the CAEN_FELib shared library at runtime and exposes
// its C entry points to the rest of the module.
package capi

import "unsafe"

// API is the CAEN_FELib function table. Implementations return the raw C
// return code; translating negative codes into errors is the caller's job.
//
// Output string buffers are passed as byte slices whose length is forwarded
// to the native call where the C signature takes an explicit size. Paths may
// be empty, which the native library reads as "this node".
type API interface {
	GetLibInfo(buf []byte) int
	GetLibVersion(buf []byte) int
	GetErrorName(code int, buf []byte) int
	GetErrorDescription(code int, buf []byte) int
	GetLastError(buf []byte) int
	DevicesDiscovery(buf []byte, timeoutMs int) int

	Open(url string, handle *uint64) int
	Close(handle uint64) int
	GetDeviceTree(handle uint64, buf []byte) int
	GetChildHandles(handle uint64, path string, out []uint64) int
	GetParentHandle(handle uint64, path string, out *uint64) int
	GetHandle(handle uint64, path string, out *uint64) int
	GetPath(handle uint64, buf []byte) int
	GetNodeProperties(handle uint64, path string, name []byte, nodeType *int32) int
	GetValue(handle uint64, path string, value []byte) int
	SetValue(handle uint64, path, value string) int
	GetUserRegister(handle uint64, address uint32, value *uint32) int
	SetUserRegister(handle uint64, address uint32, value uint32) int
	SendCommand(handle uint64, path string) int
	SetReadDataFormat(handle uint64, format string) int
	HasData(handle uint64, timeoutMs int) int

	// ReadData is variadic in C; args holds one pointer per declared field,
	// passed through in order after the handle and the timeout.
	ReadData(handle uint64, timeoutMs int, args []unsafe.Pointer) int
}
