//go:build windows

package capi

import (
	"strings"

	"golang.org/x/sys/windows"
)

func sharedName(name string) string {
	if strings.ContainsAny(name, `/\.`) {
		return name
	}
	return name + ".dll"
}

func dlopen(name string) (uintptr, string, error) {
	file := sharedName(name)
	h, err := windows.LoadLibrary(file)
	if err != nil {
		return 0, "", err
	}
	return uintptr(h), file, nil
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return windows.GetProcAddress(windows.Handle(handle), name)
}
