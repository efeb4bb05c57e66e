//go:build !windows

package capi

import (
	"runtime"
	"strings"

	"github.com/ebitengine/purego"
)

// sharedName maps a bare library name to the platform file name. Names that
// already look like a file (path separator or extension) pass through so a
// full path or versioned name can be given.
func sharedName(name string) string {
	if strings.ContainsAny(name, "/.") {
		return name
	}
	if runtime.GOOS == "darwin" {
		return "lib" + name + ".dylib"
	}
	return "lib" + name + ".so"
}

func dlopen(name string) (uintptr, string, error) {
	file := sharedName(name)
	h, err := purego.Dlopen(file, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, "", err
	}
	return h, file, nil
}

func dlsym(handle uintptr, name string) (uintptr, error) {
	return purego.Dlsym(handle, name)
}
