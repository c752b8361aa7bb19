//go:build darwin || freebsd || linux

package native

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Strings crossing the boundary are owned by the C allocator: the module frees what
// the metrics callback returns, and we free what the module returns.
var (
	libcOnce sync.Once
	libcErr  error
	malloc   func(size uintptr) unsafe.Pointer
	free     func(ptr unsafe.Pointer)
)

func loadLibc() error {
	libcOnce.Do(func() {
		handle, err := purego.Dlopen(libcName, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			libcErr = fmt.Errorf("open %s: %w", libcName, err)
			return
		}
		purego.RegisterLibFunc(&malloc, handle, "malloc")
		purego.RegisterLibFunc(&free, handle, "free")
	})
	return libcErr
}

// takeString copies a module-allocated C string into Go memory and releases it.
// A NULL pointer reports failure.
func takeString(p unsafe.Pointer) (string, bool) {
	if p == nil {
		return "", false
	}
	s := goString(p)
	free(p)
	return s, true
}

func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// cString copies s into a malloc-allocated NUL-terminated buffer.
func cString(s string) unsafe.Pointer {
	p := malloc(uintptr(len(s) + 1))
	if p == nil {
		return nil
	}
	dst := unsafe.Slice((*byte)(p), len(s)+1)
	copy(dst, s)
	dst[len(s)] = 0
	return p
}
