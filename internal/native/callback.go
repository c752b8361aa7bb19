//go:build darwin || freebsd || linux

package native

import (
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
)

// The module keeps bare C function pointers, so Go objects never cross the boundary.
// One trampoline per callback kind is created per process and reads the active handler
// at call time.
var (
	handlerSlot    atomic.Pointer[func() string]
	trampolineOnce sync.Once
	trampolinePtr  uintptr

	configSlot           atomic.Pointer[func(string)]
	configTrampolineOnce sync.Once
	configTrampolinePtr  uintptr
)

func setHandler(h func() string) {
	if h == nil {
		handlerSlot.Store(nil)
		return
	}
	handlerSlot.Store(&h)
}

func trampoline() uintptr {
	trampolineOnce.Do(func() {
		trampolinePtr = purego.NewCallback(func() uintptr {
			return uintptr(listing())
		})
	})
	return trampolinePtr
}

// listing runs the active handler and returns its answer in C memory. With no handler
// installed the listing is an empty JSON array.
func listing() unsafe.Pointer {
	out := "[]"
	if h := handlerSlot.Load(); h != nil {
		out = (*h)()
	}
	return cString(out)
}

func setConfigHandler(h func(string)) {
	if h == nil {
		configSlot.Store(nil)
		return
	}
	configSlot.Store(&h)
}

// configTrampoline is the void (*)(char *) the module calls with new configuration.
// The module owns the string and frees it once the call returns.
func configTrampoline() uintptr {
	configTrampolineOnce.Do(func() {
		configTrampolinePtr = purego.NewCallback(deliverConfig)
	})
	return configTrampolinePtr
}

// deliverConfig hands the configuration text to the active handler, if any.
func deliverConfig(p unsafe.Pointer) {
	if h := configSlot.Load(); h != nil {
		(*h)(goString(p))
	}
}
