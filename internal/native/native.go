//go:build darwin || freebsd || linux

// Package native loads the transit shared library at runtime and exposes its C ABI
// as Go methods. It uses purego, so the binary does not need cgo.
//
// A loaded library is never unloaded: a Go c-shared module cannot be safely dlclosed
// once its runtime has started.
package native

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/and161185/gw-transit/internal/errs"
	"github.com/ebitengine/purego"
)

// DefaultPath is used when neither a path nor LIBTRANSIT is given.
const DefaultPath = "../libtransit/libtransit.so"

// EnvPath names the environment variable that selects the library file.
const EnvPath = "LIBTRANSIT"

// Library is a loaded transit module. It implements transit.Native.
//
// Every symbol is bound with the libtransit signature. Payload calls return a C bool
// and write their diagnostic into a caller-owned buffer; only the GetAgentId family and
// ListMetrics hand back module-allocated strings.
type Library struct {
	path string

	sendResourcesWithMetrics func(payload string, errBuf *byte, errBufLen uintptr) bool
	synchronizeInventory     func(payload string, errBuf *byte, errBufLen uintptr) bool
	synchronizeInventoryExt  func(payload string, errBuf *byte, errBufLen uintptr) bool
	sendEvents               func(payload string, errBuf *byte, errBufLen uintptr) bool
	sendEventsAck            func(payload string, errBuf *byte, errBufLen uintptr) bool
	sendEventsUnack          func(payload string, errBuf *byte, errBufLen uintptr) bool
	setInDowntime            func(payload string, errBuf *byte, errBufLen uintptr) bool
	clearInDowntime          func(payload string, errBuf *byte, errBufLen uintptr) bool
	listMetrics              func(errBuf *byte, errBufLen uintptr) unsafe.Pointer

	startTransport  func(errBuf *byte, errBufLen uintptr) bool
	stopTransport   func(errBuf *byte, errBufLen uintptr) bool
	startNats       func(errBuf *byte, errBufLen uintptr) bool
	stopNats        func(errBuf *byte, errBufLen uintptr) bool
	startController func(errBuf *byte, errBufLen uintptr) bool
	stopController  func(errBuf *byte, errBufLen uintptr) bool
	demandConfig    func(errBuf *byte, errBufLen uintptr) bool

	isControllerRunning func() bool
	isNatsRunning       func() bool
	isTransportRunning  func() bool

	registerListMetricsHandler func(handler uintptr)
	removeListMetricsHandler   func()
	registerConfigHandler      func(handler uintptr)
	removeConfigHandler        func()

	getAgentIdentity func(buf *byte, bufLen uintptr, errBuf *byte, errBufLen uintptr) bool
	getAgentID       func() unsafe.Pointer
	getAppName       func() unsafe.Pointer
	getAppType       func() unsafe.Pointer

	goSetenv func(key, value string, errBuf *byte, errBufLen uintptr) bool
}

type symbol struct {
	name     string
	fptr     any
	required bool
}

func (l *Library) symbols() []symbol {
	return []symbol{
		{"SendResourcesWithMetrics", &l.sendResourcesWithMetrics, true},
		{"SynchronizeInventory", &l.synchronizeInventory, true},
		{"StartTransport", &l.startTransport, true},
		{"StopTransport", &l.stopTransport, true},
		{"StartNats", &l.startNats, true},
		{"StopNats", &l.stopNats, true},
		{"IsControllerRunning", &l.isControllerRunning, true},
		{"IsNatsRunning", &l.isNatsRunning, true},
		{"IsTransportRunning", &l.isTransportRunning, true},

		{"SynchronizeInventoryExt", &l.synchronizeInventoryExt, false},
		{"SendEvents", &l.sendEvents, false},
		{"SendEventsAck", &l.sendEventsAck, false},
		{"SendEventsUnack", &l.sendEventsUnack, false},
		{"SetInDowntime", &l.setInDowntime, false},
		{"ClearInDowntime", &l.clearInDowntime, false},
		{"ListMetrics", &l.listMetrics, false},
		{"StartController", &l.startController, false},
		{"StopController", &l.stopController, false},
		{"DemandConfig", &l.demandConfig, false},
		{"RegisterListMetricsHandler", &l.registerListMetricsHandler, false},
		{"RemoveListMetricsHandler", &l.removeListMetricsHandler, false},
		{"RegisterConfigHandler", &l.registerConfigHandler, false},
		{"RemoveConfigHandler", &l.removeConfigHandler, false},
		{"GetAgentIdentity", &l.getAgentIdentity, false},
		{"GetAgentId", &l.getAgentID, false},
		{"GetAppName", &l.getAppName, false},
		{"GetAppType", &l.getAppType, false},
		{"GoSetenv", &l.goSetenv, false},
	}
}

// ResolvePath picks the library file: path if set, else $LIBTRANSIT, else DefaultPath.
// Relative paths are resolved against the working directory.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = os.Getenv(EnvPath)
	}
	if path == "" {
		path = DefaultPath
	}
	return filepath.Abs(path)
}

// Open loads the transit module. A missing file or a missing required symbol is
// reported as *errs.NativeLoadError. Optional symbols may be absent; calling them
// then fails with a diagnostic naming the symbol.
func Open(path string) (*Library, error) {
	resolved, err := ResolvePath(path)
	if err != nil {
		return nil, &errs.NativeLoadError{Path: path, Err: err}
	}
	if _, err := os.Stat(resolved); err != nil {
		return nil, &errs.NativeLoadError{Path: resolved, Err: err}
	}
	return open(resolved)
}

func open(path string) (*Library, error) {
	if err := loadLibc(); err != nil {
		return nil, &errs.NativeLoadError{Path: path, Err: err}
	}

	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return nil, &errs.NativeLoadError{Path: path, Err: err}
	}

	lib := &Library{path: path}
	var missing []error
	for _, s := range lib.symbols() {
		sym, err := purego.Dlsym(handle, s.name)
		if err != nil {
			if s.required {
				missing = append(missing, fmt.Errorf("symbol %s: %w", s.name, err))
			}
			continue
		}
		purego.RegisterFunc(s.fptr, sym)
	}
	if len(missing) > 0 {
		return nil, &errs.NativeLoadError{Path: path, Err: errors.Join(missing...)}
	}
	return lib, nil
}

// Path returns the absolute path the library was loaded from.
func (l *Library) Path() string { return l.path }

func (l *Library) SendResourcesWithMetrics(payload string, errBuf []byte) bool {
	return l.callPayload("SendResourcesWithMetrics", l.sendResourcesWithMetrics, payload, errBuf)
}

func (l *Library) SynchronizeInventory(payload string, errBuf []byte) bool {
	return l.callPayload("SynchronizeInventory", l.synchronizeInventory, payload, errBuf)
}

func (l *Library) SynchronizeInventoryExt(payload string, errBuf []byte) bool {
	return l.callPayload("SynchronizeInventoryExt", l.synchronizeInventoryExt, payload, errBuf)
}

func (l *Library) SendEvents(payload string, errBuf []byte) bool {
	return l.callPayload("SendEvents", l.sendEvents, payload, errBuf)
}

func (l *Library) SendEventsAck(payload string, errBuf []byte) bool {
	return l.callPayload("SendEventsAck", l.sendEventsAck, payload, errBuf)
}

func (l *Library) SendEventsUnack(payload string, errBuf []byte) bool {
	return l.callPayload("SendEventsUnack", l.sendEventsUnack, payload, errBuf)
}

func (l *Library) SetInDowntime(payload string, errBuf []byte) bool {
	return l.callPayload("SetInDowntime", l.setInDowntime, payload, errBuf)
}

func (l *Library) ClearInDowntime(payload string, errBuf []byte) bool {
	return l.callPayload("ClearInDowntime", l.clearInDowntime, payload, errBuf)
}

// ListMetrics is not exported by libtransit builds, which pull the listing through
// RegisterListMetricsHandler instead. It is called only when the module exports it.
func (l *Library) ListMetrics(errBuf []byte) (string, bool) {
	if l.listMetrics == nil {
		return "", l.unsupported("ListMetrics", errBuf)
	}
	out := l.listMetrics(bufPtr(errBuf), uintptr(len(errBuf)))
	runtime.KeepAlive(errBuf)
	return takeString(out)
}

func (l *Library) StartTransport(errBuf []byte) bool {
	return l.callBool("StartTransport", l.startTransport, errBuf)
}

func (l *Library) StopTransport(errBuf []byte) bool {
	return l.callBool("StopTransport", l.stopTransport, errBuf)
}

func (l *Library) StartNats(errBuf []byte) bool {
	return l.callBool("StartNats", l.startNats, errBuf)
}

func (l *Library) StopNats(errBuf []byte) bool {
	return l.callBool("StopNats", l.stopNats, errBuf)
}

func (l *Library) StartController(errBuf []byte) bool {
	return l.callBool("StartController", l.startController, errBuf)
}

func (l *Library) StopController(errBuf []byte) bool {
	return l.callBool("StopController", l.stopController, errBuf)
}

func (l *Library) DemandConfig(errBuf []byte) bool {
	return l.callBool("DemandConfig", l.demandConfig, errBuf)
}

func (l *Library) IsControllerRunning() bool { return l.isControllerRunning() }
func (l *Library) IsNatsRunning() bool       { return l.isNatsRunning() }
func (l *Library) IsTransportRunning() bool  { return l.isTransportRunning() }

// RegisterListMetricsHandler makes handler the process-wide metrics listing source.
func (l *Library) RegisterListMetricsHandler(handler func() string, errBuf []byte) bool {
	if l.registerListMetricsHandler == nil {
		return l.unsupported("RegisterListMetricsHandler", errBuf)
	}
	setHandler(handler)
	l.registerListMetricsHandler(trampoline())
	return true
}

func (l *Library) RemoveListMetricsHandler() {
	setHandler(nil)
	if l.removeListMetricsHandler != nil {
		l.removeListMetricsHandler()
	}
}

// RegisterConfigHandler makes handler the process-wide receiver of configuration updates.
func (l *Library) RegisterConfigHandler(handler func(string), errBuf []byte) bool {
	if l.registerConfigHandler == nil {
		return l.unsupported("RegisterConfigHandler", errBuf)
	}
	setConfigHandler(handler)
	l.registerConfigHandler(configTrampoline())
	return true
}

func (l *Library) RemoveConfigHandler() {
	setConfigHandler(nil)
	if l.removeConfigHandler != nil {
		l.removeConfigHandler()
	}
}

// AgentIdentity fills buf with the identity JSON. The module fails when buf is too small.
func (l *Library) AgentIdentity(buf, errBuf []byte) bool {
	if l.getAgentIdentity == nil {
		return l.unsupported("GetAgentIdentity", errBuf)
	}
	ok := l.getAgentIdentity(bufPtr(buf), uintptr(len(buf)), bufPtr(errBuf), uintptr(len(errBuf)))
	runtime.KeepAlive(buf)
	runtime.KeepAlive(errBuf)
	return ok
}

func (l *Library) AgentID() (string, bool) { return callText(l.getAgentID) }
func (l *Library) AppName() (string, bool) { return callText(l.getAppName) }
func (l *Library) AppType() (string, bool) { return callText(l.getAppType) }

func (l *Library) Setenv(key, value string, errBuf []byte) bool {
	if l.goSetenv == nil {
		return l.unsupported("GoSetenv", errBuf)
	}
	ok := l.goSetenv(key, value, bufPtr(errBuf), uintptr(len(errBuf)))
	runtime.KeepAlive(errBuf)
	return ok
}

func (l *Library) callPayload(name string, fn func(string, *byte, uintptr) bool, payload string, errBuf []byte) bool {
	if fn == nil {
		return l.unsupported(name, errBuf)
	}
	ok := fn(payload, bufPtr(errBuf), uintptr(len(errBuf)))
	runtime.KeepAlive(errBuf)
	return ok
}

func (l *Library) callBool(name string, fn func(*byte, uintptr) bool, errBuf []byte) bool {
	if fn == nil {
		return l.unsupported(name, errBuf)
	}
	ok := fn(bufPtr(errBuf), uintptr(len(errBuf)))
	runtime.KeepAlive(errBuf)
	return ok
}

// callText returns a string the module allocated with malloc, freeing it after the copy.
func callText(fn func() unsafe.Pointer) (string, bool) {
	if fn == nil {
		return "", false
	}
	return takeString(fn())
}

// unsupported reports a missing optional symbol through errBuf. It always returns false.
func (l *Library) unsupported(name string, errBuf []byte) bool {
	writeCString(errBuf, fmt.Sprintf("%s: not exported by %s", name, filepath.Base(l.path)))
	return false
}

func bufPtr(buf []byte) *byte {
	if len(buf) == 0 {
		return nil
	}
	return &buf[0]
}

// writeCString stores s into buf as a NUL-terminated string, truncating if needed.
func writeCString(buf []byte, s string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
}
