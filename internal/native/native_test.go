//go:build darwin || freebsd || linux

package native

import (
	"os"
	"path/filepath"
	"testing"
	"unsafe"

	"github.com/and161185/gw-transit/internal/errs"
	"github.com/and161185/gw-transit/internal/transit"
	"github.com/ebitengine/purego"
	"github.com/stretchr/testify/require"
)

var _ transit.Native = (*Library)(nil)

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "")

	got, err := ResolvePath("")
	require.NoError(t, err)
	want, _ := filepath.Abs(DefaultPath)
	require.Equal(t, want, got)

	t.Setenv(EnvPath, "/opt/groundwork/libtransit.so")
	got, err = ResolvePath("")
	require.NoError(t, err)
	require.Equal(t, "/opt/groundwork/libtransit.so", got)

	got, err = ResolvePath("/explicit/libtransit.so")
	require.NoError(t, err)
	require.Equal(t, "/explicit/libtransit.so", got)
}

func TestOpen_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libtransit.so")

	lib, err := Open(path)
	require.Nil(t, lib)
	require.ErrorIs(t, err, errs.ErrNativeLoad)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpen_NotALibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "libtransit.so")
	require.NoError(t, os.WriteFile(path, []byte("not an ELF"), 0o600))

	_, err := Open(path)
	require.ErrorIs(t, err, errs.ErrNativeLoad)
}

func TestOpen_MissingRequiredSymbols(t *testing.T) {
	// libc loads fine but exports none of the transit symbols
	_, err := open(libcName)
	require.ErrorIs(t, err, errs.ErrNativeLoad)
	require.Contains(t, err.Error(), "SendResourcesWithMetrics")
	require.Contains(t, err.Error(), "IsTransportRunning")
}

func TestUnsupportedOptionalSymbols(t *testing.T) {
	lib := &Library{path: "/opt/lib/libtransit.so"}
	buf := make([]byte, 128)

	out, ok := lib.ListMetrics(buf)
	require.False(t, ok)
	require.Empty(t, out)
	require.Equal(t, "ListMetrics: not exported by libtransit.so", goCopy(buf))

	buf = make([]byte, 128)
	require.False(t, lib.Setenv("K", "V", buf))
	require.Equal(t, "GoSetenv: not exported by libtransit.so", goCopy(buf))

	buf = make([]byte, 128)
	require.False(t, lib.SendEvents(`{"events":[]}`, buf))
	require.Equal(t, "SendEvents: not exported by libtransit.so", goCopy(buf))

	buf = make([]byte, 128)
	require.False(t, lib.AgentIdentity(make([]byte, 64), buf))
	require.Equal(t, "GetAgentIdentity: not exported by libtransit.so", goCopy(buf))

	_, ok = lib.AgentID()
	require.False(t, ok)
	require.False(t, lib.RegisterListMetricsHandler(func() string { return "[]" }, make([]byte, 8)))
	require.False(t, lib.RegisterConfigHandler(func(string) {}, make([]byte, 8)))
	require.False(t, lib.SynchronizeInventoryExt("{}", nil))
	require.False(t, lib.SetInDowntime("{}", nil))
	require.False(t, lib.ClearInDowntime("{}", nil))
	require.False(t, lib.DemandConfig(nil))
	require.False(t, lib.StartController(nil))

	lib.RemoveListMetricsHandler()
	lib.RemoveConfigHandler()
}

func TestWriteCString_Truncates(t *testing.T) {
	buf := make([]byte, 5)
	writeCString(buf, "abcdefgh")
	require.Equal(t, []byte("abcd\x00"), buf)

	writeCString(nil, "ignored")
}

func TestListing_UsesActiveHandler(t *testing.T) {
	require.NoError(t, loadLibc())
	t.Cleanup(func() { setHandler(nil) })

	setHandler(nil)
	require.Equal(t, "[]", takeListing(t))

	setHandler(func() string { return `[{"name":"response_time"}]` })
	require.Equal(t, `[{"name":"response_time"}]`, takeListing(t))

	setHandler(func() string { return `[{"name":"bytes_per_minute"}]` })
	require.Equal(t, `[{"name":"bytes_per_minute"}]`, takeListing(t))
}

func TestDeliverConfig_UsesActiveHandler(t *testing.T) {
	require.NoError(t, loadLibc())
	t.Cleanup(func() { setConfigHandler(nil) })

	p := cString(`{"connector":{"agentId":"a1"}}`)
	t.Cleanup(func() { free(p) })

	// no handler: the update is dropped
	deliverConfig(p)

	var got string
	setConfigHandler(func(s string) { got = s })
	deliverConfig(p)
	require.Equal(t, `{"connector":{"agentId":"a1"}}`, got)
}

func TestTrampolines_CalledThroughCPointer(t *testing.T) {
	require.NoError(t, loadLibc())
	t.Cleanup(func() {
		setHandler(nil)
		setConfigHandler(nil)
	})

	setHandler(func() string { return `[{"name":"x"}]` })
	r1, _, _ := purego.SyscallN(trampoline())
	got, ok := takeString(*(*unsafe.Pointer)(unsafe.Pointer(&r1)))
	require.True(t, ok)
	require.Equal(t, `[{"name":"x"}]`, got)

	var cfg string
	setConfigHandler(func(s string) { cfg = s })
	p := cString(`{"connector":{}}`)
	t.Cleanup(func() { free(p) })
	purego.SyscallN(configTrampoline(), uintptr(p))
	require.Equal(t, `{"connector":{}}`, cfg)
}

func TestCStringRoundTrip(t *testing.T) {
	require.NoError(t, loadLibc())

	p := cString("héllo")
	got, ok := takeString(p)
	require.True(t, ok)
	require.Equal(t, "héllo", got)

	_, ok = takeString(nil)
	require.False(t, ok)
	require.Empty(t, goString(nil))
}

func takeListing(t *testing.T) string {
	t.Helper()
	s, ok := takeString(listing())
	require.True(t, ok)
	return s
}

func goCopy(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
