package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func setEnvAndRun(t *testing.T, env map[string]string, fn func()) {
	t.Helper()

	backup := map[string]string{}
	for k := range env {
		backup[k] = os.Getenv(k)
	}

	for k, v := range env {
		require.NoError(t, os.Setenv(k, v))
	}
	defer func() {
		for k := range env {
			_ = os.Unsetenv(k)
			if old, ok := backup[k]; ok && old != "" {
				_ = os.Setenv(k, old)
			}
		}
	}()

	fn()
}

func freshFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	return fs
}

func writeJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestNewDemoConfig_Defaults(t *testing.T) {
	cfg := newDemoConfig(freshFlagSet(), nil)

	require.Equal(t, ":2222", cfg.Addr)
	require.Equal(t, "FinanceServicesGo", cfg.HostName)
	require.Equal(t, "PrometheusDemo", cfg.HostGroup)
	require.Equal(t, 3, cfg.Hosts)
	require.Equal(t, 3, cfg.ServicesPerHost)
	require.Equal(t, 0, cfg.WaitFor)
	require.Equal(t, 60, cfg.PublishInterval)
	require.False(t, cfg.Publish)
	require.Equal(t, DefaultErrBufSize, cfg.Transit.ErrBufSize)
}

func TestNewDemoConfig_Flags(t *testing.T) {
	args := []string{
		"-a", "127.0.0.1:9999", "-wait.for", "2", "-hosts", "5", "-services", "4",
		"-publish", "-p", "15", "-lib", "/opt/libtransit.so", "-native-env", "NATS_STORE_TYPE=MEMORY",
	}
	cfg := newDemoConfig(freshFlagSet(), args)

	require.Equal(t, "127.0.0.1:9999", cfg.Addr)
	require.Equal(t, 2, cfg.WaitFor)
	require.Equal(t, 5, cfg.Hosts)
	require.Equal(t, 4, cfg.ServicesPerHost)
	require.True(t, cfg.Publish)
	require.Equal(t, 15, cfg.PublishInterval)
	require.Equal(t, "/opt/libtransit.so", cfg.Transit.LibraryPath)
	require.Equal(t, "MEMORY", cfg.Transit.NativeEnv["NATS_STORE_TYPE"])
}

func TestNewDemoConfig_JSONDoesNotOverrideFlags(t *testing.T) {
	path := writeJSON(t, `{
		"address": "0.0.0.0:7070",
		"wait_for": "3s",
		"hosts": 7,
		"publish": true,
		"publish_interval": "2m",
		"transit": {"library": "/from/json.so", "app_type": "PROMETHEUS", "native_env": {"A": "1"}}
	}`)

	cfg := newDemoConfig(freshFlagSet(), []string{"-c", path, "-hosts", "2", "-lib", "/from/flag.so"})

	require.Equal(t, "0.0.0.0:7070", cfg.Addr)
	require.Equal(t, 3, cfg.WaitFor)
	require.Equal(t, 2, cfg.Hosts)
	require.True(t, cfg.Publish)
	require.Equal(t, 120, cfg.PublishInterval)
	require.Equal(t, "/from/flag.so", cfg.Transit.LibraryPath)
	require.Equal(t, "PROMETHEUS", cfg.Transit.AppType)
	require.Equal(t, "1", cfg.Transit.NativeEnv["A"])
}

func TestNewDemoConfig_EnvWins(t *testing.T) {
	env := map[string]string{
		"ADDRESS":    "srv:8081",
		"HOSTS":      "9",
		"PUBLISH":    "true",
		"LIBTRANSIT": "/env/libtransit.so",
		"KEY":        "k",
	}
	setEnvAndRun(t, env, func() {
		cfg := newDemoConfig(freshFlagSet(), []string{"-a", "flag:1", "-lib", "/flag.so"})
		require.Equal(t, "srv:8081", cfg.Addr)
		require.Equal(t, 9, cfg.Hosts)
		require.True(t, cfg.Publish)
		require.Equal(t, "/env/libtransit.so", cfg.Transit.LibraryPath)
		require.Equal(t, "k", cfg.Key)
	})
}

func TestReadDemoEnvironment_Invalid(t *testing.T) {
	env := map[string]string{
		"HOSTS":   "many", // invalid
		"PUBLISH": "nope", // invalid
	}
	setEnvAndRun(t, env, func() {
		cfg := &DemoConfig{Hosts: 3}
		readDemoEnvironment(cfg)
		require.Equal(t, 3, cfg.Hosts)
		require.False(t, cfg.Publish)
	})
}

func TestLoadTransitConfig(t *testing.T) {
	path := writeJSON(t, `{"library": "/json.so", "err_length": 2048, "agent_id": "agent-1", "bundle_file": "b.json"}`)

	env := map[string]string{
		"TRANSIT_APP_TYPE":   "NAGIOS",
		"TRANSIT_NATIVE_ENV": "A=1, B=2,broken",
	}
	setEnvAndRun(t, env, func() {
		cfg, err := LoadTransitConfig(path)
		require.NoError(t, err)
		require.Equal(t, "/json.so", cfg.LibraryPath)
		require.Equal(t, 2048, cfg.ErrBufSize)
		require.Equal(t, "agent-1", cfg.AgentID)
		require.Equal(t, "NAGIOS", cfg.AppType)
		require.Equal(t, "b.json", cfg.BundleFile)
		require.Equal(t, map[string]string{"A": "1", "B": "2"}, cfg.NativeEnv)
	})
}

func TestLoadTransitConfig_Errors(t *testing.T) {
	_, err := LoadTransitConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	setEnvAndRun(t, map[string]string{"LIBTRANSIT_ERR_LENGTH": "-1"}, func() {
		cfg, err := LoadTransitConfig("")
		require.NoError(t, err)
		require.Equal(t, DefaultErrBufSize, cfg.ErrBufSize)
	})
}

func TestParseKeyValue(t *testing.T) {
	k, v, err := ParseKeyValue("NATS_STORE_TYPE=FILE")
	require.NoError(t, err)
	require.Equal(t, "NATS_STORE_TYPE", k)
	require.Equal(t, "FILE", v)

	k, v, err = ParseKeyValue("EMPTY=")
	require.NoError(t, err)
	require.Equal(t, "EMPTY", k)
	require.Empty(t, v)

	_, _, err = ParseKeyValue("=x")
	require.Error(t, err)
	_, _, err = ParseKeyValue("novalue")
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("stdout")
	require.NoError(t, err)
	require.NotNil(t, logger)
}
