package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// DefaultErrBufSize is the size of the error buffer handed to every native call.
const DefaultErrBufSize = 1000

// TransitConfig holds the settings of the native transit client.
type TransitConfig struct {
	LibraryPath string            // Path to the native module, empty selects the default location
	ErrBufSize  int               // Size of the per-call error buffer (in bytes)
	AppType     string            // Application type reported in every tracer context
	AgentID     string            // Agent id reported in every tracer context
	NativeEnv   map[string]string // Variables passed to the native runtime before start
	BundleFile  string            // Payload file used by the transit command
	Logger      *zap.SugaredLogger
}

// DefaultTransitConfig returns the transit settings before any overrides.
func DefaultTransitConfig() TransitConfig {
	return TransitConfig{
		ErrBufSize: DefaultErrBufSize,
		AppType:    "VEMA",
		AgentID:    "gw-transit",
		NativeEnv:  map[string]string{},
	}
}

// LoadTransitConfig resolves defaults, the JSON file at path (or CONFIG) and the environment.
// Command line overrides are applied by the caller.
func LoadTransitConfig(path string) (*TransitConfig, error) {
	cfg := DefaultTransitConfig()

	if path == "" {
		path = os.Getenv("CONFIG")
	}
	if path != "" {
		js, err := loadTransitJSON(path)
		if err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
		applyTransitJSON(&cfg, js)
	}

	readTransitEnvironment(&cfg)
	return &cfg, nil
}

func applyTransitJSON(cfg *TransitConfig, js *transitJSON) {
	if js == nil {
		return
	}
	if js.Library != nil {
		cfg.LibraryPath = *js.Library
	}
	if js.ErrLength != nil && *js.ErrLength > 0 {
		cfg.ErrBufSize = *js.ErrLength
	}
	if js.AppType != nil {
		cfg.AppType = *js.AppType
	}
	if js.AgentID != nil {
		cfg.AgentID = *js.AgentID
	}
	if js.BundleFile != nil {
		cfg.BundleFile = *js.BundleFile
	}
	for k, v := range js.NativeEnv {
		if cfg.NativeEnv == nil {
			cfg.NativeEnv = make(map[string]string)
		}
		cfg.NativeEnv[k] = v
	}
}

func readTransitEnvironment(cfg *TransitConfig) {
	if lib := os.Getenv("LIBTRANSIT"); lib != "" {
		cfg.LibraryPath = lib
	}

	if errLen := os.Getenv("LIBTRANSIT_ERR_LENGTH"); errLen != "" {
		v, err := strconv.Atoi(errLen)
		if err == nil && v > 0 {
			cfg.ErrBufSize = v
		} else {
			log.Printf("invalid LIBTRANSIT_ERR_LENGTH env var: %q", errLen)
		}
	}

	if appType := os.Getenv("TRANSIT_APP_TYPE"); appType != "" {
		cfg.AppType = appType
	}

	if agentID := os.Getenv("TRANSIT_AGENT_ID"); agentID != "" {
		cfg.AgentID = agentID
	}

	if nativeEnv := os.Getenv("TRANSIT_NATIVE_ENV"); nativeEnv != "" {
		for _, pair := range strings.Split(nativeEnv, ",") {
			k, v, err := ParseKeyValue(pair)
			if err != nil {
				log.Printf("invalid TRANSIT_NATIVE_ENV entry: %v", err)
				continue
			}
			if cfg.NativeEnv == nil {
				cfg.NativeEnv = make(map[string]string)
			}
			cfg.NativeEnv[k] = v
		}
	}
}

var errBadPair = errors.New("expected key=value")

// ParseKeyValue splits "key=value". The key must not be empty.
func ParseKeyValue(s string) (string, string, error) {
	k, v, ok := strings.Cut(strings.TrimSpace(s), "=")
	if !ok || k == "" {
		return "", "", fmt.Errorf("%w: %q", errBadPair, s)
	}
	return k, v, nil
}
