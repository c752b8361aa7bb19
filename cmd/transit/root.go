package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/and161185/gw-transit/internal/buildinfo"
	"github.com/and161185/gw-transit/internal/config"
	"github.com/and161185/gw-transit/internal/native"
	"github.com/and161185/gw-transit/internal/transit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// opener loads the transit module at path.
type opener func(path string) (transit.Native, error)

func openNative(path string) (transit.Native, error) {
	return native.Open(path)
}

// app carries the state shared by all subcommands.
type app struct {
	open opener

	configPath string
	library    string
	errLength  int
	nativeEnv  []string

	cfg    *config.TransitConfig
	client *transit.Client
}

func newApp(open opener) *app {
	return &app{open: open}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "transit",
		Short: "Send resources and metrics through the native transit module",
		Long: `transit loads the native transit module and calls it with JSON payloads.

Settings come from the JSON config file (-c or CONFIG), the environment
(LIBTRANSIT, LIBTRANSIT_ERR_LENGTH, TRANSIT_*) and the flags below, in that order.`,
		Version:           buildinfo.Version(),
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "path to JSON config file")
	pf.StringVar(&a.library, "lib", "", "path to the native transit module")
	pf.IntVar(&a.errLength, "err-length", 0, "size of the per-call error buffer")
	pf.StringArrayVar(&a.nativeEnv, "native-env", nil, "key=value passed to the native module before the command (repeatable)")

	root.AddCommand(
		a.sendCmd(),
		a.syncCmd(),
		a.listCmd(),
		a.startCmd(),
		a.statusCmd(),
		a.eventsCmd(),
		a.downtimeCmd(),
		a.identityCmd(),
	)
	return root
}

// setup resolves the configuration, loads the module and forwards the native environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadTransitConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.library != "" {
		cfg.LibraryPath = a.library
	}
	if a.errLength > 0 {
		cfg.ErrBufSize = a.errLength
	}
	for _, pair := range a.nativeEnv {
		k, v, err := config.ParseKeyValue(pair)
		if err != nil {
			return fmt.Errorf("--native-env: %w", err)
		}
		cfg.NativeEnv[k] = v
	}
	if cfg.Logger == nil {
		logger, err := config.NewLogger("stderr")
		if err != nil {
			logger = zap.NewNop().Sugar()
		}
		cfg.Logger = logger
	}
	a.cfg = cfg

	lib, err := a.open(cfg.LibraryPath)
	if err != nil {
		return err
	}
	a.client = transit.NewClient(lib, cfg)

	keys := make([]string, 0, len(cfg.NativeEnv))
	for k := range cfg.NativeEnv {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := a.client.Setenv(k, cfg.NativeEnv[k]); err != nil {
			return fmt.Errorf("forward %s: %w", k, err)
		}
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
