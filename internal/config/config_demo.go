package config

import (
	"flag"
	"log"
	"os"
	"strconv"

	"go.uber.org/zap"
)

// DemoConfig holds the configuration settings for the fake metrics service.
type DemoConfig struct {
	Addr             string // Server address
	Logger           *zap.SugaredLogger
	WaitFor          int    // Startup delay (in seconds)
	HostName         string // Prefix of generated host names
	HostGroup        string // Host group, exported as the "group" label
	Hosts            int    // Number of generated hosts
	ServicesPerHost  int    // Number of generated services on every host
	GenerateInterval int    // Interval of the built-in request generator (in seconds), 0 disables it
	TrustedSubnet    string // CIDR allowed to scrape /metrics, ex. "192.168.1.0/24"
	Key              string // Key for response signing
	StoreFile        string // File the latest samples are restored from and saved to, empty disables it
	Publish          bool   // Whether to publish samples through the native transit module
	PublishInterval  int    // Interval for publishing samples (in seconds)
	Transit          TransitConfig
}

// NewDemoConfig creates and returns a new DemoConfig by parsing flags, the JSON config
// file and environment variables.
func NewDemoConfig() *DemoConfig {
	cfg := newDemoConfig(flag.CommandLine, os.Args[1:])

	logger, err := NewLogger("stdout", "demo.log")
	if err != nil {
		log.Printf("failed to build logger, falling back to stdout: %v", err)
		logger = zap.Must(zap.NewProduction()).Sugar()
	}
	cfg.Logger = logger
	cfg.Transit.Logger = logger
	return cfg
}

func newDemoConfig(fs *flag.FlagSet, args []string) *DemoConfig {
	// 0) defaults
	cfg := &DemoConfig{
		Addr:            ":2222",
		HostName:        "FinanceServicesGo",
		HostGroup:       "PrometheusDemo",
		Hosts:           3,
		ServicesPerHost: 3,
		PublishInterval: 60,
		Transit:         DefaultTransitConfig(),
	}

	// 1) flags
	fAddr := strFlag{v: cfg.Addr}
	fWait := intFlag{v: cfg.WaitFor}
	fHost := strFlag{v: cfg.HostName}
	fGroup := strFlag{v: cfg.HostGroup}
	fHosts := intFlag{v: cfg.Hosts}
	fServices := intFlag{v: cfg.ServicesPerHost}
	fGenerate := intFlag{v: cfg.GenerateInterval}
	fPublish := boolFlag{v: cfg.Publish}
	fPublishI := intFlag{v: cfg.PublishInterval}
	fLib := strFlag{v: cfg.Transit.LibraryPath}
	var fKey, fTrustedSubnet, fStore, fConf strFlag
	var fNativeEnv mapFlag

	fs.Var(&fAddr, "a", "HTTP server address")
	fs.Var(&fWait, "wait.for", "startup delay (seconds)")
	fs.Var(&fHost, "host", "host name prefix")
	fs.Var(&fGroup, "group", "host group")
	fs.Var(&fHosts, "hosts", "number of generated hosts")
	fs.Var(&fServices, "services", "number of services per host")
	fs.Var(&fGenerate, "g", "request generator interval (seconds), 0 disables")
	fs.Var(&fTrustedSubnet, "t", "trusted subnet for /metrics")
	fs.Var(&fKey, "k", "Hash key string")
	fs.Var(&fStore, "f", "file storage path for the latest samples")
	fs.Var(&fPublish, "publish", "publish samples through the native transit module")
	fs.Var(&fPublishI, "p", "publish interval (seconds)")
	fs.Var(&fLib, "lib", "path to the native transit module")
	fs.Var(&fNativeEnv, "native-env", "key=value passed to the native module (repeatable)")
	fs.Var(&fConf, "c", "Path to JSON config file")
	fs.Var(&fConf, "config", "Path to JSON config file (alias)")
	if err := fs.Parse(args); err != nil {
		log.Printf("invalid flags: %v", err)
	}

	cfg.Addr = fAddr.v
	cfg.WaitFor = fWait.v
	cfg.HostName = fHost.v
	cfg.HostGroup = fGroup.v
	cfg.Hosts = fHosts.v
	cfg.ServicesPerHost = fServices.v
	cfg.GenerateInterval = fGenerate.v
	cfg.TrustedSubnet = fTrustedSubnet.v
	cfg.Key = fKey.v
	cfg.StoreFile = fStore.v
	cfg.Publish = fPublish.v
	cfg.PublishInterval = fPublishI.v
	cfg.Transit.LibraryPath = fLib.v

	// 2) JSON fills what flags did not set
	if fConf.v == "" {
		if v := os.Getenv("CONFIG"); v != "" {
			fConf.v = v
		}
	}
	if fConf.v != "" {
		js, err := loadDemoJSON(fConf.v)
		if err != nil {
			log.Printf("failed to read config %s: %v", fConf.v, err)
		} else {
			applyDemoJSON(cfg, js, demoFlagsSet{
				addr: fAddr.set, wait: fWait.set, host: fHost.set, group: fGroup.set,
				hosts: fHosts.set, services: fServices.set, generate: fGenerate.set,
				trusted: fTrustedSubnet.set, key: fKey.set, store: fStore.set, publish: fPublish.set,
				publishInterval: fPublishI.set, lib: fLib.set,
			})
		}
	}

	// 3) environment
	readDemoEnvironment(cfg)
	readTransitEnvironment(&cfg.Transit)

	for k, v := range fNativeEnv.v {
		cfg.Transit.NativeEnv[k] = v
	}
	return cfg
}

type demoFlagsSet struct {
	addr, wait, host, group, hosts, services, generate bool
	trusted, key, store, publish, publishInterval, lib bool
}

func applyDemoJSON(cfg *DemoConfig, js *demoJSON, set demoFlagsSet) {
	// the transit section goes first so -lib still wins over it
	lib := cfg.Transit.LibraryPath
	applyTransitJSON(&cfg.Transit, js.Transit)
	if set.lib {
		cfg.Transit.LibraryPath = lib
	}

	if js.Address != nil && !set.addr {
		cfg.Addr = *js.Address
	}
	if js.WaitFor != nil && !set.wait {
		if sec, err := parseDurationSeconds(*js.WaitFor); err == nil {
			cfg.WaitFor = sec
		}
	}
	if js.HostName != nil && !set.host {
		cfg.HostName = *js.HostName
	}
	if js.HostGroup != nil && !set.group {
		cfg.HostGroup = *js.HostGroup
	}
	if js.Hosts != nil && !set.hosts {
		cfg.Hosts = *js.Hosts
	}
	if js.ServicesPerHost != nil && !set.services {
		cfg.ServicesPerHost = *js.ServicesPerHost
	}
	if js.GenerateInterval != nil && !set.generate {
		if sec, err := parseDurationSeconds(*js.GenerateInterval); err == nil {
			cfg.GenerateInterval = sec
		}
	}
	if js.TrustedSubnet != nil && !set.trusted {
		cfg.TrustedSubnet = *js.TrustedSubnet
	}
	if js.Key != nil && !set.key {
		cfg.Key = *js.Key
	}
	if js.StoreFile != nil && !set.store {
		cfg.StoreFile = *js.StoreFile
	}
	if js.Publish != nil && !set.publish {
		cfg.Publish = *js.Publish
	}
	if js.PublishInterval != nil && !set.publishInterval {
		if sec, err := parseDurationSeconds(*js.PublishInterval); err == nil {
			cfg.PublishInterval = sec
		}
	}
}

func readDemoEnvironment(cfg *DemoConfig) {
	if addr := os.Getenv("ADDRESS"); addr != "" {
		cfg.Addr = addr
	}

	readIntEnv("WAIT_FOR", &cfg.WaitFor)
	readIntEnv("HOSTS", &cfg.Hosts)
	readIntEnv("SERVICES_PER_HOST", &cfg.ServicesPerHost)
	readIntEnv("GENERATE_INTERVAL", &cfg.GenerateInterval)
	readIntEnv("PUBLISH_INTERVAL", &cfg.PublishInterval)

	if host := os.Getenv("HOST_NAME"); host != "" {
		cfg.HostName = host
	}

	if group := os.Getenv("HOST_GROUP"); group != "" {
		cfg.HostGroup = group
	}

	if trustedSubnet := os.Getenv("TRUSTED_SUBNET"); trustedSubnet != "" {
		cfg.TrustedSubnet = trustedSubnet
	}

	if key := os.Getenv("KEY"); key != "" {
		cfg.Key = key
	}

	if path := os.Getenv("FILE_STORAGE_PATH"); path != "" {
		cfg.StoreFile = path
	}

	publishEnv := os.Getenv("PUBLISH")
	if publishEnv != "" {
		v, err := strconv.ParseBool(publishEnv)
		if err == nil {
			cfg.Publish = v
		} else {
			log.Printf("invalid PUBLISH env var: %v", err)
		}
	}
}

func readIntEnv(name string, dst *int) {
	raw := os.Getenv(name)
	if raw == "" {
		return
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s env var: %v", name, err)
		return
	}
	*dst = v
}
