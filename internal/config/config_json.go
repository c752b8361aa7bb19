package config

import (
	"encoding/json"
	"os"
	"time"
)

type transitJSON struct {
	Library    *string           `json:"library"`
	ErrLength  *int              `json:"err_length"`
	AppType    *string           `json:"app_type"`
	AgentID    *string           `json:"agent_id"`
	NativeEnv  map[string]string `json:"native_env"`
	BundleFile *string           `json:"bundle_file"`
}

type demoJSON struct {
	Address          *string      `json:"address"`
	WaitFor          *string      `json:"wait_for"` // "5s"
	HostName         *string      `json:"host_name"`
	HostGroup        *string      `json:"host_group"`
	Hosts            *int         `json:"hosts"`
	ServicesPerHost  *int         `json:"services_per_host"`
	GenerateInterval *string      `json:"generate_interval"` // "30s"
	TrustedSubnet    *string      `json:"trusted_subnet"`
	Key              *string      `json:"key"`
	StoreFile        *string      `json:"store_file"`
	Publish          *bool        `json:"publish"`
	PublishInterval  *string      `json:"publish_interval"` // "1m"
	Transit          *transitJSON `json:"transit"`
}

func loadDemoJSON(path string) (*demoJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg demoJSON
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadTransitJSON(path string) (*transitJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var t transitJSON
	return &t, json.Unmarshal(b, &t)
}

func parseDurationSeconds(s string) (int, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	return int(d / time.Second), nil
}
