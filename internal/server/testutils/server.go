// Package testutils builds demo servers for tests.
package testutils

import (
	"context"
	"math/rand/v2"

	"github.com/and161185/gw-transit/internal/config"
	"github.com/and161185/gw-transit/internal/demo"
	"github.com/and161185/gw-transit/internal/server"
	"github.com/and161185/gw-transit/storage/inmemory"
	"go.uber.org/zap"
)

// NewTestConfig returns a small demo configuration with a silent logger.
func NewTestConfig() *config.DemoConfig {
	return &config.DemoConfig{
		Addr:            "127.0.0.1:0",
		Logger:          zap.NewNop().Sugar(),
		HostName:        "FinanceServicesGo",
		HostGroup:       "PrometheusDemo",
		Hosts:           2,
		ServicesPerHost: 2,
		Transit:         config.DefaultTransitConfig(),
	}
}

// NewTestServer returns a server over an in-memory store with a deterministic generator.
func NewTestServer(ctx context.Context) *server.Server {
	cfg := NewTestConfig()
	st := inmemory.NewMemStorage(ctx)
	return server.NewServer(st, cfg, demo.NewGenerator(cfg, st, rand.NewPCG(7, 11)))
}
