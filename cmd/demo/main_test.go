package main

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/and161185/gw-transit/internal/config"
	"github.com/and161185/gw-transit/internal/errs"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.DemoConfig {
	return &config.DemoConfig{
		Addr:            "127.0.0.1:0",
		Logger:          zap.NewNop().Sugar(),
		HostName:        "FinanceServicesGo",
		HostGroup:       "PrometheusDemo",
		Hosts:           1,
		ServicesPerHost: 1,
		Transit:         config.DefaultTransitConfig(),
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, testConfig()) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return")
	}
}

func TestRun_PublishWithoutModule(t *testing.T) {
	cfg := testConfig()
	cfg.Publish = true
	cfg.Transit.LibraryPath = filepath.Join(t.TempDir(), "missing.so")

	err := run(context.Background(), cfg)
	require.ErrorIs(t, err, errs.ErrNativeLoad)
}
