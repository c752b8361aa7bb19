// Command demo serves fake Finance Services metrics for Prometheus and, when asked,
// publishes the same samples through the native transit module.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/gw-transit/internal/buildinfo"
	"github.com/and161185/gw-transit/internal/config"
	"github.com/and161185/gw-transit/internal/demo"
	"github.com/and161185/gw-transit/internal/native"
	"github.com/and161185/gw-transit/internal/publisher"
	"github.com/and161185/gw-transit/internal/server"
	"github.com/and161185/gw-transit/internal/transit"
	"github.com/and161185/gw-transit/storage/inmemory"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	buildinfo.PrintBuildInfo(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.NewDemoConfig()
	defer func() { _ = cfg.Logger.Sync() }()

	cfg.Logger.Infof("Demo config: Addr=%s, Hosts=%d, ServicesPerHost=%d, Group=%q, Generate=%ds, StoreFile=%q, Publish=%t",
		cfg.Addr,
		cfg.Hosts,
		cfg.ServicesPerHost,
		cfg.HostGroup,
		cfg.GenerateInterval,
		cfg.StoreFile,
		cfg.Publish,
	)

	if err := run(ctx, cfg); err != nil {
		cfg.Logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.DemoConfig) error {
	store := inmemory.NewMemStorage(ctx)
	gen := demo.NewGenerator(cfg, store, nil)
	srv := server.NewServer(store, cfg, gen)

	var pub *publisher.Publisher
	if cfg.Publish {
		lib, err := native.Open(cfg.Transit.LibraryPath)
		if err != nil {
			return fmt.Errorf("publish: %w", err)
		}
		cfg.Logger.Infof("transit module loaded from %s", lib.Path())
		pub = publisher.New(transit.NewClient(lib, &cfg.Transit), store, cfg, demo.Descriptors)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(gctx)
	})
	if pub != nil {
		g.Go(func() error {
			return pub.Run(gctx)
		})
	}

	return g.Wait()
}
