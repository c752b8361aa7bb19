// Package publisher forwards the latest demo samples through the native transit module.
package publisher

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/and161185/gw-transit/internal/bundle"
	"github.com/and161185/gw-transit/internal/config"
	"github.com/and161185/gw-transit/internal/transit"
	"github.com/and161185/gw-transit/model"
	"github.com/and161185/gw-transit/storage"
	"go.uber.org/zap"
)

// Publisher periodically sends the stored resources and samples.
type Publisher struct {
	client      *transit.Client
	store       storage.Storage
	cfg         *config.DemoConfig
	descriptors func() []model.MetricDescriptor
	logger      *zap.SugaredLogger

	synced map[string]struct{}
}

// New returns a publisher. descriptors answers the native metrics listing and may be nil.
func New(client *transit.Client, store storage.Storage, cfg *config.DemoConfig, descriptors func() []model.MetricDescriptor) *Publisher {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Publisher{
		client:      client,
		store:       store,
		cfg:         cfg,
		descriptors: descriptors,
		logger:      logger,
		synced:      make(map[string]struct{}),
	}
}

// Run starts the transport and publishes every PublishInterval until ctx is done. Failing
// ticks are logged and the loop goes on; only a transport that cannot start is an error.
func (p *Publisher) Run(ctx context.Context) error {
	if err := p.forwardEnv(); err != nil {
		return err
	}
	if err := p.client.StartTransport(); err != nil {
		return fmt.Errorf("start transport: %w", err)
	}
	defer p.stop()

	if p.descriptors != nil {
		if err := p.client.RegisterMetricsCallback(p.listMetrics); err != nil {
			p.logger.Warnf("metrics listing unavailable: %v", err)
		}
	}

	interval := time.Duration(p.cfg.PublishInterval) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := p.Publish(ctx); err != nil {
				p.logger.Errorf("publish: %v", err)
			}
		}
	}
}

// Publish sends the current store contents. New resources are synchronized first.
func (p *Publisher) Publish(ctx context.Context) error {
	all, err := p.store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("read samples: %w", err)
	}
	if len(all) == 0 {
		return nil
	}

	b := p.builder(all)

	if p.needsSync(all) {
		res, err := p.client.SynchronizeInventory(b.Inventory())
		if err != nil {
			return fmt.Errorf("synchronize inventory: %w", err)
		}
		p.logger.Infof("inventory synchronized: successful=%d failed=%d count=%d", res.Successful, res.Failed, res.Count)
		for key := range all {
			p.synced[key] = struct{}{}
		}
	}

	res, err := p.client.SendResourcesWithMetrics(b.Bundle())
	if err != nil {
		return fmt.Errorf("send resources: %w", err)
	}
	p.logger.Infof("resources sent: successful=%d failed=%d count=%d", res.Successful, res.Failed, res.Count)
	return nil
}

// builder orders hosts first, then services, each by key, and groups the hosts.
func (p *Publisher) builder(all map[string]*model.ResourceWithMetrics) *bundle.Builder {
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		hi, hj := all[keys[i]].Resource.Type == model.Host, all[keys[j]].Resource.Type == model.Host
		if hi != hj {
			return hi
		}
		return keys[i] < keys[j]
	})

	b := bundle.NewBuilder(p.cfg.Transit.AppType, p.cfg.Transit.AgentID)
	var hosts []string
	for _, k := range keys {
		r := all[k]
		b.Add(r.Resource).AddSample(k, r.Metrics...)
		if r.Resource.Type == model.Host {
			hosts = append(hosts, k)
		}
	}
	if p.cfg.HostGroup != "" && len(hosts) > 0 {
		b.Group(p.cfg.HostGroup, hosts...)
	}
	return b
}

func (p *Publisher) needsSync(all map[string]*model.ResourceWithMetrics) bool {
	for key := range all {
		if _, ok := p.synced[key]; !ok {
			return true
		}
	}
	return false
}

func (p *Publisher) listMetrics() ([]model.MetricDescriptor, error) {
	return p.descriptors(), nil
}

func (p *Publisher) forwardEnv() error {
	keys := make([]string, 0, len(p.cfg.Transit.NativeEnv))
	for k := range p.cfg.Transit.NativeEnv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := p.client.Setenv(k, p.cfg.Transit.NativeEnv[k]); err != nil {
			return fmt.Errorf("forward %s: %w", k, err)
		}
	}
	return nil
}

func (p *Publisher) stop() {
	if p.descriptors != nil {
		p.client.RemoveMetricsCallback()
	}
	if err := p.client.StopTransport(); err != nil {
		p.logger.Errorf("stop transport: %v", err)
	}
}
