package demo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/and161185/gw-transit/internal/utils"
	"go.uber.org/zap"
)

// Endpoints are the instrumented paths of the demo service.
var Endpoints = []string{"analytics", "distribution", "sales"}

// RequestGenerator simulates traffic by calling every instrumented endpoint on each tick.
type RequestGenerator struct {
	BaseURL  string
	Interval time.Duration
	Client   *http.Client
	Logger   *zap.SugaredLogger
}

// Run issues a round of requests immediately and then every Interval until ctx is done.
func (rg *RequestGenerator) Run(ctx context.Context) {
	ticker := time.NewTicker(rg.Interval)
	defer ticker.Stop()

	for {
		rg.round(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (rg *RequestGenerator) round(ctx context.Context) {
	for _, ep := range Endpoints {
		err := utils.WithRetry(ctx, func() error { return rg.get(ctx, ep) })
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			rg.Logger.Warnf("generate request to /%s: %v", ep, err)
		}
	}
}

func (rg *RequestGenerator) get(ctx context.Context, endpoint string) error {
	url := strings.TrimSuffix(rg.BaseURL, "/") + "/" + endpoint
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := rg.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if _, err = io.Copy(io.Discard, resp.Body); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	return nil
}

func (rg *RequestGenerator) client() *http.Client {
	if rg.Client != nil {
		return rg.Client
	}
	return http.DefaultClient
}
