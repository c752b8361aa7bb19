package demo

import (
	"context"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/and161185/gw-transit/internal/bundle"
	"github.com/and161185/gw-transit/internal/config"
	"github.com/and161185/gw-transit/model"
	"github.com/and161185/gw-transit/storage/inmemory"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGenerator(t *testing.T) (*Generator, *inmemory.MemStorage) {
	t.Helper()
	ctx := context.Background()
	st := inmemory.NewMemStorage(ctx)
	cfg := &config.DemoConfig{HostName: "FinanceServicesGo", HostGroup: "PrometheusDemo", Hosts: 2, ServicesPerHost: 3}
	return NewGenerator(cfg, st, rand.NewPCG(1, 2)), st
}

func TestThreshold_Status(t *testing.T) {
	th := Threshold{Warning: 85, Critical: 95}
	tests := []struct {
		v    float64
		want model.MonitorStatus
	}{
		{0, model.ServiceOk},
		{84.9, model.ServiceOk},
		{85, model.ServiceWarning},
		{94, model.ServiceWarning},
		{95, model.ServiceUnscheduledCritical},
		{100, model.ServiceUnscheduledCritical},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, th.Status(tt.v), "value %v", tt.v)
	}
}

func TestGenerator_HostNames(t *testing.T) {
	g, _ := newTestGenerator(t)
	require.Equal(t, []string{"FinanceServicesGo-1", "FinanceServicesGo-2"}, g.HostNames())
	require.Equal(t, "PrometheusDemo", g.Group())
}

func TestGenerator_Instrument(t *testing.T) {
	g, st := newTestGenerator(t)
	ctx := context.Background()

	rep, err := g.Instrument(ctx, "analytics")
	require.NoError(t, err)
	require.Equal(t, "analytics", rep.Endpoint)
	require.Equal(t, 6, rep.Series)
	require.True(t, strings.HasPrefix(rep.Message(), "Groundwork Prometheus Metrics example response for analytics in "))

	for _, d := range Definitions {
		n, err := testutil.GatherAndCount(g.Registry(), d.Name)
		require.NoError(t, err)
		require.Equal(t, 6, n, d.Name)
	}

	all, err := st.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 8)

	host, ok := all["FinanceServicesGo-1"]
	require.True(t, ok)
	require.Equal(t, model.HostUp, host.Resource.Status)
	require.Empty(t, host.Metrics)

	svc, ok := all["FinanceServicesGo-2/service-3"]
	require.True(t, ok)
	require.Equal(t, model.Service, svc.Resource.Type)
	require.Equal(t, "FinanceServicesGo-2", svc.Resource.Owner)
	require.Len(t, svc.Metrics, 3*len(Definitions))

	// the resource status is the worst status of its values
	want := model.ServiceOk
	for _, s := range svc.Metrics {
		require.True(t, s.Interval.Valid())
		require.Equal(t, model.DoubleType, s.Value.ValueType)
		if s.SampleType != model.Value {
			continue
		}
		for _, d := range Definitions {
			if d.Name == s.MetricName {
				want = worse(want, d.Threshold.Status(s.Value.DoubleValue))
			}
		}
	}
	require.Equal(t, want, svc.Resource.Status)
}

func TestGenerator_InstrumentBuildsValidBundle(t *testing.T) {
	g, st := newTestGenerator(t)
	ctx := context.Background()
	_, err := g.Instrument(ctx, "sales")
	require.NoError(t, err)

	all, err := st.GetAll(ctx)
	require.NoError(t, err)

	b := bundle.NewBuilder("VEMA", "test")
	for _, host := range g.HostNames() {
		b.Add(all[host].Resource)
	}
	for key, r := range all {
		if r.Resource.Type == model.Service {
			b.Add(r.Resource).AddSample(key, r.Metrics...)
		}
	}
	require.NoError(t, bundle.Check(b.Bundle()))
}

func TestGenerator_InstrumentConcurrent(t *testing.T) {
	g, _ := newTestGenerator(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errCh := make(chan error, len(Endpoints))
	for _, ep := range Endpoints {
		wg.Add(1)
		go func(ep string) {
			defer wg.Done()
			_, err := g.Instrument(ctx, ep)
			errCh <- err
		}(ep)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		require.NoError(t, err)
	}
}

func TestGenerator_Simple(t *testing.T) {
	g, _ := newTestGenerator(t)

	seen := map[int]bool{}
	for i := 0; i < 50; i++ {
		code, body := g.Simple()
		require.Contains(t, []int{http.StatusOK, StatusSimpleAlternate}, code)
		seen[code] = true

		require.Contains(t, body, "# TYPE simple_calculated counter")
		require.Contains(t, body, `simple_calculated{service="simple-service-1",warning="80",critical="90",resource="AppGenerated",group="SpringBoot"}`)
		require.Regexp(t, `simple_metric\{service="simple-service-1",resource="AppGenerated",status="(OK|WARNING|CRITICAL)"\} \d+`, body)
	}
	require.Len(t, seen, 2)
}

func TestHello(t *testing.T) {
	require.Equal(t, "Hello World!", Hello())
}

func TestDescriptors(t *testing.T) {
	ds := Descriptors()
	require.Len(t, ds, len(Definitions))

	byName := map[string]model.MetricDescriptor{}
	for _, d := range ds {
		require.Equal(t, model.Gauge, d.MetricKind)
		require.Len(t, d.Labels, 2)
		byName[d.Name] = d
	}

	require.Equal(t, []model.ThresholdDescriptor{
		{Key: "warning", Value: 85},
		{Key: "critical", Value: 95},
	}, byName["requests_per_minute"].Thresholds)
	require.Empty(t, byName["response_time"].Thresholds)
}

func TestRequestGenerator_Run(t *testing.T) {
	var hits sync.Map
	var total atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Store(r.URL.Path, true)
		total.Add(1)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	rg := &RequestGenerator{
		BaseURL:  srv.URL + "/",
		Interval: 10 * time.Millisecond,
		Client:   srv.Client(),
		Logger:   zap.NewNop().Sugar(),
	}

	done := make(chan struct{})
	go func() { rg.Run(ctx); close(done) }()

	require.Eventually(t, func() bool { return total.Load() >= 6 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done

	for _, ep := range Endpoints {
		_, ok := hits.Load("/" + ep)
		require.True(t, ok, ep)
	}
}
