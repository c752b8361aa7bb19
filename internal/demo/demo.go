// Package demo synthesizes the fake Finance Services metrics served by the demo service.
//
// Every instrumented request draws new values for each host and service, sets the
// Prometheus gauges and saves the same values, with their thresholds, as transit samples.
package demo

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/and161185/gw-transit/internal/config"
	"github.com/and161185/gw-transit/model"
	"github.com/and161185/gw-transit/storage"
	"github.com/prometheus/client_golang/prometheus"
)

// Threshold holds the warning and critical levels of a metric.
type Threshold struct {
	Warning  float64
	Critical float64
}

// Status maps v to a service monitor status.
func (t Threshold) Status(v float64) model.MonitorStatus {
	switch {
	case v >= t.Critical:
		return model.ServiceUnscheduledCritical
	case v >= t.Warning:
		return model.ServiceWarning
	default:
		return model.ServiceOk
	}
}

// Definition describes one synthesized metric.
type Definition struct {
	Name      string
	Help      string
	Unit      string
	Threshold Threshold
	draw      func(r *rand.Rand) float64
}

// Definitions lists the metrics the demo produces.
var Definitions = []Definition{
	{
		Name:      "requests_per_minute",
		Help:      "Finance Services http requests per minute.",
		Threshold: Threshold{Warning: 85, Critical: 95},
		draw:      func(r *rand.Rand) float64 { return float64(r.IntN(100)) },
	},
	{
		Name:      "bytes_per_minute",
		Help:      "Finance Services bytes transferred over http per minute.",
		Unit:      "B",
		Threshold: Threshold{Warning: 45000, Critical: 48000},
		draw:      func(r *rand.Rand) float64 { return float64(r.IntN(50000)) },
	},
	{
		Name:      "response_time",
		Help:      "Finance Services http response time average over 1 minute.",
		Unit:      "s",
		Threshold: Threshold{Warning: 2.5, Critical: 2.8},
		draw:      func(r *rand.Rand) float64 { return float64(r.IntN(30)) / 10 },
	},
}

var dynamicLabels = []string{"resource", "service"}

// Report describes one instrumented request.
type Report struct {
	Endpoint string
	Series   int
	Elapsed  time.Duration
}

// Message is the plain text reply of an instrumented endpoint.
func (r Report) Message() string {
	return fmt.Sprintf("Groundwork Prometheus Metrics example response for %s in %f ns\n",
		r.Endpoint, float64(r.Elapsed.Nanoseconds()))
}

// Generator produces metric values for Hosts x ServicesPerHost label sets.
type Generator struct {
	hostName string
	group    string
	hosts    int
	services int

	store    storage.Storage
	registry *prometheus.Registry
	gauges   []*prometheus.GaugeVec

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator builds a generator and registers its gauges in a fresh registry.
// A nil src seeds the generator from the clock.
func NewGenerator(cfg *config.DemoConfig, store storage.Storage, src rand.Source) *Generator {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>1)
	}
	g := &Generator{
		hostName: cfg.HostName,
		group:    cfg.HostGroup,
		hosts:    cfg.Hosts,
		services: cfg.ServicesPerHost,
		store:    store,
		registry: prometheus.NewRegistry(),
		rnd:      rand.New(src),
	}
	for _, d := range Definitions {
		gv := prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: d.Name,
			Help: d.Help,
			ConstLabels: prometheus.Labels{
				"group":    g.group,
				"warning":  formatFloat(d.Threshold.Warning),
				"critical": formatFloat(d.Threshold.Critical),
			},
		}, dynamicLabels)
		g.registry.MustRegister(gv)
		g.gauges = append(g.gauges, gv)
	}
	return g
}

// Registry returns the registry holding the demo gauges.
func (g *Generator) Registry() *prometheus.Registry {
	return g.registry
}

// HostNames returns the generated host names in order.
func (g *Generator) HostNames() []string {
	names := make([]string, 0, g.hosts)
	for i := 1; i <= g.hosts; i++ {
		names = append(names, fmt.Sprintf("%s-%d", g.hostName, i))
	}
	return names
}

// Group is the host group every generated host belongs to.
func (g *Generator) Group() string {
	return g.group
}

// Instrument draws new values for every label set, exports them through the gauges and
// saves them as the latest samples in the store.
func (g *Generator) Instrument(ctx context.Context, endpoint string) (Report, error) {
	start := time.Now()

	batch := make([]model.ResourceWithMetrics, 0, g.hosts*(g.services+1))
	for _, host := range g.HostNames() {
		batch = append(batch, model.ResourceWithMetrics{Resource: g.host(host, start)})
		for j := 1; j <= g.services; j++ {
			batch = append(batch, g.service(host, fmt.Sprintf("service-%d", j), start))
		}
	}

	if err := g.store.SaveBatch(ctx, batch); err != nil {
		return Report{}, fmt.Errorf("save samples for %s: %w", endpoint, err)
	}

	return Report{
		Endpoint: endpoint,
		Series:   g.hosts * g.services,
		Elapsed:  time.Since(start),
	}, nil
}

func (g *Generator) host(name string, at time.Time) model.Resource {
	checked := model.NewTimestamp(at)
	return model.Resource{
		Name:          name,
		Type:          model.Host,
		Status:        model.HostUp,
		LastCheckTime: &checked,
		Labels:        map[string]string{"group": g.group},
	}
}

func (g *Generator) service(host, name string, start time.Time) model.ResourceWithMetrics {
	values := g.draw()
	end := time.Now()
	labels := prometheus.Labels{"resource": host, "service": name}

	status := model.ServiceOk
	samples := make([]model.MetricSample, 0, 3*len(Definitions))
	for i, d := range Definitions {
		v := values[i]
		g.gauges[i].With(labels).Set(v)

		status = worse(status, d.Threshold.Status(v))
		samples = append(samples,
			sample(d, model.Value, v, start, end),
			sample(d, model.Warning, d.Threshold.Warning, start, end),
			sample(d, model.Critical, d.Threshold.Critical, start, end),
		)
	}

	checked := model.NewTimestamp(end)
	return model.ResourceWithMetrics{
		Resource: model.Resource{
			Name:          name,
			Type:          model.Service,
			Status:        status,
			Owner:         host,
			LastCheckTime: &checked,
			Labels:        map[string]string{"group": g.group},
		},
		Metrics: samples,
	}
}

// draw returns one value per definition. rand.Rand is not safe for concurrent use.
func (g *Generator) draw() []float64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]float64, len(Definitions))
	for i, d := range Definitions {
		out[i] = d.draw(g.rnd)
	}
	return out
}

func (g *Generator) intN(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.IntN(n)
}

// Descriptors describes the demo metrics for the native metrics listing.
func Descriptors() []model.MetricDescriptor {
	out := make([]model.MetricDescriptor, 0, len(Definitions))
	for _, d := range Definitions {
		md := model.MetricDescriptor{
			Name:        d.Name,
			Description: d.Help,
			DisplayName: d.Name,
			Type:        "service",
			Unit:        d.Unit,
			ValueType:   model.DoubleType,
			MetricKind:  model.Gauge,
			Labels: []model.LabelDescriptor{
				{Key: "resource", ValueType: model.StringType},
				{Key: "service", ValueType: model.StringType},
			},
		}
		// threshold descriptors carry whole numbers only
		for _, t := range []struct {
			key string
			v   float64
		}{{"warning", d.Threshold.Warning}, {"critical", d.Threshold.Critical}} {
			if t.v == math.Trunc(t.v) {
				md.Thresholds = append(md.Thresholds, model.ThresholdDescriptor{Key: t.key, Value: int32(t.v)})
			}
		}
		out = append(out, md)
	}
	return out
}

func sample(d Definition, st model.SampleType, v float64, start, end time.Time) model.MetricSample {
	return model.MetricSample{
		MetricName: d.Name,
		SampleType: st,
		Interval: model.TimeInterval{
			StartTime: model.NewTimestamp(start),
			EndTime:   model.NewTimestamp(end),
		},
		Value: model.DoubleValue(v),
		Unit:  d.Unit,
	}
}

var severity = map[model.MonitorStatus]int{
	model.ServiceOk:                  0,
	model.ServiceWarning:             1,
	model.ServiceUnscheduledCritical: 2,
}

func worse(a, b model.MonitorStatus) model.MonitorStatus {
	if severity[b] > severity[a] {
		return b
	}
	return a
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
