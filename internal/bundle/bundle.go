// Package bundle assembles transit payloads: resource bundles for publishing and
// inventories for synchronization.
package bundle

import (
	"time"

	"github.com/and161185/gw-transit/model"
	"github.com/google/uuid"
)

// NewTracerContext returns a context with a fresh trace token stamped now.
func NewTracerContext(appType, agentID string) model.TracerContext {
	return model.TracerContext{
		AppType:    appType,
		AgentID:    agentID,
		TraceToken: uuid.NewString(),
		TimeStamp:  model.Now(),
	}
}

// NewSample builds a sample over [start, end].
func NewSample(name string, sampleType model.SampleType, value model.TypedValue, start, end time.Time) model.MetricSample {
	return model.MetricSample{
		MetricName: name,
		SampleType: sampleType,
		Interval: model.TimeInterval{
			StartTime: model.NewTimestamp(start),
			EndTime:   model.NewTimestamp(end),
		},
		Value: value,
	}
}

// Builder collects resources, their samples and groups in insertion order.
// It is not safe for concurrent use.
type Builder struct {
	appType string
	agentID string

	order     []string
	resources map[string]*model.ResourceWithMetrics
	groups    []model.ResourceGroup
	groupIdx  map[string]int
}

// NewBuilder returns an empty builder whose payloads carry appType and agentID.
func NewBuilder(appType, agentID string) *Builder {
	return &Builder{
		appType:   appType,
		agentID:   agentID,
		resources: make(map[string]*model.ResourceWithMetrics),
		groupIdx:  make(map[string]int),
	}
}

// Add adds r, or replaces the resource with the same key keeping its samples and position.
func (b *Builder) Add(r model.Resource) *Builder {
	if existing, ok := b.resources[r.Key()]; ok {
		existing.Resource = r
		return b
	}
	b.order = append(b.order, r.Key())
	b.resources[r.Key()] = &model.ResourceWithMetrics{Resource: r}
	return b
}

// AddHost adds a host resource checked now.
func (b *Builder) AddHost(name string, status model.MonitorStatus) *Builder {
	now := model.Now()
	return b.Add(model.Resource{Name: name, Type: model.Host, Status: status, LastCheckTime: &now})
}

// AddService adds a service resource owned by host.
func (b *Builder) AddService(host, name string, status model.MonitorStatus) *Builder {
	now := model.Now()
	return b.Add(model.Resource{Name: name, Type: model.Service, Status: status, Owner: host, LastCheckTime: &now})
}

// AddSample appends samples to the resource with the given key. Unknown keys are ignored.
func (b *Builder) AddSample(key string, samples ...model.MetricSample) *Builder {
	if r, ok := b.resources[key]; ok {
		r.Metrics = append(r.Metrics, samples...)
	}
	return b
}

// Group puts the resources with the given keys into group, creating it on first use.
func (b *Builder) Group(group string, keys ...string) *Builder {
	idx, ok := b.groupIdx[group]
	if !ok {
		idx = len(b.groups)
		b.groupIdx[group] = idx
		b.groups = append(b.groups, model.ResourceGroup{GroupName: group})
	}
	for _, key := range keys {
		if r, ok := b.resources[key]; ok {
			b.groups[idx].Resources = append(b.groups[idx].Resources, r.Resource.Ref())
		}
	}
	return b
}

// Len returns the number of resources added.
func (b *Builder) Len() int { return len(b.order) }

// Bundle returns the resources with their samples under a fresh tracer context.
func (b *Builder) Bundle() *model.ResourceBundle {
	out := &model.ResourceBundle{
		Context:   NewTracerContext(b.appType, b.agentID),
		Resources: make([]model.ResourceWithMetrics, 0, len(b.order)),
	}
	for _, key := range b.order {
		r := b.resources[key]
		out.Resources = append(out.Resources, model.ResourceWithMetrics{
			Resource: r.Resource,
			Metrics:  append([]model.MetricSample(nil), r.Metrics...),
		})
	}
	return out
}

// Inventory returns the resources and groups under a fresh tracer context.
func (b *Builder) Inventory() *model.Inventory {
	out := &model.Inventory{
		Context:   NewTracerContext(b.appType, b.agentID),
		Resources: make([]model.Resource, 0, len(b.order)),
	}
	for _, key := range b.order {
		out.Resources = append(out.Resources, b.resources[key].Resource)
	}
	for _, g := range b.groups {
		out.Groups = append(out.Groups, model.ResourceGroup{
			GroupName: g.GroupName,
			Resources: append([]model.ResourceRef(nil), g.Resources...),
		})
	}
	return out
}
