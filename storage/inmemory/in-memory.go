package inmemory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/and161185/gw-transit/internal/errs"
	"github.com/and161185/gw-transit/model"
)

// ErrUnnamed is returned when saving a resource without a name.
var ErrUnnamed = errors.New("resource has no name")

// MemStorage keeps the latest samples of every resource, keyed by model.Resource.Key.
type MemStorage struct {
	resources map[string]*model.ResourceWithMetrics
	mu        sync.RWMutex
}

func NewMemStorage(ctx context.Context) *MemStorage {
	return &MemStorage{
		resources: make(map[string]*model.ResourceWithMetrics),
	}
}

// Save stores r.Resource and merges its samples: a sample replaces the stored one with the
// same metric name and sample type.
func (store *MemStorage) Save(ctx context.Context, r *model.ResourceWithMetrics) error {
	if r.Resource.Name == "" {
		return ErrUnnamed
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	existing, ok := store.resources[r.Resource.Key()]
	if !ok {
		store.resources[r.Resource.Key()] = clone(r)
		return nil
	}

	existing.Resource = cloneResource(r.Resource)
	for _, s := range r.Metrics {
		s = cloneSample(s)
		replaced := false
		for i := range existing.Metrics {
			if existing.Metrics[i].MetricName == s.MetricName && existing.Metrics[i].SampleType == s.SampleType {
				existing.Metrics[i] = s
				replaced = true
				break
			}
		}
		if !replaced {
			existing.Metrics = append(existing.Metrics, s)
		}
	}
	return nil
}

func (store *MemStorage) SaveBatch(ctx context.Context, resources []model.ResourceWithMetrics) error {
	for _, r := range resources {
		err := store.Save(ctx, &r)
		if err != nil {
			return err
		}
	}

	return nil
}

func (store *MemStorage) Get(ctx context.Context, key string) (*model.ResourceWithMetrics, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	val, ok := store.resources[key]
	if !ok {
		return nil, errs.ErrResourceNotFound
	}
	return clone(val), nil
}

// GetAll returns a copy of every stored resource.
func (store *MemStorage) GetAll(ctx context.Context) (map[string]*model.ResourceWithMetrics, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	result := make(map[string]*model.ResourceWithMetrics, len(store.resources))
	for k, v := range store.resources {
		result[k] = clone(v)
	}
	return result, nil
}

func (store *MemStorage) SaveToFile(ctx context.Context, filePath string) error {
	resources, err := store.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to get resources: %w", err)
	}

	if len(resources) == 0 {
		return nil
	}

	data, err := json.MarshalIndent(resources, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal resources: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	log.Printf("saved to %s", filePath)

	return nil
}

// LoadFromFile restores a snapshot written by SaveToFile. A missing file is not an error.
func (store *MemStorage) LoadFromFile(ctx context.Context, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read file: %w", err)
	}

	var resources map[string]*model.ResourceWithMetrics
	if err := json.Unmarshal(data, &resources); err != nil {
		return fmt.Errorf("failed to unmarshal resources: %w", err)
	}

	for key, r := range resources {
		if err := store.Save(ctx, r); err != nil {
			return fmt.Errorf("failed to restore resource %s: %w", key, err)
		}
	}

	log.Printf("loaded from %s", filePath)

	return nil
}

func (store *MemStorage) Ping(ctx context.Context) error {
	return nil
}

// clone deep-copies r so that neither the caller nor a reader shares its maps or pointers
// with the store.
func clone(r *model.ResourceWithMetrics) *model.ResourceWithMetrics {
	c := &model.ResourceWithMetrics{Resource: cloneResource(r.Resource)}
	if r.Metrics != nil {
		c.Metrics = make([]model.MetricSample, len(r.Metrics))
		for i, s := range r.Metrics {
			c.Metrics[i] = cloneSample(s)
		}
	}
	return c
}

func cloneResource(r model.Resource) model.Resource {
	r.Labels = cloneMap(r.Labels)
	if r.LastCheckTime != nil {
		t := *r.LastCheckTime
		r.LastCheckTime = &t
	}
	if r.NextCheckTime != nil {
		t := *r.NextCheckTime
		r.NextCheckTime = &t
	}
	return r
}

func cloneSample(s model.MetricSample) model.MetricSample {
	s.Tags = cloneMap(s.Tags)
	return s
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
