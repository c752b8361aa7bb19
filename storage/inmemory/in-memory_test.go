package inmemory

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/and161185/gw-transit/internal/errs"
	"github.com/and161185/gw-transit/model"
	"github.com/stretchr/testify/require"
)

func sample(name string, st model.SampleType, v float64) model.MetricSample {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	return model.MetricSample{
		MetricName: name,
		SampleType: st,
		Interval:   model.TimeInterval{StartTime: model.NewTimestamp(now), EndTime: model.NewTimestamp(now)},
		Value:      model.DoubleValue(v),
	}
}

func service(name string, samples ...model.MetricSample) *model.ResourceWithMetrics {
	return &model.ResourceWithMetrics{
		Resource: model.Resource{Name: name, Type: model.Service, Owner: "host-0", Status: model.ServiceOk},
		Metrics:  samples,
	}
}

func TestMemStorage_SaveMergesSamples(t *testing.T) {
	ctx := context.Background()
	st := NewMemStorage(ctx)

	require.NoError(t, st.Save(ctx, service("svc",
		sample("response_time", model.Value, 1.0),
		sample("response_time", model.Warning, 2.5))))
	require.NoError(t, st.Save(ctx, service("svc",
		sample("response_time", model.Value, 2.0),
		sample("bytes_per_minute", model.Value, 100))))

	got, err := st.Get(ctx, "host-0/svc")
	require.NoError(t, err)
	require.Len(t, got.Metrics, 3)
	require.Equal(t, 2.0, got.Metrics[0].Value.DoubleValue)
	require.Equal(t, model.Warning, got.Metrics[1].SampleType)
	require.Equal(t, "bytes_per_minute", got.Metrics[2].MetricName)
}

func TestMemStorage_SaveReplacesResource(t *testing.T) {
	ctx := context.Background()
	st := NewMemStorage(ctx)

	require.NoError(t, st.Save(ctx, service("svc")))
	updated := service("svc")
	updated.Resource.Status = model.ServiceUnscheduledCritical
	require.NoError(t, st.Save(ctx, updated))

	got, err := st.Get(ctx, "host-0/svc")
	require.NoError(t, err)
	require.Equal(t, model.ServiceUnscheduledCritical, got.Resource.Status)
}

func TestMemStorage_ServicesKeyedByOwner(t *testing.T) {
	ctx := context.Background()
	st := NewMemStorage(ctx)

	other := service("svc", sample("response_time", model.Value, 7))
	other.Resource.Owner = "host-1"
	require.NoError(t, st.Save(ctx, service("svc", sample("response_time", model.Value, 1))))
	require.NoError(t, st.Save(ctx, other))
	require.NoError(t, st.Save(ctx, &model.ResourceWithMetrics{Resource: model.Resource{Name: "host-0", Type: model.Host}}))

	all, err := st.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, 7.0, all["host-1/svc"].Metrics[0].Value.DoubleValue)

	host, err := st.Get(ctx, "host-0")
	require.NoError(t, err)
	require.Equal(t, model.Host, host.Resource.Type)
}

func TestMemStorage_Errors(t *testing.T) {
	ctx := context.Background()
	st := NewMemStorage(ctx)

	_, err := st.Get(ctx, "absent")
	require.ErrorIs(t, err, errs.ErrResourceNotFound)

	require.ErrorIs(t, st.Save(ctx, &model.ResourceWithMetrics{}), ErrUnnamed)
	require.ErrorIs(t, st.SaveBatch(ctx, []model.ResourceWithMetrics{*service("a"), {}}), ErrUnnamed)
	require.NoError(t, st.Ping(ctx))
}

func TestMemStorage_GetAllReturnsCopies(t *testing.T) {
	ctx := context.Background()
	st := NewMemStorage(ctx)
	r := service("svc", sample("response_time", model.Value, 1.0))
	r.Resource.Labels = map[string]string{"group": "PrometheusDemo"}
	require.NoError(t, st.Save(ctx, r))

	// mutating the caller's value after Save must not reach the store
	r.Metrics[0].Value = model.DoubleValue(99)

	all, err := st.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	all["host-0/svc"].Metrics[0].Value = model.DoubleValue(42)
	all["host-0/svc"].Resource.Labels["group"] = "changed"

	got, err := st.Get(ctx, "host-0/svc")
	require.NoError(t, err)
	require.Equal(t, 1.0, got.Metrics[0].Value.DoubleValue)
	require.Equal(t, "PrometheusDemo", got.Resource.Labels["group"])
}

func TestMemStorage_UpdateDoesNotKeepCallerReferences(t *testing.T) {
	ctx := context.Background()
	st := NewMemStorage(ctx)
	require.NoError(t, st.Save(ctx, service("svc", sample("response_time", model.Value, 1.0))))

	checked := model.NewTimestamp(time.Date(2024, 3, 1, 10, 5, 0, 0, time.UTC))
	update := service("svc", sample("response_time", model.Value, 2.0))
	update.Resource.Labels = map[string]string{"group": "PrometheusDemo"}
	update.Resource.LastCheckTime = &checked
	update.Metrics[0].Tags = map[string]string{"env": "dev"}
	require.NoError(t, st.Save(ctx, update))

	update.Resource.Labels["group"] = "changed"
	*update.Resource.LastCheckTime = model.NewTimestamp(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))
	update.Metrics[0].Tags["env"] = "prod"

	got, err := st.Get(ctx, "host-0/svc")
	require.NoError(t, err)
	require.Equal(t, "PrometheusDemo", got.Resource.Labels["group"])
	require.Equal(t, checked, *got.Resource.LastCheckTime)
	require.Equal(t, "dev", got.Metrics[0].Tags["env"])
	require.Equal(t, 2.0, got.Metrics[0].Value.DoubleValue)
}

func TestMemStorage_ConcurrentUpdateAndRead(t *testing.T) {
	ctx := context.Background()
	st := NewMemStorage(ctx)
	require.NoError(t, st.Save(ctx, service("svc")))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := service("svc")
			r.Resource.Labels = map[string]string{"n": "0"}
			for j := 0; j < 50; j++ {
				_ = st.Save(ctx, r)
				r.Resource.Labels["n"] = "1"
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				all, _ := st.GetAll(ctx)
				_ = all["host-0/svc"].Resource.Labels["n"]
			}
		}()
	}
	wg.Wait()
}

func TestMemStorage_ConcurrentSave(t *testing.T) {
	ctx := context.Background()
	st := NewMemStorage(ctx)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = st.Save(ctx, service("svc", sample("response_time", model.Value, float64(i))))
			_, _ = st.GetAll(ctx)
		}(i)
	}
	wg.Wait()

	got, err := st.Get(ctx, "host-0/svc")
	require.NoError(t, err)
	require.Len(t, got.Metrics, 1)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "samples.json")

	storage := NewMemStorage(ctx)
	require.NoError(t, storage.Save(ctx, service("test", sample("response_time", model.Value, 123.45))))
	require.NoError(t, storage.SaveToFile(ctx, file))

	newStorage := NewMemStorage(ctx)
	require.NoError(t, newStorage.Save(ctx, service("other", sample("response_time", model.Value, 999.99))))
	require.NoError(t, newStorage.LoadFromFile(ctx, file))

	restored, err := newStorage.Get(ctx, "host-0/test")
	require.NoError(t, err)
	require.Equal(t, 123.45, restored.Metrics[0].Value.DoubleValue)
	require.Equal(t, "host-0", restored.Resource.Owner)

	existing, err := newStorage.Get(ctx, "host-0/other")
	require.NoError(t, err)
	require.Equal(t, 999.99, existing.Metrics[0].Value.DoubleValue)
}

func TestLoadFromFile_Missing(t *testing.T) {
	ctx := context.Background()
	st := NewMemStorage(ctx)
	require.NoError(t, st.LoadFromFile(ctx, filepath.Join(t.TempDir(), "absent.json")))
}

func TestSaveToFile_EmptyStoreWritesNothing(t *testing.T) {
	ctx := context.Background()
	file := filepath.Join(t.TempDir(), "samples.json")
	require.NoError(t, NewMemStorage(ctx).SaveToFile(ctx, file))
	require.NoFileExists(t, file)
}
