// Package storage declares the sample store shared by the demo service and the publisher.
package storage

import (
	"context"

	"github.com/and161185/gw-transit/model"
)

type Storage interface {
	Save(ctx context.Context, r *model.ResourceWithMetrics) error
	SaveBatch(ctx context.Context, resources []model.ResourceWithMetrics) error
	Get(ctx context.Context, key string) (*model.ResourceWithMetrics, error)
	GetAll(ctx context.Context) (map[string]*model.ResourceWithMetrics, error)
	Ping(ctx context.Context) error
}
