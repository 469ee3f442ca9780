// Package dataloader provides per-request loaders that batch actor lookups
// into single profile queries. Loaders call the profile repository directly.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type profileRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Profile, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	ActorByID *dataloader.Loader[uuid.UUID, domain.Actor]
}

// NewLoaders creates a fresh set of loaders. Results are cached for the
// lifetime of the set, so create one per request.
func NewLoaders(repo profileRepo) *Loaders {
	return &Loaders{
		ActorByID: newLoader(newActorBatchFn(repo)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's Loaders, or nil outside a request.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
