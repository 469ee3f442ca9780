package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// newActorBatchFn resolves profile IDs to actors. IDs without a profile
// resolve to an actor carrying only the ID.
func newActorBatchFn(repo profileRepo) dataloader.BatchFunc[uuid.UUID, domain.Actor] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[domain.Actor] {
		profiles, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[domain.Actor](len(keys), err)
		}

		byID := make(map[uuid.UUID]domain.Actor, len(profiles))
		for _, p := range profiles {
			byID[p.ID] = p.Actor()
		}

		results := make([]*dataloader.Result[domain.Actor], len(keys))
		for i, key := range keys {
			actor, ok := byID[key]
			if !ok {
				actor = domain.Actor{ID: key}
			}
			results[i] = &dataloader.Result[domain.Actor]{Data: actor}
		}
		return results
	}
}

// errorResults returns n results all carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}
