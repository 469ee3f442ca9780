package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// ActorResolver resolves actor IDs through the request's loaders. Calls made
// outside an HTTP request get a throwaway loader set.
type ActorResolver struct {
	repo profileRepo
}

// NewActorResolver creates an ActorResolver.
func NewActorResolver(repo profileRepo) *ActorResolver {
	return &ActorResolver{repo: repo}
}

// ResolveActors returns one actor per distinct id. Concurrent callers within
// the same request share a batch.
func (r *ActorResolver) ResolveActors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Actor, error) {
	out := make(map[uuid.UUID]domain.Actor, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	loaders := FromContext(ctx)
	if loaders == nil {
		loaders = NewLoaders(r.repo)
	}

	keys := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		keys = append(keys, id)
	}

	actors, errs := loaders.ActorByID.LoadMany(ctx, keys)()
	for i, key := range keys {
		if i < len(errs) && errs[i] != nil {
			return nil, fmt.Errorf("resolve actor %s: %w", key, errs[i])
		}
		out[key] = actors[i]
	}
	return out, nil
}
