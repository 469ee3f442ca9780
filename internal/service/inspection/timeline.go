package inspection

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// TimelineResult is the process view of one inspection.
type TimelineResult struct {
	Inspection *domain.Inspection
	Timeline   domain.Timeline
	// Actions lists what the caller may do next.
	Actions []domain.Action
}

// GetTimeline loads the record and its history concurrently and
// reconstructs the six stage views.
func (s *Service) GetTimeline(ctx context.Context, id uuid.UUID) (*TimelineResult, error) {
	actor, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	var (
		rec     *domain.Inspection
		entries []domain.HistoryEntry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rec, err = s.visibleRecord(gctx, actor, id)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = s.history.List(gctx, id)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.fillActors(ctx, rec, entries); err != nil {
		return nil, err
	}

	stage := rec.Stage()
	return &TimelineResult{
		Inspection: rec,
		Timeline:   domain.BuildTimeline(*rec, entries),
		Actions:    domain.AvailableActions(stage, actor.Role),
	}, nil
}

// GetHistory returns the raw audit trail of one inspection, oldest first.
func (s *Service) GetHistory(ctx context.Context, id uuid.UUID) ([]domain.HistoryEntry, error) {
	actor, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.visibleRecord(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	entries, err := s.history.List(ctx, rec.ID)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	if err := s.fillActors(ctx, rec, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// fillActors resolves the creator and every history actor in one batch.
func (s *Service) fillActors(ctx context.Context, rec *domain.Inspection, entries []domain.HistoryEntry) error {
	ids := make([]uuid.UUID, 0, len(entries)+1)
	ids = append(ids, rec.CreatedBy)
	for _, e := range entries {
		ids = append(ids, e.ActorID)
	}

	actors, err := s.actors.ResolveActors(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve actors: %w", err)
	}

	rec.Creator = actorOrID(actors, rec.CreatedBy)
	for i := range entries {
		entries[i].Actor = actorOrID(actors, entries[i].ActorID)
	}
	return nil
}
