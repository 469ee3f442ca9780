package inspection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
	"github.com/heartmarshall/peritagem-backend/pkg/ctxutil"
)

type inspectionRepo interface {
	Create(ctx context.Context, rec domain.Inspection) (*domain.Inspection, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	List(ctx context.Context, filter domain.InspectionFilter) ([]*domain.Inspection, int, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, upd domain.InspectionStatusUpdate) (*domain.Inspection, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type historyRepo interface {
	Append(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error)
	List(ctx context.Context, inspectionID uuid.UUID) ([]domain.HistoryEntry, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type actorResolver interface {
	ResolveActors(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.Actor, error)
}

type lifecycleMetrics interface {
	StartTransition(ctx context.Context, action domain.Action) (context.Context, func(error))
	AuditGap(ctx context.Context, action domain.Action)
}

// Limits bounds list pagination.
type Limits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// Service implements the inspection lifecycle use cases.
type Service struct {
	inspections inspectionRepo
	history     historyRepo
	profiles    profileRepo
	actors      actorResolver
	metrics     lifecycleMetrics
	limits      Limits
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new inspection service.
func NewService(
	log *slog.Logger,
	inspections inspectionRepo,
	history historyRepo,
	profiles profileRepo,
	actors actorResolver,
	metrics lifecycleMetrics,
	limits Limits,
) *Service {
	return &Service{
		inspections: inspections,
		history:     history,
		profiles:    profiles,
		actors:      actors,
		metrics:     metrics,
		limits:      limits,
		log:         log.With("service", "inspection"),
		now:         time.Now,
	}
}

// currentProfile loads the caller's profile. Roles are always read from the
// store, never trusted from the token.
func (s *Service) currentProfile(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !p.CanAct() {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

// fillCreators resolves the creator of each record in one batch.
func (s *Service) fillCreators(ctx context.Context, recs ...*domain.Inspection) error {
	ids := make([]uuid.UUID, 0, len(recs))
	for _, r := range recs {
		ids = append(ids, r.CreatedBy)
	}
	actors, err := s.actors.ResolveActors(ctx, ids)
	if err != nil {
		return fmt.Errorf("resolve creators: %w", err)
	}
	for _, r := range recs {
		r.Creator = actorOrID(actors, r.CreatedBy)
	}
	return nil
}

func actorOrID(actors map[uuid.UUID]domain.Actor, id uuid.UUID) domain.Actor {
	if a, ok := actors[id]; ok {
		return a
	}
	return domain.Actor{ID: id}
}
