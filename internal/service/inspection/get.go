package inspection

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// ListResult is one page of inspections.
type ListResult struct {
	Items []*domain.Inspection
	Total int
}

// Get returns one inspection. Records outside a client's company are
// reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	actor, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := s.visibleRecord(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := s.fillCreators(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns a page of inspections, newest first. Clients only ever see
// their own company's records.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	actor, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.InspectionFilter{
		Stage:  input.Stage,
		Limit:  s.pageSize(input.Limit),
		Offset: input.Offset,
	}
	if q := strings.TrimSpace(input.Search); q != "" {
		filter.Search = &q
	}
	if actor.Role.IsClient() {
		if actor.CompanyID == nil {
			return &ListResult{Items: []*domain.Inspection{}}, nil
		}
		filter.CompanyID = actor.CompanyID
	}

	items, total, err := s.inspections.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list inspections: %w", err)
	}
	if len(items) > 0 {
		if err := s.fillCreators(ctx, items...); err != nil {
			return nil, err
		}
	}

	return &ListResult{Items: items, Total: total}, nil
}

func (s *Service) pageSize(requested int) int {
	switch {
	case requested <= 0:
		return s.limits.DefaultPageSize
	case requested > s.limits.MaxPageSize:
		return s.limits.MaxPageSize
	default:
		return requested
	}
}

func (s *Service) visibleRecord(ctx context.Context, actor *domain.Profile, id uuid.UUID) (*domain.Inspection, error) {
	rec, err := s.inspections.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inspection: %w", err)
	}
	if !rec.VisibleTo(actor.Role, actor.CompanyID) {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}
