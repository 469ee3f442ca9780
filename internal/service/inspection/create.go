package inspection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// Create opens a new inspection in stage 1. Opening a record writes no
// history; the timeline derives stage 1 from the creation metadata.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Inspection, error) {
	actor, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}
	if !canOpen(actor.Role) {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	rec, err := s.inspections.Create(ctx, domain.Inspection{
		Number:        strings.TrimSpace(input.Number),
		RawStatus:     domain.StatusCreated,
		ClientName:    strings.TrimSpace(input.ClientName),
		CompanyID:     input.CompanyID,
		InternalOrder: trimOrNil(input.InternalOrder),
		Invoice:       trimOrNil(input.Invoice),
		Dimensions:    input.Dimensions,
		CreatedBy:     actor.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create inspection: %w", err)
	}
	rec.Creator = actor.Actor()

	s.log.InfoContext(ctx, "inspection created",
		slog.String("inspection_id", rec.ID.String()),
		slog.String("number", rec.Number),
		slog.String("user_id", actor.ID.String()),
	)

	return rec, nil
}

func canOpen(role domain.Role) bool {
	switch role {
	case domain.RoleInspector, domain.RolePlanning, domain.RoleManager:
		return true
	}
	return false
}
