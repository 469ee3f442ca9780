package inspection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// Delete removes an inspection together with its history. Managers only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := s.currentProfile(ctx)
	if err != nil {
		return err
	}
	if !actor.Role.IsManager() {
		return domain.ErrForbidden
	}

	if err := s.inspections.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete inspection: %w", err)
	}

	s.log.InfoContext(ctx, "inspection deleted",
		slog.String("inspection_id", id.String()),
		slog.String("user_id", actor.ID.String()),
	)
	return nil
}
