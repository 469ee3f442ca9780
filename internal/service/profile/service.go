package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
	"github.com/heartmarshall/peritagem-backend/pkg/ctxutil"
)

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	List(ctx context.Context, status *domain.ProfileStatus) ([]*domain.Profile, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ProfileUpdateParams) (*domain.Profile, error)
}

// Service implements user administration for managers.
type Service struct {
	profiles profileRepo
	log      *slog.Logger
}

// NewService creates a new profile admin service.
func NewService(log *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		profiles: profiles,
		log:      log.With("service", "profile"),
	}
}

// UpdateInput holds the admin changes to one profile. nil = don't change.
type UpdateInput struct {
	ProfileID uuid.UUID
	Role      *domain.Role
	Status    *domain.ProfileStatus
	CompanyID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ProfileID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "profile_id", Message: "required"})
	}
	if i.Role == nil && i.Status == nil && i.CompanyID == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Role != nil && !i.Role.IsValid() {
		errs = append(errs, domain.FieldError{Field: "role", Message: "invalid role"})
	}
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// List returns profiles, optionally filtered by status (managers only).
func (s *Service) List(ctx context.Context, status *domain.ProfileStatus) ([]*domain.Profile, error) {
	if _, err := s.requireManager(ctx); err != nil {
		return nil, err
	}
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid status")
	}

	profiles, err := s.profiles.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("profile.List: %w", err)
	}
	return profiles, nil
}

// Update approves, blocks or re-roles a profile (managers only).
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Profile, error) {
	caller, err := s.requireManager(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	// Prevent a manager from locking themselves out.
	if caller.ID == input.ProfileID {
		if input.Role != nil && *input.Role != domain.RoleManager {
			return nil, domain.NewValidationError("role", "cannot demote yourself")
		}
		if input.Status != nil && *input.Status != domain.ProfileStatusApproved {
			return nil, domain.NewValidationError("status", "cannot block yourself")
		}
	}

	p, err := s.profiles.Update(ctx, input.ProfileID, domain.ProfileUpdateParams{
		Role:      input.Role,
		Status:    input.Status,
		CompanyID: input.CompanyID,
	})
	if err != nil {
		return nil, fmt.Errorf("profile.Update: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("target_user_id", p.ID.String()),
		slog.String("role", p.Role.String()),
		slog.String("status", p.Status.String()),
		slog.String("user_id", caller.ID.String()),
	)
	return p, nil
}

func (s *Service) requireManager(ctx context.Context) (*domain.Profile, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	p, err := s.profiles.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("get caller profile: %w", err)
	}
	if !p.CanAct() || !p.Role.IsManager() {
		return nil, domain.ErrForbidden
	}
	return p, nil
}
