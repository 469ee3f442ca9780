package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
	"github.com/heartmarshall/peritagem-backend/pkg/ctxutil"
)

type intakeRepo interface {
	Create(ctx context.Context, item domain.IntakeItem) (*domain.IntakeItem, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.IntakeItem, error)
	ListByStatus(ctx context.Context, status domain.IntakeStatus) ([]*domain.IntakeItem, error)
	MarkInspected(ctx context.Context, id, inspectionID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type inspectionRepo interface {
	Create(ctx context.Context, rec domain.Inspection) (*domain.Inspection, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages the queue of cylinders waiting for inspection.
type Service struct {
	items       intakeRepo
	inspections inspectionRepo
	profiles    profileRepo
	tx          txManager
	log         *slog.Logger
}

// NewService creates a new intake service.
func NewService(
	log *slog.Logger,
	items intakeRepo,
	inspections inspectionRepo,
	profiles profileRepo,
	tx txManager,
) *Service {
	return &Service{
		items:       items,
		inspections: inspections,
		profiles:    profiles,
		tx:          tx,
		log:         log.With("service", "intake"),
	}
}

// CreateInput describes a cylinder that arrived at the shop.
type CreateInput struct {
	InternalOrder string
	ClientName    string
	ArrivedOn     time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.InternalOrder) == "" {
		errs = append(errs, domain.FieldError{Field: "internal_order", Message: "required"})
	}
	if strings.TrimSpace(i.ClientName) == "" {
		errs = append(errs, domain.FieldError{Field: "client_name", Message: "required"})
	}
	if i.ArrivedOn.IsZero() {
		errs = append(errs, domain.FieldError{Field: "arrived_on", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PromoteInput carries the inspection fields not known at intake time.
type PromoteInput struct {
	ItemID     uuid.UUID
	Number     string
	CompanyID  *uuid.UUID
	Invoice    *string
	Dimensions domain.Dimensions
}

// Validate checks all fields and collects all errors.
func (i PromoteInput) Validate() error {
	if i.ItemID == uuid.Nil {
		return domain.NewValidationError("item_id", "required")
	}
	return nil
}

// Create queues a new item. Planning and managers only.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.IntakeItem, error) {
	actor, err := s.actor(ctx, canManageQueue)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.Create(ctx, domain.IntakeItem{
		InternalOrder: strings.TrimSpace(input.InternalOrder),
		ClientName:    strings.TrimSpace(input.ClientName),
		ArrivedOn:     input.ArrivedOn,
	})
	if err != nil {
		return nil, fmt.Errorf("create intake item: %w", err)
	}

	s.log.InfoContext(ctx, "intake item queued",
		slog.String("item_id", item.ID.String()),
		slog.String("user_id", actor.ID.String()))
	return item, nil
}

// List returns items in status, oldest first. Empty status means waiting.
func (s *Service) List(ctx context.Context, status domain.IntakeStatus) ([]*domain.IntakeItem, error) {
	if _, err := s.actor(ctx, domain.Role.IsInternal); err != nil {
		return nil, err
	}
	if status == "" {
		status = domain.IntakeStatusWaiting
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid")
	}

	items, err := s.items.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list intake items: %w", err)
	}
	return items, nil
}

// Delete removes a queued item.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.actor(ctx, canManageQueue); err != nil {
		return err
	}
	if err := s.items.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete intake item: %w", err)
	}
	return nil
}

// Promote opens the inspection for a waiting item and marks the item as
// inspected, in one transaction.
func (s *Service) Promote(ctx context.Context, input PromoteInput) (*domain.Inspection, error) {
	actor, err := s.actor(ctx, canInspect)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var rec *domain.Inspection
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		item, err := s.items.GetForUpdate(txCtx, input.ItemID)
		if err != nil {
			return fmt.Errorf("get intake item: %w", err)
		}
		if item.Status != domain.IntakeStatusWaiting {
			return fmt.Errorf("intake item %s is %s: %w", item.ID, item.Status, domain.ErrConflict)
		}

		order := item.InternalOrder
		rec, err = s.inspections.Create(txCtx, domain.Inspection{
			Number:        strings.TrimSpace(input.Number),
			RawStatus:     domain.StatusCreated,
			ClientName:    item.ClientName,
			CompanyID:     input.CompanyID,
			InternalOrder: &order,
			Invoice:       input.Invoice,
			Dimensions:    input.Dimensions,
			CreatedBy:     actor.ID,
		})
		if err != nil {
			return fmt.Errorf("create inspection: %w", err)
		}

		if err := s.items.MarkInspected(txCtx, item.ID, rec.ID); err != nil {
			return fmt.Errorf("mark inspected: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	rec.Creator = actor.Actor()

	s.log.InfoContext(ctx, "intake item promoted",
		slog.String("item_id", input.ItemID.String()),
		slog.String("inspection_id", rec.ID.String()),
		slog.String("user_id", actor.ID.String()))
	return rec, nil
}

func (s *Service) actor(ctx context.Context, allowed func(domain.Role) bool) (*domain.Profile, error) {
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
	if !p.CanAct() || !allowed(p.Role) {
		return nil, domain.ErrForbidden
	}
	return p, nil
}

func canManageQueue(r domain.Role) bool {
	return r == domain.RolePlanning || r == domain.RoleManager
}

func canInspect(r domain.Role) bool {
	return r == domain.RoleInspector || canManageQueue(r)
}
