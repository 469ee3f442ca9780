package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
	intakesvc "github.com/heartmarshall/peritagem-backend/internal/service/intake"
)

type intakeService interface {
	Create(ctx context.Context, input intakesvc.CreateInput) (*domain.IntakeItem, error)
	List(ctx context.Context, status domain.IntakeStatus) ([]*domain.IntakeItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Promote(ctx context.Context, input intakesvc.PromoteInput) (*domain.Inspection, error)
}

// IntakeHandler serves the queue of cylinders waiting for inspection.
type IntakeHandler struct {
	svc intakeService
	log *slog.Logger
}

func NewIntakeHandler(svc intakeService, log *slog.Logger) *IntakeHandler {
	return &IntakeHandler{svc: svc, log: log.With("handler", "intake")}
}

type createIntakeRequest struct {
	InternalOrder string `json:"internalOrder"`
	ClientName    string `json:"clientName"`
	ArrivedOn     string `json:"arrivedOn"`
}

type promoteRequest struct {
	Number     string        `json:"number"`
	CompanyID  *uuid.UUID    `json:"companyId"`
	Invoice    *string       `json:"invoice"`
	Dimensions dimensionsDTO `json:"dimensions"`
}

func (h *IntakeHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.IntakeStatus(r.URL.Query().Get("status"))

	items, err := h.svc.List(r.Context(), status)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(items, toIntake))
}

func (h *IntakeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createIntakeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	input := intakesvc.CreateInput{InternalOrder: req.InternalOrder, ClientName: req.ClientName}
	if req.ArrivedOn != "" {
		arrived, err := time.Parse(dateLayout, req.ArrivedOn)
		if err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("arrived_on", "expected YYYY-MM-DD"))
			return
		}
		input.ArrivedOn = arrived
	}

	item, err := h.svc.Create(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toIntake(item))
}

func (h *IntakeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Promote opens an inspection for a waiting item and marks it inspected.
func (h *IntakeHandler) Promote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req promoteRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Promote(r.Context(), intakesvc.PromoteInput{
		ItemID:     id,
		Number:     req.Number,
		CompanyID:  req.CompanyID,
		Invoice:    req.Invoice,
		Dimensions: req.Dimensions.toDomain(),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInspection(rec))
}
