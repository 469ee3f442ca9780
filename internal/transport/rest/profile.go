package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
	profilesvc "github.com/heartmarshall/peritagem-backend/internal/service/profile"
)

type profileService interface {
	List(ctx context.Context, status *domain.ProfileStatus) ([]*domain.Profile, error)
	Update(ctx context.Context, input profilesvc.UpdateInput) (*domain.Profile, error)
}

// ProfileHandler serves the manager's user admission screens.
type ProfileHandler struct {
	svc profileService
	log *slog.Logger
}

func NewProfileHandler(svc profileService, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{svc: svc, log: log.With("handler", "profile")}
}

type updateProfileRequest struct {
	Role      *domain.Role          `json:"role"`
	Status    *domain.ProfileStatus `json:"status"`
	CompanyID *uuid.UUID            `json:"companyId"`
}

func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	var status *domain.ProfileStatus
	if v := r.URL.Query().Get("status"); v != "" {
		s := domain.ProfileStatus(v)
		status = &s
	}

	profiles, err := h.svc.List(r.Context(), status)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(profiles, toProfile))
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.Update(r.Context(), profilesvc.UpdateInput{
		ProfileID: id,
		Role:      req.Role,
		Status:    req.Status,
		CompanyID: req.CompanyID,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toProfile(p))
}
