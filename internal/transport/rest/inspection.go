package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
	inspectionsvc "github.com/heartmarshall/peritagem-backend/internal/service/inspection"
)

type inspectionService interface {
	Create(ctx context.Context, input inspectionsvc.CreateInput) (*domain.Inspection, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Inspection, error)
	List(ctx context.Context, input inspectionsvc.ListInput) (*inspectionsvc.ListResult, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Transition(ctx context.Context, input inspectionsvc.TransitionInput) (*inspectionsvc.TransitionResult, error)
	GetTimeline(ctx context.Context, id uuid.UUID) (*inspectionsvc.TimelineResult, error)
	GetHistory(ctx context.Context, id uuid.UUID) ([]domain.HistoryEntry, error)
}

// InspectionHandler serves inspection records and their lifecycle.
type InspectionHandler struct {
	svc inspectionService
	log *slog.Logger
	now func() time.Time
}

func NewInspectionHandler(svc inspectionService, log *slog.Logger) *InspectionHandler {
	return &InspectionHandler{svc: svc, log: log.With("handler", "inspection"), now: time.Now}
}

type createInspectionRequest struct {
	Number        string        `json:"number"`
	ClientName    string        `json:"clientName"`
	CompanyID     *uuid.UUID    `json:"companyId"`
	InternalOrder *string       `json:"internalOrder"`
	Invoice       *string       `json:"invoice"`
	Dimensions    dimensionsDTO `json:"dimensions"`
}

type transitionRequest struct {
	OrderNumber string `json:"orderNumber"`
	Reason      string `json:"reason"`
}

type transitionResponse struct {
	Inspection    inspectionResponse `json:"inspection"`
	Entry         *historyResponse   `json:"entry,omitempty"`
	AuditRecorded bool               `json:"auditRecorded"`
}

func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	input := inspectionsvc.ListInput{Search: q.Get("q")}

	if v := q.Get("stage"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeServiceError(w, r, h.log, domain.NewValidationError("stage", "must be an integer"))
			return
		}
		stage := domain.Stage(n)
		input.Stage = &stage
	}

	var err error
	if input.Limit, err = queryInt(r, "limit"); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	if input.Offset, err = queryInt(r, "offset"); err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	res, err := h.svc.List(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[inspectionResponse]{
		Items: mapSlice(res.Items, toInspection),
		Total: res.Total,
	})
}

func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createInspectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Create(r.Context(), inspectionsvc.CreateInput{
		Number:        req.Number,
		ClientName:    req.ClientName,
		CompanyID:     req.CompanyID,
		InternalOrder: req.InternalOrder,
		Invoice:       req.Invoice,
		Dimensions:    req.Dimensions.toDomain(),
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toInspection(rec))
}

func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toInspection(rec))
}

func (h *InspectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// Transition applies the action named in the path. The body is optional;
// release_order needs orderNumber and request_revision takes a reason.
func (h *InspectionHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req transitionRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}

	res, err := h.svc.Transition(r.Context(), inspectionsvc.TransitionInput{
		InspectionID: id,
		Action:       domain.Action(r.PathValue("action")),
		OrderNumber:  req.OrderNumber,
		Reason:       req.Reason,
	})
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	resp := transitionResponse{
		Inspection:    toInspection(res.Inspection),
		AuditRecorded: res.AuditRecorded,
	}
	if res.Entry != nil {
		e := toHistory(*res.Entry)
		resp.Entry = &e
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *InspectionHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	res, err := h.svc.GetTimeline(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}

	resp := timelineResponse{
		Inspection:     toInspection(res.Inspection),
		CurrentStage:   int(res.Timeline.Current),
		ElapsedSeconds: int64(res.Timeline.Elapsed(h.now()).Seconds()),
		Stages:         make([]stageResponse, 0, len(res.Timeline.Stages)),
		Actions:        mapSlice(res.Actions, domain.Action.String),
	}
	for _, v := range res.Timeline.Stages {
		sr := stageResponse{Stage: int(v.Stage), Title: v.Title, State: v.State.String()}
		if v.Entry != nil {
			e := toHistory(*v.Entry)
			sr.Entry = &e
		}
		resp.Stages = append(resp.Stages, sr)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *InspectionHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	entries, err := h.svc.GetHistory(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(entries, toHistory))
}
