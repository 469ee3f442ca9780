package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

type actorResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

func toActor(a domain.Actor) actorResponse {
	return actorResponse{ID: a.ID.String(), Name: a.Name, Role: a.Role.String()}
}

type dimensionsDTO struct {
	BarrelInner  string `json:"barrelInner,omitempty"`
	BarrelOuter  string `json:"barrelOuter,omitempty"`
	BarrelLength string `json:"barrelLength,omitempty"`
	RodDiameter  string `json:"rodDiameter,omitempty"`
	RodLength    string `json:"rodLength,omitempty"`
	Stroke       string `json:"stroke,omitempty"`
}

func (d dimensionsDTO) toDomain() domain.Dimensions {
	return domain.Dimensions(d)
}

type inspectionResponse struct {
	ID             string        `json:"id"`
	Number         string        `json:"number"`
	Status         string        `json:"status"`
	Stage          int           `json:"stage"`
	StageTitle     string        `json:"stageTitle"`
	ClientName     string        `json:"clientName"`
	CompanyID      *uuid.UUID    `json:"companyId,omitempty"`
	InternalOrder  *string       `json:"internalOrder,omitempty"`
	Invoice        *string       `json:"invoice,omitempty"`
	OrderNumber    *string       `json:"orderNumber,omitempty"`
	RevisionReason *string       `json:"revisionReason,omitempty"`
	Dimensions     dimensionsDTO `json:"dimensions"`
	CreatedBy      actorResponse `json:"createdBy"`
	CreatedAt      time.Time     `json:"createdAt"`
	UpdatedAt      time.Time     `json:"updatedAt"`
}

func toInspection(rec *domain.Inspection) inspectionResponse {
	stage := rec.Stage()
	return inspectionResponse{
		ID:             rec.ID.String(),
		Number:         rec.Number,
		Status:         rec.RawStatus,
		Stage:          int(stage),
		StageTitle:     stage.Title(),
		ClientName:     rec.ClientName,
		CompanyID:      rec.CompanyID,
		InternalOrder:  rec.InternalOrder,
		Invoice:        rec.Invoice,
		OrderNumber:    rec.OrderNumber,
		RevisionReason: rec.RevisionReason,
		Dimensions:     dimensionsDTO(rec.Dimensions),
		CreatedBy:      toActor(rec.Creator),
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
}

type historyResponse struct {
	ID             *string       `json:"id,omitempty"`
	PreviousStatus string        `json:"previousStatus,omitempty"`
	NewStatus      string        `json:"newStatus"`
	Note           *string       `json:"note,omitempty"`
	Actor          actorResponse `json:"actor"`
	OccurredAt     time.Time     `json:"occurredAt"`
	Synthetic      bool          `json:"synthetic,omitempty"`
}

func toHistory(e domain.HistoryEntry) historyResponse {
	out := historyResponse{
		PreviousStatus: e.PreviousStatus,
		NewStatus:      e.NewStatus,
		Note:           e.Note,
		Actor:          toActor(e.Actor),
		OccurredAt:     e.OccurredAt,
		Synthetic:      e.Synthetic,
	}
	if e.ID != uuid.Nil {
		id := e.ID.String()
		out.ID = &id
	}
	return out
}

type stageResponse struct {
	Stage int              `json:"stage"`
	Title string           `json:"title"`
	State string           `json:"state"`
	Entry *historyResponse `json:"entry,omitempty"`
}

type timelineResponse struct {
	Inspection     inspectionResponse `json:"inspection"`
	CurrentStage   int                `json:"currentStage"`
	ElapsedSeconds int64              `json:"elapsedSeconds"`
	Stages         []stageResponse    `json:"stages"`
	Actions        []string           `json:"actions"`
}

type profileResponse struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	Role      string     `json:"role"`
	Status    string     `json:"status"`
	CompanyID *uuid.UUID `json:"companyId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func toProfile(p *domain.Profile) profileResponse {
	return profileResponse{
		ID:        p.ID.String(),
		Email:     p.Email,
		Name:      p.Name,
		Role:      p.Role.String(),
		Status:    p.Status.String(),
		CompanyID: p.CompanyID,
		CreatedAt: p.CreatedAt,
	}
}

type intakeResponse struct {
	ID            string     `json:"id"`
	InternalOrder string     `json:"internalOrder"`
	ClientName    string     `json:"clientName"`
	ArrivedOn     string     `json:"arrivedOn"`
	Status        string     `json:"status"`
	InspectionID  *uuid.UUID `json:"inspectionId,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

const dateLayout = "2006-01-02"

func toIntake(i *domain.IntakeItem) intakeResponse {
	return intakeResponse{
		ID:            i.ID.String(),
		InternalOrder: i.InternalOrder,
		ClientName:    i.ClientName,
		ArrivedOn:     i.ArrivedOn.Format(dateLayout),
		Status:        i.Status.String(),
		InspectionID:  i.InspectionID,
		CreatedAt:     i.CreatedAt,
	}
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func mapSlice[S, T any](in []S, fn func(S) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}
