package domain

import (
	"time"

	"github.com/google/uuid"
)

// Actor is the user behind an action, as shown on audit entries.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role Role
}

// Dimensions holds the measured geometry of a hydraulic cylinder.
type Dimensions struct {
	BarrelInner  string
	BarrelOuter  string
	BarrelLength string
	RodDiameter  string
	RodLength    string
	Stroke       string
}

// Inspection is the unit of work tracking one cylinder through repair.
type Inspection struct {
	ID             uuid.UUID
	Number         string
	RawStatus      string
	ClientName     string
	CompanyID      *uuid.UUID
	InternalOrder  *string
	Invoice        *string
	OrderNumber    *string
	RevisionReason *string
	Dimensions     Dimensions
	CreatedBy      uuid.UUID
	Creator        Actor
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Stage derives the lifecycle stage from the raw status.
func (i Inspection) Stage() Stage {
	return Canonicalize(i.RawStatus)
}

// VisibleTo reports whether a user with role and companyID may read the record.
// Clients only see records of their own company.
func (i Inspection) VisibleTo(role Role, companyID *uuid.UUID) bool {
	if !role.IsClient() {
		return role.IsValid()
	}
	return companyID != nil && i.CompanyID != nil && *companyID == *i.CompanyID
}

// InspectionStatusUpdate is the write issued for a committed transition.
type InspectionStatusUpdate struct {
	RawStatus      string
	OrderNumber    *string
	RevisionReason *string
	// ClearRevisionReason drops the stored reason once the revision is
	// resubmitted; the history note keeps it.
	ClearRevisionReason bool
}

// HistoryEntry is an immutable audit record of one transition.
type HistoryEntry struct {
	ID             uuid.UUID
	InspectionID   uuid.UUID
	PreviousStatus string
	NewStatus      string
	Note           *string
	ActorID        uuid.UUID
	Actor          Actor
	OccurredAt     time.Time

	// Synthetic marks entries reconstructed by BuildTimeline, never persisted.
	Synthetic bool
}

// InspectionFilter holds parameters for listing inspections.
type InspectionFilter struct {
	Stage     *Stage
	CompanyID *uuid.UUID
	Search    *string
	Limit     int
	Offset    int
}
