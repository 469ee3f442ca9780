package domain

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a registered user of the shop system.
type Profile struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         Role
	Status       ProfileStatus
	CompanyID    *uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Actor returns the audit view of the profile.
func (p *Profile) Actor() Actor {
	return Actor{ID: p.ID, Name: p.Name, Role: p.Role}
}

// CanAct reports whether the profile has been admitted by a manager.
func (p *Profile) CanAct() bool {
	return p.Status == ProfileStatusApproved && p.Role.IsValid()
}

// ProfileUpdateParams holds the admin-editable fields of a profile.
// nil means "do not change".
type ProfileUpdateParams struct {
	Role      *Role
	Status    *ProfileStatus
	CompanyID *uuid.UUID
}

// IntakeItem is a cylinder that arrived at the shop and waits for inspection.
type IntakeItem struct {
	ID            uuid.UUID
	InternalOrder string
	ClientName    string
	ArrivedOn     time.Time
	Status        IntakeStatus
	InspectionID  *uuid.UUID
	CreatedAt     time.Time
}
