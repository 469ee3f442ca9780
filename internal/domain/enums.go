package domain

// Role represents the function of a user inside the shop.
type Role string

const (
	RoleInspector  Role = "perito"
	RolePlanning   Role = "pcp"
	RoleManager    Role = "gestor"
	RoleCommercial Role = "comercial"
	RoleClient     Role = "cliente"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleInspector, RolePlanning, RoleManager, RoleCommercial, RoleClient:
		return true
	}
	return false
}

// IsInternal reports whether the role belongs to shop staff.
func (r Role) IsInternal() bool {
	switch r {
	case RoleInspector, RolePlanning, RoleManager, RoleCommercial:
		return true
	}
	return false
}

func (r Role) IsClient() bool {
	return r == RoleClient
}

func (r Role) IsManager() bool {
	return r == RoleManager
}

// ProfileStatus represents the admission state of a registered user.
type ProfileStatus string

const (
	ProfileStatusPending  ProfileStatus = "PENDENTE"
	ProfileStatusApproved ProfileStatus = "APROVADO"
	ProfileStatusBlocked  ProfileStatus = "BLOQUEADO"
)

func (s ProfileStatus) String() string { return string(s) }

func (s ProfileStatus) IsValid() bool {
	switch s {
	case ProfileStatusPending, ProfileStatusApproved, ProfileStatusBlocked:
		return true
	}
	return false
}

// IntakeStatus represents the state of an item waiting for inspection.
type IntakeStatus string

const (
	IntakeStatusWaiting   IntakeStatus = "AGUARDANDO"
	IntakeStatusInspected IntakeStatus = "PERITADO"
)

func (s IntakeStatus) String() string { return string(s) }

func (s IntakeStatus) IsValid() bool {
	switch s {
	case IntakeStatusWaiting, IntakeStatusInspected:
		return true
	}
	return false
}

// StageState is the position of a stage relative to the current stage of a record.
type StageState string

const (
	StageStateCompleted StageState = "COMPLETED"
	StageStateActive    StageState = "ACTIVE"
	StageStatePending   StageState = "PENDING"
)

func (s StageState) String() string { return string(s) }
