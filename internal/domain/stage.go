package domain

import "fmt"

// Stage is one of the six canonical lifecycle positions of an inspection.
type Stage int

const (
	StageCreated Stage = iota + 1
	StagePCPApproval
	StageClientApproval
	StageMaintenance
	StageFinalReview
	StageFinalized
)

// StageCount is the number of lifecycle stages.
const StageCount = 6

// Canonical status labels written when a record moves into a stage.
const (
	StatusCreated        = "PERITAGEM CRIADA"
	StatusNeedsRevision  = "REVISÃO NECESSÁRIA"
	StatusPCPApproval    = "AGUARDANDO APROVAÇÃO DO PCP"
	StatusClientApproval = "AGUARDANDO APROVAÇÃO DO CLIENTE"
	StatusMaintenance    = "EM MANUTENÇÃO"
	StatusFinalReview    = "AGUARDANDO CONFERÊNCIA FINAL"
	StatusFinalized      = "PROCESSO FINALIZADO"
)

// Stages returns all stages in lifecycle order.
func Stages() []Stage {
	return []Stage{
		StageCreated,
		StagePCPApproval,
		StageClientApproval,
		StageMaintenance,
		StageFinalReview,
		StageFinalized,
	}
}

func (s Stage) String() string {
	switch s {
	case StageCreated:
		return "CREATED"
	case StagePCPApproval:
		return "PCP_APPROVAL"
	case StageClientApproval:
		return "CLIENT_APPROVAL"
	case StageMaintenance:
		return "MAINTENANCE"
	case StageFinalReview:
		return "FINAL_REVIEW"
	case StageFinalized:
		return "FINALIZED"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

func (s Stage) IsValid() bool {
	return s >= StageCreated && s <= StageFinalized
}

// IsTerminal reports whether no transition leaves the stage.
func (s Stage) IsTerminal() bool {
	return s == StageFinalized
}

// Label returns the canonical raw status for the stage.
func (s Stage) Label() string {
	switch s {
	case StagePCPApproval:
		return StatusPCPApproval
	case StageClientApproval:
		return StatusClientApproval
	case StageMaintenance:
		return StatusMaintenance
	case StageFinalReview:
		return StatusFinalReview
	case StageFinalized:
		return StatusFinalized
	default:
		return StatusCreated
	}
}

// Title is the short name shown on the process timeline.
func (s Stage) Title() string {
	switch s {
	case StageCreated:
		return "Peritagem"
	case StagePCPApproval:
		return "Aprovação PCP"
	case StageClientApproval:
		return "Aprovação do Cliente"
	case StageMaintenance:
		return "Manutenção"
	case StageFinalReview:
		return "Conferência Final"
	case StageFinalized:
		return "Finalizado"
	default:
		return s.String()
	}
}
