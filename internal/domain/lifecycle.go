package domain

import (
	"slices"
	"strings"
)

// Action names a sanctioned lifecycle move.
type Action string

const (
	ActionApprove         Action = "approve"
	ActionRequestRevision Action = "request_revision"
	ActionReleaseOrder    Action = "release_order"
	ActionSendToWorkshop  Action = "send_to_workshop"
	ActionFinishWorkshop  Action = "finish_workshop"
	ActionFinalize        Action = "finalize"
)

func (a Action) String() string { return string(a) }

func (a Action) IsValid() bool {
	_, ok := TransitionFor(a)
	return ok
}

// Transition is one edge of the lifecycle graph.
type Transition struct {
	Action              Action
	From                Stage
	To                  Stage
	Status              string
	Roles               []Role
	RequiresOrderNumber bool
}

// Allows reports whether role may take the edge.
func (t Transition) Allows(role Role) bool {
	return slices.Contains(t.Roles, role)
}

// transitions is the complete lifecycle graph: the forward chain 1..6 plus
// the single 2 -> 1 rejection edge.
var transitions = []Transition{
	{
		Action: ActionApprove,
		From:   StageCreated,
		To:     StagePCPApproval,
		Status: StatusPCPApproval,
		Roles:  []Role{RolePlanning, RoleManager},
	},
	{
		Action: ActionRequestRevision,
		From:   StagePCPApproval,
		To:     StageCreated,
		Status: StatusNeedsRevision,
		Roles:  []Role{RolePlanning, RoleManager},
	},
	{
		Action:              ActionReleaseOrder,
		From:                StagePCPApproval,
		To:                  StageClientApproval,
		Status:              StatusClientApproval,
		Roles:               []Role{RolePlanning, RoleManager, RoleCommercial},
		RequiresOrderNumber: true,
	},
	{
		Action: ActionSendToWorkshop,
		From:   StageClientApproval,
		To:     StageMaintenance,
		Status: StatusMaintenance,
		Roles:  []Role{RoleInspector, RolePlanning, RoleManager},
	},
	{
		Action: ActionFinishWorkshop,
		From:   StageMaintenance,
		To:     StageFinalReview,
		Status: StatusFinalReview,
		Roles:  []Role{RoleInspector, RolePlanning, RoleManager},
	},
	{
		Action: ActionFinalize,
		From:   StageFinalReview,
		To:     StageFinalized,
		Status: StatusFinalized,
		Roles:  []Role{RolePlanning, RoleManager},
	},
}

// Transitions returns a copy of the lifecycle graph.
func Transitions() []Transition {
	return slices.Clone(transitions)
}

// TransitionFor returns the edge taken by action.
func TransitionFor(action Action) (Transition, bool) {
	for _, t := range transitions {
		if t.Action == action {
			return t, true
		}
	}
	return Transition{}, false
}

// TransitionsFrom returns the edges leaving stage.
func TransitionsFrom(stage Stage) []Transition {
	var out []Transition
	for _, t := range transitions {
		if t.From == stage {
			out = append(out, t)
		}
	}
	return out
}

// AvailableActions returns the actions role may take from stage.
func AvailableActions(stage Stage, role Role) []Action {
	var out []Action
	for _, t := range TransitionsFrom(stage) {
		if t.Allows(role) {
			out = append(out, t.Action)
		}
	}
	return out
}

func edge(from, to Stage) (Transition, bool) {
	for _, t := range transitions {
		if t.From == from && t.To == to {
			return t, true
		}
	}
	return Transition{}, false
}

// CanTransition reports whether role may move a record at current to the
// stage that targetRaw canonicalizes to. Field requirements such as the
// order number are checked by AuthorizeTransition.
func CanTransition(current Stage, role Role, targetRaw string) bool {
	_, err := resolveTransition(current, role, targetRaw)
	return err == nil
}

// TransitionRequest carries the per-call data of a lifecycle move.
type TransitionRequest struct {
	TargetStatus string
	OrderNumber  string
	Reason       string
}

// AuthorizeTransition validates a full request and returns the edge to take.
// Nothing is written; the caller persists on success.
func AuthorizeTransition(current Stage, role Role, req TransitionRequest) (Transition, error) {
	t, err := resolveTransition(current, role, req.TargetStatus)
	if err != nil {
		return Transition{}, err
	}
	if t.RequiresOrderNumber && strings.TrimSpace(req.OrderNumber) == "" {
		return Transition{}, NewValidationError("order_number", "required")
	}
	return t, nil
}

// resolveTransition never lets the canonicalizer's stage 1 fallback pick an
// edge: an unrecognized target is refused outright.
func resolveTransition(current Stage, role Role, targetRaw string) (Transition, error) {
	target := Canonicalize(targetRaw)
	refuse := func(reason error, detail string) error {
		return &TransitionError{From: current, To: target, Role: role, Reason: reason, Detail: detail}
	}

	if !current.IsValid() {
		return Transition{}, refuse(ErrConflict, "unknown current stage")
	}
	if current.IsTerminal() {
		return Transition{}, refuse(ErrConflict, "record is finalized")
	}
	if role.IsClient() || !role.IsValid() {
		return Transition{}, refuse(ErrForbidden, "role is read-only")
	}
	if !IsKnownStatus(targetRaw) {
		return Transition{}, refuse(ErrConflict, "unknown target status")
	}

	t, ok := edge(current, target)
	if !ok {
		return Transition{}, refuse(ErrConflict, "no such transition")
	}
	if !t.Allows(role) {
		return Transition{}, refuse(ErrForbidden, "role not allowed for "+t.Action.String())
	}
	return t, nil
}
