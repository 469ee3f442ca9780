package inspection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// TransitionResult is the outcome of an applied action.
type TransitionResult struct {
	Inspection *domain.Inspection
	// Entry is nil when AuditRecorded is false.
	Entry         *domain.HistoryEntry
	AuditRecorded bool
}

// Transition applies one lifecycle action to a record.
//
// The status update and the history append are separate writes. When the
// update fails nothing is recorded. When the append fails the record stays
// advanced and the result reports AuditRecorded=false.
func (s *Service) Transition(ctx context.Context, input TransitionInput) (_ *TransitionResult, err error) {
	ctx, done := s.metrics.StartTransition(ctx, input.Action)
	defer func() { done(err) }()

	actor, err := s.currentProfile(ctx)
	if err != nil {
		return nil, err
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	edge, _ := domain.TransitionFor(input.Action)

	rec, err := s.visibleRecord(ctx, actor, input.InspectionID)
	if err != nil {
		return nil, err
	}

	tr, err := domain.AuthorizeTransition(rec.Stage(), actor.Role, domain.TransitionRequest{
		TargetStatus: edge.Status,
		OrderNumber:  input.OrderNumber,
		Reason:       input.Reason,
	})
	if err != nil {
		return nil, err
	}
	if tr.Action != input.Action {
		return nil, &domain.TransitionError{
			From: rec.Stage(), To: tr.To, Role: actor.Role,
			Reason: domain.ErrConflict, Detail: "action does not leave the current stage",
		}
	}

	upd := domain.InspectionStatusUpdate{RawStatus: tr.Status}
	var note *string
	switch {
	case tr.RequiresOrderNumber:
		upd.OrderNumber = trimOrNil(&input.OrderNumber)
		note = upd.OrderNumber
	case tr.Action == domain.ActionRequestRevision:
		upd.RevisionReason = trimOrNil(&input.Reason)
		note = upd.RevisionReason
	case tr.Action == domain.ActionApprove:
		upd.ClearRevisionReason = true
	}

	updated, err := s.inspections.UpdateStatus(ctx, rec.ID, upd)
	if err != nil {
		return nil, fmt.Errorf("update inspection status: %w", err)
	}

	result := &TransitionResult{Inspection: updated}

	entry, appendErr := s.history.Append(ctx, domain.HistoryEntry{
		InspectionID:   rec.ID,
		PreviousStatus: rec.RawStatus,
		NewStatus:      tr.Status,
		Note:           note,
		ActorID:        actor.ID,
		Actor:          actor.Actor(),
		OccurredAt:     s.now(),
	})
	if appendErr != nil {
		s.metrics.AuditGap(ctx, tr.Action)
		s.log.ErrorContext(ctx, "history append failed after status update",
			slog.String("inspection_id", rec.ID.String()),
			slog.String("action", tr.Action.String()),
			slog.String("previous_status", rec.RawStatus),
			slog.String("new_status", tr.Status),
			slog.String("error", appendErr.Error()),
		)
	} else {
		result.Entry = entry
		result.AuditRecorded = true
	}

	if err := s.fillCreators(ctx, updated); err != nil {
		s.log.WarnContext(ctx, "resolve creator", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "inspection transitioned",
		slog.String("inspection_id", rec.ID.String()),
		slog.String("action", tr.Action.String()),
		slog.String("from", tr.From.String()),
		slog.String("to", tr.To.String()),
		slog.String("user_id", actor.ID.String()),
		slog.String("role", actor.Role.String()),
	)

	return result, nil
}
