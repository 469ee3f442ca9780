package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// StageView is the renderable state of one stage on the process timeline.
type StageView struct {
	Stage Stage
	Title string
	State StageState
	Entry *HistoryEntry
}

// Timeline is the per-stage view of an inspection, always six stages long.
type Timeline struct {
	InspectionID uuid.UUID
	Current      Stage
	Stages       [StageCount]StageView
	// EnteredAt is when the record last moved into Current. It differs from
	// the active view's entry after a revision cycle, which shows the first visit.
	EnteredAt time.Time
}

// Active returns the view of the current stage.
func (t Timeline) Active() StageView {
	for _, v := range t.Stages {
		if v.State == StageStateActive {
			return v
		}
	}
	return t.Stages[0]
}

// Elapsed returns how long the record has been in its current stage.
// now is only used for display; stage computation never reads the clock.
func (t Timeline) Elapsed(now time.Time) time.Duration {
	if t.EnteredAt.IsZero() {
		return 0
	}
	if d := now.Sub(t.EnteredAt); d > 0 {
		return d
	}
	return 0
}

// BuildTimeline assembles the six stage views of rec from its history.
// Entries may be incomplete: stage 1 falls back to the creation metadata, and
// the active stage always gets an entry even when the history skipped it.
func BuildTimeline(rec Inspection, entries []HistoryEntry) Timeline {
	current := rec.Stage()

	ordered := slices.Clone(entries)
	slices.SortStableFunc(ordered, func(a, b HistoryEntry) int {
		return a.OccurredAt.Compare(b.OccurredAt)
	})

	tl := Timeline{InspectionID: rec.ID, Current: current}
	for i, stage := range Stages() {
		view := StageView{
			Stage: stage,
			Title: stage.Title(),
			State: stateOf(stage, current),
		}

		if e, ok := firstEntryFor(ordered, stage); ok {
			view.Entry = &e
		}
		if view.Entry == nil && stage == StageCreated {
			view.Entry = createdEntry(rec)
		}
		if view.Entry == nil && view.State == StageStateActive {
			view.Entry = fallbackEntry(rec)
		}

		tl.Stages[i] = view
	}

	if e, ok := lastEntryFor(ordered, current); ok {
		tl.EnteredAt = e.OccurredAt
	} else if active := tl.Active(); active.Entry != nil {
		tl.EnteredAt = active.Entry.OccurredAt
	}
	return tl
}

func stateOf(stage, current Stage) StageState {
	switch {
	case stage < current:
		return StageStateCompleted
	case stage == current:
		return StageStateActive
	default:
		return StageStatePending
	}
}

func firstEntryFor(entries []HistoryEntry, stage Stage) (HistoryEntry, bool) {
	for _, e := range entries {
		if Canonicalize(e.NewStatus) == stage {
			return e, true
		}
	}
	return HistoryEntry{}, false
}

func lastEntryFor(entries []HistoryEntry, stage Stage) (HistoryEntry, bool) {
	for _, e := range slices.Backward(entries) {
		if Canonicalize(e.NewStatus) == stage {
			return e, true
		}
	}
	return HistoryEntry{}, false
}

func createdEntry(rec Inspection) *HistoryEntry {
	return &HistoryEntry{
		InspectionID: rec.ID,
		NewStatus:    StatusCreated,
		ActorID:      rec.CreatedBy,
		Actor:        rec.Creator,
		OccurredAt:   rec.CreatedAt,
		Synthetic:    true,
	}
}

func fallbackEntry(rec Inspection) *HistoryEntry {
	at := rec.UpdatedAt
	if at.IsZero() {
		at = rec.CreatedAt
	}
	return &HistoryEntry{
		InspectionID: rec.ID,
		NewStatus:    rec.RawStatus,
		ActorID:      rec.CreatedBy,
		Actor:        rec.Creator,
		OccurredAt:   at,
		Synthetic:    true,
	}
}
