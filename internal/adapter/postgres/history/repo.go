// Package history stores the append-only audit trail of inspection status
// changes. Rows are never updated; a trigger rejects UPDATE statements.
package history

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const historyColumns = `id, inspection_id, previous_status, new_status, note, actor_id, occurred_at`

const appendSQL = `
INSERT INTO inspection_history (id, inspection_id, previous_status, new_status, note, actor_id, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + historyColumns

const listSQL = `
SELECT ` + historyColumns + `
FROM inspection_history
WHERE inspection_id = $1
ORDER BY occurred_at ASC, id ASC`

type row struct {
	ID             uuid.UUID `db:"id"`
	InspectionID   uuid.UUID `db:"inspection_id"`
	PreviousStatus string    `db:"previous_status"`
	NewStatus      string    `db:"new_status"`
	Note           *string   `db:"note"`
	ActorID        uuid.UUID `db:"actor_id"`
	OccurredAt     time.Time `db:"occurred_at"`
}

func (r row) toDomain() domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:             r.ID,
		InspectionID:   r.InspectionID,
		PreviousStatus: r.PreviousStatus,
		NewStatus:      r.NewStatus,
		Note:           r.Note,
		ActorID:        r.ActorID,
		Actor:          domain.Actor{ID: r.ActorID},
		OccurredAt:     r.OccurredAt,
	}
}

// Append inserts entry. A nil ID is generated and a zero OccurredAt becomes now.
func (r *Repo) Append(ctx context.Context, entry domain.HistoryEntry) (*domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now()
	}

	var out row
	err := pgxscan.Get(ctx, q, &out, appendSQL,
		entry.ID, entry.InspectionID, entry.PreviousStatus, entry.NewStatus, entry.Note,
		entry.ActorID, entry.OccurredAt.UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "history entry", entry.ID)
	}

	appended := out.toDomain()
	appended.Actor = entry.Actor
	if appended.Actor.ID == uuid.Nil {
		appended.Actor.ID = appended.ActorID
	}
	return &appended, nil
}

// List returns the history of one inspection ordered by occurred_at ascending.
func (r *Repo) List(ctx context.Context, inspectionID uuid.UUID) ([]domain.HistoryEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listSQL, inspectionID); err != nil {
		return nil, postgres.MapError(err, "history of inspection", inspectionID)
	}

	out := make([]domain.HistoryEntry, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
