// Package intake implements the repository of cylinders waiting for inspection.
package intake

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// Repo provides intake item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new intake repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const itemColumns = `id, internal_order, client_name, arrived_on, status, inspection_id, created_at`

const createSQL = `
INSERT INTO intake_items (id, internal_order, client_name, arrived_on, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + itemColumns

// getForUpdateSQL locks the row when called inside a transaction.
const getForUpdateSQL = `SELECT ` + itemColumns + ` FROM intake_items WHERE id = $1 FOR UPDATE`

const listByStatusSQL = `
SELECT ` + itemColumns + `
FROM intake_items
WHERE status = $1
ORDER BY arrived_on ASC, created_at ASC`

const markInspectedSQL = `
UPDATE intake_items
SET status = 'PERITADO', inspection_id = $2
WHERE id = $1 AND status = 'AGUARDANDO'`

const deleteSQL = `DELETE FROM intake_items WHERE id = $1`

type row struct {
	ID            uuid.UUID  `db:"id"`
	InternalOrder string     `db:"internal_order"`
	ClientName    string     `db:"client_name"`
	ArrivedOn     time.Time  `db:"arrived_on"`
	Status        string     `db:"status"`
	InspectionID  *uuid.UUID `db:"inspection_id"`
	CreatedAt     time.Time  `db:"created_at"`
}

func (r row) toDomain() *domain.IntakeItem {
	return &domain.IntakeItem{
		ID:            r.ID,
		InternalOrder: r.InternalOrder,
		ClientName:    r.ClientName,
		ArrivedOn:     r.ArrivedOn,
		Status:        domain.IntakeStatus(r.Status),
		InspectionID:  r.InspectionID,
		CreatedAt:     r.CreatedAt,
	}
}

// Create inserts a waiting item.
func (r *Repo) Create(ctx context.Context, item domain.IntakeItem) (*domain.IntakeItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}

	var out row
	err := pgxscan.Get(ctx, q, &out, createSQL,
		item.ID, item.InternalOrder, item.ClientName, item.ArrivedOn,
		string(domain.IntakeStatusWaiting), time.Now().UTC().Truncate(time.Microsecond),
	)
	if err != nil {
		return nil, postgres.MapError(err, "intake item", item.ID)
	}
	return out.toDomain(), nil
}

// ErrNoTx is returned by GetForUpdate when called outside a transaction,
// where the row lock would be released immediately.
var ErrNoTx = errors.New("intake: row lock requires a transaction")

// GetForUpdate returns the item, locking it for the surrounding transaction.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.IntakeItem, error) {
	if !postgres.InTx(ctx) {
		return nil, ErrNoTx
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getForUpdateSQL, id); err != nil {
		return nil, postgres.MapError(err, "intake item", id)
	}
	return out.toDomain(), nil
}

// ListByStatus returns items in status, oldest arrival first.
func (r *Repo) ListByStatus(ctx context.Context, status domain.IntakeStatus) ([]*domain.IntakeItem, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listByStatusSQL, string(status)); err != nil {
		return nil, postgres.MapError(err, "intake items", status)
	}

	out := make([]*domain.IntakeItem, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// MarkInspected links a waiting item to the inspection created from it.
// Returns domain.ErrConflict when the item is no longer waiting.
func (r *Repo) MarkInspected(ctx context.Context, id, inspectionID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, markInspectedSQL, id, inspectionID)
	if err != nil {
		return postgres.MapError(err, "intake item", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("intake item %s: not waiting: %w", id, domain.ErrConflict)
	}
	return nil
}

// Delete removes the item.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "intake item", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("intake item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
