// Package inspection implements the inspection record repository.
// Point reads and writes use raw SQL; List is assembled with squirrel
// because its filters are optional.
package inspection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/peritagem-backend/internal/adapter/postgres"
	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// Repo provides inspection persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inspection repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const inspectionColumns = `id, number, status, client_name, company_id, internal_order, invoice,
order_number, revision_reason, barrel_inner, barrel_outer, barrel_length, rod_diameter,
rod_length, stroke, created_by, created_at, updated_at`

// An empty number draws the next value of inspection_number_seq.
const createSQL = `
INSERT INTO inspections (
    id, number, status, status_key, client_name, company_id, internal_order, invoice,
    barrel_inner, barrel_outer, barrel_length, rod_diameter, rod_length, stroke,
    created_by, created_at, updated_at
)
VALUES (
    $1, COALESCE(NULLIF($2, ''), 'PT-' || lpad(nextval('inspection_number_seq')::text, 5, '0')),
    $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $16
)
RETURNING ` + inspectionColumns

const getByIDSQL = `
SELECT ` + inspectionColumns + `
FROM inspections
WHERE id = $1`

const updateStatusSQL = `
UPDATE inspections
SET status          = $2,
    status_key      = $3,
    order_number    = COALESCE($4, order_number),
    revision_reason = CASE WHEN $6 THEN NULL ELSE COALESCE($5, revision_reason) END,
    updated_at      = now()
WHERE id = $1
RETURNING ` + inspectionColumns

const deleteSQL = `DELETE FROM inspections WHERE id = $1`

type row struct {
	ID             uuid.UUID  `db:"id"`
	Number         string     `db:"number"`
	Status         string     `db:"status"`
	ClientName     string     `db:"client_name"`
	CompanyID      *uuid.UUID `db:"company_id"`
	InternalOrder  *string    `db:"internal_order"`
	Invoice        *string    `db:"invoice"`
	OrderNumber    *string    `db:"order_number"`
	RevisionReason *string    `db:"revision_reason"`
	BarrelInner    string     `db:"barrel_inner"`
	BarrelOuter    string     `db:"barrel_outer"`
	BarrelLength   string     `db:"barrel_length"`
	RodDiameter    string     `db:"rod_diameter"`
	RodLength      string     `db:"rod_length"`
	Stroke         string     `db:"stroke"`
	CreatedBy      uuid.UUID  `db:"created_by"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// toDomain leaves Creator.Name empty; callers resolve actors separately.
func (r row) toDomain() *domain.Inspection {
	return &domain.Inspection{
		ID:             r.ID,
		Number:         r.Number,
		RawStatus:      r.Status,
		ClientName:     r.ClientName,
		CompanyID:      r.CompanyID,
		InternalOrder:  r.InternalOrder,
		Invoice:        r.Invoice,
		OrderNumber:    r.OrderNumber,
		RevisionReason: r.RevisionReason,
		Dimensions: domain.Dimensions{
			BarrelInner:  r.BarrelInner,
			BarrelOuter:  r.BarrelOuter,
			BarrelLength: r.BarrelLength,
			RodDiameter:  r.RodDiameter,
			RodLength:    r.RodLength,
			Stroke:       r.Stroke,
		},
		CreatedBy: r.CreatedBy,
		Creator:   domain.Actor{ID: r.CreatedBy},
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// Create inserts rec. A nil ID is generated; an empty Number is drawn from
// the sequence.
func (r *Repo) Create(ctx context.Context, rec domain.Inspection) (*domain.Inspection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	d := rec.Dimensions

	var out row
	err := pgxscan.Get(ctx, q, &out, createSQL,
		rec.ID, strings.TrimSpace(rec.Number), rec.RawStatus, domain.StatusKey(rec.RawStatus),
		rec.ClientName, rec.CompanyID, rec.InternalOrder, rec.Invoice,
		d.BarrelInner, d.BarrelOuter, d.BarrelLength, d.RodDiameter, d.RodLength, d.Stroke,
		rec.CreatedBy, now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "inspection", rec.ID)
	}

	return out.toDomain(), nil
}

// GetByID returns the inspection or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Inspection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "inspection", id)
	}

	return out.toDomain(), nil
}

// List returns a page of inspections matching filter, newest first, and the
// total number of matches.
func (r *Repo) List(ctx context.Context, filter domain.InspectionFilter) ([]*domain.Inspection, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	where := filterConditions(filter)

	countSQL, countArgs, err := psql.Select("count(*)").From("inspections").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count inspections: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "inspections", "count")
	}
	if total == 0 {
		return []*domain.Inspection{}, 0, nil
	}

	sel := psql.Select(inspectionColumns).
		From("inspections").
		Where(where).
		OrderBy("created_at DESC", "id")
	if filter.Limit > 0 {
		sel = sel.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		sel = sel.Offset(uint64(filter.Offset))
	}

	listSQL, args, err := sel.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list inspections: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listSQL, args...); err != nil {
		return nil, 0, postgres.MapError(err, "inspections", "list")
	}

	out := make([]*domain.Inspection, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, total, nil
}

// filterConditions translates filter into a WHERE clause. Stage membership is
// matched on status_key; rows whose key is unknown belong to the first stage.
func filterConditions(filter domain.InspectionFilter) squirrel.And {
	where := squirrel.And{}

	if filter.Stage != nil {
		keys := domain.StatusKeysForStage(*filter.Stage)
		if *filter.Stage == domain.StageCreated {
			where = append(where, squirrel.Or{
				squirrel.Eq{"status_key": keys},
				squirrel.NotEq{"status_key": domain.KnownStatusKeys()},
			})
		} else {
			where = append(where, squirrel.Eq{"status_key": keys})
		}
	}

	if filter.CompanyID != nil {
		where = append(where, squirrel.Eq{"company_id": *filter.CompanyID})
	}

	if filter.Search != nil {
		if term := strings.TrimSpace(*filter.Search); term != "" {
			pattern := "%" + escapeLike(term) + "%"
			where = append(where, squirrel.Or{
				squirrel.ILike{"number": pattern},
				squirrel.ILike{"client_name": pattern},
				squirrel.ILike{"internal_order": pattern},
				squirrel.ILike{"order_number": pattern},
			})
		}
	}

	return where
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// UpdateStatus writes a new raw status. Nil OrderNumber or RevisionReason
// keep the stored value.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, upd domain.InspectionStatusUpdate) (*domain.Inspection, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out row
	err := pgxscan.Get(ctx, q, &out, updateStatusSQL,
		id, upd.RawStatus, domain.StatusKey(upd.RawStatus), upd.OrderNumber, upd.RevisionReason,
		upd.ClearRevisionReason,
	)
	if err != nil {
		return nil, postgres.MapError(err, "inspection", id)
	}

	return out.toDomain(), nil
}

// Delete removes the inspection; its history goes with it by cascade.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "inspection", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("inspection %s: %w", id, domain.ErrNotFound)
	}
	return nil
}
