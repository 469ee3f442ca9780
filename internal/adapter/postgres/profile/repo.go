// Package profile implements the user profile repository.
package profile

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

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new profile repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

const profileColumns = `id, email, name, role, status, company_id, password_hash, created_at, updated_at`

const createSQL = `
INSERT INTO profiles (id, email, name, role, status, company_id, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING ` + profileColumns

const getByIDSQL = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

const getByEmailSQL = `SELECT ` + profileColumns + ` FROM profiles WHERE lower(email) = lower($1)`

const getByIDsSQL = `SELECT ` + profileColumns + ` FROM profiles WHERE id = ANY($1)`

type row struct {
	ID           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	Role         string     `db:"role"`
	Status       string     `db:"status"`
	CompanyID    *uuid.UUID `db:"company_id"`
	PasswordHash string     `db:"password_hash"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r row) toDomain() *domain.Profile {
	return &domain.Profile{
		ID:           r.ID,
		Email:        r.Email,
		Name:         r.Name,
		Role:         domain.Role(r.Role),
		Status:       domain.ProfileStatus(r.Status),
		CompanyID:    r.CompanyID,
		PasswordHash: r.PasswordHash,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// Create inserts p. Duplicate emails (case-insensitive) return domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, p domain.Profile) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	var out row
	err := pgxscan.Get(ctx, q, &out, createSQL,
		p.ID, strings.TrimSpace(p.Email), p.Name, string(p.Role), string(p.Status), p.CompanyID, p.PasswordHash, now,
	)
	if err != nil {
		return nil, postgres.MapError(err, "profile", p.Email)
	}
	return out.toDomain(), nil
}

// GetByID returns the profile or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getByIDSQL, id); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return out.toDomain(), nil
}

// GetByEmail looks a profile up case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var out row
	if err := pgxscan.Get(ctx, q, &out, getByEmailSQL, strings.TrimSpace(email)); err != nil {
		return nil, postgres.MapError(err, "profile", email)
	}
	return out.toDomain(), nil
}

// GetByIDs returns the profiles that exist among ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]*domain.Profile, error) {
	if len(ids) == 0 {
		return []*domain.Profile{}, nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, getByIDsSQL, ids); err != nil {
		return nil, postgres.MapError(err, "profiles", len(ids))
	}

	out := make([]*domain.Profile, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// List returns profiles ordered by creation, optionally filtered by status.
func (r *Repo) List(ctx context.Context, status *domain.ProfileStatus) ([]*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sel := psql.Select(profileColumns).From("profiles").OrderBy("created_at ASC", "id")
	if status != nil {
		sel = sel.Where(squirrel.Eq{"status": string(*status)})
	}

	listSQL, args, err := sel.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list profiles: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, q, &rows, listSQL, args...); err != nil {
		return nil, postgres.MapError(err, "profiles", "list")
	}

	out := make([]*domain.Profile, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Update applies the non-nil fields of params.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ProfileUpdateParams) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	upd := psql.Update("profiles").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + profileColumns)
	if params.Role != nil {
		upd = upd.Set("role", string(*params.Role))
	}
	if params.Status != nil {
		upd = upd.Set("status", string(*params.Status))
	}
	if params.CompanyID != nil {
		upd = upd.Set("company_id", *params.CompanyID)
	}

	updateSQL, args, err := upd.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update profile: %w", err)
	}

	var out row
	if err := pgxscan.Get(ctx, q, &out, updateSQL, args...); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return out.toDomain(), nil
}
