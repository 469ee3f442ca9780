package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/peritagem-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile inserts an approved profile with the given role.
func SeedProfile(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Profile {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	p := domain.Profile{
		ID:           uuid.New(),
		Email:        role.String() + "-" + suffix + "@example.com",
		Name:         "Test " + role.String() + " " + suffix,
		Role:         role,
		Status:       domain.ProfileStatusApproved,
		PasswordHash: "not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if role.IsClient() {
		company := uuid.New()
		p.CompanyID = &company
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO profiles (id, email, name, role, status, company_id, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Email, p.Name, string(p.Role), string(p.Status), p.CompanyID, p.PasswordHash, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedProfile: %v", err)
	}

	return p
}

// SeedInspection inserts an inspection with the given raw status created by creator.
func SeedInspection(t *testing.T, pool *pgxpool.Pool, creator domain.Profile, status string) domain.Inspection {
	t.Helper()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	rec := domain.Inspection{
		ID:         uuid.New(),
		Number:     "PT-" + suffix,
		RawStatus:  status,
		ClientName: "Cliente " + suffix,
		CompanyID:  creator.CompanyID,
		CreatedBy:  creator.ID,
		Creator:    creator.Actor(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO inspections (id, number, status, status_key, client_name, company_id, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		rec.ID, rec.Number, rec.RawStatus, domain.StatusKey(rec.RawStatus), rec.ClientName, rec.CompanyID,
		rec.CreatedBy, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedInspection: %v", err)
	}

	return rec
}

// SeedHistory appends one history row at occurredAt.
func SeedHistory(t *testing.T, pool *pgxpool.Pool, rec domain.Inspection, actor domain.Profile, from, to string, occurredAt time.Time) domain.HistoryEntry {
	t.Helper()

	e := domain.HistoryEntry{
		ID:             uuid.New(),
		InspectionID:   rec.ID,
		PreviousStatus: from,
		NewStatus:      to,
		ActorID:        actor.ID,
		Actor:          actor.Actor(),
		OccurredAt:     occurredAt.UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO inspection_history (id, inspection_id, previous_status, new_status, actor_id, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.ID, e.InspectionID, e.PreviousStatus, e.NewStatus, e.ActorID, e.OccurredAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedHistory: %v", err)
	}

	return e
}

// SeedIntakeItem inserts a waiting intake item.
func SeedIntakeItem(t *testing.T, pool *pgxpool.Pool) domain.IntakeItem {
	t.Helper()

	suffix := uniqueSuffix()
	item := domain.IntakeItem{
		ID:            uuid.New(),
		InternalOrder: "OS-" + suffix,
		ClientName:    "Cliente " + suffix,
		ArrivedOn:     time.Now().UTC().Truncate(24 * time.Hour),
		Status:        domain.IntakeStatusWaiting,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO intake_items (id, internal_order, client_name, arrived_on, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		item.ID, item.InternalOrder, item.ClientName, item.ArrivedOn, string(item.Status), item.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedIntakeItem: %v", err)
	}

	return item
}
