package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"weddingplanner/internal/domain"
)

type guestPreferenceRepository struct {
	DB *sqlx.DB
}

// NewGuestPreferenceRepository returns a domain.GuestPreferenceRepository implemented with Postgres.
// Drink lists are stored as text[] columns.
func NewGuestPreferenceRepository(db *sqlx.DB) domain.GuestPreferenceRepository {
	return &guestPreferenceRepository{DB: db}
}

// Replace upserts on the unique guest_id, so concurrent saves for one guest leave exactly one record.
// The replaced record gets a fresh id and creation time.
func (r *guestPreferenceRepository) Replace(ctx context.Context, pref *domain.GuestPreference) error {
	alcoholic := nonNil(pref.Alcoholic)
	nonAlcoholic := nonNil(pref.NonAlcoholic)
	query := `
		INSERT INTO guest_preferences (guest_id, alcoholic, non_alcoholic, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (guest_id) DO UPDATE
		SET id = gen_random_uuid(), alcoholic = EXCLUDED.alcoholic,
			non_alcoholic = EXCLUDED.non_alcoholic, created_at = NOW()
		RETURNING id, created_at
	`
	err := r.DB.QueryRowxContext(ctx, query, pref.GuestID, pq.Array(alcoholic), pq.Array(nonAlcoholic)).
		Scan(&pref.ID, &pref.CreatedAt)
	if err != nil {
		return storeError(err)
	}
	pref.Alcoholic = alcoholic
	pref.NonAlcoholic = nonAlcoholic
	return nil
}

func (r *guestPreferenceRepository) GetByGuestID(ctx context.Context, guestID string) (*domain.GuestPreference, error) {
	query := `
		SELECT id, guest_id, alcoholic, non_alcoholic, created_at
		FROM guest_preferences
		WHERE guest_id = $1
	`
	p := &domain.GuestPreference{}
	err := r.DB.QueryRowxContext(ctx, query, guestID).
		Scan(&p.ID, &p.GuestID, pq.Array(&p.Alcoholic), pq.Array(&p.NonAlcoholic), &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError(err)
	}
	p.Alcoholic = nonNil(p.Alcoholic)
	p.NonAlcoholic = nonNil(p.NonAlcoholic)
	return p, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
