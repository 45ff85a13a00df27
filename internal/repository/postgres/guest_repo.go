package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"weddingplanner/internal/domain"
)

const guestSelect = `
	SELECT id, wedding_id, name, table_number, COALESCE(email, '') AS email, rsvp_status,
		COALESCE(invitation_link, '') AS invitation_link, COALESCE(sender, '') AS sender,
		created_at, updated_at
	FROM guests`

type guestRepository struct {
	DB *sqlx.DB
}

// NewGuestRepository returns a domain.GuestRepository implemented with Postgres.
func NewGuestRepository(db *sqlx.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	// An empty id lets the database generate one.
	query := `
		INSERT INTO guests (id, wedding_id, name, table_number, email, rsvp_status, invitation_link, sender, created_at, updated_at)
		VALUES (COALESCE(NULLIF($1, '')::uuid, gen_random_uuid()), $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	var id string
	err := r.DB.QueryRowxContext(ctx, query, g.ID, g.WeddingID, g.Name, g.Table, g.Email, g.Status, g.InvitationLink, g.Sender).
		Scan(&id, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return storeError(err)
	}
	g.ID = id
	return nil
}

func (r *guestRepository) Update(ctx context.Context, g *domain.Guest) error {
	query := `
		UPDATE guests
		SET name = $2, table_number = $3, email = $4, invitation_link = $5, sender = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING wedding_id, rsvp_status, created_at, updated_at
	`
	err := r.DB.QueryRowxContext(ctx, query, g.ID, g.Name, g.Table, g.Email, g.InvitationLink, g.Sender).
		Scan(&g.WeddingID, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return storeError(err)
	}
	return nil
}

func (r *guestRepository) UpdateStatus(ctx context.Context, id string, status domain.RSVPStatus) (time.Time, error) {
	query := `UPDATE guests SET rsvp_status = $2, updated_at = NOW() WHERE id = $1 RETURNING updated_at`
	var updatedAt time.Time
	err := r.DB.QueryRowxContext(ctx, query, id, status).Scan(&updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, domain.ErrNotFound
		}
		return time.Time{}, storeError(err)
	}
	return updatedAt, nil
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	g := &domain.Guest{}
	if err := r.DB.GetContext(ctx, g, guestSelect+" WHERE id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError(err)
	}
	return g, nil
}

func (r *guestRepository) ListByWeddingID(ctx context.Context, weddingID string) ([]*domain.Guest, error) {
	guests := make([]*domain.Guest, 0)
	if err := r.DB.SelectContext(ctx, &guests, guestSelect+" WHERE wedding_id = $1 ORDER BY created_at, id", weddingID); err != nil {
		return nil, storeError(err)
	}
	return guests, nil
}

// Delete removes the guest together with its messages and preference in one transaction.
// An id that is not a uuid names no guest, so deleting it succeeds like any other absent id.
func (r *guestRepository) Delete(ctx context.Context, id string) error {
	err := withTx(ctx, r.DB, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM guest_messages WHERE guest_id = $1`, id); err != nil {
			return storeError(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM guest_preferences WHERE guest_id = $1`, id); err != nil {
			return storeError(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id); err != nil {
			return storeError(err)
		}
		return nil
	})
	if isMalformedID(err) {
		return nil
	}
	return err
}
