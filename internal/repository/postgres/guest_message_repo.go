package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"weddingplanner/internal/domain"
)

type guestMessageRepository struct {
	DB *sqlx.DB
}

func NewGuestMessageRepository(db *sqlx.DB) domain.GuestMessageRepository {
	return &guestMessageRepository{DB: db}
}

func (r *guestMessageRepository) Create(ctx context.Context, msg *domain.GuestMessage) error {
	query := `
		INSERT INTO guest_messages (guest_id, message, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`
	err := r.DB.QueryRowxContext(ctx, query, msg.GuestID, msg.Message).Scan(&msg.ID, &msg.CreatedAt)
	return storeError(err)
}

func (r *guestMessageRepository) ListByGuestID(ctx context.Context, guestID string) ([]*domain.GuestMessage, error) {
	query := `
		SELECT id, guest_id, message, created_at
		FROM guest_messages
		WHERE guest_id = $1
		ORDER BY created_at, id
	`
	msgs := make([]*domain.GuestMessage, 0)
	if err := r.DB.SelectContext(ctx, &msgs, query, guestID); err != nil {
		return nil, storeError(err)
	}
	return msgs, nil
}
