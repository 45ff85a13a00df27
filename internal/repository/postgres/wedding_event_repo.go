package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"weddingplanner/internal/domain"
)

// weddingEventColumns are the editor-owned columns of wedding_events, in insert order.
var weddingEventColumns = []string{
	"groom_name", "bride_name", "photo_url",
	"date_day", "date_month", "date_year", "date_day_of_week", "date_time",
	"ceremony_time", "ceremony_venue", "ceremony_address",
	"reception_time", "reception_venue", "reception_address",
	"welcome_title", "welcome_subtitle", "welcome_message",
	"invitation_title", "invitation_message", "invitation_closing",
	"program_title", "program_description",
	"guestbook_title", "guestbook_description", "guestbook_placeholder",
	"preferences_title", "preferences_description", "preferences_alcoholic_label", "preferences_non_alcoholic_label",
	"cancellation_title", "cancellation_message", "cancellation_confirm_label",
	"alcoholic_drinks", "non_alcoholic_drinks",
}

var (
	weddingEventSelect = buildWeddingEventSelect()
	weddingEventInsert = buildWeddingEventInsert()
	weddingEventUpdate = buildWeddingEventUpdate()
)

// buildWeddingEventSelect coalesces every text column so NULLs scan as empty strings.
func buildWeddingEventSelect() string {
	cols := make([]string, 0, len(weddingEventColumns))
	for _, c := range weddingEventColumns {
		cols = append(cols, "COALESCE("+c+", '') AS "+c)
	}
	return "SELECT id, " + strings.Join(cols, ", ") + ", created_at, updated_at FROM wedding_events"
}

func buildWeddingEventInsert() string {
	params := make([]string, 0, len(weddingEventColumns))
	for _, c := range weddingEventColumns {
		params = append(params, ":"+c)
	}
	return "INSERT INTO wedding_events (" + strings.Join(weddingEventColumns, ", ") + ", created_at, updated_at) " +
		"VALUES (" + strings.Join(params, ", ") + ", NOW(), NOW()) RETURNING id, created_at, updated_at"
}

func buildWeddingEventUpdate() string {
	sets := make([]string, 0, len(weddingEventColumns)+1)
	for _, c := range weddingEventColumns {
		sets = append(sets, c+" = :"+c)
	}
	sets = append(sets, "updated_at = NOW()")
	return "UPDATE wedding_events SET " + strings.Join(sets, ", ") + " WHERE id = :id RETURNING created_at, updated_at"
}

type weddingEventRepository struct {
	DB *sqlx.DB
}

// NewWeddingEventRepository returns a domain.WeddingEventRepository implemented with Postgres.
func NewWeddingEventRepository(db *sqlx.DB) domain.WeddingEventRepository {
	return &weddingEventRepository{DB: db}
}

func (r *weddingEventRepository) Create(ctx context.Context, row *domain.WeddingEventRow) error {
	query, args, err := r.DB.BindNamed(weddingEventInsert, row)
	if err != nil {
		return err
	}
	err = r.DB.QueryRowxContext(ctx, query, args...).Scan(&row.ID, &row.CreatedAt, &row.UpdatedAt)
	return storeError(err)
}

func (r *weddingEventRepository) Update(ctx context.Context, row *domain.WeddingEventRow) error {
	query, args, err := r.DB.BindNamed(weddingEventUpdate, row)
	if err != nil {
		return err
	}
	err = r.DB.QueryRowxContext(ctx, query, args...).Scan(&row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrNotFound
		}
		return storeError(err)
	}
	return nil
}

func (r *weddingEventRepository) GetByID(ctx context.Context, id string) (*domain.WeddingEventRow, error) {
	row := &domain.WeddingEventRow{}
	err := r.DB.GetContext(ctx, row, weddingEventSelect+" WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError(err)
	}
	return row, nil
}

func (r *weddingEventRepository) GetLatest(ctx context.Context) (*domain.WeddingEventRow, error) {
	row := &domain.WeddingEventRow{}
	err := r.DB.GetContext(ctx, row, weddingEventSelect+" ORDER BY updated_at DESC, id LIMIT 1")
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, storeError(err)
	}
	return row, nil
}
