package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"weddingplanner/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

// namedArgs binds query against arg the same way the repository does and returns the driver args.
func namedArgs(t *testing.T, query string, arg any) []driver.Value {
	t.Helper()
	_, args, err := sqlx.BindNamed(sqlx.DOLLAR, query, arg)
	require.NoError(t, err)
	out := make([]driver.Value, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}

func weddingEventRowColumns() []string {
	cols := append([]string{"id"}, weddingEventColumns...)
	return append(cols, "created_at", "updated_at")
}

func weddingEventMockRow(id, groom, bride string, ts time.Time) []driver.Value {
	values := []driver.Value{id}
	for _, c := range weddingEventColumns {
		switch c {
		case "groom_name":
			values = append(values, groom)
		case "bride_name":
			values = append(values, bride)
		case "alcoholic_drinks":
			values = append(values, `["Wine"]`)
		case "non_alcoholic_drinks":
			values = append(values, `[]`)
		default:
			values = append(values, "")
		}
	}
	return append(values, ts, ts)
}

func TestWeddingEventRepository_Create(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock, row *domain.WeddingEventRow)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock, row *domain.WeddingEventRow) {
				mock.ExpectQuery(`INSERT INTO wedding_events \(groom_name, bride_name, photo_url`).
					WithArgs(namedArgs(t, weddingEventInsert, row)...).
					WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("we-1", ts, ts))
			},
			wantID: "we-1",
		},
		{
			name: "connection lost",
			mock: func(mock sqlmock.Sqlmock, _ *domain.WeddingEventRow) {
				mock.ExpectQuery(`INSERT INTO wedding_events`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: domain.ErrTransientStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			row := &domain.WeddingEventRow{
				GroomName:          "Tom",
				BrideName:          "Ana",
				AlcoholicDrinks:    `["Wine","Beer"]`,
				NonAlcoholicDrinks: `["Juice"]`,
			}
			tt.mock(mock, row)

			err := NewWeddingEventRepository(db).Create(ctx, row)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, row.ID)
			require.Equal(t, ts, row.CreatedAt)
			require.Equal(t, ts, row.UpdatedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWeddingEventRepository_Update(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock, row *domain.WeddingEventRow)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock, row *domain.WeddingEventRow) {
				mock.ExpectQuery(`UPDATE wedding_events SET groom_name = \$1`).
					WithArgs(namedArgs(t, weddingEventUpdate, row)...).
					WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updated))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock, _ *domain.WeddingEventRow) {
				mock.ExpectQuery(`UPDATE wedding_events`).WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			row := &domain.WeddingEventRow{ID: "we-1", GroomName: "Tom", BrideName: "Ana"}
			tt.mock(mock, row)

			err := NewWeddingEventRepository(db).Update(ctx, row)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, created, row.CreatedAt)
			require.Equal(t, updated, row.UpdatedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWeddingEventRepository_UpdateBindsIDLast(t *testing.T) {
	args := namedArgs(t, weddingEventUpdate, &domain.WeddingEventRow{ID: "we-9"})
	require.Len(t, args, len(weddingEventColumns)+1)
	require.Equal(t, "we-9", args[len(args)-1])
}

func TestWeddingEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(weddingEventSelect + " WHERE id = $1")

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("we-1").
					WillReturnRows(sqlmock.NewRows(weddingEventRowColumns()).AddRow(weddingEventMockRow("we-1", "Tom", "Ana", ts)...))
			},
		},
		{
			name: "not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("we-1").WillReturnRows(sqlmock.NewRows(weddingEventRowColumns()))
			},
			wantErr: domain.ErrNotFound,
		},
		{
			name: "unknown column error passes through",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(query).WithArgs("we-1").WillReturnError(&pq.Error{Code: "42703"})
			},
			wantErr: &pq.Error{Code: "42703"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mock(mock)

			row, err := NewWeddingEventRepository(db).GetByID(ctx, "we-1")
			if tt.wantErr != nil {
				require.Error(t, err)
				require.Nil(t, row)
				if tt.wantErr == domain.ErrNotFound {
					require.ErrorIs(t, err, domain.ErrNotFound)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, "we-1", row.ID)
			require.Equal(t, "Tom", row.GroomName)
			require.Equal(t, "Ana", row.BrideName)
			require.Equal(t, `["Wine"]`, row.AlcoholicDrinks)
			require.Equal(t, ts, row.UpdatedAt)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestWeddingEventRepository_GetLatest(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	query := regexp.QuoteMeta(weddingEventSelect + " ORDER BY updated_at DESC, id LIMIT 1")

	t.Run("returns newest", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).
			WillReturnRows(sqlmock.NewRows(weddingEventRowColumns()).AddRow(weddingEventMockRow("we-2", "Leo", "Mia", ts)...))

		row, err := NewWeddingEventRepository(db).GetLatest(ctx)
		require.NoError(t, err)
		require.Equal(t, "we-2", row.ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty table", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows(weddingEventRowColumns()))

		_, err := NewWeddingEventRepository(db).GetLatest(ctx)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}
