package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"weddingplanner/internal/domain"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{"fk violation", &pq.Error{Code: "23503"}, domain.ErrReference},
		{"duplicate id", &pq.Error{Code: "23505"}, domain.ErrValidation},
		{"malformed uuid", &pq.Error{Code: "22P02"}, domain.ErrNotFound},
		{"connection failure", &pq.Error{Code: "08006"}, domain.ErrTransientStore},
		{"too many connections", &pq.Error{Code: "53300"}, domain.ErrTransientStore},
		{"admin shutdown", &pq.Error{Code: "57P01"}, domain.ErrTransientStore},
		{"serialization failure", &pq.Error{Code: "40001"}, domain.ErrTransientStore},
		{"bad conn", driver.ErrBadConn, domain.ErrTransientStore},
		{"conn done", sql.ErrConnDone, domain.ErrTransientStore},
		{"deadline", context.DeadlineExceeded, domain.ErrTransientStore},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := storeError(tt.err)
			require.ErrorIs(t, got, tt.wantIs)
			require.ErrorIs(t, got, tt.err)
		})
	}
}

func TestStoreError_Passthrough(t *testing.T) {
	require.NoError(t, storeError(nil))

	check := &pq.Error{Code: "23514"}
	got := storeError(check)
	require.Equal(t, check, got)

	plain := errors.New("boom")
	got = storeError(plain)
	require.Equal(t, plain, got)
	require.False(t, errors.Is(got, domain.ErrTransientStore))
}
