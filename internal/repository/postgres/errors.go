package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"github.com/lib/pq"

	"weddingplanner/internal/domain"
)

// storeError maps driver errors onto domain error kinds, keeping the original in the chain.
// sql.ErrNoRows is left for callers since its meaning depends on the statement.
func storeError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch {
		case pqErr.Code == "23503": // foreign_key_violation
			return fmt.Errorf("%w: %w", domain.ErrReference, err)
		case pqErr.Code == "23505": // unique_violation: a caller-assigned id already in use
			return fmt.Errorf("%w: %w", domain.ErrValidation, err)
		case pqErr.Code == "22P02": // invalid_text_representation: an id that is not a uuid cannot resolve
			return fmt.Errorf("%w: %w", domain.ErrNotFound, err)
		case pqErr.Code == "40001", pqErr.Code == "40P01": // serialization_failure, deadlock_detected
			return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
		}
		switch pqErr.Code.Class() {
		case "08", "53", "57": // connection_exception, insufficient_resources, operator_intervention
			return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
		}
		return err
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
	}
	return err
}

// isMalformedID reports whether err is Postgres rejecting a value that is not a valid uuid.
func isMalformedID(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "22P02"
}
