package memory

import (
	"fmt"

	"weddingplanner/internal/domain"
)

// transient reports a cancelled or expired context the way the Postgres store does.
func transient(err error) error {
	return fmt.Errorf("%w: %w", domain.ErrTransientStore, err)
}
