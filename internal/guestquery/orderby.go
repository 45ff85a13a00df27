package guestquery

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/ordering"

	"weddingplanner/internal/domain"
)

// ParseOrderBy parses an AIP-132 order_by value such as "name" or "table desc".
// Only a single field is supported; empty input means name ascending.
func ParseOrderBy(s string) (SortKey, Direction, error) {
	if strings.TrimSpace(s) == "" {
		return SortByName, Ascending, nil
	}
	var orderBy ordering.OrderBy
	if err := orderBy.UnmarshalString(s); err != nil {
		return "", "", fmt.Errorf("%w: order_by: %v", domain.ErrValidation, err)
	}
	if len(orderBy.Fields) != 1 {
		return "", "", fmt.Errorf("%w: order_by must name exactly one field", domain.ErrValidation)
	}
	field := orderBy.Fields[0]
	key, err := ParseSortKey(field.Path)
	if err != nil {
		return "", "", err
	}
	if field.Desc {
		return key, Descending, nil
	}
	return key, Ascending, nil
}
