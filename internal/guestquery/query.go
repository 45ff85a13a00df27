// Package guestquery searches, filters, sorts and paginates an in-memory guest collection.
// It is pure: results depend only on the arguments and inputs are never mutated.
package guestquery

import (
	"fmt"
	"slices"
	"strings"

	"weddingplanner/internal/domain"
)

// StatusFilter selects guests by RSVP status.
type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusPending   StatusFilter = StatusFilter(domain.RSVPPending)
	StatusConfirmed StatusFilter = StatusFilter(domain.RSVPConfirmed)
	StatusDeclined  StatusFilter = StatusFilter(domain.RSVPDeclined)
)

// SortKey is the guest field used for ordering.
type SortKey string

const (
	SortByName   SortKey = "name"
	SortByTable  SortKey = "table"
	SortByStatus SortKey = "status"
	SortByEmail  SortKey = "email"
)

// Direction is the sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseStatusFilter accepts all|pending|confirmed|declined; empty means all.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch f := StatusFilter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return StatusAll, nil
	case StatusAll, StatusPending, StatusConfirmed, StatusDeclined:
		return f, nil
	}
	return "", fmt.Errorf("%w: status must be one of all, pending, confirmed, declined", domain.ErrValidation)
}

// ParseSortKey accepts name|table|status|email; empty means name.
// "table_number" and "rsvp_status" are accepted as aliases of the wire field names.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortByName, nil
	case SortByName, SortByTable, SortByStatus, SortByEmail:
		return k, nil
	case "table_number":
		return SortByTable, nil
	case "rsvp_status":
		return SortByStatus, nil
	}
	return "", fmt.Errorf("%w: sort must be one of name, table, status, email", domain.ErrValidation)
}

// ParseDirection accepts asc|desc (also ascending|descending); empty means asc.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("%w: direction must be asc or desc", domain.ErrValidation)
}

// Query holds every input of a guest list view.
type Query struct {
	Search    string
	Status    StatusFilter
	SortKey   SortKey
	Direction Direction
	domain.PaginationParams
}

// Counts are per-status totals over the unfiltered collection.
type Counts struct {
	All       int `json:"all"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Declined  int `json:"declined"`
}

// Result is one page of guests plus the totals a dashboard needs.
type Result struct {
	Guests []*domain.Guest `json:"guests"`
	// Total is the number of guests matching search and status, before pagination.
	Total  int    `json:"total"`
	Counts Counts `json:"counts"`
}

// Run applies q to guests: filter, then stable sort, then paginate.
func Run(guests []*domain.Guest, q Query) Result {
	term := strings.ToLower(strings.TrimSpace(q.Search))
	status := q.Status
	if status == "" {
		status = StatusAll
	}

	matched := make([]*domain.Guest, 0, len(guests))
	for _, g := range guests {
		if g == nil {
			continue
		}
		if matchesStatus(g, status) && matchesSearch(g, term) {
			matched = append(matched, g)
		}
	}

	sortGuests(matched, q.SortKey, q.Direction)

	start, end := q.Bounds(len(matched))
	page := make([]*domain.Guest, end-start)
	copy(page, matched[start:end])

	return Result{
		Guests: page,
		Total:  len(matched),
		Counts: CountByStatus(guests),
	}
}

// CountByStatus tallies guests per RSVP status.
func CountByStatus(guests []*domain.Guest) Counts {
	var c Counts
	for _, g := range guests {
		if g == nil {
			continue
		}
		c.All++
		switch g.Status {
		case domain.RSVPPending:
			c.Pending++
		case domain.RSVPConfirmed:
			c.Confirmed++
		case domain.RSVPDeclined:
			c.Declined++
		}
	}
	return c
}

func matchesStatus(g *domain.Guest, f StatusFilter) bool {
	return f == StatusAll || string(g.Status) == string(f)
}

// matchesSearch reports whether term (already lower-cased) is a substring of name, email or table.
func matchesSearch(g *domain.Guest, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(g.Name), term) ||
		strings.Contains(strings.ToLower(g.Email), term) ||
		strings.Contains(strings.ToLower(g.Table), term)
}

func sortGuests(guests []*domain.Guest, key SortKey, dir Direction) {
	field := sortField(key)
	desc := dir == Descending
	slices.SortStableFunc(guests, func(a, b *domain.Guest) int {
		c := strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
		if desc {
			return -c
		}
		return c
	})
}

func sortField(key SortKey) func(*domain.Guest) string {
	switch key {
	case SortByTable:
		return func(g *domain.Guest) string { return g.Table }
	case SortByStatus:
		return func(g *domain.Guest) string { return string(g.Status) }
	case SortByEmail:
		return func(g *domain.Guest) string { return g.Email }
	default:
		return func(g *domain.Guest) string { return g.Name }
	}
}
