package helpers

import (
	"net/http"
	"strconv"

	"weddingplanner/internal/domain"
)

// Guest list paging: page is 1-based, page_size is clamped to MaxPageSize and
// page to MaxPage so the offset arithmetic stays far from int overflow.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

// ParsePagination reads page and page_size from a guest list query string.
// Missing, unparsable or non-positive values fall back to the defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveParam(q.Get("page"), DefaultPage, MaxPage),
		PageSize: positiveParam(q.Get("page_size"), DefaultPageSize, MaxPageSize),
	}
}

func positiveParam(raw string, fallback, limit int) int {
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return fallback
	}
	return min(v, limit)
}

// PaginationMeta describes the page of guests returned next to the status counts.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewPaginationMeta reports p against the number of guests that matched the filters.
func NewPaginationMeta(p domain.PaginationParams, total int) PaginationMeta {
	return PaginationMeta{
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      total,
		TotalPages: p.TotalPages(total),
	}
}
