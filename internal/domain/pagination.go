package domain

// PaginationParams holds 1-based, fixed-size page parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the index of the first item on the page (0-based).
// Formula: (Page - 1) * PageSize; pages below 1 are treated as the first page.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Bounds returns the [start, end) slice bounds of the page over total items.
// A page past the end yields start == end == total. PageSize <= 0 means unpaged.
// The past-the-end check runs before Offset so huge page numbers cannot overflow.
func (p PaginationParams) Bounds(total int) (start, end int) {
	if p.PageSize <= 0 {
		return 0, total
	}
	if p.Page > 1 && p.Page-1 >= p.TotalPages(total) {
		return total, total
	}
	start = p.Offset()
	end = start + min(p.PageSize, total-start)
	return start, end
}

// TotalPages returns ceiling(total / PageSize), or 1 for unpaged queries with items.
func (p PaginationParams) TotalPages(total int) int {
	if p.PageSize <= 0 {
		if total > 0 {
			return 1
		}
		return 0
	}
	pages := total / p.PageSize
	if total%p.PageSize != 0 {
		pages++
	}
	return pages
}
