package query

// Pagination selects a window of a derived slice.
type Pagination struct {
	// items per page; zero or less disables pagination
	Limit int

	// offset
	Offset int
}

// NoPagination returns everything.
var NoPagination = Pagination{}

// Page returns the pagination for a 1-based page of limit items. A limit
// of zero or less disables pagination; pages below 1 are treated as 1.
func Page(page, limit int) Pagination {
	if limit <= 0 {
		return NoPagination
	}
	if page < 1 {
		page = 1
	}
	return Pagination{Limit: limit, Offset: (page - 1) * limit}
}

// Bounds returns the [start, end) window of a slice of length total.
func (p Pagination) Bounds(total int) (start, end int) {
	if p.Limit <= 0 {
		return 0, total
	}

	// out of range
	if p.Offset < 0 || p.Offset > total {
		return 0, 0
	}

	start = p.Offset
	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// Pages returns how many pages of p.Limit items hold total records.
func (p Pagination) Pages(total int) int {
	if p.Limit <= 0 {
		return 1
	}
	return max(1, (total+p.Limit-1)/p.Limit)
}
