package query

import "slices"

// Query represents a page's search terms.
type Query[R any] struct {
	// Filters are combined with AND.
	Filters []Predicate[R]

	// Sort orders the filtered records; nil keeps source order.
	Sort Compare[R]

	// Descending reverses Sort.
	Descending bool

	// Pagination cuts the sorted records. The zero value keeps them all.
	Pagination Pagination
}

// Result is the derived slice plus the count before pagination.
type Result[R any] struct {
	Items []R
	Total int
}

// Apply filters, stably sorts and paginates records into a new slice.
func Apply[R any](records []R, q Query[R]) Result[R] {
	filtered := Filter(records, All(q.Filters...))

	if q.Sort != nil {
		less := q.Sort
		if q.Descending {
			less = less.Reverse()
		}
		slices.SortStableFunc(filtered, less)
	}

	total := len(filtered)
	start, end := q.Pagination.Bounds(total)
	return Result[R]{
		Items: slices.Clip(filtered[start:end]),
		Total: total,
	}
}
