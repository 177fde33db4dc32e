package query

import (
	"cmp"
	"strings"
)

// Compare orders two records the way [cmp.Compare] does.
type Compare[R any] func(a, b R) int

// By orders records by an ordered field.
func By[R any, V cmp.Ordered](get func(R) V) Compare[R] {
	return func(a, b R) int { return cmp.Compare(get(a), get(b)) }
}

// ByFold orders records by a string field ignoring case.
func ByFold[R any](get func(R) string) Compare[R] {
	return func(a, b R) int { return strings.Compare(strings.ToLower(get(a)), strings.ToLower(get(b))) }
}

// Reverse inverts c.
func (c Compare[R]) Reverse() Compare[R] {
	return func(a, b R) int { return c(b, a) }
}

// Then breaks ties in c with next.
func (c Compare[R]) Then(next Compare[R]) Compare[R] {
	return func(a, b R) int {
		if n := c(a, b); n != 0 {
			return n
		}
		return next(a, b)
	}
}

// Sorter maps sort field names to comparisons, as a page's sortable
// column headers do.
type Sorter[R any] map[string]Compare[R]

// Lookup returns the comparison for field. Unknown or empty fields yield
// nil, which leaves records in their original order.
func (s Sorter[R]) Lookup(field string) Compare[R] {
	return s[field]
}
