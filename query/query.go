// Package query derives the slice a grid renders: it composes filter
// predicates, orders the survivors and cuts a page, without touching the
// caller's slice.
package query

import (
	"cmp"
	"slices"
	"strings"
)

// Predicate reports whether a record passes a filter.
type Predicate[R any] func(R) bool

// All passes records that pass every predicate. An empty list passes all
// records; nil predicates are skipped.
func All[R any](ps ...Predicate[R]) Predicate[R] {
	return func(r R) bool {
		for _, p := range ps {
			if p != nil && !p(r) {
				return false
			}
		}
		return true
	}
}

// Any passes records that pass at least one predicate. An empty list
// passes all records; nil predicates are skipped.
func Any[R any](ps ...Predicate[R]) Predicate[R] {
	live := slices.DeleteFunc(slices.Clone(ps), func(p Predicate[R]) bool { return p == nil })
	return func(r R) bool {
		if len(live) == 0 {
			return true
		}
		for _, p := range live {
			if p(r) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not[R any](p Predicate[R]) Predicate[R] {
	return func(r R) bool { return !p(r) }
}

// Search passes records where any of fields contains term, ignoring case
// and surrounding space. A blank term passes every record.
func Search[R any](term string, fields ...func(R) string) Predicate[R] {
	term = strings.ToLower(strings.TrimSpace(term))
	return func(r R) bool {
		if term == "" {
			return true
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(r)), term) {
				return true
			}
		}
		return false
	}
}

// Equal passes records whose field equals want.
func Equal[R any, V comparable](get func(R) V, want V) Predicate[R] {
	return func(r R) bool { return get(r) == want }
}

// OneOf passes records whose field is one of values. No values passes all
// records.
func OneOf[R any, V comparable](get func(R) V, values ...V) Predicate[R] {
	return func(r R) bool {
		return len(values) == 0 || slices.Contains(values, get(r))
	}
}

// AllValue is the select-box value that disables a [Match] filter.
const AllValue = "all"

// Match is the status-dropdown filter: it passes records whose field equals
// value ignoring case. A blank value or [AllValue] passes every record.
func Match[R any](get func(R) string, value string) Predicate[R] {
	value = strings.TrimSpace(value)
	return func(r R) bool {
		if value == "" || strings.EqualFold(value, AllValue) {
			return true
		}
		return strings.EqualFold(get(r), value)
	}
}

// Between passes records whose field lies in [lo, hi].
func Between[R any, V cmp.Ordered](get func(R) V, lo, hi V) Predicate[R] {
	return func(r R) bool {
		v := get(r)
		return v >= lo && v <= hi
	}
}

// Filter returns the records that pass p, in order, in a new slice.
func Filter[R any](records []R, p Predicate[R]) []R {
	out := make([]R, 0, len(records))
	for _, r := range records {
		if p == nil || p(r) {
			out = append(out, r)
		}
	}
	return out
}
