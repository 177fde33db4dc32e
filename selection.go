package datagrid

import (
	"maps"
	"slices"
)

// Selection is an immutable set of record keys. The zero value is an empty
// selection. Methods that change membership return a new Selection and
// leave the receiver untouched, so a Selection handed to a grid is never
// modified by it.
type Selection struct {
	keys map[string]struct{}
}

// NewSelection returns a selection holding keys.
func NewSelection(keys ...string) Selection {
	if len(keys) == 0 {
		return Selection{}
	}
	m := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return Selection{keys: m}
}

// Has reports whether key is selected.
func (s Selection) Has(key string) bool {
	_, ok := s.keys[key]
	return ok
}

// Len returns the number of selected keys.
func (s Selection) Len() int { return len(s.keys) }

// Keys returns the selected keys in sorted order. It never returns nil.
func (s Selection) Keys() []string {
	keys := make([]string, 0, len(s.keys))
	for k := range s.keys {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Toggle returns a copy with the membership of key flipped.
func (s Selection) Toggle(key string) Selection {
	if s.Has(key) {
		return s.Without(key)
	}
	return s.With(key)
}

// With returns a copy that also holds keys.
func (s Selection) With(keys ...string) Selection {
	m := s.clone(len(keys))
	for _, k := range keys {
		m[k] = struct{}{}
	}
	return Selection{keys: m}
}

// Without returns a copy that no longer holds keys.
func (s Selection) Without(keys ...string) Selection {
	m := s.clone(0)
	for _, k := range keys {
		delete(m, k)
	}
	return Selection{keys: m}
}

// Union returns a copy holding the keys of both selections.
func (s Selection) Union(other Selection) Selection {
	m := s.clone(len(other.keys))
	maps.Copy(m, other.keys)
	return Selection{keys: m}
}

// Retain returns a copy holding only the selected keys that appear in keys.
// Grids never prune a selection on their own; callers that want stale keys
// dropped after a filter change call Retain with the visible keys.
func (s Selection) Retain(keys ...string) Selection {
	m := make(map[string]struct{})
	for _, k := range keys {
		if s.Has(k) {
			m[k] = struct{}{}
		}
	}
	return Selection{keys: m}
}

// Equal reports whether both selections hold the same keys.
func (s Selection) Equal(other Selection) bool {
	if len(s.keys) != len(other.keys) {
		return false
	}
	for k := range s.keys {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

func (s Selection) clone(extra int) map[string]struct{} {
	m := make(map[string]struct{}, len(s.keys)+extra)
	maps.Copy(m, s.keys)
	return m
}
