package datagrid

import (
	"fmt"
	"reflect"
	"strings"
)

// Column describes how one field of a record of type R is headed, rendered
// and laid out. Columns are ordered; the order is the left-to-right order
// of both headers and cells.
type Column[R any] struct {
	// ID identifies the column. It must be unique within a grid and is the
	// property name used by the fallback lookup when Render is nil.
	ID string

	// Header is the text shown in the header row.
	Header string

	// Render produces the cell text for a record. It must be pure: the grid
	// may call it any number of times per render pass. A panic propagates
	// to the caller. When nil, the cell falls back to a best-effort
	// property lookup (see [Fielder]).
	Render func(R) string

	// WidthHint is an optional width. "12" or "12ch" caps the column at 12
	// display cells in table output; any other CSS length ("120px", "20%")
	// is only emitted as an HTML width.
	WidthHint string

	// Align sets the text alignment of header, cells and footer.
	Align Alignment

	// NonNavigating marks the cell as an inner control: clicking it never
	// triggers the grid's row click, only OnClick.
	NonNavigating bool

	// OnClick is invoked when the cell itself is clicked.
	OnClick func(R)

	// Footer computes an aggregate footer cell over the rendered records.
	Footer func([]R) string

	// Wrap wraps long cells onto several lines instead of truncating them
	// when the width hint caps the column.
	Wrap bool

	// Style wraps the fully formatted cell in table output. It is applied
	// after alignment so escape codes never affect widths.
	Style func(string) string
}

// KeyFunc derives the key that uniquely identifies a record within the
// rendered slice.
type KeyFunc[R any] func(R) string

// FieldFunc looks up a named property on a record. It backs the fallback
// rendering path for columns without a Render function.
type FieldFunc[R any] func(record R, id string) (any, bool)

// Fielder is implemented by records that expose their properties by name.
// It takes precedence over a grid's [FieldFunc].
type Fielder interface {
	Field(id string) (any, bool)
}

// cell returns the display text of the column for record.
func (c Column[R]) cell(record R, fields FieldFunc[R]) string {
	if c.Render != nil {
		return c.Render(record)
	}
	if f, ok := any(record).(Fielder); ok {
		if v, ok := f.Field(c.ID); ok {
			return Display(v)
		}
		return ""
	}
	if fields != nil {
		if v, ok := fields(record, c.ID); ok {
			return Display(v)
		}
	}
	return ""
}

// Display coerces a property value to text. Nil and nil pointers render as
// the empty string; pointers are dereferenced.
func Display(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		if isNilPointer(v) {
			return ""
		}
		return x.String()
	case error:
		return x.Error()
	case []byte:
		return string(x)
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	return fmt.Sprintf("%v", rv.Interface())
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// MapField is a [FieldFunc] for map-shaped records.
func MapField[V any](record map[string]V, id string) (any, bool) {
	v, ok := record[id]
	if !ok {
		return nil, false
	}
	return v, true
}

// StructField returns a best-effort [FieldFunc] for struct records (or
// pointers to structs). A column ID matches an exported field whose `grid`
// tag equals the ID, or whose name equals the ID ignoring case. Fields
// tagged `grid:"-"` are never matched. The lookup table is built once per
// call.
func StructField[R any]() FieldFunc[R] {
	t := reflect.TypeFor[R]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return func(R, string) (any, bool) { return nil, false }
	}

	index := make(map[string][]int)
	byName := make(map[string][]int)
	for _, f := range reflect.VisibleFields(t) {
		if !f.IsExported() || f.Anonymous {
			continue
		}
		tag := f.Tag.Get("grid")
		if tag == "-" {
			continue
		}
		if tag != "" {
			index[tag] = f.Index
			continue
		}
		name := strings.ToLower(f.Name)
		if _, taken := byName[name]; !taken {
			byName[name] = f.Index
		}
	}

	return func(record R, id string) (any, bool) {
		path, ok := index[id]
		if !ok {
			path, ok = byName[strings.ToLower(id)]
		}
		if !ok {
			return nil, false
		}
		rv := reflect.ValueOf(record)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return nil, false
			}
			rv = rv.Elem()
		}
		fv, err := rv.FieldByIndexErr(path)
		if err != nil {
			return nil, false
		}
		return fv.Interface(), true
	}
}

// validateColumns checks column ids are present and unique.
func validateColumns[R any](columns []Column[R]) error {
	seen := make(map[string]int, len(columns))
	for i, c := range columns {
		if c.ID == "" {
			return fmt.Errorf("%w: column %d has an empty id", ErrInvalidColumn, i)
		}
		if j, dup := seen[c.ID]; dup {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicateColumn, c.ID, j, i)
		}
		seen[c.ID] = i
	}
	return nil
}
