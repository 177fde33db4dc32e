// Package datagrid renders slices of arbitrary records as tables.
//
// A [Grid] is built once from an ordered list of [Column] values and a
// [KeyFunc] that identifies each record. [Grid.Render] is a pure function of
// the records and the current [Selection]: it returns a [View] describing
// headers, rows, cells and the empty state, and the same inputs always
// produce the same view. The grid never sorts or filters; callers derive
// the slice first (see the query subpackage).
//
// # Columns
//
// A column renders its cell with Render when set. Without Render the grid
// falls back to a best-effort property lookup by column id: records that
// implement [Fielder] answer for themselves, otherwise the [FieldFunc]
// passed with [WithFields] is consulted. Grids built without WithFields
// match exported struct fields by name ([StructField]); map records need
// [MapField]. Absent properties render as the empty string.
//
//	cols := []datagrid.Column[Person]{
//		{ID: "name", Header: "Name"},
//		{ID: "age", Header: "Age", Align: datagrid.AlignRight,
//			Render: func(p Person) string { return strconv.Itoa(p.Age) }},
//	}
//	g, err := datagrid.New(cols, func(p Person) string { return p.ID })
//
// # Selection
//
// Selection is owned by the caller. [WithSelection] registers a callback
// that receives the replacement set whenever a view is asked to
// [View.Toggle], [View.SelectAll], [View.ClearAll] or [View.ToggleAll]. The
// [Selection] passed to Render is never modified, and keys that no longer
// match a rendered row are kept until the caller drops them (for instance
// with [Selection.Retain]). A grid without WithSelection is read-only and
// ignores selection requests.
//
// # Row clicks
//
// [WithRowClick] makes rows interactive. [View.Click] invokes the callback
// once with the clicked record, unless the click lands on a column marked
// NonNavigating, in which case only that column's OnClick runs.
//
// # Output
//
// [View.Write] and [View.Marshal] draw a view as a terminal table, Markdown,
// HTML, CSV, TSV, JSON, JSONL or YAML. Use [ParseFormat] to map a flag value
// to a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat]: unknown format name
//   - [ErrUnsupportedBorder]: unknown border name
//   - [ErrInvalidColumn]: a column has an empty id
//   - [ErrDuplicateColumn]: two columns share an id
//   - [ErrNoKeyFunc]: New was called without a key function
//   - [ErrDuplicateKey]: reported by [CheckKeys] for colliding keys
//   - [ErrInvalidTemplate]: a [TemplateColumn] template does not parse
package datagrid
