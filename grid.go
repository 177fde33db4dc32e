package datagrid

import (
	"fmt"
	"iter"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Grid turns a slice of records into a [View]. A Grid holds only the
// configuration supplied at construction; it keeps no state between
// renders, so the same records and selection always produce the same view.
type Grid[R any] struct {
	columns           []Column[R]
	keyOf             KeyFunc[R]
	fields            FieldFunc[R]
	emptyMessage      string
	title             string
	caption           string
	border            BorderStyle
	selectedStyle     *lipgloss.Style
	onRowClick        func(R)
	onSelectionChange func(Selection)
}

// Option configures a [Grid].
type Option[R any] func(*Grid[R])

// WithEmptyMessage sets the text shown when there are no records.
func WithEmptyMessage[R any](msg string) Option[R] {
	return func(g *Grid[R]) { g.emptyMessage = msg }
}

// WithRowClick makes rows interactive. fn receives the clicked record.
func WithRowClick[R any](fn func(R)) Option[R] {
	return func(g *Grid[R]) { g.onRowClick = fn }
}

// WithSelection makes rows selectable. The grid never stores the
// selection; fn receives each requested replacement set and the caller
// decides what to pass to the next [Grid.Render].
func WithSelection[R any](fn func(Selection)) Option[R] {
	return func(g *Grid[R]) { g.onSelectionChange = fn }
}

// WithFields sets the property lookup used by columns without a Render
// function. Without it the grid looks up struct fields ([StructField]).
func WithFields[R any](fn FieldFunc[R]) Option[R] {
	return func(g *Grid[R]) { g.fields = fn }
}

// WithTitle renders a title above the table.
func WithTitle[R any](title string) Option[R] {
	return func(g *Grid[R]) { g.title = title }
}

// WithCaption renders a line below the table.
func WithCaption[R any](caption string) Option[R] {
	return func(g *Grid[R]) { g.caption = caption }
}

// WithBorder sets the table border style. Default: [BorderRounded].
func WithBorder[R any](b BorderStyle) Option[R] {
	return func(g *Grid[R]) { g.border = b }
}

// WithSelectedStyle styles every cell of selected rows in table output.
func WithSelectedStyle[R any](style lipgloss.Style) Option[R] {
	return func(g *Grid[R]) { g.selectedStyle = &style }
}

// New returns a grid over columns. keyOf is required; column ids must be
// non-empty and unique.
func New[R any](columns []Column[R], keyOf KeyFunc[R], opts ...Option[R]) (*Grid[R], error) {
	if keyOf == nil {
		return nil, ErrNoKeyFunc
	}
	if err := validateColumns(columns); err != nil {
		return nil, err
	}
	g := &Grid[R]{
		columns:      slices.Clone(columns),
		keyOf:        keyOf,
		emptyMessage: DefaultEmptyMessage,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.fields == nil {
		g.fields = StructField[R]()
	}
	return g, nil
}

// Columns returns a copy of the grid's columns.
func (g *Grid[R]) Columns() []Column[R] { return slices.Clone(g.columns) }

// Selectable reports whether the grid was configured with [WithSelection].
func (g *Grid[R]) Selectable() bool { return g.onSelectionChange != nil }

// Clickable reports whether the grid was configured with [WithRowClick].
func (g *Grid[R]) Clickable() bool { return g.onRowClick != nil }

// Header is a rendered column header.
type Header struct {
	ID        string
	Text      string
	WidthHint string
	Align     Alignment
}

// Cell is a rendered cell.
type Cell struct {
	ColumnID      string
	Text          string
	NonNavigating bool
}

// Row is a rendered record.
type Row[R any] struct {
	Key      string
	Index    int
	Record   R
	Cells    []Cell
	Selected bool
}

// View is the output of one render pass. It is read-only; interactions on
// it are reported through the grid's callbacks.
type View[R any] struct {
	Title        string
	Caption      string
	Headers      []Header
	Rows         []Row[R]
	Footer       []string
	Empty        bool
	EmptyMessage string
	Selectable   bool
	Clickable    bool
	AllSelected  bool
	SomeSelected bool

	grid     *Grid[R]
	selected Selection
}

// Render builds the view of records with the given selection. Rows keep the
// order of records; the grid never sorts.
func (g *Grid[R]) Render(records []R, selected Selection) *View[R] {
	v := &View[R]{
		Title:        g.title,
		Caption:      g.caption,
		Headers:      make([]Header, len(g.columns)),
		Empty:        len(records) == 0,
		EmptyMessage: g.emptyMessage,
		Selectable:   g.Selectable(),
		Clickable:    g.Clickable(),
		grid:         g,
		selected:     selected,
	}
	for i, c := range g.columns {
		v.Headers[i] = Header{ID: c.ID, Text: c.Header, WidthHint: c.WidthHint, Align: c.Align}
	}
	if v.Empty {
		return v
	}

	v.Rows = make([]Row[R], len(records))
	selectedRows := 0
	for i, record := range records {
		key := g.keyOf(record)
		row := Row[R]{
			Key:      key,
			Index:    i,
			Record:   record,
			Cells:    make([]Cell, len(g.columns)),
			Selected: v.Selectable && selected.Has(key),
		}
		for j, c := range g.columns {
			row.Cells[j] = Cell{ColumnID: c.ID, Text: c.cell(record, g.fields), NonNavigating: c.NonNavigating}
		}
		if row.Selected {
			selectedRows++
		}
		v.Rows[i] = row
	}
	v.AllSelected = v.Selectable && selectedRows == len(v.Rows)
	v.SomeSelected = v.Selectable && selectedRows > 0 && !v.AllSelected

	if slices.ContainsFunc(g.columns, func(c Column[R]) bool { return c.Footer != nil }) {
		v.Footer = make([]string, len(g.columns))
		for i, c := range g.columns {
			if c.Footer != nil {
				v.Footer[i] = c.Footer(records)
			}
		}
	}
	return v
}

// RenderSeq collects records from seq and renders them. Layout needs every
// row, so nothing is produced until seq is exhausted.
func (g *Grid[R]) RenderSeq(seq iter.Seq[R], selected Selection) *View[R] {
	return g.Render(slices.Collect(seq), selected)
}

// RenderChan is a thin wrapper around [Grid.RenderSeq] that drains ch.
func (g *Grid[R]) RenderChan(ch <-chan R, selected Selection) *View[R] {
	return g.RenderSeq(chanToIter(ch), selected)
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// Selection returns the selection the view was rendered with.
func (v *View[R]) Selection() Selection { return v.selected }

// Keys returns the keys of the rendered rows in order.
func (v *View[R]) Keys() []string {
	keys := make([]string, len(v.Rows))
	for i, r := range v.Rows {
		keys[i] = r.Key
	}
	return keys
}

// IsSelected reports whether key is in the view's selection.
func (v *View[R]) IsSelected(key string) bool {
	return v.Selectable && v.selected.Has(key)
}

// Toggle requests that key's membership be flipped.
func (v *View[R]) Toggle(key string) {
	v.emit(v.selected.Toggle(key))
}

// SelectAll requests that keys be added to the selection.
func (v *View[R]) SelectAll(keys ...string) {
	v.emit(v.selected.With(keys...))
}

// ClearAll requests an empty selection.
func (v *View[R]) ClearAll() {
	v.emit(Selection{})
}

// ToggleAll is the header checkbox: it clears the selection when every
// visible row is selected and otherwise adds every visible row.
func (v *View[R]) ToggleAll() {
	if v.Empty {
		return
	}
	if v.AllSelected {
		v.ClearAll()
		return
	}
	v.SelectAll(v.Keys()...)
}

func (v *View[R]) emit(next Selection) {
	if !v.Selectable {
		return
	}
	v.grid.onSelectionChange(next)
}

// Click reports a click on row (its index in Rows) at column. An empty
// column means the row outside any cell. A non-navigating cell runs its
// own OnClick and never the row click. Click reports whether the row click
// callback ran.
func (v *View[R]) Click(row int, column string) bool {
	if row < 0 || row >= len(v.Rows) {
		return false
	}
	record := v.Rows[row].Record
	if column != "" {
		if i := slices.IndexFunc(v.grid.columns, func(c Column[R]) bool { return c.ID == column }); i >= 0 {
			c := v.grid.columns[i]
			if c.OnClick != nil {
				c.OnClick(record)
			}
			if c.NonNavigating {
				return false
			}
		}
	}
	if v.grid.onRowClick == nil {
		return false
	}
	v.grid.onRowClick(record)
	return true
}

// ClickKey is [View.Click] on the row identified by key.
func (v *View[R]) ClickKey(key, column string) bool {
	return v.Click(slices.IndexFunc(v.Rows, func(r Row[R]) bool { return r.Key == key }), column)
}

// CheckKeys reports the first pair of records that share a key. Grids do
// not guard against collisions; callers assert the key contract in tests.
func CheckKeys[R any](records []R, keyOf KeyFunc[R]) error {
	seen := make(map[string]int, len(records))
	for i, r := range records {
		k := keyOf(r)
		if j, dup := seen[k]; dup {
			return fmt.Errorf("%w: %q at rows %d and %d", ErrDuplicateKey, k, j, i)
		}
		seen[k] = i
	}
	return nil
}
