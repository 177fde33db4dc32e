// Package pages defines the demo dashboard pages. Each page pairs a mock
// dataset with its columns and derives the visible rows through the query
// package before handing them to a grid.
package pages

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bjaus/datagrid"
	"github.com/bjaus/datagrid/query"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownPage   = errors.New("unknown page")
	ErrUnknownSort   = errors.New("unknown sort field")
	ErrUnknownRecord = errors.New("unknown record")
)

// Params are the page's filter inputs and display settings.
type Params struct {
	Search       string
	Status       string
	Sort         string
	Descending   bool
	Page         int
	Limit        int
	Selected     datagrid.Selection
	EmptyMessage string
	Border       datagrid.BorderStyle
}

// Events receives the interactions a rendered page reports. Nil handlers
// leave the grid read-only for that interaction.
type Events struct {
	// Open is the row click: navigate to the record's detail view.
	Open func(page, key string)

	// Action is an inner control such as a "Remind" button.
	Action func(page, action, key string)

	// Select receives selection change requests.
	Select func(page string, selected datagrid.Selection)
}

// Viewer is the record-type independent surface of a rendered grid.
type Viewer interface {
	Write(w io.Writer, f datagrid.Format) error
	Keys() []string
	IsSelected(key string) bool
	ClickKey(key, column string) bool
	Toggle(key string)
	SelectAll(keys ...string)
	ClearAll()
	ToggleAll()
}

// Screen is a rendered page.
type Screen struct {
	View  Viewer
	Total int
	Pages int
}

// Field is one labelled value on a detail view.
type Field struct {
	Label string
	Value string
}

// Page is one dashboard page.
type Page interface {
	Name() string
	Title() string
	Statuses() []string
	SortFields() []string
	Render(p Params, ev Events) (*Screen, error)
	Detail(key string, border datagrid.BorderStyle) (Viewer, error)
}

// page implements Page for records of type R.
type page[R any] struct {
	name        string
	title       string
	load        func() []R
	key         datagrid.KeyFunc[R]
	columns     func(name string, ev Events) []datagrid.Column[R]
	search      []func(R) string
	status      func(R) string
	statuses    []string
	sorter      query.Sorter[R]
	defaultSort string
	detail      func(R) []Field
}

func (p *page[R]) Name() string       { return p.name }
func (p *page[R]) Title() string      { return p.title }
func (p *page[R]) Statuses() []string { return slices.Clone(p.statuses) }

func (p *page[R]) SortFields() []string {
	fields := make([]string, 0, len(p.sorter))
	for f := range p.sorter {
		fields = append(fields, f)
	}
	slices.Sort(fields)
	return fields
}

var selectedStyle = lipgloss.NewStyle().Bold(true)

func (p *page[R]) Render(params Params, ev Events) (*Screen, error) {
	sortField := params.Sort
	if sortField == "" {
		sortField = p.defaultSort
	}
	sort := p.sorter.Lookup(sortField)
	if sort == nil && sortField != "" {
		return nil, fmt.Errorf("%w: %q (page %s accepts %v)", ErrUnknownSort, sortField, p.name, p.SortFields())
	}

	q := query.Query[R]{
		Filters: []query.Predicate[R]{
			query.Search(params.Search, p.search...),
			query.Match(p.status, params.Status),
		},
		Sort:       sort,
		Descending: params.Descending,
		Pagination: query.Page(params.Page, params.Limit),
	}
	res := query.Apply(p.load(), q)

	opts := []datagrid.Option[R]{
		datagrid.WithTitle[R](p.title),
		datagrid.WithBorder[R](params.Border),
		datagrid.WithSelectedStyle[R](selectedStyle),
		datagrid.WithCaption[R](caption(len(res.Items), res.Total, params.Page, q.Pagination.Pages(res.Total))),
	}
	if params.EmptyMessage != "" {
		opts = append(opts, datagrid.WithEmptyMessage[R](params.EmptyMessage))
	}
	if ev.Open != nil {
		opts = append(opts, datagrid.WithRowClick(func(r R) { ev.Open(p.name, p.key(r)) }))
	}
	if ev.Select != nil {
		opts = append(opts, datagrid.WithSelection[R](func(s datagrid.Selection) { ev.Select(p.name, s) }))
	}

	g, err := datagrid.New(p.columns(p.name, ev), p.key, opts...)
	if err != nil {
		return nil, err
	}
	return &Screen{
		View:  g.Render(res.Items, params.Selected),
		Total: res.Total,
		Pages: q.Pagination.Pages(res.Total),
	}, nil
}

func caption(shown, total, page, pages int) string {
	if pages > 1 {
		return fmt.Sprintf("Showing %d of %d (page %d of %d)", shown, total, max(page, 1), pages)
	}
	return fmt.Sprintf("Showing %d of %d", shown, total)
}

// Detail renders the record with key as a two-column label/value grid.
func (p *page[R]) Detail(key string, border datagrid.BorderStyle) (Viewer, error) {
	records := p.load()
	i := slices.IndexFunc(records, func(r R) bool { return p.key(r) == key })
	if i < 0 {
		return nil, fmt.Errorf("%w: %q on page %s", ErrUnknownRecord, key, p.name)
	}
	g, err := datagrid.New(
		[]datagrid.Column[Field]{
			{ID: "label", Header: "Field"},
			{ID: "value", Header: "Value"},
		},
		func(f Field) string { return f.Label },
		datagrid.WithTitle[Field](fmt.Sprintf("%s %s", p.title, key)),
		datagrid.WithBorder[Field](border),
	)
	if err != nil {
		return nil, err
	}
	return g.Render(p.detail(records[i]), datagrid.Selection{}), nil
}

// actionColumn is an inner control that never navigates.
func actionColumn[R any](page, action, label string, key datagrid.KeyFunc[R], ev Events) datagrid.Column[R] {
	col := datagrid.Column[R]{
		ID:            "actions",
		Header:        "",
		Render:        func(R) string { return label },
		NonNavigating: true,
	}
	if ev.Action != nil {
		col.OnClick = func(r R) { ev.Action(page, action, key(r)) }
	}
	return col
}

var statusColors = map[string]lipgloss.Color{
	"paid":       "2",
	"delivered":  "2",
	"confirmed":  "2",
	"customer":   "2",
	"checked-in": "6",
	"sent":       "6",
	"in-transit": "6",
	"qualified":  "6",
	"pending":    "3",
	"lead":       "3",
	"draft":      "8",
	"overdue":    "1",
	"delayed":    "1",
	"cancelled":  "1",
}

// statusStyle colors a formatted status cell by its trimmed text.
func statusStyle(cell string) string {
	color, ok := statusColors[strings.TrimSpace(cell)]
	if !ok {
		return cell
	}
	return lipgloss.NewStyle().Foreground(color).Render(cell)
}
