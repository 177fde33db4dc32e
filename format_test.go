package datagrid_test

import (
	"bytes"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/datagrid"
)

// --- Helpers ---

type errWriter struct{}

func (e *errWriter) Write([]byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

func render(t *testing.T, v *datagrid.View[person], f datagrid.Format) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, v.Write(&buf, f))
	return buf.String()
}

func joinLines(lines ...string) string { return strings.Join(lines, "\n") + "\n" }

// ============================================================
// Format parsing
// ============================================================

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    datagrid.Format
		wantErr require.ErrorAssertionFunc
	}{
		"table":    {input: "table", want: datagrid.Table, wantErr: require.NoError},
		"markdown": {input: "markdown", want: datagrid.Markdown, wantErr: require.NoError},
		"html":     {input: "html", want: datagrid.HTML, wantErr: require.NoError},
		"csv":      {input: "csv", want: datagrid.CSV, wantErr: require.NoError},
		"tsv":      {input: "tsv", want: datagrid.TSV, wantErr: require.NoError},
		"json":     {input: "json", want: datagrid.JSON, wantErr: require.NoError},
		"jsonl":    {input: "jsonl", want: datagrid.JSONL, wantErr: require.NoError},
		"yaml":     {input: "yaml", want: datagrid.YAML, wantErr: require.NoError},
		"unknown":  {input: "xml", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := datagrid.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormatSentinel(t *testing.T) {
	t.Parallel()
	_, err := datagrid.ParseFormat("xml")
	assert.ErrorIs(t, err, datagrid.ErrUnsupportedFormat)
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := datagrid.Formats()
	assert.Equal(t, []datagrid.Format{
		datagrid.Table, datagrid.Markdown, datagrid.HTML, datagrid.CSV,
		datagrid.TSV, datagrid.JSON, datagrid.JSONL, datagrid.YAML,
	}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, datagrid.Table, datagrid.Formats()[0])
}

func TestParseBorder(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    datagrid.BorderStyle
		wantErr bool
	}{
		"empty":   {input: "", want: datagrid.BorderRounded},
		"rounded": {input: "rounded", want: datagrid.BorderRounded},
		"none":    {input: "none", want: datagrid.BorderNone},
		"ascii":   {input: "ASCII", want: datagrid.BorderASCII},
		"heavy":   {input: "heavy", want: datagrid.BorderHeavy},
		"double":  {input: "double", want: datagrid.BorderDouble},
		"unknown": {input: "dotted", want: datagrid.BorderRounded, wantErr: true},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := datagrid.ParseBorder(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, datagrid.ErrUnsupportedBorder)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	v := newPersonGrid(t).Render(people(), datagrid.Selection{})
	_, err := v.Marshal("xml")
	require.ErrorIs(t, err, datagrid.ErrUnsupportedFormat)
}

// ============================================================
// Table
// ============================================================

func TestWriteTableASCII(t *testing.T) {
	t.Parallel()
	v := newPersonGrid(t, datagrid.WithBorder[person](datagrid.BorderASCII)).Render(people(), datagrid.Selection{})
	assert.Equal(t, joinLines(
		"+-------+-----+",
		"| Name  | Age |",
		"+-------+-----+",
		"| Alice |  30 |",
		"| Bob   |  25 |",
		"+-------+-----+",
	), render(t, v, datagrid.Table))
}

func TestWriteTableEmptySpansColumns(t *testing.T) {
	t.Parallel()
	g := newPersonGrid(t,
		datagrid.WithBorder[person](datagrid.BorderASCII),
		datagrid.WithEmptyMessage[person]("No data available"),
	)
	v := g.Render(nil, datagrid.Selection{})
	assert.Equal(t, joinLines(
		"+------+------------+",
		"| Name |        Age |",
		"+------+------------+",
		"| No data available |",
		"+-------------------+",
	), render(t, v, datagrid.Table))
}

func TestWriteTableEmptyNoColumns(t *testing.T) {
	t.Parallel()
	g, err := datagrid.New(nil, personKey, datagrid.WithBorder[person](datagrid.BorderASCII))
	require.NoError(t, err)
	v := g.Render(nil, datagrid.Selection{})
	assert.Equal(t, joinLines(
		"+-------------------+",
		"| No data available |",
		"+-------------------+",
	), render(t, v, datagrid.Table))
}

func TestWriteTableBorderNone(t *testing.T) {
	t.Parallel()
	g := newPersonGrid(t, datagrid.WithBorder[person](datagrid.BorderNone))
	assert.Equal(t, joinLines(
		"Name   Age",
		"-----  ---",
		"Alice   30",
		"Bob     25",
	), render(t, g.Render(people(), datagrid.Selection{}), datagrid.Table))

	assert.Equal(t, joinLines(
		"Name  Age",
		"----  ---",
		"No data available",
	), render(t, g.Render(nil, datagrid.Selection{}), datagrid.Table))
}

func TestWriteTableBorderStyles(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		border datagrid.BorderStyle
		want   []string
	}{
		"rounded": {border: datagrid.BorderRounded, want: []string{"╭", "╰", "│", "─"}},
		"heavy":   {border: datagrid.BorderHeavy, want: []string{"┏", "┃", "━"}},
		"double":  {border: datagrid.BorderDouble, want: []string{"╔", "║", "═"}},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v := newPersonGrid(t, datagrid.WithBorder[person](tt.border)).Render(people(), datagrid.Selection{})
			out := render(t, v, datagrid.Table)
			for _, s := range tt.want {
				assert.Contains(t, out, s)
			}
			assert.Contains(t, out, "Alice")
		})
	}
}

func TestWriteTableTitleFooterCaption(t *testing.T) {
	t.Parallel()
	cols := personColumns()
	cols[0].Footer = func([]person) string { return "Total" }
	cols[1].Footer = func([]person) string { return "55" }
	g, err := datagrid.New(cols, personKey,
		datagrid.WithTitle[person]("People"),
		datagrid.WithCaption[person]("2 results"),
		datagrid.WithBorder[person](datagrid.BorderASCII),
	)
	require.NoError(t, err)
	out := render(t, g.Render(people(), datagrid.Selection{}), datagrid.Table)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Equal(t, "+-------------+", lines[0])
	assert.Equal(t, "|   People    |", lines[1])
	assert.Equal(t, "| Total |  55 |", lines[len(lines)-3])
	assert.Equal(t, "2 results", lines[len(lines)-1])
}

func TestWriteTableCheckboxColumn(t *testing.T) {
	t.Parallel()
	g := newPersonGrid(t,
		datagrid.WithBorder[person](datagrid.BorderASCII),
		datagrid.WithSelection[person](func(datagrid.Selection) {}),
	)
	assert.Equal(t, joinLines(
		"+-----+-------+-----+",
		"| [-] | Name  | Age |",
		"+-----+-------+-----+",
		"| [x] | Alice |  30 |",
		"| [ ] | Bob   |  25 |",
		"+-----+-------+-----+",
	), render(t, g.Render(people(), datagrid.NewSelection("1")), datagrid.Table))

	all := render(t, g.Render(people(), datagrid.NewSelection("1", "2")), datagrid.Table)
	assert.Contains(t, all, "| [x] | Name  | Age |")
}

func TestWriteTableWidthHintTruncates(t *testing.T) {
	t.Parallel()
	cols := personColumns()
	cols[0].WidthHint = "4ch"
	g, err := datagrid.New(cols, personKey, datagrid.WithBorder[person](datagrid.BorderASCII))
	require.NoError(t, err)
	out := render(t, g.Render(people(), datagrid.Selection{}), datagrid.Table)
	assert.Contains(t, out, "| A... |  30 |")
	assert.Contains(t, out, "| Bob  |  25 |")
}

func TestWriteTableWidthHintWraps(t *testing.T) {
	t.Parallel()
	cols := personColumns()
	cols[0].WidthHint = "3"
	cols[0].Wrap = true
	g, err := datagrid.New(cols, personKey, datagrid.WithBorder[person](datagrid.BorderASCII))
	require.NoError(t, err)
	out := render(t, g.Render(people(), datagrid.Selection{}), datagrid.Table)
	assert.Contains(t, out, "| Ali |  30 |")
	assert.Contains(t, out, "| ce  |     |")
}

func TestWriteTableWidthHintKeepsWideRunes(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		wrap bool
		want string
	}{
		"wrap": {
			wrap: true,
			want: joinLines("+----+", "| N  |", "+----+", "| 你 |", "| 好 |", "+----+"),
		},
		"truncate": {
			want: joinLines("+----+", "| N  |", "+----+", "| 你 |", "+----+"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cols := []datagrid.Column[person]{{
				ID: "name", Header: "N", WidthHint: "1", Wrap: tt.wrap,
				Render: func(p person) string { return p.Name },
			}}
			g, err := datagrid.New(cols, personKey, datagrid.WithBorder[person](datagrid.BorderASCII))
			require.NoError(t, err)
			v := g.Render([]person{{ID: "1", Name: "你好"}}, datagrid.Selection{})
			assert.Equal(t, tt.want, render(t, v, datagrid.Table))
		})
	}
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestWriteTableSelectedStyle(t *testing.T) {
	t.Parallel()
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	g := newPersonGrid(t,
		datagrid.WithBorder[person](datagrid.BorderASCII),
		datagrid.WithSelection[person](func(datagrid.Selection) {}),
		datagrid.WithSelectedStyle[person](r.NewStyle().Bold(true)),
	)
	out := render(t, g.Render(people(), datagrid.NewSelection("1")), datagrid.Table)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 7)

	assert.Contains(t, lines[3], "\x1b[1m[x]\x1b[0m")
	assert.Contains(t, lines[3], "\x1b[1mAlice\x1b[0m")
	assert.NotContains(t, lines[4], "\x1b[")
	assert.NotContains(t, lines[1], "\x1b[")

	assert.Equal(t, joinLines(
		"+-----+-------+-----+",
		"| [-] | Name  | Age |",
		"+-----+-------+-----+",
		"| [x] | Alice |  30 |",
		"| [ ] | Bob   |  25 |",
		"+-----+-------+-----+",
	), ansi.ReplaceAllString(out, ""))
}

func TestWriteTableStyles(t *testing.T) {
	t.Parallel()
	cols := personColumns()
	cols[0].Style = func(s string) string { return "<" + s + ">" }
	g, err := datagrid.New(cols, personKey,
		datagrid.WithBorder[person](datagrid.BorderNone),
		datagrid.WithSelection[person](func(datagrid.Selection) {}),
		datagrid.WithSelectedStyle[person](lipgloss.NewStyle()),
	)
	require.NoError(t, err)
	out := render(t, g.Render(people(), datagrid.NewSelection("2")), datagrid.Table)
	assert.Contains(t, out, "<Alice>")
	assert.Contains(t, out, "Bob")
}

func TestWriteTableWriteError(t *testing.T) {
	t.Parallel()
	for _, border := range []datagrid.BorderStyle{datagrid.BorderRounded, datagrid.BorderNone} {
		v := newPersonGrid(t, datagrid.WithBorder[person](border)).Render(people(), datagrid.Selection{})
		assert.ErrorIs(t, v.Write(&errWriter{}, datagrid.Table), errWriteFailed)
	}
}

// ============================================================
// Markdown
// ============================================================

func TestWriteMarkdown(t *testing.T) {
	t.Parallel()
	v := newPersonGrid(t).Render(people(), datagrid.Selection{})
	assert.Equal(t, joinLines(
		"| Name  | Age |",
		"| ----- | --: |",
		"| Alice |  30 |",
		"| Bob   |  25 |",
	), render(t, v, datagrid.Markdown))
}

func TestWriteMarkdownEmpty(t *testing.T) {
	t.Parallel()
	v := newPersonGrid(t).Render(nil, datagrid.Selection{})
	out := render(t, v, datagrid.Markdown)
	assert.Contains(t, out, "| No data available |")
	assert.Equal(t, 3, strings.Count(out, "\n"))
}

func TestWriteMarkdownEscapesPipes(t *testing.T) {
	t.Parallel()
	v := newPersonGrid(t).Render([]person{{ID: "1", Name: "A|B"}}, datagrid.Selection{})
	assert.Contains(t, render(t, v, datagrid.Markdown), `A\|B`)
}

// ============================================================
// HTML
// ============================================================

func TestWriteHTML(t *testing.T) {
	t.Parallel()
	cols := personColumns()
	cols[0].WidthHint = "120px"
	cols = append(cols, datagrid.Column[person]{
		ID: "actions", Render: func(person) string { return "<Delete>" }, NonNavigating: true,
	})
	g, err := datagrid.New(cols, personKey,
		datagrid.WithRowClick(func(person) {}),
		datagrid.WithSelection[person](func(datagrid.Selection) {}),
		datagrid.WithTitle[person]("People"),
	)
	require.NoError(t, err)
	out := render(t, g.Render(people(), datagrid.NewSelection("2")), datagrid.HTML)
	assert.Contains(t, out, "<caption>People</caption>")
	assert.Contains(t, out, `<th data-column="name" style="width: 120px">Name</th>`)
	assert.Contains(t, out, `<th data-column="age" style="text-align: right">Age</th>`)
	assert.Contains(t, out, `<tr data-key="1" class="clickable" aria-selected="false">`)
	assert.Contains(t, out, `<tr data-key="2" class="clickable" aria-selected="true">`)
	assert.Contains(t, out, `<td data-non-navigating="true">&lt;Delete&gt;</td>`)
	assert.Contains(t, out, `<th><input type="checkbox" data-indeterminate="true"></th>`)
	assert.Contains(t, out, `<td><input type="checkbox" checked></td>`)
}

func TestWriteHTMLEmpty(t *testing.T) {
	t.Parallel()
	g := newPersonGrid(t, datagrid.WithSelection[person](func(datagrid.Selection) {}))
	out := render(t, g.Render(nil, datagrid.Selection{}), datagrid.HTML)
	assert.Contains(t, out, `<tr class="empty"><td colspan="3">No data available</td></tr>`)
	assert.NotContains(t, out, "data-key")
}

// ============================================================
// CSV / TSV
// ============================================================

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	g := newPersonGrid(t)
	assert.Equal(t, "Name,Age\nAlice,30\nBob,25\n", render(t, g.Render(people(), datagrid.Selection{}), datagrid.CSV))
	assert.Equal(t, "Name,Age\n", render(t, g.Render(nil, datagrid.Selection{}), datagrid.CSV))
}

func TestWriteCSVQuoted(t *testing.T) {
	t.Parallel()
	v := newPersonGrid(t).Render([]person{{ID: "1", Name: "hello, world"}}, datagrid.Selection{})
	assert.Contains(t, render(t, v, datagrid.CSV), `"hello, world"`)
}

func TestWriteTSV(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		records []person
		want    string
	}{
		"plain": {
			records: people(),
			want:    "Name\tAge\nAlice\t30\nBob\t25\n",
		},
		"tabs and newlines in a cell": {
			records: []person{{ID: "1", Name: "a\tb\nc\r\nd", Age: 1}},
			want:    "Name\tAge\na b c d\t1\n",
		},
		"empty": {
			want: "Name\tAge\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			v := newPersonGrid(t).Render(tt.records, datagrid.Selection{})
			assert.Equal(t, tt.want, render(t, v, datagrid.TSV))
		})
	}
}

// ============================================================
// JSON / JSONL / YAML
// ============================================================

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	g := newPersonGrid(t, datagrid.WithSelection[person](func(datagrid.Selection) {}))
	out := render(t, g.Render(people(), datagrid.NewSelection("2")), datagrid.JSON)
	assert.JSONEq(t, `{
		"columns": [{"id": "name", "header": "Name"}, {"id": "age", "header": "Age"}],
		"rows": [
			{"key": "1", "cells": {"name": "Alice", "age": "30"}},
			{"key": "2", "selected": true, "cells": {"name": "Bob", "age": "25"}}
		],
		"empty": false
	}`, out)
}

func TestWriteJSONEmpty(t *testing.T) {
	t.Parallel()
	out := render(t, newPersonGrid(t).Render(nil, datagrid.Selection{}), datagrid.JSON)
	assert.JSONEq(t, `{
		"columns": [{"id": "name", "header": "Name"}, {"id": "age", "header": "Age"}],
		"rows": [],
		"empty": true,
		"emptyMessage": "No data available"
	}`, out)
}

func TestWriteJSONL(t *testing.T) {
	t.Parallel()
	g := newPersonGrid(t)
	out := render(t, g.Render(people(), datagrid.Selection{}), datagrid.JSONL)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"key": "1", "cells": {"name": "Alice", "age": "30"}}`, lines[0])
	assert.JSONEq(t, `{"key": "2", "cells": {"name": "Bob", "age": "25"}}`, lines[1])

	assert.Empty(t, render(t, g.Render(nil, datagrid.Selection{}), datagrid.JSONL))
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	out := render(t, newPersonGrid(t).Render(people(), datagrid.Selection{}), datagrid.YAML)

	var doc struct {
		Columns []struct {
			ID     string `yaml:"id"`
			Header string `yaml:"header"`
		} `yaml:"columns"`
		Rows []struct {
			Key   string            `yaml:"key"`
			Cells map[string]string `yaml:"cells"`
		} `yaml:"rows"`
		Empty bool `yaml:"empty"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Columns, 2)
	assert.Equal(t, "name", doc.Columns[0].ID)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, "1", doc.Rows[0].Key)
	assert.Equal(t, "Alice", doc.Rows[0].Cells["name"])
	assert.False(t, doc.Empty)
}

func TestWriteYAMLEmpty(t *testing.T) {
	t.Parallel()
	out := render(t, newPersonGrid(t).Render(nil, datagrid.Selection{}), datagrid.YAML)
	assert.Contains(t, out, "empty: true")
	assert.Contains(t, out, "emptyMessage: No data available")
}
