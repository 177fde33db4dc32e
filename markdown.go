package datagrid

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

func writeMarkdown[R any](w io.Writer, v *View[R]) error {
	header := make([]string, len(v.Headers))
	aligns := make([]Alignment, len(v.Headers))
	for i, h := range v.Headers {
		header[i] = escapeMarkdown(h.Text)
		aligns[i] = h.Align
	}
	if len(header) == 0 {
		// A GFM table needs at least one column.
		header = []string{""}
		aligns = []Alignment{AlignLeft}
	}
	numCols := len(header)

	var rows [][]string
	if v.Empty {
		row := make([]string, numCols)
		row[0] = escapeMarkdown(v.EmptyMessage)
		rows = [][]string{row}
	} else {
		rows = make([][]string, len(v.Rows))
		for i, r := range v.Rows {
			cells := make([]string, numCols)
			for j, c := range r.Cells {
				cells[j] = escapeMarkdown(c.Text)
			}
			rows[i] = cells
		}
		if len(v.Footer) > 0 {
			footer := make([]string, numCols)
			for i, f := range v.Footer {
				footer[i] = escapeMarkdown(f)
			}
			rows = append(rows, footer)
		}
	}

	// Calculate column widths (minimum 3 for alignment markers).
	widths := make([]int, numCols)
	for i, col := range header {
		if w := runewidth.StringWidth(col); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if v.Title != "" {
		if _, err := fmt.Fprintf(w, "**%s**\n\n", escapeMarkdown(v.Title)); err != nil {
			return err
		}
	}

	if err := writeMarkdownRow(w, header, widths, aligns); err != nil {
		return err
	}

	sep := make([]string, numCols)
	for i, width := range widths {
		switch aligns[i] {
		case AlignRight:
			sep[i] = strings.Repeat("-", width-1) + ":"
		case AlignCenter:
			sep[i] = ":" + strings.Repeat("-", width-2) + ":"
		default:
			sep[i] = strings.Repeat("-", width)
		}
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths, aligns); err != nil {
			return err
		}
	}

	if v.Caption != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", escapeMarkdown(v.Caption)); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int, aligns []Alignment) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = alignCell(cell, width, aligns[i])
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

var markdownEscaper = strings.NewReplacer("|", `\|`, "\n", " ")

func escapeMarkdown(s string) string { return markdownEscaper.Replace(s) }
