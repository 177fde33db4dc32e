package datagrid

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

type borderChars struct {
	topLeft, topRight, bottomLeft, bottomRight string
	horizontal, vertical                       string
	topTee, bottomTee, leftTee, rightTee       string
	cross                                      string
}

var borderSets = map[BorderStyle]borderChars{
	BorderRounded: {
		topLeft: "╭", topRight: "╮", bottomLeft: "╰", bottomRight: "╯",
		horizontal: "─", vertical: "│",
		topTee: "┬", bottomTee: "┴", leftTee: "├", rightTee: "┤",
		cross: "┼",
	},
	BorderASCII: {
		topLeft: "+", topRight: "+", bottomLeft: "+", bottomRight: "+",
		horizontal: "-", vertical: "|",
		topTee: "+", bottomTee: "+", leftTee: "+", rightTee: "+",
		cross: "+",
	},
	BorderHeavy: {
		topLeft: "┏", topRight: "┓", bottomLeft: "┗", bottomRight: "┛",
		horizontal: "━", vertical: "┃",
		topTee: "┳", bottomTee: "┻", leftTee: "┣", rightTee: "┫",
		cross: "╋",
	},
	BorderDouble: {
		topLeft: "╔", topRight: "╗", bottomLeft: "╚", bottomRight: "╝",
		horizontal: "═", vertical: "║",
		topTee: "╦", bottomTee: "╩", leftTee: "╠", rightTee: "╣",
		cross: "╬",
	},
}

const (
	checkboxOn      = "[x]"
	checkboxOff     = "[ ]"
	checkboxPartial = "[-]"
)

// tableLayout is the string grid a view is drawn from. Every slice indexed
// by column has one entry per column, checkbox column included.
type tableLayout struct {
	header     []string
	rows       [][]string
	selected   []bool
	footer     []string
	widths     []int
	aligns     []Alignment
	styles     []func(string) string
	wrapWidths []int
	rowStyle   func(string) string
}

func newTableLayout[R any](v *View[R]) tableLayout {
	g := v.grid
	numCols := len(v.Headers)
	l := tableLayout{
		header:     make([]string, numCols),
		rows:       make([][]string, len(v.Rows)),
		selected:   make([]bool, len(v.Rows)),
		aligns:     make([]Alignment, numCols),
		styles:     make([]func(string) string, numCols),
		wrapWidths: make([]int, numCols),
		footer:     v.Footer,
	}
	maxWidths := make([]int, numCols)
	for i, h := range v.Headers {
		l.header[i] = h.Text
		l.aligns[i] = h.Align
		if n, ok := parseWidthHint(h.WidthHint); ok {
			maxWidths[i] = n
			if g.columns[i].Wrap {
				l.wrapWidths[i] = n
			}
		}
		l.styles[i] = g.columns[i].Style
	}
	for i, row := range v.Rows {
		cells := make([]string, numCols)
		for j, c := range row.Cells {
			cells[j] = c.Text
		}
		l.rows[i] = cells
		l.selected[i] = row.Selected
	}
	if g.selectedStyle != nil {
		style := *g.selectedStyle
		l.rowStyle = func(s string) string { return style.Render(s) }
	}

	// The checkbox column is prepended like any other column.
	if v.Selectable {
		box := checkboxOff
		switch {
		case v.AllSelected:
			box = checkboxOn
		case v.SomeSelected:
			box = checkboxPartial
		}
		l.header = append([]string{box}, l.header...)
		for i, row := range l.rows {
			mark := checkboxOff
			if l.selected[i] {
				mark = checkboxOn
			}
			l.rows[i] = append([]string{mark}, row...)
		}
		if len(l.footer) > 0 {
			l.footer = append([]string{""}, l.footer...)
		}
		l.aligns = append([]Alignment{AlignCenter}, l.aligns...)
		l.styles = append([]func(string) string{nil}, l.styles...)
		l.wrapWidths = append([]int{0}, l.wrapWidths...)
		maxWidths = append([]int{0}, maxWidths...)
	}

	l.widths = computeWidths(len(l.header), l.header, l.rows, l.footer)
	for i, limit := range maxWidths {
		if limit <= 0 {
			continue
		}
		// A cap never splits a single wide rune.
		limit = max(limit, l.widestRune(i))
		if l.widths[i] > limit {
			l.widths[i] = limit
		}
		if l.wrapWidths[i] > 0 {
			l.wrapWidths[i] = limit
		}
	}
	return l
}

// widestRune returns the display width of the widest rune in column col.
func (l tableLayout) widestRune(col int) int {
	widest := 0
	measure := func(s string) {
		for _, r := range s {
			widest = max(widest, runewidth.RuneWidth(r))
		}
	}
	measure(l.header[col])
	for _, row := range l.rows {
		measure(row[col])
	}
	if col < len(l.footer) {
		measure(l.footer[col])
	}
	return widest
}

// parseWidthHint reads "12" or "12ch" as a width in display cells.
func parseWidthHint(h string) (int, bool) {
	h = strings.TrimSuffix(strings.TrimSpace(h), "ch")
	n, err := strconv.Atoi(h)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func writeTable[R any](w io.Writer, v *View[R]) error {
	l := newTableLayout(v)
	var err error
	if v.grid.border == BorderNone {
		err = renderPlainTable(w, v, l)
	} else {
		err = renderBorderedTable(w, v, l, v.grid.border)
	}
	if err != nil {
		return err
	}
	if v.Caption != "" {
		if _, err := fmt.Fprintln(w, v.Caption); err != nil {
			return err
		}
	}
	return nil
}

func computeWidths(numCols int, header []string, rows [][]string, footer []string) []int {
	widths := make([]int, numCols)
	for i, h := range header {
		if w := runewidth.StringWidth(h); w > widths[i] {
			widths[i] = w
		}
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i, cell := range footer {
		if w := runewidth.StringWidth(cell); i < numCols && w > widths[i] {
			widths[i] = w
		}
	}
	return widths
}

// fitMessage widens the last column until msg fits in the spanning row.
// It returns the widths to draw with; a grid with no columns gets a
// single column as wide as the message.
func fitMessage(widths []int, msg string, inner func([]int) int) []int {
	need := runewidth.StringWidth(msg)
	if len(widths) == 0 {
		return []int{need}
	}
	out := make([]int, len(widths))
	copy(out, widths)
	if gap := need - inner(out); gap > 0 {
		out[len(out)-1] += gap
	}
	return out
}

// --- Cell wrapping ---

func wrapCell(s string, width int) []string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return []string{s}
	}
	var lines []string
	for len(s) > 0 {
		line := runewidth.Truncate(s, width, "")
		if line == "" {
			// Advance at least one rune when a wide rune exceeds the width.
			r := []rune(s)
			line = string(r[0])
		}
		lines = append(lines, line)
		s = s[len(line):]
	}
	return lines
}

func wrapRow(cells []string, widths []int, wrapWidths []int) [][]string {
	wrapped := make([][]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		if ww := wrapWidths[i]; ww > 0 {
			wrapped[i] = wrapCell(cell, ww)
		} else {
			wrapped[i] = []string{cell}
		}
	}
	return wrapped
}

func maxLines(wrapped [][]string) int {
	n := 1
	for _, lines := range wrapped {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// rowLines formats cells into one or more visual lines of padded,
// styled cell strings.
func (l tableLayout) rowLines(cells []string, selected bool) [][]string {
	wrapped := wrapRow(cells, l.widths, l.wrapWidths)
	out := make([][]string, maxLines(wrapped))
	for line := range out {
		parts := make([]string, len(l.widths))
		for i, width := range l.widths {
			cell := ""
			if line < len(wrapped[i]) {
				cell = wrapped[i][line]
			}
			formatted := formatTableCell(cell, width, l.aligns[i])
			if l.styles[i] != nil {
				formatted = l.styles[i](formatted)
			}
			if selected && l.rowStyle != nil {
				formatted = l.rowStyle(formatted)
			}
			parts[i] = formatted
		}
		out[line] = parts
	}
	return out
}

// --- Plain table (BorderNone) ---

func renderPlainTable[R any](w io.Writer, v *View[R], l tableLayout) error {
	if v.Title != "" {
		if _, err := fmt.Fprintln(w, v.Title); err != nil {
			return err
		}
	}
	if len(l.header) > 0 {
		if err := writePlainRow(w, l, l.header, false); err != nil {
			return err
		}
		if err := writePlainSep(w, l.widths); err != nil {
			return err
		}
	}
	if v.Empty {
		_, err := fmt.Fprintln(w, v.EmptyMessage)
		return err
	}
	for i, row := range l.rows {
		if err := writePlainRow(w, l, row, l.selected[i]); err != nil {
			return err
		}
	}
	if len(l.footer) > 0 {
		if err := writePlainSep(w, l.widths); err != nil {
			return err
		}
		if err := writePlainRow(w, l, l.footer, false); err != nil {
			return err
		}
	}
	return nil
}

func writePlainSep(w io.Writer, widths []int) error {
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	_, err := fmt.Fprintln(w, strings.Join(sep, "  "))
	return err
}

func writePlainRow(w io.Writer, l tableLayout, cells []string, selected bool) error {
	for _, parts := range l.rowLines(cells, selected) {
		text := strings.TrimRight(strings.Join(parts, "  "), " ")
		if _, err := fmt.Fprintln(w, text); err != nil {
			return err
		}
	}
	return nil
}

// --- Bordered table ---

func renderBorderedTable[R any](w io.Writer, v *View[R], l tableLayout, style BorderStyle) error {
	bc := borderSets[style]
	widths := l.widths
	if v.Empty {
		widths = fitMessage(widths, v.EmptyMessage, func(ws []int) int { return tableInnerWidth(ws) - 2 })
		l.widths = widths
	}

	if v.Title != "" {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.horizontal, bc.topRight); err != nil {
			return err
		}
		inner := tableInnerWidth(widths) - 2 // 1-space padding on each side
		padded := alignCell(v.Title, inner, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.topTee, bc.rightTee); err != nil {
			return err
		}
	} else {
		if err := drawHLine(w, widths, bc.topLeft, bc.horizontal, bc.topTee, bc.topRight); err != nil {
			return err
		}
	}

	if len(l.header) > 0 {
		if err := drawBorderedRow(w, l, l.header, bc.vertical, false); err != nil {
			return err
		}
		if v.Empty {
			// The message row spans all columns, so close the column gaps.
			if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.bottomTee, bc.rightTee); err != nil {
				return err
			}
		} else if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
	}

	if v.Empty {
		inner := tableInnerWidth(widths) - 2
		padded := alignCell(v.EmptyMessage, inner, AlignCenter)
		if _, err := fmt.Fprintf(w, "%s %s %s\n", bc.vertical, padded, bc.vertical); err != nil {
			return err
		}
		return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.horizontal, bc.bottomRight)
	}

	for i, row := range l.rows {
		if err := drawBorderedRow(w, l, row, bc.vertical, l.selected[i]); err != nil {
			return err
		}
	}

	if len(l.footer) > 0 {
		if err := drawHLine(w, widths, bc.leftTee, bc.horizontal, bc.cross, bc.rightTee); err != nil {
			return err
		}
		if err := drawBorderedRow(w, l, l.footer, bc.vertical, false); err != nil {
			return err
		}
	}

	return drawHLine(w, widths, bc.bottomLeft, bc.horizontal, bc.bottomTee, bc.bottomRight)
}

// tableInnerWidth returns the total character width between the outer vertical
// borders of a bordered table. Each cell contributes its width plus 2 (one
// space of padding on each side), and cells are separated by a single vertical
// border character.
func tableInnerWidth(widths []int) int {
	n := 0
	for _, w := range widths {
		n += w + 2
	}
	if len(widths) > 1 {
		n += len(widths) - 1
	}
	return n
}

func drawHLine(w io.Writer, widths []int, left, fill, mid, right string) error {
	var sb strings.Builder
	sb.WriteString(left)
	for i, width := range widths {
		sb.WriteString(strings.Repeat(fill, width+2))
		if i < len(widths)-1 {
			sb.WriteString(mid)
		}
	}
	sb.WriteString(right)
	_, err := fmt.Fprintln(w, sb.String())
	return err
}

func drawBorderedRow(w io.Writer, l tableLayout, cells []string, vert string, selected bool) error {
	for _, parts := range l.rowLines(cells, selected) {
		var sb strings.Builder
		sb.WriteString(vert)
		for i, part := range parts {
			sb.WriteString(" ")
			sb.WriteString(part)
			sb.WriteString(" ")
			if i < len(parts)-1 {
				sb.WriteString(vert)
			}
		}
		sb.WriteString(vert)
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

func formatTableCell(s string, width int, align Alignment) string {
	if width > 0 && runewidth.StringWidth(s) > width {
		if width <= 3 {
			s = runewidth.Truncate(s, width, "")
		} else {
			s = runewidth.Truncate(s, width, "...")
		}
	}
	return alignCell(s, width, align)
}

func alignCell(s string, width int, align Alignment) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(" ", pad) + s
	case AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
