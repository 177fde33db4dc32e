package datagrid

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// writeCSV writes the header and one record per row. An empty view writes
// only the header; the empty-state message is presentation, not data.
func writeCSV[R any](w io.Writer, v *View[R], comma rune) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(headerTexts(v)); err != nil {
		return err
	}
	for _, row := range v.Rows {
		if err := cw.Write(cellTexts(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeTSV joins fields with tabs without CSV quoting. Tabs and line
// breaks inside a field become spaces.
func writeTSV[R any](w io.Writer, v *View[R]) error {
	if err := writeTSVLine(w, headerTexts(v)); err != nil {
		return err
	}
	for _, row := range v.Rows {
		if err := writeTSVLine(w, cellTexts(row)); err != nil {
			return err
		}
	}
	return nil
}

var tsvEscaper = strings.NewReplacer("\t", " ", "\r\n", " ", "\n", " ", "\r", " ")

func writeTSVLine(w io.Writer, fields []string) error {
	for i, f := range fields {
		fields[i] = tsvEscaper.Replace(f)
	}
	_, err := fmt.Fprintln(w, strings.Join(fields, "\t"))
	return err
}

func headerTexts[R any](v *View[R]) []string {
	out := make([]string, len(v.Headers))
	for i, h := range v.Headers {
		out[i] = h.Text
	}
	return out
}

func cellTexts[R any](row Row[R]) []string {
	out := make([]string, len(row.Cells))
	for i, c := range row.Cells {
		out[i] = c.Text
	}
	return out
}
