package datagrid

import (
	"encoding/json"
	"io"
)

// document is the serialized form of a view used by JSON and YAML.
type document struct {
	Title        string           `json:"title,omitempty" yaml:"title,omitempty"`
	Columns      []documentColumn `json:"columns" yaml:"columns"`
	Rows         []documentRow    `json:"rows" yaml:"rows"`
	Footer       []string         `json:"footer,omitempty" yaml:"footer,omitempty"`
	Empty        bool             `json:"empty" yaml:"empty"`
	EmptyMessage string           `json:"emptyMessage,omitempty" yaml:"emptyMessage,omitempty"`
}

type documentColumn struct {
	ID     string `json:"id" yaml:"id"`
	Header string `json:"header" yaml:"header"`
}

type documentRow struct {
	Key      string            `json:"key" yaml:"key"`
	Selected bool              `json:"selected,omitempty" yaml:"selected,omitempty"`
	Cells    map[string]string `json:"cells" yaml:"cells"`
}

func newDocument[R any](v *View[R]) document {
	doc := document{
		Title:   v.Title,
		Columns: make([]documentColumn, len(v.Headers)),
		Rows:    make([]documentRow, len(v.Rows)),
		Footer:  v.Footer,
		Empty:   v.Empty,
	}
	if v.Empty {
		doc.EmptyMessage = v.EmptyMessage
	}
	for i, h := range v.Headers {
		doc.Columns[i] = documentColumn{ID: h.ID, Header: h.Text}
	}
	for i, r := range v.Rows {
		doc.Rows[i] = newDocumentRow(r)
	}
	return doc
}

func newDocumentRow[R any](r Row[R]) documentRow {
	cells := make(map[string]string, len(r.Cells))
	for _, c := range r.Cells {
		cells[c.ColumnID] = c.Text
	}
	return documentRow{Key: r.Key, Selected: r.Selected, Cells: cells}
}

func writeJSON[R any](w io.Writer, v *View[R]) error {
	return json.NewEncoder(w).Encode(newDocument(v))
}

// writeJSONL writes one JSON object per row. An empty view writes nothing.
func writeJSONL[R any](w io.Writer, v *View[R]) error {
	enc := json.NewEncoder(w)
	for _, r := range v.Rows {
		if err := enc.Encode(newDocumentRow(r)); err != nil {
			return err
		}
	}
	return nil
}
