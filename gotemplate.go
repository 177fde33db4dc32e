package datagrid

import (
	"fmt"
	"strings"
	"text/template"
)

// TemplateColumn returns a column whose cells are rendered by executing the
// Go text/template tmpl against each record, for example
// "{{.First}} {{.Last}}". A template that fails at execution time renders
// the cell as the empty string; parse errors are reported here.
func TemplateColumn[R any](id, header, tmpl string) (Column[R], error) {
	t, err := template.New(id).Option("missingkey=zero").Parse(tmpl)
	if err != nil {
		return Column[R]{}, fmt.Errorf("%w: %s", ErrInvalidTemplate, err)
	}
	return Column[R]{
		ID:     id,
		Header: header,
		Render: func(record R) string {
			var sb strings.Builder
			if err := t.Execute(&sb, record); err != nil {
				return ""
			}
			return sb.String()
		},
	}, nil
}
