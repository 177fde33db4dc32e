package datagrid

import (
	"fmt"
	"html"
	"io"
	"strconv"
	"strings"
)

func writeHTML[R any](w io.Writer, v *View[R]) error {
	numCols := len(v.Headers)
	if v.Selectable {
		numCols++
	}

	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if v.Title != "" {
		if _, err := fmt.Fprintf(w, "  <caption>%s</caption>\n", html.EscapeString(v.Title)); err != nil {
			return err
		}
	}

	if len(v.Headers) > 0 {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		if v.Selectable {
			if _, err := fmt.Fprintf(w, "      <th><input type=\"checkbox\"%s></th>\n", headerCheckboxAttrs(v.AllSelected, v.SomeSelected)); err != nil {
				return err
			}
		}
		for _, h := range v.Headers {
			style := cellStyle(h.Align, h.WidthHint)
			if _, err := fmt.Fprintf(w, "      <th data-column=\"%s\"%s>%s</th>\n", html.EscapeString(h.ID), style, html.EscapeString(h.Text)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	if v.Empty {
		if _, err := fmt.Fprintf(w, "    <tr class=\"empty\"><td colspan=\"%d\">%s</td></tr>\n", max(numCols, 1), html.EscapeString(v.EmptyMessage)); err != nil {
			return err
		}
	}
	for _, row := range v.Rows {
		if _, err := fmt.Fprintf(w, "    <tr data-key=\"%s\"%s>\n", html.EscapeString(row.Key), rowAttrs(v, row.Selected)); err != nil {
			return err
		}
		if v.Selectable {
			checked := ""
			if row.Selected {
				checked = " checked"
			}
			if _, err := fmt.Fprintf(w, "      <td><input type=\"checkbox\"%s></td>\n", checked); err != nil {
				return err
			}
		}
		for i, cell := range row.Cells {
			attrs := cellStyle(v.Headers[i].Align, "")
			if cell.NonNavigating {
				attrs += ` data-non-navigating="true"`
			}
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", attrs, html.EscapeString(cell.Text)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	if len(v.Footer) > 0 && !v.Empty {
		if _, err := fmt.Fprintln(w, "  <tfoot>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		if v.Selectable {
			if _, err := fmt.Fprintln(w, "      <td></td>"); err != nil {
				return err
			}
		}
		for i, cell := range v.Footer {
			style := cellStyle(v.Headers[i].Align, "")
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", style, html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </tfoot>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "</table>"); err != nil {
		return err
	}
	if v.Caption != "" {
		if _, err := fmt.Fprintf(w, "<p>%s</p>\n", html.EscapeString(v.Caption)); err != nil {
			return err
		}
	}
	return nil
}

func headerCheckboxAttrs(all, some bool) string {
	switch {
	case all:
		return " checked"
	case some:
		return ` data-indeterminate="true"`
	default:
		return ""
	}
}

func rowAttrs[R any](v *View[R], selected bool) string {
	var sb strings.Builder
	if v.Clickable {
		sb.WriteString(` class="clickable"`)
	}
	if v.Selectable {
		sb.WriteString(` aria-selected="`)
		sb.WriteString(strconv.FormatBool(selected))
		sb.WriteString(`"`)
	}
	return sb.String()
}

// cellStyle builds the style attribute for alignment and width. A bare
// number hint is taken as a width in characters.
func cellStyle(align Alignment, widthHint string) string {
	var decls []string
	switch align {
	case AlignRight:
		decls = append(decls, "text-align: right")
	case AlignCenter:
		decls = append(decls, "text-align: center")
	}
	if hint := strings.TrimSpace(widthHint); hint != "" {
		if _, err := strconv.Atoi(hint); err == nil {
			hint += "ch"
		}
		decls = append(decls, "width: "+hint)
	}
	if len(decls) == 0 {
		return ""
	}
	return ` style="` + html.EscapeString(strings.Join(decls, "; ")) + `"`
}
