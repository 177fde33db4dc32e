package datagrid

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML[R any](w io.Writer, v *View[R]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newDocument(v)); err != nil {
		return err
	}
	return enc.Close()
}
