package pages

import (
	"fmt"

	"github.com/dustin/go-humanize/english"
)

var registry = []Page{invoices, contacts, bookings, shipments}

// All returns every page in menu order.
func All() []Page {
	out := make([]Page, len(registry))
	copy(out, registry)
	return out
}

// Names returns the page names in menu order.
func Names() []string {
	names := make([]string, len(registry))
	for i, p := range registry {
		names[i] = p.Name()
	}
	return names
}

// Lookup returns the page called name.
func Lookup(name string) (Page, error) {
	for _, p := range registry {
		if p.Name() == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (known pages: %v)", ErrUnknownPage, name, Names())
}

// countFooter renders "N nouns" under the first column.
func countFooter[R any](noun string) func([]R) string {
	return func(rows []R) string {
		return english.Plural(len(rows), noun, "")
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
