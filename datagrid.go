package datagrid

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedBorder = errors.New("unsupported border")
	ErrInvalidColumn     = errors.New("invalid column")
	ErrDuplicateColumn   = errors.New("duplicate column id")
	ErrNoKeyFunc         = errors.New("missing key function")
	ErrDuplicateKey      = errors.New("duplicate record key")
	ErrInvalidTemplate   = errors.New("invalid template")
)

// DefaultEmptyMessage is shown when a grid renders zero records and no
// message was configured.
const DefaultEmptyMessage = "No data available"

// Format represents an output format for a rendered [View].
type Format string

const (
	Table    Format = "table"
	Markdown Format = "markdown"
	HTML     Format = "html"
	CSV      Format = "csv"
	TSV      Format = "tsv"
	JSON     Format = "json"
	JSONL    Format = "jsonl"
	YAML     Format = "yaml"
)

var formats = []Format{Table, Markdown, HTML, CSV, TSV, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported format names.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// ParseFormat parses a format string.
func ParseFormat(s string) (Format, error) {
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// BorderStyle controls table border characters.
type BorderStyle int

const (
	BorderRounded BorderStyle = iota // ╭─╮╰╯│┬┴├┤┼
	BorderNone                       // No borders, space-separated columns
	BorderASCII                      // +-+|
	BorderHeavy                      // ┏━┓┗┛┃┳┻┣┫╋
	BorderDouble                     // ╔═╗╚╝║╦╩╠╣╬
)

var borderNames = map[string]BorderStyle{
	"rounded": BorderRounded,
	"none":    BorderNone,
	"ascii":   BorderASCII,
	"heavy":   BorderHeavy,
	"double":  BorderDouble,
}

// ParseBorder maps a border name (rounded, none, ascii, heavy, double) to
// a [BorderStyle]. The empty string selects [BorderRounded].
func ParseBorder(s string) (BorderStyle, error) {
	if s == "" {
		return BorderRounded, nil
	}
	b, ok := borderNames[strings.ToLower(s)]
	if !ok {
		return BorderRounded, fmt.Errorf("%w: %q", ErrUnsupportedBorder, s)
	}
	return b, nil
}

// Alignment controls column text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Write renders the view in format f and writes it to w.
func (v *View[R]) Write(w io.Writer, f Format) error {
	switch f {
	case Table:
		return writeTable(w, v)
	case Markdown:
		return writeMarkdown(w, v)
	case HTML:
		return writeHTML(w, v)
	case CSV:
		return writeCSV(w, v, ',')
	case TSV:
		return writeTSV(w, v)
	case JSON:
		return writeJSON(w, v)
	case JSONL:
		return writeJSONL(w, v)
	case YAML:
		return writeYAML(w, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders the view in format f and returns the bytes.
func (v *View[R]) Marshal(f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := v.Write(&buf, f); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
