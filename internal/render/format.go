package render

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jackzampolin/classgrid/internal/api"
)

// Format names an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatHTML  Format = "html"
	FormatPDF   Format = "pdf"
	FormatXLSX  Format = "xlsx"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatHTML, FormatPDF, FormatXLSX, FormatJSON, FormatYAML}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q", s)
}

// Binary reports whether the format should not be written to a terminal.
func (f Format) Binary() bool {
	return f == FormatPDF || f == FormatXLSX
}

// Extension is the file extension for the format, without the dot.
func (f Format) Extension() string {
	if f == FormatTable {
		return "txt"
	}
	return string(f)
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatPDF:
		return "application/pdf"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	}
	return "text/plain; charset=utf-8"
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName derives a download name from a title, e.g. "My Timetable" and
// FormatPDF give "My_Timetable.pdf".
func FileName(title string, f Format) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(strings.TrimSpace(title), "_"), "_.")
	if name == "" {
		name = "MyTimetable"
	}
	return name + "." + f.Extension()
}

// Options tune the adapters.
type Options struct {
	// ShowName adds the course name column (and the name in PDF rows).
	ShowName bool
	Page     PageSpec
}

// DefaultOptions shows names on the default page.
func DefaultOptions() Options {
	return Options{ShowName: true, Page: DefaultPageSpec()}
}

// Write validates doc and renders it to w in format f.
func Write(w io.Writer, f Format, doc *Document, opts Options) error {
	if err := doc.Validate(); err != nil {
		return err
	}
	switch f {
	case FormatTable:
		_, err := io.WriteString(w, Table(doc, opts))
		return err
	case FormatHTML:
		return HTML(w, doc, opts)
	case FormatPDF:
		return PDF(w, doc, opts)
	case FormatXLSX:
		return XLSX(w, doc, opts)
	case FormatJSON:
		return api.OutputTo(w, api.OutputFormatJSON, doc)
	case FormatYAML:
		return api.OutputTo(w, api.OutputFormatYAML, doc)
	}
	return fmt.Errorf("unknown format %q", f)
}
