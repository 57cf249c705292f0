package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// CountPages validates a PDF and returns its page count.
func CountPages(rs io.ReadSeeker) (int, error) {
	n, err := api.PageCount(rs, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return n, nil
}

// ExtractText reads the text of every page in order. Within a page, rows are
// joined according to layout; pages are separated by a newline. Pages that
// carry no text (scans) contribute an empty line.
func ExtractText(r io.ReaderAt, size int64, layout Layout) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}

	pages := make([][]string, 0, reader.NumPage())
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		lines := make([]string, 0, len(rows))
		for _, row := range rows {
			var b strings.Builder
			for _, t := range row.Content {
				b.WriteString(t.S)
			}
			lines = append(lines, b.String())
		}
		pages = append(pages, lines)
	}
	return joinPages(pages, layout), nil
}

// joinPages assembles page rows into the text handed to the extractors.
func joinPages(pages [][]string, layout Layout) string {
	sep := " "
	if layout == LayoutRows {
		sep = "\n"
	}
	out := make([]string, len(pages))
	for i, rows := range pages {
		kept := make([]string, 0, len(rows))
		for _, row := range rows {
			if row = strings.Join(strings.Fields(row), " "); row != "" {
				kept = append(kept, row)
			}
		}
		out[i] = strings.Join(kept, sep)
	}
	return strings.Join(out, "\n")
}
