// Package ingest turns timetable and registration documents into plain text.
package ingest

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Layout controls how text on a PDF page is joined.
type Layout string

const (
	// LayoutPage joins every row on a page with single spaces, so a page
	// becomes one line of text.
	LayoutPage Layout = "page"
	// LayoutRows keeps each visual row of a page on its own line.
	LayoutRows Layout = "rows"
)

// ParseLayout maps a config value to a Layout. Empty means LayoutPage.
func ParseLayout(s string) (Layout, error) {
	switch Layout(strings.ToLower(strings.TrimSpace(s))) {
	case "", LayoutPage:
		return LayoutPage, nil
	case LayoutRows:
		return LayoutRows, nil
	}
	return "", fmt.Errorf("unknown layout %q (want page or rows)", s)
}

// Request contains the parameters for reading one document.
type Request struct {
	// Paths are the parts of the document. Parts named like "timetable-2.pdf"
	// are read in numeric order.
	Paths  []string
	Layout Layout
	Logger *slog.Logger
}

// Document is the extracted text of one logical document.
type Document struct {
	Name  string   `json:"name" yaml:"name"`
	Parts []string `json:"parts" yaml:"parts"`
	Pages int      `json:"pages" yaml:"pages"`
	Text  string   `json:"-" yaml:"-"`
}

// Read extracts text from every part of the request and joins the parts
// with a newline. PDFs go through the PDF reader; anything else is read as
// UTF-8 text and counts as one page.
func Read(ctx context.Context, req Request) (*Document, error) {
	log := req.Logger
	if log == nil {
		log = slog.Default()
	}

	if len(req.Paths) == 0 {
		return nil, fmt.Errorf("no document paths provided: %w", os.ErrNotExist)
	}
	for _, p := range req.Paths {
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("document not found: %s: %w", p, err)
		}
	}

	sorted := sortByPartNumber(req.Paths)
	doc := &Document{Name: documentName(sorted[0]), Parts: sorted}

	texts := make([]string, 0, len(sorted))
	for _, p := range sorted {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		text, pages, err := decode(filepath.Base(p), data, req.Layout)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from %s: %w", p, err)
		}
		log.Debug("extracted document part", "file", filepath.Base(p), "pages", pages, "chars", len(text))
		texts = append(texts, text)
		doc.Pages += pages
	}
	doc.Text = strings.Join(texts, "\n")

	log.Info("document read", "name", doc.Name, "parts", len(sorted), "pages", doc.Pages)
	return doc, nil
}

// ReadBytes extracts text from in-memory content, e.g. an upload. The name
// decides whether the content is treated as a PDF.
func ReadBytes(ctx context.Context, name string, data []byte, layout Layout) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%s is empty: %w", name, os.ErrNotExist)
	}
	text, pages, err := decode(name, data, layout)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text from %s: %w", name, err)
	}
	return &Document{Name: documentName(name), Parts: []string{name}, Pages: pages, Text: text}, nil
}

func decode(name string, data []byte, layout Layout) (string, int, error) {
	if !IsPDF(name, data) {
		return string(data), 1, nil
	}
	pages, err := CountPages(bytes.NewReader(data))
	if err != nil {
		return "", 0, err
	}
	text, err := ExtractText(bytes.NewReader(data), int64(len(data)), layout)
	if err != nil {
		return "", 0, err
	}
	return text, pages, nil
}

// IsPDF reports whether a file is a PDF, by extension or by its header.
func IsPDF(name string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(name), ".pdf") {
		return true
	}
	return bytes.HasPrefix(data, []byte("%PDF-"))
}

var partSuffix = regexp.MustCompile(`-(\d+)\.[A-Za-z]+$`)

// sortByPartNumber sorts paths by their numeric part suffix.
// e.g., ["tt-2.pdf", "tt-1.pdf", "tt-10.pdf"] -> ["tt-1.pdf", "tt-2.pdf", "tt-10.pdf"]
func sortByPartNumber(paths []string) []string {
	sorted := make([]string, len(paths))
	copy(sorted, paths)

	sort.SliceStable(sorted, func(i, j int) bool {
		mi := partSuffix.FindStringSubmatch(sorted[i])
		mj := partSuffix.FindStringSubmatch(sorted[j])

		if len(mi) > 1 && len(mj) > 1 {
			ni, _ := strconv.Atoi(mi[1])
			nj, _ := strconv.Atoi(mj[1])
			return ni < nj
		}

		// Unnumbered parts come first
		if len(mi) > 1 {
			return false
		}
		if len(mj) > 1 {
			return true
		}
		return sorted[i] < sorted[j]
	})

	return sorted
}

var trailingPart = regexp.MustCompile(`-\d+$`)

// documentName derives a display name from a file name.
// e.g., "timetable-1.pdf" -> "timetable"
func documentName(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	return trailingPart.ReplaceAllString(name, "")
}
