package pipeline

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/jackzampolin/classgrid/internal/ingest"
)

// Source produces the text of one input document.
type Source interface {
	Name() string
	Read(ctx context.Context) (*ingest.Document, error)
}

// FileSource reads a document from disk. Several paths make up one
// multi-part document.
type FileSource struct {
	Paths  []string
	Layout ingest.Layout
}

// Files is shorthand for a FileSource over paths.
func Files(layout ingest.Layout, paths ...string) FileSource {
	return FileSource{Paths: paths, Layout: layout}
}

func (s FileSource) Name() string {
	names := make([]string, len(s.Paths))
	for i, p := range s.Paths {
		names[i] = filepath.Base(p)
	}
	return strings.Join(names, ",")
}

func (s FileSource) Read(ctx context.Context) (*ingest.Document, error) {
	return ingest.Read(ctx, ingest.Request{Paths: s.Paths, Layout: s.Layout})
}

// BytesSource wraps uploaded content.
type BytesSource struct {
	Filename string
	Data     []byte
	Layout   ingest.Layout
}

func (s BytesSource) Name() string { return s.Filename }

func (s BytesSource) Read(ctx context.Context) (*ingest.Document, error) {
	return ingest.ReadBytes(ctx, s.Filename, s.Data, s.Layout)
}

// TextSource is already-extracted text.
type TextSource struct {
	Label string
	Text  string
}

func (s TextSource) Name() string { return s.Label }

func (s TextSource) Read(ctx context.Context) (*ingest.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &ingest.Document{Name: s.Label, Parts: []string{s.Label}, Pages: 1, Text: s.Text}, nil
}
