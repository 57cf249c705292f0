package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/classgrid/internal/config"
	"github.com/jackzampolin/classgrid/internal/pipeline"
)

func TestInputFlags_Request(t *testing.T) {
	cfg := config.DefaultConfig()

	t.Run("defaults from config", func(t *testing.T) {
		f := inputFlags{timetable: []string{"tt.pdf"}}
		req, err := f.request(cfg, nil)
		if err != nil {
			t.Fatalf("request() error = %v", err)
		}
		if req.Title != "My Timetable" {
			t.Errorf("Title = %q", req.Title)
		}
		src, ok := req.Timetable.(pipeline.FileSource)
		if !ok || src.Layout != "page" {
			t.Errorf("Timetable = %#v", req.Timetable)
		}
		if req.Registration != nil {
			t.Error("Registration should stay nil without files")
		}
	})

	t.Run("flags override", func(t *testing.T) {
		f := inputFlags{
			timetable:    []string{"tt-1.pdf", "tt-2.pdf"},
			registration: []string{"reg.pdf"},
			layout:       "rows",
			title:        "Fall",
		}
		req, err := f.request(cfg, nil)
		if err != nil {
			t.Fatalf("request() error = %v", err)
		}
		if req.Title != "Fall" {
			t.Errorf("Title = %q", req.Title)
		}
		if src := req.Timetable.(pipeline.FileSource); len(src.Paths) != 2 || src.Layout != "rows" {
			t.Errorf("Timetable = %#v", src)
		}
	})

	t.Run("bad layout", func(t *testing.T) {
		f := inputFlags{layout: "columns"}
		if _, err := f.request(cfg, nil); err == nil {
			t.Error("expected error for unknown layout")
		}
	})
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.html")

	if err := writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "<table></table>")
		return err
	}); err != nil {
		t.Fatalf("writeFile() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "<table></table>" {
		t.Errorf("content = %q", data)
	}

	boom := errors.New("render failed")
	if err := writeFile(path, func(w io.Writer) error { return boom }); !errors.Is(err, boom) {
		t.Errorf("error = %v, want render failure", err)
	}
	data, _ = os.ReadFile(path)
	if string(data) != "<table></table>" {
		t.Error("failed write must leave the previous file intact")
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %d entries", len(entries))
	}
}
