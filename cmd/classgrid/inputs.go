package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/config"
	"github.com/jackzampolin/classgrid/internal/ingest"
	"github.com/jackzampolin/classgrid/internal/pipeline"
)

// inputFlags are the document flags shared by build and view.
type inputFlags struct {
	timetable    []string
	registration []string
	layout       string
	title        string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.timetable, "timetable", "t", nil,
		"faculty timetable file; repeat for multi-part documents (tt-1.pdf, tt-2.pdf)")
	cmd.Flags().StringSliceVarP(&f.registration, "registration", "r", nil,
		"course registration file")
	cmd.Flags().StringVar(&f.layout, "layout", "", "PDF text layout: page or rows (default from config)")
	cmd.Flags().StringVar(&f.title, "title", "", "title for the timetable (default from config)")
}

// request builds a pipeline request. A document with no files is left nil
// so the run reports it as missing.
func (f *inputFlags) request(cfg *config.Config, logger *slog.Logger) (pipeline.Request, error) {
	layoutValue := f.layout
	if layoutValue == "" {
		layoutValue = cfg.Extract.Layout
	}
	layout, err := ingest.ParseLayout(layoutValue)
	if err != nil {
		return pipeline.Request{}, err
	}

	title := f.title
	if title == "" {
		title = cfg.Title()
	}

	req := pipeline.Request{Title: title, Logger: logger}
	if len(f.timetable) > 0 {
		req.Timetable = pipeline.Files(layout, f.timetable...)
	}
	if len(f.registration) > 0 {
		req.Registration = pipeline.Files(layout, f.registration...)
	}
	return req, nil
}
