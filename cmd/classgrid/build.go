package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/pipeline"
	"github.com/jackzampolin/classgrid/internal/render"
)

var (
	buildInputs inputFlags
	buildFormat string
	buildOut    string
	buildNoName bool
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a personal timetable",
	Long: `Build reads the faculty timetable and the registration document, keeps
the registered courses, and writes them grouped by day.

Text formats go to stdout unless --out is given. PDF and XLSX are written
to --out, or to the exports directory in the classgrid home.

Examples:
  classgrid build -t timetable.pdf -r registration.pdf
  classgrid build -t tt-1.pdf -t tt-2.pdf -r reg.pdf --format pdf
  classgrid build -t tt.pdf -r reg.pdf --format html --out timetable.html`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, h, err := loadConfig()
		if err != nil {
			return err
		}
		cfg := mgr.Get()
		logger := newLogger(cfg)

		formatName := buildFormat
		if formatName == "" {
			formatName = cfg.Output.Format
		}
		format, err := render.ParseFormat(formatName)
		if err != nil {
			return err
		}

		req, err := buildInputs.request(cfg, logger)
		if err != nil {
			return err
		}
		res, err := pipeline.Run(cmd.Context(), req)
		if err != nil {
			if errors.Is(err, pipeline.ErrInputMissing) {
				return fmt.Errorf("%w (pass both --timetable and --registration)", err)
			}
			return err
		}
		if res.Outcome == pipeline.OutcomeNoMatches {
			fmt.Fprintln(os.Stderr, "No matching courses found.")
			return nil
		}

		doc := render.NewDocument(res.Title, res.Schedule)
		opts := cfg.RenderOptions()
		if buildNoName {
			opts.ShowName = false
		}

		out := buildOut
		if out == "" && format.Binary() {
			if err := h.EnsureExists(); err != nil {
				return err
			}
			out = h.ExportPath(render.FileName(doc.Title, format))
		}
		if out == "" {
			return render.Write(os.Stdout, format, doc, opts)
		}
		if err := writeFile(out, func(w io.Writer) error {
			return render.Write(w, format, doc, opts)
		}); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s (%d courses)\n", out, doc.Len())
		return nil
	},
}

// writeFile writes through a temp file in the same directory and renames
// it into place, so a failed render never leaves a truncated file.
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".classgrid-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func init() {
	buildInputs.register(buildCmd)
	buildCmd.Flags().StringVarP(&buildFormat, "format", "f", "",
		"output format: table, html, pdf, xlsx, json, yaml (default from config)")
	buildCmd.Flags().StringVar(&buildOut, "out", "", "write to this file")
	buildCmd.Flags().BoolVar(&buildNoName, "no-name", false, "omit the course name column")

	rootCmd.AddCommand(buildCmd)
}
