package endpoints

import (
	"bytes"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/api"
	"github.com/jackzampolin/classgrid/internal/render"
	"github.com/jackzampolin/classgrid/internal/svcctx"
)

// ExportScheduleEndpoint handles GET /api/schedule/export.
type ExportScheduleEndpoint struct{ scheduleGroup }

func (e *ExportScheduleEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/schedule/export", e.handler
}

func (e *ExportScheduleEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Export the current schedule
//	@Description	Renders the schedule as a table, HTML, PDF, XLSX, JSON or YAML download
//	@Tags			schedule
//	@Produce		octet-stream
//	@Param			format	query		string	false	"Output format (defaults to output.format)"
//	@Param			title	query		string	false	"Override the title"
//	@Success		200		{file}		file
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/schedule/export [get]
func (e *ExportScheduleEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	cfg := svcctx.ConfigFrom(r.Context())

	formatName := r.URL.Query().Get("format")
	if formatName == "" {
		formatName = cfg.Output.Format
	}
	format, err := render.ParseFormat(formatName)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, ok := svcctx.ResultsFrom(r.Context()).Current()
	if !ok {
		writeError(w, http.StatusNotFound, errNoSchedule)
		return
	}

	title := r.URL.Query().Get("title")
	if title == "" {
		title = res.Title
	}
	doc := render.NewDocument(title, res.Schedule)

	// Render fully before writing headers so a failure can still be a 500.
	var buf bytes.Buffer
	if err := render.Write(&buf, format, doc, cfg.RenderOptions()); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("render failed: %v", err))
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	if format.Binary() || r.URL.Query().Get("download") == "true" {
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=%q", render.FileName(doc.Title, format)))
	}
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func (e *ExportScheduleEndpoint) Command(getServerURL func() string) *cobra.Command {
	var format, title, outFile string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the current schedule in an output format",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if format != "" {
				q.Set("format", format)
			}
			if title != "" {
				q.Set("title", title)
			}
			path := "/api/schedule/export"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}

			client := api.NewClient(getServerURL())
			if outFile == "" {
				_, err := client.Download(cmd.Context(), path, os.Stdout)
				return err
			}

			f, err := os.Create(outFile)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outFile, err)
			}
			if _, err := client.Download(cmd.Context(), path, f); err != nil {
				f.Close()
				os.Remove(outFile)
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", outFile)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "Output format (table, html, pdf, xlsx, json, yaml)")
	cmd.Flags().StringVar(&title, "title", "", "Override the title")
	cmd.Flags().StringVarP(&outFile, "file", "f", "", "Write to a file instead of stdout")
	return cmd
}
