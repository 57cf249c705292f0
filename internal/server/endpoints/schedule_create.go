package endpoints

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/api"
	"github.com/jackzampolin/classgrid/internal/ingest"
	"github.com/jackzampolin/classgrid/internal/pipeline"
	"github.com/jackzampolin/classgrid/internal/svcctx"
)

// Form fields accepted by CreateScheduleEndpoint.
const (
	FieldTimetable    = "timetable"
	FieldRegistration = "registration"
	FieldTitle        = "title"
	FieldLayout       = "layout"

	// textSuffix marks a form field carrying already-extracted text,
	// e.g. "timetable_text".
	textSuffix = "_text"
)

// CreateScheduleEndpoint handles POST /api/schedule.
type CreateScheduleEndpoint struct{ scheduleGroup }

var _ api.Endpoint = (*CreateScheduleEndpoint)(nil)

func (e *CreateScheduleEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/api/schedule", e.handler
}

func (e *CreateScheduleEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Build a timetable
//	@Description	Upload a faculty timetable and a registration document. The result replaces any previous schedule.
//	@Tags			schedule
//	@Accept			mpfd
//	@Produce		json
//	@Param			timetable		formData	file	false	"Faculty timetable (PDF or text)"
//	@Param			registration	formData	file	false	"Course registration (PDF or text)"
//	@Param			timetable_text		formData	string	false	"Timetable text, instead of a file"
//	@Param			registration_text	formData	string	false	"Registration text, instead of a file"
//	@Param			title			formData	string	false	"Title for exports"
//	@Param			layout			formData	string	false	"PDF text layout: page or rows"
//	@Success		201	{object}	ScheduleResponse
//	@Success		200	{object}	ScheduleResponse	"no courses matched"
//	@Failure		400	{object}	ErrorResponse
//	@Failure		422	{object}	ErrorResponse
//	@Router			/api/schedule [post]
func (e *CreateScheduleEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	store := svcctx.ResultsFrom(r.Context())
	// A failed build leaves no schedule behind, same as a run with no matches.
	fail := func(status int, msg string) {
		store.Clear()
		writeError(w, status, msg)
	}

	const maxMemory = 32 << 20
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		fail(http.StatusBadRequest, fmt.Sprintf("failed to parse form: %v", err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	cfg := svcctx.ConfigFrom(r.Context())
	logger := svcctx.LoggerFrom(r.Context())

	layoutValue := r.FormValue(FieldLayout)
	if layoutValue == "" {
		layoutValue = cfg.Extract.Layout
	}
	layout, err := ingest.ParseLayout(layoutValue)
	if err != nil {
		fail(http.StatusBadRequest, err.Error())
		return
	}

	timetable, err := formSource(r, FieldTimetable, layout)
	if err != nil {
		fail(http.StatusBadRequest, err.Error())
		return
	}
	registration, err := formSource(r, FieldRegistration, layout)
	if err != nil {
		fail(http.StatusBadRequest, err.Error())
		return
	}

	title := r.FormValue(FieldTitle)
	if title == "" {
		title = cfg.Title()
	}

	res, err := pipeline.Run(r.Context(), pipeline.Request{
		Timetable:    timetable,
		Registration: registration,
		Title:        title,
		Logger:       logger,
	})
	if err != nil {
		if errors.Is(err, pipeline.ErrInputMissing) {
			fail(http.StatusBadRequest, err.Error())
			return
		}
		fail(http.StatusUnprocessableEntity, err.Error())
		return
	}

	store.Replace(res)

	status := http.StatusCreated
	if res.Outcome != pipeline.OutcomeScheduled {
		status = http.StatusOK
	}
	writeJSON(w, status, scheduleResponse(res))
}

// formSource picks the uploaded file for field, or the field's text
// variant. A nil Source with no error means neither was sent.
func formSource(r *http.Request, field string, layout ingest.Layout) (pipeline.Source, error) {
	if files := r.MultipartForm.File[field]; len(files) > 0 {
		fh := files[0]
		f, err := fh.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s upload: %w", field, err)
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s upload: %w", field, err)
		}
		return pipeline.BytesSource{Filename: fh.Filename, Data: data, Layout: layout}, nil
	}
	if text := r.FormValue(field + textSuffix); text != "" {
		return pipeline.TextSource{Label: field, Text: text}, nil
	}
	return nil, nil
}

func (e *CreateScheduleEndpoint) Command(getServerURL func() string) *cobra.Command {
	var timetable, registration, title, layout string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Upload a timetable and a registration document to the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			fields := map[string]string{}
			if title != "" {
				fields[FieldTitle] = title
			}
			if layout != "" {
				fields[FieldLayout] = layout
			}
			var resp ScheduleResponse
			err := client.Upload(cmd.Context(), "/api/schedule", map[string][]string{
				FieldTimetable:    {timetable},
				FieldRegistration: {registration},
			}, fields, &resp)
			if err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
	cmd.Flags().StringVarP(&timetable, "timetable", "t", "", "Faculty timetable file")
	cmd.Flags().StringVarP(&registration, "registration", "r", "", "Course registration file")
	cmd.Flags().StringVar(&title, "title", "", "Title for exports")
	cmd.Flags().StringVar(&layout, "layout", "", "PDF text layout (page or rows)")
	cmd.MarkFlagRequired("timetable")
	cmd.MarkFlagRequired("registration")
	return cmd
}
