package endpoints

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/api"
	"github.com/jackzampolin/classgrid/internal/svcctx"
)

const errNoSchedule = "no schedule has been built"

// GetScheduleEndpoint handles GET /api/schedule.
type GetScheduleEndpoint struct{ scheduleGroup }

func (e *GetScheduleEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/schedule", e.handler
}

func (e *GetScheduleEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Get the current schedule
//	@Tags			schedule
//	@Produce		json
//	@Success		200	{object}	ScheduleResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/schedule [get]
func (e *GetScheduleEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	res, ok := svcctx.ResultsFrom(r.Context()).Current()
	if !ok {
		writeError(w, http.StatusNotFound, errNoSchedule)
		return
	}
	writeJSON(w, http.StatusOK, scheduleResponse(res))
}

func (e *GetScheduleEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Show the current schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp ScheduleResponse
			if err := client.Get(cmd.Context(), "/api/schedule", &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
