package endpoints

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/api"
	"github.com/jackzampolin/classgrid/internal/svcctx"
)

// DeleteScheduleResponse reports whether a schedule was dropped.
type DeleteScheduleResponse struct {
	Cleared bool   `json:"cleared"`
	ID      string `json:"id,omitempty"`
}

// DeleteScheduleEndpoint handles DELETE /api/schedule.
type DeleteScheduleEndpoint struct{ scheduleGroup }

func (e *DeleteScheduleEndpoint) Route() (string, string, http.HandlerFunc) {
	return "DELETE", "/api/schedule", e.handler
}

func (e *DeleteScheduleEndpoint) RequiresInit() bool { return true }

// handler godoc
//
//	@Summary		Clear the current schedule
//	@Tags			schedule
//	@Produce		json
//	@Success		200	{object}	DeleteScheduleResponse
//	@Router			/api/schedule [delete]
func (e *DeleteScheduleEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	prev := svcctx.ResultsFrom(r.Context()).Replace(nil)
	resp := DeleteScheduleResponse{Cleared: prev != nil}
	if prev != nil {
		resp.ID = prev.ID
		svcctx.LoggerFrom(r.Context()).Info("schedule cleared", "run_id", prev.ID)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (e *DeleteScheduleEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the current schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp DeleteScheduleResponse
			if err := client.Delete(cmd.Context(), "/api/schedule", &resp); err != nil {
				return err
			}
			if resp.Cleared {
				fmt.Printf("Cleared schedule %s\n", resp.ID)
			} else {
				fmt.Println("No schedule to clear")
			}
			return nil
		},
	}
}
