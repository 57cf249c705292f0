package endpoints

import (
	"net/http"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/api"
	"github.com/jackzampolin/classgrid/internal/schedule"
)

// NormalizeResponse is a time range in canonical form.
type NormalizeResponse struct {
	Input        string `json:"input" yaml:"input"`
	Normalized   string `json:"normalized" yaml:"normalized"`
	Valid        bool   `json:"valid" yaml:"valid"`
	StartMinutes int    `json:"start_minutes" yaml:"start_minutes"`
}

// NormalizeEndpoint handles GET /api/normalize.
type NormalizeEndpoint struct{}

func (e *NormalizeEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/normalize", e.handler
}

func (e *NormalizeEndpoint) RequiresInit() bool { return false }

// handler godoc
//
//	@Summary		Normalize a time range
//	@Description	Converts "8:00-10:00" style ranges to "8:00 AM - 10:00 AM"
//	@Tags			schedule
//	@Produce		json
//	@Param			time	query		string	true	"Raw time range"
//	@Success		200		{object}	NormalizeResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/api/normalize [get]
func (e *NormalizeEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("time")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "time is required")
		return
	}
	writeJSON(w, http.StatusOK, normalizeTime(raw))
}

func normalizeTime(raw string) NormalizeResponse {
	resp := NormalizeResponse{Input: raw, Normalized: schedule.NormalizeTime(raw)}
	if _, err := schedule.ParseTimeRange(raw); err == nil {
		resp.Valid = true
	}
	resp.StartMinutes = schedule.StartMinutes(resp.Normalized)
	return resp
}

func (e *NormalizeEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "normalize <time>",
		Short: "Normalize a time range on the server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp NormalizeResponse
			if err := client.Get(cmd.Context(), "/api/normalize?time="+url.QueryEscape(args[0]), &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
