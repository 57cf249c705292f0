package endpoints

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/api"
	"github.com/jackzampolin/classgrid/internal/config"
	"github.com/jackzampolin/classgrid/internal/svcctx"
)

// SettingsResponse lists the effective configuration.
type SettingsResponse struct {
	Settings []config.Entry `json:"settings" yaml:"settings"`
}

// SettingResponse contains a single config entry and its default.
type SettingResponse struct {
	Entry   config.Entry `json:"entry" yaml:"entry"`
	Default any          `json:"default" yaml:"default"`
}

// ListSettingsEndpoint handles GET /api/settings.
type ListSettingsEndpoint struct{}

func (e *ListSettingsEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/settings", e.handler
}

func (e *ListSettingsEndpoint) RequiresInit() bool { return true }

func (e *ListSettingsEndpoint) Group() string { return "settings" }

// handler godoc
//
//	@Summary		List all settings
//	@Description	Get the effective configuration, after file and environment overrides
//	@Tags			settings
//	@Produce		json
//	@Param			prefix	query		string	false	"Only keys starting with prefix"
//	@Success		200		{object}	SettingsResponse
//	@Router			/api/settings [get]
func (e *ListSettingsEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("prefix")
	entries := svcctx.ConfigFrom(r.Context()).Entries()

	filtered := make([]config.Entry, 0, len(entries))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Key, prefix) {
			filtered = append(filtered, entry)
		}
	}

	writeJSON(w, http.StatusOK, SettingsResponse{Settings: filtered})
}

func (e *ListSettingsEndpoint) Command(getServerURL func() string) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			path := "/api/settings"
			if prefix != "" {
				path += "?prefix=" + url.QueryEscape(prefix)
			}
			var resp SettingsResponse
			if err := client.Get(cmd.Context(), path, &resp); err != nil {
				return err
			}
			return api.Output(resp.Settings)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Filter by key prefix (e.g., 'pdf.')")
	return cmd
}

// GetSettingEndpoint handles GET /api/settings/{key...}.
type GetSettingEndpoint struct{}

func (e *GetSettingEndpoint) Route() (string, string, http.HandlerFunc) {
	return "GET", "/api/settings/{key...}", e.handler
}

func (e *GetSettingEndpoint) RequiresInit() bool { return true }

func (e *GetSettingEndpoint) Group() string { return "settings" }

// handler godoc
//
//	@Summary		Get a setting
//	@Tags			settings
//	@Produce		json
//	@Param			key	path		string	true	"Setting key, e.g. output.title"
//	@Success		200	{object}	SettingResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/api/settings/{key} [get]
func (e *GetSettingEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	def, err := config.GetDefault(key)
	if err != nil {
		if errors.Is(err, config.ErrNoDefault) {
			writeError(w, http.StatusNotFound, "unknown setting: "+key)
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	for _, entry := range svcctx.ConfigFrom(r.Context()).Entries() {
		if entry.Key == key {
			writeJSON(w, http.StatusOK, SettingResponse{Entry: entry, Default: def.Value})
			return
		}
	}
	writeError(w, http.StatusNotFound, "unknown setting: "+key)
}

func (e *GetSettingEndpoint) Command(getServerURL func() string) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a setting value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := api.NewClient(getServerURL())
			var resp SettingResponse
			if err := client.Get(cmd.Context(), "/api/settings/"+args[0], &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}
}
