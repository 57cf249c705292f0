package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/pipeline"
	"github.com/jackzampolin/classgrid/internal/render"
	"github.com/jackzampolin/classgrid/internal/tui"
)

var viewInputs inputFlags

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse the timetable interactively, one day at a time",
	Example: `  classgrid view -t timetable.pdf -r registration.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mgr, _, err := loadConfig()
		if err != nil {
			return err
		}
		cfg := mgr.Get()
		// Logs would tear the alternate screen; keep only errors.
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

		req, err := viewInputs.request(cfg, logger)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		return tui.Run(func() tui.BuildMsg {
			res, err := pipeline.Run(ctx, req)
			if err != nil {
				return tui.BuildMsg{Err: err}
			}
			msg := tui.BuildMsg{Outcome: res.Outcome}
			if res.Outcome == pipeline.OutcomeScheduled {
				msg.Document = render.NewDocument(res.Title, res.Schedule)
			}
			return msg
		}, cfg.RenderOptions())
	},
}

func init() {
	viewInputs.register(viewCmd)
	rootCmd.AddCommand(viewCmd)
}
