package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/api"
	"github.com/jackzampolin/classgrid/internal/ingest"
	"github.com/jackzampolin/classgrid/internal/schedule"
)

var extractLayout string

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Inspect what is read from a single document",
}

var extractTextCmd = &cobra.Command{
	Use:   "text <file>...",
	Short: "Print the plain text extracted from a document",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, doc.Text)
		return nil
	},
}

var extractTimetableCmd = &cobra.Command{
	Use:   "timetable <file>...",
	Short: "List every course entry found in a timetable, in document order",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(cmd, args)
		if err != nil {
			return err
		}
		entries := schedule.ExtractSchedule(doc.Text)
		if entries == nil {
			entries = []schedule.CourseEntry{}
		}
		return api.Output(entries)
	},
}

var extractRegistrationCmd = &cobra.Command{
	Use:   "registration <file>...",
	Short: "List the course codes found in a registration document",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := readDocument(cmd, args)
		if err != nil {
			return err
		}
		codes := schedule.ExtractRegisteredCodes(doc.Text)
		return api.Output(codes.Sorted())
	},
}

func readDocument(cmd *cobra.Command, paths []string) (*ingest.Document, error) {
	mgr, _, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	layoutValue := extractLayout
	if layoutValue == "" {
		layoutValue = cfg.Extract.Layout
	}
	layout, err := ingest.ParseLayout(layoutValue)
	if err != nil {
		return nil, err
	}

	return ingest.Read(cmd.Context(), ingest.Request{
		Paths:  paths,
		Layout: layout,
		Logger: newLogger(cfg),
	})
}

func init() {
	extractCmd.PersistentFlags().StringVar(&extractLayout, "layout", "", "PDF text layout: page or rows (default from config)")

	extractCmd.AddCommand(extractTextCmd)
	extractCmd.AddCommand(extractTimetableCmd)
	extractCmd.AddCommand(extractRegistrationCmd)
	rootCmd.AddCommand(extractCmd)
}
