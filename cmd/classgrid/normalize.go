package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/schedule"
)

var normalizeStrict bool

var normalizeCmd = &cobra.Command{
	Use:   "normalize <time>...",
	Short: "Convert time ranges to the canonical \"H:MM AM - H:MM PM\" form",
	Example: `  classgrid normalize 8:00-10:00 "2:00pm to 4:00"
  8:00-10:00      8:00 AM - 10:00 AM
  2:00pm to 4:00  2:00 PM - 4:00 PM`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width := 0
		for _, a := range args {
			width = max(width, len(a))
		}
		for _, raw := range args {
			if normalizeStrict {
				if _, err := schedule.ParseTimeRange(raw); err != nil {
					return fmt.Errorf("%q: %w", raw, err)
				}
			}
			fmt.Printf("%-*s  %s\n", width, raw, schedule.NormalizeTime(raw))
		}
		return nil
	},
}

func init() {
	normalizeCmd.Flags().BoolVar(&normalizeStrict, "strict", false, "fail on malformed input instead of echoing it")
	rootCmd.AddCommand(normalizeCmd)
}
