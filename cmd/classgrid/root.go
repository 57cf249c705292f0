package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/classgrid/internal/api"
	"github.com/jackzampolin/classgrid/internal/config"
	"github.com/jackzampolin/classgrid/internal/home"
	"github.com/jackzampolin/classgrid/version"
)

var (
	cfgFile      string
	homeDir      string
	outputFormat string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "classgrid",
	Short: "Build a personal class timetable from a faculty timetable and a registration slip",
	Long: `classgrid reads a faculty-wide timetable and a student's course
registration document (PDF or text), keeps only the registered courses,
and lays them out by day in chronological order.

Output formats:
  - table  terminal table (default)
  - html   standalone HTML page
  - pdf    paginated PDF
  - xlsx   Excel workbook
  - json / yaml`,
	Version:      version.GitRelease,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.classgrid/config.yaml)",
	)
	rootCmd.PersistentFlags().StringVar(
		&homeDir, "home", "", "classgrid home directory (default: ~/.classgrid)",
	)
	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "output", "o", "yaml", "structured output format: yaml or json",
	)
	rootCmd.PersistentFlags().StringVar(
		&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)",
	)

	// Set output format before any command runs
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		api.SetOutputFormat(outputFormat)
	}

	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves the home directory and loads configuration. An
// explicit --config wins; otherwise the home config is used when present.
func loadConfig() (*config.Manager, *home.Dir, error) {
	h, err := home.New(homeDir)
	if err != nil {
		return nil, nil, err
	}

	path := cfgFile
	if path == "" && h.ConfigExists() {
		path = h.ConfigPath()
	}
	mgr, err := config.NewManager(path)
	if err != nil {
		return nil, nil, err
	}
	return mgr, h, nil
}

// newLogger writes text logs to stderr so stdout stays clean for output.
func newLogger(cfg *config.Config) *slog.Logger {
	level := cfg.LogLevel()
	if logLevel != "" {
		override := *cfg
		override.Log.Level = logLevel
		level = override.LogLevel()
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
