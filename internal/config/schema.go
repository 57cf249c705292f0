package config

import (
	"log/slog"
	"strings"

	"github.com/jackzampolin/classgrid/internal/ingest"
	"github.com/jackzampolin/classgrid/internal/render"
)

// Config holds classgrid configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Output  OutputCfg       `mapstructure:"output" yaml:"output"`
	Extract ExtractCfg      `mapstructure:"extract" yaml:"extract"`
	PDF     render.PageSpec `mapstructure:"pdf" yaml:"pdf"`
	Server  ServerCfg       `mapstructure:"server" yaml:"server"`
	Log     LogCfg          `mapstructure:"log" yaml:"log"`
}

// OutputCfg configures rendering.
type OutputCfg struct {
	Format   string `mapstructure:"format" yaml:"format"`       // table, html, pdf, xlsx, json, yaml
	Title    string `mapstructure:"title" yaml:"title"`         // Supports ${ENV_VAR} syntax
	ShowName bool   `mapstructure:"show_name" yaml:"show_name"` // Include the course name column
}

// ExtractCfg configures text extraction from PDFs.
type ExtractCfg struct {
	Layout string `mapstructure:"layout" yaml:"layout"` // page or rows
}

// ServerCfg configures the HTTP server.
type ServerCfg struct {
	Host string `mapstructure:"host" yaml:"host"`
	Port string `mapstructure:"port" yaml:"port"`
}

// LogCfg configures logging.
type LogCfg struct {
	Level string `mapstructure:"level" yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputCfg{
			Format:   "table",
			Title:    render.DefaultTitle,
			ShowName: true,
		},
		Extract: ExtractCfg{
			Layout: string(ingest.LayoutPage),
		},
		PDF: render.DefaultPageSpec(),
		Server: ServerCfg{
			Host: "127.0.0.1",
			Port: "8080",
		},
		Log: LogCfg{
			Level: "info",
		},
	}
}

// RenderOptions returns the adapter options for this config.
func (c *Config) RenderOptions() render.Options {
	return render.Options{ShowName: c.Output.ShowName, Page: c.PDF}
}

// Title returns the output title with environment references resolved.
func (c *Config) Title() string {
	return ResolveEnvVars(c.Output.Title)
}

// LogLevel parses Log.Level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
