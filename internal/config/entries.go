package config

import (
	"errors"
	"fmt"
)

// ErrNoDefault is returned when no default value exists for a config key.
var ErrNoDefault = errors.New("no default exists")

// Entry is one flattened configuration key.
type Entry struct {
	Key         string `json:"key" yaml:"key"`
	Value       any    `json:"value" yaml:"value"`
	Description string `json:"description" yaml:"description"`
}

// Entries flattens c into documented keys, in a fixed order.
func (c *Config) Entries() []Entry {
	return []Entry{
		{Key: "output.format", Value: c.Output.Format, Description: "Default output format for build (table, html, pdf, xlsx, json, yaml)"},
		{Key: "output.title", Value: c.Output.Title, Description: "Timetable title used in exports (supports ${ENV_VAR})"},
		{Key: "output.show_name", Value: c.Output.ShowName, Description: "Include the course name column"},
		{Key: "extract.layout", Value: c.Extract.Layout, Description: "How PDF page text is joined: page (one line per page) or rows"},
		{Key: "pdf.width", Value: c.PDF.Width, Description: "PDF page width in points"},
		{Key: "pdf.height", Value: c.PDF.Height, Description: "PDF page height in points"},
		{Key: "pdf.margin", Value: c.PDF.Margin, Description: "PDF left and top margin in points"},
		{Key: "pdf.title_size", Value: c.PDF.TitleSize, Description: "PDF title font size"},
		{Key: "pdf.day_size", Value: c.PDF.DaySize, Description: "PDF day heading font size"},
		{Key: "pdf.course_size", Value: c.PDF.CourseSize, Description: "PDF course row font size"},
		{Key: "pdf.line_height", Value: c.PDF.LineHeight, Description: "PDF distance between course rows"},
		{Key: "server.host", Value: c.Server.Host, Description: "HTTP server bind host"},
		{Key: "server.port", Value: c.Server.Port, Description: "HTTP server port"},
		{Key: "log.level", Value: c.Log.Level, Description: "Log level (debug, info, warn, error)"},
	}
}

// DefaultEntries returns the default configuration entries.
func DefaultEntries() []Entry {
	return DefaultConfig().Entries()
}

// GetDefault returns the default entry for key.
func GetDefault(key string) (*Entry, error) {
	for _, e := range DefaultEntries() {
		if e.Key == key {
			return &e, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoDefault, key)
}
