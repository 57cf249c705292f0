package api

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// OutputFormat selects how extraction dumps, schedule responses and
// settings are printed by the CLI.
type OutputFormat string

const (
	OutputFormatYAML OutputFormat = "yaml"
	OutputFormatJSON OutputFormat = "json"
)

// DefaultOutput is used until --output says otherwise.
var DefaultOutput OutputFormat = OutputFormatYAML

var globalOutputFormat = DefaultOutput

// SetOutputFormat applies the --output flag. Anything other than yaml or
// json resets to DefaultOutput.
func SetOutputFormat(format string) {
	f := OutputFormat(format)
	if f != OutputFormatJSON && f != OutputFormatYAML {
		f = DefaultOutput
	}
	globalOutputFormat = f
}

// GetOutputFormat reports the format chosen with --output.
func GetOutputFormat() OutputFormat {
	return globalOutputFormat
}

// Output prints data to stdout, e.g. the entries from "extract timetable".
func Output(data any) error {
	return OutputTo(os.Stdout, globalOutputFormat, data)
}

// OutputTo encodes data to w. JSON and YAML are both indented by two spaces
// so the two dumps of a schedule line up.
func OutputTo(w io.Writer, format OutputFormat, data any) error {
	switch format {
	case OutputFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(data)
	case OutputFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format: %s", format)
}
