// Package render presents a grouped schedule: as a terminal table, HTML,
// a paginated PDF, an XLSX workbook, or JSON/YAML.
package render

import (
	"strings"

	"github.com/jackzampolin/classgrid/internal/schedule"
)

// DefaultTitle is used when no title is configured.
const DefaultTitle = "My Timetable"

// Row is one course in the fixed field order time, code, name, location.
type Row struct {
	Time     string `json:"time" yaml:"time"`
	Code     string `json:"code" yaml:"code"`
	Name     string `json:"name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
}

// Section is one day heading and its rows.
type Section struct {
	Day     schedule.Day `json:"day" yaml:"day"`
	Courses []Row        `json:"courses" yaml:"courses"`
}

// Document is the presentation contract shared by every output format.
type Document struct {
	Title    string    `json:"title" yaml:"title"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Sections lists the non-empty days of g in canonical order. Rows keep the
// order they have in g.
func Sections(g schedule.GroupedSchedule) []Section {
	days := g.Days()
	sections := make([]Section, 0, len(days))
	for _, d := range days {
		entries := g[d]
		rows := make([]Row, len(entries))
		for i, e := range entries {
			rows[i] = Row{Time: e.Time, Code: e.Code, Name: e.Name, Location: e.Location}
		}
		sections = append(sections, Section{Day: d, Courses: rows})
	}
	return sections
}

// NewDocument builds a document from g. A blank title becomes DefaultTitle.
func NewDocument(title string, g schedule.GroupedSchedule) *Document {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}
	return &Document{Title: title, Sections: Sections(g)}
}

// Len is the number of rows across all sections.
func (d *Document) Len() int {
	n := 0
	for _, s := range d.Sections {
		n += len(s.Courses)
	}
	return n
}
