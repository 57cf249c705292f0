package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	dayStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)

// Columns returns the table headers for the given options.
func Columns(opts Options) []string {
	if opts.ShowName {
		return []string{"Time", "Course Code", "Course Name", "Location"}
	}
	return []string{"Time", "Course Code", "Location"}
}

// Cells flattens a row into the columns of Columns(opts).
func (r Row) Cells(opts Options) []string {
	if opts.ShowName {
		return []string{r.Time, r.Code, r.Name, r.Location}
	}
	return []string{r.Time, r.Code, r.Location}
}

// Table renders the document as a bordered terminal table. The day appears
// in its own column on the first row of each section.
func Table(doc *Document, opts Options) string {
	var rows [][]string
	firstOfDay := make(map[int]bool)
	for _, s := range doc.Sections {
		for i, r := range s.Courses {
			day := ""
			if i == 0 {
				day = string(s.Day)
				firstOfDay[len(rows)] = true
			}
			rows = append(rows, append([]string{day}, r.Cells(opts)...))
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(append([]string{"Day"}, Columns(opts)...)...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 0 && firstOfDay[row]:
				return dayStyle
			}
			return cellStyle
		})

	return titleStyle.Render(doc.Title) + "\n" + t.String() + "\n"
}
