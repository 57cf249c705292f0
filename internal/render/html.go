package render

import (
	"html/template"
	"io"
)

var htmlTemplate = template.Must(template.New("timetable").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: Helvetica, Arial, sans-serif; margin: 2rem; color: #222; }
table.timetable-table { border-collapse: collapse; min-width: 40rem; }
th, td { border: 1px solid #ccc; padding: 0.4rem 0.8rem; text-align: left; }
th { background: #4472c4; color: #fff; }
td.day-header { background: #eef2fa; font-weight: bold; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<table class="timetable-table">
<thead><tr>{{range .Columns}}<th>{{.}}</th>{{end}}</tr></thead>
{{- range .Sections}}
<tbody data-day="{{.Day}}">
<tr><td class="day-header" colspan="{{$.Span}}">{{.Day}}</td></tr>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
{{- end}}
</table>
</body>
</html>
`))

type htmlSection struct {
	Day  string
	Rows [][]string
}

// HTML writes a standalone page with one tbody per day. Each tbody opens with
// a day header row spanning every column.
func HTML(w io.Writer, doc *Document, opts Options) error {
	cols := Columns(opts)
	sections := make([]htmlSection, len(doc.Sections))
	for i, s := range doc.Sections {
		rows := make([][]string, len(s.Courses))
		for j, r := range s.Courses {
			rows[j] = r.Cells(opts)
		}
		sections[i] = htmlSection{Day: string(s.Day), Rows: rows}
	}
	return htmlTemplate.Execute(w, struct {
		Title    string
		Columns  []string
		Span     int
		Sections []htmlSection
	}{doc.Title, cols, len(cols), sections})
}
