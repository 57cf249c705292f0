package render

// PageSpec sizes the PDF page and its typography, in points.
type PageSpec struct {
	Width      float64 `mapstructure:"width" yaml:"width"`
	Height     float64 `mapstructure:"height" yaml:"height"`
	Margin     float64 `mapstructure:"margin" yaml:"margin"`
	TitleSize  float64 `mapstructure:"title_size" yaml:"title_size"`
	DaySize    float64 `mapstructure:"day_size" yaml:"day_size"`
	CourseSize float64 `mapstructure:"course_size" yaml:"course_size"`
	LineHeight float64 `mapstructure:"line_height" yaml:"line_height"`
}

// DefaultPageSpec is a 600x840 portrait page.
func DefaultPageSpec() PageSpec {
	return PageSpec{
		Width:      600,
		Height:     840,
		Margin:     50,
		TitleSize:  18,
		DaySize:    14,
		CourseSize: 10,
		LineHeight: 18,
	}
}

// withDefaults fills zero fields from DefaultPageSpec.
func (p PageSpec) withDefaults() PageSpec {
	d := DefaultPageSpec()
	for _, f := range []struct{ v, def *float64 }{
		{&p.Width, &d.Width}, {&p.Height, &d.Height}, {&p.Margin, &d.Margin},
		{&p.TitleSize, &d.TitleSize}, {&p.DaySize, &d.DaySize},
		{&p.CourseSize, &d.CourseSize}, {&p.LineHeight, &d.LineHeight},
	} {
		if *f.v <= 0 {
			*f.v = *f.def
		}
	}
	return p
}

// Remaining space, measured from the page bottom, below which a new page
// starts before a day heading or a course row.
const (
	dayBreak = 80
	rowBreak = 60
)

// TextLine is one run of text placed on a page. Y is the baseline measured
// from the bottom edge.
type TextLine struct {
	X, Y float64
	Size float64
	Bold bool
	Gray float64
	Text string
}

// Page is the text placed on one PDF page.
type Page struct {
	Lines []TextLine
}

// Paginate lays the document out top to bottom: the title, then each day
// heading followed by its rows. A day that spills onto a new page repeats
// its heading as "DAY (cont.)".
func Paginate(doc *Document, opts Options) []Page {
	spec := opts.Page.withDefaults()
	top := spec.Height - spec.Margin

	pages := []Page{{}}
	y := top
	draw := func(l TextLine) {
		l.Y = y
		pages[len(pages)-1].Lines = append(pages[len(pages)-1].Lines, l)
	}
	newPage := func() {
		pages = append(pages, Page{})
		y = top
	}

	draw(TextLine{X: spec.Margin, Size: spec.TitleSize, Bold: true, Text: doc.Title})
	y -= spec.TitleSize + 10

	for _, s := range doc.Sections {
		if y < dayBreak {
			newPage()
		}
		draw(TextLine{X: spec.Margin, Size: spec.DaySize, Bold: true, Gray: 0.1, Text: string(s.Day)})
		y -= spec.DaySize + 5

		for _, r := range s.Courses {
			if y < rowBreak {
				newPage()
				draw(TextLine{X: spec.Margin, Size: spec.DaySize, Bold: true, Gray: 0.1, Text: string(s.Day) + " (cont.)"})
				y -= spec.DaySize + 5
			}
			draw(TextLine{X: spec.Margin + 10, Size: spec.CourseSize, Gray: 0.2, Text: rowText(r, opts)})
			y -= spec.LineHeight
		}
		y -= 10
	}
	return pages
}

// rowText formats a course line, e.g. "SOE 322  |  10:00 AM - 12:00 PM  |  NHA1 (Software)".
func rowText(r Row, opts Options) string {
	text := r.Code + "  |  " + r.Time + "  |  " + r.Location
	if opts.ShowName {
		text += " (" + r.Name + ")"
	}
	return text
}
