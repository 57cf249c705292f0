package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jackzampolin/classgrid/internal/schedule"
)

func TestPaginate_SinglePage(t *testing.T) {
	doc := NewDocument("Semester", sampleSchedule())
	pages := Paginate(doc, DefaultOptions())
	if len(pages) != 1 {
		t.Fatalf("pages = %d, want 1", len(pages))
	}

	lines := pages[0].Lines
	if lines[0].Text != "Semester" || !lines[0].Bold || lines[0].Y != 790 {
		t.Errorf("title line = %+v", lines[0])
	}
	if lines[1].Text != "MONDAY" || lines[1].Y != 762 {
		t.Errorf("first day line = %+v", lines[1])
	}
	if lines[2].Text != "CSC 205  |  8:00 AM - 10:00 AM  |  LT2 (Operating Systems (I))" {
		t.Errorf("first row = %q", lines[2].Text)
	}
	if lines[2].X != 60 || lines[2].Y != 743 {
		t.Errorf("first row placed at %v,%v", lines[2].X, lines[2].Y)
	}
}

func TestPaginate_Continuation(t *testing.T) {
	var entries []schedule.CourseEntry
	for i := 0; i < 60; i++ {
		entries = append(entries, schedule.CourseEntry{
			Day: schedule.Monday, Code: fmt.Sprintf("CSC %03d", 100+i),
			Name: "Course", Time: "8:00 AM - 9:00 AM", Location: "LT1",
		})
	}
	entries = append(entries, schedule.CourseEntry{Day: schedule.Friday, Code: "MTH 101", Time: "9:00 AM - 10:00 AM"})

	pages := Paginate(NewDocument("", schedule.GroupAndSort(entries)), DefaultOptions())
	if len(pages) < 2 {
		t.Fatalf("pages = %d, want at least 2", len(pages))
	}

	if got := pages[1].Lines[0].Text; got != "MONDAY (cont.)" {
		t.Errorf("second page starts with %q, want continuation heading", got)
	}

	rows := 0
	for _, p := range pages {
		for _, l := range p.Lines {
			if l.Y < rowBreak-DefaultPageSpec().LineHeight {
				t.Errorf("line %q placed below the bottom margin at y=%v", l.Text, l.Y)
			}
			if strings.HasPrefix(l.Text, "CSC ") || strings.HasPrefix(l.Text, "MTH ") {
				rows++
			}
		}
	}
	if rows != 61 {
		t.Errorf("rows drawn = %d, want 61", rows)
	}
}

func TestPageSpec_WithDefaults(t *testing.T) {
	spec := PageSpec{Width: 612}.withDefaults()
	if spec.Width != 612 || spec.Height != 840 || spec.LineHeight != 18 {
		t.Errorf("withDefaults() = %+v", spec)
	}
}
