package schedule

import (
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	entries := []CourseEntry{
		{Day: Monday, Code: "CSC 201", Time: "8:00 AM - 9:00 AM"},
		{Day: Monday, Code: "PHY 102", Time: "7:00 AM - 8:00 AM"},
		{Day: Tuesday, Code: "SOE 322", Time: "10:00 AM - 12:00 PM"},
		{Day: Wednesday, Code: "CSC 201", Time: "10:00 AM - 12:00 PM"},
	}
	codes := NewCodeSet("CSC 201", "SOE 322")

	got := Match(entries, codes)
	want := []CourseEntry{
		{Day: Tuesday, Code: "SOE 322", Time: "10:00 AM - 12:00 PM"},
		{Day: Wednesday, Code: "CSC 201", Time: "10:00 AM - 12:00 PM"},
		{Day: Monday, Code: "CSC 201", Time: "8:00 AM - 9:00 AM"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Match() =\n%+v\nwant\n%+v", got, want)
	}
	for _, e := range got {
		if !codes.Has(e.Code) {
			t.Errorf("unregistered code %q in output", e.Code)
		}
	}
}

func TestMatch_Empty(t *testing.T) {
	if got := Match(nil, NewCodeSet("CSC 201")); len(got) != 0 {
		t.Errorf("Match(nil) = %v, want empty", got)
	}
	entries := []CourseEntry{{Code: "CSC 201", Time: "8:00 AM"}}
	if got := Match(entries, NewCodeSet()); len(got) != 0 {
		t.Errorf("Match() with no codes = %v, want empty", got)
	}
}

func TestMatch_KeepsDuplicates(t *testing.T) {
	entries := []CourseEntry{
		{Day: Monday, Code: "CSC 201", Time: "8:00 AM - 9:00 AM", Location: "LT1"},
		{Day: Monday, Code: "CSC 201", Time: "8:00 AM - 9:00 AM", Location: "LT2"},
	}
	got := Match(entries, NewCodeSet("CSC 201"))
	if !reflect.DeepEqual(got, entries) {
		t.Errorf("Match() = %+v, want both entries in input order", got)
	}
}
