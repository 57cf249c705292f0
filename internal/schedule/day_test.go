package schedule

import "testing"

func TestDayHeading(t *testing.T) {
	tests := []struct {
		line string
		want Day
		ok   bool
	}{
		{"MONDAY", Monday, true},
		{"  wednesday 8:00", Wednesday, true},
		{"Fridays only", Friday, true},
		{"Sunday", Sunday, true},
		{"CSC 201 Monday", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := DayHeading(tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("DayHeading(%q) = %q, %v; want %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDayOrder(t *testing.T) {
	if len(DayOrder) != 8 || DayOrder[0] != Monday || DayOrder[7] != Unknown {
		t.Errorf("DayOrder = %v", DayOrder)
	}
	if Tuesday.Rank() >= Wednesday.Rank() || Unknown.Rank() != 7 {
		t.Error("Rank() does not follow DayOrder")
	}
	if Day("HOLIDAY").Rank() != len(DayOrder) {
		t.Error("unrecognized day should rank last")
	}
	if Thursday.Title() != "Thursday" {
		t.Errorf("Title() = %q", Thursday.Title())
	}
}
