package schedule

import "strings"

// Day is an uppercase weekday name or Unknown.
type Day string

const (
	Monday    Day = "MONDAY"
	Tuesday   Day = "TUESDAY"
	Wednesday Day = "WEDNESDAY"
	Thursday  Day = "THURSDAY"
	Friday    Day = "FRIDAY"
	Saturday  Day = "SATURDAY"
	Sunday    Day = "SUNDAY"

	// Unknown is assigned to entries seen before any day heading.
	Unknown Day = "UNKNOWN"
)

// Weekdays lists the seven recognized day headings, Monday first.
var Weekdays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// DayOrder is the canonical presentation order.
var DayOrder = append(append([]Day{}, Weekdays...), Unknown)

// DayHeading reports the weekday a line starts with, ignoring case and
// surrounding whitespace. "Monday 8am" and "MONDAYS" both count.
func DayHeading(line string) (Day, bool) {
	upper := strings.ToUpper(strings.TrimSpace(line))
	for _, d := range Weekdays {
		if strings.HasPrefix(upper, string(d)) {
			return d, true
		}
	}
	return "", false
}

// Rank is the position of d in DayOrder. Days outside the order rank last.
func (d Day) Rank() int {
	for i, o := range DayOrder {
		if o == d {
			return i
		}
	}
	return len(DayOrder)
}

// Title returns the day in title case, e.g. "Monday".
func (d Day) Title() string {
	if d == "" {
		return ""
	}
	s := strings.ToLower(string(d))
	return strings.ToUpper(s[:1]) + s[1:]
}
