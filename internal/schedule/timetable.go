package schedule

import "strings"

// lineScanner is the state threaded through the lines of a timetable. The
// day heading last seen applies to every entry until the next heading.
type lineScanner struct {
	day Day
}

// scan consumes one line and returns the updated state with the entries the
// line produced. The primary pattern is tried first; the fallback only runs
// when the primary found nothing on the line.
func (s lineScanner) scan(line string) (lineScanner, []CourseEntry) {
	if d, ok := DayHeading(line); ok {
		s.day = d
	}

	toks := Lex(line)
	found := scanAll(line, toks, matchPrimary)
	if len(found) == 0 {
		found = scanAll(line, toks, matchFallback)
	}
	for i := range found {
		found[i].Day = s.day
	}
	return s, found
}

// ExtractSchedule reads every course entry from timetable text, one line at a
// time, in document order. Lines that match nothing are skipped. Entries seen
// before any day heading get Unknown.
func ExtractSchedule(text string) []CourseEntry {
	state := lineScanner{day: Unknown}
	var entries []CourseEntry
	for _, line := range strings.Split(text, "\n") {
		var found []CourseEntry
		state, found = state.scan(line)
		entries = append(entries, found...)
	}
	return entries
}
