// Package schedule turns timetable and registration text into a personal,
// day-by-day class schedule.
package schedule

import "sort"

const (
	// NameUnavailable is recorded when a line carries no course title.
	NameUnavailable = "Details N/A"
	// LocationUnavailable is recorded when a line carries no venue.
	LocationUnavailable = "N/A"
)

// CourseEntry is one scheduled meeting extracted from a timetable line.
type CourseEntry struct {
	Day      Day    `json:"day" yaml:"day"`
	Code     string `json:"code" yaml:"code"`
	Name     string `json:"name" yaml:"name"`
	Time     string `json:"time" yaml:"time"`
	Location string `json:"location" yaml:"location"`
}

// CodeSet is a set of canonical course codes.
type CodeSet struct {
	codes map[string]struct{}
}

// NewCodeSet builds a set from the given codes.
func NewCodeSet(codes ...string) CodeSet {
	s := CodeSet{codes: make(map[string]struct{}, len(codes))}
	for _, c := range codes {
		s.Add(c)
	}
	return s
}

// Add inserts a code. Adding an existing code is a no-op.
func (s *CodeSet) Add(code string) {
	if s.codes == nil {
		s.codes = make(map[string]struct{})
	}
	s.codes[code] = struct{}{}
}

// Has reports membership by exact string equality.
func (s CodeSet) Has(code string) bool {
	_, ok := s.codes[code]
	return ok
}

func (s CodeSet) Len() int { return len(s.codes) }

// Sorted returns the codes in byte order.
func (s CodeSet) Sorted() []string {
	out := make([]string, 0, len(s.codes))
	for c := range s.codes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
