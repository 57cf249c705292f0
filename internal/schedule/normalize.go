package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Meridiem is AM or PM.
type Meridiem string

const (
	AM Meridiem = "AM"
	PM Meridiem = "PM"
)

// ErrMalformedTime is returned by ParseTimeRange for text it cannot read.
var ErrMalformedTime = errors.New("malformed time")

// Clock is a 12-hour time of day. Hour keeps the digit as written, so
// "09:00" has Hour 9 and "13:00pm" has Hour 13.
type Clock struct {
	Hour     int
	Minute   string
	Meridiem Meridiem
}

func (c Clock) String() string {
	return fmt.Sprintf("%d:%s %s", c.Hour, c.Minute, c.Meridiem)
}

// Hour24 converts to a 24-hour hour. 12 AM is 0 and 12 PM is 12.
func (c Clock) Hour24() int {
	switch {
	case c.Meridiem == PM && c.Hour < 12:
		return c.Hour + 12
	case c.Meridiem == AM && c.Hour == 12:
		return 0
	}
	return c.Hour
}

// TimeRange is a start time with an optional end time.
type TimeRange struct {
	Start  Clock
	End    Clock
	HasEnd bool
}

// String renders the canonical form "H:MM AM - H:MM PM".
func (r TimeRange) String() string {
	if !r.HasEnd {
		return r.Start.String()
	}
	return r.Start.String() + " - " + r.End.String()
}

var rangeSeparator = regexp.MustCompile(`\s*to\s*|\s*-\s*`)

// ParseTimeRange reads a raw time expression such as "10:00am-12:00pm",
// "10:00 to 12:00" or "10pm-1" and fills in missing meridiems.
func ParseTimeRange(raw string) (TimeRange, error) {
	s := rangeSeparator.ReplaceAllString(strings.ToLower(raw), "-")
	parts := strings.Split(s, "-")

	var r TimeRange
	hour, minute, mer, err := parseComponent(parts[0])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: start of %q: %v", ErrMalformedTime, raw, err)
	}
	if mer == "" {
		mer = inferStart(hour)
	}
	r.Start = Clock{Hour: hour, Minute: minute, Meridiem: mer}

	if len(parts) < 2 || strings.TrimSpace(parts[1]) == "" {
		return r, nil
	}
	hour, minute, mer, err = parseComponent(parts[1])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: end of %q: %v", ErrMalformedTime, raw, err)
	}
	if mer == "" {
		mer = inferEnd(hour, r.Start)
	}
	r.End = Clock{Hour: hour, Minute: minute, Meridiem: mer}
	r.HasEnd = true
	return r, nil
}

// NormalizeTime returns the canonical form of raw. Input that cannot be read
// is returned trimmed and otherwise unchanged.
func NormalizeTime(raw string) string {
	r, err := ParseTimeRange(raw)
	if err != nil {
		return strings.TrimSpace(raw)
	}
	return r.String()
}

// parseComponent reads "H", "H:MM" or either with a trailing a/am/p/pm.
func parseComponent(s string) (int, string, Meridiem, error) {
	s = strings.TrimSpace(s)
	var mer Meridiem
	for _, suf := range []struct {
		text string
		m    Meridiem
	}{{"am", AM}, {"pm", PM}, {"a", AM}, {"p", PM}} {
		if strings.HasSuffix(s, suf.text) {
			s = strings.TrimSpace(strings.TrimSuffix(s, suf.text))
			mer = suf.m
			break
		}
	}

	hourText, minute := s, "00"
	if h, m, ok := strings.Cut(s, ":"); ok {
		hourText = h
		minute, _, _ = strings.Cut(m, ":")
		minute = strings.TrimSpace(minute)
		if len(minute) < 2 {
			minute = strings.Repeat("0", 2-len(minute)) + minute
		}
	}
	for i := 0; i < len(minute); i++ {
		if !isASCIIDigit(minute[i]) {
			return 0, "", "", fmt.Errorf("minute %q", minute)
		}
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hourText))
	if err != nil || hour < 0 {
		return 0, "", "", fmt.Errorf("hour %q", hourText)
	}
	return hour, minute, mer, nil
}

// inferStart guesses a meridiem for a start time: 7-11 are mornings, noon
// and everything else afternoons.
func inferStart(hour int) Meridiem {
	if hour >= 7 && hour <= 11 {
		return AM
	}
	return PM
}

// inferEnd guesses a meridiem for an end time from the start. An early end
// hour below the start hour crosses noon (after an AM start) or midnight
// (after a PM start).
func inferEnd(hour int, start Clock) Meridiem {
	if start.Meridiem == AM {
		if hour == 12 || (hour < start.Hour24() && hour <= 6) {
			return PM
		}
		return AM
	}
	if hour == 12 || (hour < start.Hour24()-12 && hour <= 6) {
		return AM
	}
	return PM
}

// StartMinutes returns the minutes since midnight of the start of a canonical
// time string, or 0 when no "H:MM AM|PM" can be found.
func StartMinutes(canonical string) int {
	start, _, _ := strings.Cut(canonical, " - ")
	toks := Lex(start)
	for i, t := range toks {
		if t.Kind != TokClock {
			continue
		}
		colon := strings.IndexByte(t.Text, ':')
		digits, suffix := t.Text[:colon+3], t.Text[colon+3:]
		if suffix == "" && i+1 < len(toks) && toks[i+1].Kind == TokWord {
			suffix = toks[i+1].Text
		}
		var mer Meridiem
		switch strings.ToUpper(suffix) {
		case "AM":
			mer = AM
		case "PM":
			mer = PM
		default:
			continue
		}
		h, m, _ := strings.Cut(digits, ":")
		hour, _ := strconv.Atoi(h)
		minute, _ := strconv.Atoi(m)
		return Clock{Hour: hour, Meridiem: mer}.Hour24()*60 + minute
	}
	return 0
}
