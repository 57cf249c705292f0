package schedule

import "sort"

// GroupedSchedule maps each day to its entries in ascending start time.
type GroupedSchedule map[Day][]CourseEntry

// GroupAndSort buckets entries by day, keeping input order within a bucket,
// then stable-sorts each bucket by start minute. Entries with unreadable
// times sort as midnight.
func GroupAndSort(entries []CourseEntry) GroupedSchedule {
	g := make(GroupedSchedule)
	for _, e := range entries {
		g[e.Day] = append(g[e.Day], e)
	}
	for _, bucket := range g {
		sort.SliceStable(bucket, func(i, j int) bool {
			return StartMinutes(bucket[i].Time) < StartMinutes(bucket[j].Time)
		})
	}
	return g
}

// Days returns the days that have entries, in DayOrder. Any day outside
// DayOrder follows, alphabetically.
func (g GroupedSchedule) Days() []Day {
	days := make([]Day, 0, len(g))
	for d, entries := range g {
		if len(entries) > 0 {
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool {
		ri, rj := days[i].Rank(), days[j].Rank()
		if ri != rj {
			return ri < rj
		}
		return days[i] < days[j]
	})
	return days
}

// Entries returns the ordered entries for day, or nil.
func (g GroupedSchedule) Entries(day Day) []CourseEntry {
	return g[day]
}

// Len is the total number of entries across all days.
func (g GroupedSchedule) Len() int {
	n := 0
	for _, entries := range g {
		n += len(entries)
	}
	return n
}
