package schedule

import "sort"

// Match keeps the entries whose code is registered and orders them by their
// canonical time string. The order is lexicographic, so "10:00 AM" sorts
// before "8:00 AM"; GroupAndSort applies the chronological order later.
func Match(entries []CourseEntry, codes CodeSet) []CourseEntry {
	matched := make([]CourseEntry, 0, len(entries))
	for _, e := range entries {
		if codes.Has(e.Code) {
			matched = append(matched, e)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Time < matched[j].Time
	})
	return matched
}
