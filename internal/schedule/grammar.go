package schedule

import "strings"

// The grammar below works on token slices produced by Lex. Every match
// function takes a start index and returns the index just past the match.

// matchCode reads DEPT[/DEPT] NUMBER where DEPT is 3-4 uppercase letters and
// NUMBER is 3-4 digits separated from the department by whitespace.
func matchCode(toks []Token, i int) (string, int, bool) {
	if i >= len(toks) || !isDept(toks[i]) {
		return "", 0, false
	}
	dept := toks[i].Text
	j := i + 1
	if j+1 < len(toks) && toks[j].Kind == TokSlash && !toks[j].Space &&
		isDept(toks[j+1]) && !toks[j+1].Space {
		dept += "/" + toks[j+1].Text
		j += 2
	}
	if j >= len(toks) || !toks[j].Space || toks[j].Kind != TokNumber {
		return "", 0, false
	}
	if n := len(toks[j].Text); n < 3 || n > 4 {
		return "", 0, false
	}
	return dept + " " + toks[j].Text, j + 1, true
}

func isDept(t Token) bool {
	if t.Kind != TokWord || len(t.Text) < 3 || len(t.Text) > 4 {
		return false
	}
	return strings.ToUpper(t.Text) == t.Text
}

// matchTimeRange reads CLOCK (- | to) CLOCK with optional spacing.
func matchTimeRange(toks []Token, i int) (int, bool) {
	if i+2 >= len(toks) || toks[i].Kind != TokClock {
		return 0, false
	}
	sep := toks[i+1]
	if sep.Kind != TokDash && !(sep.Kind == TokWord && strings.EqualFold(sep.Text, "to")) {
		return 0, false
	}
	if toks[i+2].Kind != TokClock {
		return 0, false
	}
	return i + 3, true
}

func isNameToken(t Token) bool {
	switch t.Kind {
	case TokWord, TokNumber, TokClock, TokDash:
		return true
	case TokPunct:
		return strings.ContainsAny(t.Text, "().:")
	}
	return false
}

func isLocationToken(t Token) bool {
	switch t.Kind {
	case TokWord, TokNumber, TokDash, TokSlash:
		return true
	case TokPunct:
		return t.Text == "(" || t.Text == ")"
	}
	return false
}

// span returns the source text covered by toks[from:to].
func span(src string, toks []Token, from, to int) string {
	return src[toks[from].Start:toks[to-1].End]
}

// matchPrimary reads CODE NAME TIME [LOCATION]. The name is the shortest run
// of name tokens followed by a whitespace-separated time range. The location
// is the longest run of location tokens that does not start another entry.
func matchPrimary(src string, toks []Token, i int) (CourseEntry, int, bool) {
	entry, end, ok := matchPrimaryHead(src, toks, i)
	if !ok {
		return CourseEntry{}, 0, false
	}
	if loc, next, ok := matchLocation(src, toks, end); ok {
		entry.Location = loc
		end = next
	}
	return entry, end, true
}

// matchPrimaryHead reads CODE NAME TIME, leaving the location unset.
func matchPrimaryHead(src string, toks []Token, i int) (CourseEntry, int, bool) {
	code, j, ok := matchCode(toks, i)
	if !ok || j >= len(toks) || !toks[j].Space {
		return CourseEntry{}, 0, false
	}

	for m := j; m < len(toks); m++ {
		if m > j && toks[m].Space {
			if end, ok := matchTimeRange(toks, m); ok {
				return CourseEntry{
					Code:     code,
					Name:     span(src, toks, j, m),
					Time:     NormalizeTime(span(src, toks, m, end)),
					Location: LocationUnavailable,
				}, end, true
			}
		}
		if !isNameToken(toks[m]) {
			break
		}
	}
	return CourseEntry{}, 0, false
}

// startsEntry reports whether a primary or fallback entry begins at toks[i].
// A code-shaped room such as "LAB 101" does not, unless a time follows it.
func startsEntry(src string, toks []Token, i int) bool {
	if _, _, ok := matchPrimaryHead(src, toks, i); ok {
		return true
	}
	_, _, ok := matchFallback(src, toks, i)
	return ok
}

func matchLocation(src string, toks []Token, i int) (string, int, bool) {
	if i >= len(toks) || !toks[i].Space {
		return "", 0, false
	}
	j := i
	for j < len(toks) && isLocationToken(toks[j]) {
		if startsEntry(src, toks, j) {
			break
		}
		j++
	}
	if j == i {
		return "", 0, false
	}
	return span(src, toks, i, j), j, true
}

// matchFallback reads CODE [Lec N] TIME.
func matchFallback(src string, toks []Token, i int) (CourseEntry, int, bool) {
	code, j, ok := matchCode(toks, i)
	if !ok || j >= len(toks) || !toks[j].Space {
		return CourseEntry{}, 0, false
	}
	timeAt := j
	if j+2 < len(toks) && toks[j].Kind == TokWord && strings.EqualFold(toks[j].Text, "lec") &&
		toks[j+1].Kind == TokNumber && toks[j+1].Space && toks[j+2].Space {
		if _, ok := matchTimeRange(toks, j+2); ok {
			timeAt = j + 2
		}
	}
	end, ok := matchTimeRange(toks, timeAt)
	if !ok {
		return CourseEntry{}, 0, false
	}
	return CourseEntry{
		Code:     code,
		Name:     NameUnavailable,
		Time:     NormalizeTime(span(src, toks, timeAt, end)),
		Location: LocationUnavailable,
	}, end, true
}

type matcher func(src string, toks []Token, i int) (CourseEntry, int, bool)

// scanAll applies match at every token position, resuming after each match.
func scanAll(src string, toks []Token, match matcher) []CourseEntry {
	var out []CourseEntry
	for i := 0; i < len(toks); {
		entry, next, ok := match(src, toks, i)
		if !ok {
			i++
			continue
		}
		out = append(out, entry)
		i = next
	}
	return out
}
