package schedule

// ExtractRegisteredCodes collects the course codes from registration text.
//
// Registration slips usually number their rows ("1 CSC 201 ..."), so codes
// preceded by any number and whitespace are collected first. The number may
// itself end a code: in "CSC 201 CSC 205" only CSC 205 is anchored. When no
// anchored code is found, every code in the text counts instead.
func ExtractRegisteredCodes(text string) CodeSet {
	toks := Lex(text)

	codes := NewCodeSet()
	for i := 0; i < len(toks); {
		if toks[i].Kind == TokNumber && i+1 < len(toks) && toks[i+1].Space {
			if code, next, ok := matchCode(toks, i+1); ok {
				codes.Add(code)
				i = next
				continue
			}
		}
		i++
	}
	if codes.Len() > 0 {
		return codes
	}

	for i := 0; i < len(toks); {
		if code, next, ok := matchCode(toks, i); ok {
			codes.Add(code)
			i = next
			continue
		}
		i++
	}
	return codes
}
