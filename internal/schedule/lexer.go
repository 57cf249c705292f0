package schedule

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a lexed token.
type TokenKind int

const (
	TokWord   TokenKind = iota // run of ASCII letters
	TokNumber                  // run of ASCII digits
	TokClock                   // H:MM or HH:MM, optionally with an attached a/am/p/pm
	TokDash
	TokSlash
	TokPunct // any other single character
)

func (k TokenKind) String() string {
	switch k {
	case TokWord:
		return "word"
	case TokNumber:
		return "number"
	case TokClock:
		return "clock"
	case TokDash:
		return "dash"
	case TokSlash:
		return "slash"
	default:
		return "punct"
	}
}

// Token is a lexeme with its byte span in the source text.
type Token struct {
	Kind  TokenKind
	Text  string
	Start int
	End   int
	// Space is set when whitespace separates the token from the previous one.
	// The first token of a line only has it when the line is indented.
	Space bool
}

// Lex splits s into tokens. Whitespace (including newlines) is dropped and
// recorded on the following token. Lex never fails; unrecognized characters
// become TokPunct.
func Lex(s string) []Token {
	var toks []Token
	space := false
	emit := func(kind TokenKind, start, end int) {
		toks = append(toks, Token{Kind: kind, Text: s[start:end], Start: start, End: end, Space: space})
		space = false
	}

	for i := 0; i < len(s); {
		r, w := utf8.DecodeRuneInString(s[i:])
		switch {
		case unicode.IsSpace(r):
			space = true
			i += w
		case isASCIILetter(s[i]):
			j := scanWhile(s, i, isASCIILetter)
			emit(TokWord, i, j)
			i = j
		case isASCIIDigit(s[i]):
			j := scanWhile(s, i, isASCIIDigit)
			if end, ok := scanClock(s, i, j); ok {
				emit(TokClock, i, end)
				i = end
				continue
			}
			emit(TokNumber, i, j)
			i = j
		case s[i] == '-':
			emit(TokDash, i, i+1)
			i++
		case s[i] == '/':
			emit(TokSlash, i, i+1)
			i++
		default:
			emit(TokPunct, i, i+w)
			i += w
		}
	}
	return toks
}

// scanClock tries to read ":MM" plus an optional meridiem after the hour
// digits s[start:hourEnd].
func scanClock(s string, start, hourEnd int) (int, bool) {
	if hourEnd-start > 2 || hourEnd+3 > len(s) || s[hourEnd] != ':' {
		return 0, false
	}
	if !isASCIIDigit(s[hourEnd+1]) || !isASCIIDigit(s[hourEnd+2]) {
		return 0, false
	}
	end := hourEnd + 3
	suffixEnd := scanWhile(s, end, isASCIILetter)
	if isMeridiem(s[end:suffixEnd]) {
		end = suffixEnd
	}
	return end, true
}

func isMeridiem(s string) bool {
	switch strings.ToLower(s) {
	case "a", "am", "p", "pm":
		return true
	}
	return false
}

func scanWhile(s string, i int, pred func(byte) bool) int {
	for i < len(s) && pred(s[i]) {
		i++
	}
	return i
}

func isASCIILetter(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }
func isASCIIDigit(b byte) bool  { return b >= '0' && b <= '9' }
