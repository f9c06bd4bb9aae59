package intent

// #region imports
import (
	"strings"
	"unicode"
)

// #endregion imports

// #region token

// token is one lower-cased word with its byte position in the raw message.
type token struct {
	text  string
	start int
	end   int
}

// #endregion token

// #region tokenize

// tokenize splits text into lower-cased whole-word tokens with byte offsets.
// Letter/digit runs form one token; '$' and '%' are emitted as single-rune
// tokens so "switch to $" stays matchable. All rule matching runs against
// this token sequence — never against the raw string — so a pattern like
// "r" can only ever match an isolated word, not the inside of "year".
func tokenize(text string) []token {
	var tokens []token
	var cur strings.Builder
	curStart := -1

	flush := func(end int) {
		if curStart >= 0 {
			tokens = append(tokens, token{text: cur.String(), start: curStart, end: end})
			cur.Reset()
			curStart = -1
		}
	}

	for i, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if curStart < 0 {
				curStart = i
			}
			cur.WriteRune(unicode.ToLower(r))
		case r == '$' || r == '%':
			flush(i)
			tokens = append(tokens, token{text: string(r), start: i, end: i + 1})
		default:
			flush(i)
		}
	}
	flush(len(text))
	return tokens
}

// #endregion tokenize
