package intent

import "github.com/journalhq/trade-journal/assistant-engine/internal/vocab"

// #region span

// Span marks the byte range of the matched phrase in the raw message.
type Span struct {
	Start int
	End   int
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// #endregion span

// #region candidate

// Candidate is one possible interpretation of part of a user message.
// Confidence is the deterministic weight of the rule that produced it,
// not a learned probability.
type Candidate struct {
	Category   vocab.Category
	Value      string
	Confidence float32
	Span       Span
	Phrase     string // matched phrase, for logging and tie-breaks
}

// #endregion candidate
