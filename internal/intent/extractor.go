package intent

// #region imports
import (
	"strings"
	"time"
)

// #endregion imports

// #region extractor

// Extractor turns raw text into candidate intents via whole-token phrase
// matching. Extraction is deterministic: candidate order is rule declaration
// order, and confidence comes from the matching rule's weight.
type Extractor struct {
	now func() time.Time
}

// NewExtractor creates an extractor on the wall clock.
func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

// NewExtractorWithClock creates an extractor with an injected clock,
// used to pin relative date ranges in tests and replays.
func NewExtractorWithClock(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

// #endregion extractor

// #region extract

// Extract returns every candidate intent found in text. No match for a
// category is not an error: that dimension is simply left unchanged.
func (e *Extractor) Extract(text string) []Candidate {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	var candidates []Candidate
	for _, r := range rules {
		for _, span := range matchPhrase(tokens, r.phrase) {
			value := r.value
			if r.resolve != nil {
				value = r.resolve(e.now())
			}
			candidates = append(candidates, Candidate{
				Category:   r.category,
				Value:      value,
				Confidence: r.weight,
				Span:       span,
				Phrase:     strings.Join(r.phrase, " "),
			})
		}
	}
	return candidates
}

// #endregion extract

// #region match

// matchPhrase returns the byte span of every occurrence of phrase as a
// consecutive whole-token sequence. Substring containment never matches:
// "r" inside "year" is a different token and cannot fire.
func matchPhrase(tokens []token, phrase []string) []Span {
	var spans []Span
	for i := 0; i+len(phrase) <= len(tokens); i++ {
		matched := true
		for j, word := range phrase {
			if tokens[i+j].text != word {
				matched = false
				break
			}
		}
		if matched {
			spans = append(spans, Span{Start: tokens[i].start, End: tokens[i+len(phrase)-1].end})
		}
	}
	return spans
}

// #endregion match
