package plan

// #region imports
import (
	"log"

	"github.com/google/uuid"
	"github.com/journalhq/trade-journal/assistant-engine/internal/intent"
	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region types

// Action is the resolver's committed, vocabulary-normalized decision for
// one category. At most one exists per category per message.
type Action struct {
	Category vocab.Category
	Value    string
}

// Plan is the ordered action list derived from one message.
// Navigation, when present, is always first: it changes which page owns
// the stores the remaining actions must land on.
type Plan struct {
	ID      string
	Actions []Action
}

// Find returns the action for cat, if the plan contains one.
func (p Plan) Find(cat vocab.Category) (Action, bool) {
	for _, a := range p.Actions {
		if a.Category == cat {
			return a, true
		}
	}
	return Action{}, false
}

// #endregion types

// #region resolve

// Resolve selects one canonical action per category from the extractor's
// candidates. Selection order: highest confidence, then longest matched
// span, then first-seen by extractor order. Candidates whose value falls
// outside the supported vocabulary are dropped and the dimension is left
// unchanged.
func Resolve(candidates []intent.Candidate) Plan {
	winners := make(map[vocab.Category]intent.Candidate)

	for _, c := range candidates {
		value, ok := vocab.Canonicalize(c.Category, c.Value)
		if !ok {
			log.Printf("[PLAN] drop candidate %s=%q: outside supported vocabulary", c.Category, c.Value)
			continue
		}
		c.Value = value

		cur, seen := winners[c.Category]
		if !seen {
			winners[c.Category] = c
			continue
		}
		if c.Confidence == cur.Confidence {
			log.Printf("[PLAN] ambiguous %s: %q vs %q at confidence %.2f", c.Category, cur.Phrase, c.Phrase, c.Confidence)
		}
		if beats(c, cur) {
			winners[c.Category] = c
		}
	}

	p := Plan{ID: uuid.New().String()}
	for _, cat := range vocab.Categories {
		if w, ok := winners[cat]; ok {
			p.Actions = append(p.Actions, Action{Category: cat, Value: w.Value})
		}
	}
	return p
}

// beats reports whether challenger displaces incumbent. Extractor order is
// the final tie-break, so equal candidates never displace.
func beats(challenger, incumbent intent.Candidate) bool {
	if challenger.Confidence != incumbent.Confidence {
		return challenger.Confidence > incumbent.Confidence
	}
	return challenger.Span.Len() > incumbent.Span.Len()
}

// #endregion resolve
