package replay

// #region imports
import (
	"encoding/json"
	"fmt"
	"os"
)

// #endregion imports

// #region fixture-types

// Fixture is the top-level JSON structure for a replay run: a scripted
// dashboard (routes and stores) plus a message sequence with expected
// per-action outcomes.
type Fixture struct {
	Description string           `json:"description"`
	Clock       string           `json:"clock"` // RFC3339; empty = wall clock
	StartRoute  string           `json:"start_route"`
	Routes      []string         `json:"routes"`
	Stores      []FixtureStore   `json:"stores"`
	Messages    []FixtureMessage `json:"messages"`
}

// FixtureStore describes one scripted state store.
type FixtureStore struct {
	Category  string   `json:"category"`
	Initial   string   `json:"initial"`
	Accepts   []string `json:"accepts,omitempty"`
	Unmounted bool     `json:"unmounted,omitempty"`
}

// FixtureMessage is one user message with its expected outcomes.
type FixtureMessage struct {
	Text          string               `json:"text"`
	ExpectOverall bool                 `json:"expect_overall"`
	Expected      []FixtureExpectation `json:"expected,omitempty"`
}

// FixtureExpectation asserts the outcome for one category of the message's
// plan. Value, when set, additionally asserts the canonical expected value.
type FixtureExpectation struct {
	Category string `json:"category"`
	Outcome  string `json:"outcome"`
	Value    string `json:"value,omitempty"`
}

// #endregion fixture-types

// #region load

// LoadFixture reads and parses a fixture JSON file.
func LoadFixture(path string) (Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fixture{}, fmt.Errorf("read fixture: %w", err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return Fixture{}, fmt.Errorf("parse fixture: %w", err)
	}
	if len(f.Messages) == 0 {
		return Fixture{}, fmt.Errorf("fixture has no messages")
	}
	return f, nil
}

// #endregion load
