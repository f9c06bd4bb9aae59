package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/journalhq/trade-journal/assistant-engine/internal/audit"
	"github.com/journalhq/trade-journal/assistant-engine/internal/replay"
)

// #endregion imports

// #region main

// fixture-export turns a recorded command log into a replay fixture: the
// messages become the fixture's message sequence and the recorded outcomes
// become its expectations, so a live session can be rerun as a regression.
func main() {
	dbPath := flag.String("db", "", "path to assistant_log.db")
	last := flag.Int("last", 50, "export N most recent messages")
	out := flag.String("out", "", "output fixture path (default stdout)")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db path/to/assistant_log.db [--last N] [--out fixture.json]")
		os.Exit(2)
	}

	commandLog, err := audit.NewLog(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer commandLog.Close()

	entries, err := commandLog.ListRecent(*last)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list: %v\n", err)
		os.Exit(1)
	}
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "no messages recorded")
		os.Exit(1)
	}

	fixture := buildFixture(entries)

	data, err := json.MarshalIndent(fixture, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", *out, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %d messages to %s\n", len(fixture.Messages), *out)
}

// #endregion main

// #region build

// buildFixture converts log entries (newest first) into a fixture with
// messages in original submission order.
func buildFixture(entries []audit.Entry) replay.Fixture {
	f := replay.Fixture{
		Description: "exported from command log",
	}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		msg := replay.FixtureMessage{
			Text:          e.RawText,
			ExpectOverall: e.OverallOK,
		}
		for _, a := range e.Actions {
			msg.Expected = append(msg.Expected, replay.FixtureExpectation{
				Category: a.Category,
				Outcome:  a.Outcome,
				Value:    a.Expected,
			})
		}
		f.Messages = append(f.Messages, msg)
	}
	return f
}

// #endregion build
