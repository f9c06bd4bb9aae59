package main

// #region imports
import (
	"flag"
	"fmt"
	"os"

	"github.com/journalhq/trade-journal/assistant-engine/internal/replay"
)

// #endregion imports

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	verbose := flag.Bool("v", false, "print every record, not just failures")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [-v]")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(2)
	}

	if fixture.Description != "" {
		fmt.Printf("Fixture: %s\n\n", fixture.Description)
	}

	summary, results, err := replay.Run(fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(1)
	}

	for i, res := range results {
		status := "ok"
		if len(res.Failures) > 0 {
			status = "FAIL"
		}
		fmt.Printf("%2d. [%s] %q\n", i+1, status, res.Text)
		fmt.Printf("      %s\n", res.Report.SummaryText)
		if *verbose {
			for _, r := range res.Report.Records {
				fmt.Printf("      %-12s %-11s expected=%s observed=%s\n",
					r.Action.Category, r.Outcome, r.Expected, r.Observed)
			}
		}
		for _, f := range res.Failures {
			fmt.Printf("      expectation failed: %s\n", f)
		}
	}

	fmt.Printf("\n%d messages: %d confirmed, %d unconfirmed, %d mismatches, %d expectation failures\n",
		summary.Messages, summary.Confirmed, summary.Unconfirmed,
		summary.Mismatches, summary.ExpectationFailures)

	if summary.ExpectationFailures > 0 {
		os.Exit(1)
	}
}

// #endregion main
