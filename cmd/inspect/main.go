package main

// #region imports
import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/journalhq/trade-journal/assistant-engine/internal/audit"
)

// #endregion imports

// #region main

func main() {
	dbPath := flag.String("db", "", "path to assistant_log.db")
	last := flag.Int("last", 20, "show N most recent messages")
	jsonOut := flag.Bool("json", false, "output as JSON instead of text")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/assistant_log.db [--last N] [--json]")
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

	if *jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			os.Exit(1)
		}
		return
	}

	for _, e := range entries {
		status := "ok"
		if !e.OverallOK {
			status = "FAIL"
		}
		fmt.Printf("%s  [%s]  %q\n", e.CreatedAt.Format("2006-01-02 15:04:05"), status, e.RawText)
		fmt.Printf("    %s\n", e.Summary)
		for _, a := range e.Actions {
			observed := a.Observed
			if observed == "" {
				observed = "-"
			}
			fmt.Printf("    %-12s %-11s expected=%s observed=%s\n",
				a.Category, a.Outcome, a.Expected, observed)
		}
		fmt.Println()
	}
}

// #endregion main
