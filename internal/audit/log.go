package audit

// #region imports
import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/journalhq/trade-journal/assistant-engine/internal/plan"
	"github.com/journalhq/trade-journal/assistant-engine/internal/verify"
)

// #endregion imports

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS messages (
	message_id  TEXT PRIMARY KEY,
	plan_id     TEXT NOT NULL,
	raw_text    TEXT NOT NULL,
	overall_ok  INTEGER NOT NULL,
	summary     TEXT NOT NULL,
	created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS actions (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	plan_id     TEXT NOT NULL,
	category    TEXT NOT NULL,
	expected    TEXT NOT NULL,
	observed    TEXT,
	outcome     TEXT NOT NULL,
	settled     INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_actions_plan ON actions(plan_id);
`

// #endregion schema

// #region log-struct

// Log persists every submitted message, its resolved plan, and the observed
// per-action outcomes in SQLite.
type Log struct {
	db *sql.DB
}

// #endregion log-struct

// #region constructor

// NewLog opens a SQLite database and runs migrations.
func NewLog(dbPath string) (*Log, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Log{db: db}, nil
}

// Close closes the underlying database connection.
func (l *Log) Close() error {
	return l.db.Close()
}

// DB returns the underlying *sql.DB for use by inspection tooling.
func (l *Log) DB() *sql.DB {
	return l.db
}

// #endregion constructor

// #region record

// Record writes one message with its plan outcome atomically.
func (l *Log) Record(raw string, p plan.Plan, rep verify.Report) error {
	tx, err := l.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO messages (message_id, plan_id, raw_text, overall_ok, summary, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), p.ID, raw, boolToInt(rep.OverallSuccess), rep.SummaryText,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}

	for _, r := range rep.Records {
		_, err = tx.Exec(
			`INSERT INTO actions (plan_id, category, expected, observed, outcome, settled)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, string(r.Action.Category), r.Expected, nullIfEmpty(r.Observed),
			string(r.Outcome), boolToInt(r.Settled),
		)
		if err != nil {
			return fmt.Errorf("insert action: %w", err)
		}
	}

	return tx.Commit()
}

// #endregion record

// #region entries

// ActionRow is one persisted verification record.
type ActionRow struct {
	Category string
	Expected string
	Observed string
	Outcome  string
	Settled  bool
}

// Entry is one persisted message with its action outcomes.
type Entry struct {
	MessageID string
	PlanID    string
	RawText   string
	OverallOK bool
	Summary   string
	CreatedAt time.Time
	Actions   []ActionRow
}

// ListRecent returns the most recent messages with their actions.
func (l *Log) ListRecent(limit int) ([]Entry, error) {
	rows, err := l.db.Query(
		`SELECT message_id, plan_id, raw_text, overall_ok, summary, created_at
		 FROM messages ORDER BY created_at DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var ok int
		var createdStr string
		if err := rows.Scan(&e.MessageID, &e.PlanID, &e.RawText, &ok, &e.Summary, &createdStr); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		e.OverallOK = ok != 0
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range entries {
		actions, err := l.listActions(entries[i].PlanID)
		if err != nil {
			return nil, err
		}
		entries[i].Actions = actions
	}
	return entries, nil
}

func (l *Log) listActions(planID string) ([]ActionRow, error) {
	rows, err := l.db.Query(
		`SELECT category, expected, observed, outcome, settled
		 FROM actions WHERE plan_id = ? ORDER BY id ASC`, planID,
	)
	if err != nil {
		return nil, fmt.Errorf("list actions: %w", err)
	}
	defer rows.Close()

	var actions []ActionRow
	for rows.Next() {
		var a ActionRow
		var observed sql.NullString
		var settled int
		if err := rows.Scan(&a.Category, &a.Expected, &observed, &a.Outcome, &settled); err != nil {
			return nil, fmt.Errorf("scan action: %w", err)
		}
		if observed.Valid {
			a.Observed = observed.String
		}
		a.Settled = settled != 0
		actions = append(actions, a)
	}
	return actions, rows.Err()
}

// #endregion entries

// #region helpers

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
