package intent

// #region imports
import (
	"time"

	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region period-starts

// startOfDay truncates t to midnight in its location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// startOfWeek returns the Monday of t's week.
func startOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	return d.AddDate(0, 0, -offset)
}

// startOfMonth returns the first day of t's month.
func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// startOfQuarter returns the first day of t's calendar quarter.
func startOfQuarter(t time.Time) time.Time {
	qMonth := time.Month(((int(t.Month())-1)/3)*3 + 1)
	return time.Date(t.Year(), qMonth, 1, 0, 0, 0, 0, t.Location())
}

// #endregion period-starts

// #region relative-ranges

// Relative phrases resolve to literal calendar dates at match time, against
// the extractor's clock, so the resulting action carries explicit dates.

func lastWeekThroughToday(now time.Time) string {
	return vocab.CustomRange(startOfWeek(now).AddDate(0, 0, -7), startOfDay(now))
}

func lastMonthThroughToday(now time.Time) string {
	return vocab.CustomRange(startOfMonth(now).AddDate(0, -1, 0), startOfDay(now))
}

func lastQuarterThroughToday(now time.Time) string {
	return vocab.CustomRange(startOfQuarter(now).AddDate(0, -3, 0), startOfDay(now))
}

func lastWeek(now time.Time) string {
	start := startOfWeek(now).AddDate(0, 0, -7)
	return vocab.CustomRange(start, startOfWeek(now).AddDate(0, 0, -1))
}

func lastMonth(now time.Time) string {
	start := startOfMonth(now).AddDate(0, -1, 0)
	return vocab.CustomRange(start, startOfMonth(now).AddDate(0, 0, -1))
}

func lastQuarter(now time.Time) string {
	start := startOfQuarter(now).AddDate(0, -3, 0)
	return vocab.CustomRange(start, startOfQuarter(now).AddDate(0, 0, -1))
}

func lastYear(now time.Time) string {
	start := time.Date(now.Year()-1, time.January, 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year()-1, time.December, 31, 0, 0, 0, 0, now.Location())
	return vocab.CustomRange(start, end)
}

// #endregion relative-ranges
