package vocab

// #region imports
import (
	"fmt"
	"strings"
	"time"
)

// #endregion imports

// #region category

// Category identifies one independently-owned UI dimension, or navigation.
type Category string

const (
	CategoryNavigation  Category = "navigation"
	CategoryDisplayMode Category = "display_mode"
	CategoryDateRange   Category = "date_range"
	CategoryPnLMode     Category = "pnl_mode"
)

// Categories lists every category in dispatch order (navigation first).
var Categories = []Category{
	CategoryNavigation,
	CategoryDisplayMode,
	CategoryDateRange,
	CategoryPnLMode,
}

// Label returns the human-readable name used in report summaries.
func (c Category) Label() string {
	switch c {
	case CategoryNavigation:
		return "page"
	case CategoryDisplayMode:
		return "display mode"
	case CategoryDateRange:
		return "date range"
	case CategoryPnLMode:
		return "P&L mode"
	}
	return string(c)
}

// #endregion category

// #region display-mode

// Display mode canonical tokens.
const (
	DisplayDollar    = "dollar"
	DisplayPercent   = "percent"
	DisplayRMultiple = "r_multiple"
)

// #endregion display-mode

// #region pnl-mode

// P&L mode canonical tokens.
const (
	PnLGross = "gross"
	PnLNet   = "net"
)

// #endregion pnl-mode

// #region date-range

// Date range canonical tokens. Custom ranges use the custom:<start>:<end>
// form produced by CustomRange.
const (
	RangeDay     = "day"
	RangeWeek    = "week"
	RangeMonth   = "month"
	RangeQuarter = "quarter"
	RangeYear    = "year"
	RangeYTD     = "ytd"
	RangeAll     = "all"
)

const customPrefix = "custom:"

const customDateLayout = "2006-01-02"

// CustomRange encodes an explicit calendar range as a single canonical token.
func CustomRange(start, end time.Time) string {
	return fmt.Sprintf("custom:%s:%s", start.Format(customDateLayout), end.Format(customDateLayout))
}

// ParseCustomRange decodes a custom:<start>:<end> token.
// ok is false when v is not a well-formed custom range.
func ParseCustomRange(v string) (start, end time.Time, ok bool) {
	if !strings.HasPrefix(v, customPrefix) {
		return time.Time{}, time.Time{}, false
	}
	parts := strings.Split(v, ":")
	if len(parts) != 3 {
		return time.Time{}, time.Time{}, false
	}
	start, err := time.Parse(customDateLayout, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	end, err = time.Parse(customDateLayout, parts[2])
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

// #endregion date-range

// #region routes

// Dashboard route targets.
const (
	RouteDashboard  = "dashboard"
	RouteStatistics = "statistics"
	RouteTrades     = "trades"
	RouteCalendar   = "calendar"
	RouteReports    = "reports"
)

// #endregion routes

// #region canonical-sets

var canonical = map[Category]map[string]bool{
	CategoryNavigation: {
		RouteDashboard:  true,
		RouteStatistics: true,
		RouteTrades:     true,
		RouteCalendar:   true,
		RouteReports:    true,
	},
	CategoryDisplayMode: {
		DisplayDollar:    true,
		DisplayPercent:   true,
		DisplayRMultiple: true,
	},
	CategoryDateRange: {
		RangeDay:     true,
		RangeWeek:    true,
		RangeMonth:   true,
		RangeQuarter: true,
		RangeYear:    true,
		RangeYTD:     true,
		RangeAll:     true,
	},
	CategoryPnLMode: {
		PnLGross: true,
		PnLNet:   true,
	},
}

// #endregion canonical-sets

// #region synonyms

// synonyms maps accepted spellings to canonical tokens. Extractor rules emit
// canonical values where they can; this table is the single normalization
// point for everything else, so stores never see a synonym.
var synonyms = map[Category]map[string]string{
	CategoryNavigation: {
		"stats":     RouteStatistics,
		"statistic": RouteStatistics,
		"home":      RouteDashboard,
		"overview":  RouteDashboard,
		"journal":   RouteTrades,
		"trade log": RouteTrades,
		"report":    RouteReports,
	},
	CategoryDisplayMode: {
		"dollars":       DisplayDollar,
		"usd":           DisplayDollar,
		"$":             DisplayDollar,
		"%":             DisplayPercent,
		"percentage":    DisplayPercent,
		"pct":           DisplayPercent,
		"r":             DisplayRMultiple,
		"r multiple":    DisplayRMultiple,
		"risk multiple": DisplayRMultiple,
	},
	CategoryDateRange: {
		"today":        RangeDay,
		"daily":        RangeDay,
		"weekly":       RangeWeek,
		"this week":    RangeWeek,
		"monthly":      RangeMonth,
		"this month":   RangeMonth,
		"this quarter": RangeQuarter,
		"yearly":       RangeYear,
		"year to date": RangeYTD,
		"this year":    RangeYTD,
		"all time":     RangeAll,
		"everything":   RangeAll,
	},
	CategoryPnLMode: {
		"net pnl":     PnLNet,
		"after fees":  PnLNet,
		"net of fees": PnLNet,
		"gross pnl":   PnLGross,
		"before fees": PnLGross,
	},
}

// #endregion synonyms

// #region canonicalize

// Canonicalize normalizes raw to the canonical token for cat.
// ok is false when raw is outside the supported vocabulary.
func Canonicalize(cat Category, raw string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return "", false
	}
	if canonical[cat][v] {
		return v, true
	}
	if mapped, found := synonyms[cat][v]; found {
		return mapped, true
	}
	if cat == CategoryDateRange {
		if _, _, customOK := ParseCustomRange(v); customOK {
			return v, true
		}
	}
	return "", false
}

// Valid reports whether value is already canonical for cat.
func Valid(cat Category, value string) bool {
	got, ok := Canonicalize(cat, value)
	return ok && got == value
}

// #endregion canonicalize
