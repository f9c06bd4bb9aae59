package intent

// #region imports
import (
	"time"

	"github.com/journalhq/trade-journal/assistant-engine/internal/vocab"
)

// #endregion imports

// #region rule

// rule matches a whole-token phrase and proposes a canonical value.
// Either value or resolve is set; resolve computes clock-dependent values
// (explicit calendar ranges) at match time.
type rule struct {
	phrase   []string
	category vocab.Category
	value    string
	resolve  func(now time.Time) string
	weight   float32
}

// #endregion rule

// #region rule-table

// rules is the full extraction table, most specific phrases first within
// each category. Longer phrases carry higher weights so "risk multiple"
// outranks "r multiple" outranks bare "r"; exact ties fall back to
// declaration order. Values are canonical vocabulary tokens.
var rules = []rule{
	// Navigation
	{phrase: []string{"trade", "log"}, category: vocab.CategoryNavigation, value: vocab.RouteTrades, weight: 0.85},
	{phrase: []string{"statistics"}, category: vocab.CategoryNavigation, value: vocab.RouteStatistics, weight: 0.8},
	{phrase: []string{"stats"}, category: vocab.CategoryNavigation, value: vocab.RouteStatistics, weight: 0.75},
	{phrase: []string{"dashboard"}, category: vocab.CategoryNavigation, value: vocab.RouteDashboard, weight: 0.8},
	{phrase: []string{"overview"}, category: vocab.CategoryNavigation, value: vocab.RouteDashboard, weight: 0.6},
	{phrase: []string{"calendar"}, category: vocab.CategoryNavigation, value: vocab.RouteCalendar, weight: 0.8},
	{phrase: []string{"reports"}, category: vocab.CategoryNavigation, value: vocab.RouteReports, weight: 0.8},
	{phrase: []string{"trades"}, category: vocab.CategoryNavigation, value: vocab.RouteTrades, weight: 0.7},
	{phrase: []string{"journal"}, category: vocab.CategoryNavigation, value: vocab.RouteTrades, weight: 0.6},

	// Display mode
	{phrase: []string{"risk", "multiple"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayRMultiple, weight: 0.95},
	{phrase: []string{"r", "multiple"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayRMultiple, weight: 0.9},
	{phrase: []string{"r", "multiples"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayRMultiple, weight: 0.9},
	{phrase: []string{"r", "mode"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayRMultiple, weight: 0.9},
	{phrase: []string{"switch", "to", "r"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayRMultiple, weight: 0.9},
	{phrase: []string{"in", "r"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayRMultiple, weight: 0.85},
	{phrase: []string{"as", "r"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayRMultiple, weight: 0.85},
	{phrase: []string{"r"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayRMultiple, weight: 0.5},
	{phrase: []string{"dollar", "mode"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayDollar, weight: 0.9},
	{phrase: []string{"dollars"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayDollar, weight: 0.8},
	{phrase: []string{"dollar"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayDollar, weight: 0.8},
	{phrase: []string{"usd"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayDollar, weight: 0.7},
	{phrase: []string{"$"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayDollar, weight: 0.7},
	{phrase: []string{"percent", "mode"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayPercent, weight: 0.9},
	{phrase: []string{"percentage"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayPercent, weight: 0.8},
	{phrase: []string{"percent"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayPercent, weight: 0.8},
	{phrase: []string{"pct"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayPercent, weight: 0.7},
	{phrase: []string{"%"}, category: vocab.CategoryDisplayMode, value: vocab.DisplayPercent, weight: 0.7},

	// Date range: explicit calendar ranges first (clock-resolved)
	{phrase: []string{"last", "quarter", "through", "today"}, category: vocab.CategoryDateRange, resolve: lastQuarterThroughToday, weight: 0.97},
	{phrase: []string{"last", "month", "through", "today"}, category: vocab.CategoryDateRange, resolve: lastMonthThroughToday, weight: 0.97},
	{phrase: []string{"last", "week", "through", "today"}, category: vocab.CategoryDateRange, resolve: lastWeekThroughToday, weight: 0.97},
	{phrase: []string{"last", "quarter"}, category: vocab.CategoryDateRange, resolve: lastQuarter, weight: 0.88},
	{phrase: []string{"last", "month"}, category: vocab.CategoryDateRange, resolve: lastMonth, weight: 0.88},
	{phrase: []string{"last", "week"}, category: vocab.CategoryDateRange, resolve: lastWeek, weight: 0.88},
	{phrase: []string{"last", "year"}, category: vocab.CategoryDateRange, resolve: lastYear, weight: 0.88},

	// Date range: enumerated tokens
	{phrase: []string{"year", "to", "date"}, category: vocab.CategoryDateRange, value: vocab.RangeYTD, weight: 0.95},
	{phrase: []string{"ytd"}, category: vocab.CategoryDateRange, value: vocab.RangeYTD, weight: 0.9},
	{phrase: []string{"this", "year"}, category: vocab.CategoryDateRange, value: vocab.RangeYTD, weight: 0.85},
	{phrase: []string{"all", "time"}, category: vocab.CategoryDateRange, value: vocab.RangeAll, weight: 0.9},
	{phrase: []string{"everything"}, category: vocab.CategoryDateRange, value: vocab.RangeAll, weight: 0.6},
	{phrase: []string{"this", "week"}, category: vocab.CategoryDateRange, value: vocab.RangeWeek, weight: 0.85},
	{phrase: []string{"this", "month"}, category: vocab.CategoryDateRange, value: vocab.RangeMonth, weight: 0.85},
	{phrase: []string{"this", "quarter"}, category: vocab.CategoryDateRange, value: vocab.RangeQuarter, weight: 0.85},
	{phrase: []string{"today"}, category: vocab.CategoryDateRange, value: vocab.RangeDay, weight: 0.8},
	{phrase: []string{"daily"}, category: vocab.CategoryDateRange, value: vocab.RangeDay, weight: 0.7},
	{phrase: []string{"weekly"}, category: vocab.CategoryDateRange, value: vocab.RangeWeek, weight: 0.7},
	{phrase: []string{"monthly"}, category: vocab.CategoryDateRange, value: vocab.RangeMonth, weight: 0.7},
	{phrase: []string{"quarterly"}, category: vocab.CategoryDateRange, value: vocab.RangeQuarter, weight: 0.7},
	{phrase: []string{"yearly"}, category: vocab.CategoryDateRange, value: vocab.RangeYear, weight: 0.7},
	{phrase: []string{"day"}, category: vocab.CategoryDateRange, value: vocab.RangeDay, weight: 0.5},
	{phrase: []string{"week"}, category: vocab.CategoryDateRange, value: vocab.RangeWeek, weight: 0.5},
	{phrase: []string{"month"}, category: vocab.CategoryDateRange, value: vocab.RangeMonth, weight: 0.5},
	{phrase: []string{"quarter"}, category: vocab.CategoryDateRange, value: vocab.RangeQuarter, weight: 0.5},
	{phrase: []string{"year"}, category: vocab.CategoryDateRange, value: vocab.RangeYear, weight: 0.4},

	// P&L mode
	{phrase: []string{"net", "of", "fees"}, category: vocab.CategoryPnLMode, value: vocab.PnLNet, weight: 0.95},
	{phrase: []string{"after", "fees"}, category: vocab.CategoryPnLMode, value: vocab.PnLNet, weight: 0.9},
	{phrase: []string{"before", "fees"}, category: vocab.CategoryPnLMode, value: vocab.PnLGross, weight: 0.9},
	{phrase: []string{"net", "pnl"}, category: vocab.CategoryPnLMode, value: vocab.PnLNet, weight: 0.9},
	{phrase: []string{"gross", "pnl"}, category: vocab.CategoryPnLMode, value: vocab.PnLGross, weight: 0.9},
	{phrase: []string{"net"}, category: vocab.CategoryPnLMode, value: vocab.PnLNet, weight: 0.7},
	{phrase: []string{"gross"}, category: vocab.CategoryPnLMode, value: vocab.PnLGross, weight: 0.7},
}

// #endregion rule-table
