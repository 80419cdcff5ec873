package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Granularity selects the calendar interval for aggregation.
type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

// Valid reports whether g is a supported granularity.
func (g Granularity) Valid() bool {
	switch g {
	case GranularityWeek, GranularityMonth, GranularityYear:
		return true
	}
	return false
}

// PeriodTotal is one bucket of a time aggregation: the period start date
// and the decimal sum of record amounts in that period. Derived, never
// persisted.
type PeriodTotal struct {
	PeriodStart time.Time       `json:"period_start"`
	Total       decimal.Decimal `json:"total_amount"`
}

// AggregateResult carries the ordered buckets plus the count of records
// excluded because their date did not parse. The exclusion is explicit
// so callers never lose rows silently.
type AggregateResult struct {
	Totals  []PeriodTotal `json:"totals"`
	Skipped int           `json:"skipped_records"`
}

// ForecastPoint is one predicted future monthly total.
type ForecastPoint struct {
	PeriodStart time.Time       `json:"period_start"`
	Predicted   decimal.Decimal `json:"predicted_amount"`
}

// Recommendation is a suggested monthly budget for a category,
// 90% of its historical mean monthly total.
type Recommendation struct {
	Category Category        `json:"category"`
	Monthly  decimal.Decimal `json:"monthly_budget"`
}

// Insight summarizes the full record set.
type Insight struct {
	Total          decimal.Decimal `json:"total"`
	TopCategory    Category        `json:"top_category"`
	AverageMonthly decimal.Decimal `json:"average_monthly"`
	Months         int             `json:"months"`
	Summary        string          `json:"summary"`
}

// MonthComparison compares the two most recent monthly totals.
// A decrease is favorable; an increase prompts review.
type MonthComparison struct {
	Current   decimal.Decimal `json:"current"`
	Previous  decimal.Decimal `json:"previous"`
	ChangePct float64         `json:"change_pct"`
	Favorable bool            `json:"favorable"`
	Message   string          `json:"message"`
}

// CategoryTotal is the sum of amounts for one category.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// TierTotals sums amounts per spending tier across all supplied records.
type TierTotals struct {
	Must decimal.Decimal `json:"must"`
	Need decimal.Decimal `json:"need"`
	Want decimal.Decimal `json:"want"`
}

// TrendPoint is one step of the cumulative spending trend.
type TrendPoint struct {
	Date       time.Time       `json:"date"`
	Cumulative decimal.Decimal `json:"cumulative"`
}
