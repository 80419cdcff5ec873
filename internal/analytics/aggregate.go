// Package analytics implements the expense analytics pipeline:
// time-bucketed aggregation, trend forecasting, anomaly detection,
// budget recommendation, and insight summaries. Every function operates
// on an in-memory snapshot of the record set and has no side effects.
package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"kharcha/internal/dates"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

// PeriodStart returns the bucket start for a date at the given
// granularity: the Monday of the week, the first of the month, or
// January 1st of the year.
func PeriodStart(t time.Time, g models.Granularity) time.Time {
	switch g {
	case models.GranularityWeek:
		offset := (int(t.Weekday()) + 6) % 7 // days since Monday
		day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		return day.AddDate(0, 0, -offset)
	case models.GranularityYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	}
}

// Aggregate buckets records by period and sums their amounts. Records
// whose date fails to parse are excluded and counted in the result;
// buckets with no records do not appear. Output is sorted ascending by
// period start with no duplicate periods.
func Aggregate(records []models.Expense, g models.Granularity) (models.AggregateResult, error) {
	if !g.Valid() {
		return models.AggregateResult{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "granularity must be week, month, or year")
	}

	sums := make(map[time.Time]decimal.Decimal)
	skipped := 0
	for _, record := range records {
		parsed, ok := dates.Parse(record.Date)
		if !ok {
			skipped++
			continue
		}
		start := PeriodStart(parsed, g)
		sums[start] = sums[start].Add(record.Amount)
	}

	totals := make([]models.PeriodTotal, 0, len(sums))
	for start, total := range sums {
		totals = append(totals, models.PeriodTotal{PeriodStart: start, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		return totals[i].PeriodStart.Before(totals[j].PeriodStart)
	})

	return models.AggregateResult{Totals: totals, Skipped: skipped}, nil
}

// Breakdown sums amounts per category across all records, sorted by
// total descending. Categories with no records are absent.
func Breakdown(records []models.Expense) []models.CategoryTotal {
	sums := make(map[models.Category]decimal.Decimal)
	for _, record := range records {
		sums[record.Category] = sums[record.Category].Add(record.Amount)
	}

	breakdown := make([]models.CategoryTotal, 0, len(sums))
	for _, category := range models.Categories {
		if total, ok := sums[category]; ok {
			breakdown = append(breakdown, models.CategoryTotal{Category: category, Total: total})
		}
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total.GreaterThan(breakdown[j].Total)
	})
	return breakdown
}

// BalanceTrend returns the cumulative spend over time for records with
// parseable dates, ordered by date.
func BalanceTrend(records []models.Expense) []models.TrendPoint {
	type dated struct {
		at     time.Time
		amount decimal.Decimal
	}

	parsed := make([]dated, 0, len(records))
	for _, record := range records {
		at, ok := dates.Parse(record.Date)
		if !ok {
			continue
		}
		parsed = append(parsed, dated{at: at, amount: record.Amount})
	}
	sort.SliceStable(parsed, func(i, j int) bool { return parsed[i].at.Before(parsed[j].at) })

	trend := make([]models.TrendPoint, 0, len(parsed))
	running := decimal.Zero
	for _, p := range parsed {
		running = running.Add(p.amount)
		trend = append(trend, models.TrendPoint{Date: p.at, Cumulative: running})
	}
	return trend
}
