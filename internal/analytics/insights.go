package analytics

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

// recommendationFactor scales the mean monthly category total into a
// suggested budget.
var recommendationFactor = decimal.NewFromFloat(0.9)

// Recommend suggests a monthly budget per category: 90% of the mean of
// that category's monthly totals. Categories with no parseable-dated
// records produce no entry. Output follows category enumeration order.
func Recommend(records []models.Expense) []models.Recommendation {
	byCategory := make(map[models.Category][]models.Expense)
	for _, record := range records {
		byCategory[record.Category] = append(byCategory[record.Category], record)
	}

	var recommendations []models.Recommendation
	for _, category := range models.Categories {
		group, ok := byCategory[category]
		if !ok {
			continue
		}
		agg, err := Aggregate(group, models.GranularityMonth)
		if err != nil || len(agg.Totals) == 0 {
			continue
		}

		sum := decimal.Zero
		for _, bucket := range agg.Totals {
			sum = sum.Add(bucket.Total)
		}
		mean := sum.Div(decimal.NewFromInt(int64(len(agg.Totals))))
		recommendations = append(recommendations, models.Recommendation{
			Category: category,
			Monthly:  mean.Mul(recommendationFactor).Round(2),
		})
	}
	return recommendations
}

// Insights summarizes the record set: overall total, the category with
// the largest total, and the mean of monthly aggregate totals. The
// summary string is defined for any input, including zero records and
// zero parseable months.
func Insights(records []models.Expense) models.Insight {
	if len(records) == 0 {
		return models.Insight{Total: decimal.Zero, Summary: "No data available."}
	}

	total := decimal.Zero
	for _, record := range records {
		total = total.Add(record.Amount)
	}

	var top models.Category
	breakdown := Breakdown(records)
	if len(breakdown) > 0 {
		top = breakdown[0].Category
	}

	avgMonthly := decimal.Zero
	avgRendered := "N/A"
	agg, err := Aggregate(records, models.GranularityMonth)
	months := 0
	if err == nil && len(agg.Totals) > 0 {
		months = len(agg.Totals)
		sum := decimal.Zero
		for _, bucket := range agg.Totals {
			sum = sum.Add(bucket.Total)
		}
		avgMonthly = sum.Div(decimal.NewFromInt(int64(months))).Round(2)
		avgRendered = models.FormatINR(avgMonthly)
	}

	return models.Insight{
		Total:          total,
		TopCategory:    top,
		AverageMonthly: avgMonthly,
		Months:         months,
		Summary: fmt.Sprintf("Total: %s, Top: %s, Avg(Month): %s",
			models.FormatINR(total), top, avgRendered),
	}
}

// CompareMonths compares the two most recent monthly totals. It reports
// INSUFFICIENT_DATA with fewer than two monthly buckets and
// DIVISION_UNDEFINED when the previous month's total is exactly zero.
// A decrease is favorable; an increase prompts review.
func CompareMonths(records []models.Expense) (*models.MonthComparison, error) {
	agg, err := Aggregate(records, models.GranularityMonth)
	if err != nil {
		return nil, err
	}
	monthly := agg.Totals
	if len(monthly) < 2 {
		return nil, apperrors.WithMessage(apperrors.ErrInsufficientData, "need at least two months of data to compare")
	}

	current := monthly[len(monthly)-1].Total
	previous := monthly[len(monthly)-2].Total
	if previous.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrDivisionUndefined, "no expenses in the previous month to compare")
	}

	change, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(2).Float64()
	favorable := change < 0

	message := "Your expenses increased. Consider reviewing your spending habits."
	if favorable {
		message = "Great job! Your expenses decreased."
	}

	return &models.MonthComparison{
		Current:   current,
		Previous:  previous,
		ChangePct: change,
		Favorable: favorable,
		Message:   message,
	}, nil
}

// TierTotals partitions categories into Must/Need/Want tiers and sums
// amounts per tier across all supplied records. Total over the closed
// category set: it never fails.
func TierTotals(records []models.Expense) models.TierTotals {
	totals := models.TierTotals{Must: decimal.Zero, Need: decimal.Zero, Want: decimal.Zero}
	for _, record := range records {
		switch models.TierOf(record.Category) {
		case models.TierMust:
			totals.Must = totals.Must.Add(record.Amount)
		case models.TierNeed:
			totals.Need = totals.Need.Add(record.Amount)
		default:
			totals.Want = totals.Want.Add(record.Amount)
		}
	}
	return totals
}
