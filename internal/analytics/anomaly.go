package analytics

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	"kharcha/internal/models"
)

// historyThreshold is the observation count at which anomaly detection
// switches from the mean/stddev rule to the isolation forest.
const historyThreshold = 10

// IsAnomalous reports whether newAmount is statistically unusual given a
// category's amount history. With fewer than ten observations it flags
// amounts above mean + 2 sample standard deviations, never flagging when
// the deviation is zero or undefined. With ten or more it fits a
// one-dimensional isolation forest at 5% contamination.
//
// The result is advisory only; it never blocks an insert.
func IsAnomalous(newAmount decimal.Decimal, history []decimal.Decimal) bool {
	if len(history) < historyThreshold {
		return anomalousBySigma(newAmount, history)
	}

	xs := make([]float64, len(history))
	for i, amount := range history {
		xs[i] = amount.InexactFloat64()
	}
	forest := fitIsolationForest(xs)
	return forest.Anomalous(newAmount.InexactFloat64())
}

func anomalousBySigma(newAmount decimal.Decimal, history []decimal.Decimal) bool {
	// Sample standard deviation needs two points to be defined.
	if len(history) < 2 {
		return false
	}

	xs := make([]float64, len(history))
	for i, amount := range history {
		xs[i] = amount.InexactFloat64()
	}

	mean := stat.Mean(xs, nil)
	sigma := stat.StdDev(xs, nil)
	if sigma == 0 {
		return false
	}
	return newAmount.InexactFloat64() > mean+2*sigma
}

// HistoryFor extracts the amount history of one category from a record
// snapshot, preserving record order.
func HistoryFor(records []models.Expense, category models.Category) []decimal.Decimal {
	var history []decimal.Decimal
	for _, record := range records {
		if record.Category == category {
			history = append(history, record.Amount)
		}
	}
	return history
}
