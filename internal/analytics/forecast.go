package analytics

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

// Forecast predicts the next periodsAhead monthly totals by fitting an
// ordinary least squares line over the monthly aggregates, indexed
// 0..N-1, and extrapolating at indices N..N+periodsAhead-1. Predicted
// periods are the calendar months after the last observed bucket.
//
// With a single observed month the fit is underdetermined and the
// forecast is a flat projection of that month's total.
func Forecast(records []models.Expense, periodsAhead int) ([]models.ForecastPoint, error) {
	if periodsAhead < 1 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "periods ahead must be at least 1")
	}
	if len(records) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInsufficientData, "no records available for forecasting")
	}

	agg, err := Aggregate(records, models.GranularityMonth)
	if err != nil {
		return nil, err
	}
	monthly := agg.Totals
	if len(monthly) == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInsufficientData, "no records with parseable dates")
	}

	predict := flatProjection(monthly[0].Total)
	if len(monthly) >= 2 {
		xs := make([]float64, len(monthly))
		ys := make([]float64, len(monthly))
		for i, bucket := range monthly {
			xs[i] = float64(i)
			ys[i] = bucket.Total.InexactFloat64()
		}
		alpha, beta := stat.LinearRegression(xs, ys, nil, false)
		predict = func(index int) decimal.Decimal {
			return decimal.NewFromFloat(alpha + beta*float64(index)).Round(2)
		}
	}

	last := monthly[len(monthly)-1].PeriodStart
	points := make([]models.ForecastPoint, 0, periodsAhead)
	for i := 0; i < periodsAhead; i++ {
		points = append(points, models.ForecastPoint{
			PeriodStart: last.AddDate(0, i+1, 0),
			Predicted:   predict(len(monthly) + i),
		})
	}
	return points, nil
}

func flatProjection(value decimal.Decimal) func(int) decimal.Decimal {
	return func(int) decimal.Decimal { return value.Round(2) }
}
