package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"kharcha/internal/models"
	"kharcha/internal/testutil"
)

func TestForecast(t *testing.T) {
	t.Run("linear_trend", func(t *testing.T) {
		records := []models.Expense{
			testutil.Expense("2024-01-15", models.CategoryFood, 100),
			testutil.Expense("2024-02-15", models.CategoryFood, 200),
			testutil.Expense("2024-03-15", models.CategoryFood, 300),
		}

		points, err := Forecast(records, 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(points) != 1 {
			t.Fatalf("expected 1 point, got %d", len(points))
		}
		if !points[0].Predicted.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected prediction 400, got %s", points[0].Predicted)
		}
		if points[0].PeriodStart.Format(time.DateOnly) != "2024-04-01" {
			t.Errorf("expected period 2024-04-01, got %s", points[0].PeriodStart.Format(time.DateOnly))
		}
	})

	t.Run("multiple_periods", func(t *testing.T) {
		records := []models.Expense{
			testutil.Expense("2024-01-15", models.CategoryFood, 100),
			testutil.Expense("2024-02-15", models.CategoryFood, 200),
		}

		points, err := Forecast(records, 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(points) != 3 {
			t.Fatalf("expected 3 points, got %d", len(points))
		}
		want := []int64{300, 400, 500}
		for i, w := range want {
			if !points[i].Predicted.Equal(decimal.NewFromInt(w)) {
				t.Errorf("point %d: expected %d, got %s", i, w, points[i].Predicted)
			}
		}
	})

	t.Run("single_month_flat", func(t *testing.T) {
		records := []models.Expense{
			testutil.Expense("2024-01-10", models.CategoryFood, 80),
			testutil.Expense("2024-01-20", models.CategoryFood, 40),
		}

		points, err := Forecast(records, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for i, p := range points {
			if !p.Predicted.Equal(decimal.NewFromInt(120)) {
				t.Errorf("point %d: expected flat 120, got %s", i, p.Predicted)
			}
		}
	})

	t.Run("no_records", func(t *testing.T) {
		_, err := Forecast(nil, 1)
		testutil.AssertAppError(t, err, "INSUFFICIENT_DATA")
	})

	t.Run("no_parseable_dates", func(t *testing.T) {
		records := []models.Expense{
			testutil.Expense("garbage", models.CategoryFood, 100),
		}
		_, err := Forecast(records, 1)
		testutil.AssertAppError(t, err, "INSUFFICIENT_DATA")
	})

	t.Run("invalid_periods", func(t *testing.T) {
		records := []models.Expense{
			testutil.Expense("2024-01-15", models.CategoryFood, 100),
		}
		_, err := Forecast(records, 0)
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}
