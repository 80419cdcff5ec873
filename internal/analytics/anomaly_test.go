package analytics

import (
	"testing"

	"github.com/shopspring/decimal"

	"kharcha/internal/models"
	"kharcha/internal/testutil"
)

func amounts(values ...float64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		out[i] = decimal.NewFromFloat(v)
	}
	return out
}

func TestIsAnomalousSmallHistory(t *testing.T) {
	t.Run("empty_history_never_flags", func(t *testing.T) {
		if IsAnomalous(decimal.NewFromInt(1000000), nil) {
			t.Error("expected no flag with empty history")
		}
	})

	t.Run("single_observation_never_flags", func(t *testing.T) {
		if IsAnomalous(decimal.NewFromInt(1000000), amounts(10)) {
			t.Error("expected no flag with one observation")
		}
	})

	t.Run("zero_variance_never_flags", func(t *testing.T) {
		if IsAnomalous(decimal.NewFromInt(1000), amounts(50, 50, 50, 50, 50)) {
			t.Error("expected no flag with zero variance history")
		}
	})

	t.Run("flags_beyond_two_sigma", func(t *testing.T) {
		// mean 30, sample stddev ~15.8; threshold ~61.6.
		history := amounts(10, 20, 30, 40, 50)
		if !IsAnomalous(decimal.NewFromInt(100), history) {
			t.Error("expected 100 to be flagged")
		}
		if IsAnomalous(decimal.NewFromInt(55), history) {
			t.Error("expected 55 not to be flagged")
		}
	})

	t.Run("low_amounts_never_flag", func(t *testing.T) {
		// Only the high tail is of interest.
		history := amounts(100, 200, 300, 400, 500)
		if IsAnomalous(decimal.NewFromInt(1), history) {
			t.Error("expected low amount not to be flagged")
		}
	})
}

func TestIsAnomalousIsolationForest(t *testing.T) {
	t.Run("extreme_outlier_flagged", func(t *testing.T) {
		history := amounts(10, 10, 10, 10, 10, 10, 10, 10, 10, 10000)
		if !IsAnomalous(decimal.NewFromInt(10000), history) {
			t.Error("expected extreme outlier to be flagged")
		}
	})

	t.Run("typical_amount_not_flagged", func(t *testing.T) {
		history := amounts(10, 11, 9, 10, 12, 10, 11, 9, 10, 10000)
		if IsAnomalous(decimal.NewFromInt(10), history) {
			t.Error("expected typical amount not to be flagged")
		}
	})

	t.Run("identical_history_never_flags", func(t *testing.T) {
		history := amounts(50, 50, 50, 50, 50, 50, 50, 50, 50, 50)
		if IsAnomalous(decimal.NewFromInt(50), history) {
			t.Error("expected identical history not to flag its own value")
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		history := amounts(10, 20, 15, 12, 18, 25, 14, 16, 11, 500)
		first := IsAnomalous(decimal.NewFromInt(500), history)
		for i := 0; i < 5; i++ {
			if IsAnomalous(decimal.NewFromInt(500), history) != first {
				t.Fatal("expected repeated calls to agree")
			}
		}
	})
}

func TestHistoryFor(t *testing.T) {
	records := []models.Expense{
		testutil.Expense("2024-01-01", models.CategoryFood, 10),
		testutil.Expense("2024-01-02", models.CategoryTransport, 20),
		testutil.Expense("2024-01-03", models.CategoryFood, 30),
	}

	history := HistoryFor(records, models.CategoryFood)
	if len(history) != 2 {
		t.Fatalf("expected 2 amounts, got %d", len(history))
	}
	if !history[0].Equal(decimal.NewFromInt(10)) || !history[1].Equal(decimal.NewFromInt(30)) {
		t.Errorf("expected [10 30] in record order, got %v", history)
	}

	if got := HistoryFor(records, models.CategoryHousing); len(got) != 0 {
		t.Errorf("expected empty history, got %v", got)
	}
}
