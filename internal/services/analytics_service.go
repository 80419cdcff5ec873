package services

import (
	"github.com/shopspring/decimal"

	"kharcha/internal/analytics"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/logger"
	"kharcha/internal/models"
	"kharcha/internal/store"
)

// analyticsService runs the analytics pipeline over a fresh snapshot of
// the record set on every call. Aggregates are derived views, never
// persisted.
type analyticsService struct {
	store store.ExpenseStore
}

// NewAnalyticsService creates a new AnalyticsServicer.
func NewAnalyticsService(st store.ExpenseStore) AnalyticsServicer {
	return &analyticsService{store: st}
}

// Aggregates buckets the record set at the given granularity. Records
// skipped for unparseable dates are counted in the result and logged so
// the exclusion is observable.
func (s *analyticsService) Aggregates(granularity models.Granularity) (*models.AggregateResult, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}

	result, err := analytics.Aggregate(records, granularity)
	if err != nil {
		return nil, err
	}
	if result.Skipped > 0 {
		logger.Get().Warnw("records excluded from aggregation",
			"skipped", result.Skipped,
			"granularity", granularity,
		)
	}
	return &result, nil
}

// Breakdown returns per-category totals.
func (s *analyticsService) Breakdown() ([]models.CategoryTotal, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	return analytics.Breakdown(records), nil
}

// Trend returns the cumulative spending trend over time.
func (s *analyticsService) Trend() ([]models.TrendPoint, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	return analytics.BalanceTrend(records), nil
}

// Forecast predicts future monthly totals.
func (s *analyticsService) Forecast(periodsAhead int) ([]models.ForecastPoint, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	return analytics.Forecast(records, periodsAhead)
}

// Insights summarizes the record set.
func (s *analyticsService) Insights() (*models.Insight, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	insight := analytics.Insights(records)
	return &insight, nil
}

// Recommendations suggests a monthly budget per category.
func (s *analyticsService) Recommendations() ([]models.Recommendation, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	return analytics.Recommend(records), nil
}

// Comparison compares the two most recent monthly totals.
func (s *analyticsService) Comparison() (*models.MonthComparison, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	return analytics.CompareMonths(records)
}

// Tiers sums amounts per Must/Need/Want spending tier.
func (s *analyticsService) Tiers() (*models.TierTotals, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	totals := analytics.TierTotals(records)
	return &totals, nil
}

// CheckAnomaly reports whether an amount would be statistically unusual
// for a category, given its recorded history. Advisory only.
func (s *analyticsService) CheckAnomaly(amount decimal.Decimal, category models.Category) (bool, error) {
	if !category.Valid() {
		return false, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is not a member of the category set")
	}
	records, err := s.store.GetAll()
	if err != nil {
		return false, err
	}
	history := analytics.HistoryFor(records, category)
	return analytics.IsAnomalous(amount, history), nil
}
