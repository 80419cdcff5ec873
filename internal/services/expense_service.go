package services

import (
	"github.com/shopspring/decimal"

	"kharcha/internal/analytics"
	"kharcha/internal/categorize"
	apperrors "kharcha/internal/errors"
	"kharcha/internal/logger"
	"kharcha/internal/models"
	"kharcha/internal/pagination"
	"kharcha/internal/store"
)

// expenseService handles expense-related business logic.
type expenseService struct {
	store       store.ExpenseStore
	categorizer categorize.Categorizer
}

// NewExpenseService creates a new ExpenseServicer. The keyword
// categorizer is authoritative for inserts with a blank category.
func NewExpenseService(st store.ExpenseStore) ExpenseServicer {
	return &expenseService{store: st, categorizer: categorize.KeywordCategorizer{}}
}

// Create persists a new expense record, inferring a blank category from
// the description. The anomaly verdict is computed against the
// category's history before this insert and returned as advice only.
func (s *expenseService) Create(date string, amount decimal.Decimal, category models.Category, description, receiptPath, tags string) (*models.Expense, bool, error) {
	if category == "" {
		category = s.categorizer.Categorize(description)
	}
	if !category.Valid() {
		return nil, false, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is not a member of the category set")
	}

	history, err := s.categoryHistory(category)
	if err != nil {
		// Advisory only: a failed history read must not fail the insert.
		logger.Get().Warnw("anomaly history unavailable", "category", category, "error", err)
		history = nil
	}

	expense, err := s.store.Insert(date, amount, category, description, receiptPath, tags)
	if err != nil {
		return nil, false, err
	}

	anomalous := analytics.IsAnomalous(expense.Amount, history)
	if anomalous {
		logger.Get().Infow("anomalous expense recorded",
			"id", expense.ID,
			"category", expense.Category,
			"amount", expense.Amount.String(),
		)
	}
	return expense, anomalous, nil
}

// Get returns a single expense record.
func (s *expenseService) Get(id uint) (*models.Expense, error) {
	return s.store.GetByID(id)
}

// List returns a page of expense records.
func (s *expenseService) List(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	return s.store.List(page)
}

// Update mutates an existing record. A blank category is re-inferred
// from the new description.
func (s *expenseService) Update(id uint, date string, amount decimal.Decimal, category models.Category, description string) (*models.Expense, error) {
	if category == "" {
		category = s.categorizer.Categorize(description)
	}
	return s.store.Update(id, date, amount, category, description)
}

// Delete removes a record.
func (s *expenseService) Delete(id uint) error {
	return s.store.Delete(id)
}

// Categorize resolves a description with the requested strategy. Total
// over the closed category set for any description.
func (s *expenseService) Categorize(description, strategy string) (models.Category, error) {
	categorizer, err := categorize.ForStrategy(strategy)
	if err != nil {
		return "", err
	}
	return categorizer.Categorize(description), nil
}

func (s *expenseService) categoryHistory(category models.Category) ([]decimal.Decimal, error) {
	records, err := s.store.GetAll()
	if err != nil {
		return nil, err
	}
	return analytics.HistoryFor(records, category), nil
}
