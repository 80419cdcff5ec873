package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"kharcha/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestExpense creates an expense with the given date, category,
// and amount.
func CreateTestExpense(t *testing.T, db *gorm.DB, date string, category models.Category, amount float64) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		Date:        date,
		Amount:      decimal.NewFromFloat(amount).Round(2),
		Category:    category,
		Description: fmt.Sprintf("test expense %d", nextID()),
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// Expense builds an unsaved expense value for pure-function tests.
func Expense(date string, category models.Category, amount float64) models.Expense {
	return models.Expense{
		Date:     date,
		Amount:   decimal.NewFromFloat(amount).Round(2),
		Category: category,
	}
}
