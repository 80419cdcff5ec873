package services

import (
	"io"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"kharcha/internal/models"
	"kharcha/internal/pagination"
	"kharcha/internal/receipt"
)

// ExpenseServicer handles expense record operations.
type ExpenseServicer interface {
	// Create persists a new expense. A blank category is resolved by the
	// keyword categorizer. The returned flag is the advisory anomaly
	// verdict for the amount against the category's prior history; it
	// never blocks the insert.
	Create(date string, amount decimal.Decimal, category models.Category, description, receiptPath, tags string) (*models.Expense, bool, error)
	Get(id uint) (*models.Expense, error)
	List(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	Update(id uint, date string, amount decimal.Decimal, category models.Category, description string) (*models.Expense, error)
	Delete(id uint) error
	Categorize(description, strategy string) (models.Category, error)
}

// AnalyticsServicer runs the analytics pipeline over a store snapshot.
type AnalyticsServicer interface {
	Aggregates(granularity models.Granularity) (*models.AggregateResult, error)
	Breakdown() ([]models.CategoryTotal, error)
	Trend() ([]models.TrendPoint, error)
	Forecast(periodsAhead int) ([]models.ForecastPoint, error)
	Insights() (*models.Insight, error)
	Recommendations() ([]models.Recommendation, error)
	Comparison() (*models.MonthComparison, error)
	Tiers() (*models.TierTotals, error)
	CheckAnomaly(amount decimal.Decimal, category models.Category) (bool, error)
}

// TransferServicer handles file export, import, backup, and restore.
type TransferServicer interface {
	ExportCSV(w io.Writer) error
	ExportExcel() (*excelize.File, error)
	ImportCSV(r io.Reader) (int, error)
	ImportExcel(r io.Reader) (int, error)
	Backup() (string, error)
	Restore(backupPath string) error
}

// ReceiptServicer extracts expense fields from receipt images.
type ReceiptServicer interface {
	Process(imagePath string) (*receipt.Fields, error)
}
