package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single expense record. The ID is assigned by the
// store on insert and is immutable; every other field is mutable via
// update. Date keeps the raw text as entered and is parsed on demand so
// a record with a bad date still exists in the store but drops out of
// date-dependent operations.
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Date        string          `gorm:"not null" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	Category    Category        `gorm:"not null;index" json:"category"`
	Description string          `json:"description"`
	ReceiptPath string          `gorm:"default:''" json:"receipt_path"`
	Tags        string          `gorm:"default:''" json:"tags"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
