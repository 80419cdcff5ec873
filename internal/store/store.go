// Package store persists expense records in the local relational store.
// Amounts are rounded to two decimal places before persistence; storage
// failures surface as IO_FAILURE, never as panics.
package store

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
	"kharcha/internal/pagination"
)

// ExpenseStore is the record store contract consumed by the services.
type ExpenseStore interface {
	Insert(date string, amount decimal.Decimal, category models.Category, description, receiptPath, tags string) (*models.Expense, error)
	GetAll() ([]models.Expense, error)
	GetByID(id uint) (*models.Expense, error)
	List(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	Update(id uint, date string, amount decimal.Decimal, category models.Category, description string) (*models.Expense, error)
	Delete(id uint) error
}

// expenseStore implements ExpenseStore over GORM.
type expenseStore struct {
	db *gorm.DB
}

// NewExpenseStore creates a new ExpenseStore.
func NewExpenseStore(db *gorm.DB) ExpenseStore {
	return &expenseStore{db: db}
}

// Insert persists a new expense record. The store assigns the ID.
func (s *expenseStore) Insert(date string, amount decimal.Decimal, category models.Category, description, receiptPath, tags string) (*models.Expense, error) {
	if !category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is not a member of the category set")
	}

	expense := &models.Expense{
		Date:        date,
		Amount:      models.RoundAmount(amount),
		Category:    category,
		Description: description,
		ReceiptPath: receiptPath,
		Tags:        tags,
	}
	if err := s.db.Create(expense).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	return expense, nil
}

// GetAll returns the full record set, oldest insert first. This is the
// in-memory snapshot the analytics pipeline runs over.
func (s *expenseStore) GetAll() ([]models.Expense, error) {
	var expenses []models.Expense
	if err := s.db.Order("id").Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	return expenses, nil
}

// GetByID returns a single expense record.
func (s *expenseStore) GetByID(id uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	return &expense, nil
}

// List returns a page of expense records, newest first.
func (s *expenseStore) List(page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.Expense{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIOFailure, err)
	}

	var expenses []models.Expense
	if err := s.db.Order("id DESC").Scopes(pagination.Paginate(page)).Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIOFailure, err)
	}

	result := pagination.NewPageResponse(expenses, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// Update mutates every field of an existing record except its ID.
func (s *expenseStore) Update(id uint, date string, amount decimal.Decimal, category models.Category, description string) (*models.Expense, error) {
	if !category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category is not a member of the category set")
	}

	expense, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"date":        date,
		"amount":      models.RoundAmount(amount),
		"category":    category,
		"description": description,
	}
	if err := s.db.Model(expense).Updates(updates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	return s.GetByID(id)
}

// Delete removes a record permanently.
func (s *expenseStore) Delete(id uint) error {
	expense, err := s.GetByID(id)
	if err != nil {
		return err
	}
	if err := s.db.Delete(expense).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrIOFailure, err)
	}
	return nil
}
