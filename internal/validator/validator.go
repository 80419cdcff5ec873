// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"kharcha/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("expense_category", validateExpenseCategory)
		_ = v.RegisterValidation("granularity", validateGranularity)
		_ = v.RegisterValidation("categorize_strategy", validateCategorizeStrategy)
	}
}

func validateExpenseCategory(fl validator.FieldLevel) bool {
	return models.Category(fl.Field().String()).Valid()
}

func validateGranularity(fl validator.FieldLevel) bool {
	return models.Granularity(fl.Field().String()).Valid()
}

func validateCategorizeStrategy(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "keyword", "bayes":
		return true
	}
	return false
}
