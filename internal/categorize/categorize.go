// Package categorize assigns expense categories to free-text
// descriptions. Two strategies are available: deterministic keyword
// matching and a TF-IDF naive Bayes classifier trained on a fixed seed
// corpus. Both are total functions over the closed category set; a
// description that matches nothing resolves to Other.
package categorize

import (
	apperrors "kharcha/internal/errors"
	"kharcha/internal/models"
)

// Categorizer maps a description to a member of the closed category set.
type Categorizer interface {
	Categorize(description string) models.Category
}

// Strategy names accepted by ForStrategy.
const (
	StrategyKeyword = "keyword"
	StrategyBayes   = "bayes"
)

// ForStrategy returns the categorizer for a strategy name. The keyword
// variant is authoritative for inserts; the Bayes variant is the
// pluggable alternate.
func ForStrategy(name string) (Categorizer, error) {
	switch name {
	case StrategyKeyword, "":
		return KeywordCategorizer{}, nil
	case StrategyBayes:
		return SharedBayes(), nil
	}
	return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown categorization strategy: "+name)
}
