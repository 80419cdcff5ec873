package categorize

import (
	"strings"

	"kharcha/internal/models"
)

// keywordTable maps each category to its lowercase trigger substrings.
// Slice order follows the category enumeration order, which is the
// tie-break contract: the first category with a matching trigger wins.
// Other carries no triggers; it is the fallback.
var keywordTable = []struct {
	category models.Category
	triggers []string
}{
	{models.CategoryFood, []string{"restaurant", "dinner", "lunch", "cafe", "meal", "snack", "food", "breakfast"}},
	{models.CategoryTransport, []string{"uber", "taxi", "bus", "train", "ride", "metro", "travel", "commute"}},
	{models.CategoryHousing, []string{"rent", "apartment", "housing", "mortgage", "lease", "property"}},
	{models.CategoryUtilities, []string{"electricity", "water", "utility", "bill", "internet", "gas"}},
	{models.CategoryEntertainment, []string{"movie", "theater", "concert", "event", "show", "entertainment"}},
	{models.CategoryHealthcare, []string{"health", "clinic", "doctor", "hospital", "pharmacy", "medicine"}},
	{models.CategoryEducation, []string{"education", "tuition", "school", "books", "courses"}},
	{models.CategoryShopping, []string{"shopping", "clothes", "electronics", "store", "mall", "purchase"}},
	{models.CategoryInsurance, []string{"insurance", "life insurance", "health insurance", "car insurance"}},
}

// KeywordCategorizer assigns categories by substring matching against
// the trigger table. Deterministic and total: blank input or no match
// returns Other.
type KeywordCategorizer struct{}

// Categorize implements Categorizer.
func (KeywordCategorizer) Categorize(description string) models.Category {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return models.CategoryOther
	}

	for _, entry := range keywordTable {
		for _, trigger := range entry.triggers {
			if strings.Contains(desc, trigger) {
				return entry.category
			}
		}
	}
	return models.CategoryOther
}
