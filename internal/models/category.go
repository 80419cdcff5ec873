package models

// Category represents an expense category. The set of valid categories is
// closed: every categorization path must resolve to one of the constants
// below, with CategoryOther as the universal fallback.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryHousing       Category = "Housing"
	CategoryUtilities     Category = "Utilities"
	CategoryEntertainment Category = "Entertainment"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryShopping      Category = "Shopping"
	CategoryInsurance     Category = "Insurance"
	CategoryOther         Category = "Other"
)

// Categories lists every valid category in fixed enumeration order.
// The order is part of the keyword categorizer's tie-break contract:
// the first matching category wins.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryHousing,
	CategoryUtilities,
	CategoryEntertainment,
	CategoryHealthcare,
	CategoryEducation,
	CategoryShopping,
	CategoryInsurance,
	CategoryOther,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Tier represents the spending necessity of a category.
type Tier string

const (
	TierMust Tier = "Must"
	TierNeed Tier = "Need"
	TierWant Tier = "Want"
)

// tierByCategory maps the Must and Need categories. Everything else,
// including CategoryOther, falls into TierWant.
var tierByCategory = map[Category]Tier{
	CategoryHousing:    TierMust,
	CategoryUtilities:  TierMust,
	CategoryFood:       TierMust,
	CategoryTransport:  TierMust,
	CategoryHealthcare: TierNeed,
	CategoryInsurance:  TierNeed,
	CategoryEducation:  TierNeed,
}

// TierOf returns the spending tier for a category.
func TierOf(c Category) Tier {
	if tier, ok := tierByCategory[c]; ok {
		return tier
	}
	return TierWant
}
