package model

// Category is one of the fixed spending categories an expense can belong to.
type Category string

const (
	// CategoryFoodDining covers restaurants, cafes, and prepared food.
	CategoryFoodDining Category = "Food & Dining"
	// CategoryGrocery covers supermarket and household food shopping.
	CategoryGrocery Category = "Grocery"
	// CategoryTransportation covers rides, fuel, transit, and parking.
	CategoryTransportation Category = "Transportation"
	// CategoryShopping covers retail purchases.
	CategoryShopping Category = "Shopping"
	// CategoryEntertainment covers movies, games, and subscriptions.
	CategoryEntertainment Category = "Entertainment"
	// CategoryBillsUtilities covers recurring bills and utilities.
	CategoryBillsUtilities Category = "Bills & Utilities"
	// CategoryHealthcare covers medical and pharmacy spending.
	CategoryHealthcare Category = "Healthcare"
	// CategoryEducation covers tuition, courses, and books.
	CategoryEducation Category = "Education"
	// CategoryOther is the fallback when no keyword matches.
	CategoryOther Category = "Other"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryGrocery,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryOther,
	}
}

// IsValid reports whether c is a known category.
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}
