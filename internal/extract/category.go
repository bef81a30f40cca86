package extract

import (
	"strings"

	"voxpense/internal/model"
)

// keywordRule pairs a keyword set with the category it implies.
type keywordRule struct {
	category model.Category
	keywords []string
}

// categoryRules is scanned top to bottom and the first rule with any keyword
// present in the lower-cased transcript wins. The order resolves ambiguous
// phrases: "food shopping" is Food & Dining because the food rule precedes
// the grocery and shopping rules. Do not reorder.
var categoryRules = []keywordRule{
	{model.CategoryFoodDining, []string{
		"food", "lunch", "dinner", "breakfast", "brunch", "coffee", "tea",
		"restaurant", "cafe", "pizza", "burger", "sandwich", "meal", "snack",
		"takeout", "takeaway", "biryani", "shawarma", "sushi",
	}},
	{model.CategoryGrocery, []string{
		"grocery", "groceries", "supermarket", "vegetables", "fruits", "milk",
		"bread", "eggs", "market", "walmart", "costco", "carrefour", "lulu",
	}},
	{model.CategoryTransportation, []string{
		"uber", "lyft", "taxi", "cab", "careem", "bus", "train", "metro",
		"fuel", "petrol", "gas station", "gasoline", "parking", "toll",
		"flight", "ticket",
	}},
	{model.CategoryShopping, []string{
		"shopping", "clothes", "clothing", "shoes", "shirt", "dress", "mall",
		"amazon", "electronics", "gadget", "furniture", "accessories",
	}},
	{model.CategoryEntertainment, []string{
		"movie", "cinema", "netflix", "spotify", "concert", "game", "games",
		"theater", "theatre", "show", "bowling", "arcade",
	}},
	{model.CategoryBillsUtilities, []string{
		"bill", "bills", "electricity", "water bill", "internet", "wifi",
		"phone", "mobile", "recharge", "rent", "utility", "utilities",
		"subscription", "insurance",
	}},
	{model.CategoryHealthcare, []string{
		"doctor", "medicine", "medicines", "pharmacy", "hospital", "clinic",
		"dental", "dentist", "medical", "health", "checkup",
	}},
	{model.CategoryEducation, []string{
		"book", "books", "course", "tuition", "school", "college",
		"university", "class", "education", "training", "exam",
	}},
}

// Classifier assigns a spending category to a transcript using the
// priority-ordered keyword table above.
type Classifier struct {
	rules []keywordRule
}

// NewClassifier returns a classifier over the default keyword table.
func NewClassifier() *Classifier {
	return &Classifier{rules: categoryRules}
}

// Classify returns the category of the first rule with a keyword present as
// a substring of the lower-cased text, or Other when nothing matches.
func (c *Classifier) Classify(text string) model.Category {
	if cat, ok := c.Match(text); ok {
		return cat
	}
	return model.CategoryOther
}

// Match is Classify without the Other fallback; the second return reports
// whether any keyword matched. The confidence scorer uses this to tell a
// real category signal from the fallback.
func (c *Classifier) Match(text string) (model.Category, bool) {
	lowered := strings.ToLower(text)
	for _, rule := range c.rules {
		for _, kw := range rule.keywords {
			if strings.Contains(lowered, kw) {
				return rule.category, true
			}
		}
	}
	return model.CategoryOther, false
}
