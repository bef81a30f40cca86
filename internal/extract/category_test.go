package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voxpense/internal/model"
)

func TestClassifierCategories(t *testing.T) {
	tests := []struct {
		name string
		text string
		want model.Category
	}{
		{name: "lunch", text: "lunch with the team", want: model.CategoryFoodDining},
		{name: "coffee", text: "grabbed a coffee", want: model.CategoryFoodDining},
		{name: "shawarma", text: "shawarma on the way home", want: model.CategoryFoodDining},
		{name: "groceries", text: "weekly groceries run", want: model.CategoryGrocery},
		{name: "supermarket brand", text: "stocked up at carrefour", want: model.CategoryGrocery},
		{name: "ride hailing", text: "uber to the airport", want: model.CategoryTransportation},
		{name: "petrol", text: "filled up petrol", want: model.CategoryTransportation},
		{name: "clothes", text: "new clothes for the wedding", want: model.CategoryShopping},
		{name: "streaming", text: "netflix for the month", want: model.CategoryEntertainment},
		{name: "electricity", text: "paid the electricity bill", want: model.CategoryBillsUtilities},
		{name: "pharmacy", text: "pharmacy pickup", want: model.CategoryHealthcare},
		{name: "tuition", text: "semester tuition payment", want: model.CategoryEducation},
		{name: "fallback", text: "miscellaneous thing", want: model.CategoryOther},
		{name: "case insensitive", text: "LUNCH AT NOON", want: model.CategoryFoodDining},
	}

	classifier := NewClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.text))
		})
	}
}

// Rule order is semantic: earlier rules claim ambiguous phrases.
func TestClassifierPriority(t *testing.T) {
	classifier := NewClassifier()

	// "food" precedes "shopping", so this is dining, not shopping.
	assert.Equal(t, model.CategoryFoodDining, classifier.Classify("food shopping at the mall"))

	// "grocery" precedes "shopping".
	assert.Equal(t, model.CategoryGrocery, classifier.Classify("grocery shopping"))

	// "netflix" precedes "subscription".
	assert.Equal(t, model.CategoryEntertainment, classifier.Classify("netflix subscription"))
}

func TestClassifierMatch(t *testing.T) {
	classifier := NewClassifier()

	cat, ok := classifier.Match("dinner downtown")
	assert.True(t, ok)
	assert.Equal(t, model.CategoryFoodDining, cat)

	_, ok = classifier.Match("paperwork stuff")
	assert.False(t, ok)
}
