package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectorPrecedence(t *testing.T) {
	d := NewDetector(DefaultRegistry())

	tests := []struct {
		name    string
		text    string
		locale  string
		deflt   string
		want    string
		comment string
	}{
		{name: "symbol", text: "spent $25 on lunch", deflt: "EUR", want: "USD"},
		{name: "symbol beats keyword", text: "spent ₹20 on dollars lottery", deflt: "USD", want: "INR"},
		{name: "keyword", text: "spent 50 dirhams on groceries", deflt: "USD", want: "AED"},
		{name: "colloquial keyword", text: "twenty bucks for parking", deflt: "EUR", want: "USD"},
		{name: "quid", text: "five quid for the bus", deflt: "USD", want: "GBP"},
		{name: "keyword beats iso code", text: "paid in euros not usd", deflt: "GBP", want: "EUR"},
		{name: "iso code", text: "transferred 100 aed to savings", deflt: "USD", want: "AED"},
		{name: "locale fallback", text: "coffee 15", locale: "en-AE", deflt: "USD", want: "AED"},
		{name: "locale with underscore", text: "coffee 15", locale: "en_IN", deflt: "USD", want: "INR"},
		{name: "default fallback", text: "coffee 15", deflt: "usd", want: "USD"},
		{name: "unmapped locale falls to default", text: "coffee 15", locale: "en-ZZ", deflt: "EUR", want: "EUR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.text, tt.locale, tt.deflt))
		})
	}
}

func TestDetectorEarliestMentionWins(t *testing.T) {
	d := NewDetector(DefaultRegistry())

	// Both currencies are spoken; the one mentioned first is the answer.
	assert.Equal(t, "EUR", d.Detect("50 euros or maybe 55 dollars", "", "GBP"))
	assert.Equal(t, "USD", d.Detect("55 dollars or maybe 50 euros", "", "GBP"))
}

func TestDetectorWordBoundaries(t *testing.T) {
	d := NewDetector(DefaultRegistry())

	// "R" is the rand symbol but must not match inside "Radisson".
	assert.Equal(t, "USD", d.Detect("dinner at Radisson for 200", "", "USD"))
	assert.Equal(t, "ZAR", d.Detect("dinner cost R 200", "", "USD"))

	// "rs" only counts as a whole word.
	assert.Equal(t, "USD", d.Detect("two members 50", "", "USD"))
	assert.Equal(t, "INR", d.Detect("rs 500 for the rickshaw", "", "USD"))

	// ISO codes only count as whole words.
	assert.Equal(t, "USD", d.Detect("made a pledge 50", "", "USD"), "gbp is not inside pledge")
}

func TestDetectorLongerMatchAtSamePosition(t *testing.T) {
	d := NewDetector(DefaultRegistry())

	// "CA$" and "$" collide at the same index once the prefix is consumed;
	// the longer symbol wins at its own position.
	assert.Equal(t, "CAD", d.Detect("CA$ 40 for the ferry", "", "USD"))
	assert.Equal(t, "AUD", d.Detect("A$ 40 for the ferry", "", "USD"))
}

func TestDetectorMentions(t *testing.T) {
	d := NewDetector(DefaultRegistry())

	assert.True(t, d.Mentions("spent $25"))
	assert.True(t, d.Mentions("fifty dirhams"))
	assert.True(t, d.Mentions("100 aed transfer"))
	assert.False(t, d.Mentions("spent 25 on lunch"))
	assert.False(t, d.Mentions(""))
}
