package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxpense/internal/currency"
)

func newTestAmountExtractor(t *testing.T) *AmountExtractor {
	t.Helper()
	return NewAmountExtractor(currency.DefaultRegistry())
}

func TestAmountExtractorStrategies(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		// Currency-prefixed forms.
		{name: "dollar symbol decimal", text: "spent $25.50 at starbucks", want: "25.5"},
		{name: "rupee symbol integer", text: "₹20 for chai", want: "20"},
		{name: "iso code prefix", text: "usd 100 for the hotel", want: "100"},
		{name: "short abbreviation prefix", text: "rs 500 groceries", want: "500"},
		{name: "symbol with comma grouping", text: "$1,250 flight", want: "1250"},

		// Currency-name-suffixed forms.
		{name: "suffixed decimal", text: "paid 1,000.50 dirhams", want: "1000.5"},
		{name: "suffixed integer", text: "25 dollars for lunch", want: "25"},
		{name: "suffixed euros", text: "spent 12.75 euros", want: "12.75"},

		// Bare numbers.
		{name: "bare decimal", text: "lunch was 12.50", want: "12.5"},
		{name: "bare integer", text: "coffee 7", want: "7"},

		// Written phrases, last resort.
		{name: "number phrase", text: "spent twenty five dollars", want: "25"},
		{name: "phrase with scale", text: "two thousand rupees for rent", want: "2000"},
	}

	e := newTestAmountExtractor(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Extract(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAmountExtractorPriority(t *testing.T) {
	e := newTestAmountExtractor(t)

	// A currency-prefixed number beats an earlier bare number.
	got, err := e.Extract("ticket 3 cost $45")
	require.NoError(t, err)
	assert.Equal(t, "45", got.String())

	// A suffixed decimal beats its own integer part.
	got, err = e.Extract("paid 1,000.50 dirhams at the counter")
	require.NoError(t, err)
	assert.Equal(t, "1000.5", got.String())
}

func TestAmountExtractorRange(t *testing.T) {
	e := newTestAmountExtractor(t)

	t.Run("maximum is inclusive", func(t *testing.T) {
		got, err := e.Extract("999999.99 dollars")
		require.NoError(t, err)
		assert.Equal(t, "999999.99", got.String())
	})

	t.Run("above maximum", func(t *testing.T) {
		_, err := e.Extract("spent 2000000 dollars")
		require.ErrorIs(t, err, ErrAmountOutOfRange)
	})

	t.Run("at minimum", func(t *testing.T) {
		_, err := e.Extract("0.01 dollars")
		require.ErrorIs(t, err, ErrAmountOutOfRange)
	})

	t.Run("zero phrase", func(t *testing.T) {
		_, err := e.Extract("zero dollars for parking")
		require.ErrorIs(t, err, ErrAmountOutOfRange)
	})

	t.Run("nothing numeric", func(t *testing.T) {
		_, err := e.Extract("had a great time")
		require.ErrorIs(t, err, ErrAmountNotFound)
	})
}

func TestAmountExtractorDoesNotMatchInsideWords(t *testing.T) {
	e := newTestAmountExtractor(t)

	// "rs" inside "members" must not act as a currency prefix.
	got, err := e.Extract("members 50 dollars")
	require.NoError(t, err)
	assert.Equal(t, "50", got.String())
}
