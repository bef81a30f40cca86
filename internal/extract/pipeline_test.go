package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxpense/internal/currency"
	"voxpense/internal/model"
)

var captureTime = time.Date(2025, 6, 15, 16, 30, 0, 0, time.UTC)

func newTestPipeline(opts ...Option) *Pipeline {
	opts = append([]Option{WithClock(func() time.Time { return captureTime })}, opts...)
	return NewPipeline(currency.DefaultRegistry(), opts...)
}

func TestPipelineFullTranscript(t *testing.T) {
	p := newTestPipeline()

	expense, err := p.Parse("Spent 50 dirhams on groceries at Carrefour yesterday", "", "USD")
	require.NoError(t, err)

	assert.Equal(t, "50", expense.Amount.String())
	assert.Equal(t, "AED", expense.Currency)
	assert.Equal(t, model.CategoryGrocery, expense.Category)
	assert.Equal(t, "Carrefour", expense.Merchant)
	assert.Equal(t, captureTime.Add(-24*time.Hour), expense.TransactionDate)
	assert.Equal(t, model.SourceManualVoice, expense.Source)
	assert.Equal(t, "Spent 50 dirhams on groceries at Carrefour yesterday", expense.VoiceTranscript)
	assert.NotEmpty(t, expense.ID)
	require.NotNil(t, expense.ConfidenceScore)
	assert.Greater(t, *expense.ConfidenceScore, 0.5)
}

func TestPipelineDefaultCurrency(t *testing.T) {
	p := newTestPipeline()

	expense, err := p.Parse("Paid 12.50 for lunch", "", "usd")
	require.NoError(t, err)

	assert.Equal(t, "12.5", expense.Amount.String())
	assert.Equal(t, "USD", expense.Currency, "default code is upper-cased")
	assert.Equal(t, model.CategoryFoodDining, expense.Category)
	assert.Equal(t, "lunch", expense.Notes)
	assert.Equal(t, captureTime, expense.TransactionDate)
}

func TestPipelineLocaleFallback(t *testing.T) {
	p := newTestPipeline()

	expense, err := p.Parse("coffee 15", "en-AE", "USD")
	require.NoError(t, err)
	assert.Equal(t, "AED", expense.Currency)
}

func TestPipelineSpokenCurrencyBeatsLocale(t *testing.T) {
	p := newTestPipeline()

	expense, err := p.Parse("coffee 15 euros", "en-AE", "USD")
	require.NoError(t, err)
	assert.Equal(t, "EUR", expense.Currency)
}

func TestPipelineErrors(t *testing.T) {
	p := newTestPipeline()

	t.Run("empty transcript", func(t *testing.T) {
		_, err := p.Parse("", "", "USD")
		require.ErrorIs(t, err, ErrEmptyTranscript)
	})

	t.Run("whitespace transcript", func(t *testing.T) {
		_, err := p.Parse("   \t ", "", "USD")
		require.ErrorIs(t, err, ErrEmptyTranscript)
	})

	t.Run("no amount", func(t *testing.T) {
		_, err := p.Parse("had coffee with a friend", "", "USD")
		require.ErrorIs(t, err, ErrAmountNotFound)
	})

	t.Run("zero amount phrase", func(t *testing.T) {
		_, err := p.Parse("zero dollars for parking", "", "USD")
		require.ErrorIs(t, err, ErrAmountOutOfRange)
	})

	t.Run("unsupported default currency", func(t *testing.T) {
		_, err := p.Parse("coffee 15", "", "XXX")
		require.ErrorIs(t, err, ErrUnsupportedCurrency)
	})
}

func TestPipelineValidationFailureKind(t *testing.T) {
	// A negative configured weight drives the confidence score below zero,
	// which only the final validation catches. The failure must surface as
	// an invalid expense, not as an amount range error.
	p := newTestPipeline(WithWeights(Weights{Digits: -0.5}))

	_, err := p.Parse("coffee 15 dollars", "", "USD")
	require.ErrorIs(t, err, ErrInvalidExpense)
	assert.NotErrorIs(t, err, ErrAmountOutOfRange)
}

func TestPipelineSourceOption(t *testing.T) {
	p := newTestPipeline(WithSource(model.SourceSiriAssisted))

	expense, err := p.Parse("coffee 15 dollars", "", "USD")
	require.NoError(t, err)
	assert.Equal(t, model.SourceSiriAssisted, expense.Source)
}

func TestPipelineKeepsTranscriptCasing(t *testing.T) {
	p := newTestPipeline()

	expense, err := p.Parse("Bought Groceries At LULU 75 Dirhams", "", "USD")
	require.NoError(t, err)
	assert.Equal(t, "Bought Groceries At LULU 75 Dirhams", expense.VoiceTranscript)
	assert.Equal(t, "AED", expense.Currency)
	assert.Equal(t, "LULU 75 Dirhams", expense.Merchant)
}

func TestPipelineConfidenceHelper(t *testing.T) {
	p := newTestPipeline()
	assert.InDelta(t, 1.0, p.Confidence("spent 50 dollars at starbucks for coffee"), 1e-9)
	assert.Less(t, p.Confidence("something vague"), 0.2)
}
