package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voxpense/internal/common"
	"voxpense/internal/model"
)

func newTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	store, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "voxpense.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func testExpense(id string, date time.Time) *model.Expense {
	score := 0.9
	return &model.Expense{
		ID:              id,
		Amount:          decimal.NewFromFloat(50.25),
		Currency:        "AED",
		Category:        model.CategoryGrocery,
		Merchant:        "Carrefour",
		Notes:           "weekly run",
		TransactionDate: date,
		Source:          model.SourceManualVoice,
		VoiceTranscript: "spent 50.25 dirhams on groceries at Carrefour",
		ConfidenceScore: &score,
	}
}

func TestSaveAndGetExpense(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()
	date := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	original := testExpense("exp-1", date)
	require.NoError(t, store.SaveExpense(ctx, original))

	got, err := store.GetExpense(ctx, "exp-1")
	require.NoError(t, err)

	assert.Equal(t, original.ID, got.ID)
	assert.True(t, original.Amount.Equal(got.Amount), "amount %s != %s", original.Amount, got.Amount)
	assert.Equal(t, original.Currency, got.Currency)
	assert.Equal(t, original.Category, got.Category)
	assert.Equal(t, original.Merchant, got.Merchant)
	assert.Equal(t, original.Notes, got.Notes)
	assert.True(t, original.TransactionDate.Equal(got.TransactionDate))
	assert.Equal(t, original.Source, got.Source)
	assert.Equal(t, original.VoiceTranscript, got.VoiceTranscript)
	require.NotNil(t, got.ConfidenceScore)
	assert.InDelta(t, *original.ConfidenceScore, *got.ConfidenceScore, 1e-9)
}

func TestSaveExpenseValidation(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	t.Run("nil expense", func(t *testing.T) {
		require.ErrorIs(t, store.SaveExpense(ctx, nil), ErrNilExpense)
	})

	t.Run("invalid expense rejected", func(t *testing.T) {
		e := testExpense("bad", time.Now())
		e.Amount = decimal.Zero
		require.Error(t, store.SaveExpense(ctx, e))
	})
}

func TestSaveExpenseNullableFields(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	e := testExpense("exp-bare", time.Now().UTC())
	e.Merchant = ""
	e.Notes = ""
	e.ConfidenceScore = nil
	require.NoError(t, store.SaveExpense(ctx, e))

	got, err := store.GetExpense(ctx, "exp-bare")
	require.NoError(t, err)
	assert.Empty(t, got.Merchant)
	assert.Empty(t, got.Notes)
	assert.Nil(t, got.ConfidenceScore)
}

func TestListExpenses(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	june := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	july := time.Date(2025, 7, 2, 12, 0, 0, 0, time.UTC)
	require.NoError(t, store.SaveExpense(ctx, testExpense("exp-june-1", june)))
	require.NoError(t, store.SaveExpense(ctx, testExpense("exp-june-2", june.AddDate(0, 0, 5))))
	require.NoError(t, store.SaveExpense(ctx, testExpense("exp-july", july)))

	t.Run("all expenses newest first", func(t *testing.T) {
		all, err := store.ListExpenses(ctx, time.Time{})
		require.NoError(t, err)
		require.Len(t, all, 3)
		assert.Equal(t, "exp-july", all[0].ID)
		assert.Equal(t, "exp-june-2", all[1].ID)
		assert.Equal(t, "exp-june-1", all[2].ID)
	})

	t.Run("month filter", func(t *testing.T) {
		juneOnly, err := store.ListExpenses(ctx, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		require.Len(t, juneOnly, 2)
		for _, e := range juneOnly {
			assert.Equal(t, time.June, e.TransactionDate.Month())
		}
	})

	t.Run("empty month", func(t *testing.T) {
		none, err := store.ListExpenses(ctx, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestGetExpenseNotFound(t *testing.T) {
	store := newTestStorage(t)

	_, err := store.GetExpense(context.Background(), "missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDeleteExpense(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveExpense(ctx, testExpense("exp-del", time.Now().UTC())))
	require.NoError(t, store.DeleteExpense(ctx, "exp-del"))

	_, err := store.GetExpense(ctx, "exp-del")
	require.ErrorIs(t, err, common.ErrNotFound)

	require.ErrorIs(t, store.DeleteExpense(ctx, "exp-del"), common.ErrNotFound)
}
