package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"voxpense/internal/common"
	"voxpense/internal/model"
)

// SaveExpense inserts a validated expense record.
func (s *SQLiteStorage) SaveExpense(ctx context.Context, expense *model.Expense) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if expense == nil {
		return ErrNilExpense
	}
	if err := expense.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid expense: %w", err)
	}

	query := `
		INSERT INTO expenses
			(id, amount, currency, category, merchant, notes,
			 transaction_date, source, voice_transcript, confidence)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	var confidence any
	if expense.ConfidenceScore != nil {
		confidence = *expense.ConfidenceScore
	}
	_, err := s.db.ExecContext(ctx, query,
		expense.ID,
		expense.Amount.String(),
		expense.Currency,
		string(expense.Category),
		nullable(expense.Merchant),
		nullable(expense.Notes),
		expense.TransactionDate.UTC(),
		string(expense.Source),
		expense.VoiceTranscript,
		confidence,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense: %w", err)
	}

	slog.Debug("saved expense",
		"id", expense.ID,
		"amount", expense.Amount,
		"currency", expense.Currency,
		"category", expense.Category)
	return nil
}

// ListExpenses returns expenses newest first. A zero month means all
// expenses; otherwise results are limited to that calendar month.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, month time.Time) ([]model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	query := `
		SELECT id, amount, currency, category, merchant, notes,
		       transaction_date, source, voice_transcript, confidence
		FROM expenses`
	var args []any
	if !month.IsZero() {
		start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		end := start.AddDate(0, 1, 0)
		query += ` WHERE transaction_date >= ? AND transaction_date < ?`
		args = append(args, start, end)
	}
	query += ` ORDER BY transaction_date DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	slog.Debug("retrieved expenses", "count", len(expenses))
	return expenses, nil
}

// GetExpense returns a single expense by ID.
func (s *SQLiteStorage) GetExpense(ctx context.Context, id string) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, amount, currency, category, merchant, notes,
		       transaction_date, source, voice_transcript, confidence
		FROM expenses WHERE id = ?`, id)

	expense, err := scanExpense(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: expense %s", common.ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: expense %s", common.ErrNotFound, id)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (model.Expense, error) {
	var (
		expense    model.Expense
		amountStr  string
		merchant   sql.NullString
		notes      sql.NullString
		confidence sql.NullFloat64
	)
	err := row.Scan(
		&expense.ID,
		&amountStr,
		&expense.Currency,
		&expense.Category,
		&merchant,
		&notes,
		&expense.TransactionDate,
		&expense.Source,
		&expense.VoiceTranscript,
		&confidence,
	)
	if err == sql.ErrNoRows {
		return model.Expense{}, err
	}
	if err != nil {
		return model.Expense{}, fmt.Errorf("failed to scan expense: %w", err)
	}

	expense.Amount, err = decimal.NewFromString(amountStr)
	if err != nil {
		return model.Expense{}, fmt.Errorf("corrupt amount %q: %w", amountStr, err)
	}
	expense.Merchant = merchant.String
	expense.Notes = notes.String
	if confidence.Valid {
		score := confidence.Float64
		expense.ConfidenceScore = &score
	}
	return expense, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
