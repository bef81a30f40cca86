// Package model defines the domain types shared across the application.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Source describes how an expense record was captured.
type Source string

const (
	// SourceManualVoice is a recording started explicitly by the user.
	SourceManualVoice Source = "manual_voice"
	// SourceSiriAssisted is a transcript handed over by an assistant shortcut.
	SourceSiriAssisted Source = "siri_assisted"
	// SourceTextFallback is a transcript typed instead of spoken.
	SourceTextFallback Source = "text_fallback"
)

// Amount bounds for a single expense. Amounts at or below MinAmount and
// above MaxAmount are rejected, never clamped.
var (
	MinAmount = decimal.NewFromFloat(0.01)
	MaxAmount = decimal.NewFromFloat(999999.99)
)

// Merchant and note length bounds.
const (
	MerchantMinLen = 3
	MerchantMaxLen = 100
	NotesMaxLen    = 500
)

// Expense is the structured record produced from a single voice transcript.
// It is assembled once by the extraction pipeline and never mutated afterwards.
type Expense struct {
	TransactionDate time.Time
	ConfidenceScore *float64
	ID              string
	Currency        string
	Merchant        string
	Notes           string
	VoiceTranscript string
	Source          Source
	Category        Category
	Amount          decimal.Decimal
}

// Validate checks the record against the domain invariants. Currency
// membership in the registry is checked by the pipeline, which owns the
// registry; everything else is checked here.
func (e *Expense) Validate() error {
	if e.Amount.Cmp(MinAmount) <= 0 {
		return fmt.Errorf("amount %s must be greater than %s", e.Amount, MinAmount)
	}
	if e.Amount.Cmp(MaxAmount) > 0 {
		return fmt.Errorf("amount %s exceeds maximum %s", e.Amount, MaxAmount)
	}
	if strings.TrimSpace(e.Currency) == "" {
		return fmt.Errorf("currency is required")
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("unknown category %q", e.Category)
	}
	if e.Merchant != "" {
		if n := len(e.Merchant); n < MerchantMinLen || n > MerchantMaxLen {
			return fmt.Errorf("merchant length %d outside [%d,%d]", n, MerchantMinLen, MerchantMaxLen)
		}
	}
	if len(e.Notes) > NotesMaxLen {
		return fmt.Errorf("notes length %d exceeds %d", len(e.Notes), NotesMaxLen)
	}
	if e.ConfidenceScore != nil {
		if s := *e.ConfidenceScore; s < 0 || s > 1 {
			return fmt.Errorf("confidence score %f outside [0,1]", s)
		}
	}
	return nil
}
