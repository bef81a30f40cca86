package cli

import (
	"fmt"
	"strings"

	"voxpense/internal/model"
)

// FormatAmount renders an amount with its currency code, e.g. "AED 120.50".
func FormatAmount(e *model.Expense) string {
	return fmt.Sprintf("%s %s", e.Currency, e.Amount.StringFixed(2))
}

// FormatConfidence renders a confidence score as a colored percentage.
// High scores are green, middling ones amber, low ones red.
func FormatConfidence(score *float64) string {
	if score == nil {
		return SubtleStyle.Render("n/a")
	}
	text := fmt.Sprintf("%.0f%%", *score*100)
	switch {
	case *score >= 0.8:
		return SuccessStyle.Render(text)
	case *score >= 0.5:
		return WarningStyle.Render(text)
	default:
		return ErrorStyle.Render(text)
	}
}

// RenderExpense renders a parsed expense as a bordered summary card.
func RenderExpense(e *model.Expense) string {
	var b strings.Builder
	b.WriteString(AmountStyle.Render(FormatAmount(e)))
	b.WriteString("  ")
	b.WriteString(CategoryStyle.Render(string(e.Category)))
	b.WriteString("\n")
	if e.Merchant != "" {
		b.WriteString(fmt.Sprintf("Merchant:   %s\n", e.Merchant))
	}
	if e.Notes != "" {
		b.WriteString(fmt.Sprintf("Notes:      %s\n", e.Notes))
	}
	b.WriteString(fmt.Sprintf("Date:       %s\n", e.TransactionDate.Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Confidence: %s", FormatConfidence(e.ConfidenceScore)))
	return BoxStyle.Render(b.String())
}
