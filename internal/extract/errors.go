// Package extract turns a voice transcript into a structured expense record.
package extract

import "fmt"

// Kind identifies why extraction failed.
type Kind string

const (
	// KindAmountNotFound means no strategy produced a monetary amount.
	KindAmountNotFound Kind = "amount_not_found"
	// KindAmountOutOfRange means an amount was found but falls outside the
	// accepted range.
	KindAmountOutOfRange Kind = "amount_out_of_range"
	// KindUnsupportedCurrency means the detected currency is not in the
	// registry.
	KindUnsupportedCurrency Kind = "unsupported_currency"
	// KindEmptyCategory means classification produced no category. The Other
	// fallback should make this unreachable.
	KindEmptyCategory Kind = "empty_category"
	// KindEmptyTranscript means the transcript was blank after trimming.
	KindEmptyTranscript Kind = "empty_transcript"
	// KindInvalidExpense means the assembled expense failed final validation
	// on a field other than the ones covered above, such as merchant or
	// notes length.
	KindInvalidExpense Kind = "invalid_expense"
)

// Error is a typed extraction failure. A failed parse is an expected outcome
// of ambiguous speech, so it is always returned as a value, never panicked.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is matches any *Error with the same kind, so callers can use errors.Is
// with the sentinel values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel values for errors.Is comparisons.
var (
	ErrAmountNotFound      = &Error{Kind: KindAmountNotFound}
	ErrAmountOutOfRange    = &Error{Kind: KindAmountOutOfRange}
	ErrUnsupportedCurrency = &Error{Kind: KindUnsupportedCurrency}
	ErrEmptyCategory       = &Error{Kind: KindEmptyCategory}
	ErrEmptyTranscript     = &Error{Kind: KindEmptyTranscript}
	ErrInvalidExpense      = &Error{Kind: KindInvalidExpense}
)

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
