package extract

import (
	"regexp"
	"strings"
	"time"

	"voxpense/internal/model"
)

// Auxiliary field extraction: merchant, notes, and transaction date. All
// three are optional; absence is never an error.

var (
	// Merchant follows "at", "from", or "to" and runs until a "for"/"on"
	// clause, a time phrase, or the end of the sentence. Matched against the
	// original-case text so "Starbucks" keeps its capitalization.
	merchantRe = regexp.MustCompile(`(?i)\b(?:at|from|to)\s+(.+?)(?:\s+(?:for|on|yesterday|today|tonight|this)\b.*)?$`)

	notesForRe  = regexp.MustCompile(`(?i)\bfor\s+(.+?)(?:\s+(?:yesterday|today|tonight|this)\b.*)?\s*$`)
	notesNoteRe = regexp.MustCompile(`(?i)\bnote:?\s+(.+?)\s*$`)

	trailingPunct = regexp.MustCompile(`[.!?,;]+$`)
)

// ExtractMerchant pulls a merchant name out of a prepositional phrase.
// Results outside the accepted length bounds are dropped, not truncated.
func ExtractMerchant(text string) string {
	m := merchantRe.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	merchant := strings.TrimSpace(trailingPunct.ReplaceAllString(m[1], ""))
	if n := len(merchant); n < model.MerchantMinLen || n > model.MerchantMaxLen {
		return ""
	}
	return merchant
}

// ExtractNotes pulls free-form notes from a "for ..." or "note: ..." clause.
func ExtractNotes(text string) string {
	m := notesNoteRe.FindStringSubmatch(text)
	if m == nil {
		m = notesForRe.FindStringSubmatch(text)
	}
	if m == nil {
		return ""
	}
	notes := strings.TrimSpace(trailingPunct.ReplaceAllString(m[1], ""))
	if len(notes) > model.NotesMaxLen {
		return ""
	}
	return notes
}

// Fixed local times for day-part phrases.
const (
	morningHour   = 9
	afternoonHour = 14
	eveningHour   = 19
)

// ExtractDate resolves relative-time phrases against the capture time.
// Without any keyword the expense is dated now.
func ExtractDate(text string, now time.Time) time.Time {
	lowered := strings.ToLower(text)
	switch {
	case strings.Contains(lowered, "yesterday"):
		return now.Add(-24 * time.Hour)
	case strings.Contains(lowered, "this morning"):
		return atHour(now, morningHour)
	case strings.Contains(lowered, "this afternoon"):
		return atHour(now, afternoonHour)
	case strings.Contains(lowered, "this evening"), strings.Contains(lowered, "tonight"):
		return atHour(now, eveningHour)
	default:
		// "today" and "just" both mean now.
		return now
	}
}

func atHour(now time.Time, hour int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
}
