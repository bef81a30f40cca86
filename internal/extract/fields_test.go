package extract

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractMerchant(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "at preposition", text: "spent 50 at Starbucks", want: "Starbucks"},
		{name: "from preposition", text: "ordered 200 from Amazon for books", want: "Amazon"},
		{name: "to preposition", text: "paid rent to Landlord", want: "Landlord"},
		{name: "stops at for clause", text: "spent 30 at Subway for dinner", want: "Subway"},
		{name: "stops at time phrase", text: "groceries at Carrefour yesterday", want: "Carrefour"},
		{name: "multi word merchant", text: "dinner at The Cheesecake Factory", want: "The Cheesecake Factory"},
		{name: "keeps original case", text: "coffee at BlueBottle", want: "BlueBottle"},
		{name: "trailing punctuation", text: "lunch at Nando's.", want: "Nando's"},
		{name: "no preposition", text: "spent 50 dollars", want: ""},
		{name: "too short", text: "paid 10 at AB", want: ""},
		{name: "too long", text: "paid 10 at " + strings.Repeat("x", 120), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractMerchant(tt.text))
		})
	}
}

func TestExtractNotes(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "for clause", text: "paid 12.50 for lunch with friends", want: "lunch with friends"},
		{name: "note keyword", text: "spent 40 note: split with sam", want: "split with sam"},
		{name: "note without colon", text: "spent 40 note team outing", want: "team outing"},
		{name: "time phrase trimmed", text: "paid 30 for parking yesterday", want: "parking"},
		{name: "no clause", text: "spent 50 at Starbucks", want: ""},
		{name: "too long dropped", text: "paid 10 for " + strings.Repeat("y", 600), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractNotes(tt.text))
		})
	}
}

func TestExtractDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 16, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{name: "default is capture time", text: "spent 50 dollars", want: now},
		{name: "today is capture time", text: "bought lunch today", want: now},
		{name: "yesterday", text: "bought lunch yesterday", want: now.Add(-24 * time.Hour)},
		{name: "this morning", text: "coffee this morning", want: time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)},
		{name: "this afternoon", text: "taxi this afternoon", want: time.Date(2025, 6, 15, 14, 0, 0, 0, time.UTC)},
		{name: "this evening", text: "dinner this evening", want: time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)},
		{name: "tonight", text: "movie tonight", want: time.Date(2025, 6, 15, 19, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDate(tt.text, now))
		})
	}
}
