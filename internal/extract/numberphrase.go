package extract

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NumberPhraseParser converts written number phrases ("two thousand",
// "five lakh", "two point five million") to a decimal amount. It is the
// last-resort amount strategy, invoked only after every digit-based strategy
// has failed; digit forms are unambiguous and always tried first.
type NumberPhraseParser struct{}

// NewNumberPhraseParser returns a parser for written number phrases.
func NewNumberPhraseParser() *NumberPhraseParser {
	return &NumberPhraseParser{}
}

var cardinalWords = map[string]int64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

// scaleWords multiply the running value. "hundred" combines with the current
// group; the others flush the group into the total, which is how phrases
// like "two hundred five thousand" stay correct.
var scaleWords = map[string]int64{
	"hundred":  100,
	"thousand": 1000,
	"lakh":     100000,
	"lakhs":    100000,
	"crore":    10000000,
	"crores":   10000000,
	"million":  1000000,
	"millions": 1000000,
	"billion":  1000000000,
	"billions": 1000000000,
}

// Parse finds the first written number phrase in the text and resolves it.
// The second return is false when no phrase is present or the phrase does
// not resolve to a finite non-negative value.
func (p *NumberPhraseParser) Parse(text string) (decimal.Decimal, bool) {
	tokens := tokenizeWords(text)

	start := -1
	for i, tok := range tokens {
		if p.isNumberWord(tok) {
			start = i
			break
		}
	}
	if start < 0 {
		return decimal.Zero, false
	}

	var (
		total, current decimal.Decimal
		sawCardinal    bool
		fraction       strings.Builder
		inFraction     bool
	)

	i := start
	for ; i < len(tokens); i++ {
		tok := tokens[i]
		switch {
		case inFraction:
			if d, ok := cardinalWords[tok]; ok && d <= 9 {
				fraction.WriteByte(byte('0' + d))
				continue
			}
			// A scale after the fraction ("two point five million")
			// multiplies the composed value.
			current = applyFraction(current, &fraction)
			inFraction = false
			scale, isScale := scaleWords[tok]
			if !isScale {
				i = len(tokens)
				continue
			}
			if tok == "hundred" {
				current = current.Mul(decimal.NewFromInt(scale))
			} else {
				total = total.Add(current.Mul(decimal.NewFromInt(scale)))
				current = decimal.Zero
			}
		case tok == "point":
			inFraction = true
		case tok == "and":
			// Connective inside a phrase ("one hundred and five",
			// "two and a half"); the half is handled below.
			if i+2 < len(tokens) && tokens[i+1] == "a" && tokens[i+2] == "half" {
				half := decimal.NewFromFloat(0.5)
				current = current.Add(half)
				i += 2
			}
		case tok == "a":
			// "a hundred", "a thousand".
			if i+1 < len(tokens) && scaleWords[tokens[i+1]] > 0 && !sawCardinal {
				current = decimal.NewFromInt(1)
				sawCardinal = true
			}
		default:
			if v, ok := cardinalWords[tok]; ok {
				current = current.Add(decimal.NewFromInt(v))
				sawCardinal = true
				continue
			}
			if scale, ok := scaleWords[tok]; ok {
				if current.IsZero() && !sawCardinal {
					current = decimal.NewFromInt(1)
				}
				if tok == "hundred" {
					current = current.Mul(decimal.NewFromInt(scale))
				} else {
					total = total.Add(current.Mul(decimal.NewFromInt(scale)))
					current = decimal.Zero
				}
				sawCardinal = true
				continue
			}
			// First word outside the phrase ends it.
			i = len(tokens)
		}
	}

	if !sawCardinal {
		return decimal.Zero, false
	}

	current = applyFraction(current, &fraction)
	result := total.Add(current)
	if result.IsNegative() {
		return decimal.Zero, false
	}
	return result, true
}

// applyFraction folds pending "point ..." digits into the value and resets
// the buffer.
func applyFraction(value decimal.Decimal, fraction *strings.Builder) decimal.Decimal {
	frac := fraction.String()
	if frac == "" {
		return value
	}
	fraction.Reset()
	fracDec, err := decimal.NewFromString("0." + frac)
	if err != nil {
		return value
	}
	return value.Add(fracDec)
}

func (p *NumberPhraseParser) isNumberWord(tok string) bool {
	if _, ok := cardinalWords[tok]; ok {
		return true
	}
	_, ok := scaleWords[tok]
	return ok
}

// tokenizeWords lower-cases and splits on anything that is not a letter,
// so hyphenated forms like "twenty-five" become two tokens.
func tokenizeWords(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return r < 'a' || r > 'z'
	})
}
