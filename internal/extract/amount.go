package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"voxpense/internal/currency"
	"voxpense/internal/model"
)

// AmountExtractor finds the monetary amount in a transcript. A fixed,
// ordered list of strategies is tried until one succeeds, most specific
// first:
//
//  1. currency-prefixed decimal or integer ("$25.50", "₹20", "Rs 500")
//  2. currency-name-suffixed decimal ("25.50 dollars", "1,000.50 dirhams")
//  3. currency-name-suffixed integer ("25 dollars")
//  4. bare decimal
//  5. bare integer
//  6. written number phrase, as last resort
//
// A candidate is accepted only inside (MinAmount, MaxAmount]; an
// out-of-range candidate is discarded and the next strategy is tried.
type AmountExtractor struct {
	phrases     *NumberPhraseParser
	suffixWords map[string]struct{}
	prefixes    []string
}

var (
	numberAfterRe  = regexp.MustCompile(`^\s*(\d[\d,]*(?:\.\d{1,2})?)`)
	suffixedDecRe  = regexp.MustCompile(`(\d[\d,]*\.\d{1,2})\s+([a-z]+)`)
	suffixedIntRe  = regexp.MustCompile(`(\d[\d,]*)\s+([a-z]+)`)
	bareDecimalRe  = regexp.MustCompile(`\d[\d,]*\.\d{1,2}`)
	bareIntegerRe  = regexp.MustCompile(`\d[\d,]*`)
	nonNumericTail = regexp.MustCompile(`[^\d]+$`)
)

// NewAmountExtractor builds an extractor whose currency prefixes and suffix
// words come from the registry, so the strategies and the detector always
// agree on what counts as a currency mention.
func NewAmountExtractor(registry *currency.Registry) *AmountExtractor {
	e := &AmountExtractor{
		phrases:     NewNumberPhraseParser(),
		suffixWords: make(map[string]struct{}),
	}
	for _, entry := range registry.Entries() {
		e.prefixes = append(e.prefixes, strings.ToLower(entry.Symbol))
		e.prefixes = append(e.prefixes, strings.ToLower(entry.Code))
		for _, kw := range entry.Keywords {
			if strings.ContainsRune(kw, ' ') {
				continue
			}
			e.suffixWords[kw] = struct{}{}
			// Short spoken abbreviations ("rs", "dhs") double as prefixes.
			if len(kw) <= 3 {
				e.prefixes = append(e.prefixes, kw)
			}
		}
		e.suffixWords[strings.ToLower(entry.Code)] = struct{}{}
	}
	return e
}

// Extract returns the amount for a transcript (already lower-cased by the
// pipeline). The error is ErrAmountNotFound when nothing numeric was found,
// or ErrAmountOutOfRange when every candidate fell outside the bounds.
func (e *AmountExtractor) Extract(lowered string) (decimal.Decimal, error) {
	sawOutOfRange := false

	try := func(candidate string) (decimal.Decimal, bool) {
		d, ok := parseAmount(candidate)
		if !ok {
			return decimal.Zero, false
		}
		if !amountInRange(d) {
			sawOutOfRange = true
			return decimal.Zero, false
		}
		return d, true
	}

	strategies := []func(string) (string, bool){
		e.currencyPrefixed,
		e.suffixedDecimal,
		e.suffixedInteger,
		bareDecimal,
		bareInteger,
	}
	for _, strategy := range strategies {
		candidate, ok := strategy(lowered)
		if !ok {
			continue
		}
		if d, accepted := try(candidate); accepted {
			return d, nil
		}
	}

	if d, ok := e.phrases.Parse(lowered); ok {
		if amountInRange(d) {
			return d, nil
		}
		sawOutOfRange = true
	}

	if sawOutOfRange {
		return decimal.Zero, newError(KindAmountOutOfRange,
			"amount must be greater than %s and at most %s", model.MinAmount, model.MaxAmount)
	}
	return decimal.Zero, newError(KindAmountNotFound, "no amount found in transcript")
}

// currencyPrefixed finds the earliest currency symbol, code, or short
// abbreviation that is immediately followed by a number.
func (e *AmountExtractor) currencyPrefixed(lowered string) (string, bool) {
	bestIdx := -1
	bestNum := ""
	for _, prefix := range e.prefixes {
		if prefix == "" {
			continue
		}
		from := 0
		for {
			idx := strings.Index(lowered[from:], prefix)
			if idx < 0 {
				break
			}
			idx += from
			from = idx + 1
			if letterAt(lowered, idx-1) && startsWithLetter(prefix) {
				continue
			}
			rest := lowered[idx+len(prefix):]
			m := numberAfterRe.FindStringSubmatch(rest)
			if m == nil {
				continue
			}
			if bestIdx < 0 || idx < bestIdx {
				bestIdx = idx
				bestNum = m[1]
			}
			break
		}
	}
	return bestNum, bestIdx >= 0
}

func (e *AmountExtractor) suffixedDecimal(lowered string) (string, bool) {
	return e.firstSuffixed(lowered, suffixedDecRe)
}

func (e *AmountExtractor) suffixedInteger(lowered string) (string, bool) {
	return e.firstSuffixed(lowered, suffixedIntRe)
}

func (e *AmountExtractor) firstSuffixed(lowered string, re *regexp.Regexp) (string, bool) {
	for _, m := range re.FindAllStringSubmatch(lowered, -1) {
		if _, ok := e.suffixWords[m[2]]; ok {
			return m[1], true
		}
	}
	return "", false
}

func bareDecimal(lowered string) (string, bool) {
	m := bareDecimalRe.FindString(lowered)
	return m, m != ""
}

func bareInteger(lowered string) (string, bool) {
	m := bareIntegerRe.FindString(lowered)
	return m, m != ""
}

// parseAmount strips thousands separators and parses the candidate.
func parseAmount(candidate string) (decimal.Decimal, bool) {
	cleaned := strings.ReplaceAll(candidate, ",", "")
	cleaned = nonNumericTail.ReplaceAllString(cleaned, "")
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func amountInRange(d decimal.Decimal) bool {
	return d.Cmp(model.MinAmount) > 0 && d.Cmp(model.MaxAmount) <= 0
}

func letterAt(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	c := s[i]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func startsWithLetter(s string) bool {
	return letterAt(s, 0)
}
