package currency

import (
	"strings"
	"unicode"
)

// Detector maps transcript text to a currency code. Detection strategies run
// in a fixed order and the first one that matches wins:
//
//  1. literal currency symbols (including multi-character ones)
//  2. spoken keywords, including colloquialisms ("bucks", "quid")
//  3. ISO codes appearing as whole words
//  4. the locale's currency
//  5. the caller-supplied default
//
// Within a strategy, the currency whose symbol or keyword occurs earliest in
// the text wins; position ties go to the longer match, then registry order.
type Detector struct {
	registry *Registry
}

// NewDetector creates a detector over the given read-only registry.
func NewDetector(registry *Registry) *Detector {
	return &Detector{registry: registry}
}

// Detect resolves the currency for a transcript. It always returns a code:
// the locale and defaultCurrency fallbacks guarantee a result as long as
// defaultCurrency is non-empty.
func (d *Detector) Detect(text, locale, defaultCurrency string) string {
	if code, ok := d.bySymbol(text); ok {
		return code
	}
	lowered := strings.ToLower(text)
	if code, ok := d.byKeyword(lowered); ok {
		return code
	}
	if code, ok := d.byISOCode(lowered); ok {
		return code
	}
	if code := CurrencyForLocale(locale); code != "" && d.registry.Has(code) {
		return code
	}
	return strings.ToUpper(defaultCurrency)
}

// Mentions reports whether the text carries any explicit currency signal:
// a symbol, a keyword, or an ISO code.
func (d *Detector) Mentions(text string) bool {
	if _, ok := d.bySymbol(text); ok {
		return true
	}
	lowered := strings.ToLower(text)
	if _, ok := d.byKeyword(lowered); ok {
		return true
	}
	_, ok := d.byISOCode(lowered)
	return ok
}

type match struct {
	code   string
	index  int
	length int
}

// better reports whether m beats other under the earliest-then-longest rule.
// Registry order is preserved by only replacing on a strict win.
func (m match) better(other match) bool {
	if other.index < 0 {
		return true
	}
	if m.index != other.index {
		return m.index < other.index
	}
	return m.length > other.length
}

func (d *Detector) bySymbol(text string) (string, bool) {
	best := match{index: -1}
	for _, e := range d.registry.Entries() {
		if e.Symbol == "" {
			continue
		}
		idx := indexSymbol(text, e.Symbol)
		if idx < 0 {
			continue
		}
		cand := match{code: e.Code, index: idx, length: len(e.Symbol)}
		if cand.better(best) {
			best = cand
		}
	}
	return best.code, best.index >= 0
}

func (d *Detector) byKeyword(lowered string) (string, bool) {
	best := match{index: -1}
	for _, e := range d.registry.Entries() {
		for _, kw := range e.Keywords {
			idx := indexWord(lowered, kw)
			if idx < 0 {
				continue
			}
			cand := match{code: e.Code, index: idx, length: len(kw)}
			if cand.better(best) {
				best = cand
			}
		}
	}
	return best.code, best.index >= 0
}

func (d *Detector) byISOCode(lowered string) (string, bool) {
	best := match{index: -1}
	for _, e := range d.registry.Entries() {
		idx := indexWord(lowered, strings.ToLower(e.Code))
		if idx < 0 {
			continue
		}
		cand := match{code: e.Code, index: idx, length: len(e.Code)}
		if cand.better(best) {
			best = cand
		}
	}
	return best.code, best.index >= 0
}

// indexSymbol finds the first occurrence of a currency symbol. Symbols that
// begin or end with a letter ("Rp", "KSh") must sit on a word boundary so
// that "Radisson" does not read as rand; glyph symbols match anywhere.
func indexSymbol(text, symbol string) int {
	from := 0
	for {
		idx := strings.Index(text[from:], symbol)
		if idx < 0 {
			return -1
		}
		idx += from
		if symbolBoundaryOK(text, idx, len(symbol)) {
			return idx
		}
		from = idx + 1
	}
}

func symbolBoundaryOK(text string, idx, length int) bool {
	first := firstRune(text[idx:])
	last, _ := lastRune(text[idx : idx+length])
	if unicode.IsLetter(first) && idx > 0 {
		prev, _ := lastRune(text[:idx])
		if unicode.IsLetter(prev) {
			return false
		}
	}
	if unicode.IsLetter(last) && idx+length < len(text) {
		next := firstRune(text[idx+length:])
		if unicode.IsLetter(next) {
			return false
		}
	}
	return true
}

// indexWord finds needle in haystack as a whole word (both ends bounded by
// non-letter runes). Multi-word needles are supported.
func indexWord(haystack, needle string) int {
	if needle == "" {
		return -1
	}
	from := 0
	for {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return -1
		}
		idx += from
		ok := true
		if idx > 0 {
			prev, _ := lastRune(haystack[:idx])
			if unicode.IsLetter(prev) {
				ok = false
			}
		}
		if end := idx + len(needle); ok && end < len(haystack) {
			if unicode.IsLetter(firstRune(haystack[end:])) {
				ok = false
			}
		}
		if ok {
			return idx
		}
		from = idx + 1
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) (rune, int) {
	var r rune
	var size int
	for i, c := range s {
		r = c
		size = len(s) - i
	}
	return r, size
}
