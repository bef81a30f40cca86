// Package currency holds the read-only currency registry and the detector
// that maps free text to a currency code.
package currency

import (
	"fmt"
	"strings"
)

// Entry describes a single currency the application understands.
type Entry struct {
	Code        string
	Symbol      string
	DisplayName string
	Keywords    []string
	RightToLeft bool
}

// Registry is the closed set of currencies, loaded once at startup and
// read-only afterwards. Entry order is significant: it is the deterministic
// tie-break when two currencies match a transcript at the same position.
type Registry struct {
	byCode  map[string]Entry
	entries []Entry
}

// NewRegistry builds a registry from the given entries. Codes are
// upper-cased and must be unique.
func NewRegistry(entries []Entry) (*Registry, error) {
	r := &Registry{
		byCode:  make(map[string]Entry, len(entries)),
		entries: make([]Entry, 0, len(entries)),
	}
	for _, e := range entries {
		e.Code = strings.ToUpper(strings.TrimSpace(e.Code))
		if e.Code == "" {
			return nil, fmt.Errorf("currency entry with empty code")
		}
		if _, dup := r.byCode[e.Code]; dup {
			return nil, fmt.Errorf("duplicate currency code %s", e.Code)
		}
		lowered := make([]string, 0, len(e.Keywords))
		for _, kw := range e.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				lowered = append(lowered, kw)
			}
		}
		e.Keywords = lowered
		r.byCode[e.Code] = e
		r.entries = append(r.entries, e)
	}
	return r, nil
}

// DefaultRegistry returns the registry built from the bundled currency table.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(builtinEntries)
	if err != nil {
		// The bundled table is validated by tests; a bad entry is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return r
}

// Lookup returns the entry for a code, if known. Codes are case-insensitive.
func (r *Registry) Lookup(code string) (Entry, bool) {
	e, ok := r.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return e, ok
}

// Has reports whether the code resolves to a known entry.
func (r *Registry) Has(code string) bool {
	_, ok := r.Lookup(code)
	return ok
}

// Entries returns the entries in registry order. The caller must not
// modify the returned slice.
func (r *Registry) Entries() []Entry {
	return r.entries
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
