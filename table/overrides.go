package table

import (
	"fmt"
	"sort"
)

// Override is one curated (code point, replacement) pair for symbol ranges
// not covered by the generated blocks.
type Override struct {
	Rune rune
	Repl string
}

// Overrides is a small, sorted override list queried by binary search.
// It takes precedence over the direct range table and the block tables.
type Overrides []Override

// NewOverrides validates a pair list and returns it as an Overrides table.
// Pairs must be sorted by code point, strictly ascending, with non-empty
// pure-ASCII replacements.
func NewOverrides(pairs []Override) (Overrides, error) {
	for i, p := range pairs {
		if i > 0 && pairs[i-1].Rune >= p.Rune {
			return nil, fmt.Errorf("override list not strictly ascending at index %d (%#x)", i, p.Rune)
		}
		if p.Repl == "" {
			return nil, fmt.Errorf("empty override replacement for code point %#x", p.Rune)
		}
		for j := 0; j < len(p.Repl); j++ {
			if p.Repl[j] >= 0x80 {
				return nil, fmt.Errorf("non-ASCII override %q for code point %#x", p.Repl, p.Rune)
			}
		}
	}
	return Overrides(pairs), nil
}

// MustOverrides is like NewOverrides but panics on invalid data. Intended for
// curated static tables.
func MustOverrides(pairs []Override) Overrides {
	o, err := NewOverrides(pairs)
	if err != nil {
		panic(err)
	}
	return o
}

// Lookup returns the override replacement for a code point, if present.
func (o Overrides) Lookup(cp rune) (string, bool) {
	i := sort.Search(len(o), func(i int) bool { return o[i].Rune >= cp })
	if i < len(o) && o[i].Rune == cp {
		return o[i].Repl, true
	}
	return "", false
}
