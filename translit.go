package translit

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/npillmayer/translit/table"
	"github.com/npillmayer/translit/unidata"
)

// Policy selects how unmapped code points are handled during one call.
// A policy is fixed per call and applied identically to every unmapped code
// point of that call.
type Policy int

const (
	// Default drops unmapped code points.
	Default Policy = iota
	// Ignore drops unmapped code points (alias of Default).
	Ignore
	// Replace substitutes a caller-supplied replacement string ("?" if none
	// is given).
	Replace
	// Preserve copies the original code point's bytes through unchanged.
	// Output is then not guaranteed to be ASCII.
	Preserve
	// Invalid behaves like Preserve (historical alias).
	Invalid
	// Strict halts at the first unmapped code point and reports its 0-based
	// character index through a StrictError.
	Strict
)

var policyNames = map[Policy]string{
	Default:  "default",
	Ignore:   "ignore",
	Replace:  "replace",
	Preserve: "preserve",
	Invalid:  "invalid",
	Strict:   "strict",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a policy selector name to a Policy. The empty string
// selects Default, mirroring the behavior of the language bindings. Unknown
// names fail with ErrUnknownPolicy; they are never silently substituted.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "default":
		return Default, nil
	case "ignore":
		return Ignore, nil
	case "replace":
		return Replace, nil
	case "preserve":
		return Preserve, nil
	case "invalid":
		return Invalid, nil
	case "strict":
		return Strict, nil
	}
	return Default, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

// Transliterator converts Unicode text to ASCII using a mapping store and an
// override list. Both are read-only, so a Transliterator is safe for
// concurrent use.
type Transliterator struct {
	store     *table.Store
	overrides table.Overrides
}

// New creates a Transliterator over an explicit mapping store and override
// list. Most callers want the package-level functions, which use the
// generated reference tables.
func New(store *table.Store, overrides table.Overrides) *Transliterator {
	return &Transliterator{store: store, overrides: overrides}
}

var stdOnce sync.Once
var std *Transliterator

// defaultTransliterator is built once from the generated tables and lives for
// the process lifetime.
func defaultTransliterator() *Transliterator {
	stdOnce.Do(func() {
		store, overrides := unidata.Registry()
		std = New(store, overrides)
		tracer().Infof("default transliterator ready: %d mapping entries, %d overrides",
			store.Len(), len(overrides))
	})
	return std
}

// Transliterate converts text to its ASCII approximation under the Default
// policy: unmapped code points are dropped. The result is always pure ASCII,
// and all-ASCII input is returned unchanged.
func Transliterate(text string) string {
	out, _ := defaultTransliterator().TransliterateWithPolicy(text, Default, "")
	return out
}

// TransliterateWithPolicy converts text under an explicit policy, using the
// generated reference tables. See Transliterator.TransliterateWithPolicy.
func TransliterateWithPolicy(text string, policy Policy, replacement string) (string, error) {
	return defaultTransliterator().TransliterateWithPolicy(text, policy, replacement)
}

// Transliterate converts text under the Default policy.
func (t *Transliterator) Transliterate(text string) string {
	out, _ := t.TransliterateWithPolicy(text, Default, "")
	return out
}

// TransliterateWithPolicy converts text to ASCII under the given policy.
//
// replacement is only consulted for the Replace policy; if empty, "?" is
// substituted. For the Strict policy the returned error is a *StrictError
// carrying the 0-based character index (count of decoded code points, not
// bytes) of the first unmapped code point; the string result then holds the
// partial output accumulated up to that point.
//
// Input is assumed to be valid UTF-8; ill-formed bytes decode to U+FFFD and
// are treated like any other (unmapped) code point.
func (t *Transliterator) TransliterateWithPolicy(text string, policy Policy, replacement string) (string, error) {
	switch policy {
	case Default, Ignore, Preserve, Invalid, Strict:
	case Replace:
		if replacement == "" {
			replacement = "?"
		}
	default:
		return "", fmt.Errorf("%w: %v", ErrUnknownPolicy, policy)
	}
	if isASCII(text) { // identity, incl. the empty string
		return text, nil
	}
	buf := make([]byte, 0, t.estimate(text, policy, replacement))
	var charIndex int // decoded code points processed so far
	for i := 0; i < len(text); {
		if text[i] < utf8.RuneSelf {
			start := i
			for i++; i < len(text) && text[i] < utf8.RuneSelf; i++ {
			}
			buf = append(buf, text[start:i]...)
			charIndex += i - start
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		if repl, ok := t.resolve(r); ok {
			buf = append(buf, repl...)
		} else {
			switch policy {
			case Replace:
				buf = append(buf, replacement...)
			case Preserve, Invalid:
				buf = append(buf, text[i:i+size]...)
			case Strict:
				partial := string(buf)
				return partial, &StrictError{Index: charIndex, Partial: partial}
			}
		}
		i += size
		charIndex++
	}
	return string(buf), nil
}

// resolve applies the three-tier precedence: override list, then direct range
// table (cp < 0x100), then block tables. The latter two live in the store.
func (t *Transliterator) resolve(cp rune) (string, bool) {
	if repl, ok := t.overrides.Lookup(cp); ok {
		return repl, true
	}
	return t.store.Lookup(cp)
}

// estimate computes the exact output byte count for text under policy, so the
// emit pass allocates exactly once. Inputs with high expansion ratios (CJK
// entries expanding to multi-word Latin) would otherwise reallocate
// repeatedly.
func (t *Transliterator) estimate(text string, policy Policy, replacement string) int {
	estimated := 0
	for _, r := range text {
		if r < utf8.RuneSelf {
			estimated++
			continue
		}
		if repl, ok := t.resolve(r); ok {
			estimated += len(repl)
			continue
		}
		switch policy {
		case Replace:
			estimated += len(replacement)
		case Preserve, Invalid:
			estimated += utf8.RuneLen(r)
		}
	}
	if estimated == 0 { // degenerate input, reserve something sane
		estimated = len(text)
	}
	return estimated
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
