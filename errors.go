package translit

import (
	"errors"
	"fmt"
)

// ErrUnknownPolicy reports an unrecognized policy selector. It fails at the
// call boundary, before any input is processed.
var ErrUnknownPolicy = errors.New("unknown errors policy")

// StrictError reports the first unmapped code point encountered under the
// Strict policy.
//
// Index is the 0-based count of decoded code points preceding the offending
// one (a character index, not a byte offset, so callers can locate the
// character in user-facing terms). Partial holds the output accumulated
// before the failure.
type StrictError struct {
	Index   int
	Partial string
}

func (e *StrictError) Error() string {
	return fmt.Sprintf("no transliteration for character at index %d", e.Index)
}
