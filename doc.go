/*
Package translit converts arbitrary Unicode text into a best-effort ASCII
approximation.

The transliteration is deterministic and one-way: each code point either has a
fixed ASCII replacement (possibly several characters long, e.g. "Zh" for
CYRILLIC CAPITAL LETTER ZHE) or it has none, in which case a per-call policy
decides what happens (drop, replace, pass through, or fail). The mapping data
is derived offline from a reference transliteration corpus and shipped as a
frozen lookup table (see packages table and unidata).

Typical use:

	s := translit.Transliterate("Привет, Köln!")   // => "Privet, Koln!"

Callers needing canonical-form equivalence must normalize (NFC/NFD) before
calling; the package performs no Unicode normalization and no locale-sensitive
substitution.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package translit

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'translit'
func tracer() tracing.Trace {
	return tracing.Select("translit")
}
