/*
Package table implements the frozen mapping store behind package translit: a
sparse code point -> ASCII string association optimized for fast negative
answers.

The key space is partitioned into blocks of 256 code points. Each block pairs
a 256-bit presence bitmap with a map of replacement strings, so the common
case — a code point with no mapping — is rejected with two array reads and a
bit test. The range 0x00..0xFF bypasses the block machinery through a flat
direct-indexed table. A separate Overrides list holds curated pairs for symbol
ranges not covered by the generated blocks; it is consulted first and wins.

Stores are built through a Builder and immutable after Freeze.
*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'translit.table'
func tracer() tracing.Trace {
	return tracing.Select("translit.table")
}
