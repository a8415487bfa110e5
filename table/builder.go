package table

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Builder accumulates mapping entries and freezes them into a Store.
// The build phase is single-threaded; the frozen Store is read-only.
type Builder struct {
	direct   [directSize]string
	pending  map[int]map[rune]string // block index -> entries
	maxBlock int
	frozen   bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		pending:  make(map[int]map[rune]string),
		maxBlock: -1,
	}
}

// Set registers a replacement for a code point.
//
// An empty replacement is pruned silently (it is semantically "no mapping"
// and must never be stored). Replacements with non-ASCII bytes, surrogate
// code points, and code points outside the Unicode range are rejected.
func (b *Builder) Set(cp rune, repl string) error {
	if b.frozen {
		return fmt.Errorf("table builder is frozen")
	}
	if cp < 0 || cp > 0x10FFFF {
		return fmt.Errorf("code point out of range: %#x", cp)
	}
	if cp >= 0xD800 && cp <= 0xDFFF {
		return fmt.Errorf("surrogate code point: %#x", cp)
	}
	for i := 0; i < len(repl); i++ {
		if repl[i] >= 0x80 {
			return fmt.Errorf("non-ASCII replacement %q for code point %#x", repl, cp)
		}
	}
	if repl == "" {
		return nil // empty <=> absent
	}
	if cp < directSize {
		b.direct[cp] = repl
		return nil
	}
	bi := int(cp >> 8)
	blk := b.pending[bi]
	if blk == nil {
		blk = make(map[rune]string)
		b.pending[bi] = blk
	}
	blk[cp] = repl
	if bi > b.maxBlock {
		b.maxBlock = bi
	}
	return nil
}

// SetAll registers every entry of a block data map. It stops at the first
// invalid entry.
func (b *Builder) SetAll(entries map[rune]string) error {
	for cp, repl := range entries {
		if err := b.Set(cp, repl); err != nil {
			return err
		}
	}
	return nil
}

// Freeze seals the builder into an immutable Store, computing the presence
// bitmap of every block and the coverage set. The builder may not be used
// afterwards.
func (b *Builder) Freeze() *Store {
	store := &Store{
		direct:   b.direct,
		coverage: roaring.New(),
	}
	if b.maxBlock >= 0 {
		store.blocks = make([]block, b.maxBlock+1)
	}
	for cp := 0; cp < directSize; cp++ {
		if b.direct[cp] != "" {
			store.entries++
			store.coverage.Add(uint32(cp))
		}
	}
	for bi, entries := range b.pending {
		blk := &store.blocks[bi]
		blk.entries = entries
		for cp := range entries {
			lo := uint32(cp) & 0xFF
			blk.bitmap[lo>>6] |= 1 << (lo & 63)
			store.coverage.Add(uint32(cp))
		}
		store.entries += len(entries)
	}
	b.pending = nil
	b.frozen = true
	tracer().Infof("mapping store frozen: blocks=%d entries=%d coverage=%d",
		len(store.blocks), store.entries, store.coverage.GetCardinality())
	return store
}
