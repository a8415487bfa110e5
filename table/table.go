package table

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// BlockSize is the number of consecutive code points per block.
// block index = code point >> 8; no mapping entry crosses a block boundary.
const BlockSize = 256

// directSize is the extent of the direct-indexed range (0x00..0xFF).
const directSize = 0x100

// block is one shard of the sparse mapping.
//   - bitmap: 256 bits, bit i set iff code point block*256+i has an entry.
//     Negative lookups (the overwhelming majority for exotic code points)
//     are answered from the bitmap alone, without probing the map.
//   - entries: replacement strings keyed by full code point.
//
// Invariant: bitmap bit set <=> entries contains the key with a non-empty,
// pure-ASCII value.
type block struct {
	bitmap  [4]uint64
	entries map[rune]string
}

func (b *block) present(lo uint32) bool {
	return b.bitmap[lo>>6]&(1<<(lo&63)) != 0
}

// Store is a frozen code point -> ASCII replacement mapping.
//
// Layout:
//   - direct: flat table for 0x00..0xFF, indexed by code point. ASCII slots
//     are empty (identity is the caller's fast path). An empty string means
//     "no mapping".
//   - blocks: 256-code-point shards for 0x100 and above, each guarded by a
//     presence bitmap. Blocks beyond len(blocks) are implicitly empty.
//
// A Store is immutable after Builder.Freeze and therefore safe for unlimited
// concurrent readers; it is meant to be built once and kept for the process
// lifetime.
type Store struct {
	direct   [directSize]string
	blocks   []block
	entries  int // total entry count incl. direct slots
	coverage *roaring.Bitmap
}

// Lookup returns the ASCII replacement for a code point, if any.
// The returned string is never empty when ok is true.
func (s *Store) Lookup(cp rune) (string, bool) {
	if cp < directSize {
		if cp < 0 {
			return "", false
		}
		if r := s.direct[cp]; r != "" {
			return r, true
		}
		return "", false
	}
	bi := int(cp >> 8)
	if bi >= len(s.blocks) {
		return "", false
	}
	blk := &s.blocks[bi]
	if !blk.present(uint32(cp) & 0xFF) {
		return "", false
	}
	r, ok := blk.entries[cp]
	return r, ok
}

// NumBlocks returns the number of allocated block shards (highest populated
// block index + 1).
func (s *Store) NumBlocks() int { return len(s.blocks) }

// Len returns the total number of mapping entries.
func (s *Store) Len() int { return s.entries }

// All iterates over every mapping entry in ascending code point order.
func (s *Store) All() iter.Seq2[rune, string] {
	return func(yield func(rune, string) bool) {
		for cp := rune(0); cp < directSize; cp++ {
			if s.direct[cp] != "" {
				if !yield(cp, s.direct[cp]) {
					return
				}
			}
		}
		for bi := range s.blocks {
			blk := &s.blocks[bi]
			for lo := uint32(0); lo < BlockSize; lo++ {
				if !blk.present(lo) {
					continue
				}
				cp := rune(bi)<<8 | rune(lo)
				if !yield(cp, blk.entries[cp]) {
					return
				}
			}
		}
	}
}

// Stats reports density metrics for a store.
type Stats struct {
	Blocks          int // allocated block shards
	PopulatedBlocks int // shards with at least one entry
	Entries         int // total entries incl. the direct range
	DirectEntries   int // entries in the 0x00..0xFF direct table

	// Coverage is the set of all mapped code points. The returned bitmap is
	// a copy; callers may mutate it freely.
	Coverage *roaring.Bitmap
}

// FillRatio is the fraction of allocated block shards that hold entries.
func (st Stats) FillRatio() float64 {
	if st.Blocks == 0 {
		return 0
	}
	return float64(st.PopulatedBlocks) / float64(st.Blocks)
}

// Stats returns density metrics and the coverage set of the store.
func (s *Store) Stats() Stats {
	st := Stats{
		Blocks:   len(s.blocks),
		Entries:  s.entries,
		Coverage: s.coverage.Clone(),
	}
	for cp := 0; cp < directSize; cp++ {
		if s.direct[cp] != "" {
			st.DirectEntries++
		}
	}
	for bi := range s.blocks {
		if len(s.blocks[bi].entries) > 0 {
			st.PopulatedBlocks++
		}
	}
	return st
}
