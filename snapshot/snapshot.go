/*
Package snapshot serializes a frozen mapping store (plus its override list)
to a compact, zstd-compressed binary form.

This is the wire format a build-time table generator targets: it derives the
mapping offline, writes one snapshot, and the consuming process restores it
with Read. Decoding rebuilds the store through table.Builder, so every store
invariant (ASCII-only replacements, no empty entries, no surrogates) is
re-verified on load.
*/
package snapshot

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/npillmayer/translit/table"
)

// magic identifies a snapshot stream; the trailing byte is the format
// version.
var magic = []byte("TLSNAP\x01")

// maxReplacementLen bounds a single replacement on decode. The longest
// reference entries are short multi-word phrases; anything beyond this is a
// corrupt stream.
const maxReplacementLen = 256

// Write serializes store and overrides to w.
//
// Layout (after the magic header, zstd-compressed): uvarint entry count, then
// per entry uvarint code point, uvarint length, raw ASCII bytes, in ascending
// code point order; then the override list in the same shape.
func Write(w io.Writer, store *table.Store, overrides table.Overrides) error {
	if _, err := w.Write(magic); err != nil {
		return err
	}
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err = writeEntries(zw, store, overrides); err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func writeEntries(zw io.Writer, store *table.Store, overrides table.Overrides) error {
	var scratch [binary.MaxVarintLen64]byte
	writeUvarint := func(v uint64) error {
		n := binary.PutUvarint(scratch[:], v)
		_, err := zw.Write(scratch[:n])
		return err
	}
	writePair := func(cp rune, repl string) error {
		if err := writeUvarint(uint64(cp)); err != nil {
			return err
		}
		if err := writeUvarint(uint64(len(repl))); err != nil {
			return err
		}
		_, err := io.WriteString(zw, repl)
		return err
	}
	if err := writeUvarint(uint64(store.Len())); err != nil {
		return err
	}
	for cp, repl := range store.All() {
		if err := writePair(cp, repl); err != nil {
			return err
		}
	}
	if err := writeUvarint(uint64(len(overrides))); err != nil {
		return err
	}
	for _, o := range overrides {
		if err := writePair(o.Rune, o.Repl); err != nil {
			return err
		}
	}
	return nil
}

// Read restores a mapping store and override list from a snapshot stream.
func Read(r io.Reader) (*table.Store, table.Overrides, error) {
	header := make([]byte, len(magic))
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, nil, fmt.Errorf("reading snapshot header: %w", err)
	}
	if !bytes.Equal(header, magic) {
		return nil, nil, fmt.Errorf("not a table snapshot (bad magic %q)", header)
	}
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer zr.Close()
	br := bufio.NewReader(zr)
	readPair := func() (rune, string, error) {
		cp, err := binary.ReadUvarint(br)
		if err != nil {
			return 0, "", err
		}
		length, err := binary.ReadUvarint(br)
		if err != nil {
			return 0, "", err
		}
		if length > maxReplacementLen {
			return 0, "", fmt.Errorf("implausible replacement length %d for code point %#x", length, cp)
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(br, buf); err != nil {
			return 0, "", err
		}
		return rune(cp), string(buf), nil
	}
	count, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, nil, fmt.Errorf("reading entry count: %w", err)
	}
	builder := table.NewBuilder()
	for i := uint64(0); i < count; i++ {
		cp, repl, err := readPair()
		if err != nil {
			return nil, nil, fmt.Errorf("reading entry %d: %w", i, err)
		}
		if repl == "" {
			return nil, nil, fmt.Errorf("empty replacement for code point %#x", cp)
		}
		if err := builder.Set(cp, repl); err != nil {
			return nil, nil, err
		}
	}
	ocount, err := binary.ReadUvarint(br)
	if err != nil {
		return nil, nil, fmt.Errorf("reading override count: %w", err)
	}
	pairs := make([]table.Override, 0, ocount)
	for i := uint64(0); i < ocount; i++ {
		cp, repl, err := readPair()
		if err != nil {
			return nil, nil, fmt.Errorf("reading override %d: %w", i, err)
		}
		pairs = append(pairs, table.Override{Rune: cp, Repl: repl})
	}
	overrides, err := table.NewOverrides(pairs)
	if err != nil {
		return nil, nil, err
	}
	return builder.Freeze(), overrides, nil
}
