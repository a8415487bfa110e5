package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverridesValidation(t *testing.T) {
	_, err := NewOverrides([]Override{
		{Rune: 0x1D401, Repl: "B"},
		{Rune: 0x1D400, Repl: "A"},
	})
	require.Error(t, err, "unsorted pairs must be rejected")

	_, err = NewOverrides([]Override{
		{Rune: 0x1D400, Repl: "A"},
		{Rune: 0x1D400, Repl: "A"},
	})
	require.Error(t, err, "duplicate code points must be rejected")

	_, err = NewOverrides([]Override{{Rune: 0x1D400, Repl: ""}})
	require.Error(t, err, "empty replacement must be rejected")

	_, err = NewOverrides([]Override{{Rune: 0x1D400, Repl: "Ä"}})
	require.Error(t, err, "non-ASCII replacement must be rejected")
}

func TestOverridesLookup(t *testing.T) {
	o, err := NewOverrides([]Override{
		{Rune: 0x1D400, Repl: "A"},
		{Rune: 0x1D402, Repl: "C"},
		{Rune: 0x1D5A0, Repl: "A"},
	})
	require.NoError(t, err)

	repl, ok := o.Lookup(0x1D400)
	require.True(t, ok)
	assert.Equal(t, "A", repl)

	repl, ok = o.Lookup(0x1D5A0)
	require.True(t, ok)
	assert.Equal(t, "A", repl)

	_, ok = o.Lookup(0x1D401) // between two entries
	assert.False(t, ok)
	_, ok = o.Lookup(0x41) // below the table
	assert.False(t, ok)
	_, ok = o.Lookup(0x10FFFF) // above the table
	assert.False(t, ok)
}

func TestMustOverridesPanics(t *testing.T) {
	assert.Panics(t, func() {
		MustOverrides([]Override{{Rune: 0x10, Repl: ""}})
	})
}
