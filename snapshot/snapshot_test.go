package snapshot

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/translit/table"
	"github.com/npillmayer/translit/unidata"
)

func TestRoundTrip(t *testing.T) {
	store, overrides := unidata.Registry()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, store, overrides))

	restored, restoredOverrides, err := Read(&buf)
	require.NoError(t, err)

	assert.Equal(t, store.Len(), restored.Len())
	assert.Equal(t, store.NumBlocks(), restored.NumBlocks())
	require.Equal(t, len(overrides), len(restoredOverrides))
	for i, o := range overrides {
		assert.Equal(t, o, restoredOverrides[i])
	}
	for cp, repl := range store.All() {
		got, ok := restored.Lookup(cp)
		require.True(t, ok, "U+%04X missing after round trip", cp)
		require.Equal(t, repl, got, "U+%04X", cp)
	}
	// Coverage sets must be identical.
	assert.True(t, store.Stats().Coverage.Equals(restored.Stats().Coverage))
}

func TestRoundTripEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, table.NewBuilder().Freeze(), nil))
	restored, overrides, err := Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, restored.Len())
	assert.Empty(t, overrides)
}

func TestReadBadMagic(t *testing.T) {
	_, _, err := Read(bytes.NewReader([]byte("NOTASNAPSHOT")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad magic")
}

func TestReadTruncated(t *testing.T) {
	store, overrides := unidata.Registry()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, store, overrides))

	_, _, err := Read(bytes.NewReader(buf.Bytes()[:buf.Len()/2]))
	require.Error(t, err)
}
