package unidata

import (
	"math/rand"
	"testing"
)

func TestRegistryBuildsOnce(t *testing.T) {
	s1, o1 := Registry()
	s2, o2 := Registry()
	if s1 != s2 {
		t.Fatal("Registry must return the same store on every call")
	}
	if len(o1) != len(o2) {
		t.Fatal("Registry must return the same override list on every call")
	}
	if s1.Len() == 0 {
		t.Fatal("registry store is empty")
	}
}

func TestRegistrySpotChecks(t *testing.T) {
	store, _ := Registry()
	cases := []struct {
		cp   rune
		want string
	}{
		{0x00DF, "ss"},           // ß
		{0x00DE, "Th"},           // Þ
		{0x0416, "Zh"},           // Ж
		{0x0158, "R"},            // Ř
		{0x2654, "white king"},   // ♔
		{0x265E, "black knight"}, // ♞
		{0x1F670, "et"},          // 🙰
		{0xFF51, "q"},            // ｑ
		{0x3053, "ko"},           // こ
	}
	for _, c := range cases {
		got, ok := store.Lookup(c.cp)
		if !ok {
			t.Errorf("U+%04X: expected mapping %q, got absent", c.cp, c.want)
			continue
		}
		if got != c.want {
			t.Errorf("U+%04X: got %q, want %q", c.cp, got, c.want)
		}
	}
}

// Presence bitmap and entry tables must agree: members of the coverage set
// resolve to non-empty ASCII replacements, non-members are absent.
func TestRegistryCoverageConsistency(t *testing.T) {
	store, _ := Registry()
	st := store.Stats()
	if st.Coverage.IsEmpty() {
		t.Fatal("coverage set is empty")
	}
	if int(st.Coverage.GetCardinality()) != store.Len() {
		t.Fatalf("coverage cardinality %d != entry count %d",
			st.Coverage.GetCardinality(), store.Len())
	}
	it := st.Coverage.Iterator()
	for it.HasNext() {
		cp := rune(it.Next())
		repl, ok := store.Lookup(cp)
		if !ok || repl == "" {
			t.Fatalf("U+%04X in coverage but lookup gave (%q, %v)", cp, repl, ok)
		}
		for i := 0; i < len(repl); i++ {
			if repl[i] >= 0x80 {
				t.Fatalf("U+%04X maps to non-ASCII %q", cp, repl)
			}
		}
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 10000; i++ {
		cp := rune(rng.Intn(0x110000))
		if cp >= 0xD800 && cp <= 0xDFFF {
			continue
		}
		if st.Coverage.Contains(uint32(cp)) {
			continue
		}
		if repl, ok := store.Lookup(cp); ok {
			t.Fatalf("U+%04X not in coverage but lookup gave %q", cp, repl)
		}
	}
}

func TestMathOverridesShape(t *testing.T) {
	_, overrides := Registry()
	if len(overrides) == 0 {
		t.Fatal("no math symbol overrides")
	}
	for i, o := range overrides {
		if i > 0 && overrides[i-1].Rune >= o.Rune {
			t.Fatalf("override list not ascending at %d (U+%04X)", i, o.Rune)
		}
		if o.Rune < 0x1D400 || o.Rune > 0x1D7FF {
			t.Fatalf("override U+%04X outside the math alphanumeric range", o.Rune)
		}
	}
	repl, ok := overrides.Lookup(0x1D5A0) // MATHEMATICAL SANS-SERIF CAPITAL A
	if !ok || repl != "A" {
		t.Fatalf("sans-serif capital A: got (%q, %v)", repl, ok)
	}
	repl, ok = overrides.Lookup(0x1D518) // MATHEMATICAL FRAKTUR CAPITAL U
	if !ok || repl != "U" {
		t.Fatalf("fraktur capital U: got (%q, %v)", repl, ok)
	}
}
