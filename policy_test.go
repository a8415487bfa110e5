package translit

import (
	"errors"
	"testing"

	"github.com/npillmayer/translit/table"
)

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		name string
		want Policy
	}{
		{"", Default},
		{"default", Default},
		{"ignore", Ignore},
		{"replace", Replace},
		{"preserve", Preserve},
		{"invalid", Invalid},
		{"strict", Strict},
	}
	for _, c := range cases {
		p, err := ParsePolicy(c.name)
		if err != nil {
			t.Fatalf("ParsePolicy(%q) failed: %v", c.name, err)
		}
		if p != c.want {
			t.Fatalf("ParsePolicy(%q) = %v, want %v", c.name, p, c.want)
		}
	}
}

func TestParsePolicyUnknown(t *testing.T) {
	_, err := ParsePolicy("panic")
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy, got %v", err)
	}
}

func TestUnknownPolicyValue(t *testing.T) {
	_, err := TransliterateWithPolicy("abc", Policy(99), "")
	if !errors.Is(err, ErrUnknownPolicy) {
		t.Fatalf("expected ErrUnknownPolicy for out-of-range policy, got %v", err)
	}
}

func TestIgnoreMatchesDefault(t *testing.T) {
	in := "é😀x"
	def, err := TransliterateWithPolicy(in, Default, "")
	if err != nil {
		t.Fatal(err)
	}
	ign, err := TransliterateWithPolicy(in, Ignore, "")
	if err != nil {
		t.Fatal(err)
	}
	if def != ign {
		t.Fatalf("Ignore diverges from Default: %q vs %q", ign, def)
	}
	if def != "ex" {
		t.Fatalf("unmapped code point not dropped: %q", def)
	}
}

func TestReplacePolicy(t *testing.T) {
	out, err := TransliterateWithPolicy("😀", Replace, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "?" {
		t.Fatalf("default replacement: got %q, want %q", out, "?")
	}
	out, err = TransliterateWithPolicy("😀", Replace, "[x]")
	if err != nil {
		t.Fatal(err)
	}
	if out != "[x]" {
		t.Fatalf("custom replacement: got %q, want %q", out, "[x]")
	}
	out, err = TransliterateWithPolicy("é😀", Replace, "?")
	if err != nil {
		t.Fatal(err)
	}
	if out != "e?" {
		t.Fatalf("mixed replace: got %q, want %q", out, "e?")
	}
}

func TestPreservePolicy(t *testing.T) {
	out, err := TransliterateWithPolicy("é😀", Preserve, "")
	if err != nil {
		t.Fatal(err)
	}
	if out != "e😀" {
		t.Fatalf("preserve: got %q, want %q", out, "e😀")
	}
}

func TestInvalidAliasesPreserve(t *testing.T) {
	in := "a😀Жb"
	pres, err := TransliterateWithPolicy(in, Preserve, "")
	if err != nil {
		t.Fatal(err)
	}
	inv, err := TransliterateWithPolicy(in, Invalid, "")
	if err != nil {
		t.Fatal(err)
	}
	if pres != inv {
		t.Fatalf("Invalid diverges from Preserve: %q vs %q", inv, pres)
	}
	if inv != "a😀Zhb" {
		t.Fatalf("preserve passthrough: got %q", inv)
	}
}

func TestStrictIndex(t *testing.T) {
	out, err := TransliterateWithPolicy("é😀", Strict, "")
	if err == nil {
		t.Fatal("expected strict failure")
	}
	var se *StrictError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StrictError, got %T", err)
	}
	if se.Index != 1 {
		t.Fatalf("strict index: got %d, want 1 (character index, not byte offset)", se.Index)
	}
	if se.Partial != "e" {
		t.Fatalf("strict partial: got %q, want %q", se.Partial, "e")
	}
	if out != "e" {
		t.Fatalf("strict partial result: got %q, want %q", out, "e")
	}
}

func TestStrictFirstFailureWins(t *testing.T) {
	_, err := TransliterateWithPolicy("😀😀", Strict, "")
	var se *StrictError
	if !errors.As(err, &se) {
		t.Fatalf("expected *StrictError, got %v", err)
	}
	if se.Index != 0 {
		t.Fatalf("strict index: got %d, want 0", se.Index)
	}
}

func TestStrictSuccess(t *testing.T) {
	out, err := TransliterateWithPolicy("déjà vu", Strict, "")
	if err != nil {
		t.Fatalf("fully mapped input should pass strict: %v", err)
	}
	if out != "deja vu" {
		t.Fatalf("strict success: got %q", out)
	}
}

func TestOverridePrecedence(t *testing.T) {
	builder := table.NewBuilder()
	if err := builder.Set(0x1D400, "table"); err != nil {
		t.Fatal(err)
	}
	overrides := table.MustOverrides([]table.Override{{Rune: 0x1D400, Repl: "A"}})
	tr := New(builder.Freeze(), overrides)
	if out := tr.Transliterate("\U0001D400"); out != "A" {
		t.Fatalf("override must win over block table: got %q", out)
	}
}
