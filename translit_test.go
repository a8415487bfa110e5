package translit

import (
	"strings"
	"testing"
)

func TestASCIIIdentity(t *testing.T) {
	for cp := rune(0); cp < 0x80; cp++ {
		s := string(cp)
		if out := Transliterate(s); out != s {
			t.Fatalf("ASCII %#x not preserved: got %q", cp, out)
		}
	}
	s := "The quick brown fox 123"
	if out := Transliterate(s); out != s {
		t.Fatalf("ASCII string not preserved: got %q", out)
	}
}

func TestEmptyString(t *testing.T) {
	if out := Transliterate(""); out != "" {
		t.Fatalf("empty input should stay empty, got %q", out)
	}
}

func TestLatin1Basic(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"é", "e"},
		{"É", "E"},
		{"Ä", "A"},
		{"ä", "a"},
		{"Ö", "O"},
		{"ö", "o"},
		{"Ü", "U"},
		{"ü", "u"},
		{"ß", "ss"},
		{"Þ", "Th"},
		{"þ", "th"},
		{"Æ", "AE"},
		{"æ", "ae"},
		{"®", "(r)"},
		{"©", "(c)"},
	}
	for _, c := range cases {
		if out := Transliterate(c.in); out != c.want {
			t.Errorf("Transliterate(%q) = %q, want %q", c.in, out, c.want)
		}
	}
}

func TestDegreeEquivalence(t *testing.T) {
	if a, b := Transliterate("℉"), Transliterate("°F"); a != b {
		t.Fatalf("degree Fahrenheit mismatch: %q vs %q", a, b)
	}
	if a, b := Transliterate("℃"), Transliterate("°C"); a != b {
		t.Fatalf("degree Celsius mismatch: %q vs %q", a, b)
	}
}

func TestCircledLatin(t *testing.T) {
	for i := rune(0); i < 26; i++ {
		in := string(0x24D0 + i)
		want := string('a' + i)
		if out := Transliterate(in); out != want {
			t.Errorf("circled %q = %q, want %q", in, out, want)
		}
	}
}

func TestEnclosedAlphanumerics(t *testing.T) {
	if out := Transliterate("ⓐⒶ⑳⒇⒛⓴⓾⓿"); out != "aA20(20)20.20100" {
		t.Fatalf("enclosed alphanumerics: got %q", out)
	}
}

func TestFullwidthSentence(t *testing.T) {
	out := Transliterate("ｔｈｅ ｑｕｉｃｋ ｂｒｏｗｎ ｆｏｘ ｊｕｍｐｓ ｏｖｅｒ ｔｈｅ ｌａｚｙ ｄｏｇ １２３４５")
	if out != "the quick brown fox jumps over the lazy dog 12345" {
		t.Fatalf("fullwidth sentence: got %q", out)
	}
}

func TestUnmappedDropped(t *testing.T) {
	if out := Transliterate("ꔀ"); out != "" {
		t.Fatalf("unmapped block should give empty output, got %q", out)
	}
	// Block 0x1E is allocated but its table ends at 0x1EF9.
	if out := Transliterate("ỿ"); out != "" {
		t.Fatalf("unmapped slot in partial block should give empty output, got %q", out)
	}
}

func TestFractions(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"¼", "1/4"}, {"½", "1/2"}, {"¾", "3/4"},
		{"⅓", "1/3"}, {"⅔", "2/3"}, {"⅕", "1/5"},
		{"⅙", "1/6"}, {"⅛", "1/8"}, {"⅞", "7/8"},
	}
	for _, c := range cases {
		if out := strings.TrimSpace(Transliterate(c.in)); out != c.want {
			t.Errorf("fraction %q = %q, want %q", c.in, out, c.want)
		}
	}
	// The leading space keeps "2¼" readable.
	if out := Transliterate("2¼"); out != "2 1/4" {
		t.Fatalf("mixed number: got %q", out)
	}
}

func TestRomanNumerals(t *testing.T) {
	out := Transliterate("ⅠⅡⅢⅣⅤⅥⅦⅧⅨⅩⅪⅫⅬⅭⅮⅯ")
	if out == "" {
		t.Fatal("roman numerals gave empty output")
	}
	for _, c := range out {
		switch c {
		case 'I', 'V', 'X', 'L', 'C', 'D', 'M':
		default:
			t.Fatalf("unexpected character %q in %q", c, out)
		}
	}
}

func TestGreekSample(t *testing.T) {
	out := Transliterate("ΑΒΓΔΕΖΗΘΙΚΛΜΝΞΟΠΡΣΤΥΦΧΨΩ")
	if !strings.Contains(out, "Th") {
		t.Fatalf("expected Th for Theta in %q", out)
	}
	if !strings.Contains(out, "Ph") {
		t.Fatalf("expected Ph for Phi in %q", out)
	}
}

func TestCyrillicSentence(t *testing.T) {
	out := Transliterate("Съешь же ещё этих мягких французских булок, да выпей чаю")
	if !strings.Contains(out, "frantsuzskikh") {
		t.Fatalf("expected frantsuzskikh in %q", out)
	}
	if !strings.Contains(out, "chaiu") {
		t.Fatalf("expected chaiu in %q", out)
	}
}

func TestKanaSample(t *testing.T) {
	if out := Transliterate("にほんご"); out != "nihongo" {
		t.Fatalf("hiragana: got %q", out)
	}
	if out := Transliterate("テスト"); out != "tesuto" {
		t.Fatalf("katakana: got %q", out)
	}
}

func TestMixedSentence(t *testing.T) {
	out := Transliterate("PŘÍLIŠ ŽLUŤOUČKÝ KŮŇ pěl ďábelské ÓDY déjà vu — Русский текст 中文 😀 𝔘𝔫𝔦𝔠𝔬𝔡𝔢")
	if !isASCII(out) {
		t.Fatalf("non-ASCII output: %q", out)
	}
	for _, want := range []string{"PRILIS", "ZLUTOUCKY", "deja vu", "Russkii", "Zhong Wen", "Unicode"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in %q", want, out)
		}
	}
}

func TestCJKExpansion(t *testing.T) {
	// Each ideograph expands to a multi-letter reading with trailing space.
	if out := Transliterate("中文"); out != "Zhong Wen " {
		t.Fatalf("CJK expansion: got %q", out)
	}
}
