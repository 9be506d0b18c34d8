package morse

import (
	"testing"
)

func TestCodebookSymbol(t *testing.T) {
	cb := International()
	tests := []struct {
		r    rune
		want string
	}{
		{'A', ".-"},
		{'a', ".-"},
		{' ', "/"},
		{'\t', "\t"},
		{'\n', "\n"},
		{'%', "----- -..-. -----"},
		{'é', "..-.."},
		{'Ж', "...-"},
		{'ガ', ".-.. .."},
		{'ㅒ', ".. ..-"},
		{'ך', "-.-"},
		{'ك', "-.-"},
		{'^', ""},
		{'😀', ""},
		{0, ""},
	}
	for _, tt := range tests {
		if got := cb.Symbol(tt.r); got != tt.want {
			t.Fatalf("Symbol(%q) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestCodebookRejects(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"duplicate", []Entry{{".-", "A"}, {"-...", "A"}}},
		{"space", []Entry{{".-", " "}}},
		{"tab", []Entry{{".-", "\t"}}},
		{"outside BMP", []Entry{{".-", "😀"}}},
		{"bad symbol", []Entry{{".x", "A"}}},
		{"double space", []Entry{{".-  -", "A"}}},
		{"slash", []Entry{{"/", "A"}}},
		{"no chars", []Entry{{".-", ""}}},
		{"invalid UTF-8", []Entry{{".-", "\xff"}}},
	}
	for _, tt := range tests {
		if _, err := NewCodebook(tt.name, tt.entries); err == nil {
			t.Fatalf("expected codebook %q to be rejected", tt.name)
		}
	}
}

func TestCustomCodebook(t *testing.T) {
	cb, err := NewCodebook("tiny", []Entry{
		{".-", "Aa"},
		{"-...", "Bb"},
		{".-.-.- .-.-.- .-.-.-", "…"},
	})
	if err != nil {
		t.Fatal(err)
	}
	if cb.Len() != 9 { // 5 characters plus space, tab, line feed, carriage return
		t.Fatalf("expected 9 characters, have %d", cb.Len())
	}
	if s := cb.Encode("ab…c B"); s != ".- -... .-.-.- .-.-.- .-.-.- / -..." {
		t.Fatalf("unexpected encoding %q", s)
	}
}

func TestInternationalCodebookIsComplete(t *testing.T) {
	cb := International()
	for _, script := range Scripts() {
		for _, e := range script.Table().Chart("") {
			r := []rune(e.Chars)[0]
			if cb.Symbol(r) == "" {
				t.Fatalf("%s character %q cannot be encoded", script, r)
			}
		}
	}
}
