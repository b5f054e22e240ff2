package util

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "lowercase", input: "Bio Melk", want: "bio melk"},
		{name: "punctuation to space", input: "tony's chocolade!", want: "tony s chocolade"},
		{name: "collapse whitespace", input: "  haver   melk \t", want: "haver melk"},
		{name: "diacritics kept", input: "Crème Fraîche", want: "crème fraîche"},
		{name: "digits kept", input: "cola 1,5L", want: "cola 1 5l"},
		{name: "empty", input: "", want: ""},
		{name: "only symbols", input: "!!!", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.want {
				t.Fatalf("got %q want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Bio Melk", "fair-trade bananen", "Café au Lait 0.5L", "  ", "ÄÖÜ ß"}
	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Fatalf("not idempotent for %q: %q vs %q", input, once, twice)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("bio volle melk")
	if len(tokens) != 3 || tokens[0] != "bio" || tokens[2] != "melk" {
		t.Fatalf("unexpected tokens: %v", tokens)
	}
	if got := Tokenize(""); len(got) != 0 {
		t.Fatalf("expected no tokens, got %v", got)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{input: "2,49", want: 2.49},
		{input: "€ 3.99 per stuk", want: 3.99},
		{input: "nu voor 1,00", want: 1},
	}
	for _, tc := range cases {
		got := ParsePrice(tc.input)
		if got == nil || *got != tc.want {
			t.Fatalf("ParsePrice(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
	if got := ParsePrice("geen prijs"); got != nil {
		t.Fatalf("expected nil, got %v", *got)
	}
}
