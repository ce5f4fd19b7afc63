package life

import (
	"errors"
	"testing"
)

func TestStringAndParse(t *testing.T) {
	g, _ := New(4, 3)
	_ = g.Set(C(0, 0), Alive)
	_ = g.Set(C(3, 1), Alive)
	_ = g.Set(C(1, 2), Alive)

	want := "#...\n...#\n.#.."
	if got := g.String(); got != want {
		t.Fatalf("String() = %q, expected %q", got, want)
	}

	parsed, err := Parse(want)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if !parsed.Equal(g) {
		t.Errorf("Parse(String()) = \n%s\nexpected\n%s", parsed, g)
	}
}

func TestParseAlternateGlyphs(t *testing.T) {
	g, err := Parse("O*_\n_._")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if g.Population() != 2 {
		t.Errorf("Population() = %d, expected 2", g.Population())
	}
	for _, c := range []Coord{C(2, 0), C(0, 1), C(2, 1)} {
		if s, _ := g.Get(c); s != Dead {
			t.Errorf("Get(%v) = %v, expected Dead for '_'", c, s)
		}
	}
	if got, expected := g.String(), "##.\n..."; got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", "   \n\n"},
		{"ragged rows", "###\n##"},
		{"unknown glyph", "#x#"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.input); err == nil {
				t.Errorf("Parse(%q) succeeded, expected error", tc.input)
			}
		})
	}

	if _, err := Parse(""); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Parse(\"\") error = %v, expected ErrInvalidDimensions", err)
	}
}
