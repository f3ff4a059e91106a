package theme

import (
	"regexp"
	"testing"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestPalettesAreValidHex(t *testing.T) {
	for _, p := range []Palette{Mocha(), Latte()} {
		colors := p.Colors()
		if len(colors) != 15 {
			t.Errorf("%s: expected 15 colors, got %d", p.Mode, len(colors))
		}
		for _, c := range colors {
			if !hexColorRegex.MatchString(string(c)) {
				t.Errorf("%s: invalid hex color %q", p.Mode, c)
			}
		}
	}
}

func TestPalettesDiffer(t *testing.T) {
	dark, light := Mocha(), Latte()
	if dark.Text == light.Text || dark.Base == light.Base {
		t.Fatalf("light and dark palettes should not share text/base colors")
	}
	if For(Light).Mode != Light || For(Dark).Mode != Dark {
		t.Fatalf("For returned the wrong palette")
	}
	if For("").Mode != Dark {
		t.Fatalf("unknown mode should fall back to dark")
	}
}

func TestToggleTwiceRestores(t *testing.T) {
	for _, m := range []Mode{Light, Dark} {
		if got := m.Toggle().Toggle(); got != m {
			t.Errorf("%s toggled twice = %s", m, got)
		}
		if m.Toggle() == m {
			t.Errorf("%s toggle did not change mode", m)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode(" LIGHT "); err != nil || m != Light {
		t.Fatalf("ParseMode(LIGHT) = %q, %v", m, err)
	}
	if _, err := ParseMode("sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
