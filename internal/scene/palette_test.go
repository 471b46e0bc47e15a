package scene

import (
	"image/color"
	"testing"
)

func TestPaletteKnownColors(t *testing.T) {
	tests := []struct {
		name string
		in   HSLA
		want color.NRGBA
	}{
		{"red", HSLA{H: 0, S: 100, L: 50, A: 1}, color.NRGBA{255, 0, 0, 255}},
		{"green", HSLA{H: 120, S: 100, L: 50, A: 1}, color.NRGBA{0, 255, 0, 255}},
		{"blue", HSLA{H: 240, S: 100, L: 50, A: 1}, color.NRGBA{0, 0, 255, 255}},
		{"white", HSLA{H: 77, S: 30, L: 100, A: 1}, color.NRGBA{255, 255, 255, 255}},
		{"black", HSLA{H: 200, S: 90, L: 0, A: 0.5}, color.NRGBA{0, 0, 0, 128}},
		{"grey", HSLA{H: 10, S: 0, L: 50, A: 0}, color.NRGBA{128, 128, 128, 0}},
		{"wrapped hue", HSLA{H: 360, S: 100, L: 50, A: 1}, color.NRGBA{255, 0, 0, 255}},
		{"negative hue", HSLA{H: -120, S: 100, L: 50, A: 1}, color.NRGBA{0, 0, 255, 255}},
		{"clamped saturation", HSLA{H: 0, S: 180, L: 50, A: 2}, color.NRGBA{255, 0, 0, 255}},
	}
	p := NewPalette()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Color(tt.in); got != tt.want {
				t.Errorf("Color(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaletteCachesByRoundedKey(t *testing.T) {
	p := NewPalette()
	a := p.Color(HSLA{H: 10.2, S: 50.7, L: 40.9, A: 1})
	b := p.Color(HSLA{H: 10.8, S: 50.1, L: 40.1, A: 0.25})
	if p.Len() != 1 {
		t.Fatalf("expected one cached entry, got %d", p.Len())
	}
	if a.R != b.R || a.G != b.G || a.B != b.B {
		t.Fatalf("same key gave different colours: %v vs %v", a, b)
	}
	if a.A == b.A {
		t.Fatalf("alpha should be applied per call, both were %d", a.A)
	}

	p.Color(HSLA{H: 11, S: 50, L: 40, A: 1})
	if p.Len() != 2 {
		t.Fatalf("expected a second entry for a new hue, got %d", p.Len())
	}
}
