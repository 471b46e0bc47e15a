package game

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/tunnelviz/internal/config"
)

func TestInsideButton(t *testing.T) {
	tests := []struct {
		x, y int
		want bool
	}{
		{config.ButtonX, config.ButtonY, true},
		{config.ButtonX + config.ButtonWidth, config.ButtonY + config.ButtonHeight, true},
		{config.ButtonX - 1, config.ButtonY, false},
		{config.ButtonX, config.ButtonY + config.ButtonHeight + 1, false},
	}
	for _, tt := range tests {
		if got := insideButton(tt.x, tt.y); got != tt.want {
			t.Errorf("insideButton(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestColorHelpers(t *testing.T) {
	c := color.NRGBA{R: 255, G: 0, B: 51, A: 200}
	if got := toNRGBA(c); got != c {
		t.Fatalf("toNRGBA changed an NRGBA: %v", got)
	}
	if got := toNRGBA(color.Black); got != (color.NRGBA{A: 255}) {
		t.Fatalf("toNRGBA(black) = %v", got)
	}
	if got := underlay(c).A; got != 70 {
		t.Fatalf("underlay alpha = %d, want 70", got)
	}
	r, g, b, a := colorFloats(c)
	if r != 1 || g != 0 || b != 0.2 || a != float32(200)/0xff {
		t.Fatalf("colorFloats = %v %v %v %v", r, g, b, a)
	}
	if clamp01(-1) != 0 || clamp01(2) != 1 || clamp01(0.25) != 0.25 {
		t.Fatal("clamp01")
	}
}
