package scene

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLA is a CSS-style colour: hue in degrees, saturation and lightness in
// percent, alpha in [0,1].
type HSLA struct {
	H, S, L, A float64
}

// Palette converts HSLA colours to RGB, caching by the integer parts of hue,
// saturation and lightness.
type Palette struct {
	cache map[uint32][3]uint8
}

func NewPalette() *Palette {
	return &Palette{cache: make(map[uint32][3]uint8, 4096)}
}

// Color returns c as a non-premultiplied RGBA colour.
func (p *Palette) Color(c HSLA) color.NRGBA {
	h := int(math.Floor(wrapDegrees(c.H)))
	s := int(math.Floor(clampPercent(c.S)))
	l := int(math.Floor(clampPercent(c.L)))
	key := uint32(h)<<16 | uint32(s)<<8 | uint32(l)

	rgb, ok := p.cache[key]
	if !ok {
		r, g, b := colorful.Hsl(float64(h), float64(s)/100, float64(l)/100).Clamped().RGB255()
		rgb = [3]uint8{r, g, b}
		p.cache[key] = rgb
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: alphaByte(c.A)}
}

// Len reports how many distinct colours have been converted.
func (p *Palette) Len() int { return len(p.cache) }

func wrapDegrees(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v) || v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func alphaByte(a float64) uint8 {
	switch {
	case math.IsNaN(a) || a <= 0:
		return 0
	case a >= 1:
		return 255
	}
	return uint8(math.Round(a * 255))
}
