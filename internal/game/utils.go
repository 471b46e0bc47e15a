package game

import (
	"image/color"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toNRGBA(c color.Color) color.NRGBA {
	if n, ok := c.(color.NRGBA); ok {
		return n
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// underlay fades a glow colour for the soft pass drawn beneath a shape.
func underlay(c color.NRGBA) color.NRGBA {
	c.A = uint8(float64(c.A)*glowAlpha + 0.5)
	return c
}

// colorFloats returns straight-alpha components in [0,1].
func colorFloats(c color.NRGBA) (r, g, b, a float32) {
	return float32(c.R) / 0xff, float32(c.G) / 0xff, float32(c.B) / 0xff, float32(c.A) / 0xff
}
