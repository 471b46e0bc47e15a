package scene

import (
	"image/color"

	"github.com/iburimskiy/tunnelviz/internal/animation"
	"github.com/iburimskiy/tunnelviz/internal/config"
)

// Renderer paints one frame of the tunnel and particles from an animation
// state. It holds a colour cache and a reusable point buffer, so it should be
// kept across frames.
type Renderer struct {
	palette   *Palette
	points    []Point
	numPoints int
	fade      color.NRGBA
}

func NewRenderer() *Renderer {
	return &Renderer{
		palette:   NewPalette(),
		points:    make([]Point, 0, config.ContourPoints+1),
		numPoints: config.ContourPoints,
		fade:      color.NRGBA{A: alphaByte(config.FadeAlpha)},
	}
}

// Palette exposes the renderer's colour cache.
func (r *Renderer) Palette() *Palette { return r.palette }

// Frame draws st onto s. The caller has already advanced the state for this
// frame.
func (r *Renderer) Frame(s Surface, st *animation.State, vp Viewport) {
	s.SetGlow(0, color.Transparent)
	s.FillRect(r.fade)

	glow := st.GlowIntensity
	s.SetGlow(15+glow*10, r.palette.Color(HSLA{H: st.HueRotation, S: 70, L: 50, A: glow}))

	for ring := range st.CircleScales {
		r.points = RingContour(r.points, st, ring, vp, r.numPoints)
		look := RingStyle(st, ring, vp)
		s.StrokePath(r.points, look.Halo.Width, r.palette.Color(look.Halo.Color))
		s.StrokePath(r.points, look.Core.Width, r.palette.Color(look.Core.Color))
	}

	for i := range st.Particles {
		p := ParticleLook(st, i)
		s.SetGlow(p.GlowBlur, r.palette.Color(p.Glow))
		s.FillCircle(p.Halo.X, p.Halo.Y, p.Halo.R, r.palette.Color(p.Halo.Color))
		s.FillCircle(p.Core.X, p.Core.Y, p.Core.R, r.palette.Color(p.Core.Color))
	}
}
