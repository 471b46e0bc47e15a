package scene

import "image/color"

// Point is a screen-space position.
type Point struct {
	X, Y float64
}

// Surface is the drawing capability a frame is rendered onto. Colours may be
// translucent; the fade trail depends on it.
type Surface interface {
	Size() (w, h float64)
	FillRect(c color.Color)
	StrokePath(pts []Point, width float64, c color.Color)
	FillCircle(x, y, r float64, c color.Color)
	// SetGlow sets the shadow applied to subsequent strokes and fills. A zero
	// blur or a transparent colour turns it off.
	SetGlow(blur float64, c color.Color)
}

// Viewport is the geometry derived from the surface size.
type Viewport struct {
	CenterX, CenterY float64
	MaxRadius        float64
}
