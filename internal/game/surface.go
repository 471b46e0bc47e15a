package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/tunnelviz/internal/scene"
)

// Glow is drawn as a wider translucent underlay since ebiten has no shadow
// blur. These scale the blur radius and glow alpha into that underlay.
const (
	glowSpread = 0.5
	glowAlpha  = 0.35
)

// target is where a canvasSurface puts pixels.
type target interface {
	size() (w, h float64)
	rect(w, h float64, c color.NRGBA)
	stroke(path *vector.Path, width float64, c color.NRGBA)
	circle(x, y, r float64, c color.NRGBA)
}

// canvasSurface turns scene drawing calls into target calls, adding the glow
// underlay and skipping anything that would not be visible.
type canvasSurface struct {
	dst      target
	glowBlur float64
	glow     color.NRGBA
}

var _ scene.Surface = (*canvasSurface)(nil)

func newCanvasSurface(img *ebiten.Image) *canvasSurface {
	return &canvasSurface{dst: &imageTarget{img: img}}
}

func (s *canvasSurface) Size() (float64, float64) {
	return s.dst.size()
}

func (s *canvasSurface) FillRect(c color.Color) {
	w, h := s.dst.size()
	s.dst.rect(w, h, toNRGBA(c))
}

func (s *canvasSurface) StrokePath(pts []scene.Point, width float64, c color.Color) {
	if len(pts) < 2 || width <= 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, pt := range pts[1:] {
		path.LineTo(float32(pt.X), float32(pt.Y))
	}
	path.Close()

	if s.glowing() {
		s.dst.stroke(&path, width+s.glowBlur*glowSpread, underlay(s.glow))
	}
	if col := toNRGBA(c); col.A > 0 {
		s.dst.stroke(&path, width, col)
	}
}

func (s *canvasSurface) FillCircle(x, y, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	if s.glowing() {
		s.dst.circle(x, y, r+s.glowBlur*glowSpread, underlay(s.glow))
	}
	if col := toNRGBA(c); col.A > 0 {
		s.dst.circle(x, y, r, col)
	}
}

func (s *canvasSurface) SetGlow(blur float64, c color.Color) {
	s.glowBlur = blur
	s.glow = toNRGBA(c)
}

func (s *canvasSurface) glowing() bool {
	return s.glowBlur > 0 && underlay(s.glow).A > 0
}

// imageTarget draws onto an ebiten image.
type imageTarget struct {
	img      *ebiten.Image
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

func (t *imageTarget) size() (float64, float64) {
	b := t.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (t *imageTarget) rect(w, h float64, c color.NRGBA) {
	vector.DrawFilledRect(t.img, 0, 0, float32(w), float32(h), c, false)
}

func (t *imageTarget) stroke(path *vector.Path, width float64, c color.NRGBA) {
	if t.white == nil {
		src := ebiten.NewImage(3, 3)
		src.Fill(color.White)
		t.white = src.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	t.vertices, t.indices = path.AppendVerticesAndIndicesForStroke(t.vertices[:0], t.indices[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	r, g, b, a := colorFloats(c)
	for i := range t.vertices {
		t.vertices[i].SrcX = 1
		t.vertices[i].SrcY = 1
		t.vertices[i].ColorR = r
		t.vertices[i].ColorG = g
		t.vertices[i].ColorB = b
		t.vertices[i].ColorA = a
	}
	t.img.DrawTriangles(t.vertices, t.indices, t.white, &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
		AntiAlias:      true,
	})
}

func (t *imageTarget) circle(x, y, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(t.img, float32(x), float32(y), float32(r), c, true)
}
