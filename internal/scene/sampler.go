package scene

import (
	"math"

	"github.com/iburimskiy/tunnelviz/internal/animation"
)

// Perspective returns the depth z of a ring and its scale factor. Farther
// rings get a smaller factor, which both shrinks and flattens them.
func Perspective(ring, rings int, maxRadius float64) (z, p float64) {
	if rings <= 0 {
		return 0, 1
	}
	z = float64(ring) / float64(rings) * maxRadius
	return z, 1 / (1 + z*0.001)
}

// RingContour appends numPoints+1 points describing the closed outline of a
// ring to dst[:0] and returns it. The last point repeats the first angle.
func RingContour(dst []Point, st *animation.State, ring int, vp Viewport, numPoints int) []Point {
	dst = dst[:0]
	if numPoints <= 0 {
		return dst
	}
	rings := len(st.CircleScales)
	_, p := Perspective(ring, rings, vp.MaxRadius)
	evo := st.EvolutionTime
	bins := st.Bins()

	scale := 1.0
	if ring >= 0 && ring < rings {
		scale = st.CircleScales[ring]
	}
	baseRadius := vp.MaxRadius * st.TunnelRadius * scale * p
	wobble := math.Sin(evo*(0.2+float64(ring)*0.05)) * 0.2
	breathe := 1 + math.Sin(evo*(0.3+float64(ring)*0.1))*0.3

	for j := 0; j <= numPoints; j++ {
		frac := float64(j) / float64(numPoints)
		angle := frac*math.Pi*2 + st.TunnelRotation + wobble

		r := baseRadius
		if bins > 0 {
			idx := int(frac*float64(bins)) % bins
			fi := st.FrequencyIntensities[idx]
			waveIntensity := fi * breathe
			frequencyEffect := math.Sin(angle*3+evo) * math.Cos(angle*2-evo) * (40 + fi*60)
			r += (waveIntensity*frequencyEffect + st.WaveOffsets[idx]) * p
		}
		dst = append(dst, Point{
			X: vp.CenterX + math.Cos(angle)*r,
			Y: vp.CenterY + math.Sin(angle)*r,
		})
	}
	return dst
}

// Stroke is one pass over a ring outline.
type Stroke struct {
	Width float64
	Color HSLA
}

// RingLook is the two stroke passes for a ring: a wide faint halo drawn
// first, then a narrower brighter core.
type RingLook struct {
	Halo, Core Stroke
}

// RingStyle computes the colour and widths of a ring.
func RingStyle(st *animation.State, ring int, vp Viewport) RingLook {
	z, p := Perspective(ring, len(st.CircleScales), vp.MaxRadius)
	evo := st.EvolutionTime
	i := float64(ring)

	var fi float64
	if n := len(st.CircleScales); n > 0 {
		fi = st.FrequencyIntensities[st.BinFor(ring, n)]
	}

	hue := animation.WrapHue(st.HueRotation + z*0.5 + math.Sin(evo*(0.3+i*0.1))*20 + fi*30)
	sat := 80 + st.Intensity*20
	light := math.Max(20, 40-z*0.05+st.Intensity*30+fi*20+math.Sin(evo*(0.4+i*0.15))*10)

	pulse := math.Sin(evo * (1 + i*0.2))
	return RingLook{
		Halo: Stroke{
			Width: (4 + pulse*2 + fi*3) * p,
			Color: HSLA{H: hue, S: sat, L: light, A: 0.05 + p*0.2},
		},
		Core: Stroke{
			Width: (2 + pulse + fi*2) * p,
			Color: HSLA{H: hue, S: sat, L: light, A: 0.15 + p*0.3},
		},
	}
}

// Dot is a filled circle.
type Dot struct {
	X, Y, R float64
	Color   HSLA
}

// ParticleStyle is how a particle is painted: its glow, a translucent halo at
// twice the size, then the core.
type ParticleStyle struct {
	GlowBlur  float64
	Glow      HSLA
	Halo      Dot
	Core      Dot
	Intensity float64
}

// ParticleLook computes the appearance of particle i from its mapped bin.
func ParticleLook(st *animation.State, i int) ParticleStyle {
	pt := st.Particles[i]
	evo := st.EvolutionTime
	fi := float64(i)

	var v float64
	if st.Bins() > 0 {
		v = st.Frequencies[st.BinFor(i, len(st.Particles))]
	}
	size := (1 + v*2) * (1 + math.Sin(evo*0.5+fi*0.1)*0.3)
	hue := animation.WrapHue(st.HueRotation + fi*3 + math.Sin(evo*0.4+fi*0.2)*30)
	base := HSLA{H: hue, S: 100, L: 70}

	glow, halo, core := base, base, base
	glow.A = v * 0.8
	halo.A = v * 0.3
	core.A = v * 0.7
	return ParticleStyle{
		GlowBlur:  10 + v*5,
		Glow:      glow,
		Halo:      Dot{X: pt.X, Y: pt.Y, R: size * 2, Color: halo},
		Core:      Dot{X: pt.X, Y: pt.Y, R: size, Color: core},
		Intensity: v,
	}
}
