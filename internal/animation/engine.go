package animation

import (
	"math"
	"math/rand"

	"github.com/iburimskiy/tunnelviz/internal/config"
)

// Engine turns per-frame frequency snapshots into smoothed motion parameters.
// It is not safe for concurrent use; one goroutine owns it.
type Engine struct {
	state   *State
	weights Weights
	rng     *rand.Rand
	raw     []byte

	centerX   float64
	centerY   float64
	maxRadius float64
}

// NewEngine creates an engine for the given analysis bin count and starts a
// fresh session.
func NewEngine(bins int, rng *rand.Rand) *Engine {
	if bins < 0 {
		bins = 0
	}
	e := &Engine{
		state:   newState(bins, config.RingCount, config.ParticleCount),
		weights: DefaultWeights,
		rng:     rng,
		raw:     make([]byte, bins),
	}
	e.Reset()
	return e
}

// State exposes the current state for reading.
func (e *Engine) State() *State { return e.state }

// Resize updates the viewport the particles orbit in. Takes effect on the
// next Update.
func (e *Engine) Resize(width, height float64) {
	e.centerX = width / 2
	e.centerY = height / 2
	e.maxRadius = math.Sqrt(e.centerX*e.centerX + e.centerY*e.centerY)
}

// Viewport returns the centre and max radius currently in use.
func (e *Engine) Viewport() (cx, cy, maxRadius float64) {
	return e.centerX, e.centerY, e.maxRadius
}

// Reset starts a new session: the evolution clock returns to zero and every
// particle gets a new random angle and speed.
func (e *Engine) Reset() {
	s := e.state
	s.Intensity = 0
	s.EvolutionTime = 0
	clear(s.FrequencyIntensities)
	clear(s.Frequencies)
	clear(s.WaveOffsets)
	s.TunnelRotation, s.TargetTunnelRotation = 0, 0
	s.TunnelRadius, s.TargetTunnelRadius = 0, 0
	s.GlowIntensity, s.TargetGlowIntensity = 0, 0
	s.CircleScale, s.TargetCircleScale = 1, 1
	for i := range s.CircleScales {
		s.CircleScales[i] = 1
		s.TargetCircleScales[i] = 1
	}
	s.HueRotation = 0
	s.Bands = Bands{}
	for i := range s.Particles {
		s.Particles[i] = Particle{
			Angle: e.rng.Float64() * math.Pi * 2,
			Speed: 0.1 + e.rng.Float64()*0.2,
		}
	}
}

// Update consumes one frequency snapshot. The steps run in a fixed order;
// later steps read values written by earlier ones in the same call.
func (e *Engine) Update(raw []byte) {
	s := e.state
	bins := e.normalize(raw)
	n := len(bins)

	bassEnd, midEnd := SplitBands(n)
	s.Bands = MeasureBands(bins, e.weights)
	s.Intensity = s.Bands.Overall()

	s.EvolutionTime += 0.001 + s.Intensity*0.002
	t := s.EvolutionTime

	for i, b := range bins {
		amp := float64(b) / 255
		target := amp * e.weights.For(i, bassEnd, midEnd)
		s.FrequencyIntensities[i] = approachBy(s.FrequencyIntensities[i], target, 0.2+amp*0.3)
	}

	s.TargetCircleScale = 1 +
		math.Sin(t*0.5)*0.3 +
		math.Cos(t*0.3)*0.2 +
		s.Intensity*0.4
	s.CircleScale = approachBy(s.CircleScale, s.TargetCircleScale, 0.05)

	for i := range s.CircleScales {
		fi := float64(i)
		phase := t * (0.2 + fi*0.1)
		freq := 0.3 + fi*0.15
		s.TargetCircleScales[i] = 1 +
			math.Sin(phase*freq)*0.5 +
			math.Cos(phase*(freq*0.7))*0.3 +
			math.Sin(phase*(freq*1.3))*0.2 +
			s.Intensity*(0.3+math.Sin(fi*0.5)*0.2)
		s.CircleScales[i] = approachBy(s.CircleScales[i], s.TargetCircleScales[i], 0.05)
	}

	for i, b := range bins {
		s.Frequencies[i] = approachBy(s.Frequencies[i], float64(b)/255, 0.15)
	}

	s.TargetTunnelRotation = t * (0.1 + s.Intensity*0.2)
	s.TunnelRotation = Approach(s.TunnelRotation, s.TargetTunnelRotation)

	s.TargetTunnelRadius = (0.5 +
		math.Sin(t*0.3)*0.1 +
		math.Cos(t*0.7)*0.15) *
		(1 + s.Intensity*0.3)
	s.TunnelRadius = Approach(s.TunnelRadius, s.TargetTunnelRadius)

	s.TargetGlowIntensity = (0.3 + math.Sin(t*0.4)*0.1) * (1 + s.Intensity*0.5)
	s.GlowIntensity = Approach(s.GlowIntensity, s.TargetGlowIntensity)

	amplitude := 30 + math.Sin(t*0.2)*10
	for i := range s.WaveOffsets {
		phase := t + float64(i)*0.1
		target := s.Frequencies[i] * (math.Sin(phase) * math.Cos(phase*0.5)) * amplitude
		s.WaveOffsets[i] = Approach(s.WaveOffsets[i], target)
	}

	e.updateParticles()

	s.HueRotation = WrapHue(s.HueRotation + 0.5*s.Intensity + math.Sin(t*0.2)*2)
}

func (e *Engine) updateParticles() {
	s := e.state
	t := s.EvolutionTime
	count := len(s.Particles)
	for i := range s.Particles {
		p := &s.Particles[i]
		fi := float64(i)

		var level float64
		if len(s.Frequencies) > 0 {
			level = s.Frequencies[s.BinFor(i, count)]
		}

		radiusFactor := 0.2 +
			math.Sin(t*0.3+fi*0.1)*0.1 +
			math.Cos(t*0.5+fi*0.2)*0.15
		p.TargetRadius = (radiusFactor + level*0.5) * e.maxRadius
		p.Radius = Approach(p.Radius, p.TargetRadius)

		speedFactor := 0.01 +
			math.Sin(t*0.4+fi*0.3)*0.005 +
			s.Intensity*0.02
		p.Angle += p.Speed * speedFactor

		p.TargetX = e.centerX + math.Cos(p.Angle)*p.Radius
		p.TargetY = e.centerY + math.Sin(p.Angle)*p.Radius
		p.X = Approach(p.X, p.TargetX)
		p.Y = Approach(p.Y, p.TargetY)
	}
}

// normalize returns raw sized exactly to the bin count, zero-padding or
// truncating as needed.
func (e *Engine) normalize(raw []byte) []byte {
	if len(raw) == len(e.raw) {
		return raw
	}
	n := copy(e.raw, raw)
	clear(e.raw[n:])
	return e.raw
}

// Snapshot copies the scalar fields for publishing outside the frame loop.
func (e *Engine) Snapshot() Snapshot {
	s := e.state
	scales := make([]float64, len(s.CircleScales))
	copy(scales, s.CircleScales)
	return Snapshot{
		Intensity:      s.Intensity,
		EvolutionTime:  s.EvolutionTime,
		TunnelRotation: s.TunnelRotation,
		TunnelRadius:   s.TunnelRadius,
		GlowIntensity:  s.GlowIntensity,
		CircleScale:    s.CircleScale,
		HueRotation:    s.HueRotation,
		CircleScales:   scales,
		Bass:           s.Bands.Bass,
		Mid:            s.Bands.Mid,
		High:           s.Bands.High,
	}
}

// WrapHue reduces h into [0, 360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}
