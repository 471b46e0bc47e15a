package animation

// Particle is one orbiting point. Angle accumulates without wrapping; the
// trigonometry takes care of periodicity.
type Particle struct {
	X, Y             float64
	TargetX, TargetY float64
	Radius           float64
	TargetRadius     float64
	Angle            float64
	Speed            float64
}

// State is everything the renderer reads for one frame. It is written only by
// Engine.Update and Engine.Reset.
type State struct {
	Intensity     float64
	EvolutionTime float64

	FrequencyIntensities []float64
	Frequencies          []float64
	WaveOffsets          []float64

	TunnelRotation       float64
	TargetTunnelRotation float64
	TunnelRadius         float64
	TargetTunnelRadius   float64
	GlowIntensity        float64
	TargetGlowIntensity  float64

	CircleScale        float64
	TargetCircleScale  float64
	CircleScales       []float64
	TargetCircleScales []float64

	HueRotation float64
	Particles   []Particle

	// Last weighted band intensities, kept for display.
	Bands Bands
}

func newState(bins, rings, particles int) *State {
	return &State{
		FrequencyIntensities: make([]float64, bins),
		Frequencies:          make([]float64, bins),
		WaveOffsets:          make([]float64, bins),
		CircleScales:         make([]float64, rings),
		TargetCircleScales:   make([]float64, rings),
		Particles:            make([]Particle, particles),
	}
}

// Bins returns the analysis bin count the state is sized for.
func (s *State) Bins() int { return len(s.Frequencies) }

// BinFor maps element i of n onto a bin index proportionally.
func (s *State) BinFor(i, n int) int {
	bins := len(s.Frequencies)
	if bins == 0 || n <= 0 {
		return 0
	}
	idx := int(float64(i) / float64(n) * float64(bins))
	if idx >= bins {
		idx = bins - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

// Snapshot is a copy of the scalar state plus per-ring scales.
type Snapshot struct {
	Intensity      float64   `json:"intensity"`
	EvolutionTime  float64   `json:"evolutionTime"`
	TunnelRotation float64   `json:"tunnelRotation"`
	TunnelRadius   float64   `json:"tunnelRadius"`
	GlowIntensity  float64   `json:"glowIntensity"`
	CircleScale    float64   `json:"circleScale"`
	HueRotation    float64   `json:"hueRotation"`
	CircleScales   []float64 `json:"circleScales"`
	Bass           float64   `json:"bass"`
	Mid            float64   `json:"mid"`
	High           float64   `json:"high"`
}
