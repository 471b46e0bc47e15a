package animation

import "math"

// Weights scales the bass, mid and high bands before they are combined.
// Values above 1 are intentional emphasis.
type Weights struct {
	Bass float64
	Mid  float64
	High float64
}

// DefaultWeights favours the low end.
var DefaultWeights = Weights{Bass: 1.5, Mid: 1.2, High: 1.0}

// For returns the weight applied to bin i given the band boundaries.
func (w Weights) For(i, bassEnd, midEnd int) float64 {
	switch {
	case i < bassEnd:
		return w.Bass
	case i < midEnd:
		return w.Mid
	default:
		return w.High
	}
}

// SplitBands partitions n bins into bass [0,bassEnd), mid [bassEnd,midEnd)
// and high [midEnd,n).
func SplitBands(n int) (bassEnd, midEnd int) {
	return int(math.Floor(float64(n) * 0.1)), int(math.Floor(float64(n) * 0.5))
}

// BandIntensity returns the mean of bins[start:end] normalised to [0,1].
// An empty range yields 0.
func BandIntensity(bins []byte, start, end int) float64 {
	if start < 0 {
		start = 0
	}
	if end > len(bins) {
		end = len(bins)
	}
	if end <= start {
		return 0
	}
	sum := 0
	for _, b := range bins[start:end] {
		sum += int(b)
	}
	return float64(sum) / float64(end-start) / 255
}

// Bands holds the weighted per-band intensities of one snapshot.
type Bands struct {
	Bass float64
	Mid  float64
	High float64
}

// Overall combines the weighted bands into a single loudness value.
func (b Bands) Overall() float64 {
	return (b.Bass + b.Mid + b.High) / 3
}

// MeasureBands computes weighted band intensities for bins.
func MeasureBands(bins []byte, w Weights) Bands {
	bassEnd, midEnd := SplitBands(len(bins))
	return Bands{
		Bass: BandIntensity(bins, 0, bassEnd) * w.Bass,
		Mid:  BandIntensity(bins, bassEnd, midEnd) * w.Mid,
		High: BandIntensity(bins, midEnd, len(bins)) * w.High,
	}
}
