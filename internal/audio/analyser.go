package audio

import (
	"math"
	"math/cmplx"

	"github.com/iburimskiy/tunnelviz/internal/config"
	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

// SampleSource provides the most recent mono samples, oldest first.
type SampleSource interface {
	Latest(dst []float64)
}

// Analyser produces byte-scaled frequency magnitudes from a sample source the
// way a browser analyser node does: Blackman window, FFT, time smoothing, then
// a decibel range mapped onto 0..255.
type Analyser struct {
	src       SampleSource
	fftSize   int
	smoothing float64
	minDB     float64
	maxDB     float64

	window   []float64
	samples  []float64
	smoothed []float64
}

// NewAnalyser creates an analyser reading fftSize samples per snapshot.
func NewAnalyser(src SampleSource, fftSize int, smoothing float64) *Analyser {
	return &Analyser{
		src:       src,
		fftSize:   fftSize,
		smoothing: smoothing,
		minDB:     config.MinDecibels,
		maxDB:     config.MaxDecibels,
		window:    window.Blackman(fftSize),
		samples:   make([]float64, fftSize),
		smoothed:  make([]float64, fftSize/2),
	}
}

// BinCount is the length of the frequency data, half the FFT size.
func (a *Analyser) BinCount() int { return a.fftSize / 2 }

// ByteFrequencyData writes the current spectrum into dst, one byte per bin.
func (a *Analyser) ByteFrequencyData(dst []byte) {
	a.src.Latest(a.samples)
	for i := range a.samples {
		a.samples[i] *= a.window[i]
	}
	spectrum := fft.FFTReal(a.samples)

	scale := 1 / float64(a.fftSize)
	n := min(len(dst), len(a.smoothed))
	for k := 0; k < n; k++ {
		mag := cmplx.Abs(spectrum[k]) * scale
		a.smoothed[k] = a.smoothing*a.smoothed[k] + (1-a.smoothing)*mag
		dst[k] = a.toByte(a.smoothed[k])
	}
	clear(dst[n:])
}

// Reset forgets the smoothing history.
func (a *Analyser) Reset() {
	clear(a.smoothed)
}

func (a *Analyser) toByte(mag float64) byte {
	if mag <= 0 {
		return 0
	}
	db := 20 * math.Log10(mag)
	v := 255 * (db - a.minDB) / (a.maxDB - a.minDB)
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return byte(v)
	}
}
