package config

import (
	"fmt"
	"log"
	"os"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	VisualRingSize = 8192

	// Analyser settings
	FFTSize               = 2048
	SmoothingTimeConstant = 0.85
	MinDecibels           = -100.0
	MaxDecibels           = -30.0

	// Button dimensions
	ButtonWidth  = 120
	ButtonHeight = 40
	ButtonX      = 20
	ButtonY      = 50

	// Scene parameters
	RingCount     = 15
	ParticleCount = 100
	ContourPoints = 360
	FadeAlpha     = 0.15

	// Delay between a successful decode and the start of playback.
	StartDelay = time.Second

	// Ticks between monitor snapshots (60 TPS -> 10 Hz).
	MonitorInterval = 6
)

// Config is the runtime configuration assembled from command-line flags.
type Config struct {
	File        string
	Width       int
	Height      int
	FFTSize     int
	Smoothing   float64
	MonitorAddr string
	Seed        int64
	Debug       bool
	Log         *log.Logger
}

// Default returns a Config populated with the package defaults.
func Default() Config {
	return Config{
		Width:     WindowWidth,
		Height:    WindowHeight,
		FFTSize:   FFTSize,
		Smoothing: SmoothingTimeConstant,
	}
}

// Validate checks the configuration and fills a logger if none is set.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid dimensions: width=%d height=%d", c.Width, c.Height)
	}
	if c.FFTSize < 32 || c.FFTSize > 32768 || c.FFTSize&(c.FFTSize-1) != 0 {
		return fmt.Errorf("fft size must be a power of two between 32 and 32768 (got %d)", c.FFTSize)
	}
	if c.Smoothing < 0 || c.Smoothing >= 1 {
		return fmt.Errorf("smoothing must be in [0, 1) (got %.2f)", c.Smoothing)
	}
	if c.File != "" {
		if _, err := os.Stat(c.File); err != nil {
			return fmt.Errorf("input file: %w", err)
		}
	}
	if c.Log == nil {
		c.Log = log.New(os.Stderr, "", 0)
	}
	return nil
}

// Bins returns the analyser output length for the configured FFT size.
func (c Config) Bins() int {
	return c.FFTSize / 2
}
