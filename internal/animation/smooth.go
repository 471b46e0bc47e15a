package animation

import "math"

const (
	DefaultFactor    = 0.1
	DefaultThreshold = 0.001
)

// Smooth moves current toward target by factor, snapping to target once the
// remaining distance drops below threshold.
func Smooth(current, target, factor, threshold float64) float64 {
	if math.Abs(current-target) < threshold {
		return target
	}
	return current + (target-current)*factor
}

// Approach is Smooth with the default factor and threshold.
func Approach(current, target float64) float64 {
	return Smooth(current, target, DefaultFactor, DefaultThreshold)
}

// approachBy is Smooth with the default threshold.
func approachBy(current, target, factor float64) float64 {
	return Smooth(current, target, factor, DefaultThreshold)
}
