package animation

import (
	"math"
	"testing"
)

func TestSmoothEqualInputsReturnsInput(t *testing.T) {
	for _, x := range []float64{0, 1, -3.5, 1e6} {
		for _, f := range []float64{0.05, 0.5, 1} {
			if got := Smooth(x, x, f, 0.001); got != x {
				t.Fatalf("Smooth(%v, %v, %v)=%v want %v", x, x, f, got, x)
			}
		}
	}
}

func TestSmoothSnapsWithinThreshold(t *testing.T) {
	cases := []struct {
		name      string
		current   float64
		target    float64
		threshold float64
	}{
		{"just below", 1.0, 1.0009, 0.001},
		{"negative side", -2.0005, -2.0, 0.001},
		{"wide threshold", 0, 0.4, 0.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Smooth(tc.current, tc.target, 0.1, tc.threshold); got != tc.target {
				t.Fatalf("expected snap to %v, got %v", tc.target, got)
			}
		})
	}
}

func TestSmoothStepsByFactor(t *testing.T) {
	got := Smooth(0, 10, 0.1, 0.001)
	if math.Abs(got-1) > 1e-12 {
		t.Fatalf("Smooth(0, 10, 0.1)=%v want 1", got)
	}
}

func TestSmoothConvergesWithoutOvershoot(t *testing.T) {
	for _, start := range []float64{-50, 0, 80} {
		target := 12.5
		current := start
		prevDist := math.Abs(current - target)
		for i := 0; i < 500; i++ {
			next := Approach(current, target)
			if (start < target && next > target) || (start > target && next < target) {
				t.Fatalf("overshoot from %v: %v -> %v (target %v)", start, current, next, target)
			}
			dist := math.Abs(next - target)
			if dist > prevDist {
				t.Fatalf("distance grew from %v to %v", prevDist, dist)
			}
			prevDist = dist
			current = next
		}
		if current != target {
			t.Fatalf("expected exact convergence to %v after snapping, got %v", target, current)
		}
	}
}
