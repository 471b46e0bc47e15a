package animation

import (
	"math"
	"testing"
)

func filled(n int, v byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = v
	}
	return b
}

func TestBandIntensity(t *testing.T) {
	cases := []struct {
		name       string
		bins       []byte
		start, end int
		want       float64
	}{
		{"silence", filled(64, 0), 0, 64, 0},
		{"full scale", filled(64, 255), 0, 64, 1},
		{"sub range", []byte{0, 255, 255, 0}, 1, 3, 1},
		{"half", []byte{0, 255}, 0, 2, 0.5},
		{"empty range", filled(8, 200), 4, 4, 0},
		{"inverted range", filled(8, 200), 6, 2, 0},
		{"end past slice", filled(4, 255), 0, 10, 1},
		{"nil bins", nil, 0, 10, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := BandIntensity(tc.bins, tc.start, tc.end)
			if math.IsNaN(got) {
				t.Fatalf("got NaN")
			}
			if math.Abs(got-tc.want) > 1e-12 {
				t.Fatalf("BandIntensity=%v want %v", got, tc.want)
			}
		})
	}
}

func TestBandIntensityIgnoresOrder(t *testing.T) {
	a := []byte{10, 20, 30, 200, 255, 0}
	b := []byte{255, 0, 200, 30, 10, 20}
	if BandIntensity(a, 0, len(a)) != BandIntensity(b, 0, len(b)) {
		t.Fatalf("mean should not depend on bin order")
	}
}

func TestSplitBands(t *testing.T) {
	cases := map[int][2]int{
		1024: {102, 512},
		10:   {1, 5},
		5:    {0, 2},
		0:    {0, 0},
	}
	for n, want := range cases {
		bass, mid := SplitBands(n)
		if bass != want[0] || mid != want[1] {
			t.Fatalf("SplitBands(%d)=(%d,%d) want (%d,%d)", n, bass, mid, want[0], want[1])
		}
	}
}

func TestMeasureBandsTinyBufferHasNoNaN(t *testing.T) {
	b := MeasureBands([]byte{255, 255, 255}, DefaultWeights)
	if b.Bass != 0 {
		t.Fatalf("empty bass band should be 0, got %v", b.Bass)
	}
	if math.IsNaN(b.Overall()) {
		t.Fatalf("overall is NaN")
	}
}

func TestWeightsFor(t *testing.T) {
	w := DefaultWeights
	if w.For(0, 10, 50) != 1.5 || w.For(10, 10, 50) != 1.2 || w.For(50, 10, 50) != 1.0 {
		t.Fatalf("unexpected weights at band boundaries")
	}
}
