package audio

import (
	"sync"

	"github.com/faiface/beep"
)

// visualTap wraps a beep.Streamer and records the last N samples into a ring buffer
// so the analyser can look at recently played audio.
type visualTap struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	written   int
	mu        sync.RWMutex
}

func newVisualTap(src beep.Streamer, ringSize int) *visualTap {
	return &visualTap{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (t *visualTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.buffer[t.nextIndex] = samples[i]
			t.nextIndex++
			if t.nextIndex >= len(t.buffer) {
				t.nextIndex = 0
			}
		}
		t.written += n
		if t.written > len(t.buffer) {
			t.written = len(t.buffer)
		}
		t.mu.Unlock()
	}
	return n, ok
}

func (t *visualTap) Err() error { return t.Source.Err() }

// Latest fills dst with the most recent samples mixed down to mono, oldest
// first. When fewer samples have been played than len(dst), the front of dst
// is zero-filled.
func (t *visualTap) Latest(dst []float64) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := len(dst)
	if n > len(t.buffer) {
		n = len(t.buffer)
	}
	if n > t.written {
		n = t.written
	}
	pad := len(dst) - n
	clear(dst[:pad])

	idx := t.nextIndex - n
	if idx < 0 {
		idx += len(t.buffer)
	}
	for i := pad; i < len(dst); i++ {
		s := t.buffer[idx]
		dst[i] = (s[0] + s[1]) * 0.5
		idx++
		if idx >= len(t.buffer) {
			idx = 0
		}
	}
}

// reset drops everything recorded so far and starts recording src.
func (t *visualTap) reset(src beep.Streamer) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Source = src
	clear(t.buffer)
	t.nextIndex = 0
	t.written = 0
}
