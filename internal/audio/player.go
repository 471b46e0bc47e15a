package audio

import (
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/iburimskiy/tunnelviz/internal/config"
)

// Player owns the speaker and at most one playing track. Its methods are
// called from the frame loop only; the speaker goroutine touches just the tap
// and the finished flag.
type Player struct {
	log       *log.Logger
	fftSize   int
	smoothing float64

	initDone   bool
	sampleRate beep.SampleRate

	track    *Track
	ctrl     *beep.Ctrl
	tap      *visualTap
	analyser *Analyser
	finished *atomic.Bool
	paused   bool
}

// NewPlayer creates a player whose analyser uses the given FFT size and
// smoothing time constant.
func NewPlayer(logger *log.Logger, fftSize int, smoothing float64) *Player {
	return &Player{log: logger, fftSize: fftSize, smoothing: smoothing}
}

// Play stops anything currently playing and starts track. The player takes
// ownership of track.
func (p *Player) Play(track *Track) error {
	format := track.Format()
	bufferSize := format.SampleRate.N(time.Second / 20)

	if !p.initDone {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
		p.sampleRate = format.SampleRate
	} else if p.sampleRate != format.SampleRate {
		// Re-init when sample rate changes
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return fmt.Errorf("re-init speaker at %d Hz: %w", format.SampleRate, err)
		}
		p.sampleRate = format.SampleRate
	}
	p.Stop()

	ctrl, finished := p.attach(track)
	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		finished.Store(true)
	})))
	p.log.Printf("playing %s (%d Hz, %s)", track.Name(), format.SampleRate, FormatDuration(track.Duration()))
	return nil
}

// attach makes track the current session. The tap and analyser are kept
// between sessions and cleared, so a new track never sees the old one's audio.
func (p *Player) attach(track *Track) (*beep.Ctrl, *atomic.Bool) {
	if p.tap == nil {
		p.tap = newVisualTap(track.streamer, max(config.VisualRingSize, p.fftSize))
		p.analyser = NewAnalyser(p.tap, p.fftSize, p.smoothing)
	} else {
		p.tap.reset(track.streamer)
		p.analyser.Reset()
	}
	p.track = track
	p.ctrl = &beep.Ctrl{Streamer: p.tap, Paused: false}
	p.finished = &atomic.Bool{}
	p.paused = false
	return p.ctrl, p.finished
}

// Stop halts playback and releases the current track.
func (p *Player) Stop() {
	if p.track == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	if err := p.track.Close(); err != nil {
		p.log.Printf("close %s: %v", p.track.Name(), err)
	}
	p.track = nil
	p.ctrl = nil
	p.finished = nil
	p.paused = false
}

// TogglePause flips the paused state of the current track.
func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// Paused reports whether the current track is paused.
func (p *Player) Paused() bool { return p.paused }

// Finished reports whether the current track ran to its end.
func (p *Player) Finished() bool {
	return p.finished != nil && p.finished.Load()
}

// Analyser returns the analyser for the current track, or nil.
func (p *Player) Analyser() *Analyser {
	if p.track == nil {
		return nil
	}
	return p.analyser
}

// Track returns the current track, or nil.
func (p *Player) Track() *Track { return p.track }

// Position returns how far into the current track playback is.
func (p *Player) Position() time.Duration {
	if p.track == nil {
		return 0
	}
	speaker.Lock()
	pos := p.track.streamer.Position()
	speaker.Unlock()
	return p.track.format.SampleRate.D(pos)
}

// FormatDuration formats a duration as MM:SS
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
