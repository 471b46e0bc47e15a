package game

import (
	"errors"
	"io"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/tunnelviz/internal/animation"
	"github.com/iburimskiy/tunnelviz/internal/audio"
	"github.com/iburimskiy/tunnelviz/internal/config"
	"github.com/ncruces/zenity"
)

type toneSource struct{ level float64 }

func (s toneSource) Latest(dst []float64) {
	for i := range dst {
		if i%2 == 0 {
			dst[i] = s.level
		} else {
			dst[i] = -s.level
		}
	}
}

type fakePlayer struct {
	track    *audio.Track
	analyser *audio.Analyser
	paused   bool
	finished bool
	playErr  error
	fftSize  int
	plays    int
	stops    int
}

func (p *fakePlayer) Play(track *audio.Track) error {
	if p.playErr != nil {
		return p.playErr
	}
	p.plays++
	p.track = track
	p.finished = false
	p.paused = false
	size := config.FFTSize
	if p.fftSize > 0 {
		size = p.fftSize
	}
	p.analyser = audio.NewAnalyser(toneSource{level: 0.5}, size, config.SmoothingTimeConstant)
	return nil
}

func (p *fakePlayer) Stop() {
	p.stops++
	p.track = nil
	p.analyser = nil
}

func (p *fakePlayer) TogglePause() { p.paused = !p.paused }
func (p *fakePlayer) Paused() bool { return p.paused }
func (p *fakePlayer) Finished() bool { return p.finished }
func (p *fakePlayer) Analyser() *audio.Analyser { return p.analyser }
func (p *fakePlayer) Track() *audio.Track { return p.track }
func (p *fakePlayer) Position() time.Duration { return 0 }

type countingPublisher struct{ snaps []animation.Snapshot }

func (c *countingPublisher) Publish(s animation.Snapshot) { c.snaps = append(c.snaps, s) }

type harness struct {
	g      *Game
	player *fakePlayer
	pub    *countingPublisher
	clock  time.Time
	alerts []string
	opened []string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{
		player: &fakePlayer{},
		pub:    &countingPublisher{},
		clock:  time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	cfg := config.Default()
	cfg.Seed = 1
	cfg.Log = log.New(io.Discard, "", 0)
	h.g = New(cfg, h.player, h.pub)
	h.g.now = func() time.Time { return h.clock }
	h.g.alert = func(msg string) { h.alerts = append(h.alerts, msg) }
	h.g.open = func(path string) (*audio.Track, error) {
		h.opened = append(h.opened, path)
		if strings.HasSuffix(path, ".bad") {
			return nil, errors.New("decode " + path + ": broken header")
		}
		return &audio.Track{Path: path}, nil
	}
	return h
}

func (h *harness) tick(t *testing.T, in input) {
	t.Helper()
	if err := h.g.step(in); err != nil {
		t.Fatalf("step: %v", err)
	}
}

func (h *harness) pickFile(t *testing.T, path string) {
	t.Helper()
	h.g.picks <- pickResult{path: path}
	h.g.dialogOpen = true
	h.tick(t, input{})
}

func TestDelayedStart(t *testing.T) {
	h := newHarness(t)
	h.pickFile(t, "/music/song.wav")

	if h.g.pending == nil || h.g.running {
		t.Fatal("track should be pending, not running")
	}
	if h.g.showControls {
		t.Fatal("controls should hide once a file is chosen")
	}

	h.clock = h.clock.Add(config.StartDelay - time.Millisecond)
	h.tick(t, input{})
	if h.player.plays != 0 {
		t.Fatal("playback started before the delay elapsed")
	}

	h.clock = h.clock.Add(time.Millisecond)
	h.tick(t, input{})
	if h.player.plays != 1 || !h.g.running {
		t.Fatalf("expected playback after the delay, plays=%d running=%v", h.player.plays, h.g.running)
	}
	if h.g.engine.State().EvolutionTime <= 0 {
		t.Fatal("engine should advance on the first running tick")
	}
}

func TestDecodeErrorKeepsCurrentSession(t *testing.T) {
	h := newHarness(t)
	h.pickFile(t, "/music/song.wav")
	h.clock = h.clock.Add(config.StartDelay)
	h.tick(t, input{})

	h.pickFile(t, "/music/broken.bad")
	if len(h.alerts) != 1 {
		t.Fatalf("expected one error dialog, got %d", len(h.alerts))
	}
	if h.g.lastErr == nil || !strings.Contains(h.g.lastErr.Error(), "broken header") {
		t.Fatalf("lastErr=%v", h.g.lastErr)
	}
	if !h.g.running || h.player.track == nil {
		t.Fatal("a failed decode should not stop the current track")
	}
	if !h.g.showControls {
		t.Fatal("controls should be shown so the error is visible")
	}
}

func TestCancelledDialogIsSilent(t *testing.T) {
	h := newHarness(t)
	h.g.dialogOpen = true
	h.g.picks <- pickResult{err: zenity.ErrCanceled}
	h.tick(t, input{})

	if h.g.dialogOpen {
		t.Fatal("dialog should be closed")
	}
	if h.g.lastErr != nil || len(h.alerts) != 0 || len(h.opened) != 0 {
		t.Fatal("cancel should do nothing")
	}

	h.g.dialogOpen = true
	h.g.picks <- pickResult{}
	h.tick(t, input{})
	if len(h.opened) != 0 {
		t.Fatal("empty selection should do nothing")
	}
}

func TestOpenDialogOnlyOnce(t *testing.T) {
	h := newHarness(t)
	release := make(chan struct{})
	calls := 0
	h.g.pick = func() (string, error) {
		calls++
		<-release
		return "", zenity.ErrCanceled
	}
	h.tick(t, input{open: true})
	h.tick(t, input{open: true})
	close(release)

	deadline := time.Now().Add(time.Second)
	for h.g.dialogOpen && time.Now().Before(deadline) {
		h.tick(t, input{})
		time.Sleep(time.Millisecond)
	}
	if h.g.dialogOpen {
		t.Fatal("dialog result never arrived")
	}
	if calls != 1 {
		t.Fatalf("dialog opened %d times, want 1", calls)
	}
}

func TestPauseFreezesAnimation(t *testing.T) {
	h := newHarness(t)
	h.pickFile(t, "/music/song.wav")
	h.clock = h.clock.Add(config.StartDelay)
	h.tick(t, input{})

	h.tick(t, input{pause: true})
	evo := h.g.engine.State().EvolutionTime
	for i := 0; i < 5; i++ {
		h.tick(t, input{})
	}
	if got := h.g.engine.State().EvolutionTime; got != evo {
		t.Fatalf("evolution advanced while paused: %v -> %v", evo, got)
	}
	if h.g.status != "Paused" {
		t.Fatalf("status=%q", h.g.status)
	}

	h.tick(t, input{pause: true})
	if h.g.engine.State().EvolutionTime <= evo {
		t.Fatal("evolution should resume after unpausing")
	}
}

func TestRestartStartsFreshSession(t *testing.T) {
	h := newHarness(t)
	h.pickFile(t, "/music/song.wav")
	h.clock = h.clock.Add(config.StartDelay)
	for i := 0; i < 30; i++ {
		h.tick(t, input{})
	}
	if h.g.engine.State().EvolutionTime == 0 {
		t.Fatal("expected the clock to have advanced")
	}

	h.tick(t, input{restart: true})
	if h.g.running || h.g.pending == nil {
		t.Fatal("restart should reload and wait for the delay")
	}
	h.clock = h.clock.Add(config.StartDelay)
	h.tick(t, input{})
	if h.player.plays != 2 {
		t.Fatalf("plays=%d want 2", h.player.plays)
	}
	// One tick after Reset: exactly one evolution step.
	if evo := h.g.engine.State().EvolutionTime; evo > 0.01 {
		t.Fatalf("evolution time %v not reset", evo)
	}
}

func TestFinishedTrackStops(t *testing.T) {
	h := newHarness(t)
	h.pickFile(t, "/music/song.wav")
	h.clock = h.clock.Add(config.StartDelay)
	h.tick(t, input{})

	h.g.showControls = false
	h.player.finished = true
	h.tick(t, input{})
	if h.g.running {
		t.Fatal("game should stop running once the track ends")
	}
	if !h.g.showControls {
		t.Fatal("controls should come back at the end of a track")
	}
	evo := h.g.engine.State().EvolutionTime
	h.tick(t, input{})
	if h.g.engine.State().EvolutionTime != evo {
		t.Fatal("engine should not advance after the track ends")
	}
}

func TestMonitorPublishInterval(t *testing.T) {
	h := newHarness(t)
	h.pickFile(t, "/music/song.wav")
	h.clock = h.clock.Add(config.StartDelay)
	for i := 0; i < config.MonitorInterval*4; i++ {
		h.tick(t, input{})
	}
	if len(h.pub.snaps) != 4 {
		t.Fatalf("published %d snapshots, want 4", len(h.pub.snaps))
	}
	last := h.pub.snaps[len(h.pub.snaps)-1]
	if last.EvolutionTime != h.g.engine.State().EvolutionTime {
		t.Fatal("snapshot does not match the engine state")
	}
}

func TestToggleControlsAndQuit(t *testing.T) {
	h := newHarness(t)
	h.tick(t, input{toggleControls: true})
	if h.g.showControls {
		t.Fatal("H should hide the controls")
	}
	h.tick(t, input{toggleControls: true})
	if !h.g.showControls {
		t.Fatal("H should show the controls again")
	}

	if err := h.g.step(input{quit: true}); !errors.Is(err, ebiten.Termination) {
		t.Fatalf("quit returned %v", err)
	}
}

func TestLayoutTriggersResize(t *testing.T) {
	h := newHarness(t)
	h.tick(t, input{})
	if w, hh := h.g.Layout(400, 300); w != 400 || hh != 300 {
		t.Fatalf("Layout returned %dx%d", w, hh)
	}
	h.tick(t, input{})
	cx, cy, r := h.g.engine.Viewport()
	if cx != 200 || cy != 150 || r != 250 {
		t.Fatalf("viewport %v %v %v after resize", cx, cy, r)
	}
}

func TestPlayFailureIsReported(t *testing.T) {
	h := newHarness(t)
	h.player.playErr = errors.New("no audio device")
	h.pickFile(t, "/music/song.wav")
	h.clock = h.clock.Add(config.StartDelay)
	h.tick(t, input{})

	if h.g.running {
		t.Fatal("game should not run without playback")
	}
	if h.g.lastErr == nil || !strings.Contains(h.g.lastErr.Error(), "no audio device") {
		t.Fatalf("lastErr=%v", h.g.lastErr)
	}
}

func TestSnapshotBufferFollowsAnalyser(t *testing.T) {
	h := newHarness(t)
	h.player.fftSize = 512
	h.pickFile(t, "/music/song.wav")
	h.clock = h.clock.Add(config.StartDelay)
	h.tick(t, input{})

	if len(h.g.raw) != 256 {
		t.Fatalf("frequency buffer has %d bytes, want 256", len(h.g.raw))
	}
	if h.g.engine.State().Intensity == 0 {
		t.Fatal("engine should still see the shorter spectrum")
	}
}
