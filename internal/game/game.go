package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/tunnelviz/internal/animation"
	"github.com/iburimskiy/tunnelviz/internal/audio"
	"github.com/iburimskiy/tunnelviz/internal/config"
	"github.com/iburimskiy/tunnelviz/internal/scene"
	"github.com/ncruces/zenity"
)

// Player is the playback session the game drives. *audio.Player implements it.
type Player interface {
	Play(track *audio.Track) error
	Stop()
	TogglePause()
	Paused() bool
	Finished() bool
	Analyser() *audio.Analyser
	Track() *audio.Track
	Position() time.Duration
}

// Publisher receives periodic animation snapshots.
type Publisher interface {
	Publish(s animation.Snapshot)
}

type pickResult struct {
	path string
	err  error
}

// Game is the ebiten game: it reads the analyser, advances the animation
// engine once per tick and paints the scene onto a persistent trail canvas.
type Game struct {
	log      *log.Logger
	debug    bool
	player   Player
	pub      Publisher
	engine   *animation.Engine
	renderer *scene.Renderer
	raw      []byte

	// Replaceable for tests.
	open  func(path string) (*audio.Track, error)
	pick  func() (string, error)
	alert func(msg string)
	now   func() time.Time

	picks      chan pickResult
	dialogOpen bool

	pending  *audio.Track
	startAt  time.Time
	running  bool
	lastPath string
	ticks    int

	width, height int
	resized       bool
	canvas        *ebiten.Image
	surface       *canvasSurface
	clearCanvas   bool

	showControls  bool
	prevKey       map[ebiten.Key]bool
	buttonHovered bool
	buttonPressed bool
	status        string
	lastErr       error
}

// New creates the game. If cfg.File is set it is loaded straight away.
func New(cfg config.Config, player Player, pub Publisher) *Game {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := cfg.Log
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		log:          logger,
		debug:        cfg.Debug,
		player:       player,
		pub:          pub,
		engine:       animation.NewEngine(cfg.Bins(), rand.New(rand.NewSource(seed))),
		renderer:     scene.NewRenderer(),
		raw:          make([]byte, cfg.Bins()),
		open:         audio.Open,
		pick:         selectFile,
		alert:        showError,
		now:          time.Now,
		picks:        make(chan pickResult, 1),
		width:        cfg.Width,
		height:       cfg.Height,
		resized:      true,
		showControls: true,
		prevKey:      map[ebiten.Key]bool{},
		status:       "Click Open File or press O to choose an audio file",
	}
	if cfg.File != "" {
		g.load(cfg.File)
	}
	return g
}

func (g *Game) Update() error {
	return g.step(g.readInput())
}

// step advances the game by one tick for the given input.
func (g *Game) step(in input) error {
	if in.quit {
		g.player.Stop()
		g.discardPending()
		return ebiten.Termination
	}
	if in.toggleControls {
		g.showControls = !g.showControls
	}
	if in.open {
		g.openDialog()
	}
	g.pollDialog()

	if in.pause && g.running {
		g.player.TogglePause()
		if g.player.Paused() {
			g.status = "Paused"
		} else {
			g.status = g.playingStatus()
		}
	}
	if in.restart && g.lastPath != "" {
		g.log.Printf("restarting %s", g.lastPath)
		g.load(g.lastPath)
	}

	if g.pending != nil && !g.now().Before(g.startAt) {
		g.start()
	}
	if g.running && g.player.Finished() {
		g.log.Printf("finished %s", g.player.Track().Name())
		g.player.Stop()
		g.running = false
		g.showControls = true
		g.status = "Finished - press R to replay or O to open another file"
	}

	if g.resized {
		g.engine.Resize(float64(g.width), float64(g.height))
		g.resized = false
	}
	if !g.running || g.player.Paused() {
		return nil
	}

	if a := g.player.Analyser(); a != nil {
		a.ByteFrequencyData(g.raw)
	} else {
		clear(g.raw)
	}
	g.engine.Update(g.raw)
	g.ticks++
	if g.pub != nil && g.ticks%config.MonitorInterval == 0 {
		g.pub.Publish(g.engine.Snapshot())
	}
	return nil
}

// load decodes path and schedules playback after the start delay.
func (g *Game) load(path string) {
	track, err := g.open(path)
	if err != nil {
		g.onDecodeError(err)
		return
	}
	g.player.Stop()
	g.running = false
	g.discardPending()

	g.pending = track
	g.startAt = g.now().Add(config.StartDelay)
	g.lastPath = path
	g.lastErr = nil
	g.showControls = false
	g.status = "Loading " + track.Name()
	g.log.Printf("loaded %s, starting in %s", track.Name(), config.StartDelay)
}

// start begins a fresh session with the pending track.
func (g *Game) start() {
	track := g.pending
	g.pending = nil
	if err := g.player.Play(track); err != nil {
		_ = track.Close()
		g.fail(fmt.Errorf("play %s: %w", track.Name(), err))
		return
	}
	if a := g.player.Analyser(); a != nil && a.BinCount() != len(g.raw) {
		g.raw = make([]byte, a.BinCount())
	}
	g.engine.Reset()
	g.ticks = 0
	g.running = true
	g.clearCanvas = true
	g.status = g.playingStatus()
}

func (g *Game) discardPending() {
	if g.pending == nil {
		return
	}
	if err := g.pending.Close(); err != nil {
		g.log.Printf("close %s: %v", g.pending.Name(), err)
	}
	g.pending = nil
}

func (g *Game) playingStatus() string {
	return "Playing " + g.player.Track().Name()
}

// openDialog shows the file picker without blocking the frame loop.
func (g *Game) openDialog() {
	if g.dialogOpen {
		return
	}
	g.dialogOpen = true
	go func() {
		path, err := g.pick()
		g.picks <- pickResult{path: path, err: err}
	}()
}

func (g *Game) pollDialog() {
	select {
	case res := <-g.picks:
		g.dialogOpen = false
		switch {
		case errors.Is(res.err, zenity.ErrCanceled):
		case res.err != nil:
			g.fail(fmt.Errorf("file dialog: %w", res.err))
		case res.path != "":
			g.load(res.path)
		}
	default:
	}
}

// onDecodeError reports a file that could not be decoded. Whatever was
// playing keeps playing.
func (g *Game) onDecodeError(err error) {
	g.fail(err)
	g.alert(err.Error())
}

func (g *Game) fail(err error) {
	g.log.Printf("error: %v", err)
	g.lastErr = err
	g.showControls = true
}

func (g *Game) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.canvas == nil || g.canvas.Bounds().Dx() != w || g.canvas.Bounds().Dy() != h {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		g.canvas = ebiten.NewImage(w, h)
		g.surface = newCanvasSurface(g.canvas)
		g.clearCanvas = true
	}
	if g.clearCanvas {
		g.canvas.Fill(color.Black)
		g.clearCanvas = false
	}

	if g.running {
		cx, cy, r := g.engine.Viewport()
		g.renderer.Frame(g.surface, g.engine.State(), scene.Viewport{CenterX: cx, CenterY: cy, MaxRadius: r})
	}
	screen.DrawImage(g.canvas, nil)

	if g.showControls {
		g.drawControls(screen)
	}
	if g.debug {
		g.drawDebug(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.resized = true
	}
	return outsideWidth, outsideHeight
}

func selectFile() (string, error) {
	return zenity.SelectFile(
		zenity.Title("Open Audio File"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: audio.Patterns,
		}},
	)
}

func showError(msg string) {
	go func() {
		_ = zenity.Error(msg, zenity.Title("Could not open file"), zenity.ErrorIcon)
	}()
}
