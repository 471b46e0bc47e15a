package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/tunnelviz/internal/audio"
	"github.com/iburimskiy/tunnelviz/internal/cli"
	"github.com/iburimskiy/tunnelviz/internal/config"
	"github.com/iburimskiy/tunnelviz/internal/game"
	"github.com/iburimskiy/tunnelviz/internal/monitor"
)

// version is set via ldflags at build time
var version = "dev"

var CLI struct {
	File        string  `arg:"" name:"file" help:"Audio file to play (wav, mp3 or flac). Pick one in the window if omitted." optional:""`
	Width       int     `help:"Initial window width." default:"${width}"`
	Height      int     `help:"Initial window height." default:"${height}"`
	FFTSize     int     `name:"fft-size" help:"Analyser FFT size, a power of two." default:"${fftSize}"`
	Smoothing   float64 `help:"Analyser time smoothing constant in [0, 1)." default:"${smoothing}"`
	MonitorAddr string  `name:"monitor-addr" help:"Serve animation state on this address (/state and /ws)." placeholder:"HOST:PORT"`
	Seed        int64   `help:"Seed for particle placement; 0 picks one at random."`
	Debug       bool    `help:"Verbose logging and on-screen stats."`
	Quiet       bool    `short:"q" help:"Disable logging."`
	Version     bool    `help:"Show version information."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("tunnelviz"),
		kong.Description("Play an audio file through a reactive neon tunnel."),
		kong.Vars{
			"version":   version,
			"width":     fmt.Sprint(config.WindowWidth),
			"height":    fmt.Sprint(config.WindowHeight),
			"fftSize":   fmt.Sprint(config.FFTSize),
			"smoothing": fmt.Sprint(config.SmoothingTimeConstant),
		},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if CLI.Version {
		cli.PrintVersion(version)
		os.Exit(0)
	}

	cfg := config.Config{
		File:        CLI.File,
		Width:       CLI.Width,
		Height:      CLI.Height,
		FFTSize:     CLI.FFTSize,
		Smoothing:   CLI.Smoothing,
		MonitorAddr: CLI.MonitorAddr,
		Seed:        CLI.Seed,
		Debug:       CLI.Debug,
		Log:         newLogger(CLI.Debug, CLI.Quiet),
	}
	if err := cfg.Validate(); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

func newLogger(debug, quiet bool) *log.Logger {
	switch {
	case quiet:
		return log.New(io.Discard, "", 0)
	case debug:
		return log.New(os.Stderr, "[tunnelviz] ", log.LstdFlags|log.Lmicroseconds)
	default:
		return log.New(os.Stderr, "[tunnelviz] ", 0)
	}
}

func run(cfg config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var pub game.Publisher
	if cfg.MonitorAddr != "" {
		srv := monitor.NewServer(cfg.Log)
		pub = srv
		cli.PrintInfo("Monitor", "http://"+cfg.MonitorAddr+"/state")
		go func() {
			if err := srv.ListenAndServe(ctx, cfg.MonitorAddr); err != nil {
				cfg.Log.Printf("%v", err)
			}
		}()
	}

	player := audio.NewPlayer(cfg.Log, cfg.FFTSize, cfg.Smoothing)
	g := game.New(cfg, player, pub)

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("tunnelviz - O: open, Space: pause, R: restart, H: controls, Esc/Q: quit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
