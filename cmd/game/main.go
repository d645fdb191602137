package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/Garsondee/Raycaster/internal/view"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := game.DefaultConfig()
	var debug bool
	var feed bool

	flag.Int64Var(&cfg.Seed, "seed", 0, "RNG seed (0 = time based)")
	flag.IntVar(&cfg.ScreenWidth, "width", cfg.ScreenWidth, "view width in pixels (one ray per column)")
	flag.IntVar(&cfg.ScreenHeight, "height", cfg.ScreenHeight, "view height in pixels")
	flag.DurationVar(&cfg.SpawnInterval, "spawn", cfg.SpawnInterval, "periodic spawn interval (0 disables)")
	flag.BoolVar(&feed, "feed", false, "show the event feed panel at startup")
	flag.BoolVar(&debug, "debug", false, "log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	g, err := view.New(view.Options{Config: cfg, Logger: logger, ShowFeed: feed})
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Raycaster")
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
