// termcast runs the raycaster in a terminal. Usage:
//
//	./termcast [-seed 42] [-log termcast.log]
//
// The frame rate is fixed at 60 ticks per second; stderr is not usable while
// the screen is active, so diagnostics go to the -log file if one is given.
package main

import (
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/Garsondee/Raycaster/internal/termview"
	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := game.DefaultConfig()
	logPath := flag.String("log", "", "write slog output to this file")
	flag.Int64Var(&cfg.Seed, "seed", 0, "RNG seed (0 = time based)")
	flag.DurationVar(&cfg.SpawnInterval, "spawn", cfg.SpawnInterval, "periodic spawn interval (0 disables)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	session, err := game.NewSession(cfg, game.DefaultLayout, game.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	run(screen, session, termview.NewRenderer(screen, cfg), logger)
}

// run drives the session from a fixed ticker until ctrl-c or QUIT.
func run(screen tcell.Screen, s *game.Session, r *termview.Renderer, logger *slog.Logger) {
	eventCh := make(chan tcell.Event, 32)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventCh, done)

	keys := termview.NewKeys()
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev, ok := <-eventCh:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				keys.HandleKey(ev)
			case *tcell.EventMouse:
				keys.HandleMouse(ev)
			}
			if keys.QuitRequested() {
				logger.Info("quit", "reason", "ctrl-c", "tick", s.World().Tick)
				return
			}
		case now := <-ticker.C:
			f := s.Tick(keys.Next(), now.Sub(last).Seconds())
			last = now
			r.Draw(f)
			if f.Quit {
				logger.Info("quit", "reason", "menu")
				return
			}
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func pollEvents(screen tcell.Screen, eventCh chan<- tcell.Event, done <-chan struct{}) {
	defer close(eventCh)
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case eventCh <- ev:
		case <-done:
			return
		}
	}
}
