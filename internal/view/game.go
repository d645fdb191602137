// Package view is the ebiten front end: it turns keyboard and mouse state
// into game.Input, ticks a game.Session and draws the returned Frame.
package view

import (
	"log/slog"
	"time"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
)

// statusTTL is how long a status line stays on the game-over screen.
const statusTTL = 3 * time.Second

// Game implements ebiten.Game around a Session.
type Game struct {
	session *game.Session
	cfg     game.Config
	logger  *slog.Logger

	fonts   *Fonts
	sprites *SpriteSet
	feed    *EventFeed
	frame   game.Frame

	showFeed bool

	// input edge tracking
	prevKeys      map[ebiten.Key]bool
	curKeys       map[ebiten.Key]bool
	prevMouseLeft bool
	lastCursorX   int
	haveCursor    bool
	lastUpdate    time.Time

	status     string
	statusTill time.Time
}

// Options configures New.
type Options struct {
	Config   game.Config
	Layout   [][]int
	Logger   *slog.Logger
	ShowFeed bool
}

// New loads fonts and art and builds the session.
func New(opts Options) (*Game, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Layout == nil {
		opts.Layout = game.DefaultLayout
	}
	fonts, err := LoadFonts()
	if err != nil {
		return nil, err
	}
	sprites := NewSpriteSet()
	s, err := game.NewSession(opts.Config, opts.Layout,
		game.WithLogger(opts.Logger),
		game.WithSpriteAspects(sprites),
		game.WithEventLog(game.NewSimLog(false)),
	)
	if err != nil {
		return nil, err
	}
	g := &Game{
		session:  s,
		cfg:      opts.Config,
		logger:   opts.Logger,
		fonts:    fonts,
		sprites:  sprites,
		feed:     NewEventFeed(),
		showFeed: opts.ShowFeed,
		prevKeys: make(map[ebiten.Key]bool),
		curKeys:  make(map[ebiten.Key]bool),
	}
	g.frame = s.Tick(game.Input{}, 0)
	return g, nil
}

// Session exposes the underlying session.
func (g *Game) Session() *game.Session { return g.session }

func (g *Game) Update() error {
	in := g.readInput()
	defer g.endInput()

	now := time.Now()
	dt := 0.0
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now

	if g.pressed(ebiten.KeyEscape) && ebiten.CursorMode() == ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	if g.pressed(ebiten.KeyTab) {
		g.showFeed = !g.showFeed
	}
	if g.session.Phase() == game.PhaseGameOver && g.pressed(ebiten.KeyC) {
		g.copyReport(now)
	}

	prev := g.frame.Phase
	g.frame = g.session.Tick(in, dt)
	g.feed.Follow(g.session.Log(), prev, g.frame.Phase)

	if g.frame.RequestPointerCapture && ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	}
	if g.frame.Phase == game.PhaseGameOver && ebiten.CursorMode() == ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	if g.frame.Quit {
		g.logger.Info("quit from title menu")
		return ebiten.Termination
	}
	return nil
}

// copyReport puts the run report on the system clipboard.
func (g *Game) copyReport(now time.Time) {
	report := g.session.Report().Format()
	if err := clipboard.WriteAll(report); err != nil {
		g.logger.Warn("clipboard write failed", "err", err)
		g.setStatus("clipboard unavailable", now)
		return
	}
	g.logger.Info("run report copied", "bytes", len(report))
	g.setStatus("report copied to clipboard", now)
}

func (g *Game) setStatus(msg string, now time.Time) {
	g.status = msg
	g.statusTill = now.Add(statusTTL)
}

func (g *Game) Draw(screen *ebiten.Image) {
	switch g.frame.Phase {
	case game.PhaseTitle:
		g.drawTitle(screen)
	default:
		g.drawView(screen)
		g.drawMinimap(screen)
		g.drawHUD(screen)
		if g.frame.HUD.GameOver {
			g.drawGameOver(screen)
		}
	}
	if g.showFeed {
		g.feed.Draw(screen, g.cfg.ScreenWidth, g.cfg.ScreenHeight)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.cfg.ScreenWidth
	if g.showFeed {
		w += feedPanelWidth
	}
	return w, g.cfg.ScreenHeight
}
