package game

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"time"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// MenuItem is an entry on the title menu.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuControls
	MenuQuit
	menuItemCount // sentinel
)

func (m MenuItem) String() string {
	switch m {
	case MenuStart:
		return "START GAME"
	case MenuControls:
		return "CONTROLS"
	case MenuQuit:
		return "QUIT"
	default:
		return "?"
	}
}

const (
	titlePulseSpeed = 0.03
	maxTickDelta    = 0.25 // seconds; longer host stalls are clamped
)

// MenuView is the title-screen state a presentation layer needs.
type MenuView struct {
	Items        []MenuItem
	Selected     MenuItem
	ShowControls bool
	Pulse        float64 // advances every title tick, drives glow/arrow animation
}

// HUD carries the overlay values.
type HUD struct {
	Kills       int
	Health      int
	MaxHealth   int
	GameOver    bool
	DamageFlash float64 // 0..1, fades with the damage cooldown
}

// EnemyMarker is an enemy as drawn on the minimap.
type EnemyMarker struct {
	X, Y  float64
	Type  EnemyType
	Alive bool
}

// Minimap is the top-down view data in world units.
type Minimap struct {
	Grid        *GridMap
	PlayerX     float64
	PlayerY     float64
	PlayerAngle float64
	Bullets     []Bullet
	Enemies     []EnemyMarker
}

// Frame is everything a presentation layer draws for one tick. Slices are
// owned by the Session and are only valid until the next Tick.
type Frame struct {
	Phase   Phase
	Tick    int
	Menu    MenuView
	Columns []Column
	Depth   DepthBuffer
	Sprites []Sprite
	HUD     HUD
	Minimap Minimap

	RequestPointerCapture bool // the player clicked into the view
	Quit                  bool // QUIT was chosen on the title menu
}

// Session owns one game: the phase machine, the world and the render
// pipeline. It is single-threaded; hosts call Tick from their frame loop.
type Session struct {
	cfg    Config
	seed   int64
	phase  Phase
	world  *World
	caster *Raycaster
	proj   *Projector
	log    *SimLog
	logger *slog.Logger

	menuSel      MenuItem
	showControls bool
	pulse        float64

	aspects  SpriteAspects
	markers  []EnemyMarker
	menuList []MenuItem
}

// SessionOption customises NewSession.
type SessionOption func(*Session)

// WithLogger routes phase transitions and spawn diagnostics to l.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithSpriteAspects sets the sprite aspect-ratio provider.
func WithSpriteAspects(a SpriteAspects) SessionOption {
	return func(s *Session) { s.aspects = a }
}

// WithEventLog supplies the structured event log.
func WithEventLog(sl *SimLog) SessionOption {
	return func(s *Session) { s.log = sl }
}

// StartPlaying skips the title screen.
func StartPlaying() SessionOption {
	return func(s *Session) { s.phase = PhasePlaying }
}

// NewSession validates cfg and layout and builds a session on the title
// screen.
func NewSession(cfg Config, layout [][]int, opts ...SessionOption) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid, err := NewGridMap(layout, cfg.TileSize)
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := &Session{
		cfg:      cfg,
		seed:     seed,
		phase:    PhaseTitle,
		menuList: []MenuItem{MenuStart, MenuControls, MenuQuit},
	}
	for _, o := range opts {
		o(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.log == nil {
		s.log = NewSimLog(false)
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	s.world = NewWorld(grid, cfg, rng, s.log)
	s.caster = NewRaycaster(grid, cfg)
	s.proj = NewProjector(cfg, s.aspects)
	s.logger.Info("session created", "seed", seed, "cols", grid.Cols(), "rows", grid.Rows(), "phase", s.phase.String())
	return s, nil
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// World exposes the simulation state read-only by convention.
func (s *Session) World() *World { return s.world }

// Seed returns the RNG seed in use.
func (s *Session) Seed() int64 { return s.seed }

// Log returns the structured event log.
func (s *Session) Log() *SimLog { return s.log }

func (s *Session) setPhase(p Phase) {
	if s.phase == p {
		return
	}
	s.log.Add(s.world.Tick, "--", "phase", "change", fmt.Sprintf("%s → %s", s.phase, p), 0)
	s.logger.Info("phase change", "from", s.phase.String(), "to", p.String(), "tick", s.world.Tick)
	s.phase = p
}

// Restart resets all mutable state and enters PhasePlaying.
func (s *Session) Restart() {
	s.log.Add(0, "--", "phase", "restart", "", 0)
	s.world.Reset()
	s.logger.Info("restart", "seed", s.seed)
	s.phase = PhasePlaying
}

// CheckTerminal moves a playing session whose player has died to
// PhaseGameOver. It reports whether the transition happened; repeated calls
// after death are no-ops.
func (s *Session) CheckTerminal() bool {
	if s.phase != PhasePlaying || s.world.Player.Health > 0 {
		return false
	}
	s.setPhase(PhaseGameOver)
	return true
}

// Tick advances the session by one host frame and returns what to draw.
// dt is the wall-clock time since the previous tick in seconds; it only
// drives the spawn timer.
func (s *Session) Tick(in Input, dt float64) Frame {
	if dt > maxTickDelta {
		dt = maxTickDelta
	}
	var f Frame

	switch s.phase {
	case PhaseTitle:
		s.updateTitle(in, &f)
	case PhasePlaying:
		s.updatePlaying(in, dt, &f)
	case PhaseGameOver:
		if in.Click || in.Confirm {
			s.Restart()
		}
	}

	f.Phase = s.phase
	f.Tick = s.world.Tick
	f.Menu = MenuView{
		Items:        s.menuList,
		Selected:     s.menuSel,
		ShowControls: s.showControls,
		Pulse:        s.pulse,
	}
	if s.phase != PhaseTitle {
		s.render(&f)
	}
	return f
}

func (s *Session) updateTitle(in Input, f *Frame) {
	s.pulse += titlePulseSpeed
	if in.Click {
		s.setPhase(PhasePlaying)
		return
	}
	n := menuItemCount
	if in.MenuUp {
		s.menuSel = (s.menuSel - 1 + n) % n
	}
	if in.MenuDown {
		s.menuSel = (s.menuSel + 1) % n
	}
	if !in.Confirm {
		return
	}
	switch s.menuSel {
	case MenuStart:
		s.setPhase(PhasePlaying)
	case MenuControls:
		s.showControls = !s.showControls
	case MenuQuit:
		f.Quit = true
	}
}

func (s *Session) updatePlaying(in Input, dt float64, f *Frame) {
	w := s.world
	if n := w.advanceSpawnTimer(time.Duration(dt * float64(time.Second))); n > 0 {
		s.logger.Debug("spawn attempts", "n", n, "tick", w.Tick, "enemies", len(w.Enemies))
	}
	if in.Click || in.Fire {
		w.Fire()
	}
	if in.Click {
		f.RequestPointerCapture = true
	}
	w.Step(in)
	s.CheckTerminal()
}

// render fills the view, sprites, HUD and minimap sections of f.
func (s *Session) render(f *Frame) {
	w := s.world
	p := &w.Player
	f.Columns, f.Depth = s.caster.Cast(p.X, p.Y, p.Angle)
	f.Sprites = s.proj.Project(w, f.Depth)

	flash := 0.0
	if p.DamageTimer > 0 && s.cfg.DamageCooldown > 0 {
		flash = float64(p.DamageTimer) / float64(s.cfg.DamageCooldown)
	}
	f.HUD = HUD{
		Kills:       w.Stats.Kills,
		Health:      max(0, p.Health),
		MaxHealth:   p.MaxHealth,
		GameOver:    s.phase == PhaseGameOver,
		DamageFlash: flash,
	}

	s.markers = s.markers[:0]
	for _, e := range w.Enemies {
		s.markers = append(s.markers, EnemyMarker{X: e.X, Y: e.Y, Type: e.Type, Alive: e.Alive})
	}
	f.Minimap = Minimap{
		Grid:        w.Grid,
		PlayerX:     p.X,
		PlayerY:     p.Y,
		PlayerAngle: p.Angle,
		Bullets:     w.Bullets,
		Enemies:     s.markers,
	}
}
