package game

// TestSim is a headless session harness used by tests and the headless
// reporter. It drives Session.Tick at a fixed 60 TPS with deterministic
// seeding and structured logging.
type TestSim struct {
	Cfg     Config
	Layout  [][]int
	Session *Session
	World   *World
	SimLog  *SimLog
	Frame   Frame // last frame returned by Tick

	// Driver supplies the input for each tick; nil means no input.
	Driver func(*TestSim) Input
}

// TickDelta is the simulated seconds per tick.
const TickDelta = 1.0 / 60

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptInfra  simOptionKind = iota // config, layout, seed, verbose; applied first
	simOptEntity                      // player and enemy placement; applied once the session exists
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	fn   func(*TestSim)
}

// WithLayout replaces the map layout.
func WithLayout(layout [][]int) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Layout = layout
	}}
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.Cfg.Seed = seed
	}}
}

// WithConfig edits the config before the session is built.
func WithConfig(edit func(*Config)) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		edit(&ts.Cfg)
	}}
}

// WithoutSpawning disables the periodic random spawner.
func WithoutSpawning() SimOption {
	return WithConfig(func(c *Config) { c.SpawnInterval = 0 })
}

// WithVerbose enables verbose event logging.
func WithVerbose(v bool) SimOption {
	return SimOption{simOptInfra, func(ts *TestSim) {
		ts.SimLog = NewSimLog(v)
	}}
}

// WithoutInitialEnemies removes the enemies placed at start.
func WithoutInitialEnemies() SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.Enemies = nil
	}}
}

// WithPlayerAt places the player at world (x, y) facing angle.
func WithPlayerAt(x, y, angle float64) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.Player.X = x
		ts.World.Player.Y = y
		ts.World.Player.Angle = angle
	}}
}

// WithEnemyAt spawns an enemy of typ on tile (tx, ty).
func WithEnemyAt(tx, ty int, typ EnemyType) SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ts.World.SpawnEnemy(Tile{tx, ty}, typ)
	}}
}

// WithAutopilot drives the player with an Autopilot.
func WithAutopilot() SimOption {
	return SimOption{simOptEntity, func(ts *TestSim) {
		ap := &Autopilot{}
		ts.Driver = func(ts *TestSim) Input { return ap.Next(ts.Session) }
	}}
}

// NewTestSim constructs a playing TestSim from the given options in two
// ordered passes:
//  1. Infrastructure (config, layout, seed, verbose), then the session
//  2. Entities (player and enemy placement, drivers)
//
// It panics on an invalid config or layout; tests want that loudly.
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		Cfg:    DefaultConfig(),
		Layout: DefaultLayout,
		SimLog: NewSimLog(false),
	}
	ts.Cfg.Seed = 1
	for _, o := range opts {
		if o.kind == simOptInfra {
			o.fn(ts)
		}
	}
	s, err := NewSession(ts.Cfg, ts.Layout, WithEventLog(ts.SimLog), StartPlaying())
	if err != nil {
		panic(err)
	}
	ts.Session = s
	ts.World = s.World()
	for _, o := range opts {
		if o.kind == simOptEntity {
			o.fn(ts)
		}
	}
	return ts
}

// CurrentTick returns the world tick.
func (ts *TestSim) CurrentTick() int { return ts.World.Tick }

// Step runs exactly one tick with the given input.
func (ts *TestSim) Step(in Input) Frame {
	ts.Frame = ts.Session.Tick(in, TickDelta)
	return ts.Frame
}

// RunTicks advances the session n ticks using the driver.
func (ts *TestSim) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step(ts.nextInput())
	}
}

// RunUntil advances the session up to maxTicks, stopping early if predicate
// returns true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSim) RunUntil(predicate func(*TestSim) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step(ts.nextInput())
		if predicate(ts) {
			return ts.World.Tick
		}
	}
	return -1
}

func (ts *TestSim) nextInput() Input {
	if ts.Driver == nil {
		return Input{}
	}
	return ts.Driver(ts)
}
