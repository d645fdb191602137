package game

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

// World is the mutable simulation aggregate: the player, enemies and bullets
// on an immutable GridMap. Only Step, the spawn operations and Reset mutate it.
type World struct {
	Grid    *GridMap
	Player  Player
	Enemies []*Enemy
	Bullets []Bullet
	Stats   Stats
	Tick    int

	cfg         Config
	rng         *rand.Rand
	log         *SimLog
	nextEnemyID int
	spawnAccum  time.Duration
}

// initialSpawns are placed on every (re)start.
var initialSpawns = []struct {
	tile Tile
	typ  EnemyType
}{
	{Tile{2, 1}, EnemyBasic},
	{Tile{5, 2}, EnemyShooter},
}

// NewWorld builds a world on grid and places the player and initial enemies.
// A nil log is replaced by a quiet one.
func NewWorld(grid *GridMap, cfg Config, rng *rand.Rand, log *SimLog) *World {
	if log == nil {
		log = NewSimLog(false)
	}
	w := &World{
		Grid: grid,
		cfg:  cfg,
		rng:  rng,
		log:  log,
	}
	w.Reset()
	return w
}

// Config returns the tuning the world runs with.
func (w *World) Config() Config { return w.cfg }

// Log returns the world's event log.
func (w *World) Log() *SimLog { return w.log }

// Reset restores the start-of-run state: fresh player, no bullets, the
// initial enemy pair, zeroed counters and spawn timer.
func (w *World) Reset() {
	w.Player = Player{
		X:         w.cfg.PlayerStartX,
		Y:         w.cfg.PlayerStartY,
		Speed:     w.cfg.PlayerSpeed,
		Health:    w.cfg.PlayerHealth,
		MaxHealth: w.cfg.PlayerHealth,
	}
	w.Enemies = nil
	w.Bullets = nil
	w.Stats = Stats{}
	w.Tick = 0
	w.nextEnemyID = 0
	w.spawnAccum = 0
	for _, s := range initialSpawns {
		w.SpawnEnemy(s.tile, s.typ)
	}
}

// SpawnEnemy places a new enemy of typ at the centre of t. It returns false
// and adds nothing when t is not an open cell.
func (w *World) SpawnEnemy(t Tile, typ EnemyType) (*Enemy, bool) {
	e, ok := newEnemy(w.Grid, w.nextEnemyID, t, typ)
	if !ok {
		w.Stats.SpawnsRejected++
		w.log.Add(w.Tick, "--", "spawn", "rejected", fmt.Sprintf("%s at (%d,%d)", typ, t.X, t.Y), 0)
		return nil, false
	}
	w.nextEnemyID++
	w.Enemies = append(w.Enemies, e)
	w.Stats.EnemiesSpawned++
	w.log.Add(w.Tick, enemyLabel(e), "spawn", "enemy", fmt.Sprintf("%s at (%d,%d)", typ, t.X, t.Y), float64(e.Health))
	return e, true
}

// TrySpawnRandom rolls a random tile and, if it is open, spawns a random
// enemy type there.
func (w *World) TrySpawnRandom() (*Enemy, bool) {
	t := Tile{X: w.rng.Intn(w.Grid.Cols()), Y: w.rng.Intn(w.Grid.Rows())}
	if !w.Grid.IsOpen(t) {
		w.Stats.SpawnsRejected++
		w.log.AddVerbose(w.Tick, "--", "spawn", "rejected", fmt.Sprintf("wall at (%d,%d)", t.X, t.Y), 0)
		return nil, false
	}
	typ := EnemyShooter
	if w.rng.Float64() > 0.5 {
		typ = EnemyBasic
	}
	return w.SpawnEnemy(t, typ)
}

// advanceSpawnTimer accumulates elapsed time and performs one spawn attempt
// per full interval. It returns the number of attempts made.
func (w *World) advanceSpawnTimer(dt time.Duration) int {
	if w.cfg.SpawnInterval <= 0 || dt <= 0 {
		return 0
	}
	w.spawnAccum += dt
	n := 0
	for w.spawnAccum >= w.cfg.SpawnInterval {
		w.spawnAccum -= w.cfg.SpawnInterval
		w.TrySpawnRandom()
		n++
	}
	return n
}

// Step advances the simulation by one tick. Sub-steps run in a fixed order:
// input, player movement, bullets, enemy AI, contact damage, hits, stats.
// The terminal check belongs to the Session.
func (w *World) Step(in Input) {
	w.Tick++
	w.applyLook(in)
	w.movePlayer(in)
	w.moveBullets()
	w.updateEnemies()
	w.resolveContactDamage()
	w.resolveHits()
	w.Stats.Kills = countKills(w.Enemies)
	if w.Player.Health > 0 {
		w.Stats.TicksSurvived = w.Tick
	}
}

// applyLook rotates the player from turn keys and pointer motion.
func (w *World) applyLook(in Input) {
	p := &w.Player
	if in.IsHeld(KeyTurnLeft) {
		p.Angle -= w.cfg.TurnSpeed
	}
	if in.IsHeld(KeyTurnRight) {
		p.Angle += w.cfg.TurnSpeed
	}
	p.Angle += in.PointerDX * w.cfg.MouseSens
}

// Fire spawns a bullet at the player's position heading along the facing.
func (w *World) Fire() {
	w.Bullets = append(w.Bullets, Bullet{X: w.Player.X, Y: w.Player.Y, Angle: w.Player.Angle})
	w.Stats.ShotsFired++
}

// movePlayer applies each held movement key in order. The x and y components
// are tested separately so the player slides along walls.
func (w *World) movePlayer(in Input) {
	p := &w.Player
	try := func(angle, sign float64) {
		dx := math.Cos(angle) * p.Speed * sign
		dy := math.Sin(angle) * p.Speed * sign
		if !w.Grid.IsWallAtWorldPoint(p.X+dx, p.Y) {
			p.X += dx
		}
		if !w.Grid.IsWallAtWorldPoint(p.X, p.Y+dy) {
			p.Y += dy
		}
	}
	if in.IsHeld(KeyForward) {
		try(p.Angle, 1)
	}
	if in.IsHeld(KeyBack) {
		try(p.Angle, -1)
	}
	if in.IsHeld(KeyStrafeLeft) {
		try(p.Angle-math.Pi/2, 1)
	}
	if in.IsHeld(KeyStrafeRight) {
		try(p.Angle+math.Pi/2, 1)
	}
}

// moveBullets advances every bullet and drops those that end inside a wall.
func (w *World) moveBullets() {
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		b.X += math.Cos(b.Angle) * w.cfg.BulletSpeed
		b.Y += math.Sin(b.Angle) * w.cfg.BulletSpeed
		if w.Grid.IsWallAtWorldPoint(b.X, b.Y) {
			continue
		}
		kept = append(kept, b)
	}
	w.Bullets = kept
}

// updateEnemies refreshes stale paths and moves each living enemy one step
// toward its next waypoint.
func (w *World) updateEnemies() {
	playerTile := w.Player.Tile(w.Grid)
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		enemyTile := w.Grid.WorldToTile(e.X, e.Y)

		needsNewPath := len(e.Path) == 0 ||
			(len(e.Path) > 1 && enemyTile != e.Path[0])
		if needsNewPath || w.rng.Float64() < w.cfg.RepathChance {
			target := w.Grid.NearestWalkableTile(playerTile)
			e.Path = w.Grid.FindPath(enemyTile, target)
		}

		if len(e.Path) > 1 {
			tx, ty := w.Grid.TileCenter(e.Path[1])
			dx := tx - e.X
			dy := ty - e.Y
			dist := math.Hypot(dx, dy)
			if dist > 1 {
				e.X += dx / dist * w.cfg.EnemySpeed
				e.Y += dy / dist * w.cfg.EnemySpeed
			}
		}
	}
}

// resolveContactDamage hurts the player once per cooldown window while any
// living enemy is in contact range, then ticks the cooldown down.
func (w *World) resolveContactDamage() {
	p := &w.Player
	if p.DamageTimer <= 0 {
		for _, e := range w.Enemies {
			if !e.Alive {
				continue
			}
			if math.Hypot(p.X-e.X, p.Y-e.Y) < w.cfg.ContactRadius {
				dmg := w.cfg.ContactDamage
				p.Health -= dmg
				p.DamageTimer = w.cfg.DamageCooldown
				w.Stats.DamageTaken += dmg
				w.log.Add(w.Tick, "P", "player", "damage",
					fmt.Sprintf("%d from %s %s, health %d", dmg, enemyLabel(e), e.Type, p.Health), float64(p.Health))
				break
			}
		}
	}
	if p.DamageTimer > 0 {
		p.DamageTimer--
	}
}

// resolveHits applies bullet damage to every living enemy within the hit
// radius of a bullet. A bullet that hit anything is consumed afterwards.
func (w *World) resolveHits() {
	r2 := w.cfg.HitRadius * w.cfg.HitRadius
	kept := w.Bullets[:0]
	for _, b := range w.Bullets {
		hit := false
		for _, e := range w.Enemies {
			if !e.Alive {
				continue
			}
			dx := b.X - e.X
			dy := b.Y - e.Y
			if dx*dx+dy*dy >= r2 {
				continue
			}
			e.Health -= w.cfg.BulletDamage
			w.Stats.Hits++
			hit = true
			if e.Health <= 0 {
				e.Alive = false
				e.Path = nil
				t := w.Grid.WorldToTile(e.X, e.Y)
				w.log.Add(w.Tick, enemyLabel(e), "combat", "kill", fmt.Sprintf("%s at (%d,%d)", e.Type, t.X, t.Y), 0)
			} else {
				w.log.AddVerbose(w.Tick, enemyLabel(e), "combat", "hit", fmt.Sprintf("health %d", e.Health), float64(e.Health))
			}
		}
		if !hit {
			kept = append(kept, b)
		}
	}
	w.Bullets = kept
}

func enemyLabel(e *Enemy) string {
	return fmt.Sprintf("E%d", e.ID)
}
