package game

// EnemyType is the closed set of enemy variants.
type EnemyType uint8

const (
	EnemyBasic EnemyType = iota
	EnemyShooter
	enemyTypeCount // sentinel
)

// EnemyStats is the per-type stat bundle.
type EnemyStats struct {
	Name      string
	MaxHealth int
}

var enemyStats = [enemyTypeCount]EnemyStats{
	EnemyBasic:   {Name: "basic", MaxHealth: 50},
	EnemyShooter: {Name: "shooter", MaxHealth: 70},
}

// Stats returns the stat bundle for t. Unknown types get the basic stats.
func (t EnemyType) Stats() EnemyStats {
	if t >= enemyTypeCount {
		return enemyStats[EnemyBasic]
	}
	return enemyStats[t]
}

// Valid reports whether t is a known variant.
func (t EnemyType) Valid() bool { return t < enemyTypeCount }

func (t EnemyType) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return enemyStats[t].Name
}

// Player is the single controllable entity.
type Player struct {
	X, Y        float64
	Angle       float64 // radians, 0 = +X, increasing clockwise on screen
	Speed       float64
	Health      int
	MaxHealth   int
	DamageTimer int // ticks left before contact damage may apply again
}

// Tile returns the tile the player stands in.
func (p *Player) Tile(gm *GridMap) Tile { return gm.WorldToTile(p.X, p.Y) }

// Enemy is a pathing melee attacker. Dead enemies stay in the world for
// scoring and are never revived.
type Enemy struct {
	ID     int
	X, Y   float64
	Type   EnemyType
	Health int
	Alive  bool
	Path   []Tile // Path[0] is the tile the path was computed from
}

// Bullet is an in-flight projectile.
type Bullet struct {
	X, Y  float64
	Angle float64
}

// newEnemy builds an enemy centred on t. It returns false when t is not an
// open cell or typ is unknown.
func newEnemy(gm *GridMap, id int, t Tile, typ EnemyType) (*Enemy, bool) {
	if !gm.IsOpen(t) || !typ.Valid() {
		return nil, false
	}
	x, y := gm.TileCenter(t)
	return &Enemy{
		ID:     id,
		X:      x,
		Y:      y,
		Type:   typ,
		Health: typ.Stats().MaxHealth,
		Alive:  true,
	}, true
}
