package game

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Config holds every gameplay tunable. Distances are world units (pixels at
// tile scale), speeds are per tick, timers are in ticks unless noted.
type Config struct {
	ScreenWidth  int // also the number of rays cast per frame
	ScreenHeight int

	TileSize     float64
	FOV          float64 // radians
	MaxRayRange  float64
	WallScale    float64 // projected wall height = TileSize*WallScale/dist
	SpriteScale  float64 // projected sprite height = SpriteScale/dist
	BulletScale  float64 // projected bullet radius = BulletScale/dist
	MinBulletPx  float64
	RayStep      float64 // ray-march increment
	TurnSpeed    float64 // radians per tick while a turn key is held
	MouseSens    float64 // radians per pointer pixel
	PlayerSpeed  float64
	PlayerStartX float64
	PlayerStartY float64
	PlayerHealth int

	BulletSpeed  float64
	BulletDamage int
	HitRadius    float64

	EnemySpeed     float64
	RepathChance   float64 // per-tick probability of a forced path refresh
	ContactRadius  float64
	ContactDamage  int // same for every enemy type
	DamageCooldown int // ticks between contact damage applications

	SpawnInterval time.Duration // 0 disables periodic spawning
	Seed          int64         // 0 = time based
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		ScreenWidth:  960,
		ScreenHeight: 600,

		TileSize:     64,
		FOV:          math.Pi / 3,
		MaxRayRange:  1000,
		WallScale:    200,
		SpriteScale:  30000,
		BulletScale:  200,
		MinBulletPx:  2,
		RayStep:      1,
		TurnSpeed:    0.05,
		MouseSens:    0.002,
		PlayerSpeed:  2,
		PlayerStartX: 100,
		PlayerStartY: 100,
		PlayerHealth: 100,

		BulletSpeed:  5,
		BulletDamage: 25,
		HitRadius:    20,

		EnemySpeed:     1,
		RepathChance:   0.02,
		ContactRadius:  20,
		ContactDamage:  10,
		DamageCooldown: 30,

		SpawnInterval: 500 * time.Millisecond,
	}
}

var errBadConfig = errors.New("invalid config")

// Validate rejects configurations the tick loop cannot run with.
func (c Config) Validate() error {
	switch {
	case c.ScreenWidth <= 0 || c.ScreenHeight <= 0:
		return fmt.Errorf("%w: screen %dx%d", errBadConfig, c.ScreenWidth, c.ScreenHeight)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %v", errBadConfig, c.TileSize)
	case c.FOV <= 0 || c.FOV >= math.Pi:
		return fmt.Errorf("%w: fov %v", errBadConfig, c.FOV)
	case c.RayStep <= 0 || c.MaxRayRange <= 0:
		return fmt.Errorf("%w: ray step %v range %v", errBadConfig, c.RayStep, c.MaxRayRange)
	case c.ContactDamage < 0 || c.BulletDamage < 0:
		return fmt.Errorf("%w: contact damage %d bullet damage %d", errBadConfig, c.ContactDamage, c.BulletDamage)
	case c.PlayerHealth <= 0:
		return fmt.Errorf("%w: player health %d", errBadConfig, c.PlayerHealth)
	case c.SpawnInterval < 0:
		return fmt.Errorf("%w: spawn interval %v", errBadConfig, c.SpawnInterval)
	}
	return nil
}
