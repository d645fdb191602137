package game

import (
	"math"
	"sort"
)

// SpriteKind distinguishes projected billboards.
type SpriteKind uint8

const (
	SpriteEnemy SpriteKind = iota
	SpriteBullet
)

// Sprite is a screen-space billboard, centred on (ScreenX, ScreenY).
// Enemy sprites are Width x Height; bullets are discs of radius Height.
type Sprite struct {
	Kind     SpriteKind
	Enemy    EnemyType // valid for SpriteEnemy
	EnemyID  int
	ScreenX  float64
	ScreenY  float64
	Width    float64
	Height   float64
	Distance float64
}

// SpriteAspects supplies the width/height ratio of each enemy sprite. It is
// the only thing the core needs to know about artwork.
type SpriteAspects interface {
	SpriteAspectRatio(t EnemyType) float64
}

// SquareSprites is a SpriteAspects that reports 1:1 for every type.
type SquareSprites struct{}

// SpriteAspectRatio implements SpriteAspects.
func (SquareSprites) SpriteAspectRatio(EnemyType) float64 { return 1 }

// Projector turns world entities into screen-space sprites using a depth
// buffer for wall occlusion.
type Projector struct {
	cfg      Config
	aspects  SpriteAspects
	halfFOV  float64
	viewDist float64
	sprites  []Sprite
}

// NewProjector precomputes the view-plane distance for cfg.
func NewProjector(cfg Config, aspects SpriteAspects) *Projector {
	if aspects == nil {
		aspects = SquareSprites{}
	}
	half := cfg.FOV / 2
	return &Projector{
		cfg:      cfg,
		aspects:  aspects,
		halfFOV:  half,
		viewDist: float64(cfg.ScreenWidth) / 2 / math.Tan(half),
	}
}

// normalizeAngle wraps a into [-Pi, Pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < -math.Pi {
		a += 2 * math.Pi
	}
	if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}

// place projects a world point relative to the player. ok is false when
// the point is outside the field of view or on top of the viewer.
func (pj *Projector) place(p *Player, x, y float64) (screenX, dist float64, ok bool) {
	dx := x - p.X
	dy := y - p.Y
	dist = math.Hypot(dx, dy)
	if dist < 1e-6 {
		return 0, 0, false
	}
	rel := normalizeAngle(math.Atan2(dy, dx) - p.Angle)
	if math.Abs(rel) >= pj.halfFOV {
		return 0, 0, false
	}
	return float64(pj.cfg.ScreenWidth)/2 + math.Tan(rel)*pj.viewDist, dist, true
}

// occluded reports whether the wall at screen column floor(screenX) is
// nearer than dist.
func occluded(depth DepthBuffer, screenX, dist float64) bool {
	col := int(math.Floor(screenX))
	if col < 0 || col >= len(depth) {
		return false
	}
	return depth[col] < dist
}

// Project returns the visible sprites of w sorted far to near. The slice is
// reused by the next call.
func (pj *Projector) Project(w *World, depth DepthBuffer) []Sprite {
	pj.sprites = pj.sprites[:0]
	p := &w.Player
	h := float64(pj.cfg.ScreenHeight)

	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		sx, dist, ok := pj.place(p, e.X, e.Y)
		if !ok || occluded(depth, sx, dist) {
			continue
		}
		sh := math.Min(h, pj.cfg.SpriteScale/dist)
		pj.sprites = append(pj.sprites, Sprite{
			Kind:     SpriteEnemy,
			Enemy:    e.Type,
			EnemyID:  e.ID,
			ScreenX:  sx,
			ScreenY:  h / 2,
			Width:    sh * pj.aspects.SpriteAspectRatio(e.Type),
			Height:   sh,
			Distance: dist,
		})
	}

	for _, b := range w.Bullets {
		sx, dist, ok := pj.place(p, b.X, b.Y)
		if !ok || occluded(depth, sx, dist) {
			continue
		}
		r := math.Max(pj.cfg.MinBulletPx, pj.cfg.BulletScale/dist)
		pj.sprites = append(pj.sprites, Sprite{
			Kind:     SpriteBullet,
			ScreenX:  sx,
			ScreenY:  h / 2,
			Width:    r,
			Height:   r,
			Distance: dist,
		})
	}

	sort.SliceStable(pj.sprites, func(i, j int) bool {
		return pj.sprites[i].Distance > pj.sprites[j].Distance
	})
	return pj.sprites
}
