package game

import "math"

// Column is one screen column of the rendered view.
type Column struct {
	RayAngle    float64
	RawDistance float64 // marched distance along the ray
	Distance    float64 // fisheye-corrected distance
	WallHeight  float64 // projected height in pixels, capped at screen height
	Shade       uint8   // 255 near, 0 far
	Hit         bool    // false when the ray ran out of range
}

// DepthBuffer holds the per-column corrected wall distances for one frame.
// Index i is screen column i.
type DepthBuffer []float64

// At returns the depth at column i, or +Inf outside the buffer.
func (d DepthBuffer) At(i int) float64 {
	if i < 0 || i >= len(d) {
		return math.Inf(1)
	}
	return d[i]
}

// Raycaster casts one ray per screen column against a GridMap.
type Raycaster struct {
	grid    *GridMap
	cfg     Config
	columns []Column
	depth   DepthBuffer
}

// NewRaycaster sizes its buffers from cfg.ScreenWidth.
func NewRaycaster(grid *GridMap, cfg Config) *Raycaster {
	return &Raycaster{
		grid:    grid,
		cfg:     cfg,
		columns: make([]Column, cfg.ScreenWidth),
		depth:   make(DepthBuffer, cfg.ScreenWidth),
	}
}

// March steps along rayAngle from (px, py) in fixed increments until a wall
// is entered or the range runs out, and returns the distance travelled.
func (rc *Raycaster) March(px, py, rayAngle float64) (float64, bool) {
	cos, sin := math.Cos(rayAngle), math.Sin(rayAngle)
	step := rc.cfg.RayStep
	dist := 0.0
	for dist < rc.cfg.MaxRayRange {
		dist += step
		if rc.grid.IsWallAtWorldPoint(px+cos*dist, py+sin*dist) {
			return dist, true
		}
	}
	return dist, false
}

// Cast rebuilds the column and depth buffers for a viewer at (px, py) facing
// angle. The returned slices are owned by the Raycaster and are overwritten
// by the next call.
func (rc *Raycaster) Cast(px, py, angle float64) ([]Column, DepthBuffer) {
	n := len(rc.columns)
	fov := rc.cfg.FOV
	stepAngle := fov / float64(n)
	h := float64(rc.cfg.ScreenHeight)

	for i := 0; i < n; i++ {
		rayAngle := angle - fov/2 + stepAngle*float64(i)
		raw, hit := rc.March(px, py, rayAngle)
		corrected := raw * math.Cos(rayAngle-angle)

		rc.columns[i] = Column{
			RayAngle:    rayAngle,
			RawDistance: raw,
			Distance:    corrected,
			WallHeight:  math.Min(h, rc.cfg.TileSize*rc.cfg.WallScale/corrected),
			Shade:       shadeFor(corrected),
			Hit:         hit,
		}
		rc.depth[i] = corrected
	}
	return rc.columns, rc.depth
}

// shadeFor maps a corrected distance to a grey level, one level per unit.
func shadeFor(dist float64) uint8 {
	v := 255 - dist
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
