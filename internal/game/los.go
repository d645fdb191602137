package game

import "math"

// losStep is the sampling interval for grid line-of-sight checks.
const losStep = 1.0

// HasLineOfSight returns true if the segment from (ax,ay) to (bx,by) does not
// pass through a wall tile. Both endpoints are excluded from the test so an
// entity standing against a wall can still be seen.
func (gm *GridMap) HasLineOfSight(ax, ay, bx, by float64) bool {
	dx := bx - ax
	dy := by - ay
	length := math.Hypot(dx, dy)
	if length < 1e-12 {
		return true
	}
	ux, uy := dx/length, dy/length
	for d := losStep; d < length; d += losStep {
		if gm.IsWallAtWorldPoint(ax+ux*d, ay+uy*d) {
			return false
		}
	}
	return true
}
