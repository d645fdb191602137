package game

import "math"

const (
	autoAimTolerance = 0.04 // radians either side of the target bearing
	autoFireEvery    = 6    // ticks between shots
	autoRetreatDist  = 48.0
)

// Autopilot produces Input for a scripted player: it turns toward the
// nearest living enemy in line of sight, fires on a cadence once aimed, and
// backs off when something gets close. Used by the headless reporter and
// scenario tests.
type Autopilot struct {
	cooldown int
}

// Next returns the input for the coming tick.
func (ap *Autopilot) Next(s *Session) Input {
	var in Input
	switch s.Phase() {
	case PhaseTitle:
		in.Confirm = true
		return in
	case PhaseGameOver:
		return in
	}
	if ap.cooldown > 0 {
		ap.cooldown--
	}

	w := s.World()
	p := &w.Player
	target := nearestVisibleEnemy(w)
	if target == nil {
		in.Held[KeyTurnRight] = true
		return in
	}

	bearing := math.Atan2(target.Y-p.Y, target.X-p.X)
	rel := normalizeAngle(bearing - p.Angle)
	turn := w.cfg.TurnSpeed
	switch {
	case rel > turn/2:
		in.Held[KeyTurnRight] = true
	case rel < -turn/2:
		in.Held[KeyTurnLeft] = true
	}
	if math.Abs(rel) <= autoAimTolerance && ap.cooldown == 0 {
		in.Fire = true
		ap.cooldown = autoFireEvery
	}
	if math.Hypot(target.X-p.X, target.Y-p.Y) < autoRetreatDist {
		in.Held[KeyBack] = true
	}
	return in
}

// nearestVisibleEnemy returns the closest living enemy the player can see,
// or nil.
func nearestVisibleEnemy(w *World) *Enemy {
	p := &w.Player
	var best *Enemy
	bestD := math.Inf(1)
	for _, e := range w.Enemies {
		if !e.Alive {
			continue
		}
		d := math.Hypot(e.X-p.X, e.Y-p.Y)
		if d >= bestD || !w.Grid.HasLineOfSight(p.X, p.Y, e.X, e.Y) {
			continue
		}
		best, bestD = e, d
	}
	return best
}
