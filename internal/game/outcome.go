package game

import (
	"fmt"
	"strings"
)

// RunOutcome classifies how a run ended.
type RunOutcome int

const (
	OutcomeInProgress RunOutcome = iota
	OutcomeKilled
	OutcomeTimeout
)

func (o RunOutcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeKilled:
		return "killed"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// RunReport is the end-of-run scorecard shown on the game-over screen,
// copied to the clipboard and aggregated by the headless reporter.
type RunReport struct {
	Outcome     RunOutcome
	Seed        int64
	Ticks       int
	Stats       Stats
	EnemiesLeft int
	Health      int
	MaxHealth   int
}

// Report builds a RunReport from the session's current state. A session
// that is still playing reports OutcomeInProgress.
func (s *Session) Report() RunReport {
	w := s.world
	out := OutcomeInProgress
	if s.phase == PhaseGameOver {
		out = OutcomeKilled
	}
	return RunReport{
		Outcome:     out,
		Seed:        s.seed,
		Ticks:       w.Tick,
		Stats:       w.Stats,
		EnemiesLeft: livingEnemies(w.Enemies),
		Health:      w.Player.Health,
		MaxHealth:   w.Player.MaxHealth,
	}
}

// Format renders the report as plain text.
func (r RunReport) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Raycaster run report ---\n")
	fmt.Fprintf(&b, "seed=%d outcome=%s ticks=%d (%.1fs at 60 TPS)\n", r.Seed, r.Outcome, r.Ticks, float64(r.Ticks)/60)
	fmt.Fprintf(&b, "kills=%d shots=%d hits=%d accuracy=%.0f%%\n",
		r.Stats.Kills, r.Stats.ShotsFired, r.Stats.Hits, r.Stats.Accuracy()*100)
	fmt.Fprintf(&b, "spawned=%d rejected=%d alive_at_end=%d\n",
		r.Stats.EnemiesSpawned, r.Stats.SpawnsRejected, r.EnemiesLeft)
	fmt.Fprintf(&b, "health=%d/%d damage_taken=%d\n", max(0, r.Health), r.MaxHealth, r.Stats.DamageTaken)
	return b.String()
}
