package game

import (
	"testing"
)

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// dumpSummary prints the scenario summary block.
func dumpSummary(t *testing.T, ts *TestSim) {
	t.Helper()
	t.Log(ts.SimLog.Summary(ts.World))
	t.Log(ts.Session.Report().Format())
}

// --- Scenario: Autopilot clears the opening pair ---

func TestScenario_AutopilotClearsInitialEnemies(t *testing.T) {
	t.Log("=== TestScenario_AutopilotClearsInitialEnemies ===")
	t.Log("--- Setup: default map, initial basic + shooter, no random spawns ---")

	ts := NewTestSim(WithSeed(42), WithoutSpawning(), WithAutopilot())
	tick := ts.RunUntil(func(ts *TestSim) bool {
		return ts.World.Stats.Kills == 2 || ts.Session.Phase() != PhasePlaying
	}, 3600)
	dumpLog(t, ts)
	dumpSummary(t, ts)

	if tick < 0 {
		t.Fatal("autopilot neither cleared the map nor died within 60s")
	}
	if ts.Session.Phase() != PhasePlaying {
		t.Fatalf("autopilot died at tick %d with %d kills", tick, ts.World.Stats.Kills)
	}
	if ts.World.Stats.Hits < 5 {
		t.Fatalf("killing 120 hp takes at least 5 hits, got %d", ts.World.Stats.Hits)
	}
}

// --- Scenario: Idle player is overrun ---

func TestScenario_IdlePlayerDies(t *testing.T) {
	t.Log("=== TestScenario_IdlePlayerDies ===")
	t.Log("--- Setup: default map, player idle near the east edge of its tile ---")

	// Enemies stop once they enter the player's tile, so the player stands
	// within contact range of that edge.
	ts := NewTestSim(WithSeed(5), WithPlayerAt(124, 96, 0))
	tick := ts.RunUntil(func(ts *TestSim) bool {
		return ts.Session.Phase() == PhaseGameOver
	}, 60*60)
	dumpSummary(t, ts)

	if tick < 0 {
		t.Fatal("an idle player should eventually be overrun")
	}
	if ts.World.Stats.Kills != 0 {
		t.Fatalf("idle player cannot kill, got %d", ts.World.Stats.Kills)
	}
	// Damage arrives at most once per cooldown window.
	windows := tick/ts.Cfg.DamageCooldown + 1
	if n := ts.SimLog.CountCategory("player", "damage"); n > windows {
		t.Fatalf("%d damage events in %d ticks exceeds %d windows", n, tick, windows)
	}
	if ts.World.Stats.DamageTaken < 100 {
		t.Fatalf("expected at least 100 damage, got %d", ts.World.Stats.DamageTaken)
	}
}

// --- Scenario: Invariants hold for a long autopilot run ---

func TestScenario_LongRunInvariants(t *testing.T) {
	t.Log("=== TestScenario_LongRunInvariants ===")

	ts := NewTestSim(WithSeed(2024), WithAutopilot())
	prevKills := 0
	for i := 0; i < 3600 && ts.Session.Phase() == PhasePlaying; i++ {
		f := ts.Step(ts.nextInput())
		w := ts.World
		if w.Stats.Kills < prevKills {
			t.Fatalf("tick %d: kills dropped %d -> %d", w.Tick, prevKills, w.Stats.Kills)
		}
		prevKills = w.Stats.Kills
		if w.Grid.IsWallAtWorldPoint(w.Player.X, w.Player.Y) {
			t.Fatalf("tick %d: player in wall", w.Tick)
		}
		for _, b := range w.Bullets {
			if w.Grid.IsWallAtWorldPoint(b.X, b.Y) {
				t.Fatalf("tick %d: bullet left inside a wall", w.Tick)
			}
		}
		for _, e := range w.Enemies {
			if e.Alive != (e.Health > 0) {
				t.Fatalf("tick %d: enemy %d alive=%v with health %d", w.Tick, e.ID, e.Alive, e.Health)
			}
		}
		if len(f.Depth) != ts.Cfg.ScreenWidth {
			t.Fatalf("tick %d: depth buffer has %d entries", w.Tick, len(f.Depth))
		}
		for j := 1; j < len(f.Sprites); j++ {
			if f.Sprites[j].Distance > f.Sprites[j-1].Distance {
				t.Fatalf("tick %d: sprites out of order", w.Tick)
			}
		}
	}
	dumpSummary(t, ts)
}
