package main

import (
	"strings"
	"testing"

	"github.com/Garsondee/Raycaster/internal/game"
)

func TestFirstTick_MatchesCategoryKeyAndSubstring(t *testing.T) {
	entries := []game.SimLogEntry{
		{Tick: 0, Category: "spawn", Key: "enemy", Value: "basic at (2,1)"},
		{Tick: 12, Category: "phase", Key: "change", Value: "title → playing"},
		{Tick: 40, Category: "player", Key: "damage", Value: "10 from E1 basic, health 90"},
		{Tick: 95, Category: "phase", Key: "change", Value: "playing → game_over"},
	}

	if got := firstTick(entries, "player", "damage", ""); got != 40 {
		t.Fatalf("first damage: got %d, want 40", got)
	}
	if got := firstTick(entries, "phase", "change", "game_over"); got != 95 {
		t.Fatalf("death tick: got %d, want 95", got)
	}
	if got := firstTick(entries, "combat", "kill", ""); got != -1 {
		t.Fatalf("missing category should give -1, got %d", got)
	}
	if got := firstTickAfter(entries, "spawn", "enemy", 1); got != -1 {
		t.Fatalf("initial spawn at tick 0 should be skipped, got %d", got)
	}
}

func TestAvgTickString(t *testing.T) {
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("empty: got %q", got)
	}
	if got := avgTickString([]int{10, 20, 40}); got != "23.3" {
		t.Fatalf("got %q, want 23.3", got)
	}
	if got := avg(7, 0); got != 0 {
		t.Fatalf("avg with n=0 should be 0, got %f", got)
	}
}

func TestEventValueParsers(t *testing.T) {
	if got := enemyTypeOf("shooter at (5,2)"); got != "shooter" {
		t.Fatalf("enemyTypeOf: got %q", got)
	}
	if got := damageSource("10 from E2 shooter, health 80"); got != "shooter" {
		t.Fatalf("damageSource: got %q", got)
	}
	if got := damageSource("garbled"); got != "unknown" {
		t.Fatalf("damageSource fallback: got %q", got)
	}
}

func TestClassifyRun(t *testing.T) {
	cases := []struct {
		name   string
		report game.RunReport
		want   string
	}{
		{"overrun", game.RunReport{Outcome: game.OutcomeKilled, Ticks: 300}, "overrun"},
		{"fell", game.RunReport{Outcome: game.OutcomeKilled, Stats: game.Stats{Kills: 3}}, "fell"},
		{"cleared", game.RunReport{Outcome: game.OutcomeTimeout, Stats: game.Stats{Kills: 2}}, "cleared"},
		{"holding", game.RunReport{Outcome: game.OutcomeTimeout, Stats: game.Stats{Kills: 4}, EnemiesLeft: 3}, "holding"},
		{"swamped", game.RunReport{Outcome: game.OutcomeTimeout, Stats: game.Stats{Kills: 1}, EnemiesLeft: 9}, "swamped"},
	}
	for _, c := range cases {
		got, reason := classifyRun(runStats{report: c.report})
		if got != c.want {
			t.Fatalf("%s: got %s (%s), want %s", c.name, got, reason, c.want)
		}
		if reason == "" {
			t.Fatalf("%s: empty reason", c.name)
		}
	}
}

func TestJoinCounts_SortedKeys(t *testing.T) {
	got := joinCounts(map[string]int{"shooter": 2, "basic": 5})
	if got != "basic=5 shooter=2" {
		t.Fatalf("got %q", got)
	}
	if joinCounts(nil) != "none" {
		t.Fatalf("empty map should print none")
	}
}

func TestRunScenario_IdleRecordsInitialSpawns(t *testing.T) {
	rs := runScenario(1, 42, 600, scenarios["idle"])
	if rs.spawnEvents < 2 {
		t.Fatalf("expected at least the two initial spawns, got %d", rs.spawnEvents)
	}
	if rs.report.Ticks > 600 {
		t.Fatalf("run overran its tick budget: %d", rs.report.Ticks)
	}
	if rs.report.Outcome == game.OutcomeInProgress {
		t.Fatalf("unfinished runs should be reported as timeout")
	}
	if rs.report.Stats.ShotsFired != 0 {
		t.Fatalf("idle player fired %d shots", rs.report.Stats.ShotsFired)
	}
	if rs.deathTick >= 0 && rs.report.Outcome != game.OutcomeKilled {
		t.Fatalf("death marker at %d but outcome %s", rs.deathTick, rs.report.Outcome)
	}
}

func TestScenarioNames_Listed(t *testing.T) {
	names := scenarioNames()
	for _, want := range []string{"arena", "autopilot", "idle"} {
		if !strings.Contains(names, want) {
			t.Fatalf("scenario %q missing from %q", want, names)
		}
	}
}
