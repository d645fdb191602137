package game

import (
	"strings"
	"testing"
)

func TestStats_Accuracy(t *testing.T) {
	if (Stats{}).Accuracy() != 0 {
		t.Fatal("no shots should be 0 accuracy")
	}
	s := Stats{ShotsFired: 8, Hits: 2}
	if s.Accuracy() != 0.25 {
		t.Fatalf("expected 0.25, got %v", s.Accuracy())
	}
}

func TestCountKills(t *testing.T) {
	enemies := []*Enemy{{Alive: true}, {Alive: false}, {Alive: false}}
	if got := countKills(enemies); got != 2 {
		t.Fatalf("expected 2 kills, got %d", got)
	}
	if got := livingEnemies(enemies); got != 1 {
		t.Fatalf("expected 1 alive, got %d", got)
	}
}

func TestEnemyType_Stats(t *testing.T) {
	if s := EnemyBasic.Stats(); s.MaxHealth != 50 {
		t.Fatalf("unexpected basic stats %+v", s)
	}
	if s := EnemyShooter.Stats(); s.MaxHealth != 70 {
		t.Fatalf("unexpected shooter stats %+v", s)
	}
	if EnemyType(9).Valid() || EnemyType(9).String() != "unknown" {
		t.Fatal("out-of-range type should be invalid")
	}
}

func TestRunReport_Format(t *testing.T) {
	ts := quietSim(WithEnemyAt(4, 1, EnemyBasic))
	e := ts.World.Enemies[0]
	ts.World.Bullets = []Bullet{{X: e.X - 10, Y: e.Y}, {X: e.X - 10, Y: e.Y}}
	ts.World.Stats.ShotsFired = 4
	ts.Step(Input{})
	r := ts.Session.Report()
	if r.Outcome != OutcomeInProgress {
		t.Fatalf("expected in-progress report, got %s", r.Outcome)
	}
	out := r.Format()
	for _, want := range []string{"seed=1", "kills=1", "shots=4", "hits=2", "accuracy=50%", "alive_at_end=0", "health=100/100"} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}

func TestSimLog_SinceAndFilter(t *testing.T) {
	sl := NewSimLog(false)
	sl.Add(1, "E0", "spawn", "enemy", "basic at (2,1)", 50)
	sl.AddVerbose(2, "E0", "combat", "hit", "health 25", 25)
	sl.Add(3, "E0", "combat", "kill", "basic at (2,1)", 0)

	if n := len(sl.Entries()); n != 2 {
		t.Fatalf("verbose entries should be dropped when quiet, have %d", n)
	}
	got, next := sl.Since(0)
	if len(got) != 2 || next != 2 {
		t.Fatalf("expected 2 entries and cursor 2, got %d/%d", len(got), next)
	}
	sl.Add(4, "P", "player", "damage", "10", 90)
	got, next = sl.Since(next)
	if len(got) != 1 || got[0].Category != "player" || next != 3 {
		t.Fatalf("expected only the new entry, got %v (cursor %d)", got, next)
	}
	if e, ok := sl.LastOf("combat", "kill"); !ok || e.Tick != 3 {
		t.Fatalf("LastOf kill: %v %v", e, ok)
	}
	if sl.CountCategory("spawn", "") != 1 {
		t.Fatal("expected one spawn entry")
	}
	sl.Reset()
	if len(sl.Entries()) != 0 {
		t.Fatal("reset should clear entries")
	}
}

func TestSimLog_VerboseKeepsHits(t *testing.T) {
	ts := quietSim(WithVerbose(true), WithEnemyAt(4, 1, EnemyShooter))
	e := ts.World.Enemies[0]
	ts.World.Bullets = []Bullet{{X: e.X - 10, Y: e.Y}}
	ts.Step(Input{})
	if !ts.SimLog.HasEntry("combat", "hit", "health 45") {
		t.Fatalf("expected a verbose hit entry:\n%s", ts.SimLog.Format())
	}
}
