package game

// Stats are the running counters of one play-through.
type Stats struct {
	Kills          int // dead enemies, recomputed every tick
	ShotsFired     int
	Hits           int
	DamageTaken    int
	EnemiesSpawned int
	SpawnsRejected int
	TicksSurvived  int
}

// Accuracy returns hits per shot, 0 when nothing was fired.
func (s Stats) Accuracy() float64 {
	if s.ShotsFired == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.ShotsFired)
}

// countKills returns the number of dead enemies.
func countKills(enemies []*Enemy) int {
	n := 0
	for _, e := range enemies {
		if !e.Alive {
			n++
		}
	}
	return n
}

// livingEnemies returns the number of enemies still alive.
func livingEnemies(enemies []*Enemy) int {
	return len(enemies) - countKills(enemies)
}
