package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/Garsondee/Raycaster/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64
	report   game.RunReport

	firstKillTick   int
	firstDamageTick int
	firstSpawnTick  int // first periodic spawn, initial enemies excluded
	deathTick       int

	killEvents    int
	damageEvents  int
	spawnEvents   int
	rejectEvents  int
	killsByType   map[string]int
	damageByActor map[string]int
}

var scenarios = map[string][]game.SimOption{
	"autopilot": {game.WithAutopilot()},
	"idle":      {},
	"arena":     {game.WithAutopilot(), game.WithoutSpawning()},
}

func scenarioNames() string {
	names := make([]string, 0, len(scenarios))
	for k := range scenarios {
		names = append(names, k)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var scenario string
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&ticks, "ticks", 3600, "ticks per run (60 per simulated second)")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&scenario, "scenario", "autopilot", "scenario name")
	flag.BoolVar(&verbose, "v", false, "log session diagnostics to stderr")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	opts, ok := scenarios[scenario]
	if !ok {
		fmt.Printf("error: unsupported scenario %q (supported: %s)\n", scenario, scenarioNames())
		return
	}
	if verbose {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	fmt.Printf("=== Headless Run Report ===\n")
	fmt.Printf("scenario=%s runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", scenario, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runScenario(i+1, seed, ticks, opts)
		all = append(all, rs)
		printRun(rs)
	}

	printAggregate(all)
}

func runScenario(runIndex int, seed int64, ticks int, opts []game.SimOption) runStats {
	ts := game.NewTestSim(append([]game.SimOption{game.WithSeed(seed)}, opts...)...)
	ts.RunUntil(func(ts *game.TestSim) bool {
		return ts.Session.Phase() == game.PhaseGameOver
	}, ticks)

	report := ts.Session.Report()
	if report.Outcome == game.OutcomeInProgress {
		report.Outcome = game.OutcomeTimeout
	}
	slog.Debug("run finished", "run", runIndex, "seed", seed, "outcome", report.Outcome.String(), "ticks", report.Ticks)

	entries := ts.SimLog.Entries()
	killsByType := map[string]int{}
	damageByActor := map[string]int{}
	for _, e := range entries {
		switch {
		case e.Category == "combat" && e.Key == "kill":
			killsByType[enemyTypeOf(e.Value)]++
		case e.Category == "player" && e.Key == "damage":
			damageByActor[damageSource(e.Value)]++
		}
	}

	return runStats{
		runIndex:        runIndex,
		seed:            seed,
		report:          report,
		firstKillTick:   firstTick(entries, "combat", "kill", ""),
		firstDamageTick: firstTick(entries, "player", "damage", ""),
		firstSpawnTick:  firstTickAfter(entries, "spawn", "enemy", 1),
		deathTick:       firstTick(entries, "phase", "change", "game_over"),
		killEvents:      ts.SimLog.CountCategory("combat", "kill"),
		damageEvents:    ts.SimLog.CountCategory("player", "damage"),
		spawnEvents:     ts.SimLog.CountCategory("spawn", "enemy"),
		rejectEvents:    ts.SimLog.CountCategory("spawn", "rejected"),
		killsByType:     killsByType,
		damageByActor:   damageByActor,
	}
}

func firstTick(entries []game.SimLogEntry, category, key, contains string) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key {
			continue
		}
		if contains != "" && !strings.Contains(e.Value, contains) {
			continue
		}
		return e.Tick
	}
	return -1
}

// firstTickAfter returns the tick of the first matching entry at or after
// minTick, or -1.
func firstTickAfter(entries []game.SimLogEntry, category, key string, minTick int) int {
	for _, e := range entries {
		if e.Category != category || e.Key != key || e.Tick < minTick {
			continue
		}
		return e.Tick
	}
	return -1
}

// enemyTypeOf extracts the type from a "basic at (2,1)" style value.
func enemyTypeOf(value string) string {
	if i := strings.IndexByte(value, ' '); i > 0 {
		return value[:i]
	}
	return value
}

// damageSource extracts the enemy type from a "10 from E1 basic, health 90"
// style value.
func damageSource(value string) string {
	fields := strings.Fields(value)
	for i, f := range fields {
		if f == "from" && i+2 < len(fields) {
			return strings.TrimSuffix(fields[i+2], ",")
		}
	}
	return "unknown"
}

// classifyRun labels a run for the aggregate table.
func classifyRun(rs runStats) (string, string) {
	r := rs.report
	switch {
	case r.Outcome == game.OutcomeKilled && r.Stats.Kills == 0:
		return "overrun", fmt.Sprintf("died at tick %d without a kill", r.Ticks)
	case r.Outcome == game.OutcomeKilled:
		return "fell", fmt.Sprintf("died at tick %d after %d kills", r.Ticks, r.Stats.Kills)
	case r.EnemiesLeft == 0:
		return "cleared", fmt.Sprintf("no enemies alive after %d kills", r.Stats.Kills)
	case r.Stats.Kills >= r.EnemiesLeft:
		return "holding", fmt.Sprintf("kills=%d alive=%d", r.Stats.Kills, r.EnemiesLeft)
	default:
		return "swamped", fmt.Sprintf("kills=%d alive=%d", r.Stats.Kills, r.EnemiesLeft)
	}
}

func printRun(rs runStats) {
	r := rs.report
	label, reason := classifyRun(rs)
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s ticks=%d class=%s (%s)\n", r.Outcome, r.Ticks, label, reason)
	fmt.Printf("markers: first_kill=%d first_damage=%d first_spawn=%d death=%d\n",
		rs.firstKillTick, rs.firstDamageTick, rs.firstSpawnTick, rs.deathTick)
	fmt.Printf("event_totals: kill=%d damage=%d spawn=%d rejected=%d\n",
		rs.killEvents, rs.damageEvents, rs.spawnEvents, rs.rejectEvents)
	fmt.Printf("combat: shots=%d hits=%d accuracy=%.0f%% damage_taken=%d health=%d/%d\n",
		r.Stats.ShotsFired, r.Stats.Hits, r.Stats.Accuracy()*100, r.Stats.DamageTaken, max(0, r.Health), r.MaxHealth)
	fmt.Printf("kills_by_type: %s\n", joinCounts(rs.killsByType))
	fmt.Printf("damage_by_type: %s\n", joinCounts(rs.damageByActor))
	fmt.Println()
}

func printAggregate(all []runStats) {
	totalKills := 0
	totalShots := 0
	totalHits := 0
	totalDamage := 0
	totalSpawns := 0
	totalRejects := 0

	killTicks := make([]int, 0, len(all))
	damageTicks := make([]int, 0, len(all))
	deathTicks := make([]int, 0, len(all))
	outcomes := map[string]int{}
	classes := map[string]int{}
	killsByType := map[string]int{}

	for _, rs := range all {
		r := rs.report
		totalKills += r.Stats.Kills
		totalShots += r.Stats.ShotsFired
		totalHits += r.Stats.Hits
		totalDamage += r.Stats.DamageTaken
		totalSpawns += rs.spawnEvents
		totalRejects += rs.rejectEvents
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
		if rs.firstDamageTick >= 0 {
			damageTicks = append(damageTicks, rs.firstDamageTick)
		}
		if rs.deathTick >= 0 {
			deathTicks = append(deathTicks, rs.deathTick)
		}
		outcomes[r.Outcome.String()]++
		label, _ := classifyRun(rs)
		classes[label]++
		for k, v := range rs.killsByType {
			killsByType[k] += v
		}
	}

	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d\n", len(all))
	fmt.Printf("outcomes: %s\n", joinCounts(outcomes))
	fmt.Printf("classes: %s\n", joinCounts(classes))
	fmt.Printf("avg_per_run: kills=%.1f shots=%.1f hits=%.1f damage_taken=%.1f spawns=%.1f rejected=%.1f\n",
		avg(totalKills, len(all)), avg(totalShots, len(all)), avg(totalHits, len(all)),
		avg(totalDamage, len(all)), avg(totalSpawns, len(all)), avg(totalRejects, len(all)))
	accuracy := 0.0
	if totalShots > 0 {
		accuracy = float64(totalHits) / float64(totalShots) * 100
	}
	fmt.Printf("overall_accuracy=%.0f%%\n", accuracy)
	fmt.Printf("marker_avg_ticks: first_kill=%s first_damage=%s death=%s\n",
		avgTickString(killTicks), avgTickString(damageTicks), avgTickString(deathTicks))
	fmt.Printf("kills_by_type: %s\n", joinCounts(killsByType))
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%d", k, counts[k])
	}
	return strings.Join(parts, " ")
}
