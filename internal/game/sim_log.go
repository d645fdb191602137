package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded gameplay event.
type SimLogEntry struct {
	Tick     int
	Actor    string  // "P" for the player, "E3" for enemy 3, "--" for global events
	Category string  // spawn, combat, player, phase
	Key      string  // specific event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] E3   combat    kill             basic at (2,1)
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-16s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// SimLog collects structured events during a session. It is unbounded and
// machine-readable; the on-screen feed keeps its own ring buffer.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. If verbose is true, non-lethal hits and
// rejected random spawns are also recorded.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, actor, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (sl *SimLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !sl.verbose {
		return
	}
	sl.Add(tick, actor, category, key, value, numVal)
}

// Reset drops every entry.
func (sl *SimLog) Reset() {
	sl.entries = sl.entries[:0]
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

// Since returns entries recorded at or after index from, and the index to
// pass next time.
func (sl *SimLog) Since(from int) ([]SimLogEntry, int) {
	if from < 0 || from > len(sl.entries) {
		from = len(sl.entries)
	}
	return sl.entries[from:], len(sl.entries)
}

// Filter returns entries matching the given category and/or key.
// Pass empty string to match any value for that field.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// CountCategory returns how many entries match the given category and key.
func (sl *SimLog) CountCategory(category, key string) int {
	return len(sl.Filter(category, key))
}

// LastOf returns the most recent entry matching category+key, or false if none.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	entries := sl.Filter(category, key)
	if len(entries) == 0 {
		return SimLogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry returns true if at least one entry matches category, key, and value substring.
func (sl *SimLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range sl.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log as a single string for t.Log output.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns a short human-readable summary of the world state.
func (sl *SimLog) Summary(w *World) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- Summary at T=%03d ---\n", w.Tick)
	fmt.Fprintf(&sb, "Player: (%.1f,%.1f) angle=%.2f health=%d/%d cooldown=%d\n",
		w.Player.X, w.Player.Y, w.Player.Angle, w.Player.Health, w.Player.MaxHealth, w.Player.DamageTimer)

	alive := map[EnemyType]int{}
	dead := map[EnemyType]int{}
	for _, e := range w.Enemies {
		if e.Alive {
			alive[e.Type]++
		} else {
			dead[e.Type]++
		}
	}
	for t := EnemyType(0); t < enemyTypeCount; t++ {
		fmt.Fprintf(&sb, "%s: alive=%d dead=%d\n", t, alive[t], dead[t])
	}
	fmt.Fprintf(&sb, "Bullets in flight: %d  Kills: %d\n", len(w.Bullets), w.Stats.Kills)
	fmt.Fprintf(&sb, "Events: spawn=%d rejected=%d kill=%d damage=%d\n",
		sl.CountCategory("spawn", "enemy"),
		sl.CountCategory("spawn", "rejected"),
		sl.CountCategory("combat", "kill"),
		sl.CountCategory("player", "damage"))
	return sb.String()
}
