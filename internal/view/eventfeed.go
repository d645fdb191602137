package view

import (
	"fmt"
	"image/color"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	feedPanelWidth = 320
	feedMaxEntries = 60
	feedLineHeight = 11
)

// EventFeed is a ring buffer of recent SimLog entries rendered beside the
// 3D view.
type EventFeed struct {
	entries []game.SimLogEntry
	head    int
	count   int
	cursor  int // next SimLog index to pull
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]game.SimLogEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (ef *EventFeed) Add(e game.SimLogEntry) {
	ef.entries[ef.head] = e
	ef.head = (ef.head + 1) % feedMaxEntries
	if ef.count < feedMaxEntries {
		ef.count++
	}
}

// Sync pulls every entry recorded in sl since the last call.
func (ef *EventFeed) Sync(sl *game.SimLog) {
	fresh, next := sl.Since(ef.cursor)
	for _, e := range fresh {
		ef.Add(e)
	}
	ef.cursor = next
}

// Clear empties the feed. The log cursor is kept, so entries from before the
// clear are not pulled again.
func (ef *EventFeed) Clear() {
	ef.head, ef.count = 0, 0
}

// Follow syncs from sl after a tick that moved the session from prev to cur.
// A restart (GAME_OVER to PLAYING) clears the previous run's entries first.
func (ef *EventFeed) Follow(sl *game.SimLog, prev, cur game.Phase) {
	if prev == game.PhaseGameOver && cur == game.PhasePlaying {
		ef.Clear()
	}
	ef.Sync(sl)
}

// Recent returns entries in chronological order (oldest first).
func (ef *EventFeed) Recent() []game.SimLogEntry {
	result := make([]game.SimLogEntry, ef.count)
	for i := 0; i < ef.count; i++ {
		idx := (ef.head - ef.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = ef.entries[idx]
	}
	return result
}

func categoryColor(category string) color.RGBA {
	switch category {
	case "combat":
		return color.RGBA{R: 220, G: 60, B: 50, A: 255}
	case "spawn":
		return color.RGBA{R: 230, G: 150, B: 40, A: 255}
	case "player":
		return color.RGBA{R: 240, G: 220, B: 60, A: 255}
	default:
		return color.RGBA{R: 140, G: 140, B: 140, A: 255}
	}
}

// Draw renders the feed panel at panelX.
func (ef *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 12, G: 8, B: 8, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 80, G: 30, B: 30, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 16, color.RGBA{R: 40, G: 14, B: 14, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", panelX+8, 2)
	vector.StrokeLine(screen, float32(panelX), 16, float32(panelX+feedPanelWidth), 16, 1.0, color.RGBA{R: 90, G: 40, B: 40, A: 200}, false)

	entries := ef.Recent()
	maxVisible := (panelH - 24) / feedLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	const highlight = 3
	y := 20
	for i, e := range entries {
		if i >= len(entries)-highlight {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 45, G: 20, B: 20, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, categoryColor(e.Category), false)
		line := fmt.Sprintf("%4d [%s] %s %s", e.Tick, e.Actor, e.Key, e.Value)
		ebitenutil.DebugPrintAt(screen, line, panelX+12, y)
		y += feedLineHeight
	}
}
