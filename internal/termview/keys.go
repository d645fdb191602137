package termview

import (
	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/gdamore/tcell/v2"
)

// HoldTicks is how long a key press keeps its logical key held. Terminals
// deliver no release events, only auto-repeat, so a held key is a latch that
// each repeat refreshes.
const HoldTicks = 10

// Keys accumulates tcell events between ticks and turns them into a
// game.Input.
type Keys struct {
	latch    [game.KeyCount]int
	edges    game.Input
	quit     bool
	buttonDn bool
}

// NewKeys returns an empty key state.
func NewKeys() *Keys { return &Keys{} }

func heldFor(ev *tcell.EventKey) (game.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return game.KeyForward, true
	case tcell.KeyDown:
		return game.KeyBack, true
	case tcell.KeyLeft:
		return game.KeyTurnLeft, true
	case tcell.KeyRight:
		return game.KeyTurnRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return game.KeyForward, true
		case 's', 'S':
			return game.KeyBack, true
		case 'a', 'A':
			return game.KeyStrafeLeft, true
		case 'd', 'D':
			return game.KeyStrafeRight, true
		case 'q', 'Q':
			return game.KeyTurnLeft, true
		case 'e', 'E':
			return game.KeyTurnRight, true
		}
	}
	return 0, false
}

// HandleKey records a key event. Arrow keys and w/s double as menu
// navigation; space both fires and confirms.
func (k *Keys) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		k.quit = true
		return
	case tcell.KeyUp:
		k.edges.MenuUp = true
	case tcell.KeyDown:
		k.edges.MenuDown = true
	case tcell.KeyEnter:
		k.edges.Confirm = true
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			k.edges.Fire = true
			k.edges.Confirm = true
			return
		case 'w', 'W':
			k.edges.MenuUp = true
		case 's', 'S':
			k.edges.MenuDown = true
		}
	}
	if held, ok := heldFor(ev); ok {
		k.latch[held] = HoldTicks
	}
}

// HandleMouse turns a primary button press into a click. Motion events
// with the button still down are not new clicks.
func (k *Keys) HandleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	if down && !k.buttonDn {
		k.edges.Click = true
	}
	k.buttonDn = down
}

// QuitRequested reports whether ctrl-c was pressed.
func (k *Keys) QuitRequested() bool { return k.quit }

// Next returns the input for one tick, then ages the latches and clears the
// edges.
func (k *Keys) Next() game.Input {
	in := k.edges
	for i, n := range k.latch {
		if n > 0 {
			in.Held[i] = true
			k.latch[i]--
		}
	}
	k.edges = game.Input{}
	return in
}
