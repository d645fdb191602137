package view

import (
	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// heldBindings maps physical keys to logical held keys. Several physical keys
// may drive the same logical key.
var heldBindings = []struct {
	key  ebiten.Key
	held game.Key
}{
	{ebiten.KeyW, game.KeyForward},
	{ebiten.KeyArrowUp, game.KeyForward},
	{ebiten.KeyS, game.KeyBack},
	{ebiten.KeyArrowDown, game.KeyBack},
	{ebiten.KeyA, game.KeyStrafeLeft},
	{ebiten.KeyD, game.KeyStrafeRight},
	{ebiten.KeyArrowLeft, game.KeyTurnLeft},
	{ebiten.KeyQ, game.KeyTurnLeft},
	{ebiten.KeyArrowRight, game.KeyTurnRight},
	{ebiten.KeyE, game.KeyTurnRight},
}

// edgeKeys are tracked for press edges.
var edgeKeys = []ebiten.Key{
	ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyW, ebiten.KeyS,
	ebiten.KeyEnter, ebiten.KeySpace, ebiten.KeyEscape, ebiten.KeyC, ebiten.KeyTab,
}

// edgeInput maps key press edges to the discrete input fields. W and S
// double as menu keys and Space both fires and confirms. The session reads
// menu and confirm edges only outside PLAYING, and fire only inside it.
func edgeInput(pressed func(ebiten.Key) bool) game.Input {
	var in game.Input
	in.Fire = pressed(ebiten.KeySpace)
	in.MenuUp = pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW)
	in.MenuDown = pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS)
	in.Confirm = pressed(ebiten.KeyEnter) || pressed(ebiten.KeySpace)
	return in
}

// pressed reports a press edge on k this frame.
func (g *Game) pressed(k ebiten.Key) bool {
	return g.curKeys[k] && !g.prevKeys[k]
}

// readInput samples the keyboard and mouse into a game.Input. Menu edges use
// the arrow and W/S keys, movement uses their held level.
func (g *Game) readInput() game.Input {
	cur := make(map[ebiten.Key]bool, len(edgeKeys))
	for _, k := range edgeKeys {
		cur[k] = ebiten.IsKeyPressed(k)
	}
	g.curKeys = cur

	in := edgeInput(g.pressed)
	for _, b := range heldBindings {
		if ebiten.IsKeyPressed(b.key) {
			in.Held[b.held] = true
		}
	}

	mouse := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	in.Click = mouse && !g.prevMouseLeft
	g.prevMouseLeft = mouse

	cx, _ := ebiten.CursorPosition()
	if ebiten.CursorMode() == ebiten.CursorModeCaptured && g.haveCursor {
		in.PointerDX = float64(cx - g.lastCursorX)
	}
	g.lastCursorX = cx
	g.haveCursor = true
	return in
}

// endInput commits this frame's key state for edge detection.
func (g *Game) endInput() {
	g.prevKeys = g.curKeys
}
