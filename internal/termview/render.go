// Package termview renders game frames onto a tcell screen and maps terminal
// key events to game input.
package termview

import (
	"fmt"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved under the 3D view.
const hudRows = 2

// shadeRamp goes from far (index 0) to near.
var shadeRamp = []rune{'░', '▒', '▓', '█'}

var (
	styleBase   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)
	styleFloor  = styleBase.Foreground(tcell.ColorDarkSlateGray)
	styleBasic  = styleBase.Foreground(tcell.ColorRed)
	styleShoot  = styleBase.Foreground(tcell.ColorOrange)
	styleBullet = styleBase.Foreground(tcell.ColorYellow)
	styleTitle  = styleBase.Foreground(tcell.ColorRed).Bold(true)
	styleSel    = styleBase.Foreground(tcell.ColorRed).Bold(true)
	styleDim    = styleBase.Foreground(tcell.ColorGray)
	styleFlash  = tcell.StyleDefault.Background(tcell.ColorDarkRed).Foreground(tcell.ColorWhite)
	styleMapW   = styleBase.Foreground(tcell.ColorGray)
	styleMapP   = styleBase.Foreground(tcell.ColorBlue).Bold(true)
)

// Renderer draws frames at whatever size the screen currently is. Frame
// coordinates are in the session's pixel space and are scaled down to cells.
type Renderer struct {
	screen tcell.Screen
	pixW   int
	pixH   int
}

// NewRenderer creates a Renderer for frames produced with cfg.
func NewRenderer(screen tcell.Screen, cfg game.Config) *Renderer {
	return &Renderer{screen: screen, pixW: cfg.ScreenWidth, pixH: cfg.ScreenHeight}
}

// Draw renders f and shows the screen.
func (r *Renderer) Draw(f game.Frame) {
	r.screen.Clear()
	switch f.Phase {
	case game.PhaseTitle:
		r.drawTitle(f.Menu)
	default:
		r.drawView(f)
		r.drawMinimap(f.Minimap)
		r.drawHUD(f.HUD)
		if f.HUD.GameOver {
			r.drawGameOver()
		}
	}
	r.screen.Show()
}

// viewSize is the cell area available to the 3D view.
func (r *Renderer) viewSize() (int, int) {
	w, h := r.screen.Size()
	h -= hudRows
	if h < 1 {
		h = 1
	}
	return w, h
}

// toCell maps a pixel position into the view's cell grid.
func (r *Renderer) toCell(px, py float64) (int, int) {
	w, h := r.viewSize()
	return int(px * float64(w) / float64(r.pixW)), int(py * float64(h) / float64(r.pixH))
}

func shadeGlyph(shade uint8) rune {
	i := int(shade) * len(shadeRamp) / 256
	return shadeRamp[i]
}

func (r *Renderer) drawView(f game.Frame) {
	w, h := r.viewSize()
	if len(f.Columns) == 0 {
		return
	}
	for cx := 0; cx < w; cx++ {
		c := f.Columns[cx*len(f.Columns)/w]
		wallTop, wallBot := h/2, h/2
		if c.Hit {
			cells := int(c.WallHeight * float64(h) / float64(r.pixH))
			wallTop = (h - cells) / 2
			wallBot = wallTop + cells
		}
		for cy := 0; cy < h; cy++ {
			switch {
			case c.Hit && cy >= wallTop && cy < wallBot:
				r.screen.SetContent(cx, cy, shadeGlyph(c.Shade), nil, styleBase)
			case cy >= h/2:
				r.screen.SetContent(cx, cy, '.', nil, styleFloor)
			}
		}
	}

	for _, s := range f.Sprites {
		switch s.Kind {
		case game.SpriteEnemy:
			glyph, style := 'B', styleBasic
			if s.Enemy == game.EnemyShooter {
				glyph, style = 'S', styleShoot
			}
			x0, y0 := r.toCell(s.ScreenX-s.Width/2, s.ScreenY-s.Height/2)
			x1, y1 := r.toCell(s.ScreenX+s.Width/2, s.ScreenY+s.Height/2)
			for cy := max(0, y0); cy <= min(h-1, y1); cy++ {
				for cx := max(0, x0); cx <= min(w-1, x1); cx++ {
					r.screen.SetContent(cx, cy, glyph, nil, style)
				}
			}
		case game.SpriteBullet:
			cx, cy := r.toCell(s.ScreenX, s.ScreenY)
			if cx >= 0 && cx < w && cy >= 0 && cy < h {
				r.screen.SetContent(cx, cy, '*', nil, styleBullet)
			}
		}
	}
}

// drawMinimap draws one cell per tile in the top-right corner.
func (r *Renderer) drawMinimap(mm game.Minimap) {
	if mm.Grid == nil {
		return
	}
	w, _ := r.viewSize()
	ox := w - mm.Grid.Cols() - 1
	if ox < 0 {
		return
	}
	for ty := 0; ty < mm.Grid.Rows(); ty++ {
		for tx := 0; tx < mm.Grid.Cols(); tx++ {
			ch, st := ' ', styleBase
			if mm.Grid.CellKind(tx, ty) == game.CellWall {
				ch, st = '#', styleMapW
			}
			r.screen.SetContent(ox+tx, ty, ch, nil, st)
		}
	}
	for _, e := range mm.Enemies {
		if !e.Alive {
			continue
		}
		t := mm.Grid.WorldToTile(e.X, e.Y)
		r.screen.SetContent(ox+t.X, t.Y, 'e', nil, styleBasic)
	}
	p := mm.Grid.WorldToTile(mm.PlayerX, mm.PlayerY)
	r.screen.SetContent(ox+p.X, p.Y, '@', nil, styleMapP)
}

func (r *Renderer) drawHUD(hud game.HUD) {
	w, h := r.screen.Size()
	style := styleBase
	if hud.DamageFlash > 0 {
		style = styleFlash
	}
	y := h - hudRows
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, styleDim)
		r.screen.SetContent(x, y+1, ' ', nil, style)
	}

	const barCells = 20
	filled := 0
	if hud.MaxHealth > 0 {
		filled = max(0, hud.Health) * barCells / hud.MaxHealth
	}
	bar := make([]rune, barCells)
	for i := range bar {
		bar[i] = '·'
		if i < filled {
			bar[i] = '█'
		}
	}
	line := fmt.Sprintf("Kills: %d  Health: [%s] %d / %d", hud.Kills, string(bar), hud.Health, hud.MaxHealth)
	r.drawText(1, y+1, runewidth.Truncate(line, w-2, "…"), style)
}

func (r *Renderer) drawGameOver() {
	_, h := r.viewSize()
	r.drawCentered(h/2-1, "GAME OVER", styleTitle)
	r.drawCentered(h/2+1, "Enter or click to restart", styleBase)
}

func (r *Renderer) drawTitle(menu game.MenuView) {
	_, h := r.screen.Size()
	r.drawCentered(h/4, "R A Y C A S T E R", styleTitle)
	r.drawCentered(h/4+2, "KILL THE CODE", styleBase.Foreground(tcell.ColorYellow))

	y := h / 2
	if menu.ShowControls {
		for i, l := range ControlLines {
			r.drawCentered(y+i, l, styleDim)
		}
		r.drawCentered(y+len(ControlLines)+1, "Enter to close", styleSel)
		return
	}
	for i, item := range menu.Items {
		if item == menu.Selected {
			r.drawCentered(y+i*2, "> "+item.String()+" <", styleSel)
			continue
		}
		r.drawCentered(y+i*2, item.String(), styleDim)
	}
	r.drawCentered(h-2, "Up/Down or w/s to navigate, Enter or space to select", styleDim)
}

// ControlLines describes the terminal key bindings.
var ControlLines = []string{
	"w s / up dn   move forward / back",
	"a d           strafe",
	"q e / lt rt   turn",
	"space / click fire",
	"ctrl-c        quit",
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, s, style)
}

// drawText writes s starting at x, advancing by each rune's display width.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	col := x
	for _, ch := range s {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
}
