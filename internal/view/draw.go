package view

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	minimapScale  = 0.25
	minimapMargin = 10
	healthBarW    = 300
	healthBarH    = 30
)

var (
	colSky      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colBullet   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colMapWall  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colMapBG    = color.RGBA{R: 0, G: 0, B: 0, A: 128}
	colPlayer   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	colEnemy    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colDeadFoe  = color.RGBA{R: 139, G: 0, B: 0, A: 255}
	colBarEmpty = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colBarFull  = color.RGBA{R: 0, G: 160, B: 0, A: 255}
	colMenuSel  = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colMenu     = color.RGBA{R: 170, G: 170, B: 170, A: 255}
	colFooter   = color.RGBA{R: 136, G: 136, B: 136, A: 255}
)

// drawCentered draws s horizontally centred on cx with its baseline at y.
func drawCentered(dst *ebiten.Image, s string, face font.Face, cx, y int, clr color.Color) {
	b := text.BoundString(face, s)
	text.Draw(dst, s, face, cx-(b.Max.X-b.Min.X)/2-b.Min.X, y, clr)
}

// drawView paints wall columns then sprites far to near.
func (g *Game) drawView(screen *ebiten.Image) {
	w := float32(g.cfg.ScreenWidth)
	h := float32(g.cfg.ScreenHeight)
	vector.FillRect(screen, 0, 0, w, h, colSky, false)

	for i, c := range g.frame.Columns {
		if !c.Hit {
			continue
		}
		top := (h - float32(c.WallHeight)) / 2
		clr := color.RGBA{R: c.Shade, G: c.Shade, B: c.Shade, A: 255}
		vector.FillRect(screen, float32(i), top, 1, float32(c.WallHeight), clr, false)
	}

	for _, s := range g.frame.Sprites {
		switch s.Kind {
		case game.SpriteEnemy:
			img := g.sprites.Image(s.Enemy)
			b := img.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(s.Width/float64(b.Dx()), s.Height/float64(b.Dy()))
			op.GeoM.Translate(s.ScreenX-s.Width/2, s.ScreenY-s.Height/2)
			screen.DrawImage(img, op)
		case game.SpriteBullet:
			vector.FillCircle(screen, float32(s.ScreenX), float32(s.ScreenY), float32(s.Height), colBullet, true)
		}
	}
}

// drawMinimap draws the top-down map in the top-right corner.
func (g *Game) drawMinimap(screen *ebiten.Image) {
	mm := g.frame.Minimap
	if mm.Grid == nil {
		return
	}
	ts := mm.Grid.TileSize()
	scale := float32(minimapScale)
	mapW := float32(float64(mm.Grid.Cols())*ts) * scale
	mapH := float32(float64(mm.Grid.Rows())*ts) * scale
	ox := float32(g.cfg.ScreenWidth) - mapW - minimapMargin
	oy := float32(minimapMargin)

	vector.FillRect(screen, ox-5, oy-5, mapW+10, mapH+10, colMapBG, false)
	cell := float32(ts) * scale
	for ty := 0; ty < mm.Grid.Rows(); ty++ {
		for tx := 0; tx < mm.Grid.Cols(); tx++ {
			if mm.Grid.CellKind(tx, ty) == game.CellWall {
				vector.FillRect(screen, ox+float32(tx)*cell, oy+float32(ty)*cell, cell, cell, colMapWall, false)
			}
		}
	}

	at := func(x, y float64) (float32, float32) {
		return ox + float32(x)*scale, oy + float32(y)*scale
	}
	px, py := at(mm.PlayerX, mm.PlayerY)
	vector.FillCircle(screen, px, py, 10*scale, colPlayer, true)
	hx, hy := at(mm.PlayerX+math.Cos(mm.PlayerAngle)*40, mm.PlayerY+math.Sin(mm.PlayerAngle)*40)
	vector.StrokeLine(screen, px, py, hx, hy, 1, colPlayer, true)

	for _, b := range mm.Bullets {
		bx, by := at(b.X, b.Y)
		vector.FillCircle(screen, bx, by, 3*scale, colBullet, true)
	}
	for _, e := range mm.Enemies {
		ex, ey := at(e.X, e.Y)
		clr := colEnemy
		if !e.Alive {
			clr = colDeadFoe
		}
		vector.FillCircle(screen, ex, ey, 10*scale, clr, true)
	}
}

// drawHUD draws kills, the damage flash and the health bar.
func (g *Game) drawHUD(screen *ebiten.Image) {
	hud := g.frame.HUD
	w := g.cfg.ScreenWidth
	h := g.cfg.ScreenHeight

	text.Draw(screen, fmt.Sprintf("Kills: %d", hud.Kills), g.fonts.Body, 30, 26, color.White)

	if hud.DamageFlash > 0 {
		a := uint8(math.Round(255 * math.Min(1, hud.DamageFlash)))
		vector.FillRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{R: 255, A: a}, false)
	}

	bx := float32(w-healthBarW) / 2
	by := float32(h - healthBarH - 10)
	vector.FillRect(screen, bx, by, healthBarW, healthBarH, colBarEmpty, false)
	frac := 0.0
	if hud.MaxHealth > 0 {
		frac = math.Max(0, float64(hud.Health)/float64(hud.MaxHealth))
	}
	vector.FillRect(screen, bx, by, float32(healthBarW*frac), healthBarH, colBarFull, false)
	drawCentered(screen, fmt.Sprintf("Health: %d / %d", hud.Health, hud.MaxHealth), g.fonts.Body,
		w/2, int(by)+healthBarH/2+6, color.White)
}

// drawGameOver dims the view and shows the restart prompt.
func (g *Game) drawGameOver(screen *ebiten.Image) {
	w := g.cfg.ScreenWidth
	h := g.cfg.ScreenHeight
	vector.FillRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: 178}, false)
	drawCentered(screen, "GAME OVER", g.fonts.Banner, w/2, h/2-20, colEnemy)
	drawCentered(screen, "Click to restart", g.fonts.Body, w/2, h/2+30, color.White)
	drawCentered(screen, "C copies the run report", g.fonts.Small, w/2, h/2+60, colFooter)
	if g.status != "" && time.Now().Before(g.statusTill) {
		drawCentered(screen, g.status, g.fonts.Small, w/2, h/2+84, colMenu)
	}
}

// drawTitle draws the gradient backdrop, logo and menu.
func (g *Game) drawTitle(screen *ebiten.Image) {
	w := g.cfg.ScreenWidth
	h := g.cfg.ScreenHeight
	menu := g.frame.Menu

	// Vertical dark-red gradient peaking at 60% height.
	const bands = 60
	bandH := float32(h) / bands
	for i := 0; i < bands; i++ {
		t := float64(i) / (bands - 1)
		var k float64
		if t < 0.6 {
			k = t / 0.6
		} else {
			k = (1 - t) / 0.4
		}
		r := uint8(0x33 + (0x88-0x33)*k)
		vector.FillRect(screen, 0, float32(i)*bandH, float32(w), bandH+1, color.RGBA{R: r, A: 255}, false)
	}
	drawPentagram(screen, float32(w)/2, float32(h)/3, float32(h)/6)

	glow := uint8(180 + 75*math.Abs(math.Sin(menu.Pulse)))
	drawCentered(screen, "RAYCASTER", g.fonts.Title, w/2, int(float64(h)*0.3), color.RGBA{R: glow, A: 255})
	drawCentered(screen, "KILL THE CODE", g.fonts.Subtitle, w/2, int(float64(h)*0.4), color.RGBA{R: 255, G: 255, A: 255})

	if menu.ShowControls {
		g.drawControls(screen)
	} else {
		menuY := int(float64(h) * 0.6)
		for i, item := range menu.Items {
			y := menuY + i*60
			if item == menu.Selected {
				arrow := int(math.Sin(menu.Pulse*3) * 10)
				drawCentered(screen, ">", g.fonts.MenuSel, w/2-150-arrow, y, colMenuSel)
				drawCentered(screen, "<", g.fonts.MenuSel, w/2+150+arrow, y, colMenuSel)
				drawCentered(screen, item.String(), g.fonts.MenuSel, w/2, y, colMenuSel)
				continue
			}
			drawCentered(screen, item.String(), g.fonts.Menu, w/2, y, colMenu)
		}
	}
	drawCentered(screen, "Arrows or W/S to navigate, Enter or Space to select", g.fonts.Small, w/2, h-30, colFooter)
}

var controlLines = []string{
	"W S / up dn  move forward / back",
	"A / D        strafe",
	"Q E / lt rt  turn",
	"mouse        look (click to capture)",
	"click/space  fire",
	"esc          release mouse",
	"tab          event feed",
}

func (g *Game) drawControls(screen *ebiten.Image) {
	w := g.cfg.ScreenWidth
	y := int(float64(g.cfg.ScreenHeight) * 0.52)
	for i, l := range controlLines {
		drawCentered(screen, l, g.fonts.Small, w/2, y+i*22, colMenu)
	}
	drawCentered(screen, "Enter to close", g.fonts.Small, w/2, y+len(controlLines)*22+12, colMenuSel)
}

// drawPentagram strokes a faint circle with a five-pointed star inside.
func drawPentagram(dst *ebiten.Image, cx, cy, r float32) {
	clr := color.NRGBA{R: 100, A: 77}
	vector.StrokeCircle(dst, cx, cy, r, 3, clr, true)
	pt := func(i int) (float32, float32) {
		a := float64(i)*2*math.Pi/5 - math.Pi/2
		return cx + r*float32(math.Cos(a)), cy + r*float32(math.Sin(a))
	}
	for i := 0; i < 5; i++ {
		x0, y0 := pt(i)
		x1, y1 := pt((i + 2) % 5)
		vector.StrokeLine(dst, x0, y0, x1, y1, 3, clr, true)
	}
}
