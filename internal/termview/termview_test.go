package termview

import (
	"strings"
	"testing"

	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	ss.SetSize(80, 24)
	if err := ss.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(ss.Fini)
	return ss
}

// row reads one screen row back as a string.
func row(s tcell.Screen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := s.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		b.WriteRune(mainc)
	}
	return b.String()
}

func screenContains(s tcell.Screen, want string) bool {
	_, h := s.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(row(s, y), want) {
			return true
		}
	}
	return false
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestKeys_LatchHoldsThenReleases(t *testing.T) {
	k := NewKeys()
	k.HandleKey(key('w'))

	for i := 0; i < HoldTicks; i++ {
		in := k.Next()
		if !in.Held[game.KeyForward] {
			t.Fatalf("tick %d: forward should still be held", i)
		}
	}
	if k.Next().Held[game.KeyForward] {
		t.Fatalf("forward should release after %d ticks without a repeat", HoldTicks)
	}
}

func TestKeys_RepeatRefreshesLatch(t *testing.T) {
	k := NewKeys()
	k.HandleKey(key('d'))
	for i := 0; i < HoldTicks-1; i++ {
		k.Next()
	}
	k.HandleKey(key('d'))
	for i := 0; i < HoldTicks; i++ {
		if !k.Next().Held[game.KeyStrafeRight] {
			t.Fatalf("tick %d after repeat: strafe should be held", i)
		}
	}
}

func TestKeys_EdgesLastOneTick(t *testing.T) {
	k := NewKeys()
	k.HandleKey(key(' '))
	k.HandleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	k.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))

	in := k.Next()
	if !in.Fire || !in.Confirm || !in.MenuUp {
		t.Fatalf("expected fire, confirm and menu-up edges, got %+v", in)
	}
	if !in.Held[game.KeyForward] {
		t.Fatalf("up arrow should also hold forward")
	}
	in = k.Next()
	if in.Fire || in.Confirm || in.MenuUp {
		t.Fatalf("edges should clear after one tick, got %+v", in)
	}
}

func TestKeys_SpaceConfirmsAndWSNavigate(t *testing.T) {
	k := NewKeys()
	k.HandleKey(key(' '))
	if in := k.Next(); !in.Fire || !in.Confirm {
		t.Fatalf("space should fire and confirm, got %+v", in)
	}
	k.HandleKey(key('s'))
	in := k.Next()
	if !in.MenuDown || !in.Held[game.KeyBack] {
		t.Fatalf("s should move the menu down and hold back, got %+v", in)
	}
	k.HandleKey(key('w'))
	if in := k.Next(); !in.MenuUp {
		t.Fatalf("w should move the menu up, got %+v", in)
	}
}

func TestKeys_MouseClickIsAnEdge(t *testing.T) {
	k := NewKeys()
	k.HandleMouse(tcell.NewEventMouse(5, 5, tcell.Button1, tcell.ModNone))
	k.HandleMouse(tcell.NewEventMouse(6, 5, tcell.Button1, tcell.ModNone)) // drag
	if !k.Next().Click {
		t.Fatalf("press should produce a click")
	}
	k.HandleMouse(tcell.NewEventMouse(7, 5, tcell.Button1, tcell.ModNone))
	if k.Next().Click {
		t.Fatalf("held button should not click again")
	}
	k.HandleMouse(tcell.NewEventMouse(7, 5, tcell.ButtonNone, tcell.ModNone))
	k.HandleMouse(tcell.NewEventMouse(7, 5, tcell.Button1, tcell.ModNone))
	if !k.Next().Click {
		t.Fatalf("release then press should click again")
	}
}

func TestKeys_CtrlCQuits(t *testing.T) {
	k := NewKeys()
	if k.QuitRequested() {
		t.Fatalf("fresh keys should not request quit")
	}
	k.HandleKey(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if !k.QuitRequested() {
		t.Fatalf("ctrl-c should request quit")
	}
}

func TestShadeGlyph_Ramp(t *testing.T) {
	if shadeGlyph(0) != '░' || shadeGlyph(255) != '█' {
		t.Fatalf("ramp ends wrong: %q %q", shadeGlyph(0), shadeGlyph(255))
	}
	if shadeGlyph(100) == shadeGlyph(200) {
		t.Fatalf("mid shades should differ")
	}
}

func TestRenderer_TitleShowsMenu(t *testing.T) {
	screen := newSimScreen(t)
	cfg := game.DefaultConfig()
	s, err := game.NewSession(cfg, game.DefaultLayout)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	r := NewRenderer(screen, cfg)
	r.Draw(s.Tick(game.Input{}, 0))

	for _, want := range []string{"R A Y C A S T E R", "> START GAME <", "CONTROLS", "QUIT"} {
		if !screenContains(screen, want) {
			t.Fatalf("title screen missing %q", want)
		}
	}
}

func TestRenderer_ControlsPanel(t *testing.T) {
	screen := newSimScreen(t)
	cfg := game.DefaultConfig()
	s, _ := game.NewSession(cfg, game.DefaultLayout)
	r := NewRenderer(screen, cfg)
	s.Tick(game.Input{MenuDown: true}, 0)
	r.Draw(s.Tick(game.Input{Confirm: true}, 0))

	if !screenContains(screen, ControlLines[0]) {
		t.Fatalf("controls panel should list bindings")
	}
}

func TestRenderer_PlayingDrawsWallsHUDAndMinimap(t *testing.T) {
	screen := newSimScreen(t)
	cfg := game.DefaultConfig()
	cfg.Seed = 3
	s, err := game.NewSession(cfg, game.DefaultLayout, game.StartPlaying())
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	r := NewRenderer(screen, cfg)
	r.Draw(s.Tick(game.Input{}, game.TickDelta))

	_, h := screen.Size()
	if !strings.Contains(row(screen, h-1), "Kills: 0") || !strings.Contains(row(screen, h-1), "100 / 100") {
		t.Fatalf("hud row wrong: %q", row(screen, h-1))
	}
	if !strings.Contains(row(screen, h-2), "─") {
		t.Fatalf("expected separator above hud, got %q", row(screen, h-2))
	}

	// The player faces east from (100,100). The enemy ahead covers the middle
	// of the centre row; the edge columns still hit walls.
	mid := row(screen, (h-hudRows)/2)
	if !strings.ContainsAny(mid, string(shadeRamp)) {
		t.Fatalf("centre row has no wall glyphs: %q", mid)
	}

	// Minimap: 8 wide, top-right, border of walls with the player at (1,1).
	w, _ := screen.Size()
	ox := w - 8 - 1
	if got := strings.TrimRight(row(screen, 0), " "); !strings.HasSuffix(got, "########") {
		t.Fatalf("minimap top border missing: %q", got)
	}
	mainc, _, _, _ := screen.GetContent(ox+1, 1)
	if mainc != '@' {
		t.Fatalf("expected player marker at minimap (1,1), got %q", mainc)
	}
}

func TestRenderer_GameOverBanner(t *testing.T) {
	screen := newSimScreen(t)
	cfg := game.DefaultConfig()
	cfg.PlayerHealth = 1
	s, _ := game.NewSession(cfg, game.DefaultLayout, game.StartPlaying())
	s.World().Player.Health = 0
	r := NewRenderer(screen, cfg)
	f := s.Tick(game.Input{}, game.TickDelta)
	if !f.HUD.GameOver {
		t.Fatalf("expected game over frame")
	}
	r.Draw(f)
	if !screenContains(screen, "GAME OVER") {
		t.Fatalf("game over banner missing")
	}
}
