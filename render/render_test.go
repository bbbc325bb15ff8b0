package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/shooter-snake/engine"
	"github.com/lixenwraith/shooter-snake/event"
	"github.com/lixenwraith/shooter-snake/parameter"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func screenText(screen tcell.Screen) string {
	w, h := screen.Size()
	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, _, _, _ := screen.GetContent(x, y)
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func roundSnapshot(start bool) engine.Snapshot {
	r := engine.NewRound(parameter.DefaultRules(), 11, nil, nil)
	if start {
		r.Start()
	}
	return r.Snapshot()
}

func TestNewRenderContext_Centers(t *testing.T) {
	snap := roundSnapshot(false)
	w, h := BoardSize(snap.Cols, snap.Rows)

	ctx := NewRenderContext(snap, w+10, h+hudRows+4, time.Now())
	if ctx.TooSmall {
		t.Fatal("Expected board to fit")
	}
	if ctx.BoardX != 5 || ctx.BoardY != hudRows+2 {
		t.Errorf("Expected origin (5,%d), got (%d,%d)", hudRows+2, ctx.BoardX, ctx.BoardY)
	}

	x, y := ctx.CellOrigin(0, 0)
	if x != ctx.BoardX+1 || y != ctx.BoardY+1 {
		t.Errorf("Expected first cell inside border, got (%d,%d)", x, y)
	}

	small := NewRenderContext(snap, w-1, h, time.Now())
	if !small.TooSmall {
		t.Error("Expected too small terminal to be flagged")
	}
}

func TestRenderFrame_TooSmall(t *testing.T) {
	screen := newTestScreen(t, 30, 10)
	o := NewRenderOrchestrator(screen, ColorModeTrueColor)
	o.RegisterGameLayers(nil, nil)

	o.RenderFrame(NewRenderContext(roundSnapshot(false), 30, 10, time.Now()))

	if !strings.Contains(screenText(screen), "Terminal too small") {
		t.Error("Expected too small notice")
	}
}

func TestRenderFrame_ReadyOverlay(t *testing.T) {
	snap := roundSnapshot(false)
	w, h := BoardSize(snap.Cols, snap.Rows)
	screen := newTestScreen(t, w+4, h+4)
	o := NewRenderOrchestrator(screen, ColorModeTrueColor)
	o.RegisterGameLayers(nil, nil)

	o.RenderFrame(NewRenderContext(snap, w+4, h+4, time.Now()))

	text := screenText(screen)
	if !strings.Contains(text, "SHOOTER SNAKE") || !strings.Contains(text, "Press SPACE to start") {
		t.Error("Expected title overlay")
	}
}

func TestRenderFrame_PlayerAndHUD(t *testing.T) {
	snap := roundSnapshot(true)
	w, h := BoardSize(snap.Cols, snap.Rows)
	sw, sh := w+4, h+4
	screen := newTestScreen(t, sw, sh)
	o := NewRenderOrchestrator(screen, ColorModeTrueColor)
	o.RegisterGameLayers(nil, nil)

	ctx := NewRenderContext(snap, sw, sh, time.Now())
	o.RenderFrame(ctx)

	tail := snap.Player.Body[len(snap.Player.Body)-1]
	x, y := ctx.CellOrigin(tail.X, tail.Y)
	for dx := 0; dx < CellColumns; dx++ {
		r, _, style, _ := screen.GetContent(x+dx, y)
		if r != '█' {
			t.Errorf("Expected body block at (%d,%d), got %q", x+dx, y, r)
		}
		fg, _, _ := style.Decompose()
		want := tcell.NewRGBColor(int32(parameter.ColorPlayerBody.R), int32(parameter.ColorPlayerBody.G), int32(parameter.ColorPlayerBody.B))
		if fg != want {
			t.Errorf("Expected body color %v, got %v", want, fg)
		}
	}

	text := screenText(screen)
	if !strings.Contains(text, "LENGTH 3/50") {
		t.Error("Expected length in HUD")
	}
	if strings.Contains(text, "GAME OVER") {
		t.Error("Expected no overlay while running")
	}

	r, _, _, _ := screen.GetContent(ctx.BoardX, ctx.BoardY)
	if r != '┌' {
		t.Errorf("Expected border corner, got %q", r)
	}
}

func TestCanvas_ClipsOffscreen(t *testing.T) {
	screen := newTestScreen(t, 10, 5)
	c := NewCanvas(screen, ColorMode256, parameter.ColorBackground)

	c.Set(-1, 0, 'x', tcell.StyleDefault)
	c.Set(10, 0, 'x', tcell.StyleDefault)
	end := c.Text(8, 1, "abcd", tcell.StyleDefault)

	if end != 12 {
		t.Errorf("Expected column 12 after text, got %d", end)
	}
	if r, _, _, _ := screen.GetContent(9, 1); r != 'b' {
		t.Errorf("Expected clipped text to keep visible part, got %q", r)
	}
}

func TestParticleSystem_Lifecycle(t *testing.T) {
	ps := NewParticleSystem(1)
	ps.Burst(event.Burst{X: 100, Y: 100, Color: parameter.ColorResource, Count: parameter.ParticleCount})

	if ps.Len() != parameter.ParticleCount {
		t.Fatalf("Expected %d particles, got %d", parameter.ParticleCount, ps.Len())
	}

	// Slowest decay empties the pool within 1/MinDecay frames
	for i := 0; i <= int(1/parameter.ParticleMinDecay)+1; i++ {
		ps.Update()
	}
	if ps.Len() != 0 {
		t.Errorf("Expected all particles expired, got %d", ps.Len())
	}
	if ps.IsVisible() {
		t.Error("Expected empty particle layer to be hidden")
	}
}

func TestParticleSystem_Cap(t *testing.T) {
	ps := NewParticleSystem(1)
	ps.Burst(event.Burst{Count: parameter.MaxParticles + 100})
	if ps.Len() != parameter.MaxParticles {
		t.Errorf("Expected cap %d, got %d", parameter.MaxParticles, ps.Len())
	}
	ps.Reset()
	if ps.Len() != 0 {
		t.Error("Expected empty pool after reset")
	}
}

func TestShake_StartsOnDeath(t *testing.T) {
	r := event.NewRouter()
	s := NewShake(parameter.CellSize, 1)
	r.Register(s)
	now := time.Unix(100, 0)

	r.Emit(event.GameEvent{Type: event.EventEat})
	s.Update(now)
	if s.Active(now) {
		t.Fatal("Expected no shake on eat")
	}

	r.Emit(event.GameEvent{Type: event.EventOpponentDied})
	if s.Active(now) {
		t.Fatal("Expected shake to wait for the next update")
	}
	s.Update(now)
	if !s.Active(now) {
		t.Fatal("Expected shake after opponent death")
	}
	for i := 0; i < 50; i++ {
		dx, dy := s.Offset(now)
		if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
			t.Fatalf("Expected offset within one cell, got (%d,%d)", dx, dy)
		}
	}

	later := now.Add(parameter.ShakeDuration)
	if s.Active(later) {
		t.Error("Expected shake to end after its duration")
	}
	if dx, dy := s.Offset(later); dx != 0 || dy != 0 {
		t.Errorf("Expected zero offset, got (%d,%d)", dx, dy)
	}
}
