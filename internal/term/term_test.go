package term

import (
	"context"
	"image/color"
	"strings"
	"testing"
	"time"

	"raycaster/internal/assets"
	"raycaster/internal/config"
	"raycaster/internal/mathutil"
	"raycaster/internal/player"
	"raycaster/internal/render"
	"raycaster/internal/world"

	"github.com/gdamore/tcell/v2"
)

func TestCanvasRows(t *testing.T) {
	c := NewCanvas(4, 10, 2)

	tests := []struct {
		lo, hi      float32
		first, last int
	}{
		{0, 20, 0, 10},
		{20, 0, 0, 10},
		{1, 3, 0, 1},
		{1.5, 2.5, 1, 1},
		{-100, 5, 0, 2},
		{15, 400, 7, 10},
	}

	for _, tt := range tests {
		first, last := c.rows(tt.lo, tt.hi)
		if first != tt.first || last != tt.last {
			t.Errorf("rows(%v, %v): expected [%d,%d), got [%d,%d)", tt.lo, tt.hi, tt.first, tt.last, first, last)
		}
	}
}

func TestCanvasPaintFloorsAndWalls(t *testing.T) {
	c := NewCanvas(2, 4, 1)
	img := assets.GenerateAtlas(4, 2)
	atlas := &assets.Atlas{Image: img, Size: 4, TileSize: 2}

	floor := color.RGBA{85, 55, 50, 255}
	frame := &render.Frame{
		Floors: []render.Vertex{
			{X: 0, Y: 4, Color: floor},
			{X: 0, Y: 2, Color: floor},
		},
		Walls: []render.Vertex{
			{X: 1, Y: 0, U: 0, V: 0, Color: color.RGBA{255, 255, 255, 255}},
			{X: 1, Y: 4, U: 0, V: 2, Color: color.RGBA{255, 255, 255, 255}},
		},
	}
	c.Paint(frame, atlas)

	if got := c.At(0, 3); got != floor {
		t.Errorf("Expected floor color at (0,3), got %v", got)
	}
	if got := c.At(0, 1); got != (color.RGBA{}) {
		t.Errorf("Cells above the floor band should be untouched, got %v", got)
	}
	for y := 0; y < 4; y++ {
		want := atlas.At(0, y/2)
		want.A = 255
		if got := c.At(1, y); got != want {
			t.Errorf("Wall row %d: expected texel %v, got %v", y, want, got)
		}
	}
}

func TestTint(t *testing.T) {
	got := tint(color.RGBA{200, 100, 50, 255}, color.RGBA{255, 128, 0, 255})
	want := color.RGBA{200, 50, 0, 255}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestActionFor(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want action
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), actionQuit},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), actionForward},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), actionTurnLeft},
		{"shift right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift), actionStrafeRight},
		{"rune s", tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModNone), actionBack},
		{"rune q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), actionStrafeLeft},
		{"rune m", tcell.NewEventKey(tcell.KeyRune, 'M', tcell.ModNone), actionToggleMinimap},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), actionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := actionFor(tt.ev); got != tt.want {
				t.Errorf("Expected action %d, got %d", tt.want, got)
			}
		})
	}
}

func TestKeyTrackerHoldsAndExpires(t *testing.T) {
	k := newKeyTracker()
	now := time.Unix(50, 0)

	k.press(actionForward, now)
	k.press(actionTurnRight, now)
	if got := k.intent(now.Add(keyHold / 2)); got != (player.Intent{Forward: 1, Turn: 1}) {
		t.Errorf("Expected forward and turn while held, got %+v", got)
	}

	k.press(actionBack, now.Add(keyHold/2))
	if got := k.intent(now.Add(keyHold / 2)); got.Forward != 0 {
		t.Errorf("Opposing keys should cancel, got %+v", got)
	}

	if got := k.intent(now.Add(2 * keyHold)); !got.IsZero() {
		t.Errorf("Expected every key released after the hold, got %+v", got)
	}
}

func newTestApp(t *testing.T, cfg *config.Config) (*App, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)

	m := world.DefaultMap()
	tiles := world.DefaultTileSet()
	atlas, err := assets.LoadAtlas("", cfg.Textures.AtlasSize, cfg.Textures.TileSize, tiles.MaxAtlasIndex()+1)
	if err != nil {
		t.Fatalf("Failed to generate atlas: %v", err)
	}

	app := NewApp(screen, cfg, m, tiles, atlas)
	t.Cleanup(app.Close)
	return app, screen
}

func TestAppDrawFillsScreen(t *testing.T) {
	cfg := config.Default()
	cfg.Display.ShowFPS = false
	app, screen := newTestApp(t, cfg)

	if app.canvas.Width != 40 || app.canvas.Height != 12 {
		t.Fatalf("Expected a 40x12 canvas, got %dx%d", app.canvas.Width, app.canvas.Height)
	}

	app.Draw()

	ceiling := 0
	for x := 0; x < 40; x++ {
		_, _, style, _ := screen.GetContent(x, 0)
		_, bg, _ := style.Decompose()
		if bg != tcell.ColorBlack && bg != tcell.ColorDefault {
			ceiling++
		}
	}
	if ceiling == 0 {
		t.Error("Expected the top row to be painted")
	}
}

func TestAppStepMovesWithHeldKeys(t *testing.T) {
	cfg := config.Default()
	app, _ := newTestApp(t, cfg)

	start := app.Pose().Position
	now := time.Now()
	quit := app.handleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), now)
	if quit {
		t.Fatal("Up should not quit")
	}
	app.Step(100*time.Millisecond, now.Add(10*time.Millisecond))

	moved := app.Pose().Position.Sub(start).Len()
	if want := cfg.Movement.MoveSpeed * 0.1; moved < want*0.99 || moved > want*1.01 {
		t.Errorf("Expected to move %v, moved %v", want, moved)
	}
	if dir := app.Pose().Direction; dir != (mathutil.Vec2{X: 1}) {
		t.Errorf("Direction should not change without turning, got %v", dir)
	}

	app.Step(100*time.Millisecond, now.Add(time.Second))
	if got := app.Pose().Position.Sub(start).Len(); got != moved {
		t.Errorf("Released keys should not move the player, moved %v more", got-moved)
	}
}

func TestAppHandlesResizeAndToggles(t *testing.T) {
	cfg := config.Default()
	app, screen := newTestApp(t, cfg)

	screen.SetSize(20, 6)
	app.handleEvent(tcell.NewEventResize(20, 6), time.Now())
	if app.canvas.Width != 20 || app.canvas.Height != 6 {
		t.Errorf("Expected a 20x6 canvas after resize, got %dx%d", app.canvas.Width, app.canvas.Height)
	}

	before := app.showMinimap
	app.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'm', tcell.ModNone), time.Now())
	if app.showMinimap == before {
		t.Error("Expected m to toggle the minimap")
	}
	app.Draw()
}

func TestAppRunQuitsOnEscape(t *testing.T) {
	cfg := config.Default()
	app, screen := newTestApp(t, cfg)

	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Run(ctx); err != nil {
		t.Fatalf("Run returned %v", err)
	}
	if ctx.Err() != nil {
		t.Error("Expected Run to stop on escape before the deadline")
	}
}

func TestResizeResetsTimings(t *testing.T) {
	cfg := config.Default()
	app, screen := newTestApp(t, cfg)

	app.Draw()
	for i := 0; i < 5; i++ {
		app.Step(20*time.Millisecond, time.Now())
	}
	if app.monitor.RaycastTime() == 0 && app.monitor.FPS() == 0 {
		t.Fatal("Expected timings after drawing and stepping")
	}
	if !strings.Contains(app.statusLine(), "cast ") {
		t.Errorf("Status line should report the render pass, got %q", app.statusLine())
	}

	screen.SetSize(30, 8)
	app.handleEvent(tcell.NewEventResize(30, 8), time.Now())
	if app.monitor.RaycastTime() != 0 || app.monitor.FPS() != 0 {
		t.Error("Expected resize to clear timings from the old size")
	}
}
