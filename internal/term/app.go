package term

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"raycaster/internal/assets"
	"raycaster/internal/config"
	"raycaster/internal/player"
	"raycaster/internal/render"
	"raycaster/internal/threading/monitoring"
	"raycaster/internal/world"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

var (
	minimapWall   = color.RGBA{0, 0, 0, 255}
	minimapFloor  = color.RGBA{200, 200, 200, 255}
	minimapPlayer = color.RGBA{255, 0, 255, 255}
)

// App runs the renderer on a tcell screen
type App struct {
	screen tcell.Screen
	config *config.Config
	m      *world.Map
	tiles  *world.TileSet
	atlas  *assets.Atlas

	pose    player.Pose
	mover   *player.Mover
	builder *render.Builder
	canvas  *Canvas
	monitor *monitoring.PerformanceMonitor
	keys    *keyTracker

	showMinimap bool
	showFPS     bool
}

// NewApp prepares an app for an initialized screen
func NewApp(screen tcell.Screen, cfg *config.Config, m *world.Map, tiles *world.TileSet, atlas *assets.Atlas) *App {
	a := &App{
		screen:      screen,
		config:      cfg,
		m:           m,
		tiles:       tiles,
		atlas:       atlas,
		pose:        player.StartPose(cfg),
		mover:       player.NewMover(m, cfg.Movement),
		monitor:     monitoring.NewPerformanceMonitor(time.Duration(cfg.Display.FPSRefreshTime * float64(time.Second))),
		keys:        newKeyTracker(),
		showMinimap: cfg.Display.TerminalMinimap,
		showFPS:     cfg.Display.ShowFPS,
	}
	a.resize(screen.Size())
	return a
}

// resize rebuilds the canvas and frame builder for a new terminal size
func (a *App) resize(width, height int) {
	if a.builder != nil {
		a.builder.Close()
	}
	a.canvas = NewCanvas(width, height, a.config.Display.TerminalAspect)

	sized := *a.config
	sized.Display.ScreenWidth = max(width, 1)
	sized.Display.ScreenHeight = a.canvas.VirtualHeight()
	sized.Minimap.Enabled = false
	a.builder = render.NewBuilderFromConfig(&sized, a.m, a.tiles)
	a.builder.SetStats(a.monitor)
	// Timings from the old size say nothing about the new one
	a.monitor.Reset()

	logrus.WithFields(logrus.Fields{
		"component": "term",
		"columns":   width,
		"rows":      height,
	}).Debug("terminal resized")
}

// Run draws a frame every tick until ctx is done or the user quits
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	tick := time.Duration(a.config.Display.TerminalTickMs) * time.Millisecond
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if a.handleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			a.Step(dt, now)
			a.Draw()
		}
	}
}

// handleEvent applies one event and reports whether the app should quit
func (a *App) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.resize(ev.Size())
		a.screen.Sync()
	case *tcell.EventKey:
		switch act := actionFor(ev); act {
		case actionQuit:
			return true
		case actionToggleMinimap:
			a.showMinimap = !a.showMinimap
		case actionToggleFPS:
			a.showFPS = !a.showFPS
		case actionNone:
		default:
			a.keys.press(act, now)
		}
	}
	return false
}

// Step advances movement by dt using the keys held at now
func (a *App) Step(dt time.Duration, now time.Time) {
	frameTimer := a.monitor.StartFrame()
	defer frameTimer.EndFrame()

	a.mover.Apply(&a.pose, a.keys.intent(now), dt.Seconds())
	a.monitor.Tick(dt)
}

// Draw renders the current pose to the screen
func (a *App) Draw() {
	a.canvas.Clear(color.RGBA{A: 255})
	a.canvas.Paint(a.builder.Build(a.pose), a.atlas)
	a.builder.Reset()
	if a.showMinimap {
		a.paintMinimap()
	}

	for y := 0; y < a.canvas.Height; y++ {
		for x := 0; x < a.canvas.Width; x++ {
			c := a.canvas.At(x, y)
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	if a.showFPS {
		a.drawText(0, 0, a.statusLine())
	}
	a.screen.Show()
}

// paintMinimap draws the map one cell per tile in the top-left corner
func (a *App) paintMinimap() {
	px, py := a.pose.Cell()
	for y := 0; y < a.m.Height(); y++ {
		for x := 0; x < a.m.Width(); x++ {
			c := minimapWall
			if a.m.Tile(x, y).IsFloor() {
				c = minimapFloor
			}
			if x == px && y == py {
				c = minimapPlayer
			}
			// Offset by one row so the FPS line stays readable
			a.canvas.Set(x, y+1, c)
		}
	}
}

// statusLine shows the smoothed FPS and the last render pass time
func (a *App) statusLine() string {
	cast := float64(a.monitor.RaycastTime().Microseconds()) / 1000
	return fmt.Sprintf("%s  cast %.1fms", a.monitor.FPSText(), cast)
}

func (a *App) drawText(x, y int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range s {
		a.screen.SetContent(x+i, y, r, nil, style)
	}
}

// Pose returns the current player pose
func (a *App) Pose() player.Pose {
	return a.pose
}

// Close releases render workers
func (a *App) Close() {
	a.builder.Close()
}
