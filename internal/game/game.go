package game

import (
	"time"

	"raycaster/internal/assets"
	"raycaster/internal/config"
	"raycaster/internal/player"
	"raycaster/internal/render"
	"raycaster/internal/threading/monitoring"
	"raycaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/sirupsen/logrus"
)

// Game is the ebiten front end: it moves the player in Update and renders
// and presents one frame in Draw
type Game struct {
	config *config.Config
	m      *world.Map

	pose    player.Pose
	mover   *player.Mover
	builder *render.Builder
	monitor *monitoring.PerformanceMonitor

	presenter *Presenter
	face      *text.GoTextFace

	showFPS     bool
	showMinimap bool
	paused      bool
	lastDraw    time.Time
	perf        perfWatch
}

// NewGame wires a game over a validated map
func NewGame(cfg *config.Config, m *world.Map, tiles *world.TileSet, atlas *assets.Atlas, face *text.GoTextFace) *Game {
	monitor := monitoring.NewPerformanceMonitor(time.Duration(cfg.Display.FPSRefreshTime * float64(time.Second)))
	builder := render.NewBuilderFromConfig(cfg, m, tiles)
	builder.SetStats(monitor)

	g := &Game{
		config:      cfg,
		m:           m,
		pose:        player.StartPose(cfg),
		mover:       player.NewMover(m, cfg.Movement),
		builder:     builder,
		monitor:     monitor,
		presenter:   NewPresenter(ebiten.NewImageFromImage(atlas.Image)),
		face:        face,
		showFPS:     cfg.Display.ShowFPS,
		showMinimap: cfg.Minimap.Enabled,
	}

	if !g.mover.CanStand(g.pose.Position) {
		logrus.WithFields(logrus.Fields{
			"component": "game",
			"x":         g.pose.Position.X,
			"y":         g.pose.Position.Y,
		}).Warn("player box overlaps a wall at the start position")
	}
	return g
}

// Update handles input and movement for one tick
func (g *Game) Update() error {
	frameTimer := g.monitor.StartFrame()
	defer frameTimer.EndFrame()

	if quitRequested() {
		return ebiten.Termination
	}
	g.handleToggles()

	g.paused = g.config.Display.PauseOnBlur && !ebiten.IsFocused()
	if g.paused {
		return nil
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.mover.Apply(&g.pose, readIntent(), dt)
	return nil
}

// Draw renders the frame for the current pose and presents it
func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	if !g.lastDraw.IsZero() {
		g.monitor.Tick(now.Sub(g.lastDraw))
	}
	g.lastDraw = now
	g.maybeLogPerfDrop(now)

	frame := g.builder.Build(g.pose)
	g.presenter.DrawFrame(screen, frame, g.showMinimap)
	if g.showMinimap {
		g.presenter.DrawMinimapGrid(screen, g.m, g.config.Minimap)
		g.presenter.DrawPlayer(screen, g.pose, g.config.Minimap)
	}
	if g.showFPS && g.face != nil {
		g.presenter.DrawText(screen, g.face, g.monitor.FPSText(), float64(g.config.Display.ScreenWidth)-250, 10)
	}
	g.builder.Reset()
}

// Layout returns the fixed render resolution
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.config.GetScreenWidth(), g.config.GetScreenHeight()
}

// Close releases render workers
func (g *Game) Close() {
	g.builder.Close()
	logrus.WithFields(logrus.Fields(g.monitor.GetDetailedStats())).Debug("renderer stopped")
}
