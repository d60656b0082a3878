// Command mapview browses the text maps in a directory, drawing each grid
// and highlighting the first cell that fails validation.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"raycaster/internal/config"
	"raycaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
)

const (
	windowWidth  = 1200
	windowHeight = 800
	sidebarWidth = 300
)

type viewer struct {
	maps        []mapInfo
	mapIndex    int
	tiles       *world.TileSet
	legendLines []string
	start       [2]float64
}

func main() {
	configPath := flag.String("config", "config.yaml", "renderer configuration")
	dir := flag.String("maps", "assets/maps", "directory of *.map files")
	flag.Parse()

	ensureRuntimeCWD(*configPath)

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logrus.WithError(err).Warn("using default configuration")
		cfg = config.Default()
	}
	if err := config.ConfigureLogging(cfg.Logging); err != nil {
		logrus.WithError(err).Warn("keeping default log level")
	}

	tiles := world.DefaultTileSet()
	if cfg.Map.Tiles != "" {
		if tiles, err = world.LoadTileSet(cfg.Map.Tiles); err != nil {
			logrus.WithError(err).Fatal("failed to load tiles")
		}
	}

	maps, err := loadMaps(*dir, tiles)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load maps")
	}
	for _, m := range maps {
		if m.Err != nil {
			logrus.WithFields(logrus.Fields{"map": m.Key}).WithError(m.Err).Warn("map is invalid")
		}
	}

	v := &viewer{
		maps:        maps,
		tiles:       tiles,
		legendLines: buildLegendLines(tiles),
		start:       cfg.Movement.StartPosition,
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Raycaster Map Viewer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(v); err != nil {
		logrus.WithError(err).Fatal("viewer stopped")
	}
}

func (v *viewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		v.mapIndex = (v.mapIndex + 1) % len(v.maps)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.mapIndex = (v.mapIndex + len(v.maps) - 1) % len(v.maps)
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{15, 15, 22, 255})

	m := v.maps[v.mapIndex]
	screenW, screenH := screen.Bounds().Dx(), screen.Bounds().Dy()

	padding := 16
	mapAreaW := screenW - sidebarWidth - padding*3
	mapAreaH := screenH - padding*2
	sidebarX := padding + mapAreaW + padding

	v.drawMapPanel(screen, m, padding, padding, mapAreaW, mapAreaH)
	v.drawSidebar(screen, m, sidebarX, padding, sidebarWidth, mapAreaH)
}

func (v *viewer) Layout(_, _ int) (int, int) {
	return windowWidth, windowHeight
}

func (v *viewer) drawMapPanel(screen *ebiten.Image, m mapInfo, x, y, w, h int) {
	drawPanel(screen, x, y, w, h, color.RGBA{20, 20, 35, 255})

	if m.Map == nil {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s failed to load: %v", m.Key, m.Err), x+12, y+12)
		return
	}

	worldW, worldH := m.Map.GetWorldBounds()
	tileSize := max(2, min(w/max(worldW, 1), h/max(worldH, 1)))
	originX := x + (w-worldW*tileSize)/2
	originY := y + (h-worldH*tileSize)/2

	for ty := 0; ty < worldH; ty++ {
		for tx := 0; tx < worldW; tx++ {
			vector.DrawFilledRect(screen,
				float32(originX+tx*tileSize), float32(originY+ty*tileSize),
				float32(tileSize), float32(tileSize),
				tileColor(m, v.tiles, tx, ty), false)
		}
	}

	// Start position
	if m.Map.InBounds(int(v.start[0]), int(v.start[1])) {
		cx := float32(originX) + float32(v.start[0])*float32(tileSize)
		cy := float32(originY) + float32(v.start[1])*float32(tileSize)
		radius := float32(tileSize) * 0.35
		vector.DrawFilledCircle(screen, cx, cy, radius, color.RGBA{50, 200, 255, 255}, true)
		vector.StrokeCircle(screen, cx, cy, radius, 1, color.RGBA{255, 255, 255, 255}, true)
	}

	ebitenutil.DebugPrintAt(screen, m.Key, x+12, y+8)
	ebitenutil.DebugPrintAt(screen, "Left/Right (or A/D) to switch maps, Esc to quit", x+12, y+24)
}

// drawSidebar lists the map's status, then the tile legend below it
func (v *viewer) drawSidebar(screen *ebiten.Image, m mapInfo, x, y, w, h int) {
	drawPanel(screen, x, y, w, h, color.RGBA{18, 18, 26, 255})

	row := y + 12
	for _, line := range append(infoLines(m, v.start), "", "Legend") {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 16
	}
	for _, line := range v.legendLines {
		ebitenutil.DebugPrintAt(screen, line, x+12, row)
		row += 14
	}
}

func drawPanel(screen *ebiten.Image, x, y, w, h int, fill color.RGBA) {
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)
	vector.DrawFilledRect(screen, fx, fy, fw, fh, fill, false)
	vector.StrokeRect(screen, fx, fy, fw, fh, 2, color.RGBA{70, 70, 90, 255}, false)
}

// ensureRuntimeCWD moves to the executable's directory when the config is
// not reachable from the current one
func ensureRuntimeCWD(configPath string) {
	if _, err := os.Stat(configPath); err == nil {
		return
	}
	exe, err := os.Executable()
	if err != nil {
		return
	}
	_ = os.Chdir(filepath.Dir(exe))
}
