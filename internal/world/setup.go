package world

import (
	"fmt"
	"math"

	"raycaster/internal/config"

	"github.com/sirupsen/logrus"
)

// LoadLevel reads the tile registry and map named by cfg (built-ins when a
// path is empty) and validates the map. Every failure is a *config.ConfigError.
func LoadLevel(cfg config.MapConfig) (*Map, *TileSet, error) {
	tiles := DefaultTileSet()
	if cfg.Tiles != "" {
		var err error
		tiles, err = LoadTileSet(cfg.Tiles)
		if err != nil {
			return nil, nil, &config.ConfigError{Op: "load tiles", Path: cfg.Tiles, Err: err}
		}
	}

	m := DefaultMap()
	if cfg.File != "" {
		var err error
		m, err = NewMapLoader(cfg.Width, cfg.Height).LoadMap(cfg.File)
		if err != nil {
			return nil, nil, &config.ConfigError{Op: "load map", Path: cfg.File, Err: err}
		}
	}

	if err := m.Validate(tiles); err != nil {
		return nil, nil, &config.ConfigError{Op: "validate map", Path: cfg.File, Err: err}
	}

	logrus.WithFields(logrus.Fields{
		"component": "world",
		"map":       cfg.File,
		"width":     m.Width(),
		"height":    m.Height(),
		"variants":  len(tiles.Tiles()),
	}).Info("level ready")
	return m, tiles, nil
}

// CheckStart reports a *config.ConfigError unless start lies inside a floor
// cell of m. Every ray is cast from the player position, and casts only
// terminate on a validated map when they begin on a floor cell.
func CheckStart(m *Map, start [2]float64) error {
	x, y := start[0], start[1]
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return &config.ConfigError{Op: "check start position", Err: fmt.Errorf("%w: (%v, %v)", ErrBlockedStart, x, y)}
	}

	cx, cy := int(math.Floor(x)), int(math.Floor(y))
	t, ok := m.TileAt(cx, cy)
	if !ok {
		return &config.ConfigError{Op: "check start position", Err: fmt.Errorf("%w: (%v, %v) is outside the %dx%d map", ErrBlockedStart, x, y, m.Width(), m.Height())}
	}
	if !t.IsFloor() {
		return &config.ConfigError{Op: "check start position", Err: fmt.Errorf("%w: (%v, %v) is inside tile %s", ErrBlockedStart, x, y, t)}
	}
	return nil
}
