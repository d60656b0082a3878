package main

import (
	"errors"
	"fmt"
	"image/color"
	"path/filepath"
	"sort"

	"raycaster/internal/world"
)

type mapInfo struct {
	Key  string
	Path string
	Map  *world.Map
	Err  error // Load or validation failure
	Bad  *world.MapError
}

// loadMaps loads and validates every *.map file in dir, sorted by name.
// Broken maps are kept so the viewer can show why they fail.
func loadMaps(dir string, tiles *world.TileSet) ([]mapInfo, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.map"))
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no maps found in %s", dir)
	}
	sort.Strings(paths)

	maps := make([]mapInfo, 0, len(paths))
	for _, path := range paths {
		info := mapInfo{Key: filepath.Base(path), Path: path}
		info.Map, info.Err = world.LoadMap(path)
		if info.Err == nil {
			info.Err = info.Map.Validate(tiles)
			errors.As(info.Err, &info.Bad)
		}
		maps = append(maps, info)
	}
	return maps, nil
}

// infoLines describes a map and whether start is a usable player position on it
func infoLines(m mapInfo, start [2]float64) []string {
	lines := []string{m.Path}
	if m.Map != nil {
		w, h := m.Map.GetWorldBounds()
		lines = append(lines, fmt.Sprintf("Tiles: %dx%d", w, h))
	}
	if m.Err != nil {
		return append(lines, "Invalid:", m.Err.Error())
	}
	lines = append(lines, "Valid")
	if err := world.CheckStart(m.Map, start); err != nil {
		return append(lines, "Start blocked:", errors.Unwrap(err).Error())
	}
	return append(lines, fmt.Sprintf("Start: (%.1f, %.1f)", start[0], start[1]))
}

// buildLegendLines lists the registered wall letters
func buildLegendLines(tiles *world.TileSet) []string {
	lines := []string{". -> floor"}
	for _, t := range tiles.Tiles() {
		v, _ := tiles.Variant(t)
		entry := fmt.Sprintf("%s -> %s [%d]", t, v.Name, v.AtlasIndex)
		if v.Light {
			entry += " light"
		}
		lines = append(lines, entry)
	}
	return lines
}

var (
	floorCellColor   = color.RGBA{90, 70, 60, 255}
	unknownCellColor = color.RGBA{255, 0, 255, 255}
	badCellColor     = color.RGBA{230, 40, 40, 255}
	lightCellColor   = color.RGBA{250, 220, 90, 255}

	// One shade per atlas cell, repeating
	wallPalette = []color.RGBA{
		{50, 50, 60, 255},
		{40, 110, 50, 255},
		{110, 75, 40, 255},
		{80, 80, 130, 255},
	}
)

// tileColor picks the swatch drawn for one map cell
func tileColor(m mapInfo, tiles *world.TileSet, x, y int) color.RGBA {
	if m.Bad != nil && m.Bad.X == x && m.Bad.Y == y && !errors.Is(m.Bad, world.ErrSizeMismatch) {
		return badCellColor
	}

	t, ok := m.Map.TileAt(x, y)
	switch {
	case !ok:
		return unknownCellColor
	case t.IsFloor():
		return floorCellColor
	case tiles.IsLight(t):
		return lightCellColor
	case tiles.IsWall(t):
		return wallPalette[tiles.AtlasIndex(t)%len(wallPalette)]
	default:
		return unknownCellColor
	}
}
