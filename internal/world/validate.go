package world

import (
	"errors"
	"fmt"
)

var (
	ErrSizeMismatch    = errors.New("map size mismatch")
	ErrUnknownTileType = errors.New("unknown tile type")
	ErrOpenBorder      = errors.New("map edge is a floor")
	ErrBlockedStart    = errors.New("start position is not on a floor cell")
)

// MapError is returned by Validate. Kind is one of the Err* sentinels and
// is matched by errors.Is.
type MapError struct {
	Kind error
	X, Y int  // Offending cell, for ErrUnknownTileType and ErrOpenBorder
	Tile Tile // Offending tile, for ErrUnknownTileType
	Got  int  // Payload length, for ErrSizeMismatch
	Want int  // width*height, for ErrSizeMismatch
}

func (e *MapError) Error() string {
	switch e.Kind {
	case ErrSizeMismatch:
		return fmt.Sprintf("map size(%d) is not width * height(%d)", e.Got, e.Want)
	case ErrUnknownTileType:
		return fmt.Sprintf("map tile at [%3d,%3d] has an unknown tile type(%c)", e.X, e.Y, e.Tile)
	case ErrOpenBorder:
		return fmt.Sprintf("map edge at [%3d,%3d] is a floor (should be wall)", e.X, e.Y)
	default:
		return fmt.Sprintf("invalid map at [%3d,%3d]", e.X, e.Y)
	}
}

func (e *MapError) Unwrap() error {
	return e.Kind
}

// Validate checks that the payload fills the grid, that every tile is floor
// or a registered wall, and that every border tile is a wall. It reports the
// first problem in row-major order and has no side effects.
func (m *Map) Validate(tiles *TileSet) error {
	want := m.width * m.height
	if m.width <= 0 || m.height <= 0 || len(m.tiles) != want {
		return &MapError{Kind: ErrSizeMismatch, Got: len(m.tiles), Want: want}
	}

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			t := m.Tile(x, y)
			if !t.IsFloor() && !tiles.IsWall(t) {
				return &MapError{Kind: ErrUnknownTileType, X: x, Y: y, Tile: t}
			}
			edge := x == 0 || y == 0 || x == m.width-1 || y == m.height-1
			if edge && t.IsFloor() {
				return &MapError{Kind: ErrOpenBorder, X: x, Y: y}
			}
		}
	}
	return nil
}
