package collision

import "raycaster/internal/mathutil"

// TileChecker interface for checking if tiles block movement
type TileChecker interface {
	IsTileBlocking(tileX, tileY int) bool
	GetWorldBounds() (width, height int)
}

// CollisionSystem answers whether a box fits on the tile grid
type CollisionSystem struct {
	tileChecker TileChecker
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(tileChecker TileChecker) *CollisionSystem {
	return &CollisionSystem{tileChecker: tileChecker}
}

// CanOccupy reports whether the box lies inside the grid and overlaps only
// free tiles. Every tile touched by the box is checked, so a box larger than
// a tile is handled too.
func (cs *CollisionSystem) CanOccupy(box BoundingBox) bool {
	width, height := cs.tileChecker.GetWorldBounds()
	minX, minY, maxX, maxY := box.GetBounds()

	startTileX := mathutil.FloorInt(minX)
	startTileY := mathutil.FloorInt(minY)
	endTileX := mathutil.FloorInt(maxX)
	endTileY := mathutil.FloorInt(maxY)

	if startTileX < 0 || startTileY < 0 || endTileX >= width || endTileY >= height {
		return false
	}

	for tileY := startTileY; tileY <= endTileY; tileY++ {
		for tileX := startTileX; tileX <= endTileX; tileX++ {
			if cs.tileChecker.IsTileBlocking(tileX, tileY) {
				return false
			}
		}
	}
	return true
}

// CanMoveTo checks a square box of the given size centered at (x, y)
func (cs *CollisionSystem) CanMoveTo(x, y, size float64) bool {
	return cs.CanOccupy(Square(x, y, size))
}
