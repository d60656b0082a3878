// Package raycast finds, for each screen column, the first wall a ray from
// the viewer strikes on the tile grid.
package raycast

import (
	"math"

	"raycaster/internal/mathutil"
	"raycaster/internal/player"
	"raycaster/internal/world"
)

// Hit describes where a ray stopped
type Hit struct {
	MapX, MapY int           // Cell of the struck wall
	Distance   float64       // Perpendicular distance to the wall, in tiles
	Horizontal bool          // True when the last step crossed an x grid line
	WallX      float64       // Where along the wall face the ray landed, in [0,1)
	RayDir     mathutil.Vec2 // Direction the ray travelled
	Tile       world.Tile    // Struck wall variant
	Steps      int           // Grid lines crossed before the hit
}

// Sample is emitted once per DDA step, before the entered cell is tested.
// Consecutive samples bound one band of floor and ceiling.
type Sample struct {
	Step       int     // 1 for the first crossing
	MapX, MapY int     // Cell entered by this step
	Distance   float64 // Perpendicular distance reached by this step
	Previous   float64 // Distance reached by the step before, 0 for the first
	Horizontal bool
}

// Caster marches rays over a validated map. It holds no per-ray state, so a
// single Caster may be used from many goroutines.
type Caster struct {
	Map *world.Map
}

func New(m *world.Map) *Caster {
	return &Caster{Map: m}
}

// CameraX maps a screen column to its position on the camera plane, from -1
// at the left edge towards +1 at the right
func CameraX(column, width int) float64 {
	return 2*float64(column)/float64(width) - 1
}

// RayDir is the direction of the ray through the given column
func RayDir(p player.Pose, column, width int) mathutil.Vec2 {
	return p.Direction.Add(p.Plane.Scale(CameraX(column, width)))
}

// Cast marches the ray for one screen column. visit, if non-nil, receives
// every boundary sample in order.
func (c *Caster) Cast(p player.Pose, column, width int, visit func(Sample)) Hit {
	return c.CastRay(p.Position, RayDir(p, column, width), visit)
}

// CastRay marches a ray from origin until it enters a non-floor cell. The
// origin must lie in a floor cell of a validated map; a closed border then
// bounds the march to width+height steps.
func (c *Caster) CastRay(origin, dir mathutil.Vec2, visit func(Sample)) Hit {
	deltaDistX := deltaDist(dir.X, dir.Y)
	deltaDistY := deltaDist(dir.Y, dir.X)

	mapX := mathutil.FloorInt(origin.X)
	mapY := mathutil.FloorInt(origin.Y)

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if dir.X < 0 {
		stepX = -1
		sideDistX = (origin.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1.0 - origin.X) * deltaDistX
	}
	if dir.Y < 0 {
		stepY = -1
		sideDistY = (origin.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1.0 - origin.Y) * deltaDistY
	}

	maxSteps := c.Map.Width() + c.Map.Height()
	var (
		horizontal bool
		distance   float64
		previous   float64
		steps      int
		tile       = world.Floor
	)

	for tile.IsFloor() {
		// Ties go to x so corner hits do not depend on rounding
		if sideDistX <= sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			horizontal = true
			distance = (float64(mapX) - origin.X + float64(1-stepX)/2) / dir.X
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			horizontal = false
			distance = (float64(mapY) - origin.Y + float64(1-stepY)/2) / dir.Y
		}
		steps++
		if steps > maxSteps {
			panic("raycast: ray escaped the map; was it validated?")
		}

		if visit != nil {
			visit(Sample{
				Step:       steps,
				MapX:       mapX,
				MapY:       mapY,
				Distance:   distance,
				Previous:   previous,
				Horizontal: horizontal,
			})
		}
		previous = distance

		tile = c.Map.Tile(mapX, mapY)
	}

	var wallX float64
	if horizontal {
		wallX = origin.Y + distance*dir.Y
	} else {
		wallX = origin.X + distance*dir.X
	}
	wallX -= math.Floor(wallX)

	return Hit{
		MapX:       mapX,
		MapY:       mapY,
		Distance:   distance,
		Horizontal: horizontal,
		WallX:      wallX,
		RayDir:     dir,
		Tile:       tile,
		Steps:      steps,
	}
}

// deltaDist is the ray length between two grid lines of the axis whose
// direction component is along. A ray parallel to that axis never crosses
// one, which is an infinite step.
func deltaDist(along, across float64) float64 {
	if along == 0 {
		return math.Inf(1)
	}
	r := across / along
	return math.Sqrt(1 + r*r)
}
