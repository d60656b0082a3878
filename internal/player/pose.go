package player

import (
	"raycaster/internal/config"
	"raycaster/internal/mathutil"
)

// Pose is the viewer's position and orientation on the map. Direction is a
// unit vector; Plane is perpendicular to it and its length sets the field of
// view (0.66 is about 66 degrees).
type Pose struct {
	Position  mathutil.Vec2
	Direction mathutil.Vec2
	Plane     mathutil.Vec2
}

// NewPose faces the pose along facing, with the camera plane on the right
func NewPose(position, facing mathutil.Vec2, planeMagnitude float64) Pose {
	dir := facing.Normalize()
	return Pose{
		Position:  position,
		Direction: dir,
		Plane:     dir.Perp().Scale(planeMagnitude),
	}
}

// StartPose builds the configured starting pose
func StartPose(cfg *config.Config) Pose {
	m := cfg.Movement
	return NewPose(
		mathutil.Vec2{X: m.StartPosition[0], Y: m.StartPosition[1]},
		mathutil.Vec2{X: m.StartFacing[0], Y: m.StartFacing[1]},
		cfg.Camera.PlaneMagnitude,
	)
}

// Rotate turns direction and plane together, so they stay perpendicular
func (p *Pose) Rotate(angle float64) {
	p.Direction = p.Direction.Rotate(angle)
	p.Plane = p.Plane.Rotate(angle)
}

// Right is the unit vector a quarter turn clockwise on screen from Direction
func (p Pose) Right() mathutil.Vec2 {
	return p.Direction.Perp()
}

// Cell returns the tile the position lies in
func (p Pose) Cell() (x, y int) {
	return mathutil.FloorInt(p.Position.X), mathutil.FloorInt(p.Position.Y)
}
