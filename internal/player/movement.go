package player

import (
	"math"

	"raycaster/internal/collision"
	"raycaster/internal/config"
	"raycaster/internal/mathutil"
)

// Intent is one tick of player input. Each axis is in [-1, 1]; positive
// Forward moves ahead, positive Turn and Strafe go right.
type Intent struct {
	Forward float64
	Turn    float64
	Strafe  float64
}

// IsZero reports whether the intent would leave the pose unchanged
func (in Intent) IsZero() bool {
	return in.Forward == 0 && in.Turn == 0 && in.Strafe == 0
}

// Mover applies intents to a pose, keeping the collision box on free tiles
type Mover struct {
	collision *collision.CollisionSystem
	moveSpeed float64 // Tiles per second
	rotSpeed  float64 // Radians per second
	boxSize   float64 // Full collision box size, in tiles
}

// NewMover creates a mover over the given grid
func NewMover(tiles collision.TileChecker, cfg config.MovementConfig) *Mover {
	return &Mover{
		collision: collision.NewCollisionSystem(tiles),
		moveSpeed: cfg.MoveSpeed,
		rotSpeed:  cfg.RotationSpeed,
		boxSize:   cfg.CollisionBox,
	}
}

// Apply advances the pose by dt seconds of intent. Translation is tried on
// the x axis and then the y axis, so a blocked diagonal still slides along
// the wall. Rotation is applied after translation.
func (m *Mover) Apply(p *Pose, in Intent, dt float64) {
	forward := clampAxis(in.Forward)
	strafe := clampAxis(in.Strafe)
	turn := clampAxis(in.Turn)

	if forward != 0 || strafe != 0 {
		step := p.Direction.Scale(forward).Add(p.Right().Scale(strafe)).Scale(m.moveSpeed * dt)
		m.slide(p, step)
	}
	if turn != 0 {
		p.Rotate(turn * m.rotSpeed * dt)
	}
}

func (m *Mover) slide(p *Pose, step mathutil.Vec2) {
	if m.collision.CanMoveTo(p.Position.X+step.X, p.Position.Y, m.boxSize) {
		p.Position.X += step.X
	}
	if m.collision.CanMoveTo(p.Position.X, p.Position.Y+step.Y, m.boxSize) {
		p.Position.Y += step.Y
	}
}

// CanStand reports whether a collision box at pos fits on the grid
func (m *Mover) CanStand(pos mathutil.Vec2) bool {
	return m.collision.CanMoveTo(pos.X, pos.Y, m.boxSize)
}

func clampAxis(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}
