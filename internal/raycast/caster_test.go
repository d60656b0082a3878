package raycast

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"raycaster/internal/mathutil"
	"raycaster/internal/player"
	"raycaster/internal/world"
)

const eps = 1e-12

func TestCastThreeByThreeRoom(t *testing.T) {
	m := world.ParseMap("111", "1.1", "111")
	c := New(m)
	p := player.NewPose(mathutil.Vec2{X: 1.5, Y: 1.5}, mathutil.Vec2{X: 1, Y: 0}, 0.66)

	const width = 640
	hit := c.Cast(p, width/2, width, nil)

	if hit.MapX != 2 || hit.MapY != 1 {
		t.Fatalf("Expected hit at (2,1), got (%d,%d)", hit.MapX, hit.MapY)
	}
	if math.Abs(hit.Distance-0.5) > eps {
		t.Errorf("Expected distance 0.5, got %v", hit.Distance)
	}
	if !hit.Horizontal {
		t.Error("Expected an x-axis crossing")
	}
	if hit.Tile != '1' || hit.Steps != 1 {
		t.Errorf("Expected wall '1' after 1 step, got %q after %d", hit.Tile, hit.Steps)
	}
	if math.Abs(hit.WallX-0.5) > eps {
		t.Errorf("Expected WallX 0.5, got %v", hit.WallX)
	}
}

func TestCameraX(t *testing.T) {
	tests := []struct {
		column, width int
		want          float64
	}{
		{0, 640, -1},
		{320, 640, 0},
		{639, 640, 2*639.0/640 - 1},
	}
	for _, tt := range tests {
		if got := CameraX(tt.column, tt.width); math.Abs(got-tt.want) > eps {
			t.Errorf("CameraX(%d,%d) = %v, want %v", tt.column, tt.width, got, tt.want)
		}
	}
}

func TestCastRayAxisAlignedDistances(t *testing.T) {
	m := world.ParseMap(
		"1111111111",
		"1........1",
		"1........1",
		"1........1",
		"1111111111",
	)
	c := New(m)
	origin := mathutil.Vec2{X: 2.5, Y: 1.5}

	tests := []struct {
		name       string
		dir        mathutil.Vec2
		mapX, mapY int
		distance   float64
		horizontal bool
	}{
		{"east", mathutil.Vec2{X: 1, Y: 0}, 9, 1, 6.5, true},
		{"west", mathutil.Vec2{X: -1, Y: 0}, 0, 1, 1.5, true},
		{"south", mathutil.Vec2{X: 0, Y: 1}, 2, 4, 2.5, false},
		{"north", mathutil.Vec2{X: 0, Y: -1}, 2, 0, 0.5, false},
		{"east, scaled direction", mathutil.Vec2{X: 2, Y: 0}, 9, 1, 3.25, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := c.CastRay(origin, tt.dir, nil)
			if hit.MapX != tt.mapX || hit.MapY != tt.mapY {
				t.Errorf("Expected cell (%d,%d), got (%d,%d)", tt.mapX, tt.mapY, hit.MapX, hit.MapY)
			}
			if math.Abs(hit.Distance-tt.distance) > eps {
				t.Errorf("Expected distance %v, got %v", tt.distance, hit.Distance)
			}
			if hit.Horizontal != tt.horizontal {
				t.Errorf("Expected horizontal=%v", tt.horizontal)
			}
			if math.IsNaN(hit.WallX) || hit.WallX < 0 || hit.WallX >= 1 {
				t.Errorf("WallX out of range: %v", hit.WallX)
			}
		})
	}
}

func TestCastRayTieGoesToX(t *testing.T) {
	// Diagonal from a cell center reaches both grid lines at once
	m := world.ParseMap(
		"1111",
		"1.21",
		"131.",
		"1111",
	)
	hit := New(m).CastRay(mathutil.Vec2{X: 1.5, Y: 1.5}, mathutil.Vec2{X: 1, Y: 1}, nil)
	if hit.MapX != 2 || hit.MapY != 1 || !hit.Horizontal || hit.Tile != '2' {
		t.Errorf("Expected x crossing into (2,1), got (%d,%d) horizontal=%v tile=%q",
			hit.MapX, hit.MapY, hit.Horizontal, hit.Tile)
	}
}

func TestCastTerminatesFromEveryFloorCell(t *testing.T) {
	m := world.DefaultMap()
	ts := world.DefaultTileSet()
	c := New(m)
	rng := rand.New(rand.NewSource(1))
	limit := m.Width() + m.Height()

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if !m.Tile(x, y).IsFloor() {
				continue
			}
			for i := 0; i < 8; i++ {
				origin := mathutil.Vec2{X: float64(x) + rng.Float64(), Y: float64(y) + rng.Float64()}
				angle := rng.Float64() * 2 * math.Pi
				dir := mathutil.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
				if i == 0 {
					dir = mathutil.Vec2{X: 0, Y: -1}
				}

				hit := c.CastRay(origin, dir, nil)
				if hit.Steps > limit {
					t.Fatalf("Ray from %v took %d steps, limit %d", origin, hit.Steps, limit)
				}
				if !ts.IsWall(hit.Tile) {
					t.Fatalf("Ray from %v stopped on %q", origin, hit.Tile)
				}
				if hit.Distance < 0 || math.IsNaN(hit.Distance) {
					t.Fatalf("Ray from %v gave distance %v", origin, hit.Distance)
				}
			}
		}
	}
}

func TestCastEmitsOneSamplePerStep(t *testing.T) {
	m := world.DefaultMap()
	c := New(m)
	p := player.NewPose(mathutil.Vec2{X: 15.5, Y: 16.5}, mathutil.Vec2{X: 1, Y: 0}, 0.66)

	for column := 0; column < 320; column += 7 {
		var samples []Sample
		hit := c.Cast(p, column, 320, func(s Sample) { samples = append(samples, s) })

		if len(samples) != hit.Steps {
			t.Fatalf("column %d: %d samples for %d steps", column, len(samples), hit.Steps)
		}
		prev := 0.0
		for i, s := range samples {
			if s.Step != i+1 {
				t.Errorf("column %d: sample %d has step %d", column, i, s.Step)
			}
			if s.Previous != prev {
				t.Errorf("column %d: sample %d previous %v, want %v", column, i, s.Previous, prev)
			}
			if s.Distance < prev {
				t.Errorf("column %d: distance went backwards at step %d", column, s.Step)
			}
			prev = s.Distance
		}
		last := samples[len(samples)-1]
		if last.MapX != hit.MapX || last.MapY != hit.MapY || last.Distance != hit.Distance {
			t.Errorf("column %d: last sample %+v does not match hit %+v", column, last, hit)
		}
	}
}

func TestCastIsIdempotent(t *testing.T) {
	c := New(world.DefaultMap())
	p := player.NewPose(mathutil.Vec2{X: 15.5, Y: 16.5}, mathutil.Vec2{X: 0.3, Y: -0.8}, 0.66)

	for column := 0; column < 100; column++ {
		var first, second []Sample
		a := c.Cast(p, column, 100, func(s Sample) { first = append(first, s) })
		b := c.Cast(p, column, 100, func(s Sample) { second = append(second, s) })
		if a != b {
			t.Fatalf("column %d: %+v != %+v", column, a, b)
		}
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("column %d: samples differ between runs", column)
		}
	}
}

func TestCastRayPanicsOnOpenMap(t *testing.T) {
	m := world.ParseMap(
		"......",
		"......",
		"......",
	)
	defer func() {
		if recover() == nil {
			t.Error("Expected a panic for a ray leaving an open map")
		}
	}()
	New(m).CastRay(mathutil.Vec2{X: 2.5, Y: 1.5}, mathutil.Vec2{X: 1, Y: 0.1}, nil)
}
