package render

import (
	"image/color"
	"math"

	"raycaster/internal/config"
	"raycaster/internal/mathutil"
	"raycaster/internal/raycast"
	"raycaster/internal/world"
)

// minDistance keeps screenHeight/distance finite when the viewer stands on a
// grid line
const minDistance = 1e-2

var (
	minimapOrigin   = color.RGBA{R: 255, G: 0, B: 255, A: 255} // Magenta
	minimapTerminus = color.RGBA{A: 255}                       // Black
)

type rgb [3]float64

func toRGB(c [3]int) rgb {
	return rgb{float64(c[0]), float64(c[1]), float64(c[2])}
}

func (c rgb) rgba() color.RGBA {
	return color.RGBA{R: mathutil.Channel(c[0]), G: mathutil.Channel(c[1]), B: mathutil.Channel(c[2]), A: 255}
}

// Shader turns ray hits into vertex attributes: wall slice bounds, atlas
// coordinates, shaded colors, floor and ceiling bands and minimap rays.
// It holds only configuration and may be shared between goroutines.
type Shader struct {
	m     *world.Map
	tiles *world.TileSet

	screenHeight float64
	cameraHeight float64

	atlasSize int
	tileSize  int

	falloff     string
	falloffRate float64
	sideDivisor float64
	ceiling     rgb
	floor       rgb
	wall        rgb

	lighting     bool
	lightWeights rgb

	minimap       bool
	minimapOffset float64
	minimapScale  int
}

// NewShader configures a shader for the given map and screen
func NewShader(m *world.Map, tiles *world.TileSet, cfg *config.Config) *Shader {
	return &Shader{
		m:             m,
		tiles:         tiles,
		screenHeight:  float64(cfg.Display.ScreenHeight),
		cameraHeight:  cfg.Camera.Height,
		atlasSize:     cfg.Textures.AtlasSize,
		tileSize:      cfg.Textures.TileSize,
		falloff:       cfg.Shading.Falloff,
		falloffRate:   cfg.Shading.FalloffRate,
		sideDivisor:   cfg.Shading.SideShadowDivisor,
		ceiling:       toRGB(cfg.Shading.Ceiling),
		floor:         toRGB(cfg.Shading.Floor),
		wall:          toRGB(cfg.Shading.Wall),
		lighting:      cfg.Lighting.Enabled,
		lightWeights:  rgb(cfg.Lighting.Weights),
		minimap:       cfg.Minimap.Enabled,
		minimapOffset: cfg.Minimap.Offset,
		minimapScale:  cfg.Minimap.Scale,
	}
}

// WallHeight is the on-screen height of a wall at the given perpendicular
// distance
func (s *Shader) WallHeight(distance float64) float64 {
	return s.screenHeight / math.Max(distance, minDistance)
}

// Bounds returns the screen rows where a wall at distance meets the ceiling
// and the floor
func (s *Shader) Bounds(distance float64) (ceilingY, groundY int) {
	h := s.WallHeight(distance)
	half := s.screenHeight * 0.5
	ceilingY = int(-h*(1-s.cameraHeight) + half)
	groundY = int(h*s.cameraHeight + half)
	return ceilingY, groundY
}

// AtlasOrigin is the top-left pixel of an atlas cell
func (s *Shader) AtlasOrigin(index int) (x, y int) {
	x = index * s.tileSize % s.atlasSize
	y = index * s.tileSize / s.atlasSize * s.tileSize
	return x, y
}

// TexU is the texture column inside the tile for a hit. Faces whose natural
// parameterization runs right to left on screen are mirrored.
func (s *Shader) TexU(hit raycast.Hit) int {
	texU := mathutil.IntClamp(int(hit.WallX*float64(s.tileSize)), 0, s.tileSize-1)
	if (hit.Horizontal && hit.RayDir.X <= 0) || (!hit.Horizontal && hit.RayDir.Y >= 0) {
		texU = s.tileSize - texU - 1
	}
	return texU
}

// attenuate darkens a base color with distance using the configured policy
func (s *Shader) attenuate(c rgb, distance float64) rgb {
	switch s.falloff {
	case config.FalloffLinear:
		drop := s.falloffRate * distance
		for i := range c {
			c[i] = math.Max(0, c[i]-drop)
		}
	default:
		d := math.Max(distance, minDistance)
		for i := range c {
			c[i] /= d
		}
	}
	return c
}

// WallColor shades a hit: side shadow, distance falloff, then light bleed
func (s *Shader) WallColor(hit raycast.Hit) color.RGBA {
	c := s.wall
	if hit.Horizontal {
		for i := range c {
			c[i] /= s.sideDivisor
		}
	}
	c = s.attenuate(c, hit.Distance)
	if s.lighting {
		c = s.lightBleed(c, hit)
	}
	return c.rgba()
}

// lightBleed brightens walls near light tiles. The nine cells around and
// including the hit cell are checked; each light among them adds its weight
// scaled by distance, and by WallX or 1-WallX depending on which side of the
// face it sits. Channels saturate when converted to RGBA.
func (s *Shader) lightBleed(c rgb, hit raycast.Hit) rgb {
	if hit.Distance <= 1 {
		return c
	}
	hitIsLight := s.tiles.IsLight(hit.Tile)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			t, ok := s.m.TileAt(hit.MapX+i, hit.MapY+j)
			if !ok || !s.tiles.IsLight(t) {
				continue
			}
			w := 1.0
			if !hitIsLight {
				if i == 1 || j == 1 {
					w = hit.WallX
				} else {
					w = 1 - hit.WallX
				}
			}
			for k := range c {
				c[k] = math.Min(255, c[k]+hit.Distance*s.lightWeights[k]*w)
			}
		}
	}
	return c
}

// column accumulates one screen column's output
type column struct {
	x        float32
	ceilingY int
	groundY  int
	out      *Frame
}

func (s *Shader) beginColumn(x int, out *Frame) column {
	return column{
		x:        float32(x),
		ceilingY: 0,
		groundY:  int(s.screenHeight),
		out:      out,
	}
}

// band appends the floor and ceiling segments between the previous boundary
// and this sample's boundary
func (s *Shader) band(col *column, sample raycast.Sample) {
	floorColor := s.attenuate(s.floor, sample.Distance).rgba()
	ceilingColor := s.attenuate(s.ceiling, sample.Distance).rgba()
	ceilingY, groundY := s.Bounds(sample.Distance)

	col.out.Floors = append(col.out.Floors,
		Vertex{X: col.x, Y: float32(col.groundY), Color: floorColor},
		Vertex{X: col.x, Y: float32(groundY), Color: floorColor},
		Vertex{X: col.x, Y: float32(col.ceilingY), Color: ceilingColor},
		Vertex{X: col.x, Y: float32(ceilingY), Color: ceilingColor},
	)
	col.ceilingY, col.groundY = ceilingY, groundY
}

// wallSlice appends the textured wall segment and the minimap ray
func (s *Shader) wallSlice(col *column, origin mathutil.Vec2, hit raycast.Hit) {
	drawStart, drawEnd := s.Bounds(hit.Distance)
	texX, texY := s.AtlasOrigin(s.tiles.AtlasIndex(hit.Tile))
	u := float32(texX + s.TexU(hit))
	c := s.WallColor(hit)

	col.out.Walls = append(col.out.Walls,
		Vertex{X: col.x, Y: float32(drawStart), U: u, V: float32(texY + 1), Color: c},
		Vertex{X: col.x, Y: float32(drawEnd), U: u, V: float32(texY + s.tileSize - 1), Color: c},
	)

	if s.minimap {
		end := origin.Add(hit.RayDir.Scale(hit.Distance))
		ox, oy := s.MinimapPoint(origin)
		ex, ey := s.MinimapPoint(end)
		col.out.Minimap = append(col.out.Minimap,
			Vertex{X: ox, Y: oy, Color: minimapOrigin},
			Vertex{X: ex, Y: ey, Color: minimapTerminus},
		)
	}
}

// MinimapPoint projects a map position onto the minimap
func (s *Shader) MinimapPoint(p mathutil.Vec2) (x, y float32) {
	pad := s.minimapOffset + float64((s.minimapScale-3)/2)
	scale := float64(s.minimapScale) - 0.1
	return float32(pad + p.X*scale), float32(pad + p.Y*scale)
}
