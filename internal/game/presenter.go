package game

import (
	"image"
	"image/color"
	"math"

	"raycaster/internal/config"
	"raycaster/internal/player"
	"raycaster/internal/render"
	"raycaster/internal/world"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Indices are uint16, so one DrawTriangles call addresses at most this many
// vertices. Kept a multiple of 4 so quads never straddle a batch.
const maxBatchVertices = 65532

var (
	floorCellColor = color.RGBA{255, 255, 255, 125}
	wallCellColor  = color.RGBA{0, 0, 0, 255}
	playerColor    = color.RGBA{255, 255, 255, 255}
)

// Presenter turns frame vertex streams into ebiten draw calls
type Presenter struct {
	atlas *ebiten.Image
	white *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewPresenter creates a presenter sampling wall texels from atlas
func NewPresenter(atlas *ebiten.Image) *Presenter {
	whiteImage := ebiten.NewImage(3, 3)
	whiteImage.Fill(color.White)

	return &Presenter{
		atlas: atlas,
		// The inner pixel avoids bleeding from the image edge when sampling
		white:    whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		vertices: make([]ebiten.Vertex, 0, maxBatchVertices),
		indices:  make([]uint16, 0, maxBatchVertices/4*6),
	}
}

// DrawFrame draws floors and ceilings first, then the wall slices on top,
// then optionally the minimap rays
func (p *Presenter) DrawFrame(screen *ebiten.Image, frame *render.Frame, minimap bool) {
	p.drawColumns(screen, frame.Floors, p.white, false)
	p.drawColumns(screen, frame.Walls, p.atlas, true)
	if minimap {
		p.drawLines(screen, frame.Minimap)
	}
}

func (p *Presenter) drawColumns(screen *ebiten.Image, stream []render.Vertex, src *ebiten.Image, textured bool) {
	origin := src.Bounds().Min
	render.Segments(stream, func(a, b render.Vertex) {
		if len(p.vertices)+4 > maxBatchVertices {
			p.flush(screen, src)
		}
		p.vertices, p.indices = appendColumnQuad(p.vertices, p.indices, a, b, textured, origin)
	})
	p.flush(screen, src)
}

func (p *Presenter) drawLines(screen *ebiten.Image, stream []render.Vertex) {
	origin := p.white.Bounds().Min
	render.Segments(stream, func(a, b render.Vertex) {
		if len(p.vertices)+4 > maxBatchVertices {
			p.flush(screen, p.white)
		}
		p.vertices, p.indices = appendLineQuad(p.vertices, p.indices, a, b, 1, origin)
	})
	p.flush(screen, p.white)
}

func (p *Presenter) flush(screen, src *ebiten.Image) {
	if len(p.indices) > 0 {
		screen.DrawTriangles(p.vertices, p.indices, src, &ebiten.DrawTrianglesOptions{})
	}
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}

// DrawMinimapGrid draws one cell per tile: walls solid black, floors
// translucent white
func (p *Presenter) DrawMinimapGrid(screen *ebiten.Image, m *world.Map, cfg config.MinimapConfig) {
	scale := float32(cfg.Scale)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			clr := wallCellColor
			if m.Tile(x, y).IsFloor() {
				clr = floorCellColor
			}
			vector.DrawFilledRect(screen,
				float32(cfg.Offset)+float32(x)*scale,
				float32(cfg.Offset)+float32(y)*scale,
				scale, scale, clr, false)
		}
	}
}

// DrawPlayer marks the player position on the minimap
func (p *Presenter) DrawPlayer(screen *ebiten.Image, pose player.Pose, cfg config.MinimapConfig) {
	x, y, size := playerMarker(pose, cfg)
	vector.DrawFilledRect(screen, x, y, size, size, playerColor, false)
}

// DrawText draws s with its top-left corner at (x, y)
func (p *Presenter) DrawText(screen *ebiten.Image, face text.Face, s string, x, y float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, face, op)
}

func playerMarker(pose player.Pose, cfg config.MinimapConfig) (x, y, size float32) {
	stride := float64(cfg.Scale) - 0.1
	return float32(cfg.Offset + pose.Position.X*stride),
		float32(cfg.Offset + pose.Position.Y*stride),
		float32(cfg.Scale - 3)
}

// appendColumnQuad turns a vertical segment into a one pixel wide quad
// covering screen column a.X. Textured quads sample the atlas column a.U
// between a.V and b.V; untextured ones sample the pixel at origin.
func appendColumnQuad(vs []ebiten.Vertex, is []uint16, a, b render.Vertex, textured bool, origin image.Point) ([]ebiten.Vertex, []uint16) {
	u0, u1 := float32(origin.X), float32(origin.X+1)
	v0, v1 := float32(origin.Y), float32(origin.Y+1)
	if textured {
		u0, u1 = a.U, a.U+1
		v0, v1 = a.V, b.V
	}

	base := uint16(len(vs))
	vs = append(vs,
		vertex(a.X, a.Y, u0, v0, a.Color),
		vertex(a.X+1, a.Y, u1, v0, a.Color),
		vertex(b.X+1, b.Y, u1, v1, b.Color),
		vertex(b.X, b.Y, u0, v1, b.Color),
	)
	is = append(is, base, base+1, base+2, base, base+2, base+3)
	return vs, is
}

// appendLineQuad turns a segment into a quad of the given width, keeping
// per-end colors so the line fades from a to b
func appendLineQuad(vs []ebiten.Vertex, is []uint16, a, b render.Vertex, width float32, origin image.Point) ([]ebiten.Vertex, []uint16) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return vs, is
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	sx, sy := float32(origin.X), float32(origin.Y)

	base := uint16(len(vs))
	vs = append(vs,
		vertex(a.X+nx, a.Y+ny, sx, sy, a.Color),
		vertex(a.X-nx, a.Y-ny, sx, sy, a.Color),
		vertex(b.X-nx, b.Y-ny, sx, sy, b.Color),
		vertex(b.X+nx, b.Y+ny, sx, sy, b.Color),
	)
	is = append(is, base, base+1, base+2, base, base+2, base+3)
	return vs, is
}

func vertex(x, y, sx, sy float32, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX:   x,
		DstY:   y,
		SrcX:   sx,
		SrcY:   sy,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}
