package render

import "image/color"

// Vertex is one end of a vertical line segment in screen space. Walls carry
// an atlas pixel in U, V; floor, ceiling and minimap vertices leave them 0.
type Vertex struct {
	X, Y  float32
	U, V  float32
	Color color.RGBA
}

// Frame holds the vertex streams of one rendered frame. Each stream is a
// list of line segments: vertices 2i and 2i+1 are the ends of segment i.
type Frame struct {
	Width, Height int
	Walls         []Vertex // Textured wall slices, two per column
	Floors        []Vertex // Floor and ceiling bands, four per DDA step
	Minimap       []Vertex // Ray lines on the minimap, two per column
}

// Reset empties every stream, keeping the allocations
func (f *Frame) Reset() {
	f.Walls = f.Walls[:0]
	f.Floors = f.Floors[:0]
	f.Minimap = f.Minimap[:0]
}

func (f *Frame) appendFrame(o *Frame) {
	f.Walls = append(f.Walls, o.Walls...)
	f.Floors = append(f.Floors, o.Floors...)
	f.Minimap = append(f.Minimap, o.Minimap...)
}

// Segments calls fn for every segment of a stream
func Segments(stream []Vertex, fn func(a, b Vertex)) {
	for i := 0; i+1 < len(stream); i += 2 {
		fn(stream[i], stream[i+1])
	}
}
