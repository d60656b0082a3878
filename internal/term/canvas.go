// Package term presents rendered frames on a character terminal through
// tcell, one background-colored cell per screen column and row.
package term

import (
	"image/color"
	"math"

	"raycaster/internal/assets"
	"raycaster/internal/render"
)

// Canvas is a grid of cell colors. Frames are rendered Aspect times taller
// than the grid so that walls keep their proportions on cells that are
// taller than they are wide.
type Canvas struct {
	Width, Height int
	Aspect        float64
	cells         []color.RGBA
}

// NewCanvas creates a black canvas of width x height cells
func NewCanvas(width, height int, aspect float64) *Canvas {
	if aspect <= 0 {
		aspect = 1
	}
	return &Canvas{
		Width:  width,
		Height: height,
		Aspect: aspect,
		cells:  make([]color.RGBA, width*height),
	}
}

// VirtualHeight is the frame height to render for this canvas
func (c *Canvas) VirtualHeight() int {
	return max(1, int(math.Round(float64(c.Height)*c.Aspect)))
}

// Clear fills every cell with col
func (c *Canvas) Clear(col color.RGBA) {
	for i := range c.cells {
		c.cells[i] = col
	}
}

// At returns the color of a cell; off-canvas cells are transparent black
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return color.RGBA{}
	}
	return c.cells[y*c.Width+x]
}

// Set colors a cell, ignoring off-canvas coordinates
func (c *Canvas) Set(x, y int, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.Width || y >= c.Height {
		return
	}
	c.cells[y*c.Width+x] = col
}

// rows returns the half-open row range whose centers fall inside the
// virtual span [lo, hi)
func (c *Canvas) rows(lo, hi float32) (first, last int) {
	if lo > hi {
		lo, hi = hi, lo
	}
	first = int(math.Ceil(float64(lo)/c.Aspect - 0.5))
	last = int(math.Ceil(float64(hi)/c.Aspect - 0.5))
	return max(first, 0), min(last, c.Height)
}

// Paint rasterizes the floor and wall streams of a frame. Wall rows sample
// the atlas at the interpolated texel and are tinted by the wall color.
func (c *Canvas) Paint(frame *render.Frame, atlas *assets.Atlas) {
	render.Segments(frame.Floors, func(a, b render.Vertex) {
		x := int(a.X)
		first, last := c.rows(a.Y, b.Y)
		for y := first; y < last; y++ {
			c.Set(x, y, a.Color)
		}
	})

	render.Segments(frame.Walls, func(a, b render.Vertex) {
		x := int(a.X)
		first, last := c.rows(a.Y, b.Y)
		span := b.Y - a.Y
		for y := first; y < last; y++ {
			center := float32((float64(y) + 0.5) * c.Aspect)
			t := (center - a.Y) / span
			v := a.V + t*(b.V-a.V)
			c.Set(x, y, tint(atlas.At(int(a.U), int(v)), a.Color))
		}
	})
}

func tint(texel, by color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(uint16(texel.R) * uint16(by.R) / 255),
		G: uint8(uint16(texel.G) * uint16(by.G) / 255),
		B: uint8(uint16(texel.B) * uint16(by.B) / 255),
		A: 255,
	}
}
