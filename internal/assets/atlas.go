package assets

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"os"

	"github.com/sirupsen/logrus"
)

// Atlas is the wall texture sheet: square cells of TileSize pixels laid out
// row-major across Size pixels
type Atlas struct {
	Image    image.Image
	Size     int
	TileSize int
}

// LoadAtlas opens the PNG at path, or generates the built-in sheet when path
// is empty. cells is how many cells the tile registry refers to; a sheet too
// small to hold them is an error.
func LoadAtlas(path string, size, tileSize, cells int) (*Atlas, error) {
	var img image.Image
	if path == "" {
		img = GenerateAtlas(size, tileSize)
		logrus.WithFields(logrus.Fields{
			"component": "assets",
			"size":      size,
		}).Debug("using generated atlas")
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open atlas: %w", err)
		}
		defer f.Close()

		img, _, err = image.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("failed to decode atlas %s: %w", path, err)
		}
	}

	a := &Atlas{Image: img, Size: size, TileSize: tileSize}
	if err := a.check(cells); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Atlas) check(cells int) error {
	b := a.Image.Bounds()
	if b.Dx() < a.Size {
		return fmt.Errorf("atlas is %d pixels wide, need %d", b.Dx(), a.Size)
	}
	perRow := a.Size / a.TileSize
	rows := (cells + perRow - 1) / perRow
	if b.Dy() < rows*a.TileSize {
		return fmt.Errorf("atlas is %d pixels tall, %d cells need %d", b.Dy(), cells, rows*a.TileSize)
	}
	return nil
}

// At samples the atlas at a pixel, clamping to the image
func (a *Atlas) At(u, v int) color.RGBA {
	b := a.Image.Bounds()
	u = min(max(u, 0), b.Dx()-1)
	v = min(max(v, 0), b.Dy()-1)
	r, g, bl, al := a.Image.At(b.Min.X+u, b.Min.Y+v).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8), A: uint8(al >> 8)}
}

// Procedural cell patterns, in atlas order
var patterns = []func(img *image.RGBA, r image.Rectangle){
	brickPattern,
	foliagePattern,
	doorPattern,
	lampPattern,
}

// GenerateAtlas draws a square sheet with one pattern per cell: brick,
// foliage, door and lamp, repeating if there are more cells
func GenerateAtlas(size, tileSize int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	perRow := size / tileSize
	for i := 0; i < perRow*perRow; i++ {
		x := i % perRow * tileSize
		y := i / perRow * tileSize
		patterns[i%len(patterns)](img, image.Rect(x, y, x+tileSize, y+tileSize))
	}
	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{C: c}, image.Point{}, draw.Src)
}

// brickPattern: red-brown bricks with gray mortar every 8 pixels, vertical
// joints offset on alternate courses
func brickPattern(img *image.RGBA, r image.Rectangle) {
	fill(img, r, color.RGBA{150, 70, 55, 255})
	mortar := color.RGBA{179, 179, 179, 255}
	w := r.Dx()
	for y := 0; y < r.Dy(); y++ {
		course := y / 8
		for x := 0; x < w; x++ {
			joint := (x+course%2*8)%16 == 0
			if y%8 == 0 || joint {
				img.SetRGBA(r.Min.X+x, r.Min.Y+y, mortar)
			}
		}
	}
}

// foliagePattern: green base with pseudo-random shadow spots
func foliagePattern(img *image.RGBA, r image.Rectangle) {
	fill(img, r, color.RGBA{60, 140, 50, 255})
	shadow := color.RGBA{30, 80, 25, 255}
	for y := 0; y < r.Dy(); y += 3 {
		for x := 0; x < r.Dx(); x += 4 {
			if (x+y)%5 < 2 {
				img.SetRGBA(r.Min.X+x, r.Min.Y+y, shadow)
				img.SetRGBA(r.Min.X+x+1, r.Min.Y+y, shadow)
			}
		}
	}
}

// doorPattern: vertical wooden planks in a dark frame
func doorPattern(img *image.RGBA, r image.Rectangle) {
	fill(img, r, color.RGBA{60, 40, 25, 255})
	plank := color.RGBA{130, 90, 50, 255}
	seam := color.RGBA{90, 60, 35, 255}
	border := r.Dx() / 16
	inner := image.Rect(r.Min.X+border, r.Min.Y+border, r.Max.X-border, r.Max.Y)
	fill(img, inner, plank)
	for x := inner.Min.X; x < inner.Max.X; x += max(1, inner.Dx()/4) {
		fill(img, image.Rect(x, inner.Min.Y, x+1, inner.Max.Y), seam)
	}
}

// lampPattern: warm panel that brightens towards the center
func lampPattern(img *image.RGBA, r image.Rectangle) {
	cx, cy := r.Dx()/2, r.Dy()/2
	maxD := cx*cx + cy*cy
	for y := 0; y < r.Dy(); y++ {
		for x := 0; x < r.Dx(); x++ {
			dx, dy := x-cx, y-cy
			glow := 1 - float64(dx*dx+dy*dy)/float64(maxD)
			img.SetRGBA(r.Min.X+x, r.Min.Y+y, color.RGBA{
				R: uint8(150 + 105*glow),
				G: uint8(110 + 110*glow),
				B: uint8(40 + 60*glow),
				A: 255,
			})
		}
	}
}
