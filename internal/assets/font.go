package assets

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// LoadFontFace loads a TTF for on-screen text. An empty path uses the
// embedded Go Regular face.
func LoadFontFace(path string, size float64) (*text.GoTextFace, error) {
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font: %w", err)
		}
	}

	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %q: %w", path, err)
	}
	return &text.GoTextFace{Source: source, Size: size}, nil
}
