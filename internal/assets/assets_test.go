package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateAtlasFillsEveryCell(t *testing.T) {
	img := GenerateAtlas(512, 128)
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
		t.Fatalf("Unexpected atlas bounds %v", img.Bounds())
	}

	// Every cell is opaque and the first four differ from each other
	var centers [4]uint8
	for i := 0; i < 16; i++ {
		x, y := i%4*128+65, i/4*128+65
		c := img.RGBAAt(x, y)
		if c.A != 255 {
			t.Errorf("cell %d is transparent", i)
		}
		if i < 4 {
			centers[i] = c.G
		}
	}
	if centers[0] == centers[1] || centers[1] == centers[2] || centers[2] == centers[3] {
		t.Errorf("Expected distinct patterns, got greens %v", centers)
	}
}

func TestLoadAtlasGenerated(t *testing.T) {
	a, err := LoadAtlas("", 512, 128, 4)
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}
	if a.At(-5, 10000).A != 255 {
		t.Error("Expected clamped sample to be opaque")
	}
}

func TestLoadAtlasFromPNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walls.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, GenerateAtlas(256, 64)); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	a, err := LoadAtlas(path, 256, 64, 4)
	if err != nil {
		t.Fatalf("LoadAtlas failed: %v", err)
	}
	if a.At(33, 33) != GenerateAtlas(256, 64).RGBAAt(33, 33) {
		t.Error("Loaded atlas does not match the encoded image")
	}

	// 4 cells per row, 9 cells need 3 rows of 64 pixels
	if _, err := LoadAtlas(path, 256, 64, 9); err != nil {
		t.Errorf("Expected a 4x4 sheet to hold 9 cells: %v", err)
	}
	if _, err := LoadAtlas(path, 512, 64, 4); err == nil {
		t.Error("Expected error for atlas narrower than configured size")
	}
}

func TestLoadAtlasErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadAtlas(filepath.Join(dir, "missing.png"), 512, 128, 4); err == nil {
		t.Error("Expected error for missing atlas")
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not a png"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadAtlas(junk, 512, 128, 4); err == nil {
		t.Error("Expected decode error")
	}

	short := filepath.Join(dir, "short.png")
	f, err := os.Create(short)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 512, 100))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()
	if _, err := LoadAtlas(short, 512, 128, 4); err == nil {
		t.Error("Expected error for atlas shorter than one row")
	}
}

func TestLoadFontFace(t *testing.T) {
	face, err := LoadFontFace("", 24)
	if err != nil {
		t.Fatalf("Embedded font failed: %v", err)
	}
	if face.Size != 24 {
		t.Errorf("Expected size 24, got %v", face.Size)
	}

	if _, err := LoadFontFace(filepath.Join(t.TempDir(), "none.ttf"), 24); err == nil {
		t.Error("Expected error for missing font")
	}
	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFontFace(bad, 24); err == nil {
		t.Error("Expected parse error for corrupt font")
	}
}
