package world

import (
	"errors"
	"math/rand"
	"testing"
)

func TestDefaultMapIsValid(t *testing.T) {
	m := DefaultMap()
	if err := m.Validate(DefaultTileSet()); err != nil {
		t.Fatalf("Built-in map failed validation: %v", err)
	}
	if got := m.Tile(15, 16); got != Floor {
		t.Errorf("Expected start cell (15,16) to be floor, got %q", got)
	}
}

func TestValidateReportsFirstProblem(t *testing.T) {
	tests := []struct {
		name string
		m    *Map
		kind error
		x, y int
	}{
		{
			name: "payload too short",
			m:    NewMap(3, 3, []byte("1111.111")),
			kind: ErrSizeMismatch,
		},
		{
			name: "ragged rows",
			m:    ParseMap("111", "1.11", "111"),
			kind: ErrSizeMismatch,
		},
		{
			name: "empty grid",
			m:    NewMap(0, 0, nil),
			kind: ErrSizeMismatch,
		},
		{
			name: "unknown tile",
			m:    ParseMap("1111", "1.X1", "1111"),
			kind: ErrUnknownTileType,
			x:    2, y: 1,
		},
		{
			name: "floor on top edge",
			m:    ParseMap("1.11", "1..1", "1111"),
			kind: ErrOpenBorder,
			x:    1, y: 0,
		},
		{
			name: "floor on right edge",
			m:    ParseMap("1111", "1...", "1111"),
			kind: ErrOpenBorder,
			x:    3, y: 1,
		},
		{
			name: "unknown tile wins over later open border",
			m:    ParseMap("1111", "1Z.1", "11.1"),
			kind: ErrUnknownTileType,
			x:    1, y: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate(DefaultTileSet())
			if !errors.Is(err, tt.kind) {
				t.Fatalf("Expected %v, got %v", tt.kind, err)
			}
			var mapErr *MapError
			if !errors.As(err, &mapErr) {
				t.Fatalf("Expected *MapError, got %T", err)
			}
			if tt.kind != ErrSizeMismatch && (mapErr.X != tt.x || mapErr.Y != tt.y) {
				t.Errorf("Expected problem at (%d,%d), got (%d,%d)", tt.x, tt.y, mapErr.X, mapErr.Y)
			}
		})
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	maps := []*Map{
		DefaultMap(),
		ParseMap("111", "1.1", "111"),
		ParseMap("111", "..1", "111"),
		NewMap(2, 2, []byte("1")),
	}
	ts := DefaultTileSet()
	for i, m := range maps {
		first := m.Validate(ts)
		second := m.Validate(ts)
		if (first == nil) != (second == nil) || (first != nil && first.Error() != second.Error()) {
			t.Errorf("map %d: validation changed between runs: %v then %v", i, first, second)
		}
	}
}

// randomMap fills a grid with floor and the given walls
func randomMap(rng *rand.Rand, w, h int, alphabet string) *Map {
	payload := make([]byte, w*h)
	for i := range payload {
		payload[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return NewMap(w, h, payload)
}

func TestValidatedBordersAreWalls(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ts := DefaultTileSet()
	accepted := 0

	for i := 0; i < 2000; i++ {
		w, h := 2+rng.Intn(5), 2+rng.Intn(5)
		m := randomMap(rng, w, h, "1111235.")
		if m.Validate(ts) != nil {
			continue
		}
		accepted++
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if x != 0 && y != 0 && x != w-1 && y != h-1 {
					continue
				}
				if m.Tile(x, y).IsFloor() {
					t.Fatalf("Validated map has floor border at (%d,%d):\n%v", x, y, m)
				}
			}
		}
	}
	if accepted == 0 {
		t.Fatal("Generator produced no valid maps")
	}
}

func TestTileAtChecksBounds(t *testing.T) {
	m := ParseMap("123", "5.1", "111")

	if tile, ok := m.TileAt(1, 1); !ok || tile != Floor {
		t.Errorf("TileAt(1,1) = %q,%v; want floor", tile, ok)
	}
	if tile, ok := m.TileAt(0, 1); !ok || tile != '5' {
		t.Errorf("TileAt(0,1) = %q,%v; want '5'", tile, ok)
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if _, ok := m.TileAt(c[0], c[1]); ok {
			t.Errorf("TileAt(%d,%d) should be out of bounds", c[0], c[1])
		}
		if !m.IsTileBlocking(c[0], c[1]) {
			t.Errorf("Off-grid cell (%d,%d) should block", c[0], c[1])
		}
	}
	if m.IsTileBlocking(1, 1) {
		t.Error("Floor cell should not block")
	}
}

func TestTileAtOnShortPayload(t *testing.T) {
	m := NewMap(3, 3, []byte("1111"))
	if _, ok := m.TileAt(2, 2); ok {
		t.Error("TileAt past the payload should report false")
	}
}
