package world

// Map is a rectangular tile grid. It never changes after construction, so
// one Map may be shared by any number of readers.
type Map struct {
	width  int
	height int
	tiles  []Tile
}

// NewMap builds a map from a row-major payload. The payload is copied and
// not checked here; call Validate before rendering or moving on the map.
func NewMap(width, height int, payload []byte) *Map {
	tiles := make([]Tile, len(payload))
	for i, b := range payload {
		tiles[i] = Tile(b)
	}
	return &Map{width: width, height: height, tiles: tiles}
}

// ParseMap builds a map from equal-length rows
func ParseMap(rows ...string) *Map {
	width := 0
	if len(rows) > 0 {
		width = len(rows[0])
	}
	var payload []byte
	for _, row := range rows {
		payload = append(payload, row...)
	}
	return NewMap(width, len(rows), payload)
}

func (m *Map) Width() int {
	return m.width
}

func (m *Map) Height() int {
	return m.height
}

// Tile returns the tile at (x, y). The caller guarantees 0 <= x < Width and
// 0 <= y < Height; Validate plus a closed border make this hold for any cell
// a ray can reach from a floor position.
func (m *Map) Tile(x, y int) Tile {
	return m.tiles[y*m.width+x]
}

// TileAt is the bounds-checked form of Tile
func (m *Map) TileAt(x, y int) (Tile, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	i := y*m.width + x
	if i >= len(m.tiles) {
		return 0, false
	}
	return m.tiles[i], true
}

func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// IsTileBlocking reports whether (x, y) stops movement. Cells off the grid
// block.
func (m *Map) IsTileBlocking(x, y int) bool {
	t, ok := m.TileAt(x, y)
	return !ok || !t.IsFloor()
}

// GetWorldBounds returns the grid size in tiles
func (m *Map) GetWorldBounds() (width, height int) {
	return m.width, m.height
}
