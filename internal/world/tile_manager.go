package world

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Variant describes one registered wall tile
type Variant struct {
	Letter     string `yaml:"letter"`      // Single byte used in map files
	Name       string `yaml:"name"`        // Display name
	AtlasIndex int    `yaml:"atlas_index"` // Row-major cell in the texture atlas
	Light      bool   `yaml:"light"`       // Brightens nearby walls
}

// TileConfig is the YAML layout of a tile registry file
type TileConfig struct {
	Tiles map[string]Variant `yaml:"tiles"`
}

// TileSet maps wall bytes to their variants. It is read-only once built.
type TileSet struct {
	variants map[Tile]Variant
}

// DefaultTileSet returns the built-in registry: plain wall, bush, door and lamp
func DefaultTileSet() *TileSet {
	ts := &TileSet{variants: make(map[Tile]Variant)}
	for _, v := range []Variant{
		{Letter: "1", Name: "Wall", AtlasIndex: 0},
		{Letter: "2", Name: "Bush", AtlasIndex: 1},
		{Letter: "3", Name: "Door", AtlasIndex: 2},
		{Letter: "5", Name: "Lamp", AtlasIndex: 3, Light: true},
	} {
		ts.variants[Tile(v.Letter[0])] = v
	}
	return ts
}

// LoadTileSet loads a tile registry from a YAML file
func LoadTileSet(filename string) (*TileSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tile config file: %w", err)
	}
	ts, err := ParseTileSet(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tile config %s: %w", filename, err)
	}
	return ts, nil
}

// ParseTileSet decodes a registry from YAML
func ParseTileSet(data []byte) (*TileSet, error) {
	var tileConfig TileConfig
	if err := yaml.Unmarshal(data, &tileConfig); err != nil {
		return nil, err
	}
	if len(tileConfig.Tiles) == 0 {
		return nil, fmt.Errorf("no tiles defined")
	}

	ts := &TileSet{variants: make(map[Tile]Variant, len(tileConfig.Tiles))}
	for key, v := range tileConfig.Tiles {
		if len(v.Letter) != 1 {
			return nil, fmt.Errorf("tile %q: letter must be a single byte, got %q", key, v.Letter)
		}
		t := Tile(v.Letter[0])
		if t == Floor {
			return nil, fmt.Errorf("tile %q: %q is reserved for floor", key, v.Letter)
		}
		if prev, dup := ts.variants[t]; dup {
			return nil, fmt.Errorf("tile %q: letter %q already used by %q", key, v.Letter, prev.Name)
		}
		if v.AtlasIndex < 0 {
			return nil, fmt.Errorf("tile %q: negative atlas_index %d", key, v.AtlasIndex)
		}
		if v.Name == "" {
			v.Name = key
		}
		ts.variants[t] = v
	}
	return ts, nil
}

// Variant returns the registry entry for t
func (ts *TileSet) Variant(t Tile) (Variant, bool) {
	v, ok := ts.variants[t]
	return v, ok
}

// IsWall reports whether t is a registered wall variant
func (ts *TileSet) IsWall(t Tile) bool {
	_, ok := ts.variants[t]
	return ok
}

func (ts *TileSet) IsLight(t Tile) bool {
	return ts.variants[t].Light
}

// AtlasIndex returns the atlas cell of t, or 0 for unregistered tiles
func (ts *TileSet) AtlasIndex(t Tile) int {
	return ts.variants[t].AtlasIndex
}

// MaxAtlasIndex is the highest atlas cell any variant refers to
func (ts *TileSet) MaxAtlasIndex() int {
	highest := 0
	for _, v := range ts.variants {
		if v.AtlasIndex > highest {
			highest = v.AtlasIndex
		}
	}
	return highest
}

// Tiles lists the registered wall bytes in ascending order
func (ts *TileSet) Tiles() []Tile {
	tiles := make([]Tile, 0, len(ts.variants))
	for t := range ts.variants {
		tiles = append(tiles, t)
	}
	sort.Slice(tiles, func(i, j int) bool { return tiles[i] < tiles[j] })
	return tiles
}
