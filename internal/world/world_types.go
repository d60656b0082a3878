package world

// Tile is one cell of the map, stored as the byte that spells it in a map file
type Tile byte

// Floor is the only walkable, see-through tile. Every other byte on a valid
// map is a registered wall variant.
const Floor Tile = '.'

func (t Tile) IsFloor() bool {
	return t == Floor
}

func (t Tile) String() string {
	return string(rune(t))
}
