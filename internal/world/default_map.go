package world

const (
	defaultMapWidth  = 32
	defaultMapHeight = 32
)

var defaultRows = []string{
	"11111111111111111111111111111111",
	"1.1..1..3..3..1..11.1.11..11.1.1",
	"1.1.11.11..11.1..1..1..1..1..1.1",
	"1111.......1..1.111...111.1..1.1",
	"1.1.11..11.1..11.1....11.1111111",
	"1111111.1.111.1.....11....1..1.1",
	"1111....11.1..1..1..1..1..1..1.1",
	"1.1..1.....1..1.111111...121.1.1",
	"1.1.....11......11111.113.11...1",
	"1.1..1..1..11.1..1.111.1.....111",
	"1.1..1.121....1.111112111......1",
	"1112...11..11.1..1....11..11.1.1",
	"1....1.....1.111.......1..1..111",
	"1.1..1.11.111...11..11...11.1111",
	"1.1..1..1........1..1.......1111",
	"1.1..11.2..1..1..11....2.....111",
	"1....1.111.1..1.....1..1.111.1.1",
	"1.1..11.1.111.1..11.1..1..1..1.1",
	"1.1.....1.111.1.111.1.111....2.1",
	"1.1.11.111111....11...111...1111",
	"1.1..1.111111.1..1..1..1..1....1",
	"1.3..1.111.1..1.111.1..1....2111",
	"1111...111.31....1.111.1.111.111",
	"1.1.....1.......11.111.1..1.1111",
	"1.1..1.111...111.1.1111131111111",
	"1111111....11....1....111.1....1",
	"1.3..1.....11.1.....1..1..1..1.1",
	"1....11...111111......111.1..1.1",
	"1.1.111...121....11....1..11.1.1",
	"1....11.1..1..1........1.......1",
	"1111111.1....111...22.111....1.1",
	"11111111111111111111111111111111",
}

// DefaultMap returns the built-in 32x32 level. The start position
// (15.5, 16.5) is a floor cell.
func DefaultMap() *Map {
	m := ParseMap(defaultRows...)
	if m.Width() != defaultMapWidth || m.Height() != defaultMapHeight {
		panic("world: built-in map has wrong dimensions")
	}
	return m
}
