package types

// GridUnit is the edge length of one board cell. Every cell coordinate
// is a multiple of it.
const GridUnit = 10

// Default board dimensions
const (
	DefaultBoardWidth  = 1240
	DefaultBoardHeight = 600
)

// Cell is a grid-aligned position on the board.
type Cell struct {
	X, Y int
}

// Direction is a movement delta of one grid unit. The zero value means
// "no direction".
type Direction struct {
	DX, DY int
}

var (
	DirUp    = Direction{0, -GridUnit}
	DirDown  = Direction{0, GridUnit}
	DirLeft  = Direction{-GridUnit, 0}
	DirRight = Direction{GridUnit, 0}
)

func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// OppositeOf reports whether d points exactly the other way from o.
func (d Direction) OppositeOf(o Direction) bool {
	return !o.IsZero() && d.DX == -o.DX && d.DY == -o.DY
}

func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Align snaps a coordinate down to the grid.
func Align(v int) int {
	return v / GridUnit * GridUnit
}

type Color struct {
	R, G, B uint8
}

// Board represents the playable area. Valid cells lie in
// [0,Width) x [0,Height).
type Board struct {
	Width  int
	Height int
}

func (b Board) Contains(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}
