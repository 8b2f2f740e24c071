package tetris

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned by LockCells when a cell lies outside the board.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrCellOccupied is returned by LockCells when a cell is already filled.
	ErrCellOccupied = errors.New("cell already filled")
)

// ColorID identifies the color a locked cell was painted with.
// Zero is reserved for empty cells.
type ColorID uint8

// Cell is a single board square, either empty or filled with a color.
// The zero value is an empty cell.
type Cell struct {
	filled bool
	color  ColorID
}

// Empty is the empty cell.
var Empty = Cell{}

// Filled returns a cell filled with the given color.
func Filled(color ColorID) Cell {
	return Cell{filled: true, color: color}
}

// IsFilled reports whether the cell holds a locked block.
func (c Cell) IsFilled() bool {
	return c.filled
}

// Color returns the cell's color, or zero for an empty cell.
func (c Cell) Color() ColorID {
	return c.color
}

// Point is a board coordinate. Row 0 is the bottom row.
type Point struct {
	X, Y int
}

// LockedCell is a board coordinate paired with the color to write there.
type LockedCell struct {
	Point
	Color ColorID
}

// Grid is a fixed-size board of locked cells. Cells are stored row-major
// starting from the bottom row.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid grid size %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// IsOccupied reports whether (x, y) is filled. Coordinates outside the
// board count as occupied, so the board edges act as walls.
func (g *Grid) IsOccupied(x, y int) bool {
	if !g.inBounds(x, y) {
		return true
	}
	return g.cells[y*g.width+x].filled
}

// At returns the cell at (x, y). Out of bounds reads as Empty.
func (g *Grid) At(x, y int) Cell {
	if !g.inBounds(x, y) {
		return Empty
	}
	return g.cells[y*g.width+x]
}

// Set overwrites a single cell. It is meant for board setup and panics
// when the coordinate is outside the board.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.inBounds(x, y) {
		panic(fmt.Sprintf("set (%d,%d) on %dx%d grid", x, y, g.width, g.height))
	}
	g.cells[y*g.width+x] = c
}

// LockCells fills the four cells of a locked piece. Either all cells are
// written or none: when any target is out of bounds or already filled the
// grid is left untouched and the offending cell is reported.
func (g *Grid) LockCells(cells [4]LockedCell) error {
	for _, c := range cells {
		if !g.inBounds(c.X, c.Y) {
			return fmt.Errorf("lock (%d,%d): %w", c.X, c.Y, ErrOutOfBounds)
		}
		if g.cells[c.Y*g.width+c.X].filled {
			return fmt.Errorf("lock (%d,%d): %w", c.X, c.Y, ErrCellOccupied)
		}
	}

	for _, c := range cells {
		g.cells[c.Y*g.width+c.X] = Filled(c.Color)
	}
	return nil
}

func (g *Grid) rowFull(y int) bool {
	row := g.cells[y*g.width : (y+1)*g.width]
	for _, c := range row {
		if !c.filled {
			return false
		}
	}
	return true
}

// FullRows returns the indices of completely filled rows, bottom to top.
func (g *Grid) FullRows() []int {
	var rows []int
	for y := 0; y < g.height; y++ {
		if g.rowFull(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// ClearFullRows removes every full row and compacts the board. The set of
// full rows is taken from a single snapshot before anything moves; each
// surviving row drops by the number of cleared rows beneath it and the
// rows exposed at the top are emptied. Returns the number of rows removed.
func (g *Grid) ClearFullRows() int {
	full := make([]bool, g.height)
	cleared := 0
	for y := 0; y < g.height; y++ {
		if g.rowFull(y) {
			full[y] = true
			cleared++
		}
	}

	if cleared == 0 {
		return 0
	}

	writeY := 0
	for readY := 0; readY < g.height; readY++ {
		if full[readY] {
			continue
		}
		if writeY != readY {
			copy(g.cells[writeY*g.width:(writeY+1)*g.width], g.cells[readY*g.width:(readY+1)*g.width])
		}
		writeY++
	}

	clear(g.cells[writeY*g.width:])
	return cleared
}

// Snapshot returns a deep copy of the board indexed [y][x].
func (g *Grid) Snapshot() [][]Cell {
	rows := make([][]Cell, g.height)
	for y := range rows {
		rows[y] = make([]Cell, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return rows
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// FilledCount returns the number of filled cells on the board.
func (g *Grid) FilledCount() int {
	n := 0
	for _, c := range g.cells {
		if c.filled {
			n++
		}
	}
	return n
}
