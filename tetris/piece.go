package tetris

import "fmt"

// Kind is one of the seven tetromino shapes.
type Kind uint8

const (
	I Kind = iota
	J
	L
	O
	T
	S
	Z
)

// KindCount is the number of distinct tetromino kinds.
const KindCount = 7

// Kinds lists every kind in table order.
var Kinds = [KindCount]Kind{I, J, L, O, T, S, Z}

var kindNames = [KindCount]string{"I", "J", "L", "O", "T", "S", "Z"}

func (k Kind) String() string {
	if int(k) < KindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Color returns the color a locked cell of this kind is painted with.
func (k Kind) Color() ColorID {
	return ColorID(k) + 1
}

// KindOf maps a cell color back to the kind that produced it.
func KindOf(c ColorID) (Kind, bool) {
	if c == 0 || int(c) > KindCount {
		return 0, false
	}
	return Kind(c - 1), true
}

// Rotation is the orientation of a piece in quarter turns clockwise from spawn.
type Rotation uint8

const (
	R0 Rotation = iota
	R90
	R180
	R270
)

func (r Rotation) String() string {
	return fmt.Sprintf("R%d", int(r%4)*90)
}

// Direction is a rotation direction.
type Direction int8

const (
	CW  Direction = 1
	CCW Direction = -1
)

// Turn returns the rotation one quarter turn away in the given direction.
func (r Rotation) Turn(dir Direction) Rotation {
	return Rotation((int(r) + int(dir) + 4) % 4)
}

// offsets holds the four cells of every kind and rotation, relative to the
// piece anchor, with y pointing up. The states follow the Super Rotation
// System: JLSTZ turn about the anchor cell, I turns inside a fixed 4x4 box
// anchored at box cell (1,2), O never changes.
var offsets = [KindCount][4][4]Point{
	I: {
		{{-1, 0}, {0, 0}, {1, 0}, {2, 0}},
		{{1, 1}, {1, 0}, {1, -1}, {1, -2}},
		{{-1, -1}, {0, -1}, {1, -1}, {2, -1}},
		{{0, 1}, {0, 0}, {0, -1}, {0, -2}},
	},
	J: {
		{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		{{1, 1}, {0, 1}, {0, 0}, {0, -1}},
		{{1, -1}, {1, 0}, {0, 0}, {-1, 0}},
		{{-1, -1}, {0, -1}, {0, 0}, {0, 1}},
	},
	L: {
		{{1, 1}, {-1, 0}, {0, 0}, {1, 0}},
		{{1, -1}, {0, 1}, {0, 0}, {0, -1}},
		{{-1, -1}, {1, 0}, {0, 0}, {-1, 0}},
		{{-1, 1}, {0, -1}, {0, 0}, {0, 1}},
	},
	O: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	T: {
		{{-1, 0}, {0, 0}, {1, 0}, {0, 1}},
		{{0, 1}, {0, 0}, {0, -1}, {1, 0}},
		{{1, 0}, {0, 0}, {-1, 0}, {0, -1}},
		{{0, -1}, {0, 0}, {0, 1}, {-1, 0}},
	},
	S: {
		{{0, 1}, {1, 1}, {-1, 0}, {0, 0}},
		{{1, 0}, {1, -1}, {0, 1}, {0, 0}},
		{{0, -1}, {-1, -1}, {1, 0}, {0, 0}},
		{{-1, 0}, {-1, 1}, {0, -1}, {0, 0}},
	},
	Z: {
		{{-1, 1}, {0, 1}, {0, 0}, {1, 0}},
		{{1, 1}, {1, 0}, {0, 0}, {0, -1}},
		{{1, -1}, {0, -1}, {0, 0}, {-1, 0}},
		{{-1, -1}, {-1, 0}, {0, 0}, {0, 1}},
	},
}

// Offsets returns the anchor-relative cells of a kind in a rotation.
func Offsets(k Kind, r Rotation) [4]Point {
	return offsets[k][r%4]
}

// Piece is a tetromino placed on the board. Its cells are derived from the
// offset table on demand.
type Piece struct {
	Kind     Kind
	Rotation Rotation
	Anchor   Point
}

// NewPiece returns a piece of the given kind in spawn orientation.
func NewPiece(kind Kind, anchor Point) Piece {
	return Piece{Kind: kind, Rotation: R0, Anchor: anchor}
}

// AbsoluteCells returns the board coordinates covered by the piece.
func (p Piece) AbsoluteCells() [4]Point {
	cells := offsets[p.Kind][p.Rotation%4]
	for i := range cells {
		cells[i].X += p.Anchor.X
		cells[i].Y += p.Anchor.Y
	}
	return cells
}

// Rotated returns a copy of the piece turned one quarter in dir.
func (p Piece) Rotated(dir Direction) Piece {
	p.Rotation = p.Rotation.Turn(dir)
	return p
}

// Translated returns a copy of the piece with its anchor shifted.
func (p Piece) Translated(dx, dy int) Piece {
	p.Anchor.X += dx
	p.Anchor.Y += dy
	return p
}

// lockedCells pairs the absolute cells with the kind's color.
func (p Piece) lockedCells() [4]LockedCell {
	var out [4]LockedCell
	color := p.Kind.Color()
	for i, c := range p.AbsoluteCells() {
		out[i] = LockedCell{Point: c, Color: color}
	}
	return out
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@(%d,%d)/%s", p.Kind, p.Anchor.X, p.Anchor.Y, p.Rotation)
}
