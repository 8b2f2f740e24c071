package tetris

import "fmt"

// IsLegal reports whether every cell of the piece lies on an empty,
// in-bounds square of the grid.
func IsLegal(p Piece, g *Grid) bool {
	for _, c := range p.AbsoluteCells() {
		if g.IsOccupied(c.X, c.Y) {
			return false
		}
	}
	return true
}

// KickPolicy supplies the anchor offsets tried, in order, when rotating a
// piece from one orientation to another. The first offset that yields a
// legal placement wins. Returning only the zero offset disables kicks.
type KickPolicy interface {
	Kicks(kind Kind, from, to Rotation) []Point
	Name() string
}

var naiveKick = []Point{{0, 0}}

type noKicks struct{}

func (noKicks) Kicks(Kind, Rotation, Rotation) []Point { return naiveKick }
func (noKicks) Name() string                           { return "none" }

type simpleKicks struct{}

var (
	simpleKickTable  = []Point{{0, 0}, {-1, 0}, {1, 0}, {0, 1}}
	simpleKickTableI = []Point{{0, 0}, {-1, 0}, {1, 0}, {0, 1}, {-2, 0}, {2, 0}}
)

func (simpleKicks) Kicks(kind Kind, _, _ Rotation) []Point {
	if kind == I {
		return simpleKickTableI
	}
	return simpleKickTable
}

func (simpleKicks) Name() string { return "simple" }

type srsKicks struct{}

// SRS wall kick data, y up, indexed by the starting rotation. The
// clockwise table is read as-is; counter-clockwise rotations use the
// negated clockwise entry of the target rotation.
var (
	srsKicksJLSTZ = [4][5]Point{
		R0:   {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
		R90:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
		R180: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
		R270: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	}
	srsKicksI = [4][5]Point{
		R0:   {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}},
		R90:  {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
		R180: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
		R270: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	}
)

func (srsKicks) Kicks(kind Kind, from, to Rotation) []Point {
	if kind == O {
		return naiveKick
	}

	table := &srsKicksJLSTZ
	if kind == I {
		table = &srsKicksI
	}

	if to == from.Turn(CW) {
		row := table[from%4]
		return row[:]
	}

	// from -> to counter-clockwise undoes to -> from clockwise.
	row := table[to%4]
	out := make([]Point, len(row))
	for i, p := range row {
		out[i] = Point{X: -p.X, Y: -p.Y}
	}
	return out
}

func (srsKicks) Name() string { return "srs" }

var (
	// KicksNone only tries the naive rotated placement.
	KicksNone KickPolicy = noKicks{}
	// KicksSimple tries the naive placement, then one cell left, right and
	// up. The I piece additionally tries two cells left and right.
	KicksSimple KickPolicy = simpleKicks{}
	// KicksSRS uses the Super Rotation System wall kick tables.
	KicksSRS KickPolicy = srsKicks{}
)

// ParseKicks returns the kick policy registered under name.
func ParseKicks(name string) (KickPolicy, error) {
	for _, k := range []KickPolicy{KicksNone, KicksSimple, KicksSRS} {
		if k.Name() == name {
			return k, nil
		}
	}
	return nil, fmt.Errorf("unknown kick policy %q", name)
}

// Resolver validates candidate placements before the game commits them.
type Resolver struct {
	Kicks KickPolicy
}

// NewResolver creates a resolver with the given kick policy. A nil policy
// disables kicks.
func NewResolver(kicks KickPolicy) *Resolver {
	if kicks == nil {
		kicks = KicksNone
	}
	return &Resolver{Kicks: kicks}
}

// IsLegal reports whether the piece fits on the grid.
func (r *Resolver) IsLegal(p Piece, g *Grid) bool {
	return IsLegal(p, g)
}

// Translate returns the shifted piece if the new placement is legal.
func (r *Resolver) Translate(p Piece, dx, dy int, g *Grid) (Piece, bool) {
	moved := p.Translated(dx, dy)
	if !IsLegal(moved, g) {
		return p, false
	}
	return moved, true
}

// Rotate turns the piece one step in dir, trying each kick offset in turn.
// On failure the original piece is returned with false.
func (r *Resolver) Rotate(p Piece, dir Direction, g *Grid) (Piece, bool) {
	rotated := p.Rotated(dir)
	for _, kick := range r.Kicks.Kicks(p.Kind, p.Rotation, rotated.Rotation) {
		candidate := rotated.Translated(kick.X, kick.Y)
		if IsLegal(candidate, g) {
			return candidate, true
		}
	}
	return p, false
}

// DropDistance returns how many rows the piece can fall before resting.
func (r *Resolver) DropDistance(p Piece, g *Grid) int {
	n := 0
	for IsLegal(p.Translated(0, -(n+1)), g) {
		n++
	}
	return n
}
