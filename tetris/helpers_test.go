package tetris_test

import (
	"fmt"
	"strings"

	"github.com/plus3/blockfall/tetris"
)

// gridFrom builds a grid whose bottom rows are drawn by rows, listed top to
// bottom so the last string is row 0. '.' is empty; a kind letter fills the
// cell with that kind's color; any other character uses color 1.
func gridFrom(width, height int, rows ...string) *tetris.Grid {
	g := tetris.NewGrid(width, height)
	for i, row := range rows {
		y := len(rows) - 1 - i
		if len(row) != width {
			panic(fmt.Sprintf("row %d has %d columns, want %d", y, len(row), width))
		}
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			g.Set(x, y, tetris.Filled(colorFor(ch)))
		}
	}
	return g
}

func colorFor(ch rune) tetris.ColorID {
	for _, k := range tetris.Kinds {
		if k.String() == string(ch) {
			return k.Color()
		}
	}
	return 1
}

// drawGrid renders the bottom n rows of a grid in the same format gridFrom
// accepts, with '#' for every filled cell.
func drawGrid(g *tetris.Grid, n int) []string {
	rows := make([]string, 0, n)
	for y := n - 1; y >= 0; y-- {
		var b strings.Builder
		for x := 0; x < g.Width(); x++ {
			if g.At(x, y).IsFilled() {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		rows = append(rows, b.String())
	}
	return rows
}

func pointSet(cells [4]tetris.Point) map[tetris.Point]bool {
	set := make(map[tetris.Point]bool, len(cells))
	for _, c := range cells {
		set[c] = true
	}
	return set
}
