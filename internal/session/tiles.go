package session

import "github.com/plus3/blockfall/tetris"

// TileKind says what occupies a board position when drawing.
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileLocked
	TileGhost
	TileActive
)

// Tile is one drawable board position.
type Tile struct {
	Kind  TileKind
	Color tetris.ColorID
}

// Compose layers the ghost and the active piece over the locked cells and
// returns the board indexed [y][x], row 0 at the bottom.
func Compose(g *tetris.Game) [][]Tile {
	snap := g.Snapshot()
	tiles := make([][]Tile, len(snap))
	for y, row := range snap {
		tiles[y] = make([]Tile, len(row))
		for x, cell := range row {
			if cell.IsFilled() {
				tiles[y][x] = Tile{Kind: TileLocked, Color: cell.Color()}
			}
		}
	}

	put := func(p tetris.Piece, kind TileKind) {
		for _, c := range p.AbsoluteCells() {
			if c.Y >= 0 && c.Y < len(tiles) && c.X >= 0 && c.X < len(tiles[c.Y]) {
				tiles[c.Y][c.X] = Tile{Kind: kind, Color: p.Kind.Color()}
			}
		}
	}
	if ghost, ok := g.Ghost(); ok {
		put(ghost, TileGhost)
	}
	if piece, ok := g.ActivePiece(); ok {
		put(piece, TileActive)
	}
	return tiles
}
