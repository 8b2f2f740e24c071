package main

import (
	"fmt"
	"hash/fnv"

	"github.com/plus3/blockfall/tetris"
)

// checkInvariants returns a description of every rule the game currently
// breaks. It is called between frames.
func checkInvariants(game *tetris.Game) []string {
	var broken []string

	snap := game.Snapshot()
	for y, row := range snap {
		full := true
		for _, cell := range row {
			full = full && cell.IsFilled()
		}
		if full {
			broken = append(broken, fmt.Sprintf("row %d is full between frames", y))
		}
	}

	piece, ok := game.ActivePiece()
	switch game.Phase() {
	case tetris.Active, tetris.Locking:
		if !ok {
			broken = append(broken, fmt.Sprintf("phase %s without an active piece", game.Phase()))
			break
		}
		for _, c := range piece.AbsoluteCells() {
			if c.X < 0 || c.X >= game.Width() || c.Y < 0 || c.Y >= game.Height() {
				broken = append(broken, fmt.Sprintf("piece %s out of bounds at %v", piece, c))
			} else if snap[c.Y][c.X].IsFilled() {
				broken = append(broken, fmt.Sprintf("piece %s overlaps locked cell %v", piece, c))
			}
		}
	case tetris.Clearing:
		broken = append(broken, "clearing phase observed between frames")
	default:
		if ok {
			broken = append(broken, fmt.Sprintf("phase %s with active piece %s", game.Phase(), piece))
		}
	}

	stats := game.Stats()
	lines := 0
	for size, n := range stats.ClearsBySize {
		lines += size * n
	}
	if lines != stats.Lines {
		broken = append(broken, fmt.Sprintf("clears by size add up to %d lines, counted %d", lines, stats.Lines))
	}

	return broken
}

// fingerprint hashes the board and counters so two runs of the same seed
// can be compared.
func fingerprint(game *tetris.Game) uint64 {
	h := fnv.New64a()
	for _, row := range game.Snapshot() {
		for _, cell := range row {
			h.Write([]byte{byte(cell.Color())})
		}
	}
	fmt.Fprintf(h, "%+v|%s", game.Stats(), game.Phase())
	return h.Sum64()
}
