// Package tetris implements a deterministic falling-block puzzle core.
//
// A Game owns a fixed-size Grid of locked cells and at most one falling
// Piece. Callers drive it with Tick for elapsed time and Apply for player
// commands, and read the board back through Snapshot, ActivePiece and
// Phase for rendering. Nothing in the package renders, reads input or
// starts goroutines.
//
// Coordinates have row 0 at the bottom of the board and y growing upward.
// Cells outside the board count as occupied, so the walls and floor need
// no special handling.
package tetris
