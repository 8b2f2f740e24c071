package session

import (
	"image/color"

	"github.com/plus3/blockfall/tetris"
)

var palette = [tetris.KindCount + 1]color.RGBA{
	{40, 40, 40, 255},    // empty
	{102, 191, 255, 255}, // I
	{0, 121, 241, 255},   // J
	{255, 161, 0, 255},   // L
	{255, 203, 0, 255},   // O
	{135, 60, 190, 255},  // T
	{0, 158, 47, 255},    // S
	{230, 41, 55, 255},   // Z
}

// Color maps a cell color to its display color. Unknown ids render as empty.
func Color(id tetris.ColorID) color.RGBA {
	if int(id) >= len(palette) {
		return palette[0]
	}
	return palette[id]
}

// GhostColor is the translucent landing preview for id.
func GhostColor(id tetris.ColorID) color.RGBA {
	c := Color(id)
	return color.RGBA{c.R / 3, c.G / 3, c.B / 3, 120}
}
