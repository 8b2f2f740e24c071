package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/tetris"
)

const (
	boardX = 1
	boardY = 1
)

var (
	frameStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	emptyStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	alertStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

func tileColor(id tetris.ColorID) tcell.Color {
	c := session.Color(id)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellPos maps a board cell to the left of its two screen columns.
func cellPos(game *tetris.Game, x, y int) (int, int) {
	return boardX + 1 + x*2, boardY + game.Height() - y
}

// draw renders the board and sidebar. It does not call Show.
func draw(screen tcell.Screen, sess *session.Session) {
	screen.Clear()
	game := sess.Game
	w, h := game.Width(), game.Height()

	right := boardX + 1 + w*2
	bottom := boardY + h + 1
	for y := boardY; y <= bottom; y++ {
		screen.SetContent(boardX, y, '│', nil, frameStyle)
		screen.SetContent(right, y, '│', nil, frameStyle)
	}
	for x := boardX; x <= right; x++ {
		screen.SetContent(x, bottom, '─', nil, frameStyle)
	}
	screen.SetContent(boardX, bottom, '└', nil, frameStyle)
	screen.SetContent(right, bottom, '┘', nil, frameStyle)

	for y, row := range session.Compose(game) {
		for x, tile := range row {
			sx, sy := cellPos(game, x, y)
			switch tile.Kind {
			case session.TileEmpty:
				screen.SetContent(sx, sy, ' ', nil, emptyStyle)
				screen.SetContent(sx+1, sy, '.', nil, emptyStyle)
			case session.TileGhost:
				style := tcell.StyleDefault.Foreground(tileColor(tile.Color))
				screen.SetContent(sx, sy, '░', nil, style)
				screen.SetContent(sx+1, sy, '░', nil, style)
			default:
				style := tcell.StyleDefault.Foreground(tileColor(tile.Color))
				screen.SetContent(sx, sy, '█', nil, style)
				screen.SetContent(sx+1, sy, '█', nil, style)
			}
		}
	}

	sideX := right + 3
	progress := sess.Progress
	drawText(screen, sideX, boardY, textStyle, fmt.Sprintf("Score %d", progress.Score))
	drawText(screen, sideX, boardY+1, textStyle, fmt.Sprintf("Level %d", progress.Level))
	drawText(screen, sideX, boardY+2, textStyle, fmt.Sprintf("Lines %d", progress.Lines))

	drawText(screen, sideX, boardY+4, textStyle, "Next")
	for i, kind := range game.Preview(3) {
		drawPreview(screen, sideX, boardY+6+i*3, kind)
	}

	switch {
	case game.Phase() == tetris.GameOver:
		drawText(screen, sideX, boardY+16, alertStyle, "GAME OVER")
		drawText(screen, sideX, boardY+17, textStyle, "r restart, q quit")
	case sess.Paused:
		drawText(screen, sideX, boardY+16, alertStyle, "PAUSED")
	}
}

func drawPreview(screen tcell.Screen, x, y int, kind tetris.Kind) {
	style := tcell.StyleDefault.Foreground(tileColor(kind.Color()))
	for _, off := range tetris.Offsets(kind, tetris.R0) {
		sx := x + (off.X+1)*2
		sy := y + 1 - off.Y
		screen.SetContent(sx, sy, '█', nil, style)
		screen.SetContent(sx+1, sy, '█', nil, style)
	}
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
