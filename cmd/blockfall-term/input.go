package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/tetris"
)

// action is a non-game key binding.
type action uint8

const (
	actionNone action = iota
	actionQuit
	actionPause
	actionRestart
)

// translate maps a key event to a game command or a frontend action.
// Terminals report auto-repeat as repeated key events, so every event maps
// to at most one command.
func translate(ev *tcell.EventKey) (tetris.Command, action, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 0, actionQuit, false
	case tcell.KeyLeft:
		return tetris.MoveLeft, actionNone, true
	case tcell.KeyRight:
		return tetris.MoveRight, actionNone, true
	case tcell.KeyDown:
		return tetris.SoftDrop, actionNone, true
	case tcell.KeyUp:
		return tetris.RotateCW, actionNone, true
	case tcell.KeyRune:
	default:
		return 0, actionNone, false
	}

	switch ev.Rune() {
	case 'h', 'a':
		return tetris.MoveLeft, actionNone, true
	case 'l', 'd':
		return tetris.MoveRight, actionNone, true
	case 'j', 's':
		return tetris.SoftDrop, actionNone, true
	case 'k', 'x', 'w':
		return tetris.RotateCW, actionNone, true
	case 'z':
		return tetris.RotateCCW, actionNone, true
	case ' ':
		return tetris.HardDrop, actionNone, true
	case 'p':
		return 0, actionPause, false
	case 'r':
		return 0, actionRestart, false
	case 'q':
		return 0, actionQuit, false
	}
	return 0, actionNone, false
}
