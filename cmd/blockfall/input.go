package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

const (
	repeatDelay  = 170 * time.Millisecond
	repeatRate   = 50 * time.Millisecond
	softDropRate = 40 * time.Millisecond
)

// InputStage turns keyboard state into queued game commands.
type InputStage struct {
	Session *session.Session
	UI      *debugui.ImguiInputState

	left, right, down session.Repeater
}

func NewInputStage(sess *session.Session) *InputStage {
	return &InputStage{
		Session: sess,
		left:    session.Repeater{Delay: repeatDelay, Rate: repeatRate},
		right:   session.Repeater{Delay: repeatDelay, Rate: repeatRate},
		down:    session.Repeater{Rate: softDropRate},
	}
}

type heldKey struct {
	keys     []ebiten.Key
	repeater *session.Repeater
	command  tetris.Command
}

func (s *InputStage) Execute(frame *loop.Frame) {
	if s.UI != nil && s.UI.WantCaptureKeyboard {
		return
	}

	held := []heldKey{
		{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, repeater: &s.left, command: tetris.MoveLeft},
		{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, repeater: &s.right, command: tetris.MoveRight},
		{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, repeater: &s.down, command: tetris.SoftDrop},
	}
	for _, h := range held {
		fires := h.repeater.Update(justPressed(h.keys...), pressed(h.keys...), frame.DeltaTime)
		for i := 0; i < fires; i++ {
			s.Session.Queue(h.command)
		}
	}

	if justPressed(ebiten.KeyArrowUp, ebiten.KeyX, ebiten.KeyW) {
		s.Session.Queue(tetris.RotateCW)
	}
	if justPressed(ebiten.KeyZ, ebiten.KeyControlLeft) {
		s.Session.Queue(tetris.RotateCCW)
	}
	if justPressed(ebiten.KeySpace) {
		s.Session.Queue(tetris.HardDrop)
	}

	if justPressed(ebiten.KeyP) {
		s.Session.Paused = !s.Session.Paused
	}
	if justPressed(ebiten.KeyR) {
		s.Session.Restart(uint64(time.Now().UnixNano()))
	}
}

func justPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func pressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
