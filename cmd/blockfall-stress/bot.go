package main

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

var botCommands = [...]tetris.Command{
	tetris.MoveLeft, tetris.MoveLeft,
	tetris.MoveRight, tetris.MoveRight,
	tetris.RotateCW, tetris.RotateCCW,
	tetris.SoftDrop, tetris.SoftDrop,
	tetris.HardDrop,
}

// Bot queues random commands each frame and picks a random frame time.
type Bot struct {
	Session *session.Session
	rng     *rand.Rand
}

func NewBot(sess *session.Session, seed uint64) *Bot {
	return &Bot{
		Session: sess,
		rng:     rand.New(rand.NewPCG(seed, seed^0x5bd1e995)),
	}
}

func (b *Bot) Execute(frame *loop.Frame) {
	for n := b.rng.IntN(4); n > 0; n-- {
		b.Session.Queue(botCommands[b.rng.IntN(len(botCommands))])
	}
}

// FrameTime returns a random delta between zero and twice the fall interval.
func (b *Bot) FrameTime() time.Duration {
	return time.Duration(b.rng.Int64N(int64(2*b.Session.Game.FallInterval()) + 1))
}
