package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/loop"
	"go.uber.org/zap"
)

// Terminal runs a session on a tcell screen.
type Terminal struct {
	Screen  tcell.Screen
	Session *session.Session

	events chan tcell.Event
	cancel context.CancelFunc
	log    *zap.Logger
}

func NewTerminal(screen tcell.Screen, sess *session.Session, logger *zap.Logger) *Terminal {
	return &Terminal{
		Screen:  screen,
		Session: sess,
		events:  make(chan tcell.Event, 100),
		log:     logger,
	}
}

// Run polls terminal events on a separate goroutine and drives the frame
// stages at the given interval until the player quits or ctx ends.
func (t *Terminal) Run(ctx context.Context, interval time.Duration) {
	ctx, t.cancel = context.WithCancel(ctx)
	defer t.cancel()

	go func() {
		for {
			ev := t.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case t.events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	scheduler := loop.NewScheduler()
	scheduler.RegisterNamed("input", loop.StageFunc(t.input))
	scheduler.RegisterNamed("session", t.Session)
	scheduler.RegisterNamed("draw", loop.StageFunc(t.draw))
	scheduler.Run(ctx, interval)

	stats := scheduler.GetStats()
	for _, stage := range stats.Stages {
		t.log.Debug("stage stats",
			zap.String("stage", stage.Name),
			zap.Int64("runs", stage.ExecutionCount),
			zap.Duration("avg", stage.AvgDuration),
			zap.Duration("max", stage.MaxDuration),
		)
	}
}

func (t *Terminal) input(frame *loop.Frame) {
	for {
		select {
		case ev := <-t.events:
			t.handle(ev)
		default:
			return
		}
	}
}

func (t *Terminal) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		cmd, act, ok := translate(ev)
		if ok {
			t.Session.Queue(cmd)
			return
		}
		switch act {
		case actionQuit:
			t.log.Info("quit")
			t.cancel()
		case actionPause:
			t.Session.Paused = !t.Session.Paused
		case actionRestart:
			t.Session.Restart(uint64(time.Now().UnixNano()))
		}
	case *tcell.EventResize:
		t.Screen.Sync()
	}
}

func (t *Terminal) draw(frame *loop.Frame) {
	draw(t.Screen, t.Session)
	t.Screen.Show()
}
