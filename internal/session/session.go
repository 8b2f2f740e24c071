// Package session wraps a game with the pieces every frontend shares:
// queued input, score and level progression, pausing and restarting.
package session

import (
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

// Session owns a game and drives it as a loop stage.
type Session struct {
	Game     *tetris.Game
	Progress Progress
	Paused   bool

	base    time.Duration
	pending []tetris.Command
	onEvent func(tetris.Event)
	log     *zap.Logger
}

// New starts a game from cfg. onEvent, if non-nil, sees every game event
// after the session has updated its progress.
func New(cfg tetris.Config, onEvent func(tetris.Event)) (*Session, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	s := &Session{
		Progress: NewProgress(),
		base:     cfg.FallInterval,
		onEvent:  onEvent,
		log:      cfg.Logger.Named("session"),
	}

	forward := cfg.Listener
	cfg.Listener = func(e tetris.Event) {
		s.handle(e)
		if forward != nil {
			forward(e)
		}
	}

	game, err := tetris.New(cfg)
	if err != nil {
		return nil, err
	}
	s.Game = game
	return s, nil
}

func (s *Session) handle(e tetris.Event) {
	switch e.Kind {
	case tetris.EventClear:
		if s.Progress.Clear(e.Lines) {
			interval := FallIntervalFor(s.base, s.Progress.Level)
			s.Game.SetFallInterval(interval)
			s.log.Info("level up",
				zap.Int("level", s.Progress.Level),
				zap.Duration("fall_interval", interval),
			)
		}
	case tetris.EventGameOver:
		s.log.Info("game over",
			zap.Int("score", s.Progress.Score),
			zap.Int("lines", s.Progress.Lines),
			zap.Int("level", s.Progress.Level),
		)
	}

	if s.onEvent != nil {
		s.onEvent(e)
	}
}

// Queue records a command to apply at the start of the next frame.
func (s *Session) Queue(cmd tetris.Command) {
	s.pending = append(s.pending, cmd)
}

// Execute applies queued commands and advances the game by the frame time.
// Input queued while paused is dropped.
func (s *Session) Execute(frame *loop.Frame) {
	if s.Paused {
		s.pending = s.pending[:0]
		return
	}
	s.StepOnce(frame.DeltaTime)
}

// StepOnce applies queued commands and advances the game by dt regardless
// of Paused, for single-stepping a paused game.
func (s *Session) StepOnce(dt time.Duration) {
	s.Game.Step(dt, s.pending...)
	s.pending = s.pending[:0]
}

// Restart begins a new game with seed at level one.
func (s *Session) Restart(seed uint64) {
	s.Game.Reset(seed)
	s.Game.SetFallInterval(s.base)
	s.Progress = NewProgress()
	s.pending = s.pending[:0]
	s.log.Info("restarted", zap.Uint64("seed", seed))
}
