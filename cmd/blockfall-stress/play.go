package main

import (
	"time"

	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

// GameResult summarizes one bot game.
type GameResult struct {
	Seed        uint64
	Frames      int
	Pieces      int
	Score       int
	Level       int
	Stats       tetris.StatsSnapshot
	GameOver    bool
	Violations  []string
	Fingerprint uint64
	UpdateTimes []time.Duration
}

// playGame runs a bot until the game ends or maxPieces have spawned.
func playGame(cfg tetris.Config, maxPieces int, logger *zap.Logger) (GameResult, error) {
	result := GameResult{Seed: cfg.Seed}
	cfg.Logger = logger

	sess, err := session.New(cfg, nil)
	if err != nil {
		return result, err
	}
	bot := NewBot(sess, cfg.Seed)

	scheduler := loop.NewScheduler()
	scheduler.Register(bot)
	scheduler.RegisterNamed("Session", sess)

	scheduler.Once(0)
	for sess.Game.Phase() != tetris.GameOver && sess.Game.Stats().TotalSpawns() < maxPieces {
		start := time.Now()
		scheduler.Once(bot.FrameTime())
		result.UpdateTimes = append(result.UpdateTimes, time.Since(start))
		result.Frames++

		if broken := checkInvariants(sess.Game); len(broken) > 0 {
			for _, b := range broken {
				logger.Error("invariant broken",
					zap.Uint64("seed", cfg.Seed),
					zap.Int("frame", result.Frames),
					zap.String("detail", b),
				)
			}
			result.Violations = append(result.Violations, broken...)
			break
		}
	}

	result.Stats = sess.Game.Stats()
	result.Pieces = result.Stats.TotalSpawns()
	result.Score = sess.Progress.Score
	result.Level = sess.Progress.Level
	result.GameOver = sess.Game.Phase() == tetris.GameOver
	result.Fingerprint = fingerprint(sess.Game)
	return result, nil
}
