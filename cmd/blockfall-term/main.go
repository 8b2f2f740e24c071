package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

func main() {
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	seed := flag.Uint64("seed", 0, "Random seed for the piece sequence. 0 picks one from the clock.")
	kicks := flag.String("kicks", "srs", "Rotation kick table: none, simple or srs.")
	policy := flag.String("policy", "bag", "Piece selection: bag or uniform.")
	fps := flag.Int("fps", 60, "Frames per second.")
	mute := flag.Bool("mute", false, "Disable sound.")
	logFile := flag.String("log-file", "blockfall.log", "File to write logs to. The terminal is used for the game.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	if err := run(*width, *height, *seed, *kicks, *policy, *fps, *mute, *logFile, *logLevel); err != nil {
		fmt.Fprintf(os.Stderr, "blockfall-term: %v\n", err)
		os.Exit(1)
	}
}

func run(width, height int, seed uint64, kicks, policy string, fps int, mute bool, logFile, logLevel string) error {
	if fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", fps)
	}

	logger, err := logging.New(logLevel, logFile)
	if err != nil {
		return err
	}
	defer logger.Sync()

	cfg := tetris.DefaultConfig()
	cfg.Width, cfg.Height = width, height
	cfg.Seed = seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Kicks, err = tetris.ParseKicks(kicks); err != nil {
		return err
	}
	if cfg.Policy, err = tetris.ParsePolicy(policy); err != nil {
		return err
	}
	cfg.Logger = logger

	audio := &Audio{}
	if !mute {
		if audio, err = NewAudio(); err != nil {
			// Non-fatal, the game runs without sound.
			logger.Warn("audio unavailable", zap.Error(err))
		}
	}
	defer audio.Close()

	sess, err := session.New(cfg, func(e tetris.Event) {
		switch e.Kind {
		case tetris.EventClear:
			audio.Clear(e.Lines)
		case tetris.EventGameOver:
			audio.GameOver()
		}
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	logger.Info("starting",
		zap.Uint64("seed", cfg.Seed),
		zap.String("kicks", cfg.Kicks.Name()),
		zap.String("policy", cfg.Policy.Name()),
		zap.Int("fps", fps),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	NewTerminal(screen, sess, logger).Run(ctx, time.Second/time.Duration(fps))

	logger.Info("finished",
		zap.Int("score", sess.Progress.Score),
		zap.Int("lines", sess.Progress.Lines),
	)
	return nil
}
