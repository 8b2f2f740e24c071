package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/internal/session"
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	CellSize     = 28
)

func main() {
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	seed := flag.Uint64("seed", 0, "Random seed for the piece sequence. 0 picks one from the clock.")
	kicks := flag.String("kicks", "srs", "Rotation kick table: none, simple or srs.")
	policy := flag.String("policy", "bag", "Piece selection: bag or uniform.")
	fall := flag.Duration("fall", tetris.DefaultFallInterval, "Gravity interval at level one.")
	lockDelay := flag.Duration("lock-delay", tetris.DefaultLockDelay, "Time a grounded piece waits before locking.")
	lockResets := flag.Int("lock-resets", 15, "Moves that may restart the lock delay per piece. 0 is unlimited.")
	debug := flag.Bool("debug", false, "Show the Dear ImGui inspector windows.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	logger, err := logging.New(*logLevel, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	cfg, err := buildConfig(*width, *height, *seed, *kicks, *policy)
	if err != nil {
		logger.Fatal("invalid flags", zap.Error(err))
	}
	cfg.FallInterval = *fall
	cfg.LockDelay = *lockDelay
	cfg.MaxLockResets = *lockResets
	cfg.Logger = logger

	sess, err := session.New(cfg, nil)
	if err != nil {
		logger.Fatal("start game", zap.Error(err))
	}
	logger.Info("starting",
		zap.Uint64("seed", sess.Game.Seed()),
		zap.String("kicks", cfg.Kicks.Name()),
		zap.String("policy", cfg.Policy.Name()),
		zap.Bool("debug", *debug),
	)

	input := NewInputStage(sess)
	scheduler := loop.NewScheduler()
	scheduler.Register(input)
	scheduler.RegisterNamed("Session", sess)

	game := &Game{
		Session:   sess,
		Scheduler: scheduler,
		Input:     input,
	}

	if *debug {
		game.Backend = debugui_ebiten.NewImguiBackend("Blockfall", ScreenWidth, ScreenHeight)
		game.Inspector = debugui.NewGameInspector(sess.Game)
		game.Inspector.Paused = &sess.Paused
		game.Inspector.OnRestart = func() { sess.Restart(sess.Game.Seed()) }
		perf := debugui.NewPerformanceStats(scheduler, 120)

		ui := &debugui.ImguiStage{}
		ui.Add(game.Inspector.Render)
		ui.Add(func() { perf.Render(game.frameTimer.GetDeltaTime()) })
		scheduler.Register(ui)
		input.UI = &ui.InputState
	} else {
		ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
		ebiten.SetWindowTitle("Blockfall")
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	game.frameTimer = debugui.NewFrameTimer()

	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("game loop", zap.Error(err))
	}
}

func buildConfig(width, height int, seed uint64, kicks, policy string) (tetris.Config, error) {
	cfg := tetris.DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	var err error
	if cfg.Kicks, err = tetris.ParseKicks(kicks); err != nil {
		return cfg, err
	}
	if cfg.Policy, err = tetris.ParsePolicy(policy); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func frameDuration() time.Duration {
	return time.Second / time.Duration(ebiten.TPS())
}
