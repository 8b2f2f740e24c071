package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/plus3/blockfall/internal/logging"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

// replayGames is how many of the first games are played a second time to
// check determinism.
const replayGames = 5

func main() {
	games := flag.Int("games", 200, "Number of bot games to play.")
	baseSeed := flag.Uint64("seed", 1, "Seed of the first game. Game i uses seed+i.")
	maxPieces := flag.Int("max-pieces", 1000, "Stop a game after this many pieces have spawned.")
	width := flag.Int("width", tetris.DefaultWidth, "Board width in cells.")
	height := flag.Int("height", tetris.DefaultHeight, "Board height in cells.")
	kicks := flag.String("kicks", "srs", "Rotation kick table: none, simple or srs.")
	policy := flag.String("policy", "bag", "Piece selection: bag or uniform.")
	workers := flag.Int("workers", runtime.NumCPU(), "Games played concurrently.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error.")
	flag.Parse()

	logger, err := logging.New(*logLevel, "")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	cfg := tetris.DefaultConfig()
	cfg.Width, cfg.Height = *width, *height
	if cfg.Kicks, err = tetris.ParseKicks(*kicks); err != nil {
		logger.Fatal("invalid flags", zap.Error(err))
	}
	if cfg.Policy, err = tetris.ParsePolicy(*policy); err != nil {
		logger.Fatal("invalid flags", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid flags", zap.Error(err))
	}
	if err := validateRun(*games, *maxPieces, *workers); err != nil {
		logger.Fatal("invalid flags", zap.Error(err))
	}

	report := &Report{
		Games:          *games,
		BaseSeed:       *baseSeed,
		MaxPieces:      *maxPieces,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Kicks:          cfg.Kicks.Name(),
		Policy:         cfg.Policy.Name(),
		Workers:        *workers,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)
	logger.Info("starting stress run", zap.Int("games", *games), zap.Int("workers", report.Workers))

	startTime := time.Now()
	results := playAll(cfg, *baseSeed, *games, *maxPieces, report.Workers, logger)
	report.TotalTime = time.Since(startTime)

	for _, res := range results {
		report.Add(res)
	}
	report.UpdateTime.Finalize()

	for _, res := range results[:min(replayGames, len(results))] {
		game := cfg
		game.Seed = res.Seed
		again, err := playGame(game, *maxPieces, zap.NewNop())
		if err != nil || again.Fingerprint != res.Fingerprint {
			logger.Error("replay diverged", zap.Uint64("seed", res.Seed), zap.Error(err))
			report.ReplayMismatches++
		}
	}
	runtime.ReadMemStats(&report.MemStatsEnd)

	logger.Info("stress run finished", zap.Duration("elapsed", report.TotalTime))

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		logger.Fatal("failed to generate report", zap.Error(err))
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 || report.ReplayMismatches > 0 {
		os.Exit(1)
	}
}

// validateRun checks the run-size flags that the game config does not cover.
func validateRun(games, maxPieces, workers int) error {
	if games < 1 {
		return fmt.Errorf("games must be positive, got %d", games)
	}
	if maxPieces < 1 {
		return fmt.Errorf("max pieces must be positive, got %d", maxPieces)
	}
	if workers < 1 {
		return fmt.Errorf("workers must be positive, got %d", workers)
	}
	return nil
}

// playAll plays games with consecutive seeds on a fixed pool of workers and
// returns the results in seed order.
func playAll(cfg tetris.Config, baseSeed uint64, games, maxPieces, workers int, logger *zap.Logger) []GameResult {
	results := make([]GameResult, games)
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				game := cfg
				game.Seed = baseSeed + uint64(i)
				gameLogger := logger.With(zap.Int("game", i)).WithOptions(zap.IncreaseLevel(zap.WarnLevel))
				res, err := playGame(game, maxPieces, gameLogger)
				if err != nil {
					logger.Error("game failed to start", zap.Uint64("seed", game.Seed), zap.Error(err))
					res.Violations = append(res.Violations, err.Error())
				}
				results[i] = res
			}
		}()
	}

	for i := 0; i < games; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}
