package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBotGamesKeepInvariants(t *testing.T) {
	for _, kicks := range []tetris.KickPolicy{tetris.KicksNone, tetris.KicksSimple, tetris.KicksSRS} {
		t.Run(kicks.Name(), func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			cfg.Kicks = kicks
			results := playAll(cfg, 10, 8, 300, 4, zap.NewNop())

			require.Len(t, results, 8)
			for i, res := range results {
				assert.Equal(t, uint64(10+i), res.Seed)
				assert.Empty(t, res.Violations, "seed %d", res.Seed)
				assert.Positive(t, res.Pieces)
				assert.True(t, res.GameOver || res.Pieces >= 300)
			}
		})
	}
}

func TestPlayGameIsDeterministic(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.Seed = 42

	a, err := playGame(cfg, 200, zap.NewNop())
	require.NoError(t, err)
	b, err := playGame(cfg, 200, zap.NewNop())
	require.NoError(t, err)

	assert.Equal(t, a.Fingerprint, b.Fingerprint)
	assert.Equal(t, a.Frames, b.Frames)
	assert.Equal(t, a.Stats, b.Stats)
}

func TestCheckInvariantsOnHealthyGame(t *testing.T) {
	game, err := tetris.NewGame(10, 20, 1)
	require.NoError(t, err)
	assert.Empty(t, checkInvariants(game), "spawning phase")

	game.Tick(0)
	assert.Empty(t, checkInvariants(game), "active phase")
}

func TestCheckInvariantsFindsFullRow(t *testing.T) {
	grid := tetris.NewGrid(4, 6)
	for x := 0; x < 4; x++ {
		grid.Set(x, 0, tetris.Filled(1))
	}
	game, err := tetris.NewGame(4, 6, 1, tetris.WithGrid(grid))
	require.NoError(t, err)

	assert.Equal(t, []string{"row 0 is full between frames"}, checkInvariants(game))
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	report := &Report{Games: 2, BaseSeed: 5, Width: 10, Height: 20, Kicks: "srs", Policy: "bag"}
	report.Add(GameResult{Seed: 5, Score: 300, Level: 1, Stats: tetris.StatsSnapshot{Lines: 2, ClearsBySize: [5]int{3, 0, 1}}})
	report.Add(GameResult{Seed: 6, Score: 100, Level: 2, GameOver: true, Violations: []string{"boom"}})

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "seeds 5..6")
	assert.Contains(t, out, "**Best Score:** 300 (seed 5)")
	assert.Contains(t, out, "**2-line clears:** 1")
	assert.Contains(t, out, "**Games Over:** 1")
	assert.Contains(t, out, "seed 6: boom")
	assert.Equal(t, 2, report.MaxLevel)
}

func TestValidateRun(t *testing.T) {
	tests := []struct {
		name                      string
		games, maxPieces, workers int
		wantErr                   string
	}{
		{name: "defaults", games: 200, maxPieces: 1000, workers: 4},
		{name: "negative games", games: -1, maxPieces: 1000, workers: 4, wantErr: "games must be positive"},
		{name: "zero games", games: 0, maxPieces: 1000, workers: 4, wantErr: "games must be positive"},
		{name: "zero pieces", games: 1, maxPieces: 0, workers: 4, wantErr: "max pieces must be positive"},
		{name: "negative workers", games: 1, maxPieces: 1, workers: -2, wantErr: "workers must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRun(tt.games, tt.maxPieces, tt.workers)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
