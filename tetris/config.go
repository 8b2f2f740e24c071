package tetris

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultWidth        = 10
	DefaultHeight       = 20
	DefaultFallInterval = time.Second
	DefaultLockDelay    = 500 * time.Millisecond
	DefaultPreview      = 5

	// MinSize is the smallest board edge that fits every piece at spawn.
	MinSize = 4
)

// Config holds everything needed to start a game.
type Config struct {
	Width  int
	Height int
	Seed   uint64

	FallInterval  time.Duration
	LockDelay     time.Duration
	MaxLockResets int // 0 means unlimited
	SpawnDelay    time.Duration
	Preview       int

	Kicks  KickPolicy
	Policy Policy

	// Grid, when set, is used as the starting board and owned by the game
	// from then on. Its dimensions override Width and Height.
	Grid *Grid

	Logger   *zap.Logger
	Listener func(Event)
}

// DefaultConfig returns the standard 10x20 configuration with SRS kicks and
// a 7-bag spawn policy.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		FallInterval: DefaultFallInterval,
		LockDelay:    DefaultLockDelay,
		Preview:      DefaultPreview,
		Kicks:        KicksSRS,
		Policy:       Bag,
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	w, h := c.Width, c.Height
	if c.Grid != nil {
		w, h = c.Grid.Width(), c.Grid.Height()
	}
	if w < MinSize || h < MinSize {
		return fmt.Errorf("board %dx%d is smaller than %dx%d", w, h, MinSize, MinSize)
	}
	if c.FallInterval <= 0 {
		return fmt.Errorf("fall interval must be positive, got %s", c.FallInterval)
	}
	if c.LockDelay < 0 {
		return fmt.Errorf("lock delay must not be negative, got %s", c.LockDelay)
	}
	if c.SpawnDelay < 0 {
		return fmt.Errorf("spawn delay must not be negative, got %s", c.SpawnDelay)
	}
	if c.MaxLockResets < 0 {
		return fmt.Errorf("max lock resets must not be negative, got %d", c.MaxLockResets)
	}
	if c.Preview < 0 {
		return fmt.Errorf("preview must not be negative, got %d", c.Preview)
	}
	return nil
}

// Option adjusts a Config.
type Option func(*Config)

func WithFallInterval(d time.Duration) Option {
	return func(c *Config) { c.FallInterval = d }
}

func WithLockDelay(d time.Duration) Option {
	return func(c *Config) { c.LockDelay = d }
}

// WithMaxLockResets caps how often moves may restart the lock countdown of
// a single piece.
func WithMaxLockResets(n int) Option {
	return func(c *Config) { c.MaxLockResets = n }
}

// WithSpawnDelay holds the game in the spawning phase for d after each lock.
func WithSpawnDelay(d time.Duration) Option {
	return func(c *Config) { c.SpawnDelay = d }
}

func WithPreview(n int) Option {
	return func(c *Config) { c.Preview = n }
}

func WithKicks(k KickPolicy) Option {
	return func(c *Config) { c.Kicks = k }
}

func WithPolicy(p Policy) Option {
	return func(c *Config) { c.Policy = p }
}

// WithGrid starts the game on an existing board. The game takes ownership
// of the grid; callers must not modify it afterwards.
func WithGrid(g *Grid) Option {
	return func(c *Config) { c.Grid = g }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithListener registers a callback that receives game events
// synchronously as they happen.
func WithListener(fn func(Event)) Option {
	return func(c *Config) { c.Listener = fn }
}
