package tetris

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Phase is the state of the game's lifecycle.
type Phase uint8

const (
	Spawning Phase = iota
	Active
	Locking
	Clearing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Spawning:
		return "spawning"
	case Active:
		return "active"
	case Locking:
		return "locking"
	case Clearing:
		return "clearing"
	case GameOver:
		return "game-over"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

// Command is a discrete player action.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	RotateCW
	RotateCCW
	SoftDrop
	HardDrop
)

var commandNames = [...]string{
	MoveLeft:  "move-left",
	MoveRight: "move-right",
	RotateCW:  "rotate-cw",
	RotateCCW: "rotate-ccw",
	SoftDrop:  "soft-drop",
	HardDrop:  "hard-drop",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// Game is the falling-block state machine. It owns the board, the active
// piece, the spawn queue and all timers. A Game is driven by Tick and Apply
// from a single goroutine and is not safe for concurrent use.
type Game struct {
	cfg Config

	grid     *Grid
	piece    Piece
	hasPiece bool
	phase    Phase

	resolver *Resolver
	fall     *FallController
	spawner  *SpawnController

	spawnTimer time.Duration
	lastClear  int
	stats      *Stats

	log *zap.Logger
}

// NewGame starts a game on an empty width x height board using the default
// configuration adjusted by opts.
func NewGame(width, height int, seed uint64, opts ...Option) (*Game, error) {
	cfg := DefaultConfig()
	cfg.Width = width
	cfg.Height = height
	cfg.Seed = seed
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(cfg)
}

// New starts a game from a full configuration.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Kicks == nil {
		cfg.Kicks = KicksNone
	}
	if cfg.Policy == nil {
		cfg.Policy = Bag
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	grid := cfg.Grid
	if grid == nil {
		grid = NewGrid(cfg.Width, cfg.Height)
	}
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	cfg.Grid = nil

	g := &Game{
		cfg:      cfg,
		resolver: NewResolver(cfg.Kicks),
		log:      cfg.Logger,
	}
	g.start(grid, cfg.Seed)
	return g, nil
}

func (g *Game) start(grid *Grid, seed uint64) {
	g.cfg.Seed = seed
	g.grid = grid
	g.piece = Piece{}
	g.hasPiece = false
	g.phase = Spawning
	g.spawnTimer = 0
	g.lastClear = 0
	g.stats = newStats()
	g.fall = NewFallController(g.cfg.FallInterval, g.cfg.LockDelay, g.cfg.MaxLockResets)
	g.spawner = NewSpawnController(g.cfg.Policy, seed, g.cfg.Preview, SpawnAnchor(grid.Width(), grid.Height()))

	g.log.Debug("game started",
		zap.Int("width", grid.Width()),
		zap.Int("height", grid.Height()),
		zap.Uint64("seed", seed),
		zap.String("kicks", g.cfg.Kicks.Name()),
		zap.String("policy", g.cfg.Policy.Name()),
	)
}

// Reset discards the current game and starts over on an empty board of the
// same size with a new seed.
func (g *Game) Reset(seed uint64) {
	interval := g.fall.FallInterval
	g.start(NewGrid(g.cfg.Width, g.cfg.Height), seed)
	g.fall.FallInterval = interval
}

// Tick advances simulation time by dt.
func (g *Game) Tick(dt time.Duration) {
	switch g.phase {
	case Spawning:
		g.spawnTimer += dt
		if g.spawnTimer >= g.cfg.SpawnDelay {
			g.spawn()
		}
	case Active, Locking:
		if g.fall.Tick(dt, g.fallStep) {
			g.lock()
			return
		}
		g.syncPhase()
	}
}

// Apply executes a player command. It returns false when the command was
// rejected: the game is not accepting input, or the resulting placement is
// illegal. A rejected soft drop still starts the lock countdown.
func (g *Game) Apply(cmd Command) bool {
	if g.phase != Active && g.phase != Locking {
		return false
	}

	switch cmd {
	case MoveLeft:
		return g.shift(-1)
	case MoveRight:
		return g.shift(1)
	case RotateCW:
		return g.rotate(CW)
	case RotateCCW:
		return g.rotate(CCW)
	case SoftDrop:
		return g.softDrop()
	case HardDrop:
		g.hardDrop()
		return true
	}
	return false
}

// Step applies commands in order and then advances time by dt, so input
// received during a frame can restart the lock countdown before it is
// checked.
func (g *Game) Step(dt time.Duration, cmds ...Command) {
	for _, cmd := range cmds {
		g.Apply(cmd)
	}
	g.Tick(dt)
}

func (g *Game) grounded() bool {
	return !IsLegal(g.piece.Translated(0, -1), g.grid)
}

func (g *Game) syncPhase() {
	if g.fall.Grounded() {
		g.phase = Locking
	} else {
		g.phase = Active
	}
}

func (g *Game) fallStep() bool {
	moved, ok := g.resolver.Translate(g.piece, 0, -1, g.grid)
	if ok {
		g.piece = moved
	}
	return ok
}

func (g *Game) shift(dx int) bool {
	moved, ok := g.resolver.Translate(g.piece, dx, 0, g.grid)
	if !ok {
		return false
	}
	g.piece = moved
	g.fall.Moved(g.grounded())
	g.syncPhase()
	return true
}

func (g *Game) rotate(dir Direction) bool {
	rotated, ok := g.resolver.Rotate(g.piece, dir, g.grid)
	if !ok {
		return false
	}
	g.piece = rotated
	g.fall.Moved(g.grounded())
	g.syncPhase()
	return true
}

func (g *Game) softDrop() bool {
	moved, ok := g.resolver.Translate(g.piece, 0, -1, g.grid)
	if !ok {
		g.fall.Ground()
		g.syncPhase()
		return false
	}
	g.piece = moved
	g.fall.Dropped()
	g.syncPhase()
	return true
}

func (g *Game) hardDrop() {
	rows := g.resolver.DropDistance(g.piece, g.grid)
	g.piece = g.piece.Translated(0, -rows)
	g.stats.recordHardDrop(rows)
	g.lock()
}

// lock merges the active piece into the grid, clears rows and moves on to
// the next spawn.
func (g *Game) lock() {
	g.phase = Clearing
	locked := g.piece

	if err := g.grid.LockCells(locked.lockedCells()); err != nil {
		g.log.Error("lock bypassed collision checks", zap.Stringer("piece", locked), zap.Error(err))
		panic(fmt.Errorf("tetris: lock %s: %w", locked, err))
	}
	g.piece = Piece{}
	g.hasPiece = false
	g.emit(Event{Kind: EventLock, Piece: locked})

	cleared := g.grid.ClearFullRows()
	g.lastClear = cleared
	g.stats.recordLock(cleared)
	g.log.Debug("piece locked", zap.Stringer("piece", locked), zap.Int("cleared", cleared))
	g.emit(Event{Kind: EventClear, Piece: locked, Lines: cleared})

	g.phase = Spawning
	g.spawnTimer = 0
	if g.cfg.SpawnDelay == 0 {
		g.spawn()
	}
}

func (g *Game) spawn() {
	p := g.spawner.Spawn()
	g.spawnTimer = 0

	if !IsLegal(p, g.grid) {
		g.phase = GameOver
		g.log.Debug("spawn blocked", zap.Stringer("piece", p))
		g.emit(Event{Kind: EventGameOver, Piece: p})
		return
	}

	g.piece = p
	g.hasPiece = true
	g.fall.Reset()
	g.phase = Active
	g.stats.recordSpawn(p.Kind)
	g.log.Debug("piece spawned", zap.Stringer("piece", p))
	g.emit(Event{Kind: EventSpawn, Piece: p})
}

func (g *Game) emit(e Event) {
	if g.cfg.Listener != nil {
		g.cfg.Listener(e)
	}
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// ActivePiece returns the falling piece, if any.
func (g *Game) ActivePiece() (Piece, bool) {
	return g.piece, g.hasPiece
}

// Ghost returns where the active piece would land on a hard drop.
func (g *Game) Ghost() (Piece, bool) {
	if !g.hasPiece {
		return Piece{}, false
	}
	return g.piece.Translated(0, -g.resolver.DropDistance(g.piece, g.grid)), true
}

// Snapshot returns a copy of the locked cells indexed [y][x].
func (g *Game) Snapshot() [][]Cell {
	return g.grid.Snapshot()
}

// At returns the locked cell at (x, y).
func (g *Game) At(x, y int) Cell {
	return g.grid.At(x, y)
}

// Width returns the board width.
func (g *Game) Width() int {
	return g.grid.Width()
}

// Height returns the board height.
func (g *Game) Height() int {
	return g.grid.Height()
}

// LastClearCount returns the number of rows cleared by the most recent lock.
func (g *Game) LastClearCount() int {
	return g.lastClear
}

// Preview returns up to n upcoming kinds.
func (g *Game) Preview(n int) []Kind {
	return g.spawner.Peek(n)
}

// Stats returns a copy of the game's counters.
func (g *Game) Stats() StatsSnapshot {
	return g.stats.snapshot()
}

// Seed returns the seed the current game was started with.
func (g *Game) Seed() uint64 {
	return g.cfg.Seed
}

// Config returns the configuration the game was created with.
func (g *Game) Config() Config {
	return g.cfg
}

// FallInterval returns the current gravity interval.
func (g *Game) FallInterval() time.Duration {
	return g.fall.FallInterval
}

// SetFallInterval changes the gravity interval, e.g. on level up.
// Non-positive values are ignored.
func (g *Game) SetFallInterval(d time.Duration) {
	if d > 0 {
		g.fall.FallInterval = d
	}
}

// Timers returns the time accumulated toward the next fall and the lock.
func (g *Game) Timers() (fall, lock time.Duration) {
	return g.fall.FallTimer(), g.fall.LockTimer()
}

// LockProgress returns how far the lock countdown has run, from 0 to 1.
func (g *Game) LockProgress() float64 {
	if g.phase != Locking {
		return 0
	}
	if g.cfg.LockDelay == 0 {
		return 1
	}
	return min(float64(g.fall.LockTimer())/float64(g.cfg.LockDelay), 1)
}
