package tetris_test

import (
	"testing"
	"time"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
)

// fallCounter lets a test decide how many falls succeed before the piece
// hits something.
type fallCounter struct {
	room  int
	calls int
}

func (f *fallCounter) fall() bool {
	f.calls++
	if f.room == 0 {
		return false
	}
	f.room--
	return true
}

func TestFallControllerGravity(t *testing.T) {
	t.Run("accumulates across ticks", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, time.Second, 0)
		f := &fallCounter{room: 10}

		for i := 0; i < 9; i++ {
			assert.False(t, fc.Tick(10*time.Millisecond, f.fall))
		}
		assert.Equal(t, 0, f.calls)

		fc.Tick(10*time.Millisecond, f.fall)
		assert.Equal(t, 1, f.calls)
		assert.Equal(t, time.Duration(0), fc.FallTimer())
	})

	t.Run("large dt produces several falls", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, time.Second, 0)
		f := &fallCounter{room: 10}

		fc.Tick(350*time.Millisecond, f.fall)
		assert.Equal(t, 3, f.calls)
		assert.Equal(t, 50*time.Millisecond, fc.FallTimer())
		assert.False(t, fc.Grounded())
	})

	t.Run("rejected fall grounds and carries leftover time", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, time.Second, 0)
		f := &fallCounter{room: 2}

		lock := fc.Tick(350*time.Millisecond, f.fall)
		assert.False(t, lock)
		assert.Equal(t, 3, f.calls)
		assert.True(t, fc.Grounded())
		assert.Equal(t, 50*time.Millisecond, fc.LockTimer())
		assert.Equal(t, time.Duration(0), fc.FallTimer())
	})

	t.Run("huge dt can lock in one tick", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, 200*time.Millisecond, 0)
		f := &fallCounter{room: 1}

		assert.True(t, fc.Tick(time.Second, f.fall))
	})
}

func TestFallControllerLockDelay(t *testing.T) {
	fc := tetris.NewFallController(100*time.Millisecond, 300*time.Millisecond, 0)
	f := &fallCounter{}

	assert.False(t, fc.Tick(100*time.Millisecond, f.fall))
	assert.True(t, fc.Grounded())

	assert.False(t, fc.Tick(200*time.Millisecond, f.fall))
	assert.True(t, fc.Tick(100*time.Millisecond, f.fall))
	assert.Equal(t, 1, f.calls, "grounded piece does not keep probing")
}

func TestFallControllerMoveResets(t *testing.T) {
	t.Run("move restarts countdown", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, 300*time.Millisecond, 0)
		fc.Ground()

		assert.False(t, fc.Tick(250*time.Millisecond, nil))
		fc.Moved(true)
		assert.Equal(t, time.Duration(0), fc.LockTimer())

		assert.False(t, fc.Tick(250*time.Millisecond, nil))
		assert.True(t, fc.Tick(50*time.Millisecond, nil))
	})

	t.Run("move off a ledge resumes falling", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, 300*time.Millisecond, 0)
		fc.Ground()
		fc.Tick(200*time.Millisecond, nil)

		fc.Moved(false)
		assert.False(t, fc.Grounded())

		f := &fallCounter{room: 5}
		fc.Tick(100*time.Millisecond, f.fall)
		assert.Equal(t, 1, f.calls)
	})

	t.Run("reset cap", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, 300*time.Millisecond, 2)
		fc.Ground()

		for i := 0; i < 2; i++ {
			fc.Tick(100*time.Millisecond, nil)
			fc.Moved(true)
			assert.Equal(t, time.Duration(0), fc.LockTimer())
		}
		assert.Equal(t, 2, fc.LockResets())

		fc.Tick(100*time.Millisecond, nil)
		fc.Moved(true)
		assert.Equal(t, 100*time.Millisecond, fc.LockTimer())
	})

	t.Run("capped piece that slides off gets a full delay on landing", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, 300*time.Millisecond, 1)
		fc.Ground()
		fc.Tick(100*time.Millisecond, nil)
		fc.Moved(true)
		fc.Tick(250*time.Millisecond, nil)

		fc.Moved(false)
		assert.False(t, fc.Grounded())
		assert.Equal(t, time.Duration(0), fc.LockTimer())

		f := &fallCounter{room: 2}
		assert.False(t, fc.Tick(300*time.Millisecond, f.fall))
		assert.True(t, fc.Grounded())
		assert.Equal(t, time.Duration(0), fc.LockTimer())

		assert.False(t, fc.Tick(299*time.Millisecond, nil))
		assert.True(t, fc.Tick(time.Millisecond, nil))
	})

	t.Run("airborne move onto support keeps falling", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, 300*time.Millisecond, 0)
		fc.Tick(50*time.Millisecond, (&fallCounter{room: 5}).fall)

		fc.Moved(true)
		assert.False(t, fc.Grounded())
		assert.Equal(t, time.Duration(0), fc.LockTimer())
		assert.Equal(t, 50*time.Millisecond, fc.FallTimer())

		f := &fallCounter{}
		assert.False(t, fc.Tick(50*time.Millisecond, f.fall))
		assert.Equal(t, 1, f.calls)
		assert.True(t, fc.Grounded())
	})

	t.Run("airborne moves do not count", func(t *testing.T) {
		fc := tetris.NewFallController(100*time.Millisecond, 300*time.Millisecond, 1)
		fc.Moved(false)
		fc.Moved(true)
		assert.Equal(t, 0, fc.LockResets())
	})
}

func TestFallControllerDroppedAndReset(t *testing.T) {
	fc := tetris.NewFallController(100*time.Millisecond, 300*time.Millisecond, 0)
	f := &fallCounter{room: 5}

	fc.Tick(60*time.Millisecond, f.fall)
	fc.Dropped()
	assert.Equal(t, time.Duration(0), fc.FallTimer())

	fc.Ground()
	fc.Tick(100*time.Millisecond, nil)
	fc.Reset()
	assert.False(t, fc.Grounded())
	assert.Equal(t, time.Duration(0), fc.LockTimer())
	assert.Equal(t, 0, fc.LockResets())
}
