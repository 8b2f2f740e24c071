package tetris

import "time"

// FallController tracks gravity and lock delay for the active piece.
//
// While the piece is airborne, elapsed time accumulates toward the next
// automatic one-row fall. Once a fall is rejected the piece is grounded and
// time accumulates toward the lock instead. A successful fall or soft drop
// always clears the lock countdown; lateral moves and rotations on the
// ground restart it, optionally capped by MaxLockResets.
type FallController struct {
	FallInterval  time.Duration
	LockDelay     time.Duration
	MaxLockResets int // 0 means unlimited

	fallTimer time.Duration
	lockTimer time.Duration
	grounded  bool
	resets    int
}

// NewFallController creates a controller with the given timing constants.
func NewFallController(fallInterval, lockDelay time.Duration, maxLockResets int) *FallController {
	return &FallController{
		FallInterval:  fallInterval,
		LockDelay:     lockDelay,
		MaxLockResets: maxLockResets,
	}
}

// Tick advances the timers by dt. While airborne, fall is called once for
// every whole FallInterval elapsed; a false result grounds the piece and the
// unused fall time carries into the lock timer. Tick returns true when the
// piece has been grounded for at least LockDelay and must lock.
func (f *FallController) Tick(dt time.Duration, fall func() bool) bool {
	if f.grounded {
		f.lockTimer += dt
		return f.lockTimer >= f.LockDelay
	}

	f.fallTimer += dt
	for f.fallTimer >= f.FallInterval {
		f.fallTimer -= f.FallInterval
		if fall() {
			f.lockTimer = 0
			continue
		}

		f.grounded = true
		f.lockTimer += f.fallTimer
		f.fallTimer = 0
		return f.lockTimer >= f.LockDelay
	}
	return false
}

// Ground marks the piece as resting after an explicit down move was rejected.
func (f *FallController) Ground() {
	if f.grounded {
		return
	}
	f.grounded = true
	f.fallTimer = 0
}

// Moved records a successful lateral move or rotation; grounded reports
// whether the piece still rests on something after the move. A grounded
// piece that keeps resting restarts the countdown unless the reset cap is
// reached. One that moved off its support falls again with a cleared
// countdown. An airborne piece stays airborne until a fall is rejected.
func (f *FallController) Moved(grounded bool) {
	if !f.grounded {
		return
	}
	if !grounded {
		f.grounded = false
		f.lockTimer = 0
		return
	}
	if f.MaxLockResets == 0 || f.resets < f.MaxLockResets {
		f.lockTimer = 0
		f.resets++
	}
}

// Dropped records a successful soft drop.
func (f *FallController) Dropped() {
	f.fallTimer = 0
	f.lockTimer = 0
	f.grounded = false
}

// Reset clears all timers for a freshly spawned piece.
func (f *FallController) Reset() {
	f.fallTimer = 0
	f.lockTimer = 0
	f.grounded = false
	f.resets = 0
}

// Grounded reports whether the lock countdown is running.
func (f *FallController) Grounded() bool {
	return f.grounded
}

// FallTimer returns the time accumulated toward the next automatic fall.
func (f *FallController) FallTimer() time.Duration {
	return f.fallTimer
}

// LockTimer returns the time accumulated toward the lock.
func (f *FallController) LockTimer() time.Duration {
	return f.lockTimer
}

// LockResets returns how many times the lock countdown has been restarted.
func (f *FallController) LockResets() int {
	return f.resets
}
