package session

import "time"

// Repeater turns a held key into repeated actions: one on press, then one
// every Rate after the key has been held for Delay.
type Repeater struct {
	Delay time.Duration
	Rate  time.Duration

	held time.Duration
}

// Update returns how many times the action fires this frame.
func (r *Repeater) Update(pressed, down bool, dt time.Duration) int {
	if pressed {
		r.held = 0
		return 1
	}
	if !down || r.Rate <= 0 {
		r.held = 0
		return 0
	}

	r.held += dt
	fires := 0
	for r.held > r.Delay {
		r.held -= r.Rate
		fires++
	}
	return fires
}
