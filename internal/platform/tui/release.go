package tui

import (
	"slices"

	"github.com/vovakirdan/roadrush/internal/input"
)

// pressState tracks one key the terminal has reported as pressed.
type pressState struct {
	last      float64 // Time of the latest press or auto-repeat (ms)
	repeating bool
}

// Releaser turns the silence after a key's last press into a release.
// Terminals only report presses and auto-repeats, so a key counts as held
// until no repeat arrives in time: initialHold before auto-repeat kicks in,
// repeatGap between repeats after that.
type Releaser struct {
	initialHold float64
	repeatGap   float64
	pressed     map[input.Key]*pressState
}

// NewReleaser creates a releaser with the given timings in milliseconds.
func NewReleaser(initialHoldMS, repeatGapMS float64) *Releaser {
	return &Releaser{
		initialHold: initialHoldMS,
		repeatGap:   repeatGapMS,
		pressed:     make(map[input.Key]*pressState),
	}
}

// Press records a press of k at now. It returns true for a fresh press and
// false for an auto-repeat of a key that is already held.
func (r *Releaser) Press(k input.Key, now float64) bool {
	if p, ok := r.pressed[k]; ok {
		p.last = now
		p.repeating = true
		return false
	}
	r.pressed[k] = &pressState{last: now}
	return true
}

// Expire returns, in sorted order, the keys that have been silent too long
// at now and forgets them.
func (r *Releaser) Expire(now float64) []input.Key {
	var released []input.Key
	for k, p := range r.pressed {
		limit := r.initialHold
		if p.repeating {
			limit = r.repeatGap
		}
		if now-p.last > limit {
			released = append(released, k)
			delete(r.pressed, k)
		}
	}
	slices.Sort(released)
	return released
}

// Held reports whether k is currently considered held.
func (r *Releaser) Held(k input.Key) bool {
	_, ok := r.pressed[k]
	return ok
}

// Reset forgets every pressed key.
func (r *Releaser) Reset() {
	clear(r.pressed)
}
