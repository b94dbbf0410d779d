// Package input tracks which named inputs are currently held down.
package input

// Key is a named input identifier, independent of the physical key that
// produced it.
type Key string

// Inputs read by the updater.
const (
	Left  Key = "Left"
	Right Key = "Right"
	Up    Key = "Up"
	Down  Key = "Down"
)

// Tracker maps key-down/key-up events to a held set.
// The last event for a key wins and the state persists across frames until
// the key is released. Game restarts do not touch it: held keys describe the
// player's hands, not the game.
type Tracker struct {
	held map[Key]bool
}

// NewTracker creates a tracker with nothing held.
func NewTracker() *Tracker {
	return &Tracker{held: make(map[Key]bool)}
}

// KeyDown marks k as held.
func (t *Tracker) KeyDown(k Key) {
	t.held[k] = true
}

// KeyUp marks k as released.
func (t *Tracker) KeyUp(k Key) {
	t.held[k] = false
}

// IsHeld reports whether k is currently held.
func (t *Tracker) IsHeld(k Key) bool {
	return t.held[k]
}

// Held returns the keys currently held.
func (t *Tracker) Held() []Key {
	var keys []Key
	for k, down := range t.held {
		if down {
			keys = append(keys, k)
		}
	}
	return keys
}

// Release lets go of every key, e.g. when the host loses input focus.
func (t *Tracker) Release() {
	for k := range t.held {
		delete(t.held, k)
	}
}
