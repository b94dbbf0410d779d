package game

import (
	"math"

	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/input"
)

// Autopilot steers into the lane with the most free road ahead and keeps
// the throttle open while its lane is clear.
type Autopilot struct {
	// Cruise is the clearance (px) above which the pilot accelerates.
	Cruise float64
	// Deadband is how close (px) the predicted stop must be to the lane
	// target before the pilot lets go of the steering keys.
	Deadband float64
	// Coast is how far (in ticks of current velocity) the car drifts after
	// releasing the keys, i.e. friction/(1-friction).
	Coast float64
}

// NewAutopilot creates a pilot tuned for the given friction factor.
func NewAutopilot(friction float64) *Autopilot {
	coast := 0.0
	if friction < 1 {
		coast = friction / (1 - friction)
	}
	return &Autopilot{Cruise: 300, Deadband: 3, Coast: coast}
}

// Steer presses or releases keys based on the current traffic.
func (a *Autopilot) Steer(s *State, keys *input.Tracker) {
	p := s.Player
	current := s.Road.LaneAt(p.X + p.Width/2)
	best := a.bestLane(s, current)

	target := s.Road.LaneCenter(best) - p.Width/2
	drift := target - (p.X + p.SpeedX*a.Coast)

	keys.KeyUp(input.Left)
	keys.KeyUp(input.Right)
	switch {
	case drift < -a.Deadband:
		keys.KeyDown(input.Left)
	case drift > a.Deadband:
		keys.KeyDown(input.Right)
	}

	keys.KeyUp(input.Up)
	keys.KeyUp(input.Down)
	if a.clearance(s, best) > a.Cruise {
		keys.KeyDown(input.Up)
	} else {
		keys.KeyDown(input.Down)
	}
}

// bestLane picks the lane with the largest clearance; ties keep the lane
// closest to current.
func (a *Autopilot) bestLane(s *State, current int) int {
	best, bestClear := current, a.clearance(s, current)
	for lane := 0; lane < s.Road.LaneCount; lane++ {
		c := a.clearance(s, lane)
		closer := core.Abs(lane-current) < core.Abs(best-current)
		if c > bestClear || (c == bestClear && closer) {
			best, bestClear = lane, c
		}
	}
	return best
}

// clearance is the free distance between the player's front and the
// nearest car in lane that has not yet passed the player.
func (a *Autopilot) clearance(s *State, lane int) float64 {
	clear := math.Inf(1)
	for _, o := range s.Obstacles {
		if s.Road.LaneAt(o.X+o.Width/2) != lane || o.Y > s.Player.Y+s.Player.Height {
			continue
		}
		clear = math.Min(clear, s.Player.Y-(o.Y+o.Height))
	}
	return clear
}
