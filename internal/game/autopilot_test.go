package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/roadrush/internal/input"
)

func TestAutopilotDodgesBlockedLane(t *testing.T) {
	s, _, _ := newTestState(t)
	s.Player.X = s.Road.LaneCenter(1) - s.Player.Width/2
	s.Obstacles = append(s.Obstacles, Obstacle{X: 275, Y: 300, Width: 50, Height: 90})
	keys := input.NewTracker()

	NewAutopilot(0.9).Steer(s, keys)

	assert.True(t, keys.IsHeld(input.Left), "ties between free lanes go to the lower lane")
	assert.False(t, keys.IsHeld(input.Right))
	assert.True(t, keys.IsHeld(input.Up), "the target lane is clear")
	assert.False(t, keys.IsHeld(input.Down))
}

func TestAutopilotHoldsClearLane(t *testing.T) {
	s, _, _ := newTestState(t)
	s.Player.X = s.Road.LaneCenter(1) - s.Player.Width/2
	keys := input.NewTracker()
	keys.KeyDown(input.Right)

	NewAutopilot(0.9).Steer(s, keys)

	assert.False(t, keys.IsHeld(input.Left))
	assert.False(t, keys.IsHeld(input.Right), "stale steering is released")
	assert.True(t, keys.IsHeld(input.Up))
}

func TestAutopilotBrakesWhenBoxedIn(t *testing.T) {
	s, _, _ := newTestState(t)
	s.Player.X = s.Road.LaneCenter(1) - s.Player.Width/2
	for lane := 0; lane < s.Road.LaneCount; lane++ {
		x := s.Road.LaneCenter(lane) - 25
		s.Obstacles = append(s.Obstacles, Obstacle{X: x, Y: 400, Width: 50, Height: 90})
	}
	keys := input.NewTracker()

	NewAutopilot(0.9).Steer(s, keys)

	assert.True(t, keys.IsHeld(input.Down))
	assert.False(t, keys.IsHeld(input.Up))
	assert.False(t, keys.IsHeld(input.Left), "equal clearance keeps the current lane")
	assert.False(t, keys.IsHeld(input.Right))
}

func TestAutopilotIgnoresPassedCars(t *testing.T) {
	s, _, _ := newTestState(t)
	p := s.Player
	s.Obstacles = append(s.Obstacles, Obstacle{X: p.X, Y: p.Y + p.Height + 1, Width: 50, Height: 90})

	assert.Equal(t, 1, s.Road.LaneAt(p.X+p.Width/2))
	assert.True(t, NewAutopilot(0.9).clearance(s, 1) > 1e9)
}

func TestNewAutopilotCoast(t *testing.T) {
	assert.InDelta(t, 9.0, NewAutopilot(0.9).Coast, 1e-9)
	assert.Equal(t, 0.0, NewAutopilot(1).Coast)
}
