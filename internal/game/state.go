// Package game implements Road Rush: a player car dodging traffic across a
// multi-lane road. The package holds the simulation state, the per-frame
// updater, the traffic spawner, the renderer and the loop driver that ties
// them together. It knows nothing about terminals; the platform layer
// supplies a draw.Surface, a HUD and frame timestamps.
package game

import (
	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// Roadway is the drivable area in surface pixels. It never changes during a
// session.
type Roadway struct {
	Left, Right float64
	Top, Bottom float64
	LaneCount   int
}

// NewRoadway builds a roadway from a validated config.
func NewRoadway(cfg config.Road) Roadway {
	return Roadway{
		Left:      cfg.Left,
		Right:     cfg.Right,
		Top:       cfg.Top,
		Bottom:    cfg.Bottom,
		LaneCount: cfg.LaneCount,
	}
}

// LaneWidth returns the width of a single lane.
func (r Roadway) LaneWidth() float64 {
	return (r.Right - r.Left) / float64(r.LaneCount)
}

// CenterX returns the horizontal center of the road.
func (r Roadway) CenterX() float64 {
	return (r.Left + r.Right) / 2
}

// LaneCenter returns the x-coordinate of the middle of lane i.
func (r Roadway) LaneCenter(i int) float64 {
	return r.Left + r.LaneWidth()*float64(i) + r.LaneWidth()/2
}

// LaneAt returns the lane containing x, clamped to the road.
func (r Roadway) LaneAt(x float64) int {
	lane := int((x - r.Left) / r.LaneWidth())
	return core.Clamp(lane, 0, r.LaneCount-1)
}

// Player is the car steered by the user. Y never changes.
type Player struct {
	X, Y          float64
	Width, Height float64
	SpeedX        float64 // Horizontal velocity in pixels per tick
	MaxSpeedX     float64
}

// Box returns the player's collision box.
func (p Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, p.Width, p.Height)
}

// Obstacle is a traffic car driving down the road.
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Speed         float64 // Added to the game speed when advancing
	Color         core.Color
}

// Box returns the obstacle's collision box.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.Width, o.Height)
}

// State is the complete simulation state of one session.
// Only the Updater mutates it during play; Reset restores the start values.
type State struct {
	Road      Roadway
	Player    Player
	Obstacles []Obstacle

	GameSpeed   float64 // Current scroll speed, eased toward TargetSpeed
	TargetSpeed float64 // Speed the player is steering toward
	Score       float64
	GameOver    bool    // Latched by a collision, cleared only by Reset
	LastSpawn   float64 // Frame timestamp (ms) of the most recent spawn
	Spawned     int     // Obstacles spawned since the last reset

	startSpeed  float64
	edgePadding float64
}

// NewState creates a session state from a validated config and resets it.
func NewState(cfg config.Config) *State {
	s := &State{
		Road: NewRoadway(cfg.Road),
		Player: Player{
			Y:         cfg.Surface.Height - cfg.Player.BottomOffset,
			Width:     cfg.Player.Width,
			Height:    cfg.Player.Height,
			MaxSpeedX: cfg.Player.MaxSpeedX,
		},
		Obstacles:   make([]Obstacle, 0, 16),
		startSpeed:  cfg.Tuning.StartSpeed,
		edgePadding: cfg.Player.EdgePadding,
	}
	s.Reset()
	return s
}

// Reset restores the session start values. It is idempotent.
func (s *State) Reset() {
	s.Obstacles = s.Obstacles[:0]
	s.Score = 0
	s.GameOver = false
	s.GameSpeed = s.startSpeed
	s.TargetSpeed = s.startSpeed
	s.Player.X = s.Road.CenterX()
	s.Player.SpeedX = 0
	s.LastSpawn = 0
	s.Spawned = 0
}

// MinPlayerX returns the leftmost allowed player position.
func (s *State) MinPlayerX() float64 {
	return s.Road.Left + s.edgePadding
}

// MaxPlayerX returns the rightmost allowed player position.
func (s *State) MaxPlayerX() float64 {
	return s.Road.Right - s.Player.Width - s.edgePadding
}

// Snapshot captures the scalar state for the HUD, logging and tests.
type Snapshot struct {
	Frame       uint64
	PlayerX     float64
	SpeedX      float64
	GameSpeed   float64
	TargetSpeed float64
	Score       float64
	Obstacles   int
	Spawned     int
	GameOver    bool
}

func (s *State) snapshot(frame uint64) Snapshot {
	return Snapshot{
		Frame:       frame,
		PlayerX:     s.Player.X,
		SpeedX:      s.Player.SpeedX,
		GameSpeed:   s.GameSpeed,
		TargetSpeed: s.TargetSpeed,
		Score:       s.Score,
		Obstacles:   len(s.Obstacles),
		Spawned:     s.Spawned,
		GameOver:    s.GameOver,
	}
}
