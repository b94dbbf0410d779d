package game

import (
	"math"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/input"
)

// HeldSet answers whether an input is currently held.
// *input.Tracker implements it.
type HeldSet interface {
	IsHeld(k input.Key) bool
}

// Updater advances a State by one frame. It is the only mutation path for
// the state during play.
type Updater struct {
	tuning  config.Tuning
	traffic config.Traffic
	rnd     RandomSource
}

// NewUpdater creates an updater with the given tuning and traffic source.
func NewUpdater(cfg config.Config, rnd RandomSource) *Updater {
	return &Updater{
		tuning:  cfg.Tuning,
		traffic: cfg.Traffic,
		rnd:     rnd,
	}
}

// SpawnInterval returns the minimum time in milliseconds between two spawns
// at the given game speed. It never increases with speed and never goes
// below zero.
func (u *Updater) SpawnInterval(gameSpeed float64) float64 {
	return math.Max(0, u.tuning.SpawnBaseMS-gameSpeed*u.tuning.SpawnSlopeMS)
}

// Update advances s by delta nominal frames at frame timestamp now (ms).
// Nothing happens once the game is over.
func (u *Updater) Update(s *State, in HeldSet, delta, now float64) {
	if s.GameOver {
		return
	}

	u.steer(s, in)
	u.throttle(s, in)

	s.GameSpeed += (s.TargetSpeed - s.GameSpeed) * u.tuning.Easing

	s.Player.X = core.ClampF(s.Player.X+s.Player.SpeedX, s.MinPlayerX(), s.MaxPlayerX())

	if now-s.LastSpawn > u.SpawnInterval(s.GameSpeed) {
		s.Obstacles = append(s.Obstacles, Spawn(s.Road, u.rnd, u.traffic.Width, u.traffic.Height))
		s.Spawned++
		s.LastSpawn = now
	}

	for i := range s.Obstacles {
		s.Obstacles[i].Y += (s.GameSpeed + s.Obstacles[i].Speed) * delta
	}

	u.cull(s)

	s.Score += s.GameSpeed * delta * u.tuning.ScoreRate

	if Collides(s.Player, s.Obstacles) {
		s.GameOver = true
	}
}

// steer applies Left/Right acceleration or friction. Left wins over Right.
func (u *Updater) steer(s *State, in HeldSet) {
	p := &s.Player
	switch {
	case in.IsHeld(input.Left):
		p.SpeedX = math.Max(p.SpeedX-u.tuning.SteerStep, -p.MaxSpeedX)
	case in.IsHeld(input.Right):
		p.SpeedX = math.Min(p.SpeedX+u.tuning.SteerStep, p.MaxSpeedX)
	default:
		p.SpeedX *= u.tuning.Friction
	}
}

// throttle moves the target speed. Braking is faster than accelerating.
func (u *Updater) throttle(s *State, in HeldSet) {
	switch {
	case in.IsHeld(input.Up):
		s.TargetSpeed = math.Min(s.TargetSpeed+u.tuning.Accelerate, u.tuning.MaxSpeed)
	case in.IsHeld(input.Down):
		s.TargetSpeed = math.Max(s.TargetSpeed-u.tuning.Brake, u.tuning.MinSpeed)
	}
}

// cull drops cars that have left the bottom of the road with margin.
func (u *Updater) cull(s *State) {
	limit := s.Road.Bottom + u.traffic.CullMargin
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		if o.Y < limit {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept
}

// Collides reports whether the player overlaps any obstacle.
func Collides(p Player, obstacles []Obstacle) bool {
	box := p.Box()
	for _, o := range obstacles {
		if box.Intersects(o.Box()) {
			return true
		}
	}
	return false
}
