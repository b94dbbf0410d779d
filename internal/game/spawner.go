package game

import (
	"math/rand"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
)

// RandomSource supplies the random choices made when traffic spawns.
// Tests substitute fixed sequences.
type RandomSource interface {
	// NextLane returns a lane index in [0, laneCount).
	NextLane(laneCount int) int
	// NextSpeed returns a per-car speed offset.
	NextSpeed() float64
	// NextColor returns a body color.
	NextColor() core.Color
}

// randSource draws uniformly from a seeded math/rand generator.
type randSource struct {
	rng        *rand.Rand
	minSpeed   float64
	maxSpeed   float64
	saturation float64
	lightness  float64
}

// NewRandomSource creates a seeded source using the traffic config for speed
// range and color saturation/lightness.
func NewRandomSource(seed int64, cfg config.Traffic) RandomSource {
	return &randSource{
		rng:        rand.New(rand.NewSource(seed)),
		minSpeed:   cfg.MinSpeed,
		maxSpeed:   cfg.MaxSpeed,
		saturation: cfg.Saturation,
		lightness:  cfg.Lightness,
	}
}

func (r *randSource) NextLane(laneCount int) int {
	return r.rng.Intn(laneCount)
}

func (r *randSource) NextSpeed() float64 {
	return r.minSpeed + r.rng.Float64()*(r.maxSpeed-r.minSpeed)
}

func (r *randSource) NextColor() core.Color {
	return core.HSL(r.rng.Float64()*360, r.saturation, r.lightness)
}

// Spawn places a new car centered in a random lane, fully above the top of
// the road, with its own random speed and color.
func Spawn(road Roadway, rnd RandomSource, width, height float64) Obstacle {
	lane := rnd.NextLane(road.LaneCount)
	return Obstacle{
		X:      road.LaneCenter(lane) - width/2,
		Y:      road.Top - height,
		Width:  width,
		Height: height,
		Speed:  rnd.NextSpeed(),
		Color:  rnd.NextColor(),
	}
}
