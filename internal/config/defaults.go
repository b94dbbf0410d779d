package config

import (
	_ "embed"
)

//go:embed defaults/roadrush.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Surface: Surface{
			Width:  600,
			Height: 700,
		},
		Road: Road{
			Left:      180,
			Right:     420,
			Top:       0,
			Bottom:    700,
			LaneCount: 3,
		},
		Player: Player{
			Width:        50,
			Height:       90,
			BottomOffset: 130,
			MaxSpeedX:    6,
			EdgePadding:  10,
		},
		Traffic: Traffic{
			Width:      50,
			Height:     90,
			MinSpeed:   2,
			MaxSpeed:   4,
			CullMargin: 120,
			Saturation: 0.75,
			Lightness:  0.55,
		},
		Tuning: Tuning{
			SteerStep:    0.4,
			Friction:     0.9,
			Accelerate:   0.03,
			Brake:        0.05,
			MinSpeed:     2,
			MaxSpeed:     10,
			StartSpeed:   4,
			Easing:       0.05,
			SpawnBaseMS:  900,
			SpawnSlopeMS: 40,
			ScoreRate:    10,
			SpeedReadout: 25,
		},
		Loop: Loop{
			TickRate:       60,
			ReferenceFrame: 16.67,
			MaxDelta:       2.0,
			InitialHoldMS:  700,
			RepeatGapMS:    120,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultYAML
}
