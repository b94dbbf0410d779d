// Package config provides YAML-based configuration loading and validation
// for Road Rush.
package config

// Config contains everything needed to start a session.
type Config struct {
	Surface Surface `yaml:"surface"`
	Road    Road    `yaml:"road"`
	Player  Player  `yaml:"player"`
	Traffic Traffic `yaml:"traffic"`
	Tuning  Tuning  `yaml:"tuning"`
	Loop    Loop    `yaml:"loop"`
}

// Surface defines the logical render surface in pixels.
type Surface struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Road defines the roadway bounds in surface pixels and its lane count.
type Road struct {
	Left      float64 `yaml:"left"`
	Right     float64 `yaml:"right"`
	Top       float64 `yaml:"top"`
	Bottom    float64 `yaml:"bottom"`
	LaneCount int     `yaml:"lane_count"`
}

// Player defines the player car.
type Player struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from surface bottom to the car's top edge
	MaxSpeedX    float64 `yaml:"max_speed_x"`
	EdgePadding  float64 `yaml:"edge_padding"` // Gap kept between the car and the road edge
}

// Traffic defines obstacle cars.
type Traffic struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	MinSpeed   float64 `yaml:"min_speed"` // Inclusive
	MaxSpeed   float64 `yaml:"max_speed"` // Exclusive
	CullMargin float64 `yaml:"cull_margin"`
	Saturation float64 `yaml:"saturation"`
	Lightness  float64 `yaml:"lightness"`
}

// Tuning holds the per-tick constants of the updater.
type Tuning struct {
	SteerStep    float64 `yaml:"steer_step"`
	Friction     float64 `yaml:"friction"`
	Accelerate   float64 `yaml:"accelerate"`
	Brake        float64 `yaml:"brake"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	StartSpeed   float64 `yaml:"start_speed"`
	Easing       float64 `yaml:"easing"`
	SpawnBaseMS  float64 `yaml:"spawn_base_ms"`
	SpawnSlopeMS float64 `yaml:"spawn_slope_ms"`
	ScoreRate    float64 `yaml:"score_rate"`
	SpeedReadout float64 `yaml:"speed_readout"` // HUD speed = game speed * speed_readout
}

// Loop defines frame timing and terminal input behavior.
type Loop struct {
	TickRate       int     `yaml:"tick_rate"`
	ReferenceFrame float64 `yaml:"reference_frame_ms"`
	MaxDelta       float64 `yaml:"max_delta"`
	InitialHoldMS  float64 `yaml:"initial_hold_ms"` // Release a key not yet auto-repeating after this long
	RepeatGapMS    float64 `yaml:"repeat_gap_ms"`   // Release an auto-repeating key after this much silence
}
