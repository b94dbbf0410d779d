package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Load loads the Road Rush configuration and reports where it came from.
// Search order: customPath -> ~/.roadrush/config.yaml -> ./configs/roadrush.yaml -> embedded default.
// Keys missing from a file keep their default values. The result is validated.
func Load(customPath string) (Config, string, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, source, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, source, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, source, nil
}

func load(customPath string) (Config, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "roadrush.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, localPath, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of DefaultConfig.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".roadrush", filename)
}

// Validate rejects configurations the simulation cannot run with.
// All checks happen here so that nothing can fail at frame time.
func Validate(cfg Config) error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
		}
	}

	s, r, p, tr, tu, l := cfg.Surface, cfg.Road, cfg.Player, cfg.Traffic, cfg.Tuning, cfg.Loop

	check(s.Width > 0 && s.Height > 0, "surface must be positive, got %vx%v", s.Width, s.Height)

	check(r.LaneCount >= 1, "road.lane_count must be at least 1, got %d", r.LaneCount)
	check(r.Left < r.Right, "road.left (%v) must be less than road.right (%v)", r.Left, r.Right)
	check(r.Top < r.Bottom, "road.top (%v) must be less than road.bottom (%v)", r.Top, r.Bottom)

	check(p.Width > 0 && p.Height > 0, "player size must be positive, got %vx%v", p.Width, p.Height)
	check(p.MaxSpeedX > 0, "player.max_speed_x must be positive, got %v", p.MaxSpeedX)
	check(p.EdgePadding >= 0, "player.edge_padding must not be negative, got %v", p.EdgePadding)
	check(r.Left+p.EdgePadding <= r.Right-p.Width-p.EdgePadding,
		"player (width %v, padding %v) does not fit on road [%v, %v]", p.Width, p.EdgePadding, r.Left, r.Right)

	check(tr.Width > 0 && tr.Height > 0, "traffic size must be positive, got %vx%v", tr.Width, tr.Height)
	check(tr.MinSpeed < tr.MaxSpeed, "traffic.min_speed (%v) must be less than traffic.max_speed (%v)", tr.MinSpeed, tr.MaxSpeed)
	check(tr.CullMargin >= 0, "traffic.cull_margin must not be negative, got %v", tr.CullMargin)

	check(tu.MinSpeed <= tu.MaxSpeed, "tuning.min_speed (%v) must not exceed tuning.max_speed (%v)", tu.MinSpeed, tu.MaxSpeed)
	check(tu.StartSpeed >= tu.MinSpeed && tu.StartSpeed <= tu.MaxSpeed,
		"tuning.start_speed (%v) must be within [%v, %v]", tu.StartSpeed, tu.MinSpeed, tu.MaxSpeed)
	check(tu.Easing > 0 && tu.Easing <= 1, "tuning.easing must be in (0, 1], got %v", tu.Easing)
	check(tu.Friction >= 0 && tu.Friction < 1, "tuning.friction must be in [0, 1), got %v", tu.Friction)
	check(tu.SteerStep >= 0, "tuning.steer_step must not be negative, got %v", tu.SteerStep)
	check(tu.Accelerate >= 0, "tuning.accelerate must not be negative, got %v", tu.Accelerate)
	check(tu.Brake >= 0, "tuning.brake must not be negative, got %v", tu.Brake)
	check(tu.ScoreRate >= 0, "tuning.score_rate must not be negative, got %v", tu.ScoreRate)
	check(tu.SpawnBaseMS >= 0, "tuning.spawn_base_ms must not be negative, got %v", tu.SpawnBaseMS)
	check(tu.SpawnSlopeMS >= 0, "tuning.spawn_slope_ms must not be negative, got %v", tu.SpawnSlopeMS)
	// Obstacles must move down even at the slowest game speed.
	check(tu.MinSpeed+tr.MinSpeed > 0,
		"tuning.min_speed (%v) plus traffic.min_speed (%v) must be positive", tu.MinSpeed, tr.MinSpeed)

	check(l.TickRate > 0, "loop.tick_rate must be positive, got %d", l.TickRate)
	check(l.ReferenceFrame > 0, "loop.reference_frame_ms must be positive, got %v", l.ReferenceFrame)
	check(l.MaxDelta > 0, "loop.max_delta must be positive, got %v", l.MaxDelta)
	check(l.InitialHoldMS > 0 && l.RepeatGapMS > 0,
		"loop.initial_hold_ms and loop.repeat_gap_ms must be positive, got %v and %v", l.InitialHoldMS, l.RepeatGapMS)

	return errors.Join(errs...)
}
