package game

import (
	"time"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/draw"
	"github.com/vovakirdan/roadrush/internal/input"
)

// Clock returns a monotonically increasing timestamp in milliseconds.
type Clock interface {
	Now() float64
}

// SystemClock measures wall time since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock starting at zero now.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns the milliseconds elapsed since the clock was created.
func (c *SystemClock) Now() float64 {
	return c.At(time.Now())
}

// At converts a wall time, e.g. a Bubble Tea tick, to clock milliseconds.
func (c *SystemClock) At(t time.Time) float64 {
	return float64(t.Sub(c.start)) / float64(time.Millisecond)
}

// ManualClock only moves when told to. Used by tests and headless runs.
type ManualClock struct {
	now float64
}

// Now returns the current manual time.
func (c *ManualClock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds.
func (c *ManualClock) Advance(ms float64) {
	c.now += ms
}

// Pilot can press keys before each update. The headless runner uses one to
// play without a human.
type Pilot interface {
	Steer(s *State, keys *input.Tracker)
}

// Driver runs one session: it owns the state, the held keys, the updater and
// the renderer, and sequences them once per frame. It only ever runs; the
// host decides when frames stop arriving.
type Driver struct {
	state    *State
	keys     *input.Tracker
	updater  *Updater
	renderer Renderer
	surface  draw.Surface
	hud      HUD
	pilot    Pilot

	referenceFrame float64
	maxDelta       float64
	lastFrame      float64
	frames         uint64
}

// NewDriver creates a driver for a validated config.
// hud may be nil when nobody displays the numbers.
func NewDriver(cfg config.Config, rnd RandomSource, surface draw.Surface, hud HUD) *Driver {
	return &Driver{
		state:          NewState(cfg),
		keys:           input.NewTracker(),
		updater:        NewUpdater(cfg, rnd),
		renderer:       NewRenderer(cfg),
		surface:        surface,
		hud:            hud,
		referenceFrame: cfg.Loop.ReferenceFrame,
		maxDelta:       cfg.Loop.MaxDelta,
	}
}

// Start marks now as the previous frame time so the first delta is small.
func (d *Driver) Start(now float64) {
	d.lastFrame = now
}

// Delta converts the time since the previous frame into nominal frames,
// clamped to [0, maxDelta]. A timestamp going backwards yields zero.
func (d *Driver) Delta(now float64) float64 {
	return core.ClampF((now-d.lastFrame)/d.referenceFrame, 0, d.maxDelta)
}

// Frame runs one frame at timestamp now: road, update, then traffic, player,
// overlay and HUD.
func (d *Driver) Frame(now float64) {
	delta := d.Delta(now)
	d.lastFrame = now
	d.frames++

	d.surface.Clear()
	d.renderer.DrawRoad(d.surface, d.state.Road)

	if d.pilot != nil && !d.state.GameOver {
		d.pilot.Steer(d.state, d.keys)
	}
	d.updater.Update(d.state, d.keys, delta, now)

	d.renderer.DrawScene(d.surface, d.state, d.hud)
}

// Tick runs one frame at the clock's current time.
func (d *Driver) Tick(c Clock) {
	d.Frame(c.Now())
}

// Restart resets the session. Held keys are kept.
func (d *Driver) Restart() {
	d.state.Reset()
}

// Keys returns the held-key tracker the host feeds key events into.
func (d *Driver) Keys() *input.Tracker {
	return d.keys
}

// SetPilot installs a pilot that presses keys before each update.
func (d *Driver) SetPilot(p Pilot) {
	d.pilot = p
}

// SetSurface replaces the render target, e.g. after a terminal resize.
func (d *Driver) SetSurface(surface draw.Surface) {
	d.surface = surface
}

// Snapshot returns the current scalar state.
func (d *Driver) Snapshot() Snapshot {
	return d.state.snapshot(d.frames)
}

// SpeedReadout returns the HUD speed for the current game speed.
func (d *Driver) SpeedReadout() int {
	return d.renderer.SpeedReadout(d.state.GameSpeed)
}
