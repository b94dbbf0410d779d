package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/draw"
	"github.com/vovakirdan/roadrush/internal/input"
)

func newTestDriver(t *testing.T) (*Driver, *draw.Recorder, *recordingHUD) {
	t.Helper()
	cfg := config.DefaultConfig()
	rec := draw.NewRecorder(cfg.Surface.Width, cfg.Surface.Height)
	hud := &recordingHUD{}
	return NewDriver(cfg, newFixedSource(), rec, hud), rec, hud
}

func TestDriverDelta(t *testing.T) {
	d, _, _ := newTestDriver(t)
	d.Start(100)

	tests := []struct {
		name string
		now  float64
		want float64
	}{
		{"one reference frame", 116.67, 1},
		{"half frame", 100 + 16.67/2, 0.5},
		{"long stall is capped", 1100, 2},
		{"clock going backwards", 50, 0},
		{"same timestamp", 100, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, d.Delta(tc.now), 1e-9)
		})
	}
}

func TestDriverFrameOrder(t *testing.T) {
	d, rec, hud := newTestDriver(t)
	d.Start(0)

	d.Frame(16.67)

	cmds := rec.Commands()
	require.NotEmpty(t, cmds)
	assert.Equal(t, draw.OpClear, cmds[0].Op, "every frame starts from a cleared surface")
	assert.Equal(t, draw.OpFillRect, cmds[1].Op, "road is drawn first")
	assert.Equal(t, roadColor, cmds[1].Paint.Color)

	last := cmds[len(cmds)-3]
	assert.Equal(t, playerColor, last.Paint.Color, "player body is drawn after the road")

	assert.Equal(t, []int{100}, hud.speeds)
	assert.Equal(t, []int{40}, hud.scores)
	assert.Equal(t, uint64(1), d.Snapshot().Frame)
}

func TestDriverRunsOnManualClock(t *testing.T) {
	d, _, _ := newTestDriver(t)
	clock := &ManualClock{}
	d.Start(clock.Now())

	const frames = 120
	for i := 0; i < frames; i++ {
		clock.Advance(16.67)
		d.Tick(clock)
	}

	snap := d.Snapshot()
	assert.False(t, snap.GameOver, "traffic in the first lane never reaches a centered player")
	assert.InDelta(t, 40.0*frames, snap.Score, 1e-6)
	assert.Equal(t, uint64(frames), snap.Frame)
	assert.Greater(t, snap.Spawned, 0)
	assert.Equal(t, 100, d.SpeedReadout())
}

func TestDriverRestartKeepsHeldKeys(t *testing.T) {
	d, _, _ := newTestDriver(t)
	d.Start(0)
	d.Keys().KeyDown(input.Up)
	for i := 1; i <= 30; i++ {
		d.Frame(float64(i) * 16.67)
	}
	require.Greater(t, d.Snapshot().TargetSpeed, 4.0)

	d.Restart()

	snap := d.Snapshot()
	assert.Equal(t, 0.0, snap.Score)
	assert.Equal(t, 4.0, snap.TargetSpeed)
	assert.Equal(t, 0, snap.Obstacles)
	assert.True(t, d.Keys().IsHeld(input.Up), "held keys survive a restart")
}

func TestDriverPilotSkippedAfterCrash(t *testing.T) {
	d, _, _ := newTestDriver(t)
	d.Start(0)
	d.state.GameOver = true

	p := &countingPilot{}
	d.SetPilot(p)
	d.Frame(16.67)
	assert.Zero(t, p.calls)

	d.Restart()
	d.Frame(33.34)
	assert.Equal(t, 1, p.calls)
}

type countingPilot struct{ calls int }

func (p *countingPilot) Steer(*State, *input.Tracker) { p.calls++ }

func TestSystemClockAt(t *testing.T) {
	c := NewSystemClock()

	assert.InDelta(t, 1500.0, c.At(c.start.Add(1500*time.Millisecond)), 1e-9)
	assert.GreaterOrEqual(t, c.Now(), 0.0)
}
