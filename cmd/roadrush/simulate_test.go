package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/game"
)

func TestSimulateShortRun(t *testing.T) {
	cfg := config.DefaultConfig()
	res := simulate(cfg, 1, 60, 0, nil, log.New(io.Discard))

	require.False(t, res.Crashed, "no car can reach the player within a second")
	assert.Equal(t, uint64(60), res.Frames)
	assert.Equal(t, 1, res.Spawned)
	assert.InDelta(t, 2400, res.Score, 1, "40 points per reference frame")
	assert.Equal(t, 100, res.Speed)
}

func TestSimulateStopsAtCrash(t *testing.T) {
	cfg := config.DefaultConfig()
	res := simulate(cfg, 3, 100000, 0, nil, log.New(io.Discard))

	require.True(t, res.Crashed, "driving straight through traffic should crash")
	assert.Equal(t, res.Frames, res.CrashFrame, "the run stops at the crash")
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultConfig()
	run := func() simResult {
		return simulate(cfg, 42, 2000, 0, game.NewAutopilot(cfg.Tuning.Friction), log.New(io.Discard))
	}

	assert.Equal(t, run(), run(), "same seed should give the same run")
}
