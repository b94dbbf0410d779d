package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/input"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := NewModel(Options{
		Config:        config.DefaultConfig(),
		Seed:          1,
		Width:         60,
		Height:        37,
		ScreenshotDir: t.TempDir(),
	})
	require.NotNil(t, m.Init())
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModelTickDrawsRoad(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 60, m.screen.Width())
	assert.Equal(t, 35, m.screen.Height(), "two rows are kept for the HUD and help")

	m, cmd := update(t, m, TickMsg(time.Now()))
	require.NotNil(t, cmd, "every tick schedules the next one")

	assert.Equal(t, core.Color("#1b2033"), m.screen.GetCell(30, 10).Bg)
	assert.Equal(t, core.ColorDefault, m.screen.GetCell(5, 10).Bg, "the verge is left blank")

	view := m.View()
	assert.Contains(t, view, "Speed")
	assert.Contains(t, view, "Score")
	assert.Equal(t, 100, m.hud.Speed())
}

func TestModelKeysAreHeldUntilSilent(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.True(t, m.driver.Keys().IsHeld(input.Left))

	m, _ = update(t, m, TickMsg(time.Now()))
	assert.True(t, m.driver.Keys().IsHeld(input.Left), "a fresh press survives the next frame")

	m, _ = update(t, m, TickMsg(time.Now().Add(600*time.Millisecond)))
	assert.True(t, m.driver.Keys().IsHeld(input.Left), "held through a typical auto-repeat delay")

	m, _ = update(t, m, TickMsg(time.Now().Add(2*time.Second)))
	assert.False(t, m.driver.Keys().IsHeld(input.Left), "silence releases the key")
}

func TestModelBlurReleasesKeys(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, runeKey("a"))

	m, _ = update(t, m, tea.BlurMsg{})

	assert.Empty(t, m.driver.Keys().Held())
	assert.False(t, m.releaser.Held(input.Up))
}

func TestModelRestart(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, TickMsg(time.Now().Add(time.Second)))
	require.Greater(t, m.Snapshot().Score, 0.0)

	m, _ = update(t, m, runeKey("r"))
	assert.Equal(t, 0.0, m.Snapshot().Score)
	assert.False(t, m.Snapshot().GameOver)
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now().Add(time.Second)))
	score := m.Snapshot().Score

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 30})

	assert.Equal(t, 80, m.screen.Width())
	assert.Equal(t, 28, m.screen.Height())
	assert.Equal(t, score, m.Snapshot().Score)
}

func TestModelScreenshot(t *testing.T) {
	m := newTestModel(t)
	m, _ = update(t, m, TickMsg(time.Now()))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)

	matches, err := filepath.Glob(filepath.Join(m.screenshotDir, "roadrush_*.txt"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	data, err := os.ReadFile(matches[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "Speed: 100")
	assert.Equal(t, 35+1, strings.Count(string(data), "\n"), "screen rows, HUD line and trailing newline")
}
