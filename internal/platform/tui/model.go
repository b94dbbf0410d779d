package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/draw"
	"github.com/vovakirdan/roadrush/internal/game"
)

// Rows below the road: the HUD bar and the help line.
const chromeRows = 2

// Options configures a terminal session.
type Options struct {
	Config config.Config
	Seed   int64
	Width  int // Terminal size in cells; a WindowSizeMsg replaces it
	Height int
	Logger *log.Logger // Nil discards logs
	// ScreenshotDir overrides ~/.roadrush/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a Road Rush session.
type Model struct {
	driver   *game.Driver
	clock    *game.SystemClock
	screen   *core.Screen
	releaser *Releaser
	hud      *StatusBar
	keys     KeyMap
	help     help.Model
	logger   *log.Logger

	tickRate      int
	screenshotDir string
	width         int
	height        int
	crashed       bool
	quitting      bool
}

// NewModel creates a model for a validated config.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	width, height := opts.Width, opts.Height
	screen := core.NewScreen(width, playRows(height))
	hud := &StatusBar{}
	surface := draw.NewScreenSurface(screen, cfg.Surface.Width, cfg.Surface.Height)
	driver := game.NewDriver(cfg, game.NewRandomSource(opts.Seed, cfg.Traffic), surface, hud)

	h := help.New()
	h.Width = width

	logger.Info("session created", "seed", opts.Seed, "lanes", cfg.Road.LaneCount, "cols", width, "rows", height)

	return Model{
		driver:        driver,
		clock:         game.NewSystemClock(),
		screen:        screen,
		releaser:      NewReleaser(cfg.Loop.InitialHoldMS, cfg.Loop.RepeatGapMS),
		hud:           hud,
		keys:          DefaultKeyMap(),
		help:          h,
		logger:        logger,
		tickRate:      cfg.Loop.TickRate,
		screenshotDir: opts.ScreenshotDir,
		width:         width,
		height:        height,
	}
}

// playRows returns the rows left for the road at a terminal height.
func playRows(height int) int {
	return max(height-chromeRows, 1)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.driver.Start(m.clock.Now())
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.BlurMsg:
		// Key repeats stop arriving once the window loses focus.
		m.releaser.Reset()
		m.driver.Keys().Release()
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.hud.Score())
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(time.Now()); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		m.logger.Info("restart", "score", m.hud.Score())
		m.driver.Restart()
		m.crashed = false
		m.hud.SetCrashed(false)
		return m, nil
	}

	if k, ok := m.keys.Input(msg); ok {
		m.releaser.Press(k, m.clock.Now())
		m.driver.Keys().KeyDown(k)
	}
	return m, nil
}

// handleResize fits the cell buffer to the new terminal size. The session
// keeps running; only the scale of the road changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick releases silent keys and runs one frame.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	now := m.clock.At(at)
	for _, k := range m.releaser.Expire(now) {
		m.driver.Keys().KeyUp(k)
	}

	m.driver.Frame(now)

	snap := m.driver.Snapshot()
	if snap.GameOver && !m.crashed {
		m.crashed = true
		m.hud.SetCrashed(true)
		m.logger.Info("crash",
			"score", game.ScoreReadout(snap.Score),
			"speed", m.driver.SpeedReadout(),
			"frame", snap.Frame,
			"spawned", snap.Spawned,
		)
	}

	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current screen and HUD to a text file.
func (m Model) saveScreenshot(at time.Time) (string, error) {
	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".roadrush", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot directory: %w", err)
	}

	filename := fmt.Sprintf("roadrush_%s.txt", at.Format("20060102_150405"))
	path := filepath.Join(dir, filename)

	content := m.screen.String() + "\n" + m.hud.Text() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the road, the HUD bar and the controls hint.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.hud.View(m.width) + "\n" + m.help.View(m.keys)
}

// Snapshot returns the driver's current scalar state.
func (m Model) Snapshot() game.Snapshot {
	return m.driver.Snapshot()
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	if opts.Width <= 0 || opts.Height <= chromeRows {
		return errors.New("tui: terminal too small")
	}

	model := NewModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
