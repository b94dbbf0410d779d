package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	hudStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f7f7f7")).
			Background(lipgloss.Color("#1b2033"))

	hudLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffdb5c")).
			Background(lipgloss.Color("#1b2033")).
			Bold(true)

	hudCrashStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#c0392b")).
			Bold(true)
)

// StatusBar is the HUD shown under the road. It implements game.HUD.
type StatusBar struct {
	speed   int
	score   int
	crashed bool
}

// SetSpeed stores the speed readout.
func (b *StatusBar) SetSpeed(speed int) {
	b.speed = speed
}

// SetScore stores the score readout.
func (b *StatusBar) SetScore(score int) {
	b.score = score
}

// SetCrashed toggles the crash marker.
func (b *StatusBar) SetCrashed(crashed bool) {
	b.crashed = crashed
}

// Speed returns the last speed readout.
func (b *StatusBar) Speed() int {
	return b.speed
}

// Score returns the last score readout.
func (b *StatusBar) Score() int {
	return b.score
}

// Text returns the unstyled bar content.
func (b *StatusBar) Text() string {
	return fmt.Sprintf("Speed: %d  Score: %d", b.speed, b.score)
}

// View renders the bar padded to width cells.
func (b *StatusBar) View(width int) string {
	content := hudLabelStyle.Render(" Speed ") + hudStyle.Render(fmt.Sprintf("%d ", b.speed)) +
		hudLabelStyle.Render(" Score ") + hudStyle.Render(fmt.Sprintf("%d ", b.score))
	if b.crashed {
		content += " " + hudCrashStyle.Render(" CRASHED ")
	}
	return hudStyle.Width(width).MaxWidth(width).Render(content)
}
