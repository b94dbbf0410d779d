package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/roadrush/internal/input"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapInput(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want input.Key
		ok   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, input.Left, true},
		{"a", runeKey("a"), input.Left, true},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, input.Right, true},
		{"d", runeKey("d"), input.Right, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, input.Up, true},
		{"w", runeKey("w"), input.Up, true},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, input.Down, true},
		{"s", runeKey("s"), input.Down, true},
		{"restart is not an input", runeKey("r"), "", false},
		{"unbound", runeKey("x"), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.Input(tt.msg)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 6)

	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	assert.Equal(t, 7, total, "every binding appears in the full help")
}
