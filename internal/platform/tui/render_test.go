package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/roadrush/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(1, 0, "road", core.ColorDefault)
	s.DrawText(2, 2, "rush", core.ColorYellow)

	out := RenderScreen(s)

	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "road")
	assert.Contains(t, out, "rush")
}

func TestStyleCacheReusesStyles(t *testing.T) {
	c := styleCache{}
	k := cellStyle{fg: core.ColorWhite, bg: core.ColorBlack}

	c.get(k)
	c.get(k)
	c.get(cellStyle{})

	assert.Len(t, c, 2)
}

func TestStatusBar(t *testing.T) {
	b := &StatusBar{}
	b.SetSpeed(100)
	b.SetScore(42)

	assert.Equal(t, "Speed: 100  Score: 42", b.Text())
	assert.Contains(t, b.View(40), "100")
	assert.Contains(t, b.View(40), "42")
	assert.NotContains(t, b.View(40), "CRASHED")

	b.SetCrashed(true)
	assert.Contains(t, b.View(40), "CRASHED")
}
