package draw

import (
	"math"
	"strings"

	"github.com/vovakirdan/roadrush/internal/core"
)

// Fonts at or above this size are letter-spaced to stand out in the grid.
const largeFontSize = 32

// ScreenSurface rasterizes logical pixels onto a core.Screen.
// The logical surface is stretched to cover the whole screen, so one cell
// spans width/cols by height/rows pixels.
type ScreenSurface struct {
	screen        *core.Screen
	width, height float64
}

// NewScreenSurface wraps screen as a surface of the given logical size.
func NewScreenSurface(screen *core.Screen, width, height float64) *ScreenSurface {
	return &ScreenSurface{screen: screen, width: width, height: height}
}

// Screen returns the underlying cell buffer.
func (s *ScreenSurface) Screen() *core.Screen {
	return s.screen
}

// Size returns the logical surface size.
func (s *ScreenSurface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *ScreenSurface) scaleX() float64 {
	return float64(s.screen.Width()) / s.width
}

func (s *ScreenSurface) scaleY() float64 {
	return float64(s.screen.Height()) / s.height
}

// cells maps a pixel box to the cells it covers.
// A box with positive size always covers at least one cell.
func (s *ScreenSurface) cells(b core.Box) core.Rect {
	x0 := int(math.Round(b.X * s.scaleX()))
	x1 := int(math.Round(b.Right() * s.scaleX()))
	y0 := int(math.Round(b.Y * s.scaleY()))
	y1 := int(math.Round(b.Bottom() * s.scaleY()))

	if b.W > 0 && x1 == x0 {
		x1 = x0 + 1
	}
	if b.H > 0 && y1 == y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear erases the whole screen.
func (s *ScreenSurface) Clear() {
	s.screen.Clear()
}

// FillRect tints the cells covered by b.
func (s *ScreenSurface) FillRect(b core.Box, p Paint) {
	s.screen.FillRect(s.cells(b), p.Color, p.Alpha)
}

// StrokeRect draws the four edges of b as lines of the stroke width.
func (s *ScreenSurface) StrokeRect(b core.Box, st Stroke) {
	s.Line(b.X, b.Y, b.Right(), b.Y, st)
	s.Line(b.X, b.Bottom(), b.Right(), b.Bottom(), st)
	s.Line(b.X, b.Y, b.X, b.Bottom(), st)
	s.Line(b.Right(), b.Y, b.Right(), b.Bottom(), st)
}

// Line walks the segment in half-cell steps, skipping the gaps of a dashed
// stroke. Lines thinner than a cell are drawn as box-drawing glyphs over the
// existing background; wider lines tint whole cells.
func (s *ScreenSurface) Line(x0, y0, x1, y1 float64, st Stroke) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)

	step := 0.5 * math.Min(1/s.scaleX(), 1/s.scaleY())
	glyph := lineGlyph(dx, dy)
	thin := st.Width*s.scaleX() < 1 && st.Width*s.scaleY() < 1
	period := st.Dash + st.Gap

	lastX, lastY := math.MinInt, math.MinInt
	for d := 0.0; d <= length; d += step {
		if st.Dash > 0 && math.Mod(d, period) >= st.Dash {
			continue
		}

		t := 0.0
		if length > 0 {
			t = d / length
		}
		px, py := x0+dx*t, y0+dy*t

		if !thin {
			half := st.Width / 2
			s.FillRect(core.NewBox(px-half, py-half, st.Width, st.Width), st.Paint)
			continue
		}

		cx := int(math.Floor(px * s.scaleX()))
		cy := int(math.Floor(py * s.scaleY()))
		if cx == lastX && cy == lastY {
			continue
		}
		lastX, lastY = cx, cy

		cell := s.screen.GetCell(cx, cy)
		cell.Rune = glyph
		cell.Fg = core.Blend(cell.Bg, st.Paint.Color, st.Paint.Alpha)
		s.screen.SetCell(cx, cy, cell)
	}
}

func lineGlyph(dx, dy float64) rune {
	switch {
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '╲'
	default:
		return '╱'
	}
}

// Text draws text centered on x. Large fonts are letter-spaced.
func (s *ScreenSurface) Text(x, y float64, text string, f Font, p Paint) {
	if f.Size >= largeFontSize {
		text = letterSpace(text)
	}

	cx := int(math.Round(x * s.scaleX()))
	cy := int(math.Round(y * s.scaleY()))
	start := cx - len([]rune(text))/2

	i := 0
	for _, r := range text {
		cell := s.screen.GetCell(start+i, cy)
		cell.Rune = r
		cell.Fg = core.Blend(cell.Bg, p.Color, p.Alpha)
		s.screen.SetCell(start+i, cy, cell)
		i++
	}
}

func letterSpace(text string) string {
	runes := []rune(text)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
