// Package draw defines the render surface the game draws on and two
// implementations: a cell rasterizer for the terminal and a recorder that
// keeps the drawing commands for tests and headless runs.
package draw

import "github.com/vovakirdan/roadrush/internal/core"

// Paint is a color with opacity in [0, 1].
type Paint struct {
	Color core.Color
	Alpha float64
}

// Solid returns an opaque paint.
func Solid(c core.Color) Paint {
	return Paint{Color: c, Alpha: 1}
}

// RGBA returns a paint from 8-bit channels and an opacity.
func RGBA(r, g, b uint8, alpha float64) Paint {
	return Paint{Color: core.RGB(r, g, b), Alpha: alpha}
}

// Stroke describes how lines and outlines are drawn.
// A zero Dash draws a solid line.
type Stroke struct {
	Paint Paint
	Width float64
	Dash  float64 // Length of each drawn segment
	Gap   float64 // Length of each skipped segment
}

// Font selects the size of centered text.
type Font struct {
	Size float64
	Bold bool
}

// Surface is a fixed-size drawing target in logical pixels.
type Surface interface {
	// Size returns the logical width and height in pixels.
	Size() (w, h float64)

	// Clear erases the whole surface.
	Clear()

	// FillRect paints the inside of b.
	FillRect(b core.Box, p Paint)

	// StrokeRect paints the outline of b, centered on its edges.
	StrokeRect(b core.Box, s Stroke)

	// Line paints a straight segment from (x0, y0) to (x1, y1).
	Line(x0, y0, x1, y1 float64, s Stroke)

	// Text paints text horizontally centered on x with its baseline at y.
	Text(x, y float64, text string, f Font, p Paint)
}
