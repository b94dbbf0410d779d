package core

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a screen cell color in "#rrggbb" form.
// The zero value means the terminal's default color.
type Color string

// ColorDefault leaves the terminal color untouched.
const ColorDefault Color = ""

// Predefined colors for road and HUD elements.
const (
	ColorBlack  Color = "#000000"
	ColorWhite  Color = "#ffffff"
	ColorYellow Color = "#ffdb5c"
	ColorGray   Color = "#8a8f9e"
)

// RGB builds a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}

// HSL builds a color from hue in degrees and saturation/lightness in [0, 1].
func HSL(h, s, l float64) Color {
	return Color(colorful.Hsl(h, s, l).Clamped().Hex())
}

// IsDefault reports whether c is the terminal default color.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}

// Blend paints over on top of base with the given opacity in [0, 1].
// A default base is treated as black, the usual terminal background.
func Blend(base, over Color, alpha float64) Color {
	switch {
	case alpha <= 0 || over.IsDefault():
		return base
	case alpha >= 1:
		return over
	}

	b, err := colorful.Hex(string(base))
	if err != nil {
		b = colorful.Color{}
	}
	o, err := colorful.Hex(string(over))
	if err != nil {
		return base
	}
	return Color(b.BlendRgb(o, alpha).Clamped().Hex())
}
