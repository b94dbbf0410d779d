package draw

import "github.com/vovakirdan/roadrush/internal/core"

// Op identifies a recorded drawing command.
type Op int

const (
	OpClear Op = iota
	OpFillRect
	OpStrokeRect
	OpLine
	OpText
)

// String returns a human-readable name for the operation.
func (o Op) String() string {
	switch o {
	case OpClear:
		return "Clear"
	case OpFillRect:
		return "FillRect"
	case OpStrokeRect:
		return "StrokeRect"
	case OpLine:
		return "Line"
	case OpText:
		return "Text"
	default:
		return "Unknown"
	}
}

// Command is one recorded call on a Recorder.
// Only the fields relevant to Op are set.
type Command struct {
	Op     Op
	Box    core.Box
	X0, Y0 float64
	X1, Y1 float64
	Paint  Paint
	Stroke Stroke
	Text   string
	Font   Font
}

// Recorder is a Surface that keeps every command since the last Clear.
type Recorder struct {
	width, height float64
	commands      []Command
}

// NewRecorder creates a recorder for a surface of the given size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{width: width, height: height}
}

// Size returns the logical surface size.
func (r *Recorder) Size() (float64, float64) {
	return r.width, r.height
}

// Clear drops previously recorded commands and records the clear itself.
func (r *Recorder) Clear() {
	r.commands = append(r.commands[:0], Command{Op: OpClear})
}

// FillRect records a filled rectangle.
func (r *Recorder) FillRect(b core.Box, p Paint) {
	r.commands = append(r.commands, Command{Op: OpFillRect, Box: b, Paint: p})
}

// StrokeRect records a rectangle outline.
func (r *Recorder) StrokeRect(b core.Box, s Stroke) {
	r.commands = append(r.commands, Command{Op: OpStrokeRect, Box: b, Stroke: s})
}

// Line records a line segment.
func (r *Recorder) Line(x0, y0, x1, y1 float64, s Stroke) {
	r.commands = append(r.commands, Command{Op: OpLine, X0: x0, Y0: y0, X1: x1, Y1: y1, Stroke: s})
}

// Text records centered text.
func (r *Recorder) Text(x, y float64, text string, f Font, p Paint) {
	r.commands = append(r.commands, Command{Op: OpText, X0: x, Y0: y, Text: text, Font: f, Paint: p})
}

// Commands returns the commands recorded since the last Clear.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Filter returns the recorded commands with the given operation.
func (r *Recorder) Filter(op Op) []Command {
	var out []Command
	for _, c := range r.commands {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}
