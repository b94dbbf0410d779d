package draw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/roadrush/internal/core"
)

func TestRecorderRecordsCommands(t *testing.T) {
	r := NewRecorder(600, 700)

	w, h := r.Size()
	assert.Equal(t, 600.0, w)
	assert.Equal(t, 700.0, h)

	r.Clear()
	r.FillRect(core.NewBox(1, 2, 3, 4), Solid(core.ColorYellow))
	r.Line(0, 0, 0, 10, Stroke{Paint: Solid(core.ColorWhite), Width: 6, Dash: 25, Gap: 20})
	r.Text(300, 330, "Crash!", Font{Size: 46, Bold: true}, Solid(core.ColorWhite))

	cmds := r.Commands()
	require.Len(t, cmds, 4)

	for i, op := range []Op{OpClear, OpFillRect, OpLine, OpText} {
		assert.Equal(t, op, cmds[i].Op, "command %d", i)
	}
	assert.Equal(t, core.NewBox(1, 2, 3, 4), cmds[1].Box)
	assert.Equal(t, "Crash!", cmds[3].Text)
	assert.Equal(t, 46.0, cmds[3].Font.Size)
}

func TestRecorderClearResets(t *testing.T) {
	r := NewRecorder(10, 10)
	r.FillRect(core.NewBox(0, 0, 1, 1), Solid(core.ColorWhite))
	r.FillRect(core.NewBox(0, 0, 1, 1), Solid(core.ColorWhite))

	r.Clear()

	assert.Equal(t, []Command{{Op: OpClear}}, r.Commands())
}

func TestRecorderFilter(t *testing.T) {
	r := NewRecorder(10, 10)
	r.FillRect(core.NewBox(0, 0, 1, 1), Solid(core.ColorWhite))
	r.Text(5, 5, "a", Font{Size: 20}, Solid(core.ColorWhite))
	r.FillRect(core.NewBox(2, 2, 1, 1), Solid(core.ColorWhite))

	assert.Len(t, r.Filter(OpFillRect), 2)
	assert.Empty(t, r.Filter(OpStrokeRect))
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "Text", OpText.String())
	assert.Equal(t, "Unknown", Op(99).String())
}
