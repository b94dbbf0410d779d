package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/roadrush/internal/input"
)

func TestReleaserInitialHold(t *testing.T) {
	r := NewReleaser(550, 120)

	assert.True(t, r.Press(input.Left, 0), "first press is fresh")
	assert.Empty(t, r.Expire(550), "still inside the initial hold")
	assert.True(t, r.Held(input.Left))

	assert.Equal(t, []input.Key{input.Left}, r.Expire(551))
	assert.False(t, r.Held(input.Left))
	assert.Empty(t, r.Expire(2000), "a released key is reported once")
}

func TestReleaserRepeatGap(t *testing.T) {
	r := NewReleaser(550, 120)

	r.Press(input.Up, 0)
	assert.False(t, r.Press(input.Up, 500), "auto-repeat is not a fresh press")

	assert.Empty(t, r.Expire(620))
	assert.Equal(t, []input.Key{input.Up}, r.Expire(621))
}

func TestReleaserExpiresInOrder(t *testing.T) {
	r := NewReleaser(100, 50)
	r.Press(input.Up, 0)
	r.Press(input.Right, 0)
	r.Press(input.Down, 0)
	r.Press(input.Left, 90)

	assert.Equal(t, []input.Key{input.Down, input.Right, input.Up}, r.Expire(150))
	assert.True(t, r.Held(input.Left))

	r.Reset()
	assert.False(t, r.Held(input.Left))
	assert.Empty(t, r.Expire(1000))
}
