package background

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/sprite"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blank(id string, w, h int) *sprite.Sprite {
	return sprite.New(id, image.NewNRGBA(image.Rect(0, 0, w, h)))
}

func TestFixedDrawsAtOrigin(t *testing.T) {
	rec := &render.Recorder{}
	f := NewFixed(blank("bg", 30, 40))
	f.Update(1)
	f.Draw(rec)
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, image.Rect(0, 0, 30, 40), rec.Calls[0].Rect)
}

func TestAnimatedCyclesFrames(t *testing.T) {
	frames := []*sprite.Sprite{blank("a", 2, 2), blank("b", 2, 2), blank("c", 2, 2)}
	a, err := NewAnimated(frames, 0.4)
	require.NoError(t, err)

	rec := &render.Recorder{}
	a.Draw(rec)
	assert.Equal(t, "a", rec.Calls[0].Sprite.ID)

	seen := []int{}
	for i := 0; i < 4; i++ {
		a.Update(0.4)
		seen = append(seen, a.Frame())
	}
	assert.Equal(t, []int{1, 2, 0, 1}, seen)

	a.Update(0.1)
	assert.Equal(t, 1, a.Frame())
}

func TestAnimatedRejectsBadFrameTime(t *testing.T) {
	_, err := NewAnimated([]*sprite.Sprite{blank("a", 1, 1)}, 0)
	assert.ErrorIs(t, err, component.ErrThreshold)
}

func TestScrollingWraps(t *testing.T) {
	s := NewScrolling(blank("bg", 10, 100), 100, 100)

	s.Update(0.5)
	assert.Equal(t, 50, s.Offset())

	rec := &render.Recorder{}
	s.Draw(rec)
	require.Len(t, rec.Calls, 2)
	assert.Equal(t, image.Rect(0, 50, 10, 150), rec.Calls[0].Rect)
	assert.Equal(t, image.Rect(0, -50, 10, 50), rec.Calls[1].Rect)

	s.Update(0.5) // ровно высота экрана — ещё не перенос
	assert.Equal(t, 100, s.Offset())
	s.Update(0.01)
	assert.Equal(t, 1, s.Offset())
}

func TestScrollingWrapKeepsOvershoot(t *testing.T) {
	s := NewScrolling(blank("bg", 10, 100), 1000, 100)
	s.Update(0.06) // 60
	s.Update(0.06) // 120 → 20
	assert.Equal(t, 20, s.Offset())

	rec := &render.Recorder{}
	s.Draw(rec)
	assert.Equal(t, image.Rect(0, 20, 10, 120), rec.Calls[0].Rect)
	assert.Equal(t, image.Rect(0, -80, 10, 20), rec.Calls[1].Rect)
}
