package collision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(w, h int, a uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: a})
		}
	}
	return img
}

func TestFromImageThreshold(t *testing.T) {
	img := filled(4, 4, 0)
	img.SetNRGBA(1, 2, color.NRGBA{A: 128})
	img.SetNRGBA(2, 2, color.NRGBA{A: 127})

	m := FromImage(img, DefaultAlphaThreshold)
	w, h := m.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 4, h)
	assert.True(t, m.At(1, 2))
	assert.False(t, m.At(2, 2))
	assert.Equal(t, 1, m.Count())
}

func TestFromImageOffsetBounds(t *testing.T) {
	img := image.NewNRGBA(image.Rect(10, 10, 13, 13))
	img.SetNRGBA(10, 10, color.NRGBA{A: 255})
	m := FromImage(img, DefaultAlphaThreshold)
	assert.True(t, m.At(0, 0))
	assert.Equal(t, 1, m.Count())
}

func TestOverlap(t *testing.T) {
	solid := Full(4, 4)
	empty := NewMask(4, 4)

	assert.True(t, solid.Overlap(solid, 0, 0))
	assert.True(t, solid.Overlap(solid, 3, 3))
	assert.False(t, solid.Overlap(solid, 4, 0), "соседние маски не пересекаются")
	assert.False(t, solid.Overlap(empty, 0, 0))
	assert.False(t, empty.Overlap(solid, -2, -2))
}

func TestOverlapTransparentPadding(t *testing.T) {
	// Спрайты 8×8 с непрозрачным ядром 2×2 в противоположных углах
	a := filled(8, 8, 0)
	b := filled(8, 8, 0)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			a.SetNRGBA(x, y, color.NRGBA{A: 255})
			b.SetNRGBA(6+x, 6+y, color.NRGBA{A: 255})
		}
	}
	ma := FromImage(a, DefaultAlphaThreshold)
	mb := FromImage(b, DefaultAlphaThreshold)

	require.Equal(t, 4, ma.Count())
	assert.False(t, ma.Overlap(mb, 0, 0))
	assert.False(t, ma.Overlap(mb, -3, -3))
	assert.True(t, ma.Overlap(mb, -6, -6))
	assert.True(t, mb.Overlap(ma, 6, 6))
}

func TestOverlapWideMask(t *testing.T) {
	// Строка длиннее одного слова
	a := NewMask(130, 1)
	a.set(129, 0)
	b := Full(1, 1)
	assert.True(t, a.Overlap(b, 129, 0))
	assert.False(t, a.Overlap(b, 128, 0))
}
