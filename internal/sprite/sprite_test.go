package sprite

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// bar — вертикальная непрозрачная полоса 4×16.
func bar() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{G: 255, A: 255})
		}
	}
	return img
}

func TestNewBuildsMask(t *testing.T) {
	s := New("bar", bar())
	w, h := s.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 16, h)
	assert.Equal(t, 64, s.Mask.Count())
}

func TestScaled(t *testing.T) {
	s := Scaled("bar", bar(), 8, 32)
	w, h := s.Size()
	assert.Equal(t, 8, w)
	assert.Equal(t, 32, h)
	mw, mh := s.Mask.Size()
	assert.Equal(t, 8, mw)
	assert.Equal(t, 32, mh)
	assert.True(t, s.Mask.At(4, 16))

	same := Scaled("bar", bar(), 4, 16)
	assert.Equal(t, 64, same.Mask.Count())
}

func TestRotatedQuarterTurn(t *testing.T) {
	s := New("bar", bar()).Rotated("bar@90", math.Pi/2)
	w, h := s.Size()
	assert.Equal(t, 16, w)
	assert.Equal(t, 4, h)
	assert.Equal(t, "bar@90", s.ID)

	mw, mh := s.Mask.Size()
	assert.Equal(t, 16, mw)
	assert.Equal(t, 4, mh)
	// Центр повёрнутой полосы остаётся непрозрачным.
	assert.True(t, s.Mask.At(8, 2))
}

func TestRotatedDiagonalGrowsCanvas(t *testing.T) {
	s := New("bar", bar()).Rotated("bar@45", math.Pi/4)
	w, h := s.Size()
	assert.Greater(t, w, 4)
	assert.Greater(t, h, 4)
	assert.False(t, s.Mask.At(0, 0), "corners of a rotated canvas stay transparent")
}
