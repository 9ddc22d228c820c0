// internal/sprite/sprite.go
package sprite

import (
	"go-space-shooter/internal/collision"
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Sprite — неизменяемая картинка вместе с её маской столкновений.
// Один Sprite разделяется всеми сущностями, созданными из одного прототипа.
type Sprite struct {
	ID    string
	Image image.Image
	Mask  *collision.Mask
}

// New оборачивает картинку как есть и строит маску по альфа-каналу.
func New(id string, img image.Image) *Sprite {
	return &Sprite{
		ID:    id,
		Image: img,
		Mask:  collision.FromImage(img, collision.DefaultAlphaThreshold),
	}
}

// Scaled масштабирует картинку до w×h и строит маску уже по результату.
func Scaled(id string, img image.Image, w, h int) *Sprite {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() == w && b.Dy() == h) {
		return New(id, img)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return New(id, dst)
}

// Size возвращает размер картинки.
func (s *Sprite) Size() (int, int) {
	b := s.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Rotated поворачивает спрайт на rad радиан по часовой стрелке (на экране ось Y вниз).
// Холст расширяется до габаритов повёрнутой картинки, маска пересчитывается.
func (s *Sprite) Rotated(id string, rad float64) *Sprite {
	b := s.Image.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	sin, cos := math.Sincos(rad)

	nw := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin) - 1e-9))
	nh := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos) - 1e-9))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	dst := image.NewNRGBA(image.Rect(0, 0, nw, nh))

	scx := float64(b.Min.X) + w/2
	scy := float64(b.Min.Y) + h/2
	dcx, dcy := float64(nw)/2, float64(nh)/2

	// Матрица src→dst: перенос в центр, поворот, перенос в центр нового холста.
	m := f64.Aff3{
		cos, -sin, dcx - (cos*scx - sin*scy),
		sin, cos, dcy - (sin*scx + cos*scy),
	}
	draw.BiLinear.Transform(dst, m, s.Image, b, draw.Over, nil)
	return New(id, dst)
}
