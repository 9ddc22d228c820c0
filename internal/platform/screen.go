// internal/platform/screen.go
package platform

import (
	"go-space-shooter/internal/sprite"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Screen рисует кадр на ebiten.Image. Картинки спрайтов загружаются в GPU
// один раз и переиспользуются, пока жив Sprite.
type Screen struct {
	target *ebiten.Image
	face   font.Face
	ascent int
	images map[*sprite.Sprite]*ebiten.Image
}

func NewScreen(face font.Face) *Screen {
	return &Screen{
		face:   face,
		ascent: face.Metrics().Ascent.Ceil(),
		images: make(map[*sprite.Sprite]*ebiten.Image),
	}
}

// Begin задаёт кадр, в который пойдут следующие вызовы
func (s *Screen) Begin(target *ebiten.Image) {
	s.target = target
}

func (s *Screen) Blit(sp *sprite.Sprite, dst image.Rectangle) {
	if s.target == nil || sp == nil || dst.Empty() {
		return
	}
	img, ok := s.images[sp]
	if !ok {
		img = ebiten.NewImageFromImage(sp.Image)
		s.images[sp] = img
	}
	w, h := sp.Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Dx())/float64(w), float64(dst.Dy())/float64(h))
	op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	s.target.DrawImage(img, op)
}

func (s *Screen) Fill(c color.Color) {
	if s.target == nil {
		return
	}
	b := s.target.Bounds()
	vector.DrawFilledRect(s.target, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), c, false)
}

// Text выводит строку; (x, y) — левый верхний угол, а не базовая линия
func (s *Screen) Text(msg string, x, y int, c color.Color) {
	if s.target == nil {
		return
	}
	text.Draw(s.target, msg, s.face, x, y+s.ascent, c)
}
