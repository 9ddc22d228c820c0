// internal/background/background.go
package background

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/sprite"
	"image"
	"math"
)

// Layer — косметический фон: только обновление и отрисовка, на геймплей не влияет
type Layer interface {
	Update(dt float64)
	Draw(r render.Renderer)
}

// Fixed — неподвижная картинка во весь экран
type Fixed struct {
	sprite *sprite.Sprite
	rect   image.Rectangle
}

func NewFixed(s *sprite.Sprite) *Fixed {
	w, h := s.Size()
	return &Fixed{sprite: s, rect: image.Rect(0, 0, w, h)}
}

func (f *Fixed) Update(dt float64) {}

func (f *Fixed) Draw(r render.Renderer) {
	r.Blit(f.sprite, f.rect)
}

// Animated — циклическая смена кадров по AnimationCounter
type Animated struct {
	frames  []*sprite.Sprite
	counter *component.AnimationCounter
}

// NewAnimated создаёт анимированный фон; frameTime — длительность кадра в секундах.
func NewAnimated(frames []*sprite.Sprite, frameTime float64) (*Animated, error) {
	counter, err := component.NewAnimationCounter(frameTime, len(frames))
	if err != nil {
		return nil, err
	}
	return &Animated{frames: frames, counter: counter}, nil
}

func (a *Animated) Update(dt float64) {
	a.counter.Update(dt)
}

// Frame — индекс показываемого кадра
func (a *Animated) Frame() int {
	return a.counter.Frame()
}

func (a *Animated) Draw(r render.Renderer) {
	if len(a.frames) == 0 {
		return
	}
	s := a.frames[a.counter.Frame()]
	w, h := s.Size()
	r.Blit(s, image.Rect(0, 0, w, h))
}

// Scrolling — картинка, бесконечно едущая вниз. Рисуется дважды:
// на смещении и ровно на высоту экрана выше.
type Scrolling struct {
	sprite *sprite.Sprite
	speed  float64
	height int
	y      float64
	top    int
}

// NewScrolling создаёт прокручиваемый фон высотой height со скоростью speed пикс/с.
func NewScrolling(s *sprite.Sprite, speed float64, height int) *Scrolling {
	return &Scrolling{sprite: s, speed: speed, height: height}
}

func (s *Scrolling) Update(dt float64) {
	s.y += s.speed * dt
	for s.height > 0 && int(math.Round(s.y)) > s.height {
		// перескок за высоту сохраняется
		s.y -= float64(s.height)
	}
	s.top = int(math.Round(s.y))
}

// Offset — текущее смещение верхнего края
func (s *Scrolling) Offset() int {
	return s.top
}

func (s *Scrolling) Draw(r render.Renderer) {
	w, h := s.sprite.Size()
	r.Blit(s.sprite, image.Rect(0, s.top, w, s.top+h))
	r.Blit(s.sprite, image.Rect(0, s.top-s.height, w, s.top-s.height+h))
}
