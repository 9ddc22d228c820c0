package render

import (
	"go-space-shooter/internal/sprite"
	"image"
	"image/color"
)

// Call — одна запись Recorder.
type Call struct {
	Op     string // "blit", "fill" или "text"
	Sprite *sprite.Sprite
	Rect   image.Rectangle
	Color  color.Color
	Text   string
}

// Recorder запоминает вызовы рендера вместо рисования.
// Используется в headless-тестах и при отладке порядка отрисовки.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Blit(s *sprite.Sprite, dst image.Rectangle) {
	r.Calls = append(r.Calls, Call{Op: "blit", Sprite: s, Rect: dst})
}

func (r *Recorder) Fill(c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "fill", Color: c})
}

func (r *Recorder) Text(msg string, x, y int, c color.Color) {
	r.Calls = append(r.Calls, Call{Op: "text", Text: msg, Rect: image.Rect(x, y, x, y), Color: c})
}

// Blits возвращает только вызовы Blit.
func (r *Recorder) Blits() []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == "blit" {
			out = append(out, c)
		}
	}
	return out
}

// Texts возвращает выведенные строки по порядку.
func (r *Recorder) Texts() []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == "text" {
			out = append(out, c.Text)
		}
	}
	return out
}

// Reset очищает журнал.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
