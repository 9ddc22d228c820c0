// internal/render/render.go
package render

import (
	"go-space-shooter/internal/sprite"
	"image"
	"image/color"
)

// Renderer — то, что ядро игры требует от графики: нарисовать спрайт в прямоугольнике,
// залить экран (с учётом альфы) и вывести строку текста.
// Реализация на ebiten живёт в internal/platform.
type Renderer interface {
	Blit(s *sprite.Sprite, dst image.Rectangle)
	Fill(c color.Color)
	Text(msg string, x, y int, c color.Color)
}
