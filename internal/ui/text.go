// internal/ui/text.go
package ui

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/render"
	"image/color"
	"unicode/utf8"
)

// TextWidth — ширина строки моноширинной оценкой
func TextWidth(msg string) int {
	return utf8.RuneCountInString(msg) * config.TextCharWidth
}

// DrawCentered выводит строку по центру экрана по горизонтали
func DrawCentered(r render.Renderer, msg string, y int, c color.Color) {
	r.Text(msg, (config.ScreenWidth-TextWidth(msg))/2, y, c)
}
