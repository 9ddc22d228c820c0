// internal/ui/hud.go
package ui

import (
	"fmt"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/render"
)

// HUD — данные для строки состояния поверх игры
type HUD struct {
	Score  int
	Lives  int
	Level  int
	Weapon string
	Notice bool // показывать надпись о росте сложности
}

func (h HUD) Draw(r render.Renderer) {
	m := config.HUDMargin
	r.Text(fmt.Sprintf("Score: %d", h.Score), m, m, config.TextLightColor)
	r.Text(fmt.Sprintf("Lives: %d", h.Lives), m, m+config.TextLineHeight, config.LifeColor)

	lvl := fmt.Sprintf("Level %d", h.Level)
	r.Text(lvl, config.ScreenWidth-m-TextWidth(lvl), m, config.TextLightColor)
	if h.Weapon != "" {
		r.Text(h.Weapon, config.ScreenWidth-m-TextWidth(h.Weapon), m+config.TextLineHeight, config.TextDimColor)
	}

	if h.Notice {
		DrawCentered(r, fmt.Sprintf("DIFFICULTY UP: LEVEL %d", h.Level), config.ScreenHeight/2, config.NoticeColor)
	}
}
