// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 540
	ScreenHeight = 720
	TPS          = 60
	MaxDeltaTime = 0.06

	FadeStep = 5   // Прирост альфы затемнения за кадр
	FadeMax  = 255 // Полное затемнение

	MenuRepeatDelay = 0.2 // Минимум между шагами курсора меню, сек
	MenuBlinkTime   = 0.5 // Полупериод мигания выбранного пункта

	CollisionCellSize = 32 // Ячейка broad-phase

	TextCharWidth  = 7
	TextLineHeight = 18
	HUDMargin      = 10
)

var (
	BackgroundColor = color.RGBA{5, 5, 20, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDimColor    = color.RGBA{130, 130, 150, 255}
	HighlightColor  = color.RGBA{255, 215, 0, 255}
	NoticeColor     = color.RGBA{255, 80, 80, 255}
	LifeColor       = color.RGBA{50, 205, 50, 255}
	FadeColor       = color.RGBA{0, 0, 0, 255}
)
