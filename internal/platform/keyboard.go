// internal/platform/keyboard.go
package platform

import (
	"go-space-shooter/internal/input"

	"github.com/hajimehoshi/ebiten/v2"
)

// Раскладка: стрелки и WASD, пробел — огонь, Enter — подтверждение,
// Escape — выход, цифры 1-3 — выбор оружия.
var keyMap = map[input.Key][]ebiten.Key{
	input.KeyUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	input.KeyDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	input.KeyLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	input.KeyRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	input.KeyFire:    {ebiten.KeySpace},
	input.KeyConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	input.KeyQuit:    {ebiten.KeyEscape},
	input.KeyWeapon1: {ebiten.KeyDigit1},
	input.KeyWeapon2: {ebiten.KeyDigit2},
	input.KeyWeapon3: {ebiten.KeyDigit3},
}

// Keyboard — input.Source поверх клавиатуры ebiten
type Keyboard struct{}

func (Keyboard) IsKeyDown(k input.Key) bool {
	for _, key := range keyMap[k] {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	return false
}
