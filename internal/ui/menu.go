// internal/ui/menu.go
package ui

import (
	"go-space-shooter/internal/component"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/render"
)

// Menu — вертикальный список пунктов с курсором.
// Нажатие двигает курсор сразу, удержание — не чаще раза в repeat-интервал.
// Выбранный пункт мигает.
type Menu struct {
	Title    string
	Items    []string
	Selected int
	repeat   *component.Counter
	blink    *component.AnimationCounter
}

func NewMenu(title string, items []string) (*Menu, error) {
	repeat, err := component.NewCounter(config.MenuRepeatDelay, 1)
	if err != nil {
		return nil, err
	}
	blink, err := component.NewAnimationCounter(config.MenuBlinkTime, 2)
	if err != nil {
		return nil, err
	}
	return &Menu{Title: title, Items: items, repeat: repeat, blink: blink}, nil
}

// Update обрабатывает ввод; chosen=true, если пункт подтверждён в этом тике.
func (m *Menu) Update(deltaTime float64, in *input.Tracker) (selected int, chosen bool) {
	m.blink.Update(deltaTime)

	step := 0
	switch {
	case in.Down(input.KeyUp):
		step = -1
	case in.Down(input.KeyDown):
		step = 1
	}

	if step != 0 {
		if in.JustPressed(input.KeyUp) || in.JustPressed(input.KeyDown) {
			m.repeat.Reset()
			m.move(step)
		} else {
			m.repeat.Update(deltaTime)
			if m.repeat.IsActive() {
				m.move(step)
			}
		}
	} else {
		m.repeat.Reset()
	}

	if in.JustPressed(input.KeyConfirm) {
		return m.Selected, true
	}
	return m.Selected, false
}

func (m *Menu) move(step int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.Selected = (m.Selected + step + n) % n
	m.blink.Reset()
}

// Reset ставит курсор на первый пункт
func (m *Menu) Reset() {
	m.Selected = 0
	m.repeat.Reset()
	m.blink.Reset()
}

func (m *Menu) Draw(r render.Renderer) {
	top := config.ScreenHeight / 3
	DrawCentered(r, m.Title, top, config.TextLightColor)
	for i, item := range m.Items {
		c := config.TextDimColor
		label := item
		if i == m.Selected {
			label = "> " + item + " <"
			if m.blink.Frame() == 0 {
				c = config.HighlightColor
			} else {
				c = config.TextLightColor
			}
		}
		DrawCentered(r, label, top+(i+2)*config.TextLineHeight*2, c)
	}
}
