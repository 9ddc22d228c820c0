// internal/state/menu_state.go
package state

import (
	"go-space-shooter/internal/background"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/ui"
	"log"
)

const (
	menuStart = iota
	menuOption
	menuQuit
)

// MenuState — главное меню на анимированном фоне
type MenuState struct {
	sm         *StateMachine
	menu       *ui.Menu
	background background.Layer
}

func NewMenuState(sm *StateMachine) *MenuState {
	return &MenuState{sm: sm}
}

func (m *MenuState) ID() ID { return Menu }

func (m *MenuState) Enter() {
	ctx := m.sm.Context()
	menu, err := ui.NewMenu("SPACE SHOOTER", []string{"Start", "Option", "Quit"})
	if err != nil {
		log.Printf("Menu: %v", err)
	}
	m.menu = menu
	bg, err := background.NewAnimated(ctx.Catalog.MenuFrames, ctx.Settings.Backgrounds.MenuFrameTime)
	if err != nil {
		log.Printf("Menu background: %v", err)
		m.background = background.NewFixed(ctx.Catalog.GameOver)
		return
	}
	m.background = bg
}

func (m *MenuState) Update(deltaTime float64) {
	m.background.Update(deltaTime)
	if m.menu == nil {
		return
	}
	selected, chosen := m.menu.Update(deltaTime, m.sm.Context().Input)
	if !chosen {
		return
	}
	switch selected {
	case menuStart:
		m.sm.SetState(NewGameState(m.sm))
	case menuOption:
		log.Println("Options are not available yet")
	case menuQuit:
		m.sm.Quit()
	}
}

func (m *MenuState) Draw(r render.Renderer) {
	r.Fill(config.BackgroundColor)
	m.background.Draw(r)
	if m.menu != nil {
		m.menu.Draw(r)
	}
}

func (m *MenuState) Exit() {}

// Selected — пункт под курсором
func (m *MenuState) Selected() int {
	if m.menu == nil {
		return 0
	}
	return m.menu.Selected
}
