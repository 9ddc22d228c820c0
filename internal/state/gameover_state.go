// internal/state/gameover_state.go
package state

import (
	"fmt"
	"go-space-shooter/internal/background"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/ui"
)

// GameOverState — итог партии; подтверждение возвращает в меню
type GameOverState struct {
	sm         *StateMachine
	score      int
	level      int
	background *background.Fixed
}

func NewGameOverState(sm *StateMachine, score, level int) *GameOverState {
	return &GameOverState{sm: sm, score: score, level: level}
}

func (g *GameOverState) ID() ID { return GameOver }

func (g *GameOverState) Enter() {
	g.background = background.NewFixed(g.sm.Context().Catalog.GameOver)
}

func (g *GameOverState) Update(deltaTime float64) {
	g.background.Update(deltaTime)
	if g.sm.Context().Input.JustPressed(input.KeyConfirm) {
		g.sm.SetState(NewMenuState(g.sm))
	}
}

func (g *GameOverState) Draw(r render.Renderer) {
	g.background.Draw(r)
	y := config.ScreenHeight / 3
	ui.DrawCentered(r, "GAME OVER", y, config.NoticeColor)
	ui.DrawCentered(r, fmt.Sprintf("Score: %d", g.score), y+config.TextLineHeight*2, config.TextLightColor)
	ui.DrawCentered(r, fmt.Sprintf("Level reached: %d", g.level), y+config.TextLineHeight*3, config.TextLightColor)
	ui.DrawCentered(r, "Press Enter to return to menu", y+config.TextLineHeight*5, config.TextDimColor)
}

func (g *GameOverState) Exit() {}

// Score — итоговый счёт
func (g *GameOverState) Score() int {
	return g.score
}
