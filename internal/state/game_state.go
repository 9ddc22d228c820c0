// internal/state/game_state.go
package state

import (
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/ui"
)

// GameState — состояние игры
type GameState struct {
	sm      *StateMachine
	session *app.Session
}

func NewGameState(sm *StateMachine) *GameState {
	return &GameState{sm: sm}
}

func (g *GameState) ID() ID { return Game }

// Enter начинает новую партию с нуля
func (g *GameState) Enter() {
	ctx := g.sm.Context()
	g.session = app.NewSession(ctx.Catalog, ctx.Settings, ctx.Rng, ctx.Sound, ctx.Metrics)
}

func (g *GameState) Update(deltaTime float64) {
	if g.session.Over() {
		g.session.Finish()
		g.sm.SetState(NewTransitionState(g.sm, g.session))
		return
	}
	g.session.Update(deltaTime, g.sm.Context().Input)
}

func (g *GameState) Draw(r render.Renderer) {
	r.Fill(config.BackgroundColor)
	g.session.Draw(r)
	hudFor(g.session).Draw(r)
}

func (g *GameState) Exit() {}

// Session — текущая партия
func (g *GameState) Session() *app.Session {
	return g.session
}

func hudFor(s *app.Session) ui.HUD {
	return ui.HUD{
		Score:  s.Score(),
		Lives:  s.Lives(),
		Level:  s.Level(),
		Weapon: s.WeaponID(),
		Notice: s.DifficultyNotice(),
	}
}
