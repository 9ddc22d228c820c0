// internal/state/transition_state.go
package state

import (
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/render"
	"image/color"
)

// TransitionState — затемнение замершей партии перед экраном Game Over
type TransitionState struct {
	sm      *StateMachine
	session *app.Session
	alpha   int
}

func NewTransitionState(sm *StateMachine, session *app.Session) *TransitionState {
	return &TransitionState{sm: sm, session: session}
}

func (t *TransitionState) ID() ID { return TransitionToGameOver }

func (t *TransitionState) Enter() {
	t.alpha = 0
}

func (t *TransitionState) Update(deltaTime float64) {
	t.alpha += config.FadeStep
	if t.alpha >= config.FadeMax {
		t.alpha = config.FadeMax
		t.sm.SetState(NewGameOverState(t.sm, t.session.Score(), t.session.Level()))
	}
}

func (t *TransitionState) Draw(r render.Renderer) {
	r.Fill(config.BackgroundColor)
	t.session.Draw(r)
	hudFor(t.session).Draw(r)
	c := config.FadeColor
	a := uint8(t.alpha)
	// color.RGBA премультиплицирован: компоненты не больше альфы
	r.Fill(color.RGBA{R: scale(c.R, a), G: scale(c.G, a), B: scale(c.B, a), A: a})
}

func (t *TransitionState) Exit() {}

// Alpha — текущая непрозрачность затемнения
func (t *TransitionState) Alpha() int {
	return t.alpha
}

func scale(v, a uint8) uint8 {
	return uint8(uint16(v) * uint16(a) / 255)
}
