// internal/state/state.go
package state

import (
	"go-space-shooter/internal/app"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/sound"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"
	"log"
)

// ID — идентификатор сцены
type ID int

const (
	Menu ID = iota
	Game
	TransitionToGameOver
	GameOver
)

func (id ID) String() string {
	switch id {
	case Menu:
		return "Menu"
	case Game:
		return "Game"
	case TransitionToGameOver:
		return "TransitionToGameOver"
	case GameOver:
		return "GameOver"
	}
	return "Unknown"
}

// State — интерфейс для всех состояний
type State interface {
	ID() ID
	Enter()
	Update(deltaTime float64)
	Draw(r render.Renderer)
	Exit()
}

// Context — общее для всех сцен: ввод, ресурсы, настройки, звук, случайность.
// Передаётся сценам явно.
type Context struct {
	Input    *input.Tracker
	Catalog  *app.Catalog
	Settings *config.Settings
	Sound    sound.Player
	Rng      utils.Random
	Metrics  *system.Metrics // может быть nil
	// Closing сообщает, что пользователь закрывает окно; может быть nil
	Closing func() bool
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	ctx     *Context
	current State
	done    bool
}

// NewStateMachine создаёт машину состояний без начального состояния
func NewStateMachine(ctx *Context) *StateMachine {
	if ctx.Sound == nil {
		ctx.Sound = sound.Nop{}
	}
	return &StateMachine{ctx: ctx}
}

// Start входит в меню
func (sm *StateMachine) Start() {
	sm.SetState(NewMenuState(sm))
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	if sm.current != nil && newState != nil {
		log.Printf("State: %s -> %s", sm.current.ID(), newState.ID())
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Current — активное состояние
func (sm *StateMachine) Current() State {
	return sm.current
}

// Context — общий контекст сцен
func (sm *StateMachine) Context() *Context {
	return sm.ctx
}

// Quit завершает работу машины; игровой цикл остановится
func (sm *StateMachine) Quit() {
	if !sm.done {
		log.Println("Quit requested")
	}
	sm.done = true
}

// Done — машина завершила работу
func (sm *StateMachine) Done() bool {
	return sm.done
}

// Update опрашивает ввод, проверяет глобальный выход и обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.done {
		return
	}
	sm.ctx.Input.Poll()
	if sm.ctx.Input.Down(input.KeyQuit) || (sm.ctx.Closing != nil && sm.ctx.Closing()) {
		sm.Quit()
		return
	}
	if sm.ctx.Metrics != nil {
		sm.ctx.Metrics.ObserveFrame(deltaTime)
	}
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(r render.Renderer) {
	if sm.current != nil {
		sm.current.Draw(r)
	}
}
