// internal/system/movement.go
package system

import (
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
	"image"
)

// MovementSystem двигает врагов и снаряды и убирает тех, кто выбыл
type MovementSystem struct {
	enemies         *entity.Container
	missiles        *entity.Container
	eventDispatcher *event.Dispatcher
	field           image.Rectangle
}

func NewMovementSystem(enemies, missiles *entity.Container, width, height int, eventDispatcher *event.Dispatcher) *MovementSystem {
	return &MovementSystem{
		enemies:         enemies,
		missiles:        missiles,
		eventDispatcher: eventDispatcher,
		field:           image.Rect(0, 0, width, height),
	}
}

// TargetLookup — позиция цели самонаводящейся ракеты. Исчезнувший
// или помеченный Dead враг считается мёртвым.
func (s *MovementSystem) TargetLookup(h entity.Handle) (utils.Vec2, bool) {
	e := s.enemies.Get(h)
	if e == nil || e.Dead {
		return utils.Vec2{}, false
	}
	return e.Pos(), true
}

func (s *MovementSystem) Update(deltaTime float64) {
	step := func(e *entity.Entity, dt float64) {
		entity.Step(e, dt, s.TargetLookup)
	}
	s.enemies.Update(deltaTime, step)
	s.missiles.Update(deltaTime, step)
}

// Cull удаляет снаряды за пределами поля, врагов, ушедших за нижний край,
// и врагов, помеченных Dead столкновениями.
func (s *MovementSystem) Cull() {
	for _, h := range s.missiles.Handles() {
		if m := s.missiles.Get(h); !m.Rect.Overlaps(s.field) {
			s.missiles.Remove(h)
		}
	}
	for _, h := range s.enemies.Handles() {
		e := s.enemies.Get(h)
		if !e.Dead && e.Rect.Min.Y > s.field.Max.Y {
			e.Dead = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyEscaped, Data: event.EnemyEscapedData{Name: enemyName(e)}})
		}
		if e.Dead {
			s.enemies.Remove(h)
		}
	}
}

func enemyName(e *entity.Entity) string {
	if e.Proto == nil {
		return ""
	}
	return e.Proto.Name
}
