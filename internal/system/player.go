// internal/system/player.go
package system

import (
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/sprite"
	"go-space-shooter/internal/utils"
	"go-space-shooter/internal/weapon"
	"log"
)

// Ship — корабль игрока: сущность, скорость, набор оружия и общая перезарядка
type Ship struct {
	Entity  entity.Entity
	Speed   float64
	Weapons []*weapon.Weapon
	current int
	trigger weapon.Trigger
}

func NewShip(s *sprite.Sprite, x, y, speed float64, weapons []*weapon.Weapon) *Ship {
	e := entity.New(entity.KindPlayer, entity.TeamPlayer, s, x, y)
	e.Behavior = entity.Behavior{Kind: entity.BehaviorNone}
	return &Ship{Entity: e, Speed: speed, Weapons: weapons}
}

// Weapon — выбранное оружие; nil, если оружия нет
func (s *Ship) Weapon() *weapon.Weapon {
	if s.current < 0 || s.current >= len(s.Weapons) {
		return nil
	}
	return s.Weapons[s.current]
}

// Select переключает оружие по индексу; неверный индекс игнорируется
func (s *Ship) Select(i int) bool {
	if i < 0 || i >= len(s.Weapons) || i == s.current {
		return false
	}
	s.current = i
	return true
}

// PlayerSystem — управление кораблём: движение, выбор оружия, стрельба
type PlayerSystem struct {
	ship            *Ship
	enemies         *entity.Container
	missiles        *entity.Container
	eventDispatcher *event.Dispatcher
	width, height   float64
}

func NewPlayerSystem(ship *Ship, enemies, missiles *entity.Container, width, height int, eventDispatcher *event.Dispatcher) *PlayerSystem {
	return &PlayerSystem{
		ship:            ship,
		enemies:         enemies,
		missiles:        missiles,
		eventDispatcher: eventDispatcher,
		width:           float64(width),
		height:          float64(height),
	}
}

var weaponKeys = []input.Key{input.KeyWeapon1, input.KeyWeapon2, input.KeyWeapon3}

func (s *PlayerSystem) Update(deltaTime float64, in input.Source) {
	s.move(deltaTime, in)

	for i, k := range weaponKeys {
		if in.IsKeyDown(k) && s.ship.Select(i) {
			log.Printf("Weapon selected: %s", s.ship.Weapon().ID)
		}
	}

	s.ship.trigger.Update(deltaTime)
	if !in.IsKeyDown(input.KeyFire) {
		return
	}
	w := s.ship.Weapon()
	if w == nil {
		return
	}
	e := &s.ship.Entity
	origin := utils.V(e.X, float64(e.Rect.Min.Y))
	shots, ok := s.ship.trigger.TryFire(w, origin, entity.TeamPlayer, s.enemies)
	if !ok {
		return
	}
	for _, m := range shots {
		s.missiles.Add(m)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MissileFired,
		Data: event.MissileFiredData{Team: entity.TeamPlayer.String(), Count: len(shots)},
	})
}

// move: вертикаль важнее горизонтали, диагоналей нет.
// Центр корабля не выходит за края экрана.
func (s *PlayerSystem) move(deltaTime float64, in input.Source) {
	dir := utils.V(0, input.Axis(in, input.KeyUp, input.KeyDown))
	if dir.Y == 0 {
		dir.X = input.Axis(in, input.KeyLeft, input.KeyRight)
	}
	dir = dir.Normalize()

	e := &s.ship.Entity
	e.X = utils.Clamp(e.X+dir.X*s.ship.Speed*deltaTime, 0, s.width-1)
	e.Y = utils.Clamp(e.Y+dir.Y*s.ship.Speed*deltaTime, 0, s.height-1)
	e.Dir = dir
	entity.Step(e, deltaTime, nil)
}
