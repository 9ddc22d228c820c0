// internal/system/fire.go
package system

import (
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
	"go-space-shooter/internal/weapon"
)

// EnemyFireSystem — стрельба врагов, у прототипа которых задан FireInterval.
// Враг стреляет только когда целиком виден на экране.
type EnemyFireSystem struct {
	enemies         *entity.Container
	missiles        *entity.Container
	eventDispatcher *event.Dispatcher
	height          int
}

func NewEnemyFireSystem(enemies, missiles *entity.Container, height int, eventDispatcher *event.Dispatcher) *EnemyFireSystem {
	return &EnemyFireSystem{enemies: enemies, missiles: missiles, eventDispatcher: eventDispatcher, height: height}
}

func (s *EnemyFireSystem) Update(deltaTime float64) {
	var shots []entity.Entity
	s.enemies.Each(func(_ entity.Handle, e *entity.Entity) {
		p := e.Proto
		if e.Dead || p == nil || p.FireInterval <= 0 || p.Missile == nil {
			return
		}
		e.FireTimer -= deltaTime
		if e.FireTimer > 0 {
			return
		}
		e.FireTimer = p.FireInterval
		if e.Rect.Min.Y < 0 || e.Rect.Max.Y > s.height {
			return
		}
		origin := utils.V(e.X, float64(e.Rect.Max.Y))
		shots = append(shots, weapon.Straight{Proto: p.Missile}.Fire(origin, entity.TeamEnemy, nil)...)
	})
	if len(shots) == 0 {
		return
	}
	for _, m := range shots {
		s.missiles.Add(m)
	}
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.MissileFired,
		Data: event.MissileFiredData{Team: entity.TeamEnemy.String(), Count: len(shots)},
	})
}
