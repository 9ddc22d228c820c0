// internal/system/collision.go
package system

import (
	"go-space-shooter/internal/collision"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
)

type layer uint8

const (
	layerPlayer layer = iota
	layerEnemy
	layerMissile
)

// bodyKey связывает форму в broad-phase с сущностью контейнера
type bodyKey struct {
	layer  layer
	handle entity.Handle
}

func keyLess(a, b bodyKey) bool {
	if a.layer != b.layer {
		return a.layer < b.layer
	}
	return a.handle.Index() < b.handle.Index()
}

var playerKey = bodyKey{layer: layerPlayer}

// CollisionSystem: resolv отбирает пары с пересекающимися прямоугольниками,
// entity.Collide решает по маскам.
type CollisionSystem struct {
	enemies         *entity.Container
	missiles        *entity.Container
	eventDispatcher *event.Dispatcher
	space           *collision.Space[bodyKey]
}

func NewCollisionSystem(enemies, missiles *entity.Container, width, height int, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		enemies:         enemies,
		missiles:        missiles,
		eventDispatcher: eventDispatcher,
		space:           collision.NewSpace(width, height, config.CollisionCellSize, keyLess),
	}
}

// Update проверяет столкновения за тик. player может быть nil.
// Пока invulnerable, попадания по игроку не засчитываются, но снаряды и
// таранившие враги всё равно уничтожаются. За тик засчитывается не больше одного попадания.
func (s *CollisionSystem) Update(player *entity.Entity, invulnerable bool) {
	s.sync(player)

	for _, h := range s.missiles.Handles() {
		m := s.missiles.Get(h)
		if m.Team != entity.TeamPlayer {
			continue
		}
		key := bodyKey{layer: layerMissile, handle: h}
		for _, other := range s.space.Touching(key, collision.TagEnemy) {
			e := s.enemies.Get(other.handle)
			if e == nil || e.Dead || !entity.Collide(m, e) {
				continue
			}
			e.Dead = true
			s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: destroyedData(e, false)})
			s.missiles.Remove(h)
			s.space.Remove(key)
			break
		}
	}

	if player == nil {
		return
	}

	hit := func(source string) {
		if invulnerable {
			return
		}
		invulnerable = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: event.PlayerHitData{Source: source}})
	}

	for _, other := range s.space.Touching(playerKey, collision.TagEnemy) {
		e := s.enemies.Get(other.handle)
		if e == nil || e.Dead || !entity.Collide(player, e) {
			continue
		}
		e.Dead = true
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: destroyedData(e, true)})
		hit("enemy")
	}

	for _, other := range s.space.Touching(playerKey, collision.TagEnemyMissile) {
		m := s.missiles.Get(other.handle)
		if m == nil || !entity.Collide(player, m) {
			continue
		}
		s.missiles.Remove(other.handle)
		s.space.Remove(other)
		hit("missile")
	}
}

// sync приводит broad-phase в соответствие с контейнерами
func (s *CollisionSystem) sync(player *entity.Entity) {
	s.space.Retain(func(k bodyKey) bool {
		switch k.layer {
		case layerEnemy:
			e := s.enemies.Get(k.handle)
			return e != nil && !e.Dead
		case layerMissile:
			return s.missiles.Alive(k.handle)
		}
		return player != nil
	})

	s.enemies.Each(func(h entity.Handle, e *entity.Entity) {
		if !e.Dead {
			s.space.Upsert(bodyKey{layer: layerEnemy, handle: h}, e.Rect, collision.TagEnemy)
		}
	})
	s.missiles.Each(func(h entity.Handle, m *entity.Entity) {
		tag := collision.TagPlayerMissile
		if m.Team == entity.TeamEnemy {
			tag = collision.TagEnemyMissile
		}
		s.space.Upsert(bodyKey{layer: layerMissile, handle: h}, m.Rect, tag)
	})
	if player != nil {
		s.space.Upsert(playerKey, player.Rect, collision.TagPlayer)
	}
}

// Bodies — число форм в broad-phase
func (s *CollisionSystem) Bodies() int {
	return s.space.Len()
}

func destroyedData(e *entity.Entity, rammed bool) event.EnemyDestroyedData {
	return event.EnemyDestroyedData{Name: enemyName(e), Score: e.Score, X: e.X, Y: e.Y, Rammed: rammed}
}
