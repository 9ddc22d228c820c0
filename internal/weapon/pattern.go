// internal/weapon/pattern.go
package weapon

import (
	"errors"
	"fmt"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/sprite"
	"go-space-shooter/internal/utils"
	"math"
)

// ErrEvenSpread — веер должен быть симметричным, поэтому число снарядов нечётное
var ErrEvenSpread = errors.New("spread count must be a positive odd number")

// Pattern выпускает снаряды из точки origin. enemies нужен только самонаводящимся
// шаблонам и может быть nil.
type Pattern interface {
	Fire(origin utils.Vec2, team entity.Team, enemies *entity.Container) []entity.Entity
}

// Straight — один снаряд прямо по направлению стороны
type Straight struct {
	Proto *entity.MissilePrototype
}

func (s Straight) Fire(origin utils.Vec2, team entity.Team, _ *entity.Container) []entity.Entity {
	return []entity.Entity{entity.NewMissile(s.Proto, origin.X, origin.Y, team)}
}

// Homing — снаряд, захватывающий ближайшего живого врага в момент выстрела.
// Без врагов летит прямо.
type Homing struct {
	Proto *entity.MissilePrototype
}

func (h Homing) Fire(origin utils.Vec2, team entity.Team, enemies *entity.Container) []entity.Entity {
	m := entity.NewMissile(h.Proto, origin.X, origin.Y, team)
	if enemies == nil {
		return []entity.Entity{m}
	}
	target, ok := NearestEnemy(enemies, m.Pos())
	if !ok {
		return []entity.Entity{m}
	}
	m.Behavior = entity.Homing(target)
	if d := enemies.Get(target).Pos().Sub(m.Pos()); !d.IsZero() {
		m.Dir = d.Normalize()
	}
	return []entity.Entity{m}
}

// NearestEnemy ищет ближайшего не помеченного мёртвым врага по квадрату расстояния.
// При равенстве выигрывает первый в порядке слотов контейнера.
func NearestEnemy(enemies *entity.Container, from utils.Vec2) (entity.Handle, bool) {
	var (
		best  entity.Handle
		bestD float64
		found bool
	)
	enemies.Each(func(h entity.Handle, e *entity.Entity) {
		if e.Dead {
			return
		}
		d := e.Pos().Sub(from).LenSq()
		if !found || d < bestD {
			best, bestD, found = h, d, true
		}
	})
	return best, found
}

// Spread — веер из нечётного числа снарядов; средний летит прямо.
type Spread struct {
	proto  *entity.MissilePrototype
	angles []float64        // углы для стороны игрока, вверх = -π/2
	up     []*sprite.Sprite // спрайты, повёрнутые по углам вверх
	down   []*sprite.Sprite // зеркальный набор для стороны врагов
}

// NewSpread строит веер из count снарядов с шагом stepDeg градусов.
// Повёрнутые спрайты (каждый со своей маской) создаются здесь один раз.
func NewSpread(proto *entity.MissilePrototype, count int, stepDeg float64) (*Spread, error) {
	if count < 1 || count%2 == 0 {
		return nil, fmt.Errorf("new spread (%s, count %d): %w", proto.Name, count, ErrEvenSpread)
	}
	step := utils.DegToRad(stepDeg)
	s := &Spread{
		proto:  proto,
		angles: make([]float64, count),
		up:     make([]*sprite.Sprite, count),
		down:   make([]*sprite.Sprite, count),
	}
	for i := range s.angles {
		a := -math.Pi/2 + float64(i-count/2)*step
		s.angles[i] = a
		s.up[i] = rotatedFor(proto.Sprite, a, i)
		s.down[i] = rotatedFor(proto.Sprite, -a, i)
	}
	return s, nil
}

// rotatedFor поворачивает спрайт, смотрящий вверх, на угол полёта angle
func rotatedFor(base *sprite.Sprite, angle float64, i int) *sprite.Sprite {
	turn := utils.NormalizeAngle(angle + math.Pi/2)
	if math.Abs(turn) < 1e-9 {
		return base
	}
	return base.Rotated(fmt.Sprintf("%s#%d@%.0f", base.ID, i, utils.RadToDeg(turn)), turn)
}

// Angles — углы веера для стороны игрока, радианы
func (s *Spread) Angles() []float64 {
	return s.angles
}

func (s *Spread) Fire(origin utils.Vec2, team entity.Team, _ *entity.Container) []entity.Entity {
	out := make([]entity.Entity, 0, len(s.angles))
	x, y := float64(int(origin.X)), float64(int(origin.Y))
	for i, a := range s.angles {
		spr := s.up[i]
		if team != entity.TeamPlayer {
			a, spr = -a, s.down[i]
		}
		m := entity.New(entity.KindMissile, team, spr, x, y)
		m.Speed = s.proto.Speed
		m.Dir = utils.FromAngle(a)
		m.Behavior = entity.Diagonal(a)
		out = append(out, m)
	}
	return out
}
