// internal/entity/prototype.go
package entity

import (
	"go-space-shooter/internal/sprite"
	"go-space-shooter/internal/utils"
)

// EnemyPrototype — неизменяемый шаблон врага. Загружается один раз,
// все враги этого типа ссылаются на общий спрайт.
type EnemyPrototype struct {
	Name         string
	Sprite       *sprite.Sprite
	Speed        float64
	Weight       int
	Score        int
	FireInterval float64           // 0 — враг не стреляет
	Missile      *MissilePrototype // чем стреляет, если FireInterval > 0
}

// MissilePrototype — неизменяемый шаблон снаряда
type MissilePrototype struct {
	Name   string
	Sprite *sprite.Sprite
	Speed  float64
}

// NewEnemy создаёт врага, летящего вниз со скоростью прототипа.
func NewEnemy(p *EnemyPrototype, x, y float64) Entity {
	e := New(KindEnemy, TeamEnemy, p.Sprite, x, y)
	e.Speed = p.Speed
	e.Dir = utils.V(0, 1)
	e.Behavior = Straight()
	e.Score = p.Score
	e.FireTimer = p.FireInterval
	e.Proto = p
	return e
}

// NewMissile создаёт прямолетящий снаряд: вверх для игрока, вниз для врагов.
// Координаты округляются до целых пикселей, как у точки вылета.
func NewMissile(p *MissilePrototype, x, y float64, team Team) Entity {
	e := New(KindMissile, team, p.Sprite, float64(int(x)), float64(int(y)))
	e.Speed = p.Speed
	e.Dir = TeamDirection(team)
	e.Behavior = Straight()
	return e
}

// TeamDirection — направление прямого выстрела стороны
func TeamDirection(team Team) utils.Vec2 {
	if team == TeamPlayer {
		return utils.V(0, -1)
	}
	return utils.V(0, 1)
}
