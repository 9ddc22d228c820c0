// internal/entity/behavior.go
package entity

import (
	"go-space-shooter/internal/utils"
)

// BehaviorKind — вариант поведения сущности за тик
type BehaviorKind uint8

const (
	// BehaviorNone — сущность двигает внешний код (корабль игрока)
	BehaviorNone BehaviorKind = iota
	// BehaviorStraight — прямолинейный полёт по Dir
	BehaviorStraight
	// BehaviorHoming — преследование одной цели
	BehaviorHoming
	// BehaviorDiagonal — прямолинейный полёт под фиксированным углом (веер)
	BehaviorDiagonal
)

// Behavior — помеченный вариант поведения. Target используется только у Homing,
// Angle — только у Diagonal (радианы, экранные координаты).
type Behavior struct {
	Kind   BehaviorKind
	Target Handle
	Angle  float64
}

// Straight — поведение прямолинейного полёта
func Straight() Behavior {
	return Behavior{Kind: BehaviorStraight}
}

// Homing — поведение преследования цели target
func Homing(target Handle) Behavior {
	return Behavior{Kind: BehaviorHoming, Target: target}
}

// Diagonal — полёт под углом angle
func Diagonal(angle float64) Behavior {
	return Behavior{Kind: BehaviorDiagonal, Angle: angle}
}

// TargetLookup отдаёт позицию цели; ok=false, если цель мертва или исчезла.
type TargetLookup func(h Handle) (pos utils.Vec2, ok bool)

// Step продвигает сущность на dt согласно её поведению и пересчитывает Rect.
//
// Самонаводящаяся ракета, потерявшая цель, навсегда переходит на прямой полёт
// по последнему направлению: новую цель она не ищет.
func Step(e *Entity, dt float64, lookup TargetLookup) {
	switch e.Behavior.Kind {
	case BehaviorNone:
		e.SyncRect()
		return
	case BehaviorHoming:
		var target utils.Vec2
		ok := false
		if lookup != nil {
			target, ok = lookup(e.Behavior.Target)
		}
		if !ok {
			e.Behavior = Straight()
			break
		}
		if d := target.Sub(e.Pos()); !d.IsZero() {
			e.Dir = d.Normalize()
		}
	case BehaviorDiagonal:
		e.Dir = utils.FromAngle(e.Behavior.Angle)
	}

	e.X += e.Dir.X * e.Speed * dt
	e.Y += e.Dir.Y * e.Speed * dt
	e.SyncRect()
}
