// internal/weapon/weapon.go
package weapon

import (
	"fmt"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/utils"
)

// Weapon — шаблон выстрела и его перезарядка
type Weapon struct {
	ID       string
	Pattern  Pattern
	Cooldown float64
}

// Build собирает оружие по определению; missiles — прототипы снарядов по ID.
func Build(def defs.WeaponDefinition, missiles map[string]*entity.MissilePrototype) (*Weapon, error) {
	proto, ok := missiles[def.Missile]
	if !ok {
		return nil, fmt.Errorf("weapon %q: missile %q: %w", def.ID, def.Missile, defs.ErrUnknownID)
	}
	w := &Weapon{ID: def.ID, Cooldown: def.Cooldown}
	switch def.Pattern {
	case defs.PatternStraight:
		w.Pattern = Straight{Proto: proto}
	case defs.PatternHoming:
		w.Pattern = Homing{Proto: proto}
	case defs.PatternSpread:
		spread, err := NewSpread(proto, def.Count, def.StepDeg)
		if err != nil {
			return nil, fmt.Errorf("weapon %q: %w", def.ID, err)
		}
		w.Pattern = spread
	default:
		return nil, fmt.Errorf("weapon %q: pattern %q: %w", def.ID, def.Pattern, defs.ErrInvalid)
	}
	return w, nil
}

// Trigger — перезарядка стрелка. Одна на стрелка, а не на оружие:
// смена оружия не сбрасывает отсчёт.
type Trigger struct {
	remaining float64
}

// Update отсчитывает перезарядку
func (t *Trigger) Update(dt float64) {
	if t.remaining > 0 {
		t.remaining -= dt
		if t.remaining < 0 {
			t.remaining = 0
		}
	}
}

// Ready — можно ли стрелять
func (t *Trigger) Ready() bool {
	return t.remaining <= 0
}

// Remaining — сколько осталось до готовности
func (t *Trigger) Remaining() float64 {
	return t.remaining
}

// TryFire стреляет из w, если перезарядка закончилась. Запросы во время
// перезарядки отбрасываются, очереди нет.
func (t *Trigger) TryFire(w *Weapon, origin utils.Vec2, team entity.Team, enemies *entity.Container) ([]entity.Entity, bool) {
	if !t.Ready() {
		return nil, false
	}
	t.remaining = w.Cooldown
	return w.Pattern.Fire(origin, team, enemies), true
}
