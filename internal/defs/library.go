// internal/defs/library.go
package defs

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateID = errors.New("duplicate definition id")
	ErrUnknownID   = errors.New("unknown definition id")
	ErrInvalid     = errors.New("invalid definition")
)

// Library — проверенный набор определений, доступный по ID.
type Library struct {
	Enemies  map[string]EnemyDefinition
	Missiles map[string]MissileDefinition
	Weapons  map[string]WeaponDefinition

	enemyOrder  []string
	weaponOrder []string
}

// NewLibrary индексирует определения и проверяет ссылки между ними.
func NewLibrary(enemies []EnemyDefinition, missiles []MissileDefinition, weapons []WeaponDefinition) (*Library, error) {
	lib := &Library{
		Enemies:  make(map[string]EnemyDefinition, len(enemies)),
		Missiles: make(map[string]MissileDefinition, len(missiles)),
		Weapons:  make(map[string]WeaponDefinition, len(weapons)),
	}

	for _, def := range missiles {
		if _, ok := lib.Missiles[def.ID]; ok {
			return nil, fmt.Errorf("missile %q: %w", def.ID, ErrDuplicateID)
		}
		if def.Speed <= 0 {
			return nil, fmt.Errorf("missile %q: speed %v: %w", def.ID, def.Speed, ErrInvalid)
		}
		lib.Missiles[def.ID] = def
	}

	for _, def := range enemies {
		if _, ok := lib.Enemies[def.ID]; ok {
			return nil, fmt.Errorf("enemy %q: %w", def.ID, ErrDuplicateID)
		}
		if def.Weight < 0 {
			return nil, fmt.Errorf("enemy %q: weight %d: %w", def.ID, def.Weight, ErrInvalid)
		}
		if def.FireInterval > 0 {
			if _, ok := lib.Missiles[def.Missile]; !ok {
				return nil, fmt.Errorf("enemy %q: missile %q: %w", def.ID, def.Missile, ErrUnknownID)
			}
		}
		lib.Enemies[def.ID] = def
		lib.enemyOrder = append(lib.enemyOrder, def.ID)
	}

	for _, def := range weapons {
		if _, ok := lib.Weapons[def.ID]; ok {
			return nil, fmt.Errorf("weapon %q: %w", def.ID, ErrDuplicateID)
		}
		if _, ok := lib.Missiles[def.Missile]; !ok {
			return nil, fmt.Errorf("weapon %q: missile %q: %w", def.ID, def.Missile, ErrUnknownID)
		}
		switch def.Pattern {
		case PatternStraight, PatternHoming, PatternSpread:
		default:
			return nil, fmt.Errorf("weapon %q: pattern %q: %w", def.ID, def.Pattern, ErrInvalid)
		}
		lib.Weapons[def.ID] = def
		lib.weaponOrder = append(lib.weaponOrder, def.ID)
	}

	return lib, nil
}

// EnemyList — враги в порядке объявления
func (l *Library) EnemyList() []EnemyDefinition {
	out := make([]EnemyDefinition, 0, len(l.enemyOrder))
	for _, id := range l.enemyOrder {
		out = append(out, l.Enemies[id])
	}
	return out
}

// WeaponList — оружие в порядке объявления; индекс соответствует клавише выбора
func (l *Library) WeaponList() []WeaponDefinition {
	out := make([]WeaponDefinition, 0, len(l.weaponOrder))
	for _, id := range l.weaponOrder {
		out = append(out, l.Weapons[id])
	}
	return out
}
