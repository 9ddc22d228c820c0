// internal/defs/weapons.go
package defs

// WeaponDefinition describes a player weapon: which missile it fires and how.
type WeaponDefinition struct {
	ID       string      `yaml:"id"`
	Pattern  PatternType `yaml:"pattern"`
	Missile  string      `yaml:"missile"`
	Count    int         `yaml:"count"`    // только для spread, нечётное
	StepDeg  float64     `yaml:"step_deg"` // шаг веера в градусах
	Cooldown float64     `yaml:"cooldown"` // сек между выстрелами
}
