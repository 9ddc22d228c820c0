// internal/defs/missiles.go
package defs

// MissileDefinition holds the static data for one kind of projectile.
type MissileDefinition struct {
	ID      string  `yaml:"id"`
	Speed   float64 `yaml:"speed"`
	Visuals Visuals `yaml:"visuals"`
}
