// internal/defs/enemies.go
package defs

// EnemyDefinition holds the static data for one kind of enemy.
type EnemyDefinition struct {
	ID           string  `yaml:"id"`
	Speed        float64 `yaml:"speed"`         // пикс/с вниз
	Weight       int     `yaml:"weight"`        // вес при случайном выборе
	Score        int     `yaml:"score"`         // очки за уничтожение
	FireInterval float64 `yaml:"fire_interval"` // 0 — не стреляет
	Missile      string  `yaml:"missile"`       // снаряд, если стреляет
	Visuals      Visuals `yaml:"visuals"`
}
