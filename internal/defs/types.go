// internal/defs/types.go
package defs

// PatternType — способ выпуска снарядов оружием
type PatternType string

const (
	PatternStraight PatternType = "straight"
	PatternHoming   PatternType = "homing"
	PatternSpread   PatternType = "spread"
)

// Visuals — откуда брать картинку и до какого размера её масштабировать.
// Нулевой размер — оставить исходный.
type Visuals struct {
	Sprite string `yaml:"sprite"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}
