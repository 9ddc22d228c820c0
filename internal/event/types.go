// internal/event/types.go
package event

const (
	EnemyDestroyed      EventType = "EnemyDestroyed"      // Враг сбит ракетой или тараном
	EnemyEscaped        EventType = "EnemyEscaped"        // Враг ушёл за нижний край
	PlayerHit           EventType = "PlayerHit"           // Игрок получил попадание
	MissileFired        EventType = "MissileFired"        // Выстрел (игрока или врага)
	DifficultyIncreased EventType = "DifficultyIncreased" // Новый уровень сложности
	GameOver            EventType = "GameOver"            // Жизни кончились
)

// EnemyDestroyedData — данные EnemyDestroyed
type EnemyDestroyedData struct {
	Name   string
	Score  int
	X, Y   float64
	Rammed bool // Враг протаранил игрока, а не был сбит
}

// EnemyEscapedData — данные EnemyEscaped
type EnemyEscapedData struct {
	Name string
}

// PlayerHitData — данные PlayerHit
type PlayerHitData struct {
	Source string // "enemy" или "missile"
}

// MissileFiredData — данные MissileFired
type MissileFiredData struct {
	Team  string
	Count int
}

// DifficultyData — данные DifficultyIncreased
type DifficultyData struct {
	Level     int
	Interval  float64
	Threshold int
}

// GameOverData — данные GameOver
type GameOverData struct {
	Score int
	Level int
}
