// internal/system/spawn.go
package system

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/utils"
	"log"
	"math"
)

// SpawnSystem выпускает врагов по таймеру и поднимает сложность:
// каждые threshold врагов интервал сокращается, а порог растёт.
type SpawnSystem struct {
	enemies         *entity.Container
	protos          []*entity.EnemyPrototype
	weights         []int
	rng             utils.Random
	eventDispatcher *event.Dispatcher
	cfg             config.SpawnerSettings
	width           int

	timer     float64
	interval  float64
	count     int
	level     int
	threshold int
	notice    float64
}

func NewSpawnSystem(enemies *entity.Container, protos []*entity.EnemyPrototype, rng utils.Random,
	cfg config.SpawnerSettings, width int, eventDispatcher *event.Dispatcher) *SpawnSystem {
	weights := make([]int, len(protos))
	for i, p := range protos {
		weights[i] = p.Weight
	}
	return &SpawnSystem{
		enemies:         enemies,
		protos:          protos,
		weights:         weights,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		cfg:             cfg,
		width:           width,
		interval:        cfg.Interval,
		level:           1,
		threshold:       cfg.Threshold,
	}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	if s.notice > 0 {
		s.notice = math.Max(0, s.notice-deltaTime)
	}
	s.timer += deltaTime
	if s.timer < s.interval {
		return
	}
	s.timer = 0
	if !s.spawnEnemy() {
		return
	}
	s.count++
	if s.count >= s.threshold {
		s.levelUp()
	}
}

func (s *SpawnSystem) spawnEnemy() bool {
	i := utils.ChooseWeighted(s.rng, s.weights)
	if i < 0 {
		return false
	}
	x := utils.Range(s.rng, float64(s.cfg.Margin), float64(s.width-s.cfg.Margin))
	y := -utils.Range(s.rng, float64(s.cfg.MinOffset), float64(s.cfg.MaxOffset))
	s.enemies.Add(entity.NewEnemy(s.protos[i], x, y))
	return true
}

func (s *SpawnSystem) levelUp() {
	s.count = 0
	if s.interval > s.cfg.MinInterval {
		s.interval = math.Max(s.cfg.MinInterval, s.interval-s.cfg.Decrement)
	}
	s.level++
	s.threshold = int(math.Floor(float64(s.threshold) * s.cfg.Growth))
	s.notice = s.cfg.NoticeDuration

	log.Printf("Difficulty level %d: spawn interval %.2fs, next level after %d enemies", s.level, s.interval, s.threshold)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.DifficultyIncreased,
		Data: event.DifficultyData{Level: s.level, Interval: s.interval, Threshold: s.threshold},
	})
}

func (s *SpawnSystem) Interval() float64  { return s.interval }
func (s *SpawnSystem) Level() int         { return s.level }
func (s *SpawnSystem) Threshold() int     { return s.threshold }
func (s *SpawnSystem) Count() int         { return s.count }
func (s *SpawnSystem) NoticeActive() bool { return s.notice > 0 }

// Prototypes — прототипы, из которых выбирается враг
func (s *SpawnSystem) Prototypes() []*entity.EnemyPrototype { return s.protos }
