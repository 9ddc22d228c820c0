// internal/system/score.go
package system

import (
	"go-space-shooter/internal/event"
)

// ScoreSystem считает очки: сбитый ракетой враг приносит очки своего прототипа,
// протаранивший игрока — нет.
type ScoreSystem struct {
	score     int
	destroyed int
	escaped   int
}

func NewScoreSystem(eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{}
	eventDispatcher.SubscribeAll(s, event.EnemyDestroyed, event.EnemyEscaped)
	return s
}

func (s *ScoreSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyDestroyed:
		data, ok := e.Data.(event.EnemyDestroyedData)
		if !ok || data.Rammed {
			return
		}
		s.score += data.Score
		s.destroyed++
	case event.EnemyEscaped:
		s.escaped++
	}
}

func (s *ScoreSystem) Score() int     { return s.score }
func (s *ScoreSystem) Destroyed() int { return s.destroyed }
func (s *ScoreSystem) Escaped() int   { return s.escaped }
