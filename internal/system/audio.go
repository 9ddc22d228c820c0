// internal/system/audio.go
package system

import (
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/sound"
)

// SoundSystem озвучивает игровые события
type SoundSystem struct {
	player sound.Player
	ids    config.SoundSettings
}

func NewSoundSystem(player sound.Player, ids config.SoundSettings, eventDispatcher *event.Dispatcher) *SoundSystem {
	s := &SoundSystem{player: player, ids: ids}
	eventDispatcher.SubscribeAll(s, event.MissileFired, event.EnemyDestroyed, event.PlayerHit)
	return s
}

func (s *SoundSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.MissileFired:
		// Стрельбу врагов не озвучиваем, иначе звук не смолкает
		if data, ok := e.Data.(event.MissileFiredData); ok && data.Team == entity.TeamPlayer.String() {
			s.play(s.ids.Shoot)
		}
	case event.EnemyDestroyed:
		s.play(s.ids.Explosion)
	case event.PlayerHit:
		s.play(s.ids.Hit)
	}
}

func (s *SoundSystem) play(id string) {
	if id != "" {
		s.player.Play(id)
	}
}
