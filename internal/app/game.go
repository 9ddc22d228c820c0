// internal/app/game.go
package app

import (
	"go-space-shooter/internal/background"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/event"
	"go-space-shooter/internal/input"
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/sound"
	"go-space-shooter/internal/system"
	"go-space-shooter/internal/utils"
	"log"
)

// Session — мир одной партии: контейнеры, корабль, системы, жизни и счёт.
// Создаётся заново при каждом входе в игру.
type Session struct {
	Enemies         *entity.Container
	Missiles        *entity.Container
	Ship            *system.Ship
	EventDispatcher *event.Dispatcher

	PlayerSystem    *system.PlayerSystem
	SpawnSystem     *system.SpawnSystem
	MovementSystem  *system.MovementSystem
	EnemyFireSystem *system.EnemyFireSystem
	CollisionSystem *system.CollisionSystem
	ScoreSystem     *system.ScoreSystem
	Background      *background.Scrolling

	settings     config.PlayerSettings
	lives        int
	invulnerable float64
	gameTime     float64
	finished     bool
}

// NewSession собирает партию. snd и metrics могут быть nil.
func NewSession(cat *Catalog, s *config.Settings, rng utils.Random, snd sound.Player, metrics *system.Metrics) *Session {
	enemies := entity.NewContainer()
	missiles := entity.NewContainer()
	eventDispatcher := event.NewDispatcher()
	w, h := config.ScreenWidth, config.ScreenHeight

	ship := system.NewShip(cat.Player, float64(w)/2, float64(h)-float64(s.Player.Visuals.Height), s.Player.Speed, cat.Weapons)

	g := &Session{
		Enemies:         enemies,
		Missiles:        missiles,
		Ship:            ship,
		EventDispatcher: eventDispatcher,
		PlayerSystem:    system.NewPlayerSystem(ship, enemies, missiles, w, h, eventDispatcher),
		SpawnSystem:     system.NewSpawnSystem(enemies, cat.Enemies, rng, s.Spawner, w, eventDispatcher),
		MovementSystem:  system.NewMovementSystem(enemies, missiles, w, h, eventDispatcher),
		EnemyFireSystem: system.NewEnemyFireSystem(enemies, missiles, h, eventDispatcher),
		CollisionSystem: system.NewCollisionSystem(enemies, missiles, w, h, eventDispatcher),
		ScoreSystem:     system.NewScoreSystem(eventDispatcher),
		Background:      background.NewScrolling(cat.Game, s.Backgrounds.ScrollSpeed, h),
		settings:        s.Player,
		lives:           s.Player.Lives,
	}

	if snd != nil {
		system.NewSoundSystem(snd, s.Sounds, eventDispatcher)
	}
	if metrics != nil {
		metrics.ResetLevel()
		metrics.Subscribe(eventDispatcher)
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.SubscribeAll(listener, event.PlayerHit, event.EnemyEscaped)

	return g
}

// GameEventListener обрабатывает события, меняющие жизни игрока.
type GameEventListener struct {
	game *Session
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlayerHit:
		if l.game.invulnerable > 0 {
			return
		}
		l.game.loseLife()
		l.game.invulnerable = l.game.settings.Invulnerability
	case event.EnemyEscaped:
		// Уход врага стоит жизни даже во время неуязвимости
		l.game.loseLife()
	}
}

func (g *Session) loseLife() {
	if g.lives > 0 {
		g.lives--
	}
	log.Printf("Life lost, %d left", g.lives)
}

// Update — один тик партии: ввод → появление → движение → столкновения → уборка.
func (g *Session) Update(deltaTime float64, in input.Source) {
	g.gameTime += deltaTime
	g.Background.Update(deltaTime)
	if g.invulnerable > 0 {
		g.invulnerable -= deltaTime
	}

	g.PlayerSystem.Update(deltaTime, in)
	g.SpawnSystem.Update(deltaTime)
	g.EnemyFireSystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CollisionSystem.Update(&g.Ship.Entity, g.invulnerable > 0)
	g.MovementSystem.Cull()
}

// Draw рисует фон, врагов, снаряды и корабль. Неуязвимый корабль мигает.
func (g *Session) Draw(r render.Renderer) {
	g.Background.Draw(r)
	g.Enemies.Draw(r)
	g.Missiles.Draw(r)
	if g.invulnerable <= 0 || int(g.gameTime*10)%2 == 0 {
		g.Ship.Entity.Draw(r)
	}
}

// Finish завершает партию: один раз рассылает GameOver с итоговым счётом.
func (g *Session) Finish() {
	if g.finished {
		return
	}
	g.finished = true
	log.Printf("Game over: score %d, level %d", g.Score(), g.Level())
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Score: g.Score(), Level: g.Level()},
	})
}

func (g *Session) Lives() int             { return g.lives }
func (g *Session) Over() bool             { return g.lives <= 0 }
func (g *Session) Invulnerable() bool     { return g.invulnerable > 0 }
func (g *Session) Score() int             { return g.ScoreSystem.Score() }
func (g *Session) Level() int             { return g.SpawnSystem.Level() }
func (g *Session) DifficultyNotice() bool { return g.SpawnSystem.NoticeActive() }
func (g *Session) WeaponID() string {
	if w := g.Ship.Weapon(); w != nil {
		return w.ID
	}
	return ""
}
