// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"go-space-shooter/internal/defs"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrSettings — недопустимое значение в настройках
var ErrSettings = errors.New("invalid settings")

// Settings — всё, что можно поменять без пересборки. Значения по умолчанию — Default().
type Settings struct {
	Player      PlayerSettings           `yaml:"player"`
	Spawner     SpawnerSettings          `yaml:"spawner"`
	Enemies     []defs.EnemyDefinition   `yaml:"enemies"`
	Missiles    []defs.MissileDefinition `yaml:"missiles"`
	Weapons     []defs.WeaponDefinition  `yaml:"weapons"`
	Sounds      SoundSettings            `yaml:"sounds"`
	Backgrounds BackgroundSettings       `yaml:"backgrounds"`
	Font        string                   `yaml:"font"` // пусто — встроенный шрифт
}

type PlayerSettings struct {
	Speed           float64      `yaml:"speed"`
	Lives           int          `yaml:"lives"`
	Invulnerability float64      `yaml:"invulnerability"` // сек неуязвимости после попадания
	Visuals         defs.Visuals `yaml:"visuals"`
}

type SpawnerSettings struct {
	Interval       float64 `yaml:"interval"`        // Начальный интервал появления
	MinInterval    float64 `yaml:"min_interval"`    // Нижняя граница интервала
	Decrement      float64 `yaml:"decrement"`       // Уменьшение интервала за уровень
	Threshold      int     `yaml:"threshold"`       // Врагов до первого повышения уровня
	Growth         float64 `yaml:"growth"`          // Множитель порога за уровень
	Margin         int     `yaml:"margin"`          // Отступ от боковых краёв
	MinOffset      int     `yaml:"min_offset"`      // Появление над экраном: y ∈ [-max, -min]
	MaxOffset      int     `yaml:"max_offset"`      //
	NoticeDuration float64 `yaml:"notice_duration"` // Сколько висит надпись о сложности
}

type SoundSettings struct {
	Shoot     string `yaml:"shoot"`
	Explosion string `yaml:"explosion"`
	Hit       string `yaml:"hit"`
}

type BackgroundSettings struct {
	MenuFrames    []string `yaml:"menu_frames"`
	MenuFrameTime float64  `yaml:"menu_frame_time"`
	Game          string   `yaml:"game"`
	ScrollSpeed   float64  `yaml:"scroll_speed"`
	GameOver      string   `yaml:"game_over"`
}

// Default — настройки, с которыми игра работает без файла конфигурации
func Default() *Settings {
	menu := make([]string, 12)
	for i := range menu {
		menu[i] = fmt.Sprintf("bg_menu_%02d", i)
	}
	return &Settings{
		Player: PlayerSettings{
			Speed:           100,
			Lives:           3,
			Invulnerability: 1.0,
			Visuals:         defs.Visuals{Sprite: "player", Width: 48, Height: 48},
		},
		Spawner: SpawnerSettings{
			Interval:       4.0,
			MinInterval:    0.3,
			Decrement:      0.3,
			Threshold:      5,
			Growth:         1.2,
			Margin:         40,
			MinOffset:      20,
			MaxOffset:      100,
			NoticeDuration: 2.0,
		},
		Enemies: []defs.EnemyDefinition{
			{ID: "scout", Speed: 80, Weight: 3, Score: 1,
				Visuals: defs.Visuals{Sprite: "enemy_scout", Width: 40, Height: 40}},
			{ID: "gunship", Speed: 50, Weight: 1, Score: 3, FireInterval: 1.5, Missile: "plasma",
				Visuals: defs.Visuals{Sprite: "enemy_gunship", Width: 56, Height: 48}},
		},
		Missiles: []defs.MissileDefinition{
			{ID: "bolt", Speed: 300, Visuals: defs.Visuals{Sprite: "missile_bolt", Width: 6, Height: 18}},
			{ID: "seeker", Speed: 220, Visuals: defs.Visuals{Sprite: "missile_seeker", Width: 10, Height: 10}},
			{ID: "plasma", Speed: 200, Visuals: defs.Visuals{Sprite: "missile_plasma", Width: 8, Height: 8}},
		},
		Weapons: []defs.WeaponDefinition{
			{ID: "cannon", Pattern: defs.PatternStraight, Missile: "bolt", Cooldown: 0.25},
			{ID: "seeker", Pattern: defs.PatternHoming, Missile: "seeker", Cooldown: 0.5},
			{ID: "fan", Pattern: defs.PatternSpread, Missile: "bolt", Count: 5, StepDeg: 15, Cooldown: 0.6},
		},
		Sounds: SoundSettings{Shoot: "shoot", Explosion: "explosion", Hit: "hit"},
		Backgrounds: BackgroundSettings{
			MenuFrames:    menu,
			MenuFrameTime: 0.4,
			Game:          "bg_game",
			ScrollSpeed:   100,
			GameOver:      "bg_gameover",
		},
	}
}

// Load читает YAML поверх Default().
// Если path == "", берёт путь из ENV GAME_CONFIG; если и там пусто — возвращает Default().
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		path = os.Getenv("GAME_CONFIG")
		if path == "" {
			return s, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate проверяет числовые параметры и ссылки между определениями
func (s *Settings) Validate() error {
	sp := s.Spawner
	switch {
	case s.Player.Speed <= 0:
		return fmt.Errorf("player speed %v: %w", s.Player.Speed, ErrSettings)
	case s.Player.Lives <= 0:
		return fmt.Errorf("player lives %d: %w", s.Player.Lives, ErrSettings)
	case sp.Interval <= 0 || sp.MinInterval <= 0:
		return fmt.Errorf("spawner interval %v/%v: %w", sp.Interval, sp.MinInterval, ErrSettings)
	case sp.Threshold <= 0 || sp.Growth < 1:
		return fmt.Errorf("spawner threshold %d growth %v: %w", sp.Threshold, sp.Growth, ErrSettings)
	case sp.MinOffset > sp.MaxOffset:
		return fmt.Errorf("spawner offsets %d > %d: %w", sp.MinOffset, sp.MaxOffset, ErrSettings)
	case 2*sp.Margin > ScreenWidth:
		return fmt.Errorf("spawner margin %d: %w", sp.Margin, ErrSettings)
	case len(s.Enemies) == 0:
		return fmt.Errorf("no enemies: %w", ErrSettings)
	case len(s.Weapons) == 0:
		return fmt.Errorf("no weapons: %w", ErrSettings)
	case len(s.Backgrounds.MenuFrames) == 0:
		return fmt.Errorf("no menu frames: %w", ErrSettings)
	}
	_, err := s.Library()
	return err
}

// Library собирает проверенную библиотеку определений
func (s *Settings) Library() (*defs.Library, error) {
	return defs.NewLibrary(s.Enemies, s.Missiles, s.Weapons)
}
