// internal/app/catalog.go
package app

import (
	"fmt"
	"go-space-shooter/internal/assets"
	"go-space-shooter/internal/config"
	"go-space-shooter/internal/defs"
	"go-space-shooter/internal/entity"
	"go-space-shooter/internal/sprite"
	"go-space-shooter/internal/weapon"
	"log"
)

// Catalog — всё загруженное при старте: спрайты, прототипы, оружие, фоны.
// Прототипы неизменяемы и разделяются всеми партиями.
type Catalog struct {
	Player     *sprite.Sprite
	Enemies    []*entity.EnemyPrototype
	Missiles   map[string]*entity.MissilePrototype
	Weapons    []*weapon.Weapon
	MenuFrames []*sprite.Sprite
	Game       *sprite.Sprite
	GameOver   *sprite.Sprite
	Font       []byte
}

// LoadCatalog загружает ресурсы через loader и собирает прототипы по настройкам.
// Любой отсутствующий ресурс — ошибка.
func LoadCatalog(loader assets.Loader, s *config.Settings) (*Catalog, error) {
	lib, err := s.Library()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	c := &Catalog{Missiles: make(map[string]*entity.MissilePrototype, len(lib.Missiles))}

	if c.Player, err = loadSprite(loader, s.Player.Visuals); err != nil {
		return nil, err
	}

	for _, def := range s.Missiles {
		spr, err := loadSprite(loader, def.Visuals)
		if err != nil {
			return nil, err
		}
		c.Missiles[def.ID] = &entity.MissilePrototype{Name: def.ID, Sprite: spr, Speed: def.Speed}
	}

	for _, def := range lib.EnemyList() {
		spr, err := loadSprite(loader, def.Visuals)
		if err != nil {
			return nil, err
		}
		c.Enemies = append(c.Enemies, &entity.EnemyPrototype{
			Name:         def.ID,
			Sprite:       spr,
			Speed:        def.Speed,
			Weight:       def.Weight,
			Score:        def.Score,
			FireInterval: def.FireInterval,
			Missile:      c.Missiles[def.Missile],
		})
	}

	for _, def := range lib.WeaponList() {
		w, err := weapon.Build(def, c.Missiles)
		if err != nil {
			return nil, fmt.Errorf("catalog: %w", err)
		}
		c.Weapons = append(c.Weapons, w)
	}

	bg := s.Backgrounds
	for _, id := range bg.MenuFrames {
		spr, err := loadBackground(loader, id)
		if err != nil {
			return nil, err
		}
		c.MenuFrames = append(c.MenuFrames, spr)
	}
	if c.Game, err = loadBackground(loader, bg.Game); err != nil {
		return nil, err
	}
	if c.GameOver, err = loadBackground(loader, bg.GameOver); err != nil {
		return nil, err
	}

	if c.Font, err = loader.Font(s.Font); err != nil {
		return nil, fmt.Errorf("load font %q: %w", s.Font, err)
	}

	log.Printf("Catalog loaded: %d enemies, %d missiles, %d weapons, %d menu frames",
		len(c.Enemies), len(c.Missiles), len(c.Weapons), len(c.MenuFrames))
	return c, nil
}

// loadSprite загружает картинку и масштабирует до размера из определения
func loadSprite(loader assets.Loader, v defs.Visuals) (*sprite.Sprite, error) {
	img, err := loader.Image(v.Sprite)
	if err != nil {
		return nil, fmt.Errorf("load sprite %q: %w", v.Sprite, err)
	}
	if v.Width > 0 && v.Height > 0 {
		return sprite.Scaled(v.Sprite, img, v.Width, v.Height), nil
	}
	return sprite.New(v.Sprite, img), nil
}

// loadBackground растягивает фон на весь экран
func loadBackground(loader assets.Loader, id string) (*sprite.Sprite, error) {
	return loadSprite(loader, defs.Visuals{Sprite: id, Width: config.ScreenWidth, Height: config.ScreenHeight})
}
