// internal/collision/space.go
package collision

import (
	"image"
	"sort"

	"github.com/solarlune/resolv"
)

// Теги слоёв для фильтрации кандидатов в resolv.
var (
	TagPlayer        = resolv.NewTag("player")
	TagEnemy         = resolv.NewTag("enemy")
	TagPlayerMissile = resolv.NewTag("player_missile")
	TagEnemyMissile  = resolv.NewTag("enemy_missile")
)

// Space — широкая фаза столкновений поверх resolv.Space.
// Ключ K связывает форму resolv с игровой сущностью.
// Пересечение прямоугольников здесь только отбирает кандидатов;
// окончательное решение принимает попиксельная проверка масок.
type Space[K comparable] struct {
	space   *resolv.Space
	byKey   map[K]resolv.IShape
	byShape map[resolv.IShape]K
	rects   map[K]image.Rectangle
	order   func(a, b K) bool
}

// NewSpace создаёт пространство размером width×height с ячейками cell×cell.
// less задаёт детерминированный порядок кандидатов (resolv его не гарантирует).
func NewSpace[K comparable](width, height, cell int, less func(a, b K) bool) *Space[K] {
	return &Space[K]{
		space:   resolv.NewSpace(width, height, cell, cell),
		byKey:   make(map[K]resolv.IShape),
		byShape: make(map[resolv.IShape]K),
		rects:   make(map[K]image.Rectangle),
		order:   less,
	}
}

// Upsert добавляет форму для ключа или переносит существующую в rect.
func (s *Space[K]) Upsert(key K, rect image.Rectangle, tag resolv.Tags) {
	cx := float64(rect.Min.X) + float64(rect.Dx())/2
	cy := float64(rect.Min.Y) + float64(rect.Dy())/2
	s.rects[key] = rect
	if sh, ok := s.byKey[key]; ok {
		sh.SetPosition(cx, cy)
		return
	}
	sh := resolv.NewRectangleFromTopLeft(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
	sh.Tags().Set(tag)
	s.space.Add(sh)
	sh.SetPosition(cx, cy)
	s.byKey[key] = sh
	s.byShape[sh] = key
}

// Remove убирает форму ключа; отсутствующий ключ игнорируется.
func (s *Space[K]) Remove(key K) {
	sh, ok := s.byKey[key]
	if !ok {
		return
	}
	s.space.Remove(sh)
	delete(s.byKey, key)
	delete(s.rects, key)
	delete(s.byShape, sh)
}

// Retain удаляет все формы, для которых keep возвращает false.
func (s *Space[K]) Retain(keep func(K) bool) {
	for key := range s.byKey {
		if !keep(key) {
			s.Remove(key)
		}
	}
}

// Has сообщает, зарегистрирован ли ключ.
func (s *Space[K]) Has(key K) bool {
	_, ok := s.byKey[key]
	return ok
}

// Len — число зарегистрированных форм.
func (s *Space[K]) Len() int {
	return len(s.byKey)
}

// Touching возвращает ключи форм с тегом tag, чьи прямоугольники пересекаются с формой key.
// resolv только отбирает соседей по ячейкам; пересечение проверяется по прямоугольникам,
// поэтому форма, целиком лежащая внутри другой, тоже считается касанием.
func (s *Space[K]) Touching(key K, tag resolv.Tags) []K {
	sh, ok := s.byKey[key]
	if !ok {
		return nil
	}
	rect := s.rects[key]
	var out []K
	seen := make(map[K]bool)
	sh.SelectTouchingCells(1).FilterShapes().ByTags(tag).ForEach(func(other resolv.IShape) bool {
		k, ok := s.byShape[other]
		if !ok || k == key || seen[k] || !rect.Overlaps(s.rects[k]) {
			return true
		}
		seen[k] = true
		out = append(out, k)
		return true
	})
	if s.order != nil && len(out) > 1 {
		sort.Slice(out, func(i, j int) bool { return s.order(out[i], out[j]) })
	}
	return out
}
