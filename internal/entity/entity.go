// internal/entity/entity.go
package entity

import (
	"go-space-shooter/internal/render"
	"go-space-shooter/internal/sprite"
	"go-space-shooter/internal/utils"
	"image"
	"math"
)

// Kind — вид сущности
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindMissile
)

// Team — сторона, которой принадлежит сущность
type Team uint8

const (
	TeamPlayer Team = iota
	TeamEnemy
)

func (t Team) String() string {
	if t == TeamPlayer {
		return "player"
	}
	return "enemy"
}

// Entity — единая запись для корабля, врагов и снарядов.
// X, Y — авторитетные координаты центра; Rect вычисляется из них в SyncRect.
type Entity struct {
	Kind     Kind
	Team     Team
	Sprite   *sprite.Sprite
	X, Y     float64
	Rect     image.Rectangle
	Dir      utils.Vec2
	Speed    float64
	Behavior Behavior

	// Dead выставляется ровно один раз, когда враг выбывает из симуляции.
	// Самонаводящиеся ракеты и подсчёт очков смотрят на этот флаг.
	Dead bool

	// FireTimer — время до следующего выстрела у стреляющих врагов
	FireTimer float64
	// Score — награда за уничтожение (для врагов)
	Score int
	// Proto — общий шаблон врага; nil у игрока и снарядов
	Proto *EnemyPrototype
}

// New создаёт сущность с центром в (x, y) и сразу вычисляет Rect.
func New(kind Kind, team Team, s *sprite.Sprite, x, y float64) Entity {
	e := Entity{Kind: kind, Team: team, Sprite: s, X: x, Y: y}
	e.SyncRect()
	return e
}

// Pos — позиция как вектор
func (e *Entity) Pos() utils.Vec2 {
	return utils.V(e.X, e.Y)
}

// SyncRect пересчитывает прямоугольник отрисовки так,
// чтобы его центр совпал с (floor(X), floor(Y)).
func (e *Entity) SyncRect() {
	w, h := 0, 0
	if e.Sprite != nil {
		w, h = e.Sprite.Size()
	}
	cx := int(math.Floor(e.X))
	cy := int(math.Floor(e.Y))
	min := image.Pt(cx-w/2, cy-h/2)
	e.Rect = image.Rectangle{Min: min, Max: min.Add(image.Pt(w, h))}
}

// Center — центр прямоугольника отрисовки
func (e *Entity) Center() image.Point {
	return image.Pt(e.Rect.Min.X+e.Rect.Dx()/2, e.Rect.Min.Y+e.Rect.Dy()/2)
}

// Draw рисует спрайт в текущем прямоугольнике. Состояние не меняется.
func (e *Entity) Draw(r render.Renderer) {
	if e.Sprite == nil {
		return
	}
	r.Blit(e.Sprite, e.Rect)
}

// Collide сообщает, пересекаются ли непрозрачные пиксели двух сущностей
// в их текущих прямоугольниках. Пересечение прямоугольников лишь отсекает
// заведомо далёкие пары; прозрачные поля спрайтов столкновением не считаются.
func Collide(a, b *Entity) bool {
	if a == nil || b == nil || a.Sprite == nil || b.Sprite == nil {
		return false
	}
	if !a.Rect.Overlaps(b.Rect) {
		return false
	}
	off := b.Rect.Min.Sub(a.Rect.Min)
	return a.Sprite.Mask.Overlap(b.Sprite.Mask, off.X, off.Y)
}
