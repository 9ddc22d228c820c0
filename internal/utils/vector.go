// internal/utils/vector.go
package utils

import "math"

// Vec2 — двумерный вектор в экранных координатах (ось Y направлена вниз)
type Vec2 struct {
	X, Y float64
}

// V — короткий конструктор вектора
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle возвращает единичный вектор для угла в радианах.
// Угол -π/2 смотрит строго вверх.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// LenSq — квадрат длины, для сравнения расстояний без корня
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len — длина (magnitude) вектора
func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Normalize возвращает единичный вектор того же направления.
// Нулевой вектор остаётся нулевым.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// IsZero сообщает, что обе компоненты равны нулю
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Angle — угол вектора в радианах
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}
