// internal/collision/mask.go
package collision

import (
	"image"
)

// DefaultAlphaThreshold — пиксель с альфой выше порога считается непрозрачным
const DefaultAlphaThreshold = 127

// Mask — попиксельная карта непрозрачности, по биту на пиксель, построчно.
// После построения не меняется.
type Mask struct {
	w, h  int
	words int // слов uint64 на строку
	bits  []uint64
}

// NewMask — пустая (полностью прозрачная) маска
func NewMask(w, h int) *Mask {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	words := (w + 63) / 64
	return &Mask{w: w, h: h, words: words, bits: make([]uint64, words*h)}
}

// FromImage строит маску по альфа-каналу img.
// Пиксель (0,0) маски соответствует img.Bounds().Min.
func FromImage(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := NewMask(b.Dx(), b.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			if uint8(a>>8) > threshold {
				m.set(x, y)
			}
		}
	}
	return m
}

// Full — маска, где непрозрачен каждый пиксель
func Full(w, h int) *Mask {
	m := NewMask(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.set(x, y)
		}
	}
	return m
}

func (m *Mask) set(x, y int) {
	m.bits[y*m.words+x/64] |= 1 << uint(x%64)
}

// Size — размер маски
func (m *Mask) Size() (int, int) {
	return m.w, m.h
}

// At сообщает, непрозрачен ли (x, y). За пределами маски всё прозрачно.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.words+x/64]&(1<<uint(x%64)) != 0
}

// Count — число непрозрачных пикселей
func (m *Mask) Count() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.At(x, y) {
				n++
			}
		}
	}
	return n
}

// Overlap сообщает, совпадает ли хоть один непрозрачный пиксель m с непрозрачным
// пикселем other, если начало other поставить в точку (dx, dy) системы координат m.
func (m *Mask) Overlap(other *Mask, dx, dy int) bool {
	if m == nil || other == nil {
		return false
	}
	x0, y0 := max(0, dx), max(0, dy)
	x1, y1 := min(m.w, dx+other.w), min(m.h, dy+other.h)
	if x0 >= x1 || y0 >= y1 {
		return false
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if m.At(x, y) && other.At(x-dx, y-dy) {
				return true
			}
		}
	}
	return false
}
