// internal/component/counter.go
package component

import (
	"errors"
	"fmt"
)

// ErrThreshold — порог счётчика должен быть положительным
var ErrThreshold = errors.New("counter threshold must be positive")

// Counter — интервальный таймер: копит dt, при достижении порога
// сбрасывается и сдвигает циклический индекс в [0, Max).
// IsActive истинно только в том Update, в котором сработал порог.
type Counter struct {
	Threshold float64 // Интервал срабатывания, сек
	Elapsed   float64 // Накопленное время
	Index     int     // Текущий индекс в [0, Max)
	Max       int     // Длина цикла индекса
	fired     bool
}

// NewCounter создаёт счётчик с порогом threshold и циклом длины max (минимум 1).
func NewCounter(threshold float64, max int) (*Counter, error) {
	if threshold <= 0 {
		return nil, fmt.Errorf("new counter (threshold %v): %w", threshold, ErrThreshold)
	}
	if max < 1 {
		max = 1
	}
	return &Counter{Threshold: threshold, Max: max}, nil
}

// Update копит dt и срабатывает не чаще одного раза за вызов.
func (c *Counter) Update(dt float64) {
	c.fired = false
	c.Elapsed += dt
	if c.Elapsed >= c.Threshold {
		c.Elapsed = 0
		c.Index = (c.Index + 1) % c.Max
		c.fired = true
	}
}

// IsActive — сработал ли счётчик на последнем Update
func (c *Counter) IsActive() bool {
	return c.fired
}

// Reset возвращает счётчик в начальное состояние
func (c *Counter) Reset() {
	c.Elapsed = 0
	c.Index = 0
	c.fired = false
}

// AnimationCounter — тот же Counter, но для смены кадров анимации.
type AnimationCounter struct {
	Counter
}

// NewAnimationCounter создаёт счётчик кадров: frames кадров по frameTime секунд.
func NewAnimationCounter(frameTime float64, frames int) (*AnimationCounter, error) {
	c, err := NewCounter(frameTime, frames)
	if err != nil {
		return nil, err
	}
	return &AnimationCounter{Counter: *c}, nil
}

// IsChange — сменился ли кадр на последнем Update
func (a *AnimationCounter) IsChange() bool {
	return a.IsActive()
}

// Frame — номер текущего кадра
func (a *AnimationCounter) Frame() int {
	return a.Index
}
