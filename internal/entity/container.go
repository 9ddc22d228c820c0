// internal/entity/container.go
package entity

import "go-space-shooter/internal/render"

// Handle — ссылка на слот контейнера. Поколение защищает от обращения
// к слоту, который успели освободить и занять заново.
// Нулевой Handle никогда не бывает живым.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero сообщает, что handle не указывает ни на что
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Index — номер слота; задаёт порядок обхода
func (h Handle) Index() int {
	return int(h.index)
}

type slot struct {
	gen    uint32
	used   bool
	entity Entity
}

// Container владеет сущностями по индексу слота (арена).
// «Живая» сущность — занятый слот с совпадающим поколением.
// Обход идёт в порядке слотов, он детерминирован.
type Container struct {
	slots []slot
	free  []uint32
	count int
}

// NewContainer создаёт пустой контейнер
func NewContainer() *Container {
	return &Container{}
}

// Add помещает сущность в свободный слот и возвращает её handle.
// Указатели, полученные через Get, после Add могут устареть.
func (c *Container) Add(e Entity) Handle {
	var idx uint32
	if n := len(c.free); n > 0 {
		idx = c.free[n-1]
		c.free = c.free[:n-1]
	} else {
		c.slots = append(c.slots, slot{})
		idx = uint32(len(c.slots) - 1)
	}
	s := &c.slots[idx]
	s.gen++
	if s.gen == 0 {
		s.gen = 1
	}
	s.used = true
	s.entity = e
	c.count++
	return Handle{index: idx, gen: s.gen}
}

// Remove освобождает слот. Устаревший или чужой handle игнорируется (false).
func (c *Container) Remove(h Handle) bool {
	if !c.Alive(h) {
		return false
	}
	s := &c.slots[h.index]
	s.used = false
	s.entity = Entity{}
	c.free = append(c.free, h.index)
	c.count--
	return true
}

// Alive сообщает, занят ли слот этим handle
func (c *Container) Alive(h Handle) bool {
	if h.gen == 0 || int(h.index) >= len(c.slots) {
		return false
	}
	s := &c.slots[h.index]
	return s.used && s.gen == h.gen
}

// Get возвращает сущность по handle или nil
func (c *Container) Get(h Handle) *Entity {
	if !c.Alive(h) {
		return nil
	}
	return &c.slots[h.index].entity
}

// Len — число живых сущностей
func (c *Container) Len() int {
	return c.count
}

// Each обходит живые сущности в порядке слотов.
// Внутри fn нельзя добавлять и удалять — для этого есть Handles.
func (c *Container) Each(fn func(h Handle, e *Entity)) {
	for i := range c.slots {
		s := &c.slots[i]
		if s.used {
			fn(Handle{index: uint32(i), gen: s.gen}, &s.entity)
		}
	}
}

// Handles возвращает снимок живых handle; по нему можно удалять во время обхода.
func (c *Container) Handles() []Handle {
	out := make([]Handle, 0, c.count)
	for i := range c.slots {
		if c.slots[i].used {
			out = append(out, Handle{index: uint32(i), gen: c.slots[i].gen})
		}
	}
	return out
}

// Update применяет step ко всем живым сущностям
func (c *Container) Update(dt float64, step func(e *Entity, dt float64)) {
	c.Each(func(_ Handle, e *Entity) {
		step(e, dt)
	})
}

// Draw рисует все живые сущности
func (c *Container) Draw(r render.Renderer) {
	c.Each(func(_ Handle, e *Entity) {
		e.Draw(r)
	})
}

// Clear освобождает все слоты; выданные ранее handle становятся мёртвыми.
func (c *Container) Clear() {
	for _, h := range c.Handles() {
		c.Remove(h)
	}
}
