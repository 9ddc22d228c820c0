// internal/input/input.go
package input

// Key — логическая клавиша игры. Физическую раскладку знает только адаптер платформы.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyFire
	KeyConfirm
	KeyQuit
	KeyWeapon1
	KeyWeapon2
	KeyWeapon3
	keyCount
)

var keyNames = [...]string{
	KeyUp:      "up",
	KeyDown:    "down",
	KeyLeft:    "left",
	KeyRight:   "right",
	KeyFire:    "fire",
	KeyConfirm: "confirm",
	KeyQuit:    "quit",
	KeyWeapon1: "weapon1",
	KeyWeapon2: "weapon2",
	KeyWeapon3: "weapon3",
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// Keys — все логические клавиши по порядку
func Keys() []Key {
	keys := make([]Key, 0, keyCount)
	for k := Key(0); k < keyCount; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Source — опрос состояния клавиш
type Source interface {
	IsKeyDown(k Key) bool
}

// Tracker опрашивает Source один раз за тик и помнит предыдущий кадр,
// чтобы отличать удержание от нажатия.
type Tracker struct {
	src  Source
	curr [keyCount]bool
	prev [keyCount]bool
}

func NewTracker(src Source) *Tracker {
	return &Tracker{src: src}
}

// Poll снимает состояние клавиш; вызывается в начале каждого тика
func (t *Tracker) Poll() {
	t.prev = t.curr
	for k := Key(0); k < keyCount; k++ {
		t.curr[k] = t.src.IsKeyDown(k)
	}
}

// Down — клавиша удерживается в текущем тике
func (t *Tracker) Down(k Key) bool {
	return k >= 0 && k < keyCount && t.curr[k]
}

// JustPressed — клавиша нажата в этом тике и не была нажата в предыдущем
func (t *Tracker) JustPressed(k Key) bool {
	return t.Down(k) && !t.prev[k]
}

// IsKeyDown позволяет передавать Tracker туда, где ждут Source
func (t *Tracker) IsKeyDown(k Key) bool {
	return t.Down(k)
}

// Axis — направление по паре клавиш: -1, 0 или +1; при одновременном нажатии побеждает neg
func Axis(src Source, neg, pos Key) float64 {
	switch {
	case src.IsKeyDown(neg):
		return -1
	case src.IsKeyDown(pos):
		return 1
	}
	return 0
}

// Fixed — набор зажатых клавиш для тестов и скриптов
type Fixed map[Key]bool

func (f Fixed) IsKeyDown(k Key) bool {
	return f[k]
}
