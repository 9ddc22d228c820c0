// internal/sound/sound.go
package sound

// Player проигрывает звук по идентификатору. Неизвестный идентификатор — не ошибка,
// звук просто не звучит.
type Player interface {
	Play(id string)
}

// Nop — тишина (флаг -mute и тесты)
type Nop struct{}

func (Nop) Play(string) {}

// Log запоминает сыгранные идентификаторы
type Log struct {
	Played []string
}

func (l *Log) Play(id string) {
	l.Played = append(l.Played, id)
}
