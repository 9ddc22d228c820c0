package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) {
	r.got = append(r.got, e)
}

func TestDispatchToSubscribers(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(EnemyDestroyed, a)
	d.Subscribe(EnemyDestroyed, b)
	d.Subscribe(PlayerHit, b)

	d.Dispatch(Event{Type: EnemyDestroyed, Data: EnemyDestroyedData{Score: 1}})
	d.Dispatch(Event{Type: PlayerHit})
	d.Dispatch(Event{Type: GameOver})

	assert.Len(t, a.got, 1)
	assert.Len(t, b.got, 2)
	assert.Equal(t, 1, a.got[0].Data.(EnemyDestroyedData).Score)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &recorder{}
	d.Subscribe(MissileFired, a)
	d.Unsubscribe(MissileFired, a)
	d.Dispatch(Event{Type: MissileFired})
	assert.Empty(t, a.got)
}

type selfRemoving struct {
	d     *Dispatcher
	calls int
}

func (s *selfRemoving) OnEvent(e Event) {
	s.calls++
	s.d.Unsubscribe(e.Type, s)
}

func TestUnsubscribeInsideHandler(t *testing.T) {
	d := NewDispatcher()
	first := &selfRemoving{d: d}
	second := &recorder{}
	d.Subscribe(EnemyEscaped, first)
	d.Subscribe(EnemyEscaped, second)

	d.Dispatch(Event{Type: EnemyEscaped})
	d.Dispatch(Event{Type: EnemyEscaped})

	assert.Equal(t, 1, first.calls)
	assert.Len(t, second.got, 2, "removal during dispatch must not skip the next listener")
	assert.Equal(t, 1, d.Listeners(EnemyEscaped))
}

func TestSubscribeAll(t *testing.T) {
	d := NewDispatcher()
	r := &recorder{}
	d.SubscribeAll(r, PlayerHit, GameOver)
	d.Dispatch(Event{Type: PlayerHit})
	d.Dispatch(Event{Type: GameOver})
	d.Dispatch(Event{Type: MissileFired})
	assert.Len(t, r.got, 2)
}

func TestNilDispatcher(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Type: GameOver}) })
	assert.Zero(t, d.Listeners(GameOver))
}
