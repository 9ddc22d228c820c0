// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Event — событие и его данные. Data — одна из структур *Data этого пакета.
type Event struct {
	Type EventType
	Data any
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher рассылает события синхронно, в порядке подписки.
// Нулевой указатель — допустимый диспетчер без подписчиков.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe подписывает listener на одно событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// SubscribeAll подписывает listener сразу на несколько событий
func (d *Dispatcher) SubscribeAll(listener Listener, types ...EventType) {
	for _, t := range types {
		d.Subscribe(t, listener)
	}
}

// Unsubscribe — отписка от события; повторная отписка ничего не делает
func (d *Dispatcher) Unsubscribe(eventType EventType, listener Listener) {
	listeners := d.listeners[eventType]
	for i, l := range listeners {
		if l == listener {
			rest := make([]Listener, 0, len(listeners)-1)
			rest = append(rest, listeners[:i]...)
			d.listeners[eventType] = append(rest, listeners[i+1:]...)
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам.
// Подписки, изменённые внутри обработчика, действуют со следующего события.
func (d *Dispatcher) Dispatch(event Event) {
	if d == nil {
		return
	}
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}

// Listeners — число подписчиков события
func (d *Dispatcher) Listeners(eventType EventType) int {
	if d == nil {
		return 0
	}
	return len(d.listeners[eventType])
}
