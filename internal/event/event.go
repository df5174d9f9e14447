// internal/event/event.go
package event

// EventType — тип события
type EventType string

// Any — подписка на все события сразу (используется трансляцией событий наружу).
const Any EventType = "*"

// Event — структура события
type Event struct {
	Type EventType
	Data interface{} // Данные события, если нужны
}

// Listener — интерфейс для подписчиков на события
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc позволяет использовать обычную функцию как Listener.
type ListenerFunc func(event Event)

func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Subscription — квитанция подписки, нужна для отписки.
type Subscription struct {
	Type EventType
	id   uint64
}

type subscriber struct {
	id       uint64
	listener Listener
}

// Dispatcher — синхронный диспетчер событий. События доставляются в порядке
// подписки, в том же потоке, что и Dispatch.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	nextID    uint64
}

// NewDispatcher — создаёт новый диспетчер
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
	}
}

// Subscribe — подписка на событие
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: d.nextID, listener: listener})
	return Subscription{Type: eventType, id: d.nextID}
}

// SubscribeFunc — подписка функцией.
func (d *Dispatcher) SubscribeFunc(eventType EventType, fn func(Event)) Subscription {
	return d.Subscribe(eventType, ListenerFunc(fn))
}

// Unsubscribe — отписка от события. Повторная отписка ничего не делает.
func (d *Dispatcher) Unsubscribe(sub Subscription) {
	subs, exists := d.listeners[sub.Type]
	if !exists {
		return
	}
	for i, s := range subs {
		if s.id == sub.id {
			// Новый срез, чтобы не испортить копию, по которой сейчас идет Dispatch.
			next := make([]subscriber, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			next = append(next, subs[i+1:]...)
			d.listeners[sub.Type] = next
			return
		}
	}
}

// Dispatch — отправка события всем подписчикам типа, затем подписчикам Any.
func (d *Dispatcher) Dispatch(event Event) {
	for _, s := range d.listeners[event.Type] {
		s.listener.OnEvent(event)
	}
	if event.Type == Any {
		return
	}
	for _, s := range d.listeners[Any] {
		s.listener.OnEvent(event)
	}
}

// Emit — короткая форма Dispatch.
func (d *Dispatcher) Emit(eventType EventType, data interface{}) {
	d.Dispatch(Event{Type: eventType, Data: data})
}
