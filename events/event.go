// Package events provides a small synchronous publish/subscribe hub used by
// the generation pipeline to announce its progress.
package events

// EventType identifies different types of events
type EventType string

// Event interface that all events must implement
type Event interface {
	Type() EventType
}

// EventHandler is a function that processes events
type EventHandler func(Event)

// Subscription identifies a registered handler so it can be removed later
type Subscription struct {
	eventType EventType
	id        uint64
}

type subscriber struct {
	id      uint64
	handler EventHandler
}

// EventManager manages event subscriptions and dispatches.
// Handlers run synchronously, in subscription order, on the emitting goroutine.
type EventManager struct {
	subscribers map[EventType][]subscriber
	nextID      uint64
}

// NewEventManager creates a new event manager
func NewEventManager() *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]subscriber),
	}
}

// Subscribe registers a handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) Subscription {
	em.nextID++
	em.subscribers[eventType] = append(em.subscribers[eventType], subscriber{id: em.nextID, handler: handler})
	return Subscription{eventType: eventType, id: em.nextID}
}

// Unsubscribe removes a previously registered handler
func (em *EventManager) Unsubscribe(sub Subscription) {
	handlers, exists := em.subscribers[sub.eventType]
	if !exists {
		return
	}

	remaining := make([]subscriber, 0, len(handlers))
	for _, s := range handlers {
		if s.id != sub.id {
			remaining = append(remaining, s)
		}
	}

	if len(remaining) == 0 {
		delete(em.subscribers, sub.eventType)
	} else {
		em.subscribers[sub.eventType] = remaining
	}
}

// Emit dispatches an event to all subscribed handlers
func (em *EventManager) Emit(event Event) {
	handlers, exists := em.subscribers[event.Type()]
	if !exists {
		return
	}

	for _, s := range handlers {
		s.handler(event)
	}
}

// HasSubscribers reports whether anything listens for eventType
func (em *EventManager) HasSubscribers(eventType EventType) bool {
	return len(em.subscribers[eventType]) > 0
}
