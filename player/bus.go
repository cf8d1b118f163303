package player

import "sync"

// Chain composes two listeners: prev runs first and runs in full, then next.
// A nil prev yields next unchanged.
func Chain(prev, next Listener) Listener {
	if prev == nil {
		return next
	}
	if next == nil {
		return prev
	}

	return func(evt Event) {
		prev(evt)
		next(evt)
	}
}

// Bus is an ordered, multi-subscriber event source.
// Handlers are invoked in registration order.
type Bus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers []busHandler
}

type busHandler struct {
	id uint64
	fn Listener
}

// Subscribe appends a handler and returns a function that removes it.
// The returned function is safe to call more than once.
func (b *Bus) Subscribe(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers = append(b.handlers, busHandler{id: id, fn: fn})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		for i, h := range b.handlers {
			if h.id == id {
				b.handlers = append(b.handlers[:i:i], b.handlers[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers the event to every handler in registration order.
func (b *Bus) Publish(evt Event) {
	b.mu.RLock()
	handlers := make([]busHandler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	for _, h := range handlers {
		h.fn(evt)
	}
}

// Len reports the number of subscribed handlers.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

// Listener returns a listener that publishes into the bus, suitable for a single-slot player.
func (b *Bus) Listener() Listener {
	return b.Publish
}
