// Package events carries domain events between contexts as in-process
// notifications. There is no broker and no durability; a handler that wants
// either must bring its own.
package events

import (
	"context"
	"log/slog"
	"sync"
)

type Event interface {
	EventName() string
}

type Handler func(ctx context.Context, event Event)

type Bus struct {
	log *slog.Logger

	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus(log *slog.Logger) *Bus {
	return &Bus{log: log, handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish runs all handlers for the event synchronously, in subscription
// order, on the caller's goroutine.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.EventName()]
	b.mu.RUnlock()

	b.log.Debug("event published", "event", event.EventName(), "handlers", len(handlers))
	for _, h := range handlers {
		h(ctx, event)
	}
}
