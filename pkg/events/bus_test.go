package events

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type testEvent struct{ name string }

func (e testEvent) EventName() string { return e.name }

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus(slog.New(slog.DiscardHandler))

	var got []string
	bus.Subscribe("order.placed", func(_ context.Context, e Event) {
		got = append(got, "first:"+e.EventName())
	})
	bus.Subscribe("order.placed", func(_ context.Context, e Event) {
		got = append(got, "second:"+e.EventName())
	})

	bus.Publish(context.Background(), testEvent{name: "order.placed"})
	assert.Equal(t, []string{"first:order.placed", "second:order.placed"}, got)
}

func TestBusIgnoresUnsubscribedEvents(t *testing.T) {
	bus := NewBus(slog.New(slog.DiscardHandler))

	called := false
	bus.Subscribe("order.placed", func(context.Context, Event) { called = true })

	bus.Publish(context.Background(), testEvent{name: "order.cancelled"})
	assert.False(t, called)
}
