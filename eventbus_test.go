package scenery_test

import (
	"testing"

	"github.com/edwinsyarief/scenery"
	"github.com/stretchr/testify/assert"
)

type TestEvent struct {
	Value int
}

func TestEventBusSubscribeAndPublish(t *testing.T) {
	bus := &scenery.EventBus{}
	received := 0
	scenery.Subscribe(bus, func(e TestEvent) { received += e.Value })
	scenery.Subscribe(bus, func(e TestEvent) { received += e.Value * 2 })

	scenery.Publish(bus, TestEvent{Value: 1})
	assert.Equal(t, 3, received)
	scenery.Publish(bus, TestEvent{Value: 2})
	assert.Equal(t, 9, received)
}

func TestEventBusMultipleTypes(t *testing.T) {
	bus := &scenery.EventBus{}
	events, positions := 0, 0
	scenery.Subscribe(bus, func(e TestEvent) { events += e.Value })
	scenery.Subscribe(bus, func(p Position) { positions += int(p.X) })

	scenery.Publish(bus, TestEvent{Value: 42})
	scenery.Publish(bus, Position{X: 10})
	assert.Equal(t, 42, events)
	assert.Equal(t, 10, positions)
}

func TestEventBusNoHandlers(t *testing.T) {
	bus := &scenery.EventBus{}
	assert.NotPanics(t, func() { scenery.Publish(bus, TestEvent{Value: 42}) })
}

func TestEventBusUnsubscribe(t *testing.T) {
	bus := &scenery.EventBus{}
	var order []string
	a := scenery.Subscribe(bus, func(TestEvent) { order = append(order, "a") })
	scenery.Subscribe(bus, func(TestEvent) { order = append(order, "b") })

	assert.True(t, bus.Unsubscribe(a))
	assert.False(t, bus.Unsubscribe(a))
	scenery.Publish(bus, TestEvent{})
	assert.Equal(t, []string{"b"}, order)
}

func TestEventBusUnsubscribeDuringPublish(t *testing.T) {
	bus := &scenery.EventBus{}
	calls := 0
	var self scenery.Subscription
	self = scenery.Subscribe(bus, func(TestEvent) {
		calls++
		bus.Unsubscribe(self)
	})
	scenery.Subscribe(bus, func(TestEvent) { calls++ })

	scenery.Publish(bus, TestEvent{})
	assert.Equal(t, 2, calls)
	scenery.Publish(bus, TestEvent{})
	assert.Equal(t, 3, calls)
}

func BenchmarkEventBusPublish(b *testing.B) {
	bus := &scenery.EventBus{}
	sum := 0
	scenery.Subscribe(bus, func(e TestEvent) { sum += e.Value })
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		scenery.Publish(bus, TestEvent{Value: i})
	}
}
