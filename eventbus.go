package scenery

import "reflect"

// MaxEventTypes is the number of distinct event types a bus can carry.
const MaxEventTypes = 256

// EntityCreated is published by World.CreateEntity.
type EntityCreated struct {
	Entity Entity
}

// EntityDestroyed is published by World.DestroyEntity.
type EntityDestroyed struct {
	Entity Entity
}

// TransformsUpdated is published by World.Update once the hierarchies are
// recomputed.
type TransformsUpdated struct {
	Visited int
}

type subscriber struct {
	id uint64
	fn any
}

// EventBus dispatches events synchronously to handlers subscribed by event
// type. Handlers run in subscription order.
type EventBus struct {
	eventTypeMap    map[reflect.Type]uint8
	handlers        [MaxEventTypes][]subscriber
	nextEventTypeID uint16
	nextID          uint64
}

// Subscription identifies a handler for Unsubscribe.
type Subscription struct {
	eventType uint8
	id        uint64
}

// Subscribe registers handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) Subscription {
	id := bus.eventTypeID(reflect.TypeFor[T]())
	bus.nextID++
	bus.handlers[id] = append(bus.handlers[id], subscriber{id: bus.nextID, fn: handler})
	return Subscription{eventType: id, id: bus.nextID}
}

// Unsubscribe removes the handler behind s. A handler may unsubscribe itself
// while being called; the running Publish still reaches every handler it
// started with.
func (bus *EventBus) Unsubscribe(s Subscription) bool {
	hs := bus.handlers[s.eventType]
	for i := range hs {
		if hs[i].id == s.id {
			bus.handlers[s.eventType] = append(hs[:i:i], hs[i+1:]...)
			return true
		}
	}
	return false
}

// Publish calls every handler subscribed to T with event.
func Publish[T any](bus *EventBus, event T) {
	id, ok := bus.eventTypeMap[reflect.TypeFor[T]()]
	if !ok {
		return
	}
	for _, s := range bus.handlers[id] {
		s.fn.(func(T))(event)
	}
}

func (bus *EventBus) eventTypeID(t reflect.Type) uint8 {
	if bus.eventTypeMap == nil {
		bus.eventTypeMap = make(map[reflect.Type]uint8)
	}
	if id, ok := bus.eventTypeMap[t]; ok {
		return id
	}
	if int(bus.nextEventTypeID) >= MaxEventTypes {
		panic("ecs: too many event types")
	}
	id := uint8(bus.nextEventTypeID)
	bus.nextEventTypeID++
	bus.eventTypeMap[t] = id
	return id
}
