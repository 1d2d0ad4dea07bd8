package scenery

import (
	"github.com/rotisserie/eris"
)

// DefaultMaxEntityCount is the entity capacity used when none is configured.
const DefaultMaxEntityCount = 4096

// EntityManager allocates entities from a fixed-capacity table and tracks how
// many components each one carries, so that an entity cannot be destroyed
// while component lists still reference it.
type EntityManager struct {
	slots  slotAllocator
	counts []uint32     // attached component count, indexed by entity index
	masks  []bitmask256 // attached lists, indexed by entity index
	lists  listRegistry
}

// NewEntityManager creates a manager for at most maxEntities live entities.
// A non-positive value selects DefaultMaxEntityCount.
func NewEntityManager(maxEntities int) *EntityManager {
	if maxEntities <= 0 {
		maxEntities = DefaultMaxEntityCount
	}
	return &EntityManager{
		slots:  newSlotAllocator(maxEntities, true),
		counts: make([]uint32, maxEntities),
		masks:  make([]bitmask256, maxEntities),
	}
}

// Create allocates an entity, reusing the most recently destroyed slot when
// possible. It fails with ErrCapacityExhausted once Capacity entities are
// alive.
func (em *EntityManager) Create() (Entity, error) {
	index, generation, err := em.slots.acquire()
	if err != nil {
		return Entity{}, eris.Wrap(err, "cannot create entity")
	}
	return Entity{Index: index, Generation: generation}, nil
}

// MustCreate is Create for callers that treat exhaustion as fatal.
func (em *EntityManager) MustCreate() Entity {
	e, err := em.Create()
	if err != nil {
		panic(err)
	}
	return e
}

// Destroy releases e. The entity must be valid and carry no components.
func (em *EntityManager) Destroy(e Entity) error {
	if !em.Valid(e) {
		return eris.Wrapf(ErrStaleEntity, "cannot destroy entity %s", e)
	}
	if n := em.counts[e.Index]; n != 0 {
		return eris.Wrapf(ErrEntityHasComponents, "cannot destroy entity %s with %d component(s)", e, n)
	}
	em.slots.release(e.Index)
	return nil
}

// Valid reports whether e is alive and not a stale copy of a recycled slot.
func (em *EntityManager) Valid(e Entity) bool {
	return em.slots.valid(e.Index, e.Generation)
}

// ComponentCount returns the number of components attached to e, or 0 when e
// is not valid.
func (em *EntityManager) ComponentCount(e Entity) int {
	if !em.Valid(e) {
		return 0
	}
	return int(em.counts[e.Index])
}

// Components lists the component lists e is attached to.
func (em *EntityManager) Components(e Entity) []ComponentInfo {
	if !em.Valid(e) {
		return nil
	}
	infos := make([]ComponentInfo, 0, em.masks[e.Index].count())
	em.masks[e.Index].forEach(func(bit uint8) {
		infos = append(infos, ComponentInfo{ID: ListID(bit), Name: em.lists.name(ListID(bit))})
	})
	return infos
}

// Attached reports whether e holds a component in the list identified by id.
func (em *EntityManager) Attached(e Entity, id ListID) bool {
	return em.Valid(e) && em.masks[e.Index].containsBit(uint8(id))
}

// Alive returns the number of live entities.
func (em *EntityManager) Alive() int {
	return em.slots.live
}

// Capacity returns the maximum number of live entities.
func (em *EntityManager) Capacity() int {
	return em.slots.capacity
}

// registerList binds a component list to this manager.
func (em *EntityManager) registerList(name string) ListID {
	return em.lists.register(name)
}

// attach records that list now holds a component for e.
func (em *EntityManager) attach(e Entity, list ListID) {
	em.counts[e.Index]++
	em.masks[e.Index].set(uint8(list))
}

// detach records that list no longer holds a component for e.
func (em *EntityManager) detach(e Entity, list ListID) {
	if em.counts[e.Index] == 0 || !em.masks[e.Index].containsBit(uint8(list)) {
		panic("ecs: component count underflow")
	}
	em.counts[e.Index]--
	em.masks[e.Index].unset(uint8(list))
}
