package scenery

import (
	"iter"

	"github.com/rotisserie/eris"
)

// ComponentList stores at most one component of type T per entity in a
// dense array. Lookups go through a fixed-size index map sized to the
// manager's capacity, and removal moves the last element into the hole.
//
// Pointers returned by the list stay valid until the next Add or Remove.
type ComponentList[T any] struct {
	em         *EntityManager
	id         ListID
	entities   []Entity // owner of each dense slot
	components []T      // dense component storage, parallel to entities
	slots      []int32  // entity index -> dense slot, -1 if absent
	iterating  int      // active All() ranges
}

// NewComponentList creates a list bound to em. Attach and remove operations
// keep em's per-entity component counts up to date.
func NewComponentList[T any](em *EntityManager) *ComponentList[T] {
	return newNamedComponentList[T](em, typeName[T]())
}

func newNamedComponentList[T any](em *EntityManager, name string) *ComponentList[T] {
	l := &ComponentList[T]{
		em:    em,
		id:    em.registerList(name),
		slots: make([]int32, em.Capacity()),
	}
	for i := range l.slots {
		l.slots[i] = -1
	}
	return l
}

// Add attaches c to e and returns a pointer to the stored copy.
func (l *ComponentList[T]) Add(e Entity, c T) (*T, error) {
	if l.iterating > 0 {
		return nil, eris.Wrapf(ErrMutationDuringIteration, "cannot add component to entity %s", e)
	}
	if !l.em.Valid(e) {
		return nil, eris.Wrapf(ErrStaleEntity, "cannot add component to entity %s", e)
	}
	if l.slots[e.Index] >= 0 {
		return nil, eris.Wrapf(ErrDuplicateComponent, "cannot add component to entity %s", e)
	}
	l.entities = append(l.entities, e)
	l.components = append(l.components, c)
	slot := len(l.components) - 1
	l.slots[e.Index] = int32(slot)
	l.em.attach(e, l.id)
	return &l.components[slot], nil
}

// Remove detaches the component of e. The last component of the list takes
// the freed slot.
func (l *ComponentList[T]) Remove(e Entity) error {
	if l.iterating > 0 {
		return eris.Wrapf(ErrMutationDuringIteration, "cannot remove component from entity %s", e)
	}
	slot, err := l.lookup(e)
	if err != nil {
		return eris.Wrapf(err, "cannot remove component from entity %s", e)
	}
	last := len(l.components) - 1
	if slot < last {
		moved := l.entities[last]
		l.entities[slot] = moved
		l.components[slot] = l.components[last]
		l.slots[moved.Index] = int32(slot)
	}
	var zero T
	l.components[last] = zero
	l.entities = l.entities[:last]
	l.components = l.components[:last]
	l.slots[e.Index] = -1
	l.em.detach(e, l.id)
	return nil
}

// Get returns the component of e. It fails with ErrComponentNotFound when e
// has none and with ErrStaleEntity when e is an outdated copy of the owner.
func (l *ComponentList[T]) Get(e Entity) (*T, error) {
	slot, err := l.lookup(e)
	if err != nil {
		return nil, eris.Wrapf(err, "cannot borrow component of entity %s", e)
	}
	return &l.components[slot], nil
}

// GetMut is Get for callers that intend to modify the component.
func (l *ComponentList[T]) GetMut(e Entity) (*T, error) {
	slot, err := l.lookup(e)
	if err != nil {
		return nil, eris.Wrapf(err, "cannot mutably borrow component of entity %s", e)
	}
	return &l.components[slot], nil
}

// TryGet returns the component of e, or false when it is absent or e is stale.
func (l *ComponentList[T]) TryGet(e Entity) (*T, bool) {
	slot, err := l.lookup(e)
	if err != nil {
		return nil, false
	}
	return &l.components[slot], true
}

// TryGetMut is TryGet for callers that intend to modify the component.
func (l *ComponentList[T]) TryGetMut(e Entity) (*T, bool) {
	return l.TryGet(e)
}

// Has reports whether e currently owns a component in this list.
func (l *ComponentList[T]) Has(e Entity) bool {
	_, err := l.lookup(e)
	return err == nil
}

// Len returns the number of stored components.
func (l *ComponentList[T]) Len() int {
	return len(l.components)
}

// ID returns the identifier the list was registered under.
func (l *ComponentList[T]) ID() ListID {
	return l.id
}

// Entities returns the owners in dense order. The slice is shared with the
// list and must not be modified.
func (l *ComponentList[T]) Entities() []Entity {
	return l.entities
}

// All yields (entity, component) pairs in dense order. The order is not
// stable across removals. Adding or removing while ranging fails with
// ErrMutationDuringIteration.
func (l *ComponentList[T]) All() iter.Seq2[Entity, *T] {
	return func(yield func(Entity, *T) bool) {
		l.iterating++
		defer func() { l.iterating-- }()
		for i := 0; i < len(l.components); i++ {
			if !yield(l.entities[i], &l.components[i]) {
				return
			}
		}
	}
}

// Iter returns a cursor over the list in dense order.
func (l *ComponentList[T]) Iter() *ComponentIter[T] {
	return &ComponentIter[T]{list: l, index: -1}
}

func (l *ComponentList[T]) lookup(e Entity) (int, error) {
	if int(e.Index) >= len(l.slots) {
		return 0, ErrStaleEntity
	}
	slot := l.slots[e.Index]
	if slot < 0 {
		return 0, ErrComponentNotFound
	}
	if l.entities[slot].Generation != e.Generation {
		return 0, ErrStaleEntity
	}
	return int(slot), nil
}

// ComponentIter walks a ComponentList. It is exhausted once Next returns
// false; call Reset to walk again.
type ComponentIter[T any] struct {
	list  *ComponentList[T]
	index int
}

// Next advances to the next component. Returns false if no more components.
func (it *ComponentIter[T]) Next() bool {
	if it.index+1 >= len(it.list.components) {
		it.index = len(it.list.components)
		return false
	}
	it.index++
	return true
}

// Get returns a pointer to the current component.
func (it *ComponentIter[T]) Get() *T {
	return &it.list.components[it.index]
}

// Entity returns the owner of the current component.
func (it *ComponentIter[T]) Entity() Entity {
	return it.list.entities[it.index]
}

// Reset rewinds the cursor.
func (it *ComponentIter[T]) Reset() {
	it.index = -1
}
