package scenery

import (
	"iter"

	"github.com/rotisserie/eris"
)

// sharedComponent is one component instance and the entities referencing it.
type sharedComponent[T any] struct {
	entities []Entity
	value    T
}

// multiSlot locates an entity's association: the shared component it points
// to and its position inside that component's entity list.
type multiSlot struct {
	component int32 // -1 if unassigned
	position  int32
}

// MultiComponentList stores components that many entities share, such as one
// mesh referenced by every instance of a character. Each entity references at
// most one component of the list.
type MultiComponentList[T any] struct {
	em         *EntityManager
	id         ListID
	components []sharedComponent[T]
	slots      []multiSlot // entity index -> association
	iterating  int
}

// NewMultiComponentList creates a shared-component list bound to em.
func NewMultiComponentList[T any](em *EntityManager) *MultiComponentList[T] {
	return newNamedMultiComponentList[T](em, typeName[T]())
}

func newNamedMultiComponentList[T any](em *EntityManager, name string) *MultiComponentList[T] {
	l := &MultiComponentList[T]{
		em:    em,
		id:    em.registerList(name),
		slots: make([]multiSlot, em.Capacity()),
	}
	for i := range l.slots {
		l.slots[i] = multiSlot{component: -1, position: -1}
	}
	return l
}

// Add stores a shared component that no entity references yet and returns
// its index.
func (l *MultiComponentList[T]) Add(c T) int {
	l.components = append(l.components, sharedComponent[T]{value: c})
	return len(l.components) - 1
}

// Assign makes e reference the shared component at index.
func (l *MultiComponentList[T]) Assign(e Entity, index int) error {
	if l.iterating > 0 {
		return eris.Wrapf(ErrMutationDuringIteration, "cannot assign component %d to entity %s", index, e)
	}
	if !l.em.Valid(e) {
		return eris.Wrapf(ErrStaleEntity, "cannot assign component %d to entity %s", index, e)
	}
	if index < 0 || index >= len(l.components) {
		return eris.Wrapf(ErrIndexOutOfRange, "cannot assign component %d to entity %s", index, e)
	}
	if l.slots[e.Index].component >= 0 {
		return eris.Wrapf(ErrDuplicateComponent, "cannot assign component %d to entity %s", index, e)
	}
	shared := &l.components[index]
	shared.entities = append(shared.entities, e)
	l.slots[e.Index] = multiSlot{component: int32(index), position: int32(len(shared.entities) - 1)}
	l.em.attach(e, l.id)
	return nil
}

// Unassign drops e's reference. Other entities sharing the component keep
// theirs.
func (l *MultiComponentList[T]) Unassign(e Entity) error {
	if l.iterating > 0 {
		return eris.Wrapf(ErrMutationDuringIteration, "cannot unassign component from entity %s", e)
	}
	slot, err := l.lookup(e)
	if err != nil {
		return eris.Wrapf(err, "cannot unassign component from entity %s", e)
	}
	shared := &l.components[slot.component]
	last := len(shared.entities) - 1
	if int(slot.position) < last {
		moved := shared.entities[last]
		shared.entities[slot.position] = moved
		l.slots[moved.Index].position = slot.position
	}
	shared.entities = shared.entities[:last]
	l.slots[e.Index] = multiSlot{component: -1, position: -1}
	l.em.detach(e, l.id)
	return nil
}

// Remove deletes the shared component at index and drops every entity's
// reference to it. The last shared component is moved into index.
func (l *MultiComponentList[T]) Remove(index int) error {
	if l.iterating > 0 {
		return eris.Wrapf(ErrMutationDuringIteration, "cannot remove component %d", index)
	}
	if index < 0 || index >= len(l.components) {
		return eris.Wrapf(ErrIndexOutOfRange, "cannot remove component %d", index)
	}
	for _, e := range l.components[index].entities {
		l.slots[e.Index] = multiSlot{component: -1, position: -1}
		l.em.detach(e, l.id)
	}
	last := len(l.components) - 1
	if index < last {
		l.components[index] = l.components[last]
		for _, e := range l.components[index].entities {
			l.slots[e.Index].component = int32(index)
		}
	}
	l.components[last] = sharedComponent[T]{}
	l.components = l.components[:last]
	return nil
}

// Get returns the component e references.
func (l *MultiComponentList[T]) Get(e Entity) (*T, error) {
	slot, err := l.lookup(e)
	if err != nil {
		return nil, eris.Wrapf(err, "cannot borrow component of entity %s", e)
	}
	return &l.components[slot.component].value, nil
}

// GetMut is Get for callers that intend to modify the shared component.
// Every entity referencing it observes the change.
func (l *MultiComponentList[T]) GetMut(e Entity) (*T, error) {
	slot, err := l.lookup(e)
	if err != nil {
		return nil, eris.Wrapf(err, "cannot mutably borrow component of entity %s", e)
	}
	return &l.components[slot.component].value, nil
}

// TryGet returns the component e references, or false.
func (l *MultiComponentList[T]) TryGet(e Entity) (*T, bool) {
	slot, err := l.lookup(e)
	if err != nil {
		return nil, false
	}
	return &l.components[slot.component].value, true
}

// TryGetMut is TryGet for callers that intend to modify the component.
func (l *MultiComponentList[T]) TryGetMut(e Entity) (*T, bool) {
	return l.TryGet(e)
}

// Shared returns the component stored at index.
func (l *MultiComponentList[T]) Shared(index int) (*T, error) {
	if index < 0 || index >= len(l.components) {
		return nil, eris.Wrapf(ErrIndexOutOfRange, "cannot borrow component %d", index)
	}
	return &l.components[index].value, nil
}

// IndexOf returns the index of the component e references.
func (l *MultiComponentList[T]) IndexOf(e Entity) (int, bool) {
	slot, err := l.lookup(e)
	if err != nil {
		return -1, false
	}
	return int(slot.component), true
}

// EntitiesOf returns the entities referencing the component at index. The
// slice is shared with the list and must not be modified.
func (l *MultiComponentList[T]) EntitiesOf(index int) []Entity {
	if index < 0 || index >= len(l.components) {
		return nil
	}
	return l.components[index].entities
}

// Len returns the number of shared components.
func (l *MultiComponentList[T]) Len() int {
	return len(l.components)
}

// ID returns the identifier the list was registered under.
func (l *MultiComponentList[T]) ID() ListID {
	return l.id
}

// All yields each shared component with the entities referencing it.
func (l *MultiComponentList[T]) All() iter.Seq2[[]Entity, *T] {
	return func(yield func([]Entity, *T) bool) {
		l.iterating++
		defer func() { l.iterating-- }()
		for i := range l.components {
			if !yield(l.components[i].entities, &l.components[i].value) {
				return
			}
		}
	}
}

func (l *MultiComponentList[T]) lookup(e Entity) (multiSlot, error) {
	if int(e.Index) >= len(l.slots) {
		return multiSlot{}, ErrStaleEntity
	}
	slot := l.slots[e.Index]
	if slot.component < 0 {
		return multiSlot{}, ErrComponentNotFound
	}
	if l.components[slot.component].entities[slot.position].Generation != e.Generation {
		return multiSlot{}, ErrStaleEntity
	}
	return slot, nil
}
