package scenery

import (
	"iter"

	"github.com/rotisserie/eris"
)

// Transform2DList stores flat transforms. There is no hierarchy; Update only
// recomputes matrices of transforms that were mutably borrowed.
type Transform2DList struct {
	list       *ComponentList[Transform2D]
	dirtyCount int
}

// NewTransform2DList creates a 2D transform list bound to em.
func NewTransform2DList(em *EntityManager) *Transform2DList {
	return &Transform2DList{
		list: newNamedComponentList[Transform2D](em, "Transform2D"),
	}
}

// Add attaches t to e with its matrix computed.
func (l *Transform2DList) Add(e Entity, t Transform2D) error {
	t.dirty = false
	t.UpdateMatrix()
	if _, err := l.list.Add(e, t); err != nil {
		return eris.Wrap(err, "cannot add 2D transform")
	}
	return nil
}

// Remove detaches the transform of e.
func (l *Transform2DList) Remove(e Entity) error {
	t, err := l.list.Get(e)
	if err != nil {
		return eris.Wrap(err, "cannot remove 2D transform")
	}
	dirty := t.dirty
	if err := l.list.Remove(e); err != nil {
		return eris.Wrap(err, "cannot remove 2D transform")
	}
	if dirty {
		l.dirtyCount--
	}
	return nil
}

// Get returns the transform of e for reading. Use GetMut to modify it.
func (l *Transform2DList) Get(e Entity) (*Transform2D, error) {
	return l.list.Get(e)
}

// GetMut returns the transform of e and marks it dirty.
func (l *Transform2DList) GetMut(e Entity) (*Transform2D, error) {
	t, err := l.list.GetMut(e)
	if err != nil {
		return nil, err
	}
	l.markDirty(t)
	return t, nil
}

// TryGet returns the transform of e for reading, or false.
func (l *Transform2DList) TryGet(e Entity) (*Transform2D, bool) {
	return l.list.TryGet(e)
}

// TryGetMut returns the transform of e and marks it dirty, or false.
func (l *Transform2DList) TryGetMut(e Entity) (*Transform2D, bool) {
	t, ok := l.list.TryGetMut(e)
	if !ok {
		return nil, false
	}
	l.markDirty(t)
	return t, true
}

// Update recomputes the matrix of e if it is dirty.
func (l *Transform2DList) Update(e Entity) error {
	t, err := l.list.Get(e)
	if err != nil {
		return eris.Wrap(err, "cannot update 2D transform")
	}
	l.refresh(t)
	return nil
}

// UpdateAll recomputes every dirty matrix and returns how many were
// recomputed.
func (l *Transform2DList) UpdateAll() int {
	n := 0
	for i := range l.list.components {
		if l.list.components[i].dirty {
			l.refresh(&l.list.components[i])
			n++
		}
	}
	return n
}

// CheckForDirties fails with ErrDirtyTransforms when any transform is dirty.
func (l *Transform2DList) CheckForDirties() error {
	n := 0
	for i := range l.list.components {
		if l.list.components[i].dirty {
			n++
		}
	}
	if n > 0 {
		return eris.Wrapf(ErrDirtyTransforms, "%d matrix/matrices have not been calculated", n)
	}
	return nil
}

// DirtyCount returns the number of transforms currently dirty.
func (l *Transform2DList) DirtyCount() int {
	return l.dirtyCount
}

// Len returns the number of 2D transforms.
func (l *Transform2DList) Len() int {
	return l.list.Len()
}

// ID returns the identifier of the underlying component list.
func (l *Transform2DList) ID() ListID {
	return l.list.ID()
}

// All yields every transform for reading in dense order.
func (l *Transform2DList) All() iter.Seq2[Entity, *Transform2D] {
	return l.list.All()
}

func (l *Transform2DList) markDirty(t *Transform2D) {
	if !t.dirty {
		t.dirty = true
		l.dirtyCount++
	}
}

func (l *Transform2DList) refresh(t *Transform2D) {
	if !t.dirty {
		return
	}
	t.UpdateMatrix()
	t.dirty = false
	l.dirtyCount--
}
