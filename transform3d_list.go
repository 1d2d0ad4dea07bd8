package scenery

import (
	"iter"
	"slices"

	"github.com/rotisserie/eris"
)

// Transform3DList stores 3D transforms and the parent/child forest linking
// them. A transform becomes dirty the moment it is mutably borrowed and stays
// dirty until Update visits it; while clean, every node satisfies
// global = parent.global * local.
type Transform3DList struct {
	list       *ComponentList[Transform3D]
	dirtyCount int
	stack      []Entity // scratch traversal stack reused across calls
}

// NewTransform3DList creates a transform list bound to em.
func NewTransform3DList(em *EntityManager) *Transform3DList {
	return &Transform3DList{
		list: newNamedComponentList[Transform3D](em, "Transform3D"),
	}
}

// Add attaches t to e as a root. The local matrix is computed immediately and
// the global matrix set to it.
func (l *Transform3DList) Add(e Entity, t Transform3D) error {
	t.parent, t.hasParent = Entity{}, false
	t.children = nil
	t.dirty = false
	t.UpdateLocalMatrix()
	t.global = t.local
	if _, err := l.list.Add(e, t); err != nil {
		return eris.Wrap(err, "cannot add transform")
	}
	return nil
}

// AddChild attaches t to child under parent. The child's global matrix is
// computed from whatever global matrix the parent currently holds, so update
// the parent first when it is dirty.
func (l *Transform3DList) AddChild(parent, child Entity, t Transform3D) error {
	if parent == child {
		return eris.Wrapf(ErrHierarchyCycle, "cannot attach entity %s to itself", child)
	}
	p, err := l.list.Get(parent)
	if err != nil {
		return eris.Wrap(err, "cannot add child transform")
	}
	t.parent, t.hasParent = parent, true
	t.children = nil
	t.dirty = false
	t.UpdateLocalMatrix()
	t.global = p.global.Mul4(t.local)
	if _, err := l.list.Add(child, t); err != nil {
		return eris.Wrap(err, "cannot add child transform")
	}
	// the add may have moved the dense storage
	p, _ = l.list.Get(parent)
	p.children = append(p.children, child)
	return nil
}

// Remove detaches e from its parent and removes e together with its whole
// subtree.
func (l *Transform3DList) Remove(e Entity) error {
	if l.list.iterating > 0 {
		return eris.Wrapf(ErrMutationDuringIteration, "cannot remove transform of entity %s", e)
	}
	t, err := l.list.Get(e)
	if err != nil {
		return eris.Wrap(err, "cannot remove transform")
	}
	if t.hasParent {
		l.unlink(t.parent, e)
	}
	l.stack = append(l.stack[:0], e)
	for len(l.stack) > 0 {
		cur := l.stack[len(l.stack)-1]
		l.stack = l.stack[:len(l.stack)-1]
		node, err := l.list.Get(cur)
		if err != nil {
			return eris.Wrapf(err, "transform hierarchy of %s is corrupt", e)
		}
		l.stack = append(l.stack, node.children...)
		dirty := node.dirty
		if err := l.list.Remove(cur); err != nil {
			return eris.Wrap(err, "cannot remove transform")
		}
		if dirty {
			l.dirtyCount--
		}
	}
	return nil
}

// Get returns the transform of e for reading. Use GetMut to modify it.
func (l *Transform3DList) Get(e Entity) (*Transform3D, error) {
	return l.list.Get(e)
}

// GetMut returns the transform of e and marks it dirty.
func (l *Transform3DList) GetMut(e Entity) (*Transform3D, error) {
	t, err := l.list.GetMut(e)
	if err != nil {
		return nil, err
	}
	l.markDirty(t)
	return t, nil
}

// TryGet returns the transform of e for reading, or false.
func (l *Transform3DList) TryGet(e Entity) (*Transform3D, bool) {
	return l.list.TryGet(e)
}

// TryGetMut returns the transform of e and marks it dirty, or false.
func (l *Transform3DList) TryGetMut(e Entity) (*Transform3D, bool) {
	t, ok := l.list.TryGetMut(e)
	if !ok {
		return nil, false
	}
	l.markDirty(t)
	return t, true
}

// Update recomputes the matrices of e and all of its descendants, parents
// before children, and clears their dirty flags. Every node of the subtree is
// visited whether or not it was touched. It returns the number of nodes
// visited.
func (l *Transform3DList) Update(e Entity) (int, error) {
	if _, err := l.list.Get(e); err != nil {
		return 0, eris.Wrap(err, "cannot update transform")
	}
	visited := 0
	l.stack = append(l.stack[:0], e)
	for len(l.stack) > 0 {
		cur := l.stack[len(l.stack)-1]
		l.stack = l.stack[:len(l.stack)-1]
		t, err := l.list.Get(cur)
		if err != nil {
			return visited, eris.Wrapf(err, "transform hierarchy of %s is corrupt", e)
		}
		if t.dirty {
			t.dirty = false
			l.dirtyCount--
		}
		t.UpdateLocalMatrix()
		if t.hasParent {
			p, err := l.list.Get(t.parent)
			if err != nil {
				return visited, eris.Wrapf(err, "transform hierarchy of %s is corrupt", e)
			}
			t.global = p.global.Mul4(t.local)
		} else {
			t.global = t.local
		}
		for i := len(t.children) - 1; i >= 0; i-- {
			l.stack = append(l.stack, t.children[i])
		}
		visited++
	}
	return visited, nil
}

// UpdateAll updates every root and therefore every transform. It returns the
// number of nodes visited.
func (l *Transform3DList) UpdateAll() (int, error) {
	visited := 0
	for i := 0; i < len(l.list.components); i++ {
		if l.list.components[i].hasParent {
			continue
		}
		n, err := l.Update(l.list.entities[i])
		visited += n
		if err != nil {
			return visited, err
		}
	}
	return visited, nil
}

// Reparent moves e, with its subtree, under newParent and recomputes the
// moved matrices from newParent's current global matrix.
func (l *Transform3DList) Reparent(e, newParent Entity) error {
	t, err := l.list.Get(e)
	if err != nil {
		return eris.Wrap(err, "cannot reparent transform")
	}
	if _, err := l.list.Get(newParent); err != nil {
		return eris.Wrap(err, "cannot reparent transform")
	}
	for anc, ok := newParent, true; ok; {
		if anc == e {
			return eris.Wrapf(ErrHierarchyCycle, "cannot move %s under %s", e, newParent)
		}
		a, _ := l.list.Get(anc)
		anc, ok = a.parent, a.hasParent
	}
	if t.hasParent {
		l.unlink(t.parent, e)
	}
	t.parent, t.hasParent = newParent, true
	p, _ := l.list.Get(newParent)
	p.children = append(p.children, e)
	_, err = l.Update(e)
	return err
}

// Detach makes e a root, keeping its subtree, and recomputes its matrices.
func (l *Transform3DList) Detach(e Entity) error {
	t, err := l.list.Get(e)
	if err != nil {
		return eris.Wrap(err, "cannot detach transform")
	}
	if t.hasParent {
		l.unlink(t.parent, e)
		t.parent, t.hasParent = Entity{}, false
	}
	_, err = l.Update(e)
	return err
}

// CheckForDirties walks every transform and fails with ErrDirtyTransforms
// when any of them was mutated without a following Update.
func (l *Transform3DList) CheckForDirties() error {
	n := 0
	for i := range l.list.components {
		if l.list.components[i].dirty {
			n++
		}
	}
	if n > 0 {
		return eris.Wrapf(ErrDirtyTransforms, "%d global matrix/matrices have not been calculated", n)
	}
	return nil
}

// DirtyCount returns the number of transforms currently dirty.
func (l *Transform3DList) DirtyCount() int {
	return l.dirtyCount
}

// Len returns the number of transforms.
func (l *Transform3DList) Len() int {
	return l.list.Len()
}

// ID returns the identifier of the underlying component list.
func (l *Transform3DList) ID() ListID {
	return l.list.ID()
}

// All yields every transform for reading in dense order.
func (l *Transform3DList) All() iter.Seq2[Entity, *Transform3D] {
	return l.list.All()
}

func (l *Transform3DList) markDirty(t *Transform3D) {
	if !t.dirty {
		t.dirty = true
		l.dirtyCount++
	}
}

// unlink removes child from parent's child list, keeping sibling order.
func (l *Transform3DList) unlink(parent, child Entity) {
	p, err := l.list.Get(parent)
	if err != nil {
		return
	}
	if i := slices.Index(p.children, child); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
}
