package scenery

import (
	"iter"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
)

// Node is an element of a scene Graph: a transform, a payload and optional
// local-space bounds used for picking.
type Node struct {
	Transform Transform3D
	Object    Object
	Bounds    *Box3
	// AutoUpdate recomposes the local matrix from position, orientation and
	// scale on every update. Disable it to drive the local matrix by hand
	// through SetLocalMatrix.
	AutoUpdate bool

	parent   Handle[Node]
	children []Handle[Node]
}

// NewNode returns a detached node carrying o with an identity transform.
func NewNode(o Object) Node {
	if o == nil {
		o = Empty{}
	}
	return Node{
		Transform:  NewTransform3D(),
		Object:     o,
		AutoUpdate: true,
		parent:     NullHandle[Node](),
	}
}

// Parent returns the handle of the parent node; the root has none.
func (n *Node) Parent() (Handle[Node], bool) {
	return n.parent, !n.parent.IsNull()
}

// Children returns the child handles in insertion order. The slice must not
// be modified.
func (n *Node) Children() []Handle[Node] {
	return n.children
}

// SetLocalMatrix overrides the local matrix of a node whose AutoUpdate is
// off.
func (n *Node) SetLocalMatrix(m mgl32.Mat4) {
	n.Transform.local = m
	n.Transform.dirty = true
}

// Graph is a scene hierarchy whose nodes live in a Pool and link to each
// other through handles. It always has an Empty root.
type Graph struct {
	nodes *Pool[Node]
	root  Handle[Node]
	stack []Handle[Node]
}

// NewGraph creates a graph holding only its root.
func NewGraph() *Graph {
	g := &Graph{nodes: NewPool[Node](16)}
	g.root = g.nodes.Add(NewNode(Empty{}))
	return g
}

// Root returns the handle of the root node.
func (g *Graph) Root() Handle[Node] {
	return g.root
}

// Add attaches n under the root.
func (g *Graph) Add(n Node) Handle[Node] {
	h, err := g.AddTo(g.root, n)
	if err != nil {
		panic(eris.Wrap(err, "graph: root handle lost"))
	}
	return h
}

// AddTo attaches n under parent. Its matrices are computed against the
// parent's current global matrix.
func (g *Graph) AddTo(parent Handle[Node], n Node) (Handle[Node], error) {
	p, ok := g.nodes.Get(parent)
	if !ok {
		return NullHandle[Node](), eris.Wrapf(ErrInvalidHandle, "cannot attach to node {%d %d}", parent.Index, parent.Generation)
	}
	n.parent = parent
	n.children = nil
	n.Transform.dirty = false
	if n.AutoUpdate {
		n.Transform.UpdateLocalMatrix()
	}
	n.Transform.global = p.Transform.global.Mul4(n.Transform.local)
	h := g.nodes.Add(n)
	// the add may have grown the pool
	p = g.nodes.MustGet(parent)
	p.children = append(p.children, h)
	return h, nil
}

// RemoveAt removes the node at h and its whole subtree.
func (g *Graph) RemoveAt(h Handle[Node]) error {
	if h == g.root {
		return eris.Wrap(ErrRootRemoval, "cannot remove node")
	}
	n, ok := g.nodes.Get(h)
	if !ok {
		return eris.Wrapf(ErrInvalidHandle, "cannot remove node {%d %d}", h.Index, h.Generation)
	}
	if p, ok := g.nodes.Get(n.parent); ok {
		if i := slices.Index(p.children, h); i >= 0 {
			p.children = slices.Delete(p.children, i, i+1)
		}
	}
	g.stack = append(g.stack[:0], h)
	for len(g.stack) > 0 {
		cur := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		g.stack = append(g.stack, g.nodes.MustGet(cur).children...)
		g.nodes.Remove(cur)
	}
	return nil
}

// Get returns the node at h for reading.
func (g *Graph) Get(h Handle[Node]) (*Node, bool) {
	return g.nodes.Get(h)
}

// GetMut returns the node at h and marks its transform dirty.
func (g *Graph) GetMut(h Handle[Node]) (*Node, bool) {
	n, ok := g.nodes.Get(h)
	if ok {
		n.Transform.dirty = true
	}
	return n, ok
}

// Len returns the number of node records, vacant ones included.
func (g *Graph) Len() int {
	return g.nodes.Len()
}

// PresentLen returns the number of live nodes, the root included.
func (g *Graph) PresentLen() int {
	return g.nodes.PresentLen()
}

// All yields every live node with its handle.
func (g *Graph) All() iter.Seq2[Handle[Node], *Node] {
	return g.nodes.All()
}

// Update recomputes every node's matrices. It returns the number of nodes
// visited.
func (g *Graph) Update() int {
	n, _ := g.UpdateAt(g.root)
	return n
}

// UpdateAt recomputes the matrices of h and its descendants, parents first.
func (g *Graph) UpdateAt(h Handle[Node]) (int, error) {
	if !g.nodes.Valid(h) {
		return 0, eris.Wrapf(ErrInvalidHandle, "cannot update node {%d %d}", h.Index, h.Generation)
	}
	visited := 0
	g.stack = append(g.stack[:0], h)
	for len(g.stack) > 0 {
		cur := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		n := g.nodes.MustGet(cur)
		t := &n.Transform
		if n.AutoUpdate {
			t.UpdateLocalMatrix()
		}
		if p, ok := g.nodes.Get(n.parent); ok {
			t.global = p.Transform.global.Mul4(t.local)
		} else {
			t.global = t.local
		}
		t.dirty = false
		for i := len(n.children) - 1; i >= 0; i-- {
			g.stack = append(g.stack, n.children[i])
		}
		visited++
	}
	return visited, nil
}

// CheckForDirties fails with ErrDirtyTransforms when a node was mutably
// borrowed without a following update.
func (g *Graph) CheckForDirties() error {
	n := 0
	for _, node := range g.nodes.All() {
		if node.Transform.dirty {
			n++
		}
	}
	if n > 0 {
		return eris.Wrapf(ErrDirtyTransforms, "%d scene node(s) have not been updated", n)
	}
	return nil
}

// WorldBounds returns the node's bounds transformed to world space. It
// reports false when the node is gone or has no bounds.
func (g *Graph) WorldBounds(h Handle[Node]) (Box3, bool) {
	n, ok := g.nodes.Get(h)
	if !ok || n.Bounds == nil {
		return Box3{}, false
	}
	return n.Bounds.Transform(n.Transform.global), true
}
