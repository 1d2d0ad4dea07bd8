package scenery

import (
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// Geometry is vertex data shared through a Pool and referenced by meshes.
// Uploading it is the renderer's business.
type Geometry struct {
	Positions []mgl32.Vec3
	Indices   []uint16
	bounds    Box3
}

// NewGeometry wraps positions and indices and computes their bounds.
func NewGeometry(positions []mgl32.Vec3, indices []uint16) Geometry {
	g := Geometry{Positions: positions, Indices: indices}
	g.RecomputeBounds()
	return g
}

// BoundingBox returns the bounds computed by the last RecomputeBounds.
func (g *Geometry) BoundingBox() Box3 {
	return g.bounds
}

// RecomputeBounds refreshes the bounding box after Positions changed.
func (g *Geometry) RecomputeBounds() {
	b := EmptyBox3()
	for _, p := range g.Positions {
		b = b.Expand(p)
	}
	g.bounds = b
}

var boxTriangles = []uint16{
	0, 1, 2, 0, 2, 3, // top
	4, 6, 5, 4, 7, 6, // bottom
	0, 4, 5, 0, 5, 1, // +z
	3, 2, 6, 3, 6, 7, // -z
	0, 3, 7, 0, 7, 4, // +x
	1, 5, 6, 1, 6, 2, // -x
}

var boxEdges = []uint16{
	0, 1, 1, 2, 2, 3, 3, 0,
	4, 5, 5, 6, 6, 7, 7, 4,
	0, 4, 1, 5, 2, 6, 3, 7,
}

// NewBoxGeometry returns a triangulated cube spanning DefaultBox3.
func NewBoxGeometry() Geometry {
	v := DefaultBox3.Vertices()
	return NewGeometry(v[:], slices.Clone(boxTriangles))
}

// NewPlaneGeometry returns a 2x2 quad lying on the XZ plane.
func NewPlaneGeometry() Geometry {
	return NewGeometry(
		[]mgl32.Vec3{{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1}},
		[]uint16{0, 1, 2, 0, 2, 3},
	)
}

// NewBoxHelperGeometry returns line geometry outlining b.
func NewBoxHelperGeometry(b Box3) Geometry {
	var g Geometry
	g.SetBoxHelper(b)
	return g
}

// SetBoxHelper rewrites g as line geometry outlining b.
func (g *Geometry) SetBoxHelper(b Box3) {
	v := b.Vertices()
	g.Positions = append(g.Positions[:0], v[:]...)
	g.Indices = append(g.Indices[:0], boxEdges...)
	g.bounds = b
}

