package scenery

import "github.com/go-gl/mathgl/mgl32"

// Transform2D places a flat element, such as a text label, on screen.
type Transform2D struct {
	Position    mgl32.Vec2
	Orientation float32 // radians
	Scale       mgl32.Vec2

	matrix mgl32.Mat3
	dirty  bool
}

// NewTransform2D returns an identity transform.
func NewTransform2D() Transform2D {
	return Transform2D{
		Scale:  mgl32.Vec2{1, 1},
		matrix: mgl32.Ident3(),
	}
}

// Matrix returns the cached homogeneous 2D matrix.
func (t *Transform2D) Matrix() mgl32.Mat3 {
	return t.matrix
}

// Dirty reports whether the transform was mutably borrowed since its last
// update.
func (t *Transform2D) Dirty() bool {
	return t.dirty
}

// UpdateMatrix recomposes the matrix as translation * rotation * scale.
func (t *Transform2D) UpdateMatrix() {
	t.matrix = mgl32.Translate2D(t.Position[0], t.Position[1]).
		Mul3(mgl32.HomogRotate2D(t.Orientation)).
		Mul3(mgl32.Scale2D(t.Scale[0], t.Scale[1]))
}
