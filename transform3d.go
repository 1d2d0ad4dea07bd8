package scenery

import "github.com/go-gl/mathgl/mgl32"

// Transform3D places a node in 3D space relative to its parent. Position,
// Orientation and Scale are the editable local state; the local and global
// matrices are caches maintained by Transform3DList.
type Transform3D struct {
	Position    mgl32.Vec3
	Orientation mgl32.Quat
	Scale       mgl32.Vec3

	parent    Entity
	hasParent bool
	children  []Entity
	dirty     bool
	local     mgl32.Mat4
	global    mgl32.Mat4
}

// NewTransform3D returns an identity transform.
func NewTransform3D() Transform3D {
	return Transform3D{
		Orientation: mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
		local:       mgl32.Ident4(),
		global:      mgl32.Ident4(),
	}
}

// LocalMatrix returns the cached parent-relative matrix.
func (t *Transform3D) LocalMatrix() mgl32.Mat4 {
	return t.local
}

// GlobalMatrix returns the cached world matrix. It is exact only while the
// transform is clean.
func (t *Transform3D) GlobalMatrix() mgl32.Mat4 {
	return t.global
}

// Parent returns the parent entity, if any.
func (t *Transform3D) Parent() (Entity, bool) {
	return t.parent, t.hasParent
}

// Children returns the child entities in attachment order. The slice must not
// be modified.
func (t *Transform3D) Children() []Entity {
	return t.children
}

// Dirty reports whether the transform was mutably borrowed since its last
// update.
func (t *Transform3D) Dirty() bool {
	return t.dirty
}

// UpdateLocalMatrix recomposes the local matrix from position, orientation
// and scale.
func (t *Transform3D) UpdateLocalMatrix() {
	t.local = composeMat4(t.Position, t.Orientation, t.Scale)
}

// TranslateOnAxis moves the transform along a local axis.
func (t *Transform3D) TranslateOnAxis(axis mgl32.Vec3, distance float32) {
	t.Position = t.Position.Add(t.Orientation.Rotate(axis).Mul(distance))
}

// TranslateX moves the transform along its local X axis.
func (t *Transform3D) TranslateX(distance float32) {
	t.TranslateOnAxis(mgl32.Vec3{1, 0, 0}, distance)
}

// TranslateY moves the transform along its local Y axis.
func (t *Transform3D) TranslateY(distance float32) {
	t.TranslateOnAxis(mgl32.Vec3{0, 1, 0}, distance)
}

// TranslateZ moves the transform along its local Z axis.
func (t *Transform3D) TranslateZ(distance float32) {
	t.TranslateOnAxis(mgl32.Vec3{0, 0, 1}, distance)
}

// RotateOnAxis rotates the transform by angle radians around a local axis.
func (t *Transform3D) RotateOnAxis(axis mgl32.Vec3, angle float32) {
	t.Orientation = t.Orientation.Mul(mgl32.QuatRotate(angle, axis.Normalize()))
}

// RotateX rotates the transform by angle radians around its local X axis.
func (t *Transform3D) RotateX(angle float32) {
	t.RotateOnAxis(mgl32.Vec3{1, 0, 0}, angle)
}

// RotateY rotates the transform by angle radians around its local Y axis.
func (t *Transform3D) RotateY(angle float32) {
	t.RotateOnAxis(mgl32.Vec3{0, 1, 0}, angle)
}

// RotateZ rotates the transform by angle radians around its local Z axis.
func (t *Transform3D) RotateZ(angle float32) {
	t.RotateOnAxis(mgl32.Vec3{0, 0, 1}, angle)
}

// composeMat4 builds translation * rotation * scale.
func composeMat4(p mgl32.Vec3, q mgl32.Quat, s mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(p[0], p[1], p[2]).
		Mul4(q.Normalize().Mat4()).
		Mul4(mgl32.Scale3D(s[0], s[1], s[2]))
}
