package scenery

import "github.com/go-gl/mathgl/mgl32"

// Camera holds a perspective projection. Its view comes from the transform
// of the node or entity it is attached to.
type Camera struct {
	Projection mgl32.Mat4

	aspect, fov, near, far float32
}

// NewCamera creates a camera with a vertical field of view of fov degrees.
func NewCamera(aspect, fov, near, far float32) *Camera {
	c := &Camera{}
	c.SetPerspective(aspect, fov, near, far)
	return c
}

// SetPerspective rebuilds the projection, e.g. after a window resize.
func (c *Camera) SetPerspective(aspect, fov, near, far float32) {
	c.aspect, c.fov, c.near, c.far = aspect, fov, near, far
	c.Projection = mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
}

// SetAspect keeps the field of view and clip planes and changes the aspect
// ratio.
func (c *Camera) SetAspect(aspect float32) {
	c.SetPerspective(aspect, c.fov, c.near, c.far)
}

func (*Camera) objectKind() ObjectKind { return ObjectCamera }
