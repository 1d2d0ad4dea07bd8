package scenery

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Box3 is an axis-aligned bounding box.
type Box3 struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// DefaultBox3 spans -1..1 on every axis.
var DefaultBox3 = Box3{
	Min: mgl32.Vec3{-1, -1, -1},
	Max: mgl32.Vec3{1, 1, 1},
}

// EmptyBox3 returns an inverted box that any Expand call will overwrite.
func EmptyBox3() Box3 {
	inf := float32(math.Inf(1))
	return Box3{
		Min: mgl32.Vec3{inf, inf, inf},
		Max: mgl32.Vec3{-inf, -inf, -inf},
	}
}

// IsEmpty reports whether the box contains no point.
func (b Box3) IsEmpty() bool {
	return b.Max[0] < b.Min[0] || b.Max[1] < b.Min[1] || b.Max[2] < b.Min[2]
}

// Expand grows the box to include p.
func (b Box3) Expand(p mgl32.Vec3) Box3 {
	for i := 0; i < 3; i++ {
		b.Min[i] = min(b.Min[i], p[i])
		b.Max[i] = max(b.Max[i], p[i])
	}
	return b
}

// Vertices returns the eight corners, top face first.
func (b Box3) Vertices() [8]mgl32.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]mgl32.Vec3{
		{hi[0], hi[1], hi[2]},
		{lo[0], hi[1], hi[2]},
		{lo[0], hi[1], lo[2]},
		{hi[0], hi[1], lo[2]},
		{hi[0], lo[1], hi[2]},
		{lo[0], lo[1], hi[2]},
		{lo[0], lo[1], lo[2]},
		{hi[0], lo[1], lo[2]},
	}
}

// Transform returns the axis-aligned box enclosing b's corners transformed
// by m.
func (b Box3) Transform(m mgl32.Mat4) Box3 {
	out := EmptyBox3()
	for _, v := range b.Vertices() {
		out = out.Expand(m.Mul4x1(v.Vec4(1)).Vec3())
	}
	return out
}
