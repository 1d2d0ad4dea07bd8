package scenery

// Material selects the shading program a mesh is drawn with.
type Material uint8

const (
	MaterialLine Material = iota
	MaterialBasic
	MaterialNormal
	MaterialLambert
)

// String returns the lowercase material name.
func (m Material) String() string {
	switch m {
	case MaterialLine:
		return "line"
	case MaterialBasic:
		return "basic"
	case MaterialNormal:
		return "normal"
	case MaterialLambert:
		return "lambert"
	default:
		return "unknown"
	}
}

// Mesh draws a pooled geometry with a material.
type Mesh struct {
	Geometry Handle[Geometry]
	Material Material
}

func (Mesh) objectKind() ObjectKind { return ObjectMesh }
