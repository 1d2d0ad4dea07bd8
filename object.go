package scenery

// ObjectKind names what a scene graph node carries.
type ObjectKind uint8

const (
	ObjectEmpty ObjectKind = iota
	ObjectCamera
	ObjectAmbientLight
	ObjectPointLight
	ObjectMesh
)

// String returns the snake_case kind name.
func (k ObjectKind) String() string {
	switch k {
	case ObjectCamera:
		return "camera"
	case ObjectAmbientLight:
		return "ambient_light"
	case ObjectPointLight:
		return "point_light"
	case ObjectMesh:
		return "mesh"
	default:
		return "empty"
	}
}

// Object is the payload of a scene graph node. It is implemented by Empty,
// *Camera, Light and Mesh.
type Object interface {
	objectKind() ObjectKind
}

// Empty is a node with no payload, used for grouping.
type Empty struct{}

func (Empty) objectKind() ObjectKind { return ObjectEmpty }

// KindOf returns the kind of o; a nil object is Empty.
func KindOf(o Object) ObjectKind {
	if o == nil {
		return ObjectEmpty
	}
	return o.objectKind()
}
