package scenery

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rotisserie/eris"
)

// LightKind distinguishes light sources.
type LightKind uint8

const (
	AmbientLight LightKind = iota
	PointLight
)

// String returns "point" or "ambient".
func (k LightKind) String() string {
	if k == PointLight {
		return "point"
	}
	return "ambient"
}

// Light is a light source component. Point lights take their position from
// the entity's transform.
type Light struct {
	Kind      LightKind
	Color     mgl32.Vec3
	Intensity float32
}

// AsPointLight returns l when it is a point light.
func (l Light) AsPointLight() (Light, error) {
	if l.Kind != PointLight {
		return Light{}, eris.Wrapf(ErrNotPointLight, "light is %s", l.Kind)
	}
	return l, nil
}

func (l Light) objectKind() ObjectKind {
	if l.Kind == PointLight {
		return ObjectPointLight
	}
	return ObjectAmbientLight
}
