package scenery

import (
	"slices"

	"github.com/rotisserie/eris"
)

// MeshBoundsHelper links a mesh entity to the entity drawing its world-space
// bounds as lines.
type MeshBoundsHelper struct {
	BoundsEntity Entity
}

// BoundsHelperSystem keeps box-helper geometries wrapped around the world
// bounds of the tracked meshes.
type BoundsHelperSystem struct {
	entities []Entity
}

// Track starts keeping e's helper up to date. e needs a transform, a mesh and
// a MeshBoundsHelper by the time Update runs.
func (s *BoundsHelperSystem) Track(e Entity) {
	if !slices.Contains(s.entities, e) {
		s.entities = append(s.entities, e)
	}
}

// Untrack stops updating e's helper.
func (s *BoundsHelperSystem) Untrack(e Entity) {
	if i := slices.Index(s.entities, e); i >= 0 {
		s.entities = slices.Delete(s.entities, i, i+1)
	}
}

// Tracked returns the tracked entities. The slice must not be modified.
func (s *BoundsHelperSystem) Tracked() []Entity {
	return s.entities
}

// Update transforms each tracked mesh's geometry bounds by its global matrix
// and rewrites the helper mesh's geometry as the enclosing box. Transforms
// must be up to date.
func (s *BoundsHelperSystem) Update(transforms *Transform3DList, meshes *ComponentList[Mesh], geometries *Pool[Geometry], helpers *ComponentList[MeshBoundsHelper]) error {
	for _, e := range s.entities {
		t, err := transforms.Get(e)
		if err != nil {
			return eris.Wrap(err, "bounds helper")
		}
		mesh, err := meshes.Get(e)
		if err != nil {
			return eris.Wrap(err, "bounds helper")
		}
		geo, ok := geometries.Get(mesh.Geometry)
		if !ok {
			return eris.Wrapf(ErrInvalidHandle, "geometry of mesh entity %s", e)
		}
		world := geo.BoundingBox().Transform(t.GlobalMatrix())

		link, err := helpers.Get(e)
		if err != nil {
			return eris.Wrap(err, "bounds helper")
		}
		helperMesh, err := meshes.Get(link.BoundsEntity)
		if err != nil {
			return eris.Wrapf(err, "helper of mesh entity %s", e)
		}
		helperGeo, ok := geometries.Get(helperMesh.Geometry)
		if !ok {
			return eris.Wrapf(ErrInvalidHandle, "helper geometry of mesh entity %s", e)
		}
		helperGeo.SetBoxHelper(world)
	}
	return nil
}
