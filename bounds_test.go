package scenery_test

import (
	"testing"

	"github.com/edwinsyarief/scenery"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox3(t *testing.T) {
	b := scenery.EmptyBox3()
	assert.True(t, b.IsEmpty())
	b = b.Expand(mgl32.Vec3{1, 2, 3}).Expand(mgl32.Vec3{-1, 0, 5})
	assert.False(t, b.IsEmpty())
	assert.Equal(t, mgl32.Vec3{-1, 0, 3}, b.Min)
	assert.Equal(t, mgl32.Vec3{1, 2, 5}, b.Max)

	v := scenery.DefaultBox3.Vertices()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, v[0])
	assert.Equal(t, mgl32.Vec3{-1, -1, -1}, v[6])

	scaled := scenery.DefaultBox3.Transform(mgl32.Scale3D(2, 3, 4))
	assert.Equal(t, mgl32.Vec3{-2, -3, -4}, scaled.Min)
	assert.Equal(t, mgl32.Vec3{2, 3, 4}, scaled.Max)
}

func TestGeometry(t *testing.T) {
	box := scenery.NewBoxGeometry()
	assert.Len(t, box.Positions, 8)
	assert.Len(t, box.Indices, 36)
	assert.Equal(t, scenery.DefaultBox3, box.BoundingBox())

	plane := scenery.NewPlaneGeometry()
	assert.Len(t, plane.Indices, 6)
	assert.Equal(t, float32(0), plane.BoundingBox().Max.Y())

	helper := scenery.NewBoxHelperGeometry(scenery.DefaultBox3)
	assert.Len(t, helper.Indices, 24)
}

func TestBoundsHelperSystem(t *testing.T) {
	em := scenery.NewEntityManager(8)
	transforms := scenery.NewTransform3DList(em)
	meshes := scenery.NewComponentList[scenery.Mesh](em)
	helpers := scenery.NewComponentList[scenery.MeshBoundsHelper](em)
	geometries := scenery.NewPool[scenery.Geometry](2)
	var sys scenery.BoundsHelperSystem

	body, outline := em.MustCreate(), em.MustCreate()
	tr := scenery.NewTransform3D()
	tr.Position = mgl32.Vec3{5, 0, 0}
	tr.Scale = mgl32.Vec3{2, 2, 2}
	require.NoError(t, transforms.Add(body, tr))
	_, err := meshes.Add(body, scenery.Mesh{Geometry: geometries.Add(scenery.NewBoxGeometry()), Material: scenery.MaterialLambert})
	require.NoError(t, err)
	outlineGeo := geometries.Add(scenery.NewBoxHelperGeometry(scenery.DefaultBox3))
	_, err = meshes.Add(outline, scenery.Mesh{Geometry: outlineGeo, Material: scenery.MaterialLine})
	require.NoError(t, err)
	_, err = helpers.Add(body, scenery.MeshBoundsHelper{BoundsEntity: outline})
	require.NoError(t, err)

	sys.Track(body)
	sys.Track(body)
	assert.Equal(t, []scenery.Entity{body}, sys.Tracked())
	require.NoError(t, sys.Update(transforms, meshes, geometries, helpers))

	g := geometries.MustGet(outlineGeo)
	assert.Equal(t, mgl32.Vec3{3, -2, -2}, g.BoundingBox().Min)
	assert.Equal(t, mgl32.Vec3{7, 2, 2}, g.BoundingBox().Max)
	assert.Equal(t, mgl32.Vec3{7, 2, 2}, g.Positions[0])

	sys.Untrack(body)
	assert.Empty(t, sys.Tracked())
}

func TestBoundsHelperSystemMissingHelper(t *testing.T) {
	em := scenery.NewEntityManager(8)
	transforms := scenery.NewTransform3DList(em)
	meshes := scenery.NewComponentList[scenery.Mesh](em)
	helpers := scenery.NewComponentList[scenery.MeshBoundsHelper](em)
	geometries := scenery.NewPool[scenery.Geometry](1)
	var sys scenery.BoundsHelperSystem

	e := em.MustCreate()
	require.NoError(t, transforms.Add(e, scenery.NewTransform3D()))
	_, err := meshes.Add(e, scenery.Mesh{Geometry: geometries.Add(scenery.NewBoxGeometry())})
	require.NoError(t, err)
	sys.Track(e)

	err = sys.Update(transforms, meshes, geometries, helpers)
	require.ErrorIs(t, err, scenery.ErrComponentNotFound)
}
