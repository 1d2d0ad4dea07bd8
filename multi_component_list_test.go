package scenery_test

import (
	"testing"

	"github.com/edwinsyarief/scenery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Instances struct {
	Count int
}

func TestMultiComponentListShared(t *testing.T) {
	em := scenery.NewEntityManager(16)
	list := scenery.NewMultiComponentList[Instances](em)
	idx := list.Add(Instances{Count: 1})

	a, b, c := em.MustCreate(), em.MustCreate(), em.MustCreate()
	for _, e := range []scenery.Entity{a, b, c} {
		require.NoError(t, list.Assign(e, idx))
	}
	assert.Equal(t, []scenery.Entity{a, b, c}, list.EntitiesOf(idx))

	shared, err := list.GetMut(a)
	require.NoError(t, err)
	shared.Count = 3

	got, err := list.Get(c)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 1, em.ComponentCount(b))

	require.ErrorIs(t, list.Assign(a, idx), scenery.ErrDuplicateComponent)
	require.ErrorIs(t, list.Assign(em.MustCreate(), 5), scenery.ErrIndexOutOfRange)
}

func TestMultiComponentListUnassign(t *testing.T) {
	em := scenery.NewEntityManager(16)
	list := scenery.NewMultiComponentList[Instances](em)
	idx := list.Add(Instances{})
	a, b, c := em.MustCreate(), em.MustCreate(), em.MustCreate()
	for _, e := range []scenery.Entity{a, b, c} {
		require.NoError(t, list.Assign(e, idx))
	}

	require.NoError(t, list.Unassign(a))
	assert.Equal(t, []scenery.Entity{c, b}, list.EntitiesOf(idx))
	_, ok := list.TryGet(a)
	assert.False(t, ok)
	assert.Equal(t, 0, em.ComponentCount(a))

	// c moved into a's position and must still unassign cleanly
	require.NoError(t, list.Unassign(c))
	assert.Equal(t, []scenery.Entity{b}, list.EntitiesOf(idx))
	i, ok := list.IndexOf(b)
	require.True(t, ok)
	assert.Equal(t, idx, i)

	_, err := list.Get(a)
	require.ErrorIs(t, err, scenery.ErrComponentNotFound)
}

func TestMultiComponentListRemove(t *testing.T) {
	em := scenery.NewEntityManager(16)
	list := scenery.NewMultiComponentList[Instances](em)
	first := list.Add(Instances{Count: 1})
	second := list.Add(Instances{Count: 2})
	a, b := em.MustCreate(), em.MustCreate()
	require.NoError(t, list.Assign(a, first))
	require.NoError(t, list.Assign(b, second))

	require.NoError(t, list.Remove(first))
	assert.Equal(t, 1, list.Len())
	assert.Equal(t, 0, em.ComponentCount(a))
	_, ok := list.TryGet(a)
	assert.False(t, ok)

	// the last component now lives at the removed index
	i, ok := list.IndexOf(b)
	require.True(t, ok)
	assert.Equal(t, first, i)
	got, err := list.Get(b)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Count)

	shared, err := list.Shared(first)
	require.NoError(t, err)
	assert.Equal(t, 2, shared.Count)
	require.ErrorIs(t, list.Remove(4), scenery.ErrIndexOutOfRange)
}

func TestMultiComponentListIteration(t *testing.T) {
	em := scenery.NewEntityManager(16)
	list := scenery.NewMultiComponentList[Instances](em)
	idx := list.Add(Instances{})
	list.Add(Instances{})
	a := em.MustCreate()
	require.NoError(t, list.Assign(a, idx))

	total := 0
	for entities, c := range list.All() {
		c.Count = len(entities)
		total += len(entities)
		require.ErrorIs(t, list.Unassign(a), scenery.ErrMutationDuringIteration)
	}
	assert.Equal(t, 1, total)
	got, _ := list.Shared(idx)
	assert.Equal(t, 1, got.Count)
}
