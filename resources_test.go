package scenery_test

import (
	"testing"

	"github.com/edwinsyarief/scenery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type FrameTime struct{ Delta float32 }
type ActiveCamera struct{ Entity scenery.Entity }

func TestResources(t *testing.T) {
	t.Run("set and get", func(t *testing.T) {
		var r scenery.Resources
		ft := &FrameTime{Delta: 0.016}
		scenery.SetResource(&r, ft)

		got, ok := scenery.GetResource[FrameTime](&r)
		require.True(t, ok)
		assert.Same(t, ft, got)
		assert.True(t, scenery.HasResource[FrameTime](&r))
		assert.False(t, scenery.HasResource[ActiveCamera](&r))
	})

	t.Run("set replaces", func(t *testing.T) {
		var r scenery.Resources
		scenery.SetResource(&r, &FrameTime{Delta: 1})
		scenery.SetResource(&r, &FrameTime{Delta: 2})
		assert.Equal(t, 1, r.Len())
		got, _ := scenery.GetResource[FrameTime](&r)
		assert.Equal(t, float32(2), got.Delta)
	})

	t.Run("remove", func(t *testing.T) {
		var r scenery.Resources
		scenery.SetResource(&r, &FrameTime{})
		scenery.SetResource(&r, &ActiveCamera{})
		assert.True(t, scenery.RemoveResource[FrameTime](&r))
		assert.False(t, scenery.RemoveResource[FrameTime](&r))
		_, ok := scenery.GetResource[FrameTime](&r)
		assert.False(t, ok)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("clear", func(t *testing.T) {
		var r scenery.Resources
		scenery.SetResource(&r, &FrameTime{})
		r.Clear()
		assert.Equal(t, 0, r.Len())
		assert.False(t, scenery.HasResource[FrameTime](&r))
		scenery.SetResource(&r, &FrameTime{Delta: 3})
		got, ok := scenery.GetResource[FrameTime](&r)
		require.True(t, ok)
		assert.Equal(t, float32(3), got.Delta)
	})

	t.Run("empty", func(t *testing.T) {
		var r scenery.Resources
		_, ok := scenery.GetResource[FrameTime](&r)
		assert.False(t, ok)
		assert.False(t, scenery.RemoveResource[FrameTime](&r))
		r.Clear()
	})

	t.Run("nil panics", func(t *testing.T) {
		var r scenery.Resources
		assert.Panics(t, func() { scenery.SetResource[FrameTime](&r, nil) })
	})
}
