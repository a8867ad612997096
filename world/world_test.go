package world_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/world"
)

type tag struct{ Value int32 }

func TestWorldAddEmitsAdded(t *testing.T) {
	reg := ecscore.NewRegistry()
	tagID := ecscore.Register[tag](reg, "Tag")
	w := world.New(reg)

	e := w.CreateEntity()
	require.NoError(t, w.AddComponent(e, tagID, tag{Value: 1}))

	assert.True(t, w.Added.HasEvents())
	events := w.Added.TakeAll()
	require.Len(t, events, 1)
	assert.Equal(t, e, events[0].Entity)
}

func TestWorldFrameMonotonic(t *testing.T) {
	reg := ecscore.NewRegistry()
	w := world.New(reg)
	assert.Equal(t, uint64(0), w.Frame())
	w.BeginFrame()
	w.BeginFrame()
	assert.Equal(t, uint64(2), w.Frame())
}

type myResource struct{ N int }

func TestResourceLifecycle(t *testing.T) {
	reg := ecscore.NewRegistry()
	w := world.New(reg)

	_, ok := world.GetResource[myResource](w)
	assert.False(t, ok)

	world.SetResource(w, myResource{N: 5})
	r, ok := world.GetResource[myResource](w)
	require.True(t, ok)
	assert.Equal(t, 5, r.N)

	world.SetResource(w, myResource{N: 9})
	r, _ = world.GetResource[myResource](w)
	assert.Equal(t, 9, r.N)

	world.RemoveResource[myResource](w)
	assert.False(t, world.HasResource[myResource](w))
}

func TestCommandBufferFlushThroughWorld(t *testing.T) {
	reg := ecscore.NewRegistry()
	tagID := ecscore.Register[tag](reg, "Tag")
	w := world.New(reg)
	e := w.CreateEntity()

	buf := w.NewCommandBuffer()
	buf.AddComponent(e, tagID, tag{Value: 7})
	require.NoError(t, w.Flush(buf))

	v, ok := world.Get[tag](w, e, tagID)
	require.True(t, ok)
	assert.Equal(t, int32(7), v.Value)
}
