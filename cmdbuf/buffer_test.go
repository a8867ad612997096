package cmdbuf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/cmdbuf"
	"github.com/vornastek/ecsphys/ecscore"
)

type health struct{ HP int32 }

func newStore() (*ecscore.Store, ecscore.ComponentID) {
	reg := ecscore.NewRegistry()
	hp := ecscore.Register[health](reg, "Health")
	return ecscore.NewStore(reg), hp
}

func TestFlushAppliesInOrderAndEmitsAdded(t *testing.T) {
	store, hp := newStore()
	e := store.CreateEntity()

	buf := cmdbuf.New()
	buf.AddComponent(e, hp, health{HP: 10})

	added := cmdbuf.NewChannel[cmdbuf.AddedEvent]()
	removed := cmdbuf.NewChannel[cmdbuf.RemovedEvent]()
	require.NoError(t, buf.Flush(store, added, removed))

	v, ok := ecscore.Get[health](store, e, hp)
	require.True(t, ok)
	assert.Equal(t, int32(10), v.HP)

	events := added.TakeAll()
	require.Len(t, events, 1)
	assert.Equal(t, hp, events[0].Component)
	assert.Equal(t, 0, buf.Len())
}

func TestPendingEntityChaining(t *testing.T) {
	store, hp := newStore()
	buf := cmdbuf.New()

	pending := buf.CreateEntity()
	buf.AddComponentPending(pending, hp, health{HP: 5})

	require.NoError(t, buf.Flush(store, nil, nil))
	// The only way to find the created entity post-flush is to scan; use
	// the archetype directly since this is a white-box-ish assertion.
	found := false
	for _, a := range store.Archetypes.All() {
		if !a.Has(hp) {
			continue
		}
		for row := 0; row < a.Len(); row++ {
			v, _ := ecscore.ColumnView[health](a, hp)
			if v[row].HP == 5 {
				found = true
			}
		}
	}
	assert.True(t, found)
}

func TestDestroyEmitsRemovedWithOldValue(t *testing.T) {
	store, hp := newStore()
	e := store.CreateEntity()
	_, _ = store.AddComponent(e, hp, health{HP: 42})

	buf := cmdbuf.New()
	buf.Destroy(e)

	removed := cmdbuf.NewChannel[cmdbuf.RemovedEvent]()
	require.NoError(t, buf.Flush(store, nil, removed))

	events := removed.TakeAll()
	require.Len(t, events, 1)
	assert.Equal(t, health{HP: 42}, events[0].OldValue)
	assert.False(t, store.Entities.IsAlive(e))
}

func TestRemoveAbsentComponentEmitsNoEvent(t *testing.T) {
	store, hp := newStore()
	e := store.CreateEntity()

	buf := cmdbuf.New()
	buf.RemoveComponent(e, hp)

	removed := cmdbuf.NewChannel[cmdbuf.RemovedEvent]()
	require.NoError(t, buf.Flush(store, nil, removed))
	assert.False(t, removed.HasEvents())
}

func TestChannelDrain(t *testing.T) {
	ch := cmdbuf.NewChannel[int]()
	var got []int
	ch.Drain(func(v int) { got = append(got, v) })
	assert.Empty(t, got)
}
