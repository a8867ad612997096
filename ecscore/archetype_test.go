package ecscore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/internal/bitset"
)

func bitsetOf(ids ...ecscore.ComponentID) *bitset.Set {
	idx := make([]int, len(ids))
	for i, id := range ids {
		idx[i] = int(id)
	}
	return bitset.FromBits(idx...)
}

type position struct{ X, Y int32 }
type velocity struct{ VX, VY int32 }

func newTestStore() (*ecscore.Store, ecscore.ComponentID, ecscore.ComponentID) {
	reg := ecscore.NewRegistry()
	pos := ecscore.Register[position](reg, "Position")
	vel := ecscore.Register[velocity](reg, "Velocity")
	return ecscore.NewStore(reg), pos, vel
}

func TestCreateEntityStartsInRootArchetype(t *testing.T) {
	s, _, _ := newTestStore()
	e := s.CreateEntity()
	arch, row, ok := s.Entities.Location(e)
	require.True(t, ok)
	assert.Equal(t, s.Archetypes.Root(), arch)
	assert.Equal(t, 0, row)
}

func TestAddComponentMigratesAndStoresValue(t *testing.T) {
	s, pos, _ := newTestStore()
	e := s.CreateEntity()

	added, err := s.AddComponent(e, pos, position{X: 1, Y: 2})
	require.NoError(t, err)
	assert.True(t, added)

	v, ok := ecscore.Get[position](s, e, pos)
	require.True(t, ok)
	assert.Equal(t, position{X: 1, Y: 2}, v)

	arch, _, _ := s.Entities.Location(e)
	assert.NotEqual(t, s.Archetypes.Root(), arch)
	assert.True(t, arch.Has(pos))
}

func TestAddComponentTwiceOverwritesWithoutMigration(t *testing.T) {
	s, pos, _ := newTestStore()
	e := s.CreateEntity()
	_, _ = s.AddComponent(e, pos, position{X: 1, Y: 1})
	archBefore, _, _ := s.Entities.Location(e)

	added, err := s.AddComponent(e, pos, position{X: 9, Y: 9})
	require.NoError(t, err)
	assert.False(t, added)

	archAfter, _, _ := s.Entities.Location(e)
	assert.Same(t, archBefore, archAfter)

	v, _ := ecscore.Get[position](s, e, pos)
	assert.Equal(t, position{X: 9, Y: 9}, v)
}

func TestRemoveComponentNoOpWhenAbsent(t *testing.T) {
	s, pos, vel := newTestStore()
	e := s.CreateEntity()
	_, _ = s.AddComponent(e, pos, position{})

	old, removed := s.RemoveComponent(e, vel)
	assert.False(t, removed)
	assert.Nil(t, old)
}

func TestAddComponentOnDeadEntityFails(t *testing.T) {
	s, pos, _ := newTestStore()
	e := s.CreateEntity()
	s.DestroyEntity(e)

	_, err := s.AddComponent(e, pos, position{})
	assert.ErrorIs(t, err, ecscore.ErrEntityNotFound)
}

func TestSwapRemoveFixesUpMovedEntityLocation(t *testing.T) {
	s, pos, _ := newTestStore()
	a := s.CreateEntity()
	b := s.CreateEntity()
	c := s.CreateEntity()
	for _, e := range []ecscore.Entity{a, b, c} {
		_, _ = s.AddComponent(e, pos, position{})
	}

	s.DestroyEntity(a) // a was row 0; c (last row) should swap into row 0

	_, rowB, _ := s.Entities.Location(b)
	_, rowC, _ := s.Entities.Location(c)
	assert.NotEqual(t, rowB, rowC)

	vb, ok := ecscore.Get[position](s, b, pos)
	assert.True(t, ok)
	_ = vb
	vc, ok := ecscore.Get[position](s, c, pos)
	assert.True(t, ok)
	_ = vc
}

func TestDestroyEntityFreesIDAndBumpsGeneration(t *testing.T) {
	s, _, _ := newTestStore()
	e := s.CreateEntity()
	s.DestroyEntity(e)
	assert.False(t, s.Entities.IsAlive(e))

	reused := s.CreateEntity()
	assert.Equal(t, e.ID, reused.ID)
	assert.NotEqual(t, e.Generation, reused.Generation)
}

func TestMatchRequiredAndExcluded(t *testing.T) {
	s, pos, vel := newTestStore()
	e1 := s.CreateEntity()
	_, _ = s.AddComponent(e1, pos, position{})

	e2 := s.CreateEntity()
	_, _ = s.AddComponent(e2, pos, position{})
	_, _ = s.AddComponent(e2, vel, velocity{})

	reqPos := bitsetOf(pos)
	exclVel := bitsetOf(vel)

	matches := s.Archetypes.Match(reqPos, exclVel)
	total := 0
	for _, a := range matches {
		total += a.Len()
	}
	assert.Equal(t, 1, total) // only e1's archetype matches pos&!vel
}

func TestReadWriteRowRoundTrip(t *testing.T) {
	s, pos, _ := newTestStore()
	e := s.CreateEntity()
	_, _ = s.AddComponent(e, pos, position{X: 3, Y: 4})

	arch, row, _ := s.Entities.Location(e)
	props, err := s.ReadRow(arch, row, pos)
	require.NoError(t, err)
	assert.Equal(t, int32(3), props["X"])

	props["X"] = float64(7) // as if decoded from YAML/JSON
	require.NoError(t, s.WriteRow(arch, row, pos, props))

	v, _ := ecscore.Get[position](s, e, pos)
	assert.Equal(t, int32(7), v.X)
}
