package broadphase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/broadphase"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

func box(minX, minY, maxX, maxY int32) body2d.AABB2D {
	return body2d.AABB2D{
		MinX: fx.FromInt(minX), MinY: fx.FromInt(minY),
		MaxX: fx.FromInt(maxX), MaxY: fx.FromInt(maxY),
	}
}

func TestPairsFindsOverlapOnly(t *testing.T) {
	sap := broadphase.New()
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	c := ecscore.Entity{ID: 3}

	sap.Set(a, box(0, 0, 2, 2))
	sap.Set(b, box(1, 1, 3, 3))  // overlaps a
	sap.Set(c, box(10, 10, 12, 12)) // far away, no overlap

	pairs := sap.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, a, pairs[0].A)
	assert.Equal(t, b, pairs[0].B)
}

func TestPairsOrderedByID(t *testing.T) {
	sap := broadphase.New()
	e2 := ecscore.Entity{ID: 2}
	e1 := ecscore.Entity{ID: 1}

	sap.Set(e2, box(0, 0, 5, 5))
	sap.Set(e1, box(0, 0, 5, 5))

	pairs := sap.Pairs()
	require.Len(t, pairs, 1)
	assert.Equal(t, e1, pairs[0].A)
	assert.Equal(t, e2, pairs[0].B)
}

func TestRemoveStopsTrackingEntity(t *testing.T) {
	sap := broadphase.New()
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	sap.Set(a, box(0, 0, 2, 2))
	sap.Set(b, box(0, 0, 2, 2))

	require.NoError(t, sap.Remove(b))
	assert.Empty(t, sap.Pairs())

	err := sap.Remove(b)
	assert.ErrorIs(t, err, broadphase.ErrUnknownEntity)
}

func TestUpdatedPositionDropsStalePair(t *testing.T) {
	sap := broadphase.New()
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	sap.Set(a, box(0, 0, 2, 2))
	sap.Set(b, box(1, 1, 3, 3))
	require.Len(t, sap.Pairs(), 1)

	sap.Set(b, box(20, 20, 22, 22))
	assert.Empty(t, sap.Pairs())
}
