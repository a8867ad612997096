package body2d_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/fx"
)

func TestStaticBodyIsImmovable(t *testing.T) {
	b := body2d.Static(fx.Zero, fx.Zero)
	assert.True(t, b.Immovable())
	assert.True(t, b.Awake)
}

func TestVelocityAtIncludesAngularTerm(t *testing.T) {
	b := body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.One, fx.Zero), body2d.WithAngularVelocity(fx.One))
	vx, vy := b.VelocityAt(fx.Zero, fx.One)
	// w×r for r=(0,1), w=1 is (-1*1, 1*0) = (-1, 0); plus base velocity (1,0) => (0,0)
	assert.Equal(t, fx.Zero, vx)
	assert.Equal(t, fx.Zero, vy)
}

func TestNewConvexHullRejectsDegenerateAndOversized(t *testing.T) {
	_, err := body2d.NewConvexHull(fx.Zero, [2]fx.FX{0, 0}, [2]fx.FX{1, 0})
	assert.ErrorIs(t, err, body2d.ErrDegenerateHull)

	many := make([][2]fx.FX, body2d.MaxHullVertices+1)
	_, err = body2d.NewConvexHull(fx.Zero, many...)
	assert.ErrorIs(t, err, body2d.ErrTooManyVertices)
}

func TestAABBFromCircleAndOverlap(t *testing.T) {
	c := body2d.CircleWorld2D{CX: fx.FromInt(5), CY: fx.FromInt(5), Radius: fx.FromInt(2)}
	box := body2d.FromCircle(c)
	assert.Equal(t, fx.FromInt(3), box.MinX)
	assert.Equal(t, fx.FromInt(7), box.MaxX)

	other := box.Expand(fx.FromInt(10))
	assert.True(t, box.Overlaps(other))
}

func TestMaterialTableDefaultsAndOverride(t *testing.T) {
	table := body2d.NewMaterialTable()
	rules := table.Resolve(1, 2)
	assert.Equal(t, body2d.DefaultMixRules, rules)

	custom := body2d.MixRules{Friction: body2d.MixMin, Restitution: body2d.MixMin, BounceThreshold: body2d.MixMin}
	table.Set(1, 2, custom)

	assert.Equal(t, custom, table.Resolve(1, 2))
	assert.Equal(t, custom, table.Resolve(2, 1), "lookup must be symmetric")
}

func TestMixRuleGeometricMean(t *testing.T) {
	a := fx.FromFloat64(0.4)
	b := fx.FromFloat64(0.9)
	got := body2d.MixGeometricMean.Mix(a, b)
	want := fx.Sqrt(fx.Mul(a, b))
	require.Equal(t, want, got)
}
