package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/pipeline"
	"github.com/vornastek/ecsphys/scheduler"
	"github.com/vornastek/ecsphys/solver"
	"github.com/vornastek/ecsphys/world"
)

func newTestWorld(t *testing.T) (*world.World, pipeline.Components, *scheduler.Scheduler) {
	t.Helper()
	reg := ecscore.NewRegistry()
	ids := pipeline.RegisterComponents(reg)
	w := world.New(reg, world.WithFixedTimestep(fx.FromFloat64(1.0/60.0)))
	sched := scheduler.New(w)

	p := pipeline.New(w, ids, pipeline.DefaultConfig())
	require.NoError(t, p.Install(sched))
	require.NoError(t, sched.Build())
	return w, ids, sched
}

func newFallingCircle(t *testing.T, w *world.World, ids pipeline.Components, px, py, vy fx.FX) ecscore.Entity {
	t.Helper()
	e := w.CreateEntity()
	body := body2d.New(px, py, body2d.WithVelocity(fx.Zero, vy), body2d.WithMass(fx.One))
	require.NoError(t, w.AddComponent(e, ids.Body2D, body))
	require.NoError(t, w.AddComponent(e, ids.Shape2D, body2d.NewCircle(fx.Zero, fx.Zero, fx.FromFloat64(0.5), fx.Zero)))
	return e
}

func TestPipelineSingleTickIntegratesAFreeBody(t *testing.T) {
	w, ids, sched := newTestWorld(t)
	e := newFallingCircle(t, w, ids, fx.Zero, fx.FromInt(10), fx.FromInt(-1))

	dt := fx.FromFloat64(1.0 / 60.0)
	require.NoError(t, sched.Tick(dt))

	got, ok := world.Get[body2d.Body2D](w, e, ids.Body2D)
	require.True(t, ok)
	assert.Equal(t, fx.Add(fx.FromInt(10), fx.Mul(fx.FromInt(-1), dt)), got.PY)
}

// TestPipelineRestingContactStaysAboveGround reproduces spec.md §8's
// resting-contact scenario: a circle resting exactly on a static
// ground box should not sink through it over several ticks.
func TestPipelineRestingContactStaysAboveGround(t *testing.T) {
	w, ids, sched := newTestWorld(t)

	ground := w.CreateEntity()
	groundBody := body2d.Static(fx.Zero, fx.Zero)
	require.NoError(t, w.AddComponent(ground, ids.Body2D, groundBody))
	hull, err := body2d.NewConvexHull(fx.Zero,
		[2]fx.FX{fx.FromInt(-10), fx.FromInt(-1)},
		[2]fx.FX{fx.FromInt(10), fx.FromInt(-1)},
		[2]fx.FX{fx.FromInt(10), fx.Zero},
		[2]fx.FX{fx.FromInt(-10), fx.Zero},
	)
	require.NoError(t, err)
	require.NoError(t, w.AddComponent(ground, ids.Shape2D, hull))

	ball := w.CreateEntity()
	ballBody := body2d.New(fx.Zero, fx.FromFloat64(0.5), body2d.WithMass(fx.One))
	require.NoError(t, w.AddComponent(ball, ids.Body2D, ballBody))
	require.NoError(t, w.AddComponent(ball, ids.Shape2D, body2d.NewCircle(fx.Zero, fx.Zero, fx.FromFloat64(0.5), fx.Zero)))

	dt := fx.FromFloat64(1.0 / 60.0)
	for i := 0; i < 10; i++ {
		require.NoError(t, sched.Tick(dt))
	}

	got, ok := world.Get[body2d.Body2D](w, ball, ids.Body2D)
	require.True(t, ok)
	assert.GreaterOrEqual(t, got.PY, fx.FromFloat64(0.4))
}

// TestPipelineDistanceJointConverges reproduces spec.md §8's distance
// joint convergence scenario: A(-1,0), B(1,0), rest length 2, β=0.2 held
// steady by five ticks at a fixed 1/60s step should leave the two bodies
// within 0.01 of their rest distance, having started exactly at rest.
func TestPipelineDistanceJointConverges(t *testing.T) {
	w, ids, sched := newTestWorld(t)

	a := w.CreateEntity()
	require.NoError(t, w.AddComponent(a, ids.Body2D, body2d.New(fx.FromInt(-1), fx.Zero, body2d.WithMass(fx.One))))
	b := w.CreateEntity()
	require.NoError(t, w.AddComponent(b, ids.Body2D, body2d.New(fx.FromInt(1), fx.Zero, body2d.WithMass(fx.One))))

	joint := w.CreateEntity()
	dj := solver.DistanceJoint{
		JointBase: solver.JointBase{
			A: a, B: b,
			Baumgarte: fx.FromFloat64(0.2),
		},
		RestLength: fx.FromInt(2),
	}
	require.NoError(t, w.AddComponent(joint, ids.DistanceJoint, dj))

	dt := fx.FromFloat64(1.0 / 60.0)
	for i := 0; i < 5; i++ {
		require.NoError(t, sched.Tick(dt))
	}

	ga, _ := world.Get[body2d.Body2D](w, a, ids.Body2D)
	gb, _ := world.Get[body2d.Body2D](w, b, ids.Body2D)
	dx := fx.Sub(gb.PX, ga.PX)
	dy := fx.Sub(gb.PY, ga.PY)
	dist := fx.Sqrt(fx.Add(fx.Mul(dx, dx), fx.Mul(dy, dy)))
	diff := fx.Abs(fx.Sub(dist, fx.FromInt(2)))
	assert.LessOrEqual(t, diff, fx.FromFloat64(0.01))
}

func TestPipelineFastBodyCCDStopsAtSurface(t *testing.T) {
	w, ids, sched := newTestWorld(t)

	wall := w.CreateEntity()
	require.NoError(t, w.AddComponent(wall, ids.Body2D, body2d.Static(fx.FromInt(10), fx.Zero)))
	wallHull, err := body2d.NewConvexHull(fx.Zero,
		[2]fx.FX{fx.FromFloat64(-0.5), fx.FromInt(-5)},
		[2]fx.FX{fx.FromFloat64(0.5), fx.FromInt(-5)},
		[2]fx.FX{fx.FromFloat64(0.5), fx.FromInt(5)},
		[2]fx.FX{fx.FromFloat64(-0.5), fx.FromInt(5)},
	)
	require.NoError(t, err)
	require.NoError(t, w.AddComponent(wall, ids.Shape2D, wallHull))

	bullet := w.CreateEntity()
	bulletBody := body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(600), fx.Zero), body2d.WithMass(fx.One))
	require.NoError(t, w.AddComponent(bullet, ids.Body2D, bulletBody))
	require.NoError(t, w.AddComponent(bullet, ids.Shape2D, body2d.NewCircle(fx.Zero, fx.Zero, fx.FromFloat64(0.2), fx.Zero)))

	dt := fx.FromFloat64(1.0 / 60.0)
	require.NoError(t, sched.Tick(dt))

	got, ok := world.Get[body2d.Body2D](w, bullet, ids.Body2D)
	require.True(t, ok)
	assert.Less(t, got.PX, fx.FromInt(10))
}
