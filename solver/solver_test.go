package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/narrowphase"
	"github.com/vornastek/ecsphys/solver"
)

type fakeBodies struct {
	bodies map[ecscore.Entity]body2d.Body2D
}

func (f *fakeBodies) Body(e ecscore.Entity) (body2d.Body2D, bool) {
	b, ok := f.bodies[e]
	return b, ok
}

func (f *fakeBodies) SetBody(e ecscore.Entity, b body2d.Body2D) {
	f.bodies[e] = b
}

func TestIterateResolvesApproachingContact(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{
		a: body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(5), fx.Zero)),
		b: body2d.New(fx.FromInt(2), fx.Zero),
	}}

	contacts := []narrowphase.Contact1{{
		A: a, B: b,
		NX: fx.One, NY: fx.Zero,
		PX: fx.One, PY: fx.Zero,
		Penetration: fx.FromFloat64(0.01),
		MuD:         fx.FromFloat64(0.3),
	}}

	dt := fx.FromFloat64(1.0 / 60.0)
	require.NoError(t, solver.Iterate(contacts, bodies, dt, solver.DefaultConfig()))

	assert.True(t, contacts[0].Jn > 0, "approaching bodies should accumulate a positive normal impulse")
	bodyA := bodies.bodies[a]
	assert.True(t, bodyA.VX < fx.FromInt(5), "A should be slowed by the normal impulse")
}

func TestIterateRestingContactAppliesNoImpulse(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{
		a: body2d.New(fx.Zero, fx.Zero),
		b: body2d.New(fx.FromInt(2), fx.Zero),
	}}

	contacts := []narrowphase.Contact1{{
		A: a, B: b,
		NX: fx.One, NY: fx.Zero,
		PX: fx.One, PY: fx.Zero,
		Penetration: fx.Zero,
	}}

	dt := fx.FromFloat64(1.0 / 60.0)
	require.NoError(t, solver.Iterate(contacts, bodies, dt, solver.DefaultConfig()))

	assert.Equal(t, fx.Zero, contacts[0].Jn)
}

func TestWarmStartReappliesCachedImpulse(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{
		a: body2d.New(fx.Zero, fx.Zero),
		b: body2d.New(fx.FromInt(2), fx.Zero),
	}}

	contacts := []narrowphase.Contact1{{
		A: a, B: b,
		NX: fx.One, NY: fx.Zero,
		PX: fx.One, PY: fx.Zero,
		Jn: fx.FromInt(1),
	}}

	require.NoError(t, solver.WarmStart(contacts, bodies))

	bodyA := bodies.bodies[a]
	bodyB := bodies.bodies[b]
	assert.True(t, bodyA.VX < fx.Zero, "A should be pushed away from B along -normal")
	assert.True(t, bodyB.VX > fx.Zero, "B should be pushed away from A along +normal")
}

func TestIterateMissingBodyErrors(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{a: body2d.New(fx.Zero, fx.Zero)}}

	contacts := []narrowphase.Contact1{{A: a, B: b, NX: fx.One, NY: fx.Zero}}
	err := solver.Iterate(contacts, bodies, fx.FromFloat64(1.0/60.0), solver.DefaultConfig())
	assert.ErrorIs(t, err, solver.ErrMissingBody)
}

func TestDistanceJointPullsBodiesToRestLength(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{
		a: body2d.Static(fx.Zero, fx.Zero),
		b: body2d.New(fx.FromInt(3), fx.Zero),
	}}

	joints := []solver.DistanceJoint{{
		JointBase: solver.JointBase{
			A: a, B: b,
			Baumgarte: fx.FromFloat64(0.2),
		},
		RestLength: fx.FromInt(1),
	}}

	dt := fx.FromFloat64(1.0 / 60.0)
	rows, err := solver.BuildDistanceRows(joints, bodies, dt)
	require.NoError(t, err)
	require.NoError(t, solver.SolveDistanceRows(joints, rows, bodies))

	bodyB := bodies.bodies[b]
	assert.True(t, bodyB.VX < fx.Zero, "B should be pulled back toward A past rest length")
}

func TestDistanceJointBreaksAboveThreshold(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{
		a: body2d.Static(fx.Zero, fx.Zero),
		b: body2d.New(fx.FromInt(50), fx.Zero),
	}}

	joints := []solver.DistanceJoint{{
		JointBase: solver.JointBase{
			A: a, B: b,
			Baumgarte:    fx.FromFloat64(0.2),
			BreakImpulse: fx.FromFloat64(0.001),
		},
		RestLength: fx.FromInt(1),
	}}

	dt := fx.FromFloat64(1.0 / 60.0)
	rows, err := solver.BuildDistanceRows(joints, bodies, dt)
	require.NoError(t, err)
	require.NoError(t, solver.SolveDistanceRows(joints, rows, bodies))

	assert.True(t, joints[0].Broken, "a large correction impulse should exceed the break threshold")
}

func TestRevoluteJointConstrainsSharedAnchor(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{
		a: body2d.Static(fx.Zero, fx.Zero),
		b: body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(3), fx.FromInt(0))),
	}}

	joints := []solver.RevoluteJoint{{
		JointBase: solver.JointBase{A: a, B: b, Baumgarte: fx.FromFloat64(0.2)},
	}}

	dt := fx.FromFloat64(1.0 / 60.0)
	rows, err := solver.BuildRevoluteRows(joints, bodies, dt)
	require.NoError(t, err)
	require.NoError(t, solver.SolveRevoluteRows(joints, rows, bodies))

	bodyB := bodies.bodies[b]
	assert.True(t, bodyB.VX < fx.FromInt(3), "B's velocity at the shared pin should be pulled toward static A")
}

func TestRevoluteMotorDrivesRelativeAngularVelocity(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{
		a: body2d.Static(fx.Zero, fx.Zero),
		b: body2d.New(fx.Zero, fx.Zero),
	}}

	joints := []solver.RevoluteJoint{{
		JointBase: solver.JointBase{A: a, B: b, Baumgarte: fx.FromFloat64(0.2)},
		Motor:     solver.Motor{Enabled: true, Speed: fx.FromInt(1), MaxImpulse: fx.FromInt(100)},
	}}

	dt := fx.FromFloat64(1.0 / 60.0)
	rows, err := solver.BuildRevoluteRows(joints, bodies, dt)
	require.NoError(t, err)
	require.NoError(t, solver.SolveRevoluteRows(joints, rows, bodies))

	bodyB := bodies.bodies[b]
	assert.True(t, bodyB.W > fx.Zero, "motor should spin up B's angular velocity toward its target speed")
}

func TestPrismaticJointConstrainsPerpendicularOffset(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{
		a: body2d.Static(fx.Zero, fx.Zero),
		b: body2d.New(fx.FromInt(1), fx.FromFloat64(0.5), body2d.WithVelocity(fx.Zero, fx.FromInt(2))),
	}}

	joints := []solver.PrismaticJoint{{
		JointBase: solver.JointBase{A: a, B: b, Baumgarte: fx.FromFloat64(0.2)},
		AxisX:     fx.One, AxisY: fx.Zero,
	}}

	dt := fx.FromFloat64(1.0 / 60.0)
	rows, err := solver.BuildPrismaticRows(joints, bodies, dt)
	require.NoError(t, err)
	require.NoError(t, solver.SolvePrismaticRows(joints, rows, bodies))

	bodyB := bodies.bodies[b]
	assert.True(t, bodyB.VY < fx.FromInt(2), "perpendicular drift off the slide axis should be resisted")
}
