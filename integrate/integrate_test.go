package integrate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/integrate"
)

type fakeBodies struct {
	bodies map[ecscore.Entity]body2d.Body2D
	sleep  map[ecscore.Entity]body2d.SleepState
}

func newFakeBodies() *fakeBodies {
	return &fakeBodies{bodies: map[ecscore.Entity]body2d.Body2D{}, sleep: map[ecscore.Entity]body2d.SleepState{}}
}

func (f *fakeBodies) Body(e ecscore.Entity) (body2d.Body2D, bool) {
	b, ok := f.bodies[e]
	return b, ok
}
func (f *fakeBodies) SetBody(e ecscore.Entity, b body2d.Body2D) { f.bodies[e] = b }
func (f *fakeBodies) SleepState(e ecscore.Entity) (body2d.SleepState, bool) {
	s, ok := f.sleep[e]
	return s, ok
}
func (f *fakeBodies) SetSleepState(e ecscore.Entity, s body2d.SleepState) { f.sleep[e] = s }

func TestIntegrateAdvancesPositionAndAngle(t *testing.T) {
	e := ecscore.Entity{ID: 1}
	bodies := newFakeBodies()
	bodies.bodies[e] = body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(10), fx.Zero), body2d.WithAngularVelocity(fx.FromFloat64(0.25)))

	dt := fx.FromFloat64(1.0 / 60.0)
	require.NoError(t, integrate.Integrate([]ecscore.Entity{e}, bodies, dt, fx.One))

	b := bodies.bodies[e]
	assert.True(t, b.PX > fx.Zero)
	assert.NotEqual(t, fx.Angle(0), b.Angle)
}

func TestIntegrateSkipsSleepingBody(t *testing.T) {
	e := ecscore.Entity{ID: 1}
	bodies := newFakeBodies()
	body := body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(10), fx.Zero))
	body.Awake = false
	bodies.bodies[e] = body

	dt := fx.FromFloat64(1.0 / 60.0)
	require.NoError(t, integrate.Integrate([]ecscore.Entity{e}, bodies, dt, fx.One))

	assert.Equal(t, fx.Zero, bodies.bodies[e].PX)
}

func TestIntegrateSkipsImmovableBody(t *testing.T) {
	e := ecscore.Entity{ID: 1}
	bodies := newFakeBodies()
	bodies.bodies[e] = body2d.Static(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(10), fx.Zero))

	dt := fx.FromFloat64(1.0 / 60.0)
	require.NoError(t, integrate.Integrate([]ecscore.Entity{e}, bodies, dt, fx.One))

	assert.Equal(t, fx.Zero, bodies.bodies[e].PX)
}

func TestTickPutsRestingBodyToSleepAfterTimeToSleep(t *testing.T) {
	e := ecscore.Entity{ID: 1}
	bodies := newFakeBodies()
	bodies.bodies[e] = body2d.New(fx.Zero, fx.Zero)
	bodies.sleep[e] = body2d.SleepState{}

	cfg := integrate.DefaultConfig()
	dt := fx.Add(cfg.TimeToSleep, fx.FromFloat64(0.01))
	require.NoError(t, integrate.Tick([]ecscore.Entity{e}, bodies, cfg, dt))

	assert.False(t, bodies.bodies[e].Awake)
}

func TestTickResetsTimerWhenMoving(t *testing.T) {
	e := ecscore.Entity{ID: 1}
	bodies := newFakeBodies()
	bodies.bodies[e] = body2d.New(fx.Zero, fx.Zero, body2d.WithVelocity(fx.FromInt(5), fx.Zero))
	bodies.sleep[e] = body2d.SleepState{BelowThresholdTime: fx.FromFloat64(0.4)}

	cfg := integrate.DefaultConfig()
	require.NoError(t, integrate.Tick([]ecscore.Entity{e}, bodies, cfg, fx.FromFloat64(1.0/60.0)))

	assert.True(t, bodies.bodies[e].Awake)
	assert.Equal(t, fx.Zero, bodies.sleep[e].BelowThresholdTime)
}

func TestWakeFromImpulseWakesSleepingBody(t *testing.T) {
	e := ecscore.Entity{ID: 1}
	bodies := newFakeBodies()
	body := body2d.New(fx.Zero, fx.Zero)
	body.Awake = false
	bodies.bodies[e] = body

	cfg := integrate.DefaultConfig()
	require.NoError(t, integrate.WakeFromImpulse(e, fx.FromInt(1), bodies, cfg))

	assert.True(t, bodies.bodies[e].Awake)
}

func TestResolveJointWakeSkipsWhenBothSleeping(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := newFakeBodies()
	bodyA := body2d.New(fx.Zero, fx.Zero)
	bodyA.Awake = false
	bodyB := body2d.New(fx.FromInt(1), fx.Zero)
	bodyB.Awake = false
	bodies.bodies[a] = bodyA
	bodies.bodies[b] = bodyB

	skip, err := integrate.ResolveJointWake(a, b, bodies)
	require.NoError(t, err)
	assert.True(t, skip)
}

func TestResolveJointWakeWakesSleeperWhenOtherAwake(t *testing.T) {
	a := ecscore.Entity{ID: 1}
	b := ecscore.Entity{ID: 2}
	bodies := newFakeBodies()
	bodyA := body2d.New(fx.Zero, fx.Zero)
	bodyA.Awake = false
	bodies.bodies[a] = bodyA
	bodies.bodies[b] = body2d.New(fx.FromInt(1), fx.Zero)

	skip, err := integrate.ResolveJointWake(a, b, bodies)
	require.NoError(t, err)
	assert.False(t, skip)
	assert.True(t, bodies.bodies[a].Awake)
}
