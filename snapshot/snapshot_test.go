package snapshot_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/scheduler"
	"github.com/vornastek/ecsphys/snapshot"
	"github.com/vornastek/ecsphys/world"
)

func TestCheckVersionMatchingPasses(t *testing.T) {
	warning, err := snapshot.CheckVersion(snapshot.CurrentVersion, snapshot.Strict)
	require.NoError(t, err)
	assert.Empty(t, warning)
}

func TestCheckVersionMajorMismatchAlwaysFails(t *testing.T) {
	got := snapshot.CurrentVersion
	got.Major++

	_, err := snapshot.CheckVersion(got, snapshot.Strict)
	assert.ErrorIs(t, err, snapshot.ErrVersionIncompatible)

	_, err = snapshot.CheckVersion(got, snapshot.Lax)
	assert.ErrorIs(t, err, snapshot.ErrVersionIncompatible)
}

func TestCheckVersionAheadFailsStrictWarnsLax(t *testing.T) {
	got := snapshot.CurrentVersion
	got.Minor++

	_, err := snapshot.CheckVersion(got, snapshot.Strict)
	assert.ErrorIs(t, err, snapshot.ErrVersionIncompatible)

	warning, err := snapshot.CheckVersion(got, snapshot.Lax)
	require.NoError(t, err)
	assert.NotEmpty(t, warning)
}

func TestCheckVersionNotAheadPasses(t *testing.T) {
	got := snapshot.Version{Major: snapshot.CurrentVersion.Major, Minor: 0, Patch: 0}

	warning, err := snapshot.CheckVersion(got, snapshot.Strict)
	require.NoError(t, err)
	assert.Empty(t, warning)
}

func sampleEnvelope() snapshot.Envelope {
	scene := snapshot.Scene{
		EntityIDCounter: 2,
		Paused:          true,
		Entities: []snapshot.EntitySnapshot{
			{
				ID:     0,
				Active: true,
				Components: []snapshot.ComponentSnapshot{
					{
						ComponentType: "Body2D",
						Enabled:       true,
						Properties: map[string]any{
							"PX": fx.FromInt(3),
						},
					},
				},
			},
		},
		Systems: []snapshot.SystemSnapshot{
			{Type: "integrate", Enabled: true, Priority: 0},
		},
	}
	return snapshot.NewEnvelope(scene, 1700000000)
}

func TestTextRoundTrip(t *testing.T) {
	env := sampleEnvelope()

	out, err := snapshot.EncodeText(env)
	require.NoError(t, err)

	result, err := snapshot.DecodeText(out, snapshot.Strict)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, env.Version, result.Envelope.Version)
	assert.Equal(t, env.SnapshotID, result.Envelope.SnapshotID)
	assert.Equal(t, env.Data.EntityIDCounter, result.Envelope.Data.EntityIDCounter)
	assert.Equal(t, env.Data.Entities[0].Components[0].ComponentType, result.Envelope.Data.Entities[0].Components[0].ComponentType)
}

func TestTextRoundTripIsByteIdenticalAcrossRuns(t *testing.T) {
	env := sampleEnvelope()

	first, err := snapshot.EncodeText(env)
	require.NoError(t, err)
	second, err := snapshot.EncodeText(env)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBinaryRoundTrip(t *testing.T) {
	env := sampleEnvelope()

	out, err := snapshot.EncodeBinary(env)
	require.NoError(t, err)

	result, err := snapshot.DecodeBinary(out, snapshot.Strict)
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)
	assert.Equal(t, env.SnapshotID, result.Envelope.SnapshotID)

	px := result.Envelope.Data.Entities[0].Components[0].Properties["PX"]
	assert.Equal(t, fx.FromInt(3), px)
}

func TestDecodeRejectsIncompatibleMajorVersion(t *testing.T) {
	env := sampleEnvelope()
	env.Version.Major++

	out, err := snapshot.EncodeBinary(env)
	require.NoError(t, err)

	_, err = snapshot.DecodeBinary(out, snapshot.Lax)
	assert.ErrorIs(t, err, snapshot.ErrVersionIncompatible)
}

func newPhysicsRegistry() (*ecscore.Registry, ecscore.ComponentID) {
	reg := ecscore.NewRegistry()
	id := ecscore.Register[body2d.Body2D](reg, "Body2D")
	return reg, id
}

func TestBuildSceneThenApplySceneReproducesWorld(t *testing.T) {
	reg, bodyID := newPhysicsRegistry()
	w := world.New(reg)
	sched := scheduler.New(w)
	require.NoError(t, sched.AddSystem(scheduler.SystemConfig{
		Name: "integrate", Stage: scheduler.StageUpdate,
		Fn: func(*scheduler.Context) error { return nil },
	}))
	require.NoError(t, sched.Build())

	e1 := w.Store.CreateEntity()
	b1 := body2d.New(fx.FromInt(1), fx.FromInt(2), body2d.WithVelocity(fx.FromInt(3), fx.Zero))
	require.NoError(t, w.AddComponent(e1, bodyID, b1))

	e2 := w.Store.CreateEntity()
	b2 := body2d.New(fx.FromInt(-5), fx.FromInt(9))
	require.NoError(t, w.AddComponent(e2, bodyID, b2))
	w.Store.Entities.SetEnabled(e2, false)

	scene, err := snapshot.BuildScene(w.Store, sched, true)
	require.NoError(t, err)
	assert.True(t, scene.Paused)
	assert.Len(t, scene.Entities, 2)
	assert.Len(t, scene.Systems, 1)
	assert.Equal(t, "integrate", scene.Systems[0].Type)

	reg2, bodyID2 := newPhysicsRegistry()
	w2 := world.New(reg2)
	require.NoError(t, snapshot.ApplyScene(w2.Store, scene))

	got1, ok := ecscore.Get[body2d.Body2D](w2.Store, ecscore.Entity{ID: e1.ID}, bodyID2)
	require.True(t, ok)
	assert.Equal(t, b1.PX, got1.PX)
	assert.Equal(t, b1.PY, got1.PY)
	assert.Equal(t, b1.VX, got1.VX)

	assert.False(t, w2.Store.Entities.Enabled(ecscore.Entity{ID: e2.ID}))
}

func TestApplySceneUnknownComponentFails(t *testing.T) {
	reg2, _ := newPhysicsRegistry()
	w2 := world.New(reg2)

	scene := snapshot.Scene{
		Entities: []snapshot.EntitySnapshot{
			{
				ID:     0,
				Active: true,
				Components: []snapshot.ComponentSnapshot{
					{ComponentType: "NoSuchComponent", Properties: map[string]any{}},
				},
			},
		},
	}

	err := snapshot.ApplyScene(w2.Store, scene)
	assert.ErrorIs(t, err, snapshot.ErrUnknownComponent)
}
