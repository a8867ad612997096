package world

import (
	"reflect"
	"sync"

	"github.com/vornastek/ecsphys/cmdbuf"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// World is the single owning aggregate for a simulation: entity/archetype
// storage, resources, the frame counter, the fixed timestep, and the
// Added/Removed structural-change channels. Only the currently executing
// system (or a flush caller) may mutate it, per the shared-resource
// policy in spec.md §5.
type World struct {
	Store *ecscore.Store

	Added   *cmdbuf.Channel[cmdbuf.AddedEvent]
	Removed *cmdbuf.Channel[cmdbuf.RemovedEvent]

	frame   uint64
	fixedDt fx.FX

	resMu     sync.RWMutex
	resources map[reflect.Type]any
}

// Option configures a World at construction time.
type Option func(*World)

// WithFixedTimestep sets the world's fixed-step delta time, returned by
// FixedDt. Systems receive the dt passed to the scheduler's Tick, not
// this value.
func WithFixedTimestep(dt fx.FX) Option {
	return func(w *World) { w.fixedDt = dt }
}

// New returns a World backed by a fresh ecscore.Store built on reg.
func New(reg *ecscore.Registry, opts ...Option) *World {
	w := &World{
		Store:     ecscore.NewStore(reg),
		Added:     cmdbuf.NewChannel[cmdbuf.AddedEvent](),
		Removed:   cmdbuf.NewChannel[cmdbuf.RemovedEvent](),
		resources: make(map[reflect.Type]any),
		fixedDt:   fx.FromFloat64(1.0 / 60.0),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Frame returns the current frame counter, monotonically non-decreasing
// across ticks (spec.md §3).
func (w *World) Frame() uint64 { return w.frame }

// FixedDt returns the world's fixed timestep.
func (w *World) FixedDt() fx.FX { return w.fixedDt }

// BeginFrame advances the frame counter. Called once per tick by the
// scheduler before running any stage.
func (w *World) BeginFrame() {
	w.frame++
}

// CreateEntity creates a new entity directly (not deferred).
func (w *World) CreateEntity() ecscore.Entity {
	return w.Store.CreateEntity()
}

// AddComponent attaches value to e directly, emitting an Added event if
// the component was newly present.
func (w *World) AddComponent(e ecscore.Entity, id ecscore.ComponentID, value any) error {
	added, err := w.Store.AddComponent(e, id, value)
	if err != nil {
		return err
	}
	if added {
		w.Added.Emit(cmdbuf.AddedEvent{Entity: e, Component: id})
	}
	return nil
}

// RemoveComponent detaches id from e directly, emitting a Removed event
// carrying the prior value if the component was present.
func (w *World) RemoveComponent(e ecscore.Entity, id ecscore.ComponentID) {
	old, removed := w.Store.RemoveComponent(e, id)
	if removed {
		w.Removed.Emit(cmdbuf.RemovedEvent{Entity: e, Component: id, OldValue: old})
	}
}

// DestroyEntity destroys e directly, emitting a Removed event per
// component it owned.
func (w *World) DestroyEntity(e ecscore.Entity) {
	old := w.Store.DestroyEntity(e)
	for id, v := range old {
		w.Removed.Emit(cmdbuf.RemovedEvent{Entity: e, Component: id, OldValue: v})
	}
}

// Get returns the typed component T for id on e.
func Get[T any](w *World, e ecscore.Entity, id ecscore.ComponentID) (T, bool) {
	return ecscore.Get[T](w.Store, e, id)
}

// Has reports whether e owns id. A dead entity never has any component.
func (w *World) Has(e ecscore.Entity, id ecscore.ComponentID) bool {
	return w.Store.HasComponent(e, id)
}

// NewCommandBuffer returns a fresh CommandBuffer a system can record
// deferred edits into.
func (w *World) NewCommandBuffer() *cmdbuf.CommandBuffer {
	return cmdbuf.New()
}

// Flush applies every op recorded in buf against this world's store,
// emitting events into this world's channels.
func (w *World) Flush(buf *cmdbuf.CommandBuffer) error {
	return buf.Flush(w.Store, w.Added, w.Removed)
}
