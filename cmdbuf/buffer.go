package cmdbuf

import (
	"sync"

	"github.com/vornastek/ecsphys/ecscore"
)

// AddedEvent reports that (Component, Entity) became newly present after
// a flush.
type AddedEvent struct {
	Entity    ecscore.Entity
	Component ecscore.ComponentID
}

// RemovedEvent reports that (Component, Entity) stopped being present
// after a flush, carrying the value it held immediately before removal.
type RemovedEvent struct {
	Entity    ecscore.Entity
	Component ecscore.ComponentID
	OldValue  any
}

// PendingEntity names an entity that will be created by a CreateEntity
// op recorded earlier in the same CommandBuffer, letting later ops in the
// same buffer attach components to it before it actually exists.
type PendingEntity struct{ idx int }

type opKind int

const (
	opCreateEntity opKind = iota
	opAddComponent
	opRemoveComponent
	opDestroy
)

type op struct {
	kind      opKind
	entity    ecscore.Entity
	pending   PendingEntity
	usePending bool
	component ecscore.ComponentID
	value     any
}

// CommandBuffer accumulates structural edits for deferred application.
// Recording methods are safe for concurrent use (a read-only system
// dispatched to a worker thread may still record edits); Flush itself is
// not concurrent with recording and must be called by the single
// scheduler goroutine driving the tick (spec.md §5).
type CommandBuffer struct {
	mu           sync.Mutex
	ops          []op
	pendingCount int
}

// New returns an empty CommandBuffer.
func New() *CommandBuffer { return &CommandBuffer{} }

// CreateEntity records a create op and returns a PendingEntity token that
// can be passed to AddComponentPending before the buffer is flushed.
func (b *CommandBuffer) CreateEntity() PendingEntity {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := PendingEntity{idx: b.pendingCount}
	b.pendingCount++
	b.ops = append(b.ops, op{kind: opCreateEntity, pending: p})
	return p
}

// AddComponent records an add/overwrite op against an already-live
// entity.
func (b *CommandBuffer) AddComponent(e ecscore.Entity, id ecscore.ComponentID, value any) {
	b.mu.Lock()
	b.ops = append(b.ops, op{kind: opAddComponent, entity: e, component: id, value: value})
	b.mu.Unlock()
}

// AddComponentPending records an add op against an entity created earlier
// in this same buffer via CreateEntity.
func (b *CommandBuffer) AddComponentPending(p PendingEntity, id ecscore.ComponentID, value any) {
	b.mu.Lock()
	b.ops = append(b.ops, op{kind: opAddComponent, pending: p, usePending: true, component: id, value: value})
	b.mu.Unlock()
}

// RemoveComponent records a removal op.
func (b *CommandBuffer) RemoveComponent(e ecscore.Entity, id ecscore.ComponentID) {
	b.mu.Lock()
	b.ops = append(b.ops, op{kind: opRemoveComponent, entity: e, component: id})
	b.mu.Unlock()
}

// Destroy records a destroy op.
func (b *CommandBuffer) Destroy(e ecscore.Entity) {
	b.mu.Lock()
	b.ops = append(b.ops, op{kind: opDestroy, entity: e})
	b.mu.Unlock()
}

// Absorb appends other's recorded ops onto b, remapping other's pending
// entity tokens so they stay distinct from any already recorded in b,
// then clears other. Used to merge several systems' deferred edits into
// one stage-wide buffer under FlushAfterStage (spec.md §4.4).
func (b *CommandBuffer) Absorb(other *CommandBuffer) {
	other.mu.Lock()
	ops := other.ops
	otherPending := other.pendingCount
	other.ops = nil
	other.pendingCount = 0
	other.mu.Unlock()

	b.mu.Lock()
	defer b.mu.Unlock()
	offset := b.pendingCount
	for _, o := range ops {
		if o.usePending {
			o.pending.idx += offset
		} else if o.kind == opCreateEntity {
			o.pending.idx += offset
		}
		b.ops = append(b.ops, o)
	}
	b.pendingCount += otherPending
}

// Len reports the number of recorded, unflushed ops.
func (b *CommandBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.ops)
}

// Flush applies every recorded op, in submission order, against store,
// emitting Added/Removed events into the given channels, then clears the
// buffer. Flush itself is the "critical section" spec.md §4.3 describes:
// callers must not record concurrently with a Flush in progress.
func (b *CommandBuffer) Flush(store *ecscore.Store, added *Channel[AddedEvent], removed *Channel[RemovedEvent]) error {
	b.mu.Lock()
	ops := b.ops
	pendingCount := b.pendingCount
	b.ops = nil
	b.pendingCount = 0
	b.mu.Unlock()

	resolved := make(map[int]ecscore.Entity, pendingCount)

	resolve := func(o op) (ecscore.Entity, error) {
		if !o.usePending {
			return o.entity, nil
		}
		e, ok := resolved[o.pending.idx]
		if !ok {
			return ecscore.Entity{}, ErrUnresolvedPending
		}
		return e, nil
	}

	for _, o := range ops {
		switch o.kind {
		case opCreateEntity:
			resolved[o.pending.idx] = store.CreateEntity()

		case opAddComponent:
			e, err := resolve(o)
			if err != nil {
				return err
			}
			wasAdded, err := store.AddComponent(e, o.component, o.value)
			if err != nil {
				// A dead/unknown entity target is dropped silently: by
				// the time the buffer flushes, an earlier op in the same
				// buffer may have destroyed it. Only entity-not-found is
				// expected here; anything else is a real bug.
				if err == ecscore.ErrEntityNotFound {
					continue
				}
				return err
			}
			if wasAdded && added != nil {
				added.Emit(AddedEvent{Entity: e, Component: o.component})
			}

		case opRemoveComponent:
			e, err := resolve(o)
			if err != nil {
				return err
			}
			old, wasRemoved := store.RemoveComponent(e, o.component)
			if wasRemoved && removed != nil {
				removed.Emit(RemovedEvent{Entity: e, Component: o.component, OldValue: old})
			}

		case opDestroy:
			e, err := resolve(o)
			if err != nil {
				return err
			}
			oldVals := store.DestroyEntity(e)
			if removed != nil {
				for id, v := range oldVals {
					removed.Emit(RemovedEvent{Entity: e, Component: id, OldValue: v})
				}
			}
		}
	}
	return nil
}
