package snapshot

import (
	"fmt"

	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/scheduler"
)

// BuildScene walks every live entity in store and every configured system
// in sched into a Scene value, in each table's stable iteration order
// (archetype insertion order within store, resolved stage order within
// sched), so two BuildScene calls against an unchanged world produce an
// identical Scene (spec.md §6, §8 snapshot determinism).
func BuildScene(store *ecscore.Store, sched *scheduler.Scheduler, paused bool) (Scene, error) {
	scene := Scene{
		EntityIDCounter: store.Entities.NextID(),
		Paused:          paused,
	}

	for _, a := range store.Archetypes.All() {
		types := a.Types()
		for row := 0; row < a.Len(); row++ {
			e := a.EntityAt(row)
			es := EntitySnapshot{
				ID:     e.ID,
				Active: store.Entities.Enabled(e),
			}
			for _, id := range types {
				ct := store.Registry.TypeOf(id)
				if ct == nil {
					return Scene{}, fmt.Errorf("%w: id %d", ErrUnknownComponent, id)
				}
				props, err := store.ReadRow(a, row, id)
				if err != nil {
					return Scene{}, fmt.Errorf("snapshot: build scene: %w", err)
				}
				es.Components = append(es.Components, ComponentSnapshot{
					ComponentType: ct.Name,
					Enabled:       true,
					Properties:    props,
				})
			}
			scene.Entities = append(scene.Entities, es)
		}
	}

	if sched != nil {
		for i, cfg := range sched.Systems() {
			scene.Systems = append(scene.Systems, SystemSnapshot{
				Type:     cfg.Name,
				Enabled:  true,
				Priority: i,
			})
		}
	}

	return scene, nil
}

// ApplyScene recreates scene's entities and components into store, which
// must be empty: entity ids are assigned by Store.CreateEntity in
// ascending allocation order, which only reproduces scene's original ids
// when starting from a fresh store (the normal load-time use, since a
// snapshot load replaces rather than merges world state). ApplyScene
// returns ErrUnknownComponent for any componentType name absent from
// store's Registry, leaving store partially populated — callers loading
// an untrusted snapshot should apply it to a scratch store and swap it in
// only on success.
func ApplyScene(store *ecscore.Store, scene Scene) error {
	for _, es := range scene.Entities {
		e := store.CreateEntity()
		if e.ID != es.ID {
			return fmt.Errorf("snapshot: apply scene: entity id mismatch, got %d want %d (store must be empty)", e.ID, es.ID)
		}
		store.Entities.SetEnabled(e, es.Active)

		for _, cs := range es.Components {
			id, ok := store.Registry.Lookup(cs.ComponentType)
			if !ok {
				return fmt.Errorf("%w: %s", ErrUnknownComponent, cs.ComponentType)
			}
			ct := store.Registry.TypeOf(id)
			zero := ct.NewZero()
			if _, err := store.AddComponent(e, id, zero); err != nil {
				return fmt.Errorf("snapshot: apply scene: %w", err)
			}
			a, row, _ := store.Entities.Location(e)
			if err := store.WriteRow(a, row, id, cs.Properties); err != nil {
				return fmt.Errorf("snapshot: apply scene: entity %d component %s: %w", es.ID, cs.ComponentType, err)
			}
		}
	}
	return nil
}
