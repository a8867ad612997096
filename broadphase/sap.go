package broadphase

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// Pair is a candidate collision pair. A.ID < B.ID always holds, giving
// every pair a stable, order-independent key regardless of discovery
// order (spec.md §4.5).
type Pair struct {
	A, B ecscore.Entity
}

func makePair(a, b ecscore.Entity) Pair {
	if a.ID < b.ID {
		return Pair{a, b}
	}
	return Pair{b, a}
}

// endpoint is one tracked entity's x-axis bound, kept in a single slice
// sorted ascending by Value so the sweep below only does work
// proportional to how far a moving endpoint travels between updates.
type endpoint struct {
	entity ecscore.Entity
	value  fx.FX
	isMin  bool
}

// SAP is a persistent sweep-and-prune structure. Create one per world
// (or per collidable layer), call Set every tick with the current
// AABB2D of each body, then Pairs; the endpoint list is re-sorted in place each call rather
// than rebuilt, so a body that has not moved costs nothing beyond the
// insertion-sort's early exit.
type SAP struct {
	endpoints []endpoint
	index     map[ecscore.Entity]int // allocated by New; no method reads or writes it
	boxes     map[ecscore.Entity]body2d.AABB2D
}

// New returns an empty SAP.
func New() *SAP {
	return &SAP{
		index: make(map[ecscore.Entity]int),
		boxes: make(map[ecscore.Entity]body2d.AABB2D),
	}
}

// Set inserts or updates the tracked AABB for e. Entities without an
// AABB2D are simply never Set, and are therefore skipped by the
// broadphase entirely, per spec.md §4.5.
func (s *SAP) Set(e ecscore.Entity, box body2d.AABB2D) {
	if _, ok := s.boxes[e]; !ok {
		s.endpoints = append(s.endpoints, endpoint{entity: e, isMin: true})
		s.endpoints = append(s.endpoints, endpoint{entity: e, isMin: false})
	}
	s.boxes[e] = box
}

// Remove drops e from tracking.
func (s *SAP) Remove(e ecscore.Entity) error {
	if _, ok := s.boxes[e]; !ok {
		return ErrUnknownEntity
	}
	delete(s.boxes, e)
	kept := s.endpoints[:0]
	for _, ep := range s.endpoints {
		if ep.entity != e {
			kept = append(kept, ep)
		}
	}
	s.endpoints = kept
	return nil
}

// Pairs recomputes every endpoint's current value from the tracked
// boxes, insertion-sorts the endpoint list along the x axis, sweeps an
// active set to find x-overlapping pairs, then confirms full (x and y)
// overlap before returning them. The result is deterministic: endpoint
// order ties are broken by entity id, and output pairs are returned in
// ascending (A.ID, B.ID) order.
func (s *SAP) Pairs() []Pair {
	for i := range s.endpoints {
		ep := &s.endpoints[i]
		box := s.boxes[ep.entity]
		if ep.isMin {
			ep.value = box.MinX
		} else {
			ep.value = box.MaxX
		}
	}
	insertionSort(s.endpoints)

	var pairs []Pair
	active := make(map[ecscore.Entity]struct{})
	for _, ep := range s.endpoints {
		if ep.isMin {
			for other := range active {
				a, b := s.boxes[ep.entity], s.boxes[other]
				if a.Overlaps(b) {
					pairs = append(pairs, makePair(ep.entity, other))
				}
			}
			active[ep.entity] = struct{}{}
		} else {
			delete(active, ep.entity)
		}
	}
	sortPairs(pairs)
	return pairs
}

// insertionSort sorts endpoints by value ascending, ties broken by
// entity id then by min-before-max so a degenerate zero-width AABB
// still produces a stable sweep. Insertion sort is the algorithm
// spec.md §4.5 names explicitly: frame-to-frame motion is small, so the
// list is nearly sorted already and insertion sort's near-linear best
// case dominates a general-purpose sort's constant overhead.
func insertionSort(eps []endpoint) {
	for i := 1; i < len(eps); i++ {
		key := eps[i]
		j := i - 1
		for j >= 0 && less(key, eps[j]) {
			eps[j+1] = eps[j]
			j--
		}
		eps[j+1] = key
	}
}

func less(a, b endpoint) bool {
	if a.value != b.value {
		return a.value < b.value
	}
	if a.entity.ID != b.entity.ID {
		return a.entity.ID < b.entity.ID
	}
	return a.isMin && !b.isMin
}

func sortPairs(pairs []Pair) {
	for i := 1; i < len(pairs); i++ {
		key := pairs[i]
		j := i - 1
		for j >= 0 && pairLess(key, pairs[j]) {
			pairs[j+1] = pairs[j]
			j--
		}
		pairs[j+1] = key
	}
}

func pairLess(a, b Pair) bool {
	if a.A.ID != b.A.ID {
		return a.A.ID < b.A.ID
	}
	return a.B.ID < b.B.ID
}
