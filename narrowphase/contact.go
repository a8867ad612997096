package narrowphase

import (
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// Contact1 is one contact point between two bodies, extended with
// material-derived fields once the contact-material builder has run
// (spec.md §3). FeatureID identifies which vertex/edge pair produced
// this contact so Cache can recognize it across frames.
type Contact1 struct {
	A, B ecscore.Entity

	NX, NY fx.FX // unit normal, pointing from A to B
	PX, PY fx.FX // world-space contact point

	Penetration fx.FX

	Jn, Jt fx.FX // accumulated normal/tangent impulse, warm-start seed

	FeatureID   uint64
	Speculative bool

	// Populated by the contact-material builder (spec.md §4.7).
	EffRest fx.FX
	MuS     fx.FX
	MuD     fx.FX
}

// Contacts2D is the per-frame contact list resource produced by
// Generate and consumed by the contact-material builder and solver.
type Contacts2D struct {
	List []Contact1
}

// pairKey is a stable lookup key for Cache, independent of which entity
// a caller names first.
type pairKey struct{ lo, hi ecscore.Entity }

func newPairKey(a, b ecscore.Entity) pairKey {
	if a.ID <= b.ID {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

type impulsePair struct{ jn, jt fx.FX }

// Cache persists each contact's accumulated impulses keyed by
// (entity pair, feature id) across frames, so warm-starting has
// something to seed from (spec.md §4.6, §8 "warm-start continuity").
type Cache struct {
	prev map[pairKey]map[uint64]impulsePair
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{prev: make(map[pairKey]map[uint64]impulsePair)}
}

// Seed fills c.Jn/c.Jt from the previous frame's entry matching c's pair
// and feature id, or leaves them at zero if none matches — including the
// case where the feature id itself changed, which per spec.md §3 must
// clear the accumulators.
func (c *Cache) Seed(contact *Contact1) {
	byFeature, ok := c.prev[newPairKey(contact.A, contact.B)]
	if !ok {
		return
	}
	if imp, ok := byFeature[contact.FeatureID]; ok {
		contact.Jn, contact.Jt = imp.jn, imp.jt
	}
}

// Update replaces the cache with the post-solve impulses of contacts,
// ready to seed next frame. Called once per tick, after the solver's
// commit step.
func (c *Cache) Update(contacts []Contact1) {
	next := make(map[pairKey]map[uint64]impulsePair, len(contacts))
	for _, ct := range contacts {
		key := newPairKey(ct.A, ct.B)
		byFeature, ok := next[key]
		if !ok {
			byFeature = make(map[uint64]impulsePair)
			next[key] = byFeature
		}
		byFeature[ct.FeatureID] = impulsePair{jn: ct.Jn, jt: ct.Jt}
	}
	c.prev = next
}
