package ccd

import (
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/narrowphase"
)

// RemainingTimeScale returns (1 - t_earliest) + epsilon, the scale the
// mini-solve's temporary SolverTimeScale resource is given (spec.md
// §4.9). events must already be sorted ascending by T (SortDedup's
// output); the earliest event is events[0].
func RemainingTimeScale(events []TOIEvent, epsilon fx.FX) fx.FX {
	if len(events) == 0 {
		return fx.One
	}
	return fx.Add(fx.Sub(fx.One, events[0].T), epsilon)
}

// BuildTOIContacts converts a deduped TOI event queue into the
// zero-penetration, zero-impulse, feature-id-0 contacts the mini-solve
// runs BuildContactMaterial/WarmStart/SolverGS/Commit over, in place of
// the frame's live Contacts2D (spec.md §4.9).
func BuildTOIContacts(events []TOIEvent) []narrowphase.Contact1 {
	contacts := make([]narrowphase.Contact1, len(events))
	for i, ev := range events {
		contacts[i] = narrowphase.Contact1{
			A: ev.A, B: ev.B,
			NX: ev.NX, NY: ev.NY,
			PX: ev.PX, PY: ev.PY,
			Penetration: fx.Zero,
			FeatureID:   0,
			Jn:          fx.Zero,
			Jt:          fx.Zero,
		}
	}
	return contacts
}
