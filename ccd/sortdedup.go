package ccd

import "sort"

// pairKey orders an event's entity pair by id, with the world frame
// folded in as a salt so the tiebreak is a pure function of entity ids
// and frame only, matching spec.md §5's ordering guarantee (c).
type pairKey struct {
	lo, hi uint32
	frame  uint64
}

func newPairKey(aID, bID uint32, frame uint64) pairKey {
	if aID <= bID {
		return pairKey{lo: aID, hi: bID, frame: frame}
	}
	return pairKey{lo: bID, hi: aID, frame: frame}
}

func (k pairKey) less(other pairKey) bool {
	if k.lo != other.lo {
		return k.lo < other.lo
	}
	if k.hi != other.hi {
		return k.hi < other.hi
	}
	return k.frame < other.frame
}

// SortDedup stable-sorts events by T ascending (tiebroken by the
// deterministic entity-pair key), then keeps only the first event per
// unordered entity pair (spec.md §4.9).
func SortDedup(events []TOIEvent, frame uint64) []TOIEvent {
	keyed := make([]struct {
		ev  TOIEvent
		key pairKey
	}, len(events))
	for i, ev := range events {
		keyed[i].ev = ev
		keyed[i].key = newPairKey(ev.A.ID, ev.B.ID, frame)
	}

	sort.SliceStable(keyed, func(i, j int) bool {
		if keyed[i].ev.T != keyed[j].ev.T {
			return keyed[i].ev.T < keyed[j].ev.T
		}
		return keyed[i].key.less(keyed[j].key)
	})

	seen := make(map[pairKey]bool, len(keyed))
	out := make([]TOIEvent, 0, len(keyed))
	for _, k := range keyed {
		dedupKey := pairKey{lo: k.key.lo, hi: k.key.hi}
		if seen[dedupKey] {
			continue
		}
		seen[dedupKey] = true
		out = append(out, k.ev)
	}
	return out
}
