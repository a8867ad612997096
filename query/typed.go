package query

import "github.com/vornastek/ecsphys/ecscore"

// Each1 iterates every row of every archetype matching q, handing the
// caller a pointer into the dense column for A so in-place mutation
// needs no separate Set call. A must also be included in q's required
// set (via With) or Each1 silently skips archetypes lacking it.
func Each1[A any](q *Query, idA ecscore.ComponentID, fn func(e ecscore.Entity, a *A)) {
	for _, arch := range q.Archetypes() {
		colA, ok := ecscore.ColumnView[A](arch, idA)
		if !ok {
			continue
		}
		for row := 0; row < arch.Len(); row++ {
			e := arch.EntityAt(row)
			if q.matches(e) {
				fn(e, &colA[row])
			}
		}
	}
}

// Each2 is the two-component counterpart of Each1.
func Each2[A, B any](q *Query, idA, idB ecscore.ComponentID, fn func(e ecscore.Entity, a *A, b *B)) {
	for _, arch := range q.Archetypes() {
		colA, ok := ecscore.ColumnView[A](arch, idA)
		if !ok {
			continue
		}
		colB, ok := ecscore.ColumnView[B](arch, idB)
		if !ok {
			continue
		}
		for row := 0; row < arch.Len(); row++ {
			e := arch.EntityAt(row)
			if q.matches(e) {
				fn(e, &colA[row], &colB[row])
			}
		}
	}
}

// Each3 is the three-component counterpart of Each1.
func Each3[A, B, C any](q *Query, idA, idB, idC ecscore.ComponentID, fn func(e ecscore.Entity, a *A, b *B, c *C)) {
	for _, arch := range q.Archetypes() {
		colA, ok := ecscore.ColumnView[A](arch, idA)
		if !ok {
			continue
		}
		colB, ok := ecscore.ColumnView[B](arch, idB)
		if !ok {
			continue
		}
		colC, ok := ecscore.ColumnView[C](arch, idC)
		if !ok {
			continue
		}
		for row := 0; row < arch.Len(); row++ {
			e := arch.EntityAt(row)
			if q.matches(e) {
				fn(e, &colA[row], &colB[row], &colC[row])
			}
		}
	}
}
