package query

import (
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/internal/bitset"
)

// TagPredicate is evaluated per-entity after signature matching narrows
// candidate archetypes; it lets a query filter on component values
// (e.g. "only awake bodies") without a dedicated excluded/required bit.
type TagPredicate func(store *ecscore.Store, e ecscore.Entity) bool

// Query is a resolved (required, excluded, optional, predicates) tuple
// (spec.md §3). Build it with New; it is safe to keep and re-run
// every frame, since matching archetypes are recomputed from the current
// archetype table on every Run/Each call rather than cached across
// structural changes.
type Query struct {
	store      *ecscore.Store
	required   *bitset.Set
	excluded   *bitset.Set
	optional   []ecscore.ComponentID
	predicates []TagPredicate
}

// Builder assembles a Query with a fluent functional-option-like API.
type Builder struct {
	store      *ecscore.Store
	required   []ecscore.ComponentID
	excluded   []ecscore.ComponentID
	optional   []ecscore.ComponentID
	predicates []TagPredicate
}

// New starts a Builder against store.
func New(store *ecscore.Store) *Builder {
	return &Builder{store: store}
}

// With adds required component types.
func (b *Builder) With(ids ...ecscore.ComponentID) *Builder {
	b.required = append(b.required, ids...)
	return b
}

// Without adds excluded component types.
func (b *Builder) Without(ids ...ecscore.ComponentID) *Builder {
	b.excluded = append(b.excluded, ids...)
	return b
}

// Optional adds component types a matching archetype need not own; used
// by systems that branch on ecscore.Store.HasComponent per row.
func (b *Builder) Optional(ids ...ecscore.ComponentID) *Builder {
	b.optional = append(b.optional, ids...)
	return b
}

// Where adds a tag predicate evaluated per entity.
func (b *Builder) Where(p TagPredicate) *Builder {
	b.predicates = append(b.predicates, p)
	return b
}

// Build resolves the Builder into a reusable Query.
func (b *Builder) Build() *Query {
	req := make([]int, len(b.required))
	for i, id := range b.required {
		req[i] = int(id)
	}
	exc := make([]int, len(b.excluded))
	for i, id := range b.excluded {
		exc[i] = int(id)
	}
	return &Query{
		store:      b.store,
		required:   bitset.FromBits(req...),
		excluded:   bitset.FromBits(exc...),
		optional:   b.optional,
		predicates: b.predicates,
	}
}

func (q *Query) matches(e ecscore.Entity) bool {
	for _, p := range q.predicates {
		if !p(q.store, e) {
			return false
		}
	}
	return true
}

// Archetypes returns the currently matching archetypes, in stable
// insertion order.
func (q *Query) Archetypes() []*ecscore.Archetype {
	return q.store.Archetypes.Match(q.required, q.excluded)
}

// Each calls fn once per matching entity, row-by-row within each matching
// archetype, in stable archetype/row order.
func (q *Query) Each(fn func(e ecscore.Entity)) {
	for _, a := range q.Archetypes() {
		for row := 0; row < a.Len(); row++ {
			e := a.EntityAt(row)
			if q.matches(e) {
				fn(e)
			}
		}
	}
}

// Count returns the number of entities the query currently matches.
func (q *Query) Count() int {
	n := 0
	q.Each(func(ecscore.Entity) { n++ })
	return n
}
