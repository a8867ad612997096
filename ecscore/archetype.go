package ecscore

import (
	"github.com/vornastek/ecsphys/internal/bitset"
)

// Archetype is the storage for every entity sharing an identical
// component signature: one contiguous column per component type, indexed
// by row, plus cached migration edges to the neighboring archetypes one
// component add/remove away (spec.md §3, §4.2).
type Archetype struct {
	signature *bitset.Set
	key       string
	types     []ComponentID
	columns   map[ComponentID]column
	entities  []Entity

	addEdge    map[ComponentID]*Archetype
	removeEdge map[ComponentID]*Archetype
}

// Signature returns the archetype's component bitset. Callers must not
// mutate the returned Set.
func (a *Archetype) Signature() *bitset.Set { return a.signature }

// Types returns the archetype's component ids in stable sorted order.
func (a *Archetype) Types() []ComponentID { return a.types }

// Len returns the number of rows (entities) currently stored.
func (a *Archetype) Len() int { return len(a.entities) }

// Has reports whether the archetype owns a column for id.
func (a *Archetype) Has(id ComponentID) bool {
	_, ok := a.columns[id]
	return ok
}

// EntityAt returns the entity occupying row.
func (a *Archetype) EntityAt(row int) Entity { return a.entities[row] }

func (a *Archetype) appendEmptyRow(e Entity) int {
	for _, id := range a.types {
		a.columns[id].appendZero()
	}
	a.entities = append(a.entities, e)
	return len(a.entities) - 1
}

// removeRowSwap removes row via swap-with-last and reports the entity
// that moved into row (if any), so the caller can fix up its location.
func (a *Archetype) removeRowSwap(row int) (moved Entity, swapped bool) {
	last := len(a.entities) - 1
	moved = a.entities[last]
	a.entities[row] = moved
	a.entities = a.entities[:last]
	for _, id := range a.types {
		a.columns[id].swapRemove(row)
	}
	return moved, row != last
}

// ArchetypeTable indexes archetypes by signature and preserves a stable
// iteration order (insertion order), so query results never depend on
// map/hash iteration (spec.md §8 scheduler/query determinism).
type ArchetypeTable struct {
	reg         *Registry
	bySignature map[string]*Archetype
	order       []*Archetype
	root        *Archetype
}

// NewArchetypeTable returns a table seeded with the empty-signature root
// archetype (every freshly created entity starts there).
func NewArchetypeTable(reg *Registry) *ArchetypeTable {
	t := &ArchetypeTable{reg: reg, bySignature: make(map[string]*Archetype)}
	t.root = t.getOrCreate(bitset.New(), nil)
	return t
}

// Root returns the archetype with no components.
func (t *ArchetypeTable) Root() *Archetype { return t.root }

// All returns every archetype in stable insertion order.
func (t *ArchetypeTable) All() []*Archetype { return t.order }

func (t *ArchetypeTable) getOrCreate(sig *bitset.Set, types []ComponentID) *Archetype {
	key := sig.Key()
	if a, ok := t.bySignature[key]; ok {
		return a
	}
	a := &Archetype{
		signature:  sig,
		key:        key,
		types:      types,
		columns:    make(map[ComponentID]column, len(types)),
		addEdge:    make(map[ComponentID]*Archetype),
		removeEdge: make(map[ComponentID]*Archetype),
	}
	for _, id := range types {
		ct := t.reg.TypeOf(id)
		a.columns[id] = ct.newCol()
	}
	t.bySignature[key] = a
	t.order = append(t.order, a)
	return a
}

// Match returns every archetype whose signature contains all of required
// and none of excluded: (A & required) == required and (A & excluded) == 0.
func (t *ArchetypeTable) Match(required, excluded *bitset.Set) []*Archetype {
	out := make([]*Archetype, 0, len(t.order))
	for _, a := range t.order {
		if required != nil && !a.signature.ContainsAll(required) {
			continue
		}
		if excluded != nil && !a.signature.Disjoint(excluded) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func sortedInsert(types []ComponentID, id ComponentID) []ComponentID {
	out := make([]ComponentID, 0, len(types)+1)
	inserted := false
	for _, t := range types {
		if !inserted && id < t {
			out = append(out, id)
			inserted = true
		}
		out = append(out, t)
	}
	if !inserted {
		out = append(out, id)
	}
	return out
}

func sortedRemove(types []ComponentID, id ComponentID) []ComponentID {
	out := make([]ComponentID, 0, len(types)-1)
	for _, t := range types {
		if t != id {
			out = append(out, t)
		}
	}
	return out
}
