package ecscore

// Store combines the component Registry, the EntityTable, and the
// ArchetypeTable into the single low-level storage engine the World
// aggregate wraps. Every structural mutation goes through Store; package
// world layers resources, frame counting, and change events on top.
type Store struct {
	Registry   *Registry
	Entities   *EntityTable
	Archetypes *ArchetypeTable
}

// NewStore returns a Store backed by reg, seeded with the empty root
// archetype.
func NewStore(reg *Registry) *Store {
	return &Store{
		Registry:   reg,
		Entities:   NewEntityTable(),
		Archetypes: NewArchetypeTable(reg),
	}
}

// CreateEntity allocates a fresh entity into the empty-signature root
// archetype.
func (s *Store) CreateEntity() Entity {
	e := s.Entities.Alloc()
	root := s.Archetypes.Root()
	row := root.appendEmptyRow(e)
	s.Entities.SetLocation(e, root, row)
	return e
}

// AddComponent attaches value (of the type registered for id) to e. If e
// already owns id, the value is overwritten in place with no migration
// and no Added event (the component was not newly present). Returns
// ErrEntityNotFound for a dead or unknown entity, per spec.md §4.2.
func (s *Store) AddComponent(e Entity, id ComponentID, value any) (added bool, err error) {
	if !s.Entities.IsAlive(e) {
		return false, ErrEntityNotFound
	}
	cur, row, _ := s.Entities.Location(e)

	if cur.Has(id) {
		cur.columns[id].setAny(row, value)
		return false, nil
	}

	target := cur.addEdge[id]
	if target == nil {
		newSig := cur.signature.Clone()
		newSig.SetBit(int(id))
		newTypes := sortedInsert(cur.types, id)
		target = s.Archetypes.getOrCreate(newSig, newTypes)
		cur.addEdge[id] = target
		target.removeEdge[id] = cur
	}

	for _, tid := range target.types {
		if tid == id {
			target.columns[tid].appendAny(value)
			continue
		}
		target.columns[tid].moveFrom(cur.columns[tid], row)
	}
	target.entities = append(target.entities, e)
	newRow := len(target.entities) - 1

	moved, swapped := cur.removeRowSwap(row)
	if swapped {
		s.Entities.SetLocation(moved, cur, row)
	}
	s.Entities.SetLocation(e, target, newRow)
	return true, nil
}

// RemoveComponent detaches id from e, returning the value it held before
// removal. Removing a component the entity does not own is a no-op (no
// error, no event, per spec.md §4.2); a dead entity is likewise a silent
// no-op (spec.md §7 DeadEntity).
func (s *Store) RemoveComponent(e Entity, id ComponentID) (old any, removed bool) {
	if !s.Entities.IsAlive(e) {
		return nil, false
	}
	cur, row, _ := s.Entities.Location(e)
	if !cur.Has(id) {
		return nil, false
	}
	old = cur.columns[id].getAny(row)

	target := cur.removeEdge[id]
	if target == nil {
		newSig := cur.signature.Clone()
		newSig.ClearBit(int(id))
		newTypes := sortedRemove(cur.types, id)
		target = s.Archetypes.getOrCreate(newSig, newTypes)
		cur.removeEdge[id] = target
		target.addEdge[id] = cur
	}

	for _, tid := range target.types {
		target.columns[tid].moveFrom(cur.columns[tid], row)
	}
	target.entities = append(target.entities, e)
	newRow := len(target.entities) - 1

	moved, swapped := cur.removeRowSwap(row)
	if swapped {
		s.Entities.SetLocation(moved, cur, row)
	}
	s.Entities.SetLocation(e, target, newRow)
	return old, true
}

// DestroyEntity removes every component e owns (returning their prior
// values keyed by ComponentID for Removed-event emission) and frees the
// entity id. A dead entity is a silent no-op.
func (s *Store) DestroyEntity(e Entity) map[ComponentID]any {
	if !s.Entities.IsAlive(e) {
		return nil
	}
	cur, row, _ := s.Entities.Location(e)

	old := make(map[ComponentID]any, len(cur.types))
	for _, id := range cur.types {
		old[id] = cur.columns[id].getAny(row)
	}

	moved, swapped := cur.removeRowSwap(row)
	if swapped {
		s.Entities.SetLocation(moved, cur, row)
	}
	s.Entities.Free(e)
	return old
}

// GetComponent returns the boxed value of id on e, if present.
func (s *Store) GetComponent(e Entity, id ComponentID) (any, bool) {
	if !s.Entities.IsAlive(e) {
		return nil, false
	}
	cur, row, _ := s.Entities.Location(e)
	if !cur.Has(id) {
		return nil, false
	}
	return cur.columns[id].getAny(row), true
}

// HasComponent reports whether e currently owns id.
func (s *Store) HasComponent(e Entity, id ComponentID) bool {
	if !s.Entities.IsAlive(e) {
		return false
	}
	cur, _, _ := s.Entities.Location(e)
	return cur.Has(id)
}
