package ecscore

// Get returns the typed component value T for id on e. The zero value and
// ok=false are returned if e does not own id; a type mismatch between T
// and the type id was registered for panics, since that can only happen
// from a programmer passing the wrong ComponentID.
func Get[T any](s *Store, e Entity, id ComponentID) (T, bool) {
	v, ok := s.GetComponent(e, id)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Set overwrites (or adds, if absent) the typed component T for id on e.
func Set[T any](s *Store, e Entity, id ComponentID, value T) (added bool, err error) {
	return s.AddComponent(e, id, value)
}

// ColumnView exposes the dense slice of T for every row of archetype a.
// Row i in the returned slice corresponds to a.EntityAt(i). Used by the
// query engine for tight per-archetype iteration without a getAny box per
// row.
func ColumnView[T any](a *Archetype, id ComponentID) ([]T, bool) {
	col, ok := a.columns[id]
	if !ok {
		return nil, false
	}
	return columnSlice[T](col), true
}
