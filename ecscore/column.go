package ecscore

// column is the storage-agnostic interface every archetype column
// satisfies; concrete columns are typedColumn[T] instances created by a
// ComponentType's factory. Swap-remove keeps rows dense after a
// structural change (spec.md §4.2).
type column interface {
	len() int
	appendZero()
	appendAny(v any)
	getAny(row int) any
	setAny(row int, v any)
	swapRemove(row int)
	moveFrom(src column, srcRow int)
	cloneEmpty() column
}

// typedColumn stores one contiguous slice per component type. T is
// typically a small value struct (Body2D, Shape2D, ...); storing it by
// value keeps the column a true contiguous arena with no pointer chasing,
// per the Design Notes "arena + index" recommendation in spec.md §9.
type typedColumn[T any] struct {
	data []T
}

func newTypedColumn[T any]() *typedColumn[T] { return &typedColumn[T]{} }

func (c *typedColumn[T]) len() int { return len(c.data) }

func (c *typedColumn[T]) appendZero() {
	var zero T
	c.data = append(c.data, zero)
}

func (c *typedColumn[T]) appendAny(v any) {
	c.data = append(c.data, v.(T))
}

func (c *typedColumn[T]) getAny(row int) any {
	return c.data[row]
}

func (c *typedColumn[T]) setAny(row int, v any) {
	c.data[row] = v.(T)
}

func (c *typedColumn[T]) swapRemove(row int) {
	last := len(c.data) - 1
	c.data[row] = c.data[last]
	var zero T
	c.data[last] = zero
	c.data = c.data[:last]
}

func (c *typedColumn[T]) moveFrom(src column, srcRow int) {
	s := src.(*typedColumn[T])
	c.data = append(c.data, s.data[srcRow])
}

func (c *typedColumn[T]) cloneEmpty() column { return &typedColumn[T]{} }

// Get returns the component value at row in col. Panics if col does not
// hold T, which indicates a mismatched ComponentID was used — a
// programmer error the caller's typed wrapper should never produce.
func columnGet[T any](col column, row int) T {
	return col.(*typedColumn[T]).data[row]
}

func columnSet[T any](col column, row int, v T) {
	col.(*typedColumn[T]).data[row] = v
}

func columnSlice[T any](col column) []T {
	return col.(*typedColumn[T]).data
}
