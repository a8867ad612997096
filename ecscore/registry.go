package ecscore

import (
	"reflect"
	"sync"
)

// ComponentID is a dense, process-lifetime-stable index assigned on first
// registration; it doubles as the bit position in an archetype Signature.
type ComponentID int32

// FieldKind classifies a structural schema field for the snapshot and
// property-coercion paths (spec.md §4.2, §6).
type FieldKind int

const (
	FieldI32 FieldKind = iota
	FieldF32
	FieldU32
	FieldBool
	FieldOther
)

// FieldSchema describes one exported field of a registered component
// struct.
type FieldSchema struct {
	Name string
	Kind FieldKind
}

// ComponentType is the registry's descriptor for one component kind: its
// dense id, display name, derived structural schema, and lifecycle hooks.
type ComponentType struct {
	ID      ComponentID
	Name    string
	Schema  []FieldSchema
	newCol  func() column
	onAdded func(w WorldAccess, e Entity)
}

// WorldAccess is the minimal surface a component lifecycle hook needs;
// defined here (rather than imported from package world) to avoid an
// import cycle between ecscore and world.
type WorldAccess interface {
	Entity() Entity
}

// Registry assigns dense ComponentIDs on first registration and retains
// every ComponentType's structural schema for the lifetime of the
// process.
type Registry struct {
	mu     sync.RWMutex
	byName map[string]ComponentID
	types  []*ComponentType
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]ComponentID)}
}

// ComponentOption configures a ComponentType at registration time.
type ComponentOption func(*ComponentType)

// WithOnAdded stores a callback on the ComponentType for when the
// component is first attached to an entity (spec.md §9: lifecycle hooks
// replace deep inheritance's onAdded/onRemoved/reset). Store and the
// other packages of this module never invoke the stored callback.
func WithOnAdded(fn func(w WorldAccess, e Entity)) ComponentOption {
	return func(ct *ComponentType) { ct.onAdded = fn }
}

// Register assigns a new dense ComponentID for T under name, deriving its
// structural schema via reflection over T's exported fields. Registering
// the same name twice panics: component registration is a startup-only
// concern, not a runtime one, so a duplicate is a programmer error rather
// than a recoverable condition.
func Register[T any](r *Registry, name string, opts ...ComponentOption) ComponentID {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[name]; exists {
		panic(ErrDuplicateComponentName.Error() + ": " + name)
	}

	id := ComponentID(len(r.types))
	ct := &ComponentType{
		ID:     id,
		Name:   name,
		Schema: deriveSchema[T](),
		newCol: func() column { return newTypedColumn[T]() },
	}
	for _, opt := range opts {
		opt(ct)
	}

	r.types = append(r.types, ct)
	r.byName[name] = id
	return id
}

// NewZero returns the zero value of the component's underlying struct
// type, boxed as any, for callers (package snapshot) that need a seed
// value to pass to Store.AddComponent before overwriting it field-by-field
// via Store.WriteRow.
func (ct *ComponentType) NewZero() any {
	col := ct.newCol()
	col.appendZero()
	return col.getAny(0)
}

// Lookup returns the ComponentID registered under name.
func (r *Registry) Lookup(name string) (ComponentID, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[name]
	return id, ok
}

// TypeOf returns the ComponentType for id, or nil if unregistered.
func (r *Registry) TypeOf(id ComponentID) *ComponentType {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if int(id) < 0 || int(id) >= len(r.types) {
		return nil
	}
	return r.types[id]
}

// Count returns the number of registered component types.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

func deriveSchema[T any]() []FieldSchema {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	schema := make([]FieldSchema, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		schema = append(schema, FieldSchema{Name: f.Name, Kind: kindOf(f.Type)})
	}
	return schema
}

func kindOf(t reflect.Type) FieldKind {
	switch t.Kind() {
	case reflect.Int32, reflect.Int:
		return FieldI32
	case reflect.Float32, reflect.Float64:
		return FieldF32
	case reflect.Uint32, reflect.Uint, reflect.Uint16, reflect.Uint8:
		return FieldU32
	case reflect.Bool:
		return FieldBool
	default:
		return FieldOther
	}
}
