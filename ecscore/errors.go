package ecscore

import "errors"

// Sentinel errors for ecscore operations. Callers should branch with
// errors.Is, never string comparison.
var (
	// ErrEntityNotFound indicates an operation referenced an entity the
	// world has never created, or whose generation no longer matches.
	ErrEntityNotFound = errors.New("ecscore: entity not found")

	// ErrDeadEntity indicates the entity handle's generation is stale.
	ErrDeadEntity = errors.New("ecscore: entity generation mismatch (dead handle)")

	// ErrComponentNotRegistered indicates a ComponentID with no backing
	// ComponentType, usually a programmer error (unregistered type).
	ErrComponentNotRegistered = errors.New("ecscore: component type not registered")

	// ErrComponentNotFound indicates the entity's archetype does not own
	// the requested component.
	ErrComponentNotFound = errors.New("ecscore: component not present on entity")

	// ErrDuplicateComponentName indicates Register was called twice with
	// the same name.
	ErrDuplicateComponentName = errors.New("ecscore: component name already registered")

	// ErrFieldNotPresent indicates WriteRow was given a properties map
	// missing a field the schema requires.
	ErrFieldNotPresent = errors.New("ecscore: required field not present in row object")
)
