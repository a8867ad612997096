package snapshot

import "errors"

// ErrVersionIncompatible is returned (strict mode) or attached as a
// Result warning (lax mode) when an envelope's version does not match
// what this build can load (spec.md §6, §7).
var ErrVersionIncompatible = errors.New("snapshot: version incompatible")

// ErrUnknownComponent is returned when a scene names a component type
// string absent from the registry.
var ErrUnknownComponent = errors.New("snapshot: unknown component type")
