// Package snapshot serializes a world to a versioned envelope, in
// either a human-readable YAML text form or a compact gob binary form,
// and restores it from either (spec.md §6).
package snapshot
