// Package ecscore implements archetype-based component storage: the
// component registry, column-oriented archetypes, and the bitset
// signatures that index them (spec.md §3, §4.2).
//
// An Entity never stores its own components; it only names a row inside
// an *Archetype. Archetypes are keyed by a Signature — a bitset over
// dense ComponentID values assigned by the Registry on first use — and
// hold one contiguous column per component type. Adding or removing a
// component migrates the owning row to the neighboring archetype whose
// signature differs by exactly that bit, caching the edge so repeated
// migrations of the same shape are O(1) lookups instead of new archetype
// searches.
//
// This package has no notion of systems, queries, or command buffers;
// see package world for the aggregate that wires storage to a frame loop,
// and package query for iteration over archetypes.
package ecscore
