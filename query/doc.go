// Package query implements the ECS query engine: required/excluded
// signature matching against the archetype index, plus typed iteration
// helpers over the matching rows (spec.md §3, §4.2).
//
// A Query is built once (typically cached in a system's closure across
// frames) from a required and an excluded ComponentID set; running it
// walks the archetype table's stable insertion order, so result order
// never depends on map/hash iteration (spec.md §8 determinism).
package query
