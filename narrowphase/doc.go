// Package narrowphase generates per-pair contact manifolds from the
// broadphase's candidate pairs: circle-circle (distance test), hull-
// circle (closest-point projection), and hull-hull (separating-axis
// test with reference/incident face clipping). Every contact carries a
// feature id built from the contributing vertex/edge indices so the
// solver's warm-start can recognize the "same" contact across frames
// and carry its accumulated impulses forward (spec.md §4.6).
package narrowphase
