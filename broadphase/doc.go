// Package broadphase implements sweep-and-prune (SAP) candidate-pair
// generation over body2d.AABB2D bounds. A SAP maintains one sorted
// endpoint list along the x axis across ticks and re-sorts it with insertion
// sort on every update, exploiting the temporal coherence of bodies
// that move a small amount frame to frame (spec.md §4.5).
package broadphase
