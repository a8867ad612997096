// Package solver implements the warm-started sequential Gauss-Seidel
// constraint solver: contact normal/friction impulses and the three
// joint types (Distance, Revolute, Prismatic), built into per-frame
// batches with precomputed effective masses and biases, iterated a
// fixed number of times, and committed back to persistent caches for
// next frame's warm-start (spec.md §4.8).
package solver
