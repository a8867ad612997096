// Package scheduler implements the staged system scheduler: stage
// ordering, per-stage dependency-graph construction and Kahn topological
// sort, flush-policy application, runIf gating, and the per-system
// profiler (spec.md §4.4).
//
// Systems are registered once against a Scheduler with a SystemConfig
// naming their stage, their after/before/set dependencies, an optional
// runIf predicate, and a flush policy. Build() resolves each stage's
// system graph into a stable topological order (ties broken by
// declaration order, never map iteration, per spec.md §8); Tick() then
// runs every stage in sequence, skipping the startup stage after its
// first completion.
package scheduler
