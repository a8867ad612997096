// Package world implements the World aggregate: the owning object for
// entity storage, resources, the frame counter, and structural-change
// channels (spec.md §3). It wraps an *ecscore.Store with resources and
// frame bookkeeping, and applies structural edits directly (as opposed
// to package cmdbuf, which defers them through a CommandBuffer for use
// during query iteration).
package world
