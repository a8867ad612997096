// Package cmdbuf implements deferred structural edits and the
// event channels that report them: CommandBuffer plus the Added/Removed
// channels described in spec.md §4.3.
//
// Direct structural mutation during query iteration is forbidden (it
// would invalidate the archetype rows a query is iterating); instead a
// system records AddComponent/RemoveComponent/Destroy/CreateEntity
// operations into a CommandBuffer, and the scheduler flushes it — in
// submission order, under a single critical section — once the system
// finishes or once the stage finishes, depending on flush policy.
package cmdbuf
