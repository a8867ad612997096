// Package integrate advances awake bodies by their velocities each
// tick and manages the awake/sleeping transition (spec.md §4.10).
// World-shape caches are not touched here; they go stale through the
// world frame counter.
package integrate
