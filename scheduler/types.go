package scheduler

import (
	"github.com/vornastek/ecsphys/cmdbuf"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/world"
)

// Stage names the five fixed scheduling phases a Scheduler runs every
// tick, in this order (spec.md §4.1). Startup systems run exactly once,
// on the first Tick call.
type Stage int

const (
	StageStartup Stage = iota
	StagePreUpdate
	StageUpdate
	StagePostUpdate
	StageCleanup

	stageCount
)

// String renders a Stage name for error messages and profiler keys.
func (s Stage) String() string {
	switch s {
	case StageStartup:
		return "startup"
	case StagePreUpdate:
		return "pre_update"
	case StageUpdate:
		return "update"
	case StagePostUpdate:
		return "post_update"
	case StageCleanup:
		return "cleanup"
	default:
		return "unknown_stage"
	}
}

// FlushPolicy controls when a system's queued CommandBuffer mutations are
// applied to the World.
type FlushPolicy int

const (
	// FlushAfterEach applies the command buffer immediately after the
	// system that wrote to it returns.
	FlushAfterEach FlushPolicy = iota
	// FlushAfterStage defers application until every system in the
	// current stage has run.
	FlushAfterStage
)

// Context is handed to every SystemFunc. Commands queues structural
// mutations; Frame mirrors world.World's frame counter, which Tick
// advances, and DeltaTime is the dt passed to Tick, so a system need not
// reach through World for them.
type Context struct {
	World     *world.World
	Commands  *cmdbuf.CommandBuffer
	Frame      uint64
	DeltaTime fx.FX
	Stage     Stage
}

// SystemFunc is one scheduled unit of work. A non-nil error is recorded
// by the Profiler and logged; it never aborts the remainder of the
// stage.
type SystemFunc func(ctx *Context) error

// RunIf gates a system's execution. A panic inside RunIf is recovered
// and treated as false, the same as a predicate returning false.
type RunIf func(ctx *Context) bool

// SystemConfig declares one system's placement in the dependency graph.
//
// Before and After may each name either another system's Name or a
// set's name; Sets declares which named sets this system is itself a
// member of. A set is a virtual node: declaring Before/After against it
// orders the caller against every current and future member, without
// every system needing to know every other system's name (spec.md
// §4.4).
type SystemConfig struct {
	Name  string
	Stage Stage
	Fn    SystemFunc

	Before []string
	After  []string
	Sets   []string

	RunIf RunIf
	Flush FlushPolicy
}
