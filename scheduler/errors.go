package scheduler

import "errors"

var (
	// ErrUnknownStage is returned when a SystemConfig names a Stage this
	// Scheduler was not built with.
	ErrUnknownStage = errors.New("scheduler: unknown stage")

	// ErrDuplicateSystem is returned when two systems register under the
	// same Name, whichever stages they are in.
	ErrDuplicateSystem = errors.New("scheduler: duplicate system name")

	// ErrCycle is returned by Build when a stage's dependency graph
	// retains unresolved edges after Kahn's algorithm terminates.
	ErrCycle = errors.New("scheduler: dependency cycle")

	// ErrNotBuilt is returned by Tick if called before Build.
	ErrNotBuilt = errors.New("scheduler: Build must run before Tick")
)
