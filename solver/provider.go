package solver

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
)

// BodyAccessor is the solver's read/write view of rigid-body state. It
// mutates velocities in place across iterations, so callers must flush
// changes back to the World only once the whole solve completes.
type BodyAccessor interface {
	Body(e ecscore.Entity) (body2d.Body2D, bool)
	SetBody(e ecscore.Entity, b body2d.Body2D)
}
