package integrate

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
)

// BodyAccessor is integrate's read/write view of a body's pose,
// velocity, and per-body sleep timer.
type BodyAccessor interface {
	Body(e ecscore.Entity) (body2d.Body2D, bool)
	SetBody(e ecscore.Entity, b body2d.Body2D)

	SleepState(e ecscore.Entity) (body2d.SleepState, bool)
	SetSleepState(e ecscore.Entity, s body2d.SleepState)
}
