package ccd

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
)

// BodyProvider is ccd's read view of rigid-body pose, velocity, and
// collision shape.
type BodyProvider interface {
	Body(e ecscore.Entity) (body2d.Body2D, bool)
	Shape(e ecscore.Entity) (body2d.Shape2D, bool)
}
