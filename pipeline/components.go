package pipeline

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/solver"
)

// Components holds the ComponentID every pipeline system needs, derived
// once at registry-build time. Callers construct a *ecscore.Registry,
// pass it to RegisterComponents, and keep the result alongside the
// Scheduler for the process lifetime.
type Components struct {
	Body2D      ecscore.ComponentID
	Shape2D     ecscore.ComponentID
	CircleWorld ecscore.ComponentID
	HullWorld   ecscore.ComponentID
	AABB2D      ecscore.ComponentID
	Material2D  ecscore.ComponentID
	SleepState  ecscore.ComponentID

	DistanceJoint  ecscore.ComponentID
	RevoluteJoint  ecscore.ComponentID
	PrismaticJoint ecscore.ComponentID
}

// RegisterComponents registers every component type the physics
// sub-pipeline reads or writes against reg, in the order the teacher's
// own composition-root registration functions use (one Register call
// per concept, grouped body-state first, then shapes/caches, then
// joints).
func RegisterComponents(reg *ecscore.Registry) Components {
	return Components{
		Body2D:         ecscore.Register[body2d.Body2D](reg, "Body2D"),
		Shape2D:        ecscore.Register[body2d.Shape2D](reg, "Shape2D"),
		CircleWorld:    ecscore.Register[body2d.CircleWorld2D](reg, "CircleWorld2D"),
		HullWorld:      ecscore.Register[body2d.HullWorld2D](reg, "HullWorld2D"),
		AABB2D:         ecscore.Register[body2d.AABB2D](reg, "AABB2D"),
		Material2D:     ecscore.Register[body2d.Material2D](reg, "Material2D"),
		SleepState:     ecscore.Register[body2d.SleepState](reg, "SleepState"),
		DistanceJoint:  ecscore.Register[solver.DistanceJoint](reg, "DistanceJoint"),
		RevoluteJoint:  ecscore.Register[solver.RevoluteJoint](reg, "RevoluteJoint"),
		PrismaticJoint: ecscore.Register[solver.PrismaticJoint](reg, "PrismaticJoint"),
	}
}
