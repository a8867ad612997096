package solver

import (
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// JointBase holds the fields common to every joint variant (spec.md §3).
type JointBase struct {
	A, B ecscore.Entity

	LocalAnchorAX, LocalAnchorAY fx.FX
	LocalAnchorBX, LocalAnchorBY fx.FX

	Baumgarte fx.FX // β, position-correction bias factor
	Softness  fx.FX // γ, constraint force mixing

	BreakImpulse fx.FX // threshold; zero means unbreakable
	Broken       bool
}

// Motor describes an optional speed-driven actuator on a joint axis.
type Motor struct {
	Enabled    bool
	Speed      fx.FX
	MaxImpulse fx.FX
}

// Limit describes an optional [Min, Max] range clamp on a joint's
// translational or angular freedom.
type Limit struct {
	Enabled bool
	Min     fx.FX
	Max     fx.FX
}

// DistanceJoint holds two bodies at a fixed rest length apart, measured
// between their local anchors.
type DistanceJoint struct {
	JointBase
	RestLength fx.FX
	Impulse    fx.FX // accumulated scalar impulse along the joint axis
}

// RevoluteJoint pins two bodies' anchors together at a shared point,
// optionally limiting or driving the relative angle.
type RevoluteJoint struct {
	JointBase
	Limit        Limit
	Motor        Motor
	Impulse      [2]fx.FX // accumulated point-constraint impulse
	MotorImpulse fx.FX
}

// PrismaticJoint constrains two bodies to slide along a shared local
// axis, locking relative rotation, optionally limited or motorized
// along that axis.
type PrismaticJoint struct {
	JointBase
	AxisX, AxisY fx.FX // local axis on A, sliding direction
	Limit        Limit
	Motor        Motor
	Impulse      [2]fx.FX // [perpendicular constraint, angular constraint]
	MotorImpulse fx.FX
}
