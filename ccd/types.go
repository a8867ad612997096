package ccd

import (
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// TOIEvent is one predicted time-of-impact between two bodies over the
// current step: {A, B, t in [0,1], world normal, world contact point}
// (spec.md §3).
type TOIEvent struct {
	A, B   ecscore.Entity
	T      fx.FX
	NX, NY fx.FX
	PX, PY fx.FX
}

// Config tunes fast-body detection for CCD (spec.md §4.9).
type Config struct {
	// FastSpeedFactor gates which pairs get a sweep test: a body is
	// "fast" when |v|*dt exceeds its bounding radius times this
	// factor, i.e. it could tunnel through something its own size in
	// one step.
	FastSpeedFactor fx.FX
}

// DefaultConfig returns a factor of 1, the natural tunneling threshold.
func DefaultConfig() Config {
	return Config{FastSpeedFactor: fx.One}
}
