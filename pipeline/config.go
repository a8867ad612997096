package pipeline

import (
	"github.com/vornastek/ecsphys/ccd"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/integrate"
	"github.com/vornastek/ecsphys/solver"
)

// Config aggregates every sub-package's own tuning Config plus the
// broadphase AABB margin spec.md §4.5 names ("absorb one frame of
// motion without re-sorting every tick").
type Config struct {
	BroadphaseMargin fx.FX

	Solver    solver.Config
	CCD       ccd.Config
	Integrate integrate.Config
}

// DefaultConfig returns every sub-package's own documented default,
// plus a broadphase margin of 0.1 world units.
func DefaultConfig() Config {
	return Config{
		BroadphaseMargin: fx.FromFloat64(0.1),
		Solver:           solver.DefaultConfig(),
		CCD:              ccd.DefaultConfig(),
		Integrate:        integrate.DefaultConfig(),
	}
}

// SolverTimeScale is the world resource the TOI mini-solve swaps to a
// sub-unit value for its single Integrate pass over the remaining
// fraction of the step, and that Integrate otherwise reads as fx.One
// (spec.md §4.9, §4.10).
type SolverTimeScale fx.FX
