package solver

import "github.com/vornastek/ecsphys/fx"

// Config tunes the iterative solver. Defaults match spec.md §4.8's
// documented typical range.
type Config struct {
	Iterations      int
	Baumgarte       fx.FX // bias factor β applied to penetration correction
	Slop            fx.FX // allowed penetration before bias kicks in
	SolverTimeScale fx.FX // defaults to fx.One; no function of this package reads it
}

// DefaultConfig returns the spec's suggested solver tuning: 10
// iterations, β=0.2, a small linear slop, full time scale.
func DefaultConfig() Config {
	return Config{
		Iterations:      10,
		Baumgarte:       fx.FromFloat64(0.2),
		Slop:            fx.FromFloat64(0.005),
		SolverTimeScale: fx.One,
	}
}
