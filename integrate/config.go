package integrate

import "github.com/vornastek/ecsphys/fx"

// Config tunes velocity integration and the sleep/wake transition
// (spec.md §4.10).
type Config struct {
	// Scale defaults to fx.One. Neither Integrate (which takes its
	// scale as an argument) nor Tick reads this field.
	Scale fx.FX

	LinearSleepThreshold  fx.FX // Lθ
	AngularSleepThreshold fx.FX // Aθ
	TimeToSleep           fx.FX // seconds below both thresholds before sleeping

	ImpulseWake fx.FX // an applied impulse past this always wakes
	WakeBias    fx.FX // a velocity past WakeBias*threshold wakes
}

// DefaultConfig returns conservative thresholds: small linear/angular
// sleep velocities, half a second to sleep, and a wake bias equal to
// the sleep threshold itself (any velocity above it wakes).
func DefaultConfig() Config {
	return Config{
		Scale:                 fx.One,
		LinearSleepThreshold:  fx.FromFloat64(0.01),
		AngularSleepThreshold: fx.FromFloat64(0.01),
		TimeToSleep:           fx.FromFloat64(0.5),
		ImpulseWake:           fx.FromFloat64(0.05),
		WakeBias:              fx.One,
	}
}
