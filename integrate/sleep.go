package integrate

import (
	"fmt"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// Tick advances every awake, movable body's below-threshold timer and
// puts it to sleep once it has sat below both the linear and angular
// sleep thresholds for at least cfg.TimeToSleep (spec.md §4.10).
// Sleeping bodies have their velocity forced to zero.
func Tick(entities []ecscore.Entity, bodies BodyAccessor, cfg Config, dt fx.FX) error {
	for _, e := range entities {
		b, ok := bodies.Body(e)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingBody, e)
		}
		if !b.Awake || b.Immovable() {
			continue
		}

		state, _ := bodies.SleepState(e)

		linSpeed := fx.Sqrt(fx.Add(fx.Mul(b.VX, b.VX), fx.Mul(b.VY, b.VY)))
		angSpeed := fx.Abs(b.W)

		if linSpeed < cfg.LinearSleepThreshold && angSpeed < cfg.AngularSleepThreshold {
			state.BelowThresholdTime = fx.Add(state.BelowThresholdTime, dt)
		} else {
			state.BelowThresholdTime = fx.Zero
		}

		if state.BelowThresholdTime >= cfg.TimeToSleep {
			b.Awake = false
			b.VX, b.VY, b.W = fx.Zero, fx.Zero, fx.Zero
			state.BelowThresholdTime = fx.Zero
			bodies.SetBody(e, b)
		}

		bodies.SetSleepState(e, state)
	}
	return nil
}

// WakeFromImpulse wakes e if it is sleeping and the magnitude of an
// impulse applied to it exceeds cfg.ImpulseWake, clearing its timer.
func WakeFromImpulse(e ecscore.Entity, impulseMagnitude fx.FX, bodies BodyAccessor, cfg Config) error {
	if impulseMagnitude <= cfg.ImpulseWake {
		return nil
	}
	return wake(e, bodies)
}

// WakeFromVelocity wakes e if it is sleeping and its own velocity
// crosses cfg.WakeBias times the sleep thresholds — used when an
// integration or a direct velocity write (not an impulse) moves a
// sleeping body, e.g. a kinematic driver.
func WakeFromVelocity(e ecscore.Entity, bodies BodyAccessor, cfg Config) error {
	b, ok := bodies.Body(e)
	if !ok {
		return fmt.Errorf("%w: %v", ErrMissingBody, e)
	}
	if b.Awake {
		return nil
	}
	linSpeed := fx.Sqrt(fx.Add(fx.Mul(b.VX, b.VX), fx.Mul(b.VY, b.VY)))
	angSpeed := fx.Abs(b.W)
	if linSpeed > fx.Mul(cfg.WakeBias, cfg.LinearSleepThreshold) || angSpeed > fx.Mul(cfg.WakeBias, cfg.AngularSleepThreshold) {
		return wake(e, bodies)
	}
	return nil
}

func wake(e ecscore.Entity, bodies BodyAccessor) error {
	b, ok := bodies.Body(e)
	if !ok {
		return fmt.Errorf("%w: %v", ErrMissingBody, e)
	}
	b.Awake = true
	bodies.SetBody(e, b)
	bodies.SetSleepState(e, body2d.SleepState{})
	return nil
}

// ResolveJointWake implements spec.md §4.10's joint/sleep coupling: if
// exactly one endpoint is asleep, it wakes; if both are asleep, the
// joint should be skipped entirely this frame (the second return
// value).
func ResolveJointWake(a, b ecscore.Entity, bodies BodyAccessor) (skip bool, err error) {
	bodyA, ok := bodies.Body(a)
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrMissingBody, a)
	}
	bodyB, ok := bodies.Body(b)
	if !ok {
		return false, fmt.Errorf("%w: %v", ErrMissingBody, b)
	}

	if !bodyA.Awake && !bodyB.Awake {
		return true, nil
	}
	if !bodyA.Awake {
		if err := wake(a, bodies); err != nil {
			return false, err
		}
	}
	if !bodyB.Awake {
		if err := wake(b, bodies); err != nil {
			return false, err
		}
	}
	return false, nil
}
