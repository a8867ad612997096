package integrate

import (
	"fmt"

	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// Integrate advances every awake, non-immovable body's pose by its
// velocity over dt*scale: px += vx·(Δt·scale), py += vy·(Δt·scale),
// angle += w·(Δt·scale) wrapped modulo a full turn (spec.md §4.10).
//
// World-shape caches need no separate invalidation step here: they are
// stamped with the frame they were last synced against
// (body2d.SyncCircle/SyncHull), and the scheduler increments the frame
// counter once per tick, so next tick's sync sees every cache as stale
// by body2d.Stale's own epoch-vs-frame comparison.
func Integrate(entities []ecscore.Entity, bodies BodyAccessor, dt, scale fx.FX) error {
	step := fx.Mul(dt, scale)
	for _, e := range entities {
		b, ok := bodies.Body(e)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingBody, e)
		}
		if !b.Awake || b.Immovable() {
			continue
		}

		b.PX = fx.Add(b.PX, fx.Mul(b.VX, step))
		b.PY = fx.Add(b.PY, fx.Mul(b.VY, step))

		angleDelta := fx.Mul(b.W, step)
		b.Angle = b.Angle.Add(fx.NormalizeAngle(int32(angleDelta)))

		bodies.SetBody(e, b)
	}
	return nil
}
