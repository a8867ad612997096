package solver

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/fx"
)

// applyImpulse mutates a body's linear and angular velocity by a linear
// impulse (ix, iy) applied at offset (rx, ry) from its center, scaled by
// sign (+1 or -1, letting the same helper serve both sides of a
// constraint).
func applyImpulse(b *body2d.Body2D, rx, ry, ix, iy fx.FX, sign fx.FX) {
	b.VX = fx.Add(b.VX, fx.Mul(sign, fx.Mul(b.InvMass, ix)))
	b.VY = fx.Add(b.VY, fx.Mul(sign, fx.Mul(b.InvMass, iy)))
	b.W = fx.Add(b.W, fx.Mul(sign, fx.Mul(b.InvInertia, fx.Cross2D(rx, ry, ix, iy))))
}

// applyAngularImpulse mutates only angular velocity, for constraints
// with no linear component (revolute motors and limits).
func applyAngularImpulse(b *body2d.Body2D, impulse, sign fx.FX) {
	b.W = fx.Add(b.W, fx.Mul(sign, fx.Mul(b.InvInertia, impulse)))
}
