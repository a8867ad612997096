package solver

import (
	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/fx"
)

// worldAnchor rotates a local anchor by b's current angle and adds its
// position, giving the anchor's current world-space location.
func worldAnchor(b body2d.Body2D, lx, ly fx.FX) (x, y fx.FX) {
	cos, sin := b.Angle.Cos(), b.Angle.Sin()
	rx := fx.Sub(fx.Mul(lx, cos), fx.Mul(ly, sin))
	ry := fx.Add(fx.Mul(lx, sin), fx.Mul(ly, cos))
	return fx.Add(b.PX, rx), fx.Add(b.PY, ry)
}

// worldOffset is worldAnchor minus the body's own position: the anchor
// expressed relative to the center of mass, used as the r vector in
// impulse/angular-velocity formulas.
func worldOffset(b body2d.Body2D, lx, ly fx.FX) (x, y fx.FX) {
	wx, wy := worldAnchor(b, lx, ly)
	return fx.Sub(wx, b.PX), fx.Sub(wy, b.PY)
}
