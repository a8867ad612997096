package narrowphase

import (
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
)

// circleCircle is a distance test against the summed radii (each already
// including its shape's skin, per body2d.CircleWorld2D/SyncCircle).
// Returns ok=false when the circles do not overlap.
func circleCircle(a, b ecscore.Entity, ca, cb circleData) (Contact1, bool) {
	dx := fx.Sub(cb.CX, ca.CX)
	dy := fx.Sub(cb.CY, ca.CY)
	distSq := fx.Add(fx.Mul(dx, dx), fx.Mul(dy, dy))
	sumR := fx.Add(ca.Radius, cb.Radius)
	sumRSq := fx.Mul(sumR, sumR)
	if distSq > sumRSq {
		return Contact1{}, false
	}

	dist := fx.Sqrt(distSq)
	var nx, ny fx.FX
	if dist == 0 {
		nx, ny = fx.One, fx.Zero // degenerate: coincident centers, pick an arbitrary axis
	} else {
		nx, ny = fx.Div(dx, dist), fx.Div(dy, dist)
	}

	penetration := fx.Sub(sumR, dist)
	px := fx.Add(ca.CX, fx.Mul(nx, ca.Radius))
	py := fx.Add(ca.CY, fx.Mul(ny, ca.Radius))

	return Contact1{
		A: a, B: b,
		NX: nx, NY: ny,
		PX: px, PY: py,
		Penetration: penetration,
		FeatureID:   0,
	}, true
}

// circleData is the minimal circle geometry circleCircle/circleHull
// need, shared by both the true circle case and a hull's fallback
// point-as-circle path (radius zero).
type circleData struct {
	CX, CY fx.FX
	Radius fx.FX
}
