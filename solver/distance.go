package solver

import (
	"fmt"

	"github.com/vornastek/ecsphys/fx"
)

// distanceRow caches one distance joint's per-frame geometry: the unit
// axis between anchors and the effective mass along it.
type distanceRow struct {
	axisX, axisY fx.FX
	mass         fx.FX
	bias         fx.FX
}

// BuildDistanceRows precomputes axis, effective mass, and Baumgarte bias
// for every (non-broken) joint in joints, against dt.
func BuildDistanceRows(joints []DistanceJoint, bodies BodyAccessor, dt fx.FX) ([]distanceRow, error) {
	rows := make([]distanceRow, len(joints))
	for i, j := range joints {
		if j.Broken {
			continue
		}
		bodyA, ok := bodies.Body(j.A)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingBody, j.A)
		}
		bodyB, ok := bodies.Body(j.B)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingBody, j.B)
		}

		ax, ay := worldAnchor(bodyA, j.LocalAnchorAX, j.LocalAnchorAY)
		bx, by := worldAnchor(bodyB, j.LocalAnchorBX, j.LocalAnchorBY)
		dx, dy := fx.Sub(bx, ax), fx.Sub(by, ay)
		length := fx.Sqrt(fx.Add(fx.Mul(dx, dx), fx.Mul(dy, dy)))
		var nx, ny fx.FX
		if length > 0 {
			nx, ny = fx.Div(dx, length), fx.Div(dy, length)
		} else {
			nx, ny = fx.One, fx.Zero
		}

		rAx, rAy := worldOffset(bodyA, j.LocalAnchorAX, j.LocalAnchorAY)
		rBx, rBy := worldOffset(bodyB, j.LocalAnchorBX, j.LocalAnchorBY)
		crA := fx.Cross2D(rAx, rAy, nx, ny)
		crB := fx.Cross2D(rBx, rBy, nx, ny)
		k := fx.Add(fx.Add(bodyA.InvMass, bodyB.InvMass),
			fx.Add(fx.Mul(bodyA.InvInertia, fx.Mul(crA, crA)), fx.Mul(bodyB.InvInertia, fx.Mul(crB, crB))))
		mass := fx.Zero
		if k > 0 {
			mass = fx.Div(fx.One, k)
		}

		c := fx.Sub(length, j.RestLength)
		bias := fx.Div(fx.Mul(j.Baumgarte, c), dt)

		rows[i] = distanceRow{axisX: nx, axisY: ny, mass: mass, bias: bias}
	}
	return rows, nil
}

// SolveDistanceRows runs one Gauss-Seidel iteration over joints using
// the precomputed rows, skipping broken joints and marking any joint
// whose accumulated impulse exceeds its break threshold.
func SolveDistanceRows(joints []DistanceJoint, rows []distanceRow, bodies BodyAccessor) error {
	for i := range joints {
		j := &joints[i]
		if j.Broken {
			continue
		}
		row := rows[i]

		bodyA, ok := bodies.Body(j.A)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingBody, j.A)
		}
		bodyB, ok := bodies.Body(j.B)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingBody, j.B)
		}

		rAx, rAy := worldOffset(bodyA, j.LocalAnchorAX, j.LocalAnchorAY)
		rBx, rBy := worldOffset(bodyB, j.LocalAnchorBX, j.LocalAnchorBY)
		vAx, vAy := bodyA.VelocityAt(rAx, rAy)
		vBx, vBy := bodyB.VelocityAt(rBx, rBy)
		cdot := fx.Dot(fx.Sub(vBx, vAx), fx.Sub(vBy, vAy), row.axisX, row.axisY)

		lambda := fx.Neg(fx.Mul(row.mass, fx.Add(cdot, row.bias)))
		j.Impulse = fx.Add(j.Impulse, lambda)

		ix, iy := fx.Mul(lambda, row.axisX), fx.Mul(lambda, row.axisY)
		applyImpulse(&bodyA, rAx, rAy, ix, iy, fx.Neg(fx.One))
		applyImpulse(&bodyB, rBx, rBy, ix, iy, fx.One)

		bodies.SetBody(j.A, bodyA)
		bodies.SetBody(j.B, bodyB)

		checkBreak(&j.JointBase, fx.Abs(j.Impulse))
	}
	return nil
}

// checkBreak marks base broken once the accumulated impulse magnitude
// exceeds BreakImpulse, when BreakImpulse is positive (spec.md §4.8).
func checkBreak(base *JointBase, magnitude fx.FX) {
	if base.BreakImpulse > 0 && magnitude > base.BreakImpulse {
		base.Broken = true
	}
}
