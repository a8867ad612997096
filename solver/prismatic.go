package solver

import (
	"fmt"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/fx"
)

// prismaticRow caches one prismatic joint's per-frame geometry: the
// combined perpendicular+angular 2x2 mass matrix and bias, plus the
// scalar axial effective mass used by the motor and limit.
type prismaticRow struct {
	axisX, axisY fx.FX // world-space sliding axis
	perpX, perpY fx.FX // axis rotated 90 degrees

	s1, s2 fx.FX // axial moment arms
	a1, a2 fx.FX // perpendicular moment arms (named to mirror Box2D)

	k         mat22
	biasPerp  fx.FX
	biasAngle fx.FX

	axialMass   fx.FX
	translation fx.FX
}

func worldAxis(b body2d.Body2D, lx, ly fx.FX) (x, y fx.FX) {
	cos, sin := b.Angle.Cos(), b.Angle.Sin()
	return fx.Sub(fx.Mul(lx, cos), fx.Mul(ly, sin)), fx.Add(fx.Mul(lx, sin), fx.Mul(ly, cos))
}

// BuildPrismaticRows precomputes axis, moment arms, effective masses and
// bias terms for every non-broken joint, following the standard
// perpendicular+angle-lock formulation (spec.md §4.8).
func BuildPrismaticRows(joints []PrismaticJoint, bodies BodyAccessor, dt fx.FX) ([]prismaticRow, error) {
	rows := make([]prismaticRow, len(joints))
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

		ux, uy := worldAxis(bodyA, j.AxisX, j.AxisY)
		perpX, perpY := fx.Neg(uy), ux

		rAx, rAy := worldOffset(bodyA, j.LocalAnchorAX, j.LocalAnchorAY)
		rBx, rBy := worldOffset(bodyB, j.LocalAnchorBX, j.LocalAnchorBY)

		ax, ay := worldAnchor(bodyA, j.LocalAnchorAX, j.LocalAnchorAY)
		bx, by := worldAnchor(bodyB, j.LocalAnchorBX, j.LocalAnchorBY)
		dx, dy := fx.Sub(bx, ax), fx.Sub(by, ay)

		// s1/s2: axial moment arms. a1/a2: perpendicular moment arms.
		s1 := fx.Cross2D(fx.Add(rAx, dx), fx.Add(rAy, dy), ux, uy)
		s2 := fx.Cross2D(rBx, rBy, ux, uy)
		a1 := fx.Cross2D(fx.Add(rAx, dx), fx.Add(rAy, dy), perpX, perpY)
		a2 := fx.Cross2D(rBx, rBy, perpX, perpY)

		invMass := fx.Add(bodyA.InvMass, bodyB.InvMass)
		k11 := fx.Add(invMass, fx.Add(fx.Mul(bodyA.InvInertia, fx.Mul(a1, a1)), fx.Mul(bodyB.InvInertia, fx.Mul(a2, a2))))
		k12 := fx.Add(fx.Mul(bodyA.InvInertia, a1), fx.Mul(bodyB.InvInertia, a2))
		k22 := fx.Add(bodyA.InvInertia, bodyB.InvInertia)
		if k22 == 0 {
			k22 = fx.One
		}

		m := mat22{A11: k11, A12: k12, A21: k12, A22: k22}

		cPerp := fx.Dot(dx, dy, perpX, perpY)
		cAngle := relativeAngleFX(bodyA.Angle, bodyB.Angle)

		axialK := fx.Add(invMass, fx.Add(fx.Mul(bodyA.InvInertia, fx.Mul(s1, s1)), fx.Mul(bodyB.InvInertia, fx.Mul(s2, s2))))
		axialMass := fx.Zero
		if axialK > 0 {
			axialMass = fx.Div(fx.One, axialK)
		}

		rows[i] = prismaticRow{
			axisX: ux, axisY: uy, perpX: perpX, perpY: perpY,
			s1: s1, s2: s2, a1: a1, a2: a2,
			k:         m.invert(),
			biasPerp:  fx.Div(fx.Mul(j.Baumgarte, cPerp), dt),
			biasAngle: fx.Div(fx.Mul(j.Baumgarte, cAngle), dt),
			axialMass: axialMass,
			translation: fx.Dot(dx, dy, ux, uy),
		}
	}
	return rows, nil
}

// SolvePrismaticRows runs one Gauss-Seidel iteration of the axial
// motor/limit followed by the perpendicular+angle-lock constraint, for
// every non-broken joint.
func SolvePrismaticRows(joints []PrismaticJoint, rows []prismaticRow, bodies BodyAccessor) error {
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

		if j.Motor.Enabled || j.Limit.Enabled {
			solvePrismaticAxial(j, &row, &bodyA, &bodyB)
		}

		cdot1 := fx.Add(fx.Sub(fx.Dot(bodyB.VX, bodyB.VY, row.perpX, row.perpY),
			fx.Dot(bodyA.VX, bodyA.VY, row.perpX, row.perpY)),
			fx.Add(fx.Mul(row.a2, bodyB.W), fx.Neg(fx.Mul(row.a1, bodyA.W))))
		cdot1 = fx.Add(cdot1, row.biasPerp)
		cdot2 := fx.Add(fx.Sub(bodyB.W, bodyA.W), row.biasAngle)

		impulse1, impulse2 := row.k.solve(fx.Neg(cdot1), fx.Neg(cdot2))
		j.Impulse[0] = fx.Add(j.Impulse[0], impulse1)
		j.Impulse[1] = fx.Add(j.Impulse[1], impulse2)

		pX, pY := fx.Mul(impulse1, row.perpX), fx.Mul(impulse1, row.perpY)
		lA := fx.Add(fx.Mul(impulse1, row.a1), impulse2)
		lB := fx.Add(fx.Mul(impulse1, row.a2), impulse2)

		bodyA.VX = fx.Sub(bodyA.VX, fx.Mul(bodyA.InvMass, pX))
		bodyA.VY = fx.Sub(bodyA.VY, fx.Mul(bodyA.InvMass, pY))
		bodyA.W = fx.Sub(bodyA.W, fx.Mul(bodyA.InvInertia, lA))

		bodyB.VX = fx.Add(bodyB.VX, fx.Mul(bodyB.InvMass, pX))
		bodyB.VY = fx.Add(bodyB.VY, fx.Mul(bodyB.InvMass, pY))
		bodyB.W = fx.Add(bodyB.W, fx.Mul(bodyB.InvInertia, lB))

		bodies.SetBody(j.A, bodyA)
		bodies.SetBody(j.B, bodyB)

		magnitude := fx.Sqrt(fx.Add(fx.Mul(j.Impulse[0], j.Impulse[0]), fx.Mul(j.Impulse[1], j.Impulse[1])))
		checkBreak(&j.JointBase, magnitude)
	}
	return nil
}

// solvePrismaticAxial applies the optional motor and limit constraints
// along the sliding axis. The limit takes priority over the motor once
// the translation sits outside [Min, Max].
func solvePrismaticAxial(j *PrismaticJoint, row *prismaticRow, bodyA, bodyB *body2d.Body2D) {
	if row.axialMass == 0 {
		return
	}

	axialCdot := func() fx.FX {
		return fx.Add(fx.Sub(fx.Dot(bodyB.VX, bodyB.VY, row.axisX, row.axisY),
			fx.Dot(bodyA.VX, bodyA.VY, row.axisX, row.axisY)),
			fx.Sub(fx.Mul(row.s2, bodyB.W), fx.Mul(row.s1, bodyA.W)))
	}

	applyAxial := func(lambda fx.FX) {
		ix, iy := fx.Mul(lambda, row.axisX), fx.Mul(lambda, row.axisY)
		bodyA.VX = fx.Sub(bodyA.VX, fx.Mul(bodyA.InvMass, ix))
		bodyA.VY = fx.Sub(bodyA.VY, fx.Mul(bodyA.InvMass, iy))
		bodyA.W = fx.Sub(bodyA.W, fx.Mul(bodyA.InvInertia, fx.Mul(lambda, row.s1)))
		bodyB.VX = fx.Add(bodyB.VX, fx.Mul(bodyB.InvMass, ix))
		bodyB.VY = fx.Add(bodyB.VY, fx.Mul(bodyB.InvMass, iy))
		bodyB.W = fx.Add(bodyB.W, fx.Mul(bodyB.InvInertia, fx.Mul(lambda, row.s2)))
	}

	if j.Limit.Enabled {
		if row.translation >= j.Limit.Max {
			c := fx.Sub(row.translation, j.Limit.Max)
			lambda := fx.Neg(fx.Mul(row.axialMass, fx.Add(axialCdot(), fx.Mul(j.Baumgarte, c))))
			oldImpulse := j.MotorImpulse
			j.MotorImpulse = fx.Min(fx.Add(oldImpulse, lambda), fx.Zero)
			applyAxial(fx.Sub(j.MotorImpulse, oldImpulse))
			return
		}
		if row.translation <= j.Limit.Min {
			c := fx.Sub(row.translation, j.Limit.Min)
			lambda := fx.Neg(fx.Mul(row.axialMass, fx.Add(axialCdot(), fx.Mul(j.Baumgarte, c))))
			oldImpulse := j.MotorImpulse
			j.MotorImpulse = fx.Max(fx.Add(oldImpulse, lambda), fx.Zero)
			applyAxial(fx.Sub(j.MotorImpulse, oldImpulse))
			return
		}
	}

	if j.Motor.Enabled {
		lambda := fx.Neg(fx.Mul(row.axialMass, fx.Sub(axialCdot(), j.Motor.Speed)))
		oldImpulse := j.MotorImpulse
		j.MotorImpulse = fx.Clamp(fx.Add(oldImpulse, lambda), fx.Neg(j.Motor.MaxImpulse), j.Motor.MaxImpulse)
		applyAxial(fx.Sub(j.MotorImpulse, oldImpulse))
	}
}
