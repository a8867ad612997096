package solver

import (
	"fmt"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/fx"
)

// revoluteRow caches one revolute joint's per-frame geometry: the 2x2
// inverse effective mass for the point constraint, its position bias,
// and the scalar angular effective mass shared by the limit and motor.
type revoluteRow struct {
	rAx, rAy, rBx, rBy fx.FX
	invK               mat22
	biasX, biasY       fx.FX
	angularMass        fx.FX
	relAngle           fx.FX
}

// relativeAngleFX returns B's angle minus A's angle as a signed turn
// fraction in [-0.5, 0.5). fx.Angle's 16-bit encoding and fx.FX's 16
// fractional bits share the same scale, so the wrapped int16 difference
// is already a valid FX value — no trigonometry needed.
func relativeAngleFX(a, b fx.Angle) fx.FX {
	delta := int16(uint16(b) - uint16(a))
	return fx.FX(delta)
}

// BuildRevoluteRows precomputes the point-constraint mass matrix, bias,
// and angular effective mass for every non-broken joint.
func BuildRevoluteRows(joints []RevoluteJoint, bodies BodyAccessor, dt fx.FX) ([]revoluteRow, error) {
	rows := make([]revoluteRow, len(joints))
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

		rAx, rAy := worldOffset(bodyA, j.LocalAnchorAX, j.LocalAnchorAY)
		rBx, rBy := worldOffset(bodyB, j.LocalAnchorBX, j.LocalAnchorBY)

		invMass := fx.Add(bodyA.InvMass, bodyB.InvMass)
		k := mat22{
			A11: fx.Add(invMass, fx.Add(fx.Mul(bodyA.InvInertia, fx.Mul(rAy, rAy)), fx.Mul(bodyB.InvInertia, fx.Mul(rBy, rBy)))),
			A12: fx.Neg(fx.Add(fx.Mul(bodyA.InvInertia, fx.Mul(rAx, rAy)), fx.Mul(bodyB.InvInertia, fx.Mul(rBx, rBy)))),
			A21: fx.Neg(fx.Add(fx.Mul(bodyA.InvInertia, fx.Mul(rAx, rAy)), fx.Mul(bodyB.InvInertia, fx.Mul(rBx, rBy)))),
			A22: fx.Add(invMass, fx.Add(fx.Mul(bodyA.InvInertia, fx.Mul(rAx, rAx)), fx.Mul(bodyB.InvInertia, fx.Mul(rBx, rBx)))),
		}

		ax, ay := worldAnchor(bodyA, j.LocalAnchorAX, j.LocalAnchorAY)
		bx, by := worldAnchor(bodyB, j.LocalAnchorBX, j.LocalAnchorBY)
		cx, cy := fx.Sub(bx, ax), fx.Sub(by, ay)
		biasX := fx.Div(fx.Mul(j.Baumgarte, cx), dt)
		biasY := fx.Div(fx.Mul(j.Baumgarte, cy), dt)

		angK := fx.Add(bodyA.InvInertia, bodyB.InvInertia)
		angMass := fx.Zero
		if angK > 0 {
			angMass = fx.Div(fx.One, angK)
		}

		rows[i] = revoluteRow{
			rAx: rAx, rAy: rAy, rBx: rBx, rBy: rBy,
			invK: k.invert(), biasX: biasX, biasY: biasY,
			angularMass: angMass,
			relAngle:    relativeAngleFX(bodyA.Angle, bodyB.Angle),
		}
	}
	return rows, nil
}

// SolveRevoluteRows runs one Gauss-Seidel iteration of the point
// constraint, then the angular motor/limit constraint, for every
// non-broken joint.
func SolveRevoluteRows(joints []RevoluteJoint, rows []revoluteRow, bodies BodyAccessor) error {
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

		// Angular motor/limit first, since it only touches angular velocity.
		if j.Motor.Enabled || j.Limit.Enabled {
			solveRevoluteAngular(j, &row, &bodyA, &bodyB)
		}

		vAx, vAy := bodyA.VelocityAt(row.rAx, row.rAy)
		vBx, vBy := bodyB.VelocityAt(row.rBx, row.rBy)
		cdotX := fx.Add(fx.Sub(vBx, vAx), row.biasX)
		cdotY := fx.Add(fx.Sub(vBy, vAy), row.biasY)

		ix, iy := row.invK.solve(fx.Neg(cdotX), fx.Neg(cdotY))
		j.Impulse[0] = fx.Add(j.Impulse[0], ix)
		j.Impulse[1] = fx.Add(j.Impulse[1], iy)

		applyImpulse(&bodyA, row.rAx, row.rAy, ix, iy, fx.Neg(fx.One))
		applyImpulse(&bodyB, row.rBx, row.rBy, ix, iy, fx.One)

		bodies.SetBody(j.A, bodyA)
		bodies.SetBody(j.B, bodyB)

		magnitude := fx.Sqrt(fx.Add(fx.Mul(j.Impulse[0], j.Impulse[0]), fx.Mul(j.Impulse[1], j.Impulse[1])))
		checkBreak(&j.JointBase, magnitude)
	}
	return nil
}

// solveRevoluteAngular applies the optional motor and limit constraints,
// which only affect angular velocity. The limit takes priority: once the
// relative angle sits outside [Min, Max], the motor is suppressed on
// that side, matching the common revolute-joint convention.
func solveRevoluteAngular(j *RevoluteJoint, row *revoluteRow, bodyA, bodyB *body2d.Body2D) {
	if row.angularMass == 0 {
		return
	}

	if j.Limit.Enabled {
		if row.relAngle >= j.Limit.Max {
			cdot := fx.Sub(bodyB.W, bodyA.W)
			c := fx.Sub(row.relAngle, j.Limit.Max)
			lambda := fx.Neg(fx.Mul(row.angularMass, fx.Add(cdot, fx.Mul(j.Baumgarte, c))))
			oldImpulse := j.MotorImpulse
			j.MotorImpulse = fx.Min(fx.Add(oldImpulse, lambda), fx.Zero)
			lambda = fx.Sub(j.MotorImpulse, oldImpulse)
			applyAngularImpulse(bodyA, lambda, fx.Neg(fx.One))
			applyAngularImpulse(bodyB, lambda, fx.One)
			return
		}
		if row.relAngle <= j.Limit.Min {
			cdot := fx.Sub(bodyB.W, bodyA.W)
			c := fx.Sub(row.relAngle, j.Limit.Min)
			lambda := fx.Neg(fx.Mul(row.angularMass, fx.Add(cdot, fx.Mul(j.Baumgarte, c))))
			oldImpulse := j.MotorImpulse
			j.MotorImpulse = fx.Max(fx.Add(oldImpulse, lambda), fx.Zero)
			lambda = fx.Sub(j.MotorImpulse, oldImpulse)
			applyAngularImpulse(bodyA, lambda, fx.Neg(fx.One))
			applyAngularImpulse(bodyB, lambda, fx.One)
			return
		}
	}

	if j.Motor.Enabled {
		cdot := fx.Sub(fx.Sub(bodyB.W, bodyA.W), j.Motor.Speed)
		lambda := fx.Neg(fx.Mul(row.angularMass, cdot))
		oldImpulse := j.MotorImpulse
		maxImpulse := j.Motor.MaxImpulse
		j.MotorImpulse = fx.Clamp(fx.Add(oldImpulse, lambda), fx.Neg(maxImpulse), maxImpulse)
		lambda = fx.Sub(j.MotorImpulse, oldImpulse)
		applyAngularImpulse(bodyA, lambda, fx.Neg(fx.One))
		applyAngularImpulse(bodyB, lambda, fx.One)
	}
}
