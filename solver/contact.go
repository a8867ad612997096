package solver

import (
	"fmt"

	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/narrowphase"
)

// tangent returns the unit tangent (-ny, nx) for a unit normal (nx, ny).
func tangent(nx, ny fx.FX) (tx, ty fx.FX) {
	return fx.Neg(ny), nx
}

// WarmStart re-applies each contact's cached jn/jt impulses to seed the
// solver from the previous frame's converged state (spec.md §4.8).
func WarmStart(contacts []narrowphase.Contact1, bodies BodyAccessor) error {
	for _, c := range contacts {
		if err := applyContactImpulse(c, c.Jn, c.Jt, bodies); err != nil {
			return err
		}
	}
	return nil
}

func applyContactImpulse(c narrowphase.Contact1, jn, jt fx.FX, bodies BodyAccessor) error {
	bodyA, ok := bodies.Body(c.A)
	if !ok {
		return fmt.Errorf("%w: %v", ErrMissingBody, c.A)
	}
	bodyB, ok := bodies.Body(c.B)
	if !ok {
		return fmt.Errorf("%w: %v", ErrMissingBody, c.B)
	}

	tx, ty := tangent(c.NX, c.NY)
	ix := fx.Add(fx.Mul(jn, c.NX), fx.Mul(jt, tx))
	iy := fx.Add(fx.Mul(jn, c.NY), fx.Mul(jt, ty))

	rAx, rAy := fx.Sub(c.PX, bodyA.PX), fx.Sub(c.PY, bodyA.PY)
	rBx, rBy := fx.Sub(c.PX, bodyB.PX), fx.Sub(c.PY, bodyB.PY)

	applyImpulse(&bodyA, rAx, rAy, ix, iy, fx.Neg(fx.One))
	applyImpulse(&bodyB, rBx, rBy, ix, iy, fx.One)

	bodies.SetBody(c.A, bodyA)
	bodies.SetBody(c.B, bodyB)
	return nil
}

// Iterate runs one Gauss-Seidel pass over every contact: normal impulse
// with Baumgarte bias and restitution bias, clamped non-negative, then
// friction clamped within the Coulomb cone ±μd·jn (spec.md §4.8).
func Iterate(contacts []narrowphase.Contact1, bodies BodyAccessor, dt fx.FX, cfg Config) error {
	for i := range contacts {
		c := &contacts[i]
		bodyA, ok := bodies.Body(c.A)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingBody, c.A)
		}
		bodyB, ok := bodies.Body(c.B)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingBody, c.B)
		}

		rAx, rAy := fx.Sub(c.PX, bodyA.PX), fx.Sub(c.PY, bodyA.PY)
		rBx, rBy := fx.Sub(c.PX, bodyB.PX), fx.Sub(c.PY, bodyB.PY)

		rnA := fx.Cross2D(rAx, rAy, c.NX, c.NY)
		rnB := fx.Cross2D(rBx, rBy, c.NX, c.NY)
		kNormal := fx.Add(fx.Add(bodyA.InvMass, bodyB.InvMass),
			fx.Add(fx.Mul(bodyA.InvInertia, fx.Mul(rnA, rnA)), fx.Mul(bodyB.InvInertia, fx.Mul(rnB, rnB))))
		if kNormal <= 0 {
			continue
		}
		mN := fx.Div(fx.One, kNormal)

		vAx, vAy := bodyA.VelocityAt(rAx, rAy)
		vBx, vBy := bodyB.VelocityAt(rBx, rBy)
		vn := fx.Dot(fx.Sub(vBx, vAx), fx.Sub(vBy, vAy), c.NX, c.NY)

		penetration := fx.Max(fx.Sub(c.Penetration, cfg.Slop), fx.Zero)
		bias := fx.Div(fx.Mul(cfg.Baumgarte, penetration), dt)
		bias = fx.Sub(bias, fx.Mul(c.EffRest, fx.Max(fx.Neg(vn), fx.Zero)))

		lambda := fx.Neg(fx.Mul(mN, fx.Add(vn, bias)))
		newJn := fx.Max(fx.Zero, fx.Add(c.Jn, lambda))
		delta := fx.Sub(newJn, c.Jn)
		c.Jn = newJn

		tx, ty := tangent(c.NX, c.NY)
		ix, iy := fx.Mul(delta, c.NX), fx.Mul(delta, c.NY)
		applyImpulse(&bodyA, rAx, rAy, ix, iy, fx.Neg(fx.One))
		applyImpulse(&bodyB, rBx, rBy, ix, iy, fx.One)

		// Friction, using the (now normal-updated) velocity.
		vAx, vAy = bodyA.VelocityAt(rAx, rAy)
		vBx, vBy = bodyB.VelocityAt(rBx, rBy)
		vt := fx.Dot(fx.Sub(vBx, vAx), fx.Sub(vBy, vAy), tx, ty)

		rtA := fx.Cross2D(rAx, rAy, tx, ty)
		rtB := fx.Cross2D(rBx, rBy, tx, ty)
		kTangent := fx.Add(fx.Add(bodyA.InvMass, bodyB.InvMass),
			fx.Add(fx.Mul(bodyA.InvInertia, fx.Mul(rtA, rtA)), fx.Mul(bodyB.InvInertia, fx.Mul(rtB, rtB))))

		if kTangent > 0 {
			mT := fx.Div(fx.One, kTangent)
			lambdaT := fx.Neg(fx.Mul(mT, vt))
			maxFriction := fx.Mul(c.MuD, c.Jn)
			newJt := fx.Clamp(fx.Add(c.Jt, lambdaT), fx.Neg(maxFriction), maxFriction)
			deltaT := fx.Sub(newJt, c.Jt)
			c.Jt = newJt

			itx, ity := fx.Mul(deltaT, tx), fx.Mul(deltaT, ty)
			applyImpulse(&bodyA, rAx, rAy, itx, ity, fx.Neg(fx.One))
			applyImpulse(&bodyB, rBx, rBy, itx, ity, fx.One)
		}

		bodies.SetBody(c.A, bodyA)
		bodies.SetBody(c.B, bodyB)
	}
	return nil
}
