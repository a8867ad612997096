package contactmat

import (
	"fmt"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/ecscore"
	"github.com/vornastek/ecsphys/fx"
	"github.com/vornastek/ecsphys/narrowphase"
)

// Build resolves materials and mixing rules for every contact in place,
// populating EffRest, MuS, and MuD (spec.md §4.7). worldDefault may be
// nil, meaning no world-default Material2D resource is set.
func Build(contacts []narrowphase.Contact1, provider BodyProvider, worldDefault *body2d.Material2D, table *body2d.MaterialTable2D) error {
	for i := range contacts {
		c := &contacts[i]

		matA := resolveMaterial(c.A, provider, worldDefault)
		matB := resolveMaterial(c.B, provider, worldDefault)
		rules := table.Resolve(matA.ID, matB.ID)

		// Material2D carries one friction value rather than separate
		// static/dynamic coefficients, so the same mixed value seeds
		// both μs and μd; the solver's Coulomb-cone clamp still treats
		// them as distinct inputs per spec.md §4.8.
		friction := rules.Friction.Mix(matA.Friction, matB.Friction)
		restitution := rules.Restitution.Mix(matA.Restitution, matB.Restitution)
		bounceThreshold := rules.BounceThreshold.Mix(matA.BounceThreshold, matB.BounceThreshold)

		bodyA, ok := provider.Body(c.A)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingBody, c.A)
		}
		bodyB, ok := provider.Body(c.B)
		if !ok {
			return fmt.Errorf("%w: %v", ErrMissingBody, c.B)
		}

		rAx, rAy := fx.Sub(c.PX, bodyA.PX), fx.Sub(c.PY, bodyA.PY)
		rBx, rBy := fx.Sub(c.PX, bodyB.PX), fx.Sub(c.PY, bodyB.PY)
		vAx, vAy := bodyA.VelocityAt(rAx, rAy)
		vBx, vBy := bodyB.VelocityAt(rBx, rBy)

		vn := fx.Dot(fx.Sub(vBx, vAx), fx.Sub(vBy, vAy), c.NX, c.NY)

		c.MuS = friction
		c.MuD = friction
		if vn < fx.Neg(bounceThreshold) {
			c.EffRest = restitution
		} else {
			c.EffRest = fx.Zero
		}
	}
	return nil
}

// resolveMaterial follows the lookup order of spec.md §4.7: the
// entity's own Material2D, then the world-default resource, then the
// built-in default.
func resolveMaterial(e ecscore.Entity, provider BodyProvider, worldDefault *body2d.Material2D) body2d.Material2D {
	if mat, ok := provider.Material(e); ok {
		return mat
	}
	if worldDefault != nil {
		return *worldDefault
	}
	return body2d.DefaultMaterial
}
