package ccd

import (
	"fmt"

	"github.com/vornastek/ecsphys/body2d"
	"github.com/vornastek/ecsphys/broadphase"
	"github.com/vornastek/ecsphys/fx"
)

// centerOffset returns a shape's local-space center relative to the
// body origin: a circle's own offset, or the origin for a hull.
func centerOffset(s body2d.Shape2D) (x, y fx.FX) {
	if s.Kind == body2d.ShapeCircle {
		return s.OffsetX, s.OffsetY
	}
	return fx.Zero, fx.Zero
}

// boundingRadius returns the radius of the smallest circle centered on
// centerOffset that contains s, plus its skin. For a hull this is the
// farthest vertex from the body origin — a conservative bound used only
// to gate and sweep-test CCD candidates, not for resting contacts.
func boundingRadius(s body2d.Shape2D) fx.FX {
	if s.Kind == body2d.ShapeCircle {
		return fx.Add(s.Radius, s.Skin)
	}
	max := fx.Zero
	for i := 0; i < s.VertexCount; i++ {
		v := s.Vertices[i]
		d := fx.Sqrt(fx.Add(fx.Mul(v.X, v.X), fx.Mul(v.Y, v.Y)))
		if d > max {
			max = d
		}
	}
	return fx.Add(max, s.Skin)
}

// isFast reports whether a body's displacement this step could tunnel
// through something its own size, per cfg.FastSpeedFactor.
func isFast(vx, vy, radius, dt fx.FX, cfg Config) bool {
	if radius <= 0 {
		return false
	}
	dx, dy := fx.Mul(vx, dt), fx.Mul(vy, dt)
	displacement := fx.Sqrt(fx.Add(fx.Mul(dx, dx), fx.Mul(dy, dy)))
	return displacement > fx.Mul(radius, cfg.FastSpeedFactor)
}

// Detect runs a swept-circle conservative-advancement test over every
// broadphase pair with at least one fast-moving body, returning one
// TOIEvent per pair that collides within (0, 1] of the step (spec.md
// §4.9). Bodies already overlapping at t=0 are left to the discrete
// narrowphase/solver path and are not reported here.
func Detect(pairs []broadphase.Pair, bodies BodyProvider, dt fx.FX, cfg Config) ([]TOIEvent, error) {
	var events []TOIEvent
	for _, pair := range pairs {
		bodyA, ok := bodies.Body(pair.A)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingBody, pair.A)
		}
		bodyB, ok := bodies.Body(pair.B)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingBody, pair.B)
		}
		shapeA, ok := bodies.Shape(pair.A)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.A)
		}
		shapeB, ok := bodies.Shape(pair.B)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrMissingShapeData, pair.B)
		}

		radiusA := boundingRadius(shapeA)
		radiusB := boundingRadius(shapeB)
		fastA := isFast(bodyA.VX, bodyA.VY, radiusA, dt, cfg)
		fastB := isFast(bodyB.VX, bodyB.VY, radiusB, dt, cfg)
		if !fastA && !fastB {
			continue
		}

		offAX, offAY := centerOffset(shapeA)
		offBX, offBY := centerOffset(shapeB)
		centerAX, centerAY := fx.Add(bodyA.PX, offAX), fx.Add(bodyA.PY, offAY)
		centerBX, centerBY := fx.Add(bodyB.PX, offBX), fx.Add(bodyB.PY, offBY)

		dx0, dy0 := fx.Sub(centerBX, centerAX), fx.Sub(centerBY, centerAY)
		// Relative displacement over the whole step, so t is a fraction
		// of dt rather than a time in seconds.
		vx := fx.Mul(fx.Sub(bodyB.VX, bodyA.VX), dt)
		vy := fx.Mul(fx.Sub(bodyB.VY, bodyA.VY), dt)
		sumR := fx.Add(radiusA, radiusB)

		t, hit := sweepTOI(dx0, dy0, vx, vy, sumR, dt)
		if !hit {
			continue
		}

		dx, dy := fx.Add(dx0, fx.Mul(vx, t)), fx.Add(dy0, fx.Mul(vy, t))
		dist := fx.Sqrt(fx.Add(fx.Mul(dx, dx), fx.Mul(dy, dy)))
		var nx, ny fx.FX
		if dist > 0 {
			nx, ny = fx.Div(dx, dist), fx.Div(dy, dist)
		} else {
			nx, ny = fx.One, fx.Zero
		}

		advAX := fx.Add(centerAX, fx.Mul(fx.Mul(bodyA.VX, dt), t))
		advAY := fx.Add(centerAY, fx.Mul(fx.Mul(bodyA.VY, dt), t))
		px := fx.Add(advAX, fx.Mul(nx, radiusA))
		py := fx.Add(advAY, fx.Mul(ny, radiusA))

		events = append(events, TOIEvent{
			A: pair.A, B: pair.B,
			T:  t,
			NX: nx, NY: ny,
			PX: px, PY: py,
		})
	}
	return events, nil
}

// sweepTOI solves |d0 + v*t|^2 = r^2 for the smallest t in (0, 1],
// where v is the relative displacement over the whole step. dt is not
// used.
func sweepTOI(dx0, dy0, vx, vy, r, dt fx.FX) (fx.FX, bool) {
	a := fx.Add(fx.Mul(vx, vx), fx.Mul(vy, vy))
	if a <= 0 {
		return fx.Zero, false
	}
	b := fx.Mul(fx.FromInt(2), fx.Add(fx.Mul(dx0, vx), fx.Mul(dy0, vy)))
	c := fx.Sub(fx.Add(fx.Mul(dx0, dx0), fx.Mul(dy0, dy0)), fx.Mul(r, r))
	if c <= 0 {
		// Already overlapping: the discrete narrowphase path owns this pair.
		return fx.Zero, false
	}

	disc := fx.Sub(fx.Mul(b, b), fx.Mul(fx.FromInt(4), fx.Mul(a, c)))
	if disc < 0 {
		return fx.Zero, false
	}
	sqrtDisc := fx.Sqrt(disc)
	t := fx.Div(fx.Sub(fx.Neg(b), sqrtDisc), fx.Mul(fx.FromInt(2), a))
	if t <= 0 || t > fx.One {
		return fx.Zero, false
	}
	return t, true
}
