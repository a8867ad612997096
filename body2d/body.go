package body2d

import "github.com/vornastek/ecsphys/fx"

// Body2D is the rigid-body component: fixed-point pose, velocity, mass
// and rotational-inertia inverses (zero means immovable), and the
// surface properties consulted by the contact-material builder when an
// entity carries no explicit Material2D (spec.md §3).
type Body2D struct {
	PX, PY fx.FX
	VX, VY fx.FX
	Angle  fx.Angle
	W      fx.FX // angular velocity

	InvMass    fx.FX
	InvInertia fx.FX

	Awake bool

	Restitution fx.FX
	Friction    fx.FX
}

// Option configures a Body2D at construction.
type Option func(*Body2D)

// WithVelocity sets the initial linear velocity.
func WithVelocity(vx, vy fx.FX) Option {
	return func(b *Body2D) { b.VX, b.VY = vx, vy }
}

// WithAngularVelocity sets the initial angular velocity.
func WithAngularVelocity(w fx.FX) Option {
	return func(b *Body2D) { b.W = w }
}

// WithMass sets inverse mass directly; pass fx.Zero for an immovable
// body (infinite mass).
func WithMass(invMass fx.FX) Option {
	return func(b *Body2D) { b.InvMass = invMass }
}

// WithInertia sets inverse rotational inertia directly; pass fx.Zero to
// forbid rotation from collision response.
func WithInertia(invInertia fx.FX) Option {
	return func(b *Body2D) { b.InvInertia = invInertia }
}

// WithSurface sets restitution and friction.
func WithSurface(restitution, friction fx.FX) Option {
	return func(b *Body2D) { b.Restitution, b.Friction = restitution, friction }
}

// New returns a Body2D at (px, py), awake, with unit mass/inertia
// inverses and zero restitution/friction, customized by opts.
func New(px, py fx.FX, opts ...Option) Body2D {
	b := Body2D{
		PX: px, PY: py,
		InvMass:    fx.One,
		InvInertia: fx.One,
		Awake:      true,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Static returns an immovable Body2D (zero inverse mass and inertia) at
// (px, py).
func Static(px, py fx.FX, opts ...Option) Body2D {
	opts = append([]Option{WithMass(fx.Zero), WithInertia(fx.Zero)}, opts...)
	return New(px, py, opts...)
}

// VelocityAt returns the body's linear velocity at a world-space offset
// r from its center of mass: v + w×r (spec.md §4.7).
func (b Body2D) VelocityAt(rx, ry fx.FX) (vx, vy fx.FX) {
	cx, cy := fx.CrossScalarVector(b.W, rx, ry)
	return fx.Add(b.VX, cx), fx.Add(b.VY, cy)
}

// Immovable reports whether b has both inverse mass and inverse inertia
// at zero, meaning no impulse can change its velocity.
func (b Body2D) Immovable() bool {
	return b.InvMass == fx.Zero && b.InvInertia == fx.Zero
}
