package fx

import "math"

// Angle is a 16-bit unsigned fixed-point angle mapping [0, 65536) onto
// [0, 2π). Angles are kept separate from FX because angular arithmetic
// wraps modulo the full circle (2^16 steps) rather than modulo 2^32.
type Angle uint16

// AngleMax is the number of discrete angle steps in a full turn.
const AngleMax = 1 << 16

// sinTable and cosTable are precomputed once at process start so that
// every lookup afterward is an O(1) array index, never a transcendental
// call. Table values are derived from float64 math.Sin/Cos, which every
// supported host computes identically for the same IEEE-754 inputs; this
// confines the one unavoidable floating-point dependency to a single
// startup pass, matching the rationale in spec.md §4.1.
var (
	sinTable [AngleMax]FX
	cosTable [AngleMax]FX
)

func init() {
	for i := 0; i < AngleMax; i++ {
		theta := 2 * math.Pi * float64(i) / float64(AngleMax)
		sinTable[i] = FromFloat64(math.Sin(theta))
		cosTable[i] = FromFloat64(math.Cos(theta))
	}
}

// NormalizeAngle wraps a raw angle value into [0, AngleMax).
func NormalizeAngle(raw int32) Angle {
	return Angle(uint16(raw))
}

// Add returns a+b wrapped modulo a full turn.
func (a Angle) Add(b Angle) Angle { return a + b }

// Sin returns the precomputed sine of a.
func (a Angle) Sin() FX { return sinTable[a] }

// Cos returns the precomputed cosine of a.
func (a Angle) Cos() FX { return cosTable[a] }

// RotationCache holds the precomputed cos/sin pair for one entity's
// current angle, refreshed whenever the angle changes. Storing it
// per-entity avoids re-deriving sin/cos on every shape-sync pass.
type RotationCache struct {
	Angle Angle
	Cos   FX
	Sin   FX
	valid bool
}

// Refresh recomputes Cos/Sin if angle differs from the cached one, or if
// the cache has never been populated (the zero value of RotationCache has
// Angle==0 but no corresponding Cos/Sin, so it must not be mistaken for an
// already-valid cache at angle 0). Returns true if the cache was updated.
func (r *RotationCache) Refresh(angle Angle) bool {
	if r.valid && r.Angle == angle {
		return false
	}
	r.Angle = angle
	r.Cos = angle.Cos()
	r.Sin = angle.Sin()
	r.valid = true
	return true
}

// Rotate applies the cached rotation to a local-space point, returning the
// rotated (but not yet translated) world-space offset.
func (r RotationCache) Rotate(lx, ly FX) (x, y FX) {
	x = Sub(Mul(lx, r.Cos), Mul(ly, r.Sin))
	y = Add(Mul(lx, r.Sin), Mul(ly, r.Cos))
	return x, y
}
