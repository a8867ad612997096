package fx

import "math"

// FX is a signed 16.16 fixed-point scalar: bit 16 is the unit boundary.
// FX(1) represents 1/65536; One represents the real value 1.
type FX int32

// FracBits is the number of fractional bits below the unit.
const FracBits = 16

// One is the fixed-point representation of the real value 1.0.
const One FX = 1 << FracBits

// Half is the fixed-point representation of the real value 0.5.
const Half FX = One / 2

// Zero is the additive identity.
const Zero FX = 0

// FromInt converts an integer to its 16.16 representation.
func FromInt(i int32) FX { return FX(i) << FracBits }

// ToInt truncates toward negative infinity (arithmetic right shift),
// matching the fixed-point Floor
// contract for negative values.
func ToInt(x FX) int32 { return int32(x) >> FracBits }

// FromFloat64 converts a float64 to 16.16. Confined to I/O boundaries only;
// never used inside the physics pipeline itself.
func FromFloat64(f float64) FX { return FX(math.Round(f * float64(One))) }

// ToFloat64 converts 16.16 back to float64. I/O boundary only.
func ToFloat64(x FX) float64 { return float64(x) / float64(One) }

// Add returns a+b with two's-complement truncation on overflow.
func Add(a, b FX) FX { return a + b }

// Sub returns a-b with two's-complement truncation on overflow.
func Sub(a, b FX) FX { return a - b }

// Neg returns -a.
func Neg(a FX) FX { return -a }

// Mul returns a*b, shifting the widened 64-bit product right by FracBits.
// The widening keeps the intermediate product from overflowing int32 for
// any pair of FX operands, satisfying the contract in spec.md §4.1.
func Mul(a, b FX) FX {
	return FX((int64(a) * int64(b)) >> FracBits)
}

// Div returns a/b. The numerator is widened and left-shifted by FracBits
// before the integer division. A zero divisor is treated as the raw
// integer 1 rather than One, per the documented SolverNumerical kind:
// division never propagates an error, it degrades predictably instead.
func Div(a, b FX) FX {
	if b == 0 {
		b = 1
	}
	return FX((int64(a) << FracBits) / int64(b))
}

// Mod returns a mod b. Because Add/Sub/Mod operate directly on the shared
// 16.16 representation, raw integer modulo already preserves scale.
func Mod(a, b FX) FX {
	if b == 0 {
		b = 1
	}
	return a % b
}

// Abs returns the absolute value of a. Abs(MinInt32) wraps like any other
// two's-complement negation, per contract.
func Abs(a FX) FX {
	if a < 0 {
		return -a
	}
	return a
}

// Sign returns -1, 0 or 1 (as FX raw integers, not scaled) by the sign of a.
func Sign(a FX) int32 {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}

// Min returns the smaller of a, b.
func Min(a, b FX) FX {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a, b.
func Max(a, b FX) FX {
	if a > b {
		return a
	}
	return b
}

// Clamp restricts x to [lo, hi]. If lo > hi, the result is lo; it never
// panics.
func Clamp(x, lo, hi FX) FX {
	return Max(lo, Min(x, hi))
}

// Floor rounds toward negative infinity to the nearest whole unit.
func Floor(x FX) FX {
	return x &^ (One - 1)
}

// Ceil rounds toward positive infinity to the nearest whole unit.
func Ceil(x FX) FX {
	if x&(One-1) == 0 {
		return x
	}
	return Floor(x) + One
}

// Round rounds to the nearest whole unit, ties toward positive infinity.
func Round(x FX) FX {
	return Floor(x + Half)
}

// Lerp linearly interpolates between a and b by t (t need not lie in [0,1]).
func Lerp(a, b, t FX) FX {
	return Add(a, Mul(Sub(b, a), t))
}

// MulAdd returns a*b+c (fused in the sense that no intermediate FX rounding
// happens between the multiply and the add; the product is computed at
// full 64-bit width before truncation).
func MulAdd(a, b, c FX) FX {
	return Add(Mul(a, b), c)
}

// MulSub returns a*b-c, the subtractive counterpart of MulAdd.
func MulSub(a, b, c FX) FX {
	return Sub(Mul(a, b), c)
}

// Sqrt computes an approximate square root using a fixed six-iteration
// Newton-Raphson refinement seeded from the input itself, per spec.md
// §4.1. Returns 0 for non-positive input. This is the one deliberately
// chosen deterministic path mentioned in spec.md §9: ecsphys always takes
// the fixed-iteration integer path, never a platform sqrt or a variable-
// precision big-integer fallback, so the iteration count and rounding are
// identical on every host.
func Sqrt(x FX) FX {
	if x <= 0 {
		return 0
	}
	y := x
	for i := 0; i < 6; i++ {
		if y == 0 {
			break
		}
		y = (y + Div(x, y)) / 2
	}
	return y
}

// Dot returns the 2D dot product ax*bx + ay*by.
func Dot(ax, ay, bx, by FX) FX {
	return Add(Mul(ax, bx), Mul(ay, by))
}

// Cross2D returns the 2D scalar cross product (perp-dot) ax*by - ay*bx,
// used both as r×v (relative-position cross velocity) and as a face-normal
// separation test.
func Cross2D(ax, ay, bx, by FX) FX {
	return Sub(Mul(ax, by), Mul(ay, bx))
}

// CrossScalarVector returns w×r for scalar angular velocity w and vector r,
// i.e. the 2D perpendicular rotation (-w*ry, w*rx) used to turn an angular
// velocity into a linear velocity contribution at an offset r.
func CrossScalarVector(w, rx, ry FX) (x, y FX) {
	return Mul(-w, ry), Mul(w, rx)
}
