package solver

import "github.com/vornastek/ecsphys/fx"

// mat22 is a 2x2 fixed-point matrix, used for the revolute joint's
// point-constraint effective mass and the prismatic joint's combined
// perpendicular+angle effective mass (spec.md §4.8).
type mat22 struct {
	A11, A12 fx.FX
	A21, A22 fx.FX
}

// invert returns the matrix inverse, or the zero matrix if the
// determinant is zero (a degenerate constraint — both bodies immovable
// on this axis).
func (m mat22) invert() mat22 {
	det := fx.Sub(fx.Mul(m.A11, m.A22), fx.Mul(m.A12, m.A21))
	if det == 0 {
		return mat22{}
	}
	invDet := fx.Div(fx.One, det)
	return mat22{
		A11: fx.Mul(invDet, m.A22),
		A12: fx.Mul(invDet, fx.Neg(m.A12)),
		A21: fx.Mul(invDet, fx.Neg(m.A21)),
		A22: fx.Mul(invDet, m.A11),
	}
}

// solve returns M * (x, y).
func (m mat22) solve(x, y fx.FX) (rx, ry fx.FX) {
	return fx.Add(fx.Mul(m.A11, x), fx.Mul(m.A12, y)), fx.Add(fx.Mul(m.A21, x), fx.Mul(m.A22, y))
}
