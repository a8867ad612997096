package fx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vornastek/ecsphys/fx"
)

func TestConversions(t *testing.T) {
	assert.Equal(t, fx.One, fx.FromInt(1))
	assert.Equal(t, int32(2), fx.ToInt(fx.FromInt(2)))
	assert.InDelta(t, 1.5, fx.ToFloat64(fx.FromFloat64(1.5)), 1e-6)
}

func TestAddSubCommutative(t *testing.T) {
	a, b := fx.FromFloat64(1.25), fx.FromFloat64(-3.5)
	assert.Equal(t, fx.Add(a, b), fx.Add(b, a))
	assert.Equal(t, a, fx.Add(fx.Sub(a, b), b))
}

func TestMulDistributesOverAdd(t *testing.T) {
	a := fx.FromFloat64(2.0)
	b := fx.FromFloat64(3.25)
	c := fx.FromFloat64(-1.5)
	lhs := fx.Mul(a, fx.Add(b, c))
	rhs := fx.Add(fx.Mul(a, b), fx.Mul(a, c))
	// Documented 1-lsb rounding difference, per spec.md §8.
	assert.InDelta(t, int32(lhs), int32(rhs), 1)
}

func TestDivZeroDivisorTreatedAsOne(t *testing.T) {
	a := fx.FromInt(5)
	assert.Equal(t, fx.Div(a, 0), fx.Div(a, 1))
}

func TestSqrtWithinTwoLSB(t *testing.T) {
	for _, v := range []float64{0, 0.25, 1, 2, 4, 9, 16, 100, 65535.5} {
		x := fx.FromFloat64(v)
		root := fx.Sqrt(x)
		sq := fx.Mul(root, root)
		assert.InDelta(t, int32(x), int32(sq), 2, "sqrt(%v)", v)
	}
}

func TestSqrtNonPositiveIsZero(t *testing.T) {
	assert.Equal(t, fx.Zero, fx.Sqrt(-fx.One))
	assert.Equal(t, fx.Zero, fx.Sqrt(0))
}

func TestClampRoundFloorCeil(t *testing.T) {
	assert.Equal(t, fx.FromInt(3), fx.Clamp(fx.FromInt(10), fx.FromInt(1), fx.FromInt(3)))
	assert.Equal(t, fx.FromInt(2), fx.Round(fx.FromFloat64(1.5)))
	assert.Equal(t, fx.FromInt(1), fx.Floor(fx.FromFloat64(1.9)))
	assert.Equal(t, fx.FromInt(2), fx.Ceil(fx.FromFloat64(1.1)))
}

func TestDotAndCross(t *testing.T) {
	one := fx.One
	zero := fx.Zero
	assert.Equal(t, one, fx.Dot(one, zero, one, zero))
	assert.Equal(t, one, fx.Cross2D(one, zero, zero, one))
}

func TestAngleWraps(t *testing.T) {
	a := fx.Angle(65530)
	b := a.Add(10)
	assert.Equal(t, fx.Angle(4), b)
}

func TestRotationCacheFirstRefreshAtZero(t *testing.T) {
	var rc fx.RotationCache
	changed := rc.Refresh(0)
	assert.True(t, changed)
	assert.Equal(t, fx.One, rc.Cos)
	assert.Equal(t, fx.Zero, rc.Sin)
}

func BenchmarkMul(b *testing.B) {
	a := fx.FromFloat64(3.14159)
	c := fx.FromFloat64(2.71828)
	for i := 0; i < b.N; i++ {
		a = fx.Mul(a, c)
	}
	_ = a
}

func BenchmarkSqrt(b *testing.B) {
	x := fx.FromFloat64(1234.5)
	for i := 0; i < b.N; i++ {
		_ = fx.Sqrt(x)
	}
}
