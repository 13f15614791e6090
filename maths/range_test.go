package maths

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidation(t *testing.T) {
	_, err := New(0.5, 1, 2)
	assert.NoError(t, err)

	_, err = New(1, 0.5, 2)
	assert.ErrorIs(t, err, ErrInvertedRange, "标称值低于下界应被拒绝")

	_, err = New(2, 1, 0)
	assert.ErrorIs(t, err, ErrInvertedRange, "端点顺序错误应被拒绝")

	_, err = New(0, 1, 0.5)
	assert.ErrorIs(t, err, ErrInvertedRange, "标称值越过上界应被拒绝")
}

func TestScalarLift(t *testing.T) {
	r := Scalar(3.3)
	assert.Equal(t, Range{3.3, 3.3, 3.3}, r)

	c, err := Centered(12, 0.5)
	require.NoError(t, err)
	assert.Equal(t, Range{11.5, 12, 12.5}, c)
}

// 往返性质：(A+B)-B 应在浮点容差内还原 A 的端点。
func TestAddSubRoundTrip(t *testing.T) {
	cases := []struct{ a, b Range }{
		{Range{1, 2, 3}, Range{-1, 0, 1}},
		{Range{-5, -2, 0}, Range{0.1, 0.2, 0.3}},
		{Range{0, 0, 0}, Range{-3, 1, 4}},
	}
	for _, c := range cases {
		got := c.a.Add(c.b).Sub(c.b)
		// 区间算术的和差往返会放宽区间，但必须覆盖原区间且标称值精确还原
		assert.InDelta(t, c.a.Typ, got.Typ, 1e-12)
		assert.LessOrEqual(t, got.Min, c.a.Min+1e-12, "往返后下界不应高于原下界")
		assert.GreaterOrEqual(t, got.Max, c.a.Max-1e-12, "往返后上界不应低于原上界")
	}
}

// 往返性质：B 不含零时 A*B/B 覆盖 A 且标称值精确还原。
func TestMulDivRoundTrip(t *testing.T) {
	a := Range{2, 3, 4}
	b := Range{0.5, 1, 2}
	p := a.Mul(b)
	got, err := p.Div(b)
	require.NoError(t, err)
	assert.InDelta(t, a.Typ, got.Typ, 1e-12)
	assert.LessOrEqual(t, got.Min, a.Min+1e-12)
	assert.GreaterOrEqual(t, got.Max, a.Max-1e-12)
}

func TestMulSignCorners(t *testing.T) {
	a := Range{-2, 0, 3}
	b := Range{-1, 1, 4}
	p := a.Mul(b)
	// 极值来自端点乘积：min = -2*4 = -8, max = 3*4 = 12
	assert.Equal(t, -8.0, p.Min)
	assert.Equal(t, 12.0, p.Max)
}

func TestDivSpansZero(t *testing.T) {
	a := Range{1, 2, 3}
	_, err := a.Div(Range{-1, 0, 1})
	assert.ErrorIs(t, err, ErrRangeSpansZero, "除数内部跨零必须报错")

	_, err = a.Div(Scalar(0))
	assert.ErrorIs(t, err, ErrRangeSpansZero, "除数恒为零必须报错")
}

func TestDivZeroEndpoint(t *testing.T) {
	a := Range{1, 2, 3}
	q, err := a.Div(Range{0, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 0.5, q.Min)
	assert.True(t, math.IsInf(q.Max, 1), "除数下端点为零时上界应为 +Inf")
	assert.InDelta(t, 2.0, q.Typ, 1e-12)

	// 负侧区间：符号随区间所在侧翻转
	q, err = a.Div(Range{-2, -1, 0})
	require.NoError(t, err)
	assert.True(t, math.IsInf(q.Min, -1))
	assert.Equal(t, -0.5, q.Max)
}

func TestSquareSpansZero(t *testing.T) {
	r := Range{-2, 1, 3}
	s := r.Square()
	// 跨零区间的平方下界为零，不能对两端各自取平方
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 9.0, s.Max)
	assert.Equal(t, 1.0, s.Typ)

	n := Range{-3, -2, -1}.Square()
	assert.Equal(t, 1.0, n.Min)
	assert.Equal(t, 9.0, n.Max)
}

func TestSqrt(t *testing.T) {
	r, err := Range{4, 9, 16}.Sqrt()
	require.NoError(t, err)
	assert.Equal(t, Range{2, 3, 4}, r)

	_, err = Range{-1, 0, 1}.Sqrt()
	assert.ErrorIs(t, err, ErrNegativeSqrt)
}

func TestPow(t *testing.T) {
	r, err := Range{-2, 1, 3}.Pow(2)
	require.NoError(t, err)
	assert.Equal(t, Range{0, 1, 9}, r)

	r, err = Range{-2, 1, 3}.Pow(3)
	require.NoError(t, err)
	assert.Equal(t, Range{-8, 1, 27}, r)

	r, err = Range{-2, 1, 3}.Pow(0)
	require.NoError(t, err)
	assert.Equal(t, Scalar(1), r)

	_, err = Range{1, 2, 3}.Pow(-1)
	assert.ErrorIs(t, err, ErrNegativePow)
}

func TestScalarSub(t *testing.T) {
	d := Range{0.4, 0.42, 0.44}
	g := ScalarSub(1, d)
	// 标量减区间必须对整个区间作差，而非仅标称值
	assert.InDelta(t, 0.56, g.Min, 1e-12)
	assert.InDelta(t, 0.58, g.Typ, 1e-12)
	assert.InDelta(t, 0.60, g.Max, 1e-12)
}

func TestContainsAndPositive(t *testing.T) {
	r := Range{1, 2, 3}
	assert.True(t, r.Contains(1))
	assert.True(t, r.Contains(3))
	assert.False(t, r.Contains(3.0001))
	assert.True(t, r.StrictlyPositive())
	assert.False(t, Range{0, 1, 2}.StrictlyPositive())
}

func TestApproxEqual(t *testing.T) {
	a := Range{1, 2, 3}
	b := Range{1 + 1e-13, 2, 3 - 1e-13}
	assert.True(t, a.ApproxEqual(b, 1e-9))
	assert.False(t, a.ApproxEqual(Range{1, 2, 4}, 1e-9))
}
