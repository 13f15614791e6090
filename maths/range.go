// Package maths 提供容差区间算术，是所有设计计算的数值底层。
// Range 以 [Min, Typ, Max] 三元组表示一个带公差的量，
// 所有运算按区间算术规则传播上下界，保证结果覆盖输入笛卡尔积上的真实极值。
package maths

import (
	"errors"
	"fmt"
	"math"
)

// 浮点精度阈值
const Epsilon = 1e-12

var (
	// ErrInvertedRange 区间端点顺序错误（要求 Min <= Typ <= Max）
	ErrInvertedRange = errors.New("maths: 区间端点必须满足 Min <= Typ <= Max")
	// ErrRangeSpansZero 除数区间跨越零点，商无界
	ErrRangeSpansZero = errors.New("maths: 除数区间跨越零点")
	// ErrNegativeSqrt 对含负数的区间开平方
	ErrNegativeSqrt = errors.New("maths: 区间下界为负，无法开平方")
	// ErrNegativePow 不支持负数次幂
	ErrNegativePow = errors.New("maths: 不支持负数次幂")
)

// Range 容差区间，不变量 Min <= Typ <= Max 在构造时校验。
// 零值为退化区间 [0,0,0]。运算均为值语义，不修改接收者。
type Range struct {
	Min float64 // 下界
	Typ float64 // 标称值
	Max float64 // 上界
}

// New 构造容差区间，端点顺序错误时返回 ErrInvertedRange。
func New(min, typ, max float64) (Range, error) {
	if !(min <= typ && typ <= max) {
		return Range{}, fmt.Errorf("%w: [%g, %g, %g]", ErrInvertedRange, min, typ, max)
	}
	return Range{Min: min, Typ: typ, Max: max}, nil
}

// Scalar 将标量提升为退化区间 [v, v, v]。
func Scalar(v float64) Range {
	return Range{Min: v, Typ: v, Max: v}
}

// Centered 以标称值和对称公差构造区间，如 Centered(12, 0.5) = [11.5, 12, 12.5]。
func Centered(typ, tol float64) (Range, error) {
	return New(typ-math.Abs(tol), typ, typ+math.Abs(tol))
}

// Nominal 标称值
func (r Range) Nominal() float64 { return r.Typ }

// Lower 下界
func (r Range) Lower() float64 { return r.Min }

// Upper 上界
func (r Range) Upper() float64 { return r.Max }

// Contains 判断 v 是否落在区间内（闭区间）。
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// StrictlyPositive 判断区间是否严格为正（下界大于零）。
func (r Range) StrictlyPositive() bool { return r.Min > 0 }

// spansZero 判断区间内部是否跨越零点（两端异号），或整个区间恒为零。
func (r Range) spansZero() bool {
	if r.Min < 0 && r.Max > 0 {
		return true
	}
	return r.Min == 0 && r.Max == 0
}

// Add 区间加法。
func (r Range) Add(o Range) Range {
	return Range{Min: r.Min + o.Min, Typ: r.Typ + o.Typ, Max: r.Max + o.Max}
}

// Sub 区间减法，下界减上界、上界减下界。
func (r Range) Sub(o Range) Range {
	return Range{Min: r.Min - o.Max, Typ: r.Typ - o.Typ, Max: r.Max - o.Min}
}

// AddScalar 区间加标量。
func (r Range) AddScalar(s float64) Range { return r.Add(Scalar(s)) }

// SubScalar 区间减标量。
func (r Range) SubScalar(s float64) Range { return r.Sub(Scalar(s)) }

// ScalarSub 标量减区间（如 1 - D），对整个区间作差而非仅标称值。
func ScalarSub(s float64, r Range) Range { return Scalar(s).Sub(r) }

// Mul 区间乘法，取四个端点乘积的极值作为上下界。
// 无穷端点与零相乘按区间算术约定取零，避免 IEEE 的 NaN 污染边界。
func (r Range) Mul(o Range) Range {
	lo, hi := hull4(
		mulBound(r.Min, o.Min), mulBound(r.Min, o.Max),
		mulBound(r.Max, o.Min), mulBound(r.Max, o.Max),
	)
	return Range{Min: lo, Typ: mulBound(r.Typ, o.Typ), Max: hi}
}

// mulBound 端点乘积，0 × ∞ 约定为 0。
func mulBound(a, b float64) float64 {
	if (a == 0 && math.IsInf(b, 0)) || (b == 0 && math.IsInf(a, 0)) {
		return 0
	}
	return a * b
}

// MulScalar 区间乘标量。
func (r Range) MulScalar(s float64) Range { return r.Mul(Scalar(s)) }

// Div 区间除法。除数区间跨越零点时商无界，返回 ErrRangeSpansZero；
// 除数端点恰为零时按 IEEE 规则产生无穷界（这是真实的上确界，
// 供下游以最坏情形处理，而非静默截断）。
func (r Range) Div(o Range) (Range, error) {
	if o.spansZero() {
		return Range{}, fmt.Errorf("%w: [%g, %g]", ErrRangeSpansZero, o.Min, o.Max)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, a := range [2]float64{r.Min, r.Max} {
		for _, b := range [2]float64{o.Min, o.Max} {
			if b == 0 {
				if a == 0 {
					// 0/0 无定义，由另一端点给出极限
					continue
				}
				// 除数趋零的单侧极限，符号取决于除数区间位于零的哪一侧
				sign := 1.0
				if a < 0 {
					sign = -sign
				}
				if o.Max == 0 {
					sign = -sign
				}
				q := math.Inf(int(sign))
				lo, hi = math.Min(lo, q), math.Max(hi, q)
				continue
			}
			q := a / b
			lo, hi = math.Min(lo, q), math.Max(hi, q)
		}
	}
	typ := 0.0
	switch {
	case o.Typ != 0:
		typ = r.Typ / o.Typ
	case r.Typ != 0:
		sign := 1.0
		if r.Typ < 0 {
			sign = -sign
		}
		if o.Max == 0 {
			sign = -sign
		}
		typ = math.Inf(int(sign))
	}
	return Range{Min: lo, Typ: typ, Max: hi}, nil
}

// DivScalar 区间除以标量，标量为零时返回 ErrRangeSpansZero。
func (r Range) DivScalar(s float64) (Range, error) {
	return r.Div(Scalar(s))
}

// Square 区间平方。跨越零点的区间平方后下界为零，
// 不能简单对两端各自取平方。
func (r Range) Square() Range {
	pm, px := r.Min*r.Min, r.Max*r.Max
	lo, hi := math.Min(pm, px), math.Max(pm, px)
	if r.Min <= 0 && 0 <= r.Max {
		lo = 0
	}
	return Range{Min: lo, Typ: r.Typ * r.Typ, Max: hi}
}

// Sqrt 区间开平方，下界为负时返回 ErrNegativeSqrt。
func (r Range) Sqrt() (Range, error) {
	if r.Min < 0 {
		return Range{}, fmt.Errorf("%w: [%g, %g]", ErrNegativeSqrt, r.Min, r.Max)
	}
	return Range{Min: math.Sqrt(r.Min), Typ: math.Sqrt(r.Typ), Max: math.Sqrt(r.Max)}, nil
}

// Pow 区间整数次幂，n 为负时返回 ErrNegativePow。
// 偶次幂在跨零区间上的下界为零，奇次幂单调、端点直接取幂。
func (r Range) Pow(n int) (Range, error) {
	if n < 0 {
		return Range{}, fmt.Errorf("%w: n=%d", ErrNegativePow, n)
	}
	if n == 0 {
		return Scalar(1), nil
	}
	pm, px := math.Pow(r.Min, float64(n)), math.Pow(r.Max, float64(n))
	out := Range{Typ: math.Pow(r.Typ, float64(n))}
	if n%2 == 1 {
		out.Min, out.Max = pm, px
		return out, nil
	}
	out.Min, out.Max = math.Min(pm, px), math.Max(pm, px)
	if r.Min <= 0 && 0 <= r.Max {
		out.Min = 0
	}
	return out, nil
}

// ApproxEqual 判断两个区间的三个端点是否都在 tol 容差内一致
// （绝对或相对误差满足其一即可），无穷端点要求符号一致。
func (r Range) ApproxEqual(o Range, tol float64) bool {
	return approx(r.Min, o.Min, tol) && approx(r.Typ, o.Typ, tol) && approx(r.Max, o.Max, tol)
}

// String 格式化输出，如 [11.5 ~12~ 12.5]。
func (r Range) String() string {
	return fmt.Sprintf("[%g ~%g~ %g]", r.Min, r.Typ, r.Max)
}

func approx(a, b, tol float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	d := math.Abs(a - b)
	if d <= tol {
		return true
	}
	return d <= tol*math.Max(math.Abs(a), math.Abs(b))
}

func hull4(a, b, c, d float64) (lo, hi float64) {
	lo = math.Min(math.Min(a, b), math.Min(c, d))
	hi = math.Max(math.Max(a, b), math.Max(c, d))
	return lo, hi
}
