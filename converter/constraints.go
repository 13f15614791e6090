// Package converter 实现降压变换器的设计计算与拓扑装配。
// BuckConstraints 是不可变的设计规格，其派生量构成一条闭式方程链：
// 占空比 → 目标纹波电流 → 最小电感 → 实际纹波/峰值/有效值电流 →
// 电容下限 → 导通模式判断。全部计算在容差区间上进行，
// 保证输出覆盖最坏情形，而非只对标称值求解。
package converter

import (
	"errors"
	"fmt"

	"smps/maths"
)

// ErrNotPositive 正值约束字段校验失败
var ErrNotPositive = errors.New("converter: 参数必须为正")

// rippleVarianceDivisor 三角波纹波电流的方差除数（ripple²/12）。
// 数值沿用原始公式，不要改动。
const rippleVarianceDivisor = 12.0

// BuckConstraints 降压变换器设计规格。构造后不可变，
// 派生量每次调用重新计算，始终与字段一致。
type BuckConstraints struct {
	VIn           maths.Range // 输入电压 (V)
	VOut          maths.Range // 输出电压 (V)
	VInRippleMax  float64     // 输入纹波电压上限 (V)
	VOutRippleMax float64     // 输出纹波电压上限 (V)
	IOut          maths.Range // 输出电流 (A)
	Freq          maths.Range // 开关频率 (Hz)
	RippleFactor  float64     // 纹波电流系数 K（相对输出电流）
}

// NewBuckConstraints 构造设计规格并做正值校验。
// 输出电流允许下界为零（轻载工况），含零下界带来的除零问题
// 由相应派生量在使用处拦截。
func NewBuckConstraints(vin, vout maths.Range, vinRipple, voutRipple float64, iout, freq maths.Range, rippleFactor float64) (*BuckConstraints, error) {
	if !vin.StrictlyPositive() {
		return nil, fmt.Errorf("%w: 输入电压 %v", ErrNotPositive, vin)
	}
	if !vout.StrictlyPositive() {
		return nil, fmt.Errorf("%w: 输出电压 %v", ErrNotPositive, vout)
	}
	if vinRipple <= 0 {
		return nil, fmt.Errorf("%w: 输入纹波电压上限 %g V", ErrNotPositive, vinRipple)
	}
	if voutRipple <= 0 {
		return nil, fmt.Errorf("%w: 输出纹波电压上限 %g V", ErrNotPositive, voutRipple)
	}
	if iout.Min < 0 || iout.Max <= 0 {
		return nil, fmt.Errorf("%w: 输出电流 %v", ErrNotPositive, iout)
	}
	if freq.Min < 0 || freq.Nominal() <= 0 {
		return nil, fmt.Errorf("%w: 开关频率 %v", ErrNotPositive, freq)
	}
	if rippleFactor <= 0 {
		return nil, fmt.Errorf("%w: 纹波电流系数 %g", ErrNotPositive, rippleFactor)
	}
	return &BuckConstraints{
		VIn:           vin,
		VOut:          vout,
		VInRippleMax:  vinRipple,
		VOutRippleMax: voutRipple,
		IOut:          iout,
		Freq:          freq,
		RippleFactor:  rippleFactor,
	}, nil
}

// DutyCycle 占空比 D = VOut / VIn。输入电压经校验严格为正，除法不会失败。
func (c *BuckConstraints) DutyCycle() maths.Range {
	d, _ := c.VOut.Div(c.VIn)
	return d
}

// TargetRippleCurrent 目标纹波电流 ΔI = K × IOut。
func (c *BuckConstraints) TargetRippleCurrent() maths.Range {
	return c.IOut.MulScalar(c.RippleFactor)
}

// Inductance 满足纹波目标的最小电感
// L = D × (VIn − VOut) / (f × ΔI)。
// 输出电流下界为零时目标纹波下界也为零，此时上界为无穷
// （轻载趋零时维持纹波比例所需的电感无界），下界与标称值保持有限。
// 结果是下限值，选型时应向上取整到可购得的感值。
func (c *BuckConstraints) Inductance() (maths.Range, error) {
	num := c.DutyCycle().Mul(c.VIn.Sub(c.VOut))
	den := c.Freq.Mul(c.TargetRippleCurrent())
	l, err := num.Div(den)
	if err != nil {
		return maths.Range{}, fmt.Errorf("最小电感计算失败: %w", err)
	}
	return l, nil
}

// RippleCurrent 给定电感下的实际纹波电流 ΔI = D × (VIn − VOut) / (f × L)。
// 电感必须严格为正，否则返回校验错误。
func (c *BuckConstraints) RippleCurrent(l maths.Range) (maths.Range, error) {
	return c.RippleCurrentAt(l, c.Freq)
}

// RippleCurrentAt 以指定频率计算纹波电流。对电感与频率都做严格
// 正值校验：含零频率区间在此处被拒绝，而不是让除法产生无穷。
func (c *BuckConstraints) RippleCurrentAt(l, f maths.Range) (maths.Range, error) {
	if !l.StrictlyPositive() {
		return maths.Range{}, fmt.Errorf("%w: 电感 %v", ErrNotPositive, l)
	}
	if !f.StrictlyPositive() {
		return maths.Range{}, fmt.Errorf("%w: 开关频率 %v", ErrNotPositive, f)
	}
	num := c.DutyCycle().Mul(c.VIn.Sub(c.VOut))
	r, err := num.Div(f.Mul(l))
	if err != nil {
		return maths.Range{}, fmt.Errorf("纹波电流计算失败: %w", err)
	}
	return r, nil
}

// PeakCurrent 电感峰值电流（标量）：最大负载电流加上最大纹波的一半。
func (c *BuckConstraints) PeakCurrent(l maths.Range) (float64, error) {
	r, err := c.RippleCurrent(l)
	if err != nil {
		return 0, err
	}
	return c.IOut.Upper() + r.Upper()/2, nil
}

// RMSCurrent 电感有效值电流：sqrt(IOut² + ΔI²/12)，
// 纹波贡献按三角波方差近似计入。
func (c *BuckConstraints) RMSCurrent(l maths.Range) (maths.Range, error) {
	r, err := c.RippleCurrent(l)
	if err != nil {
		return maths.Range{}, err
	}
	variance, err := r.Square().DivScalar(rippleVarianceDivisor)
	if err != nil {
		return maths.Range{}, err
	}
	return c.IOut.Square().Add(variance).Sqrt()
}

// MinOutputCapacitance 输出电容下限（标量）：
// max( ΔI / (8 × ΔVout × f) )。选型时向上取整。
func (c *BuckConstraints) MinOutputCapacitance(l maths.Range) (float64, error) {
	r, err := c.RippleCurrent(l)
	if err != nil {
		return 0, err
	}
	q, err := r.Div(c.Freq.MulScalar(8 * c.VOutRippleMax))
	if err != nil {
		return 0, fmt.Errorf("输出电容下限计算失败: %w", err)
	}
	return q.Upper(), nil
}

// MinInputCapacitance 输入电容下限（标量）：
// max( D × (1−D) × IOut / (ΔVin × f) )。
// (1−D) 对整个占空比区间作差，保证最坏情形界。
func (c *BuckConstraints) MinInputCapacitance() (float64, error) {
	if !c.Freq.StrictlyPositive() {
		return 0, fmt.Errorf("%w: 开关频率 %v", ErrNotPositive, c.Freq)
	}
	d := c.DutyCycle()
	num := d.Mul(maths.ScalarSub(1, d)).Mul(c.IOut)
	q, err := num.Div(c.Freq.MulScalar(c.VInRippleMax))
	if err != nil {
		return 0, fmt.Errorf("输入电容下限计算失败: %w", err)
	}
	return q.Upper(), nil
}

// IsCCM 判断给定负载电流下电感电流谷值是否会穿越零点：
// 当 load < max(ΔI)/2 时电流过零（断续导通），返回真；
// 边界相等按连续导通处理（比较为严格小于）。
func (c *BuckConstraints) IsCCM(l maths.Range, load float64) (bool, error) {
	r, err := c.RippleCurrent(l)
	if err != nil {
		return false, err
	}
	return load < r.Upper()/2, nil
}

// IsCCMNominal 以标称输出电流作为负载的便捷判断。
func (c *BuckConstraints) IsCCMNominal(l maths.Range) (bool, error) {
	return c.IsCCM(l, c.IOut.Nominal())
}
