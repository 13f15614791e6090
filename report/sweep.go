// Package report 将设计计算结果渲染为图表：候选电感扫描曲线的
// HTML 交互报告与 PNG 静态图，供选型评审使用。
package report

import (
	"fmt"

	"smps/converter"
	"smps/maths"
)

// SweepPoint 扫描点：候选电感及其标称纹波电流。
type SweepPoint struct {
	Inductance float64 // 候选电感 (H)
	Ripple     float64 // 标称纹波电流 (A)
}

// Sweep 在 [lMin, lMax] 上等距取 n 个候选电感，计算各自的标称纹波电流。
func Sweep(c *converter.BuckConstraints, lMin, lMax float64, n int) ([]SweepPoint, error) {
	if lMin <= 0 || lMax <= lMin {
		return nil, fmt.Errorf("扫描区间非法: [%g, %g]", lMin, lMax)
	}
	if n < 2 {
		return nil, fmt.Errorf("扫描点数至少为 2，得到 %d", n)
	}
	step := (lMax - lMin) / float64(n-1)
	points := make([]SweepPoint, n)
	for i := range points {
		l := lMin + float64(i)*step
		r, err := c.RippleCurrent(maths.Scalar(l))
		if err != nil {
			return nil, err
		}
		points[i] = SweepPoint{Inductance: l, Ripple: r.Nominal()}
	}
	return points, nil
}
