package converter

import "fmt"

// BuckSolution 设计结论的传递对象：最终选定的电感与输入/输出电容值。
// 只做正值校验、不携带行为，用于把计算环节与装配环节解耦，
// 替换计算策略不影响同一装配器的使用。
type BuckSolution struct {
	Inductance        float64 // 电感 (H)
	InputCapacitance  float64 // 输入电容 (F)
	OutputCapacitance float64 // 输出电容 (F)
}

// NewBuckSolution 构造设计结论，三个值都必须为正。
func NewBuckSolution(l, cin, cout float64) (*BuckSolution, error) {
	if l <= 0 {
		return nil, fmt.Errorf("%w: 电感 %g H", ErrNotPositive, l)
	}
	if cin <= 0 {
		return nil, fmt.Errorf("%w: 输入电容 %g F", ErrNotPositive, cin)
	}
	if cout <= 0 {
		return nil, fmt.Errorf("%w: 输出电容 %g F", ErrNotPositive, cout)
	}
	return &BuckSolution{Inductance: l, InputCapacitance: cin, OutputCapacitance: cout}, nil
}
