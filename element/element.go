// Package element 提供可实例化的两端元件描述。
// 元件描述是声明式的：持有参数与极性标志，调用 Instantiate 时才在
// 搭建上下文中落地为 net.Part。串联网络 Network 同样实现 Instantiable，
// 可以在任何接受单个元件的位置使用。
package element

import (
	"errors"
	"fmt"

	"smps/net"
)

var (
	// ErrNotPositive 元件参数必须为正
	ErrNotPositive = errors.New("element: 元件参数必须为正")
	// ErrEmptyNetwork 串联网络不能为空
	ErrEmptyNetwork = errors.New("element: 串联网络不能为空")
)

// Instantiable 可实例化元件描述。实例化在上下文中登记元件并
// 为每个引脚分配节点，参数非法时在此处报错。
type Instantiable interface {
	Instantiate(ctx *net.Context) (*net.Part, error)
}

// Capacitor 电容
type Capacitor struct {
	Capacitance float64 // 容值 (F)
	Flip        bool    // 极性翻转（有极性电容的正极默认朝上游）
}

func (c Capacitor) Instantiate(ctx *net.Context) (*net.Part, error) {
	if c.Capacitance <= 0 {
		return nil, fmt.Errorf("%w: 电容 %g F", ErrNotPositive, c.Capacitance)
	}
	return ctx.NewPart("C", []string{"c1", "c2"}, c.Flip), nil
}

// Inductor 电感
type Inductor struct {
	Inductance float64 // 感值 (H)
}

func (l Inductor) Instantiate(ctx *net.Context) (*net.Part, error) {
	if l.Inductance <= 0 {
		return nil, fmt.Errorf("%w: 电感 %g H", ErrNotPositive, l.Inductance)
	}
	return ctx.NewPart("L", []string{"l1", "l2"}, false), nil
}

// Resistor 电阻
type Resistor struct {
	Resistance float64 // 阻值 (Ω)
	Flip       bool
}

func (r Resistor) Instantiate(ctx *net.Context) (*net.Part, error) {
	if r.Resistance <= 0 {
		return nil, fmt.Errorf("%w: 电阻 %g Ω", ErrNotPositive, r.Resistance)
	}
	return ctx.NewPart("R", []string{"r1", "r2"}, r.Flip), nil
}

// Diode 二极管，第一端为阳极、第二端为阴极。
type Diode struct {
	Flip bool
}

func (d Diode) Instantiate(ctx *net.Context) (*net.Part, error) {
	return ctx.NewPart("D", []string{"a", "k"}, d.Flip), nil
}

// Switch 开关元件（低侧 MOSFET 等），两端约定与二极管一致：
// 第一端对应阳极/源极侧。
type Switch struct {
	Flip bool
}

func (s Switch) Instantiate(ctx *net.Context) (*net.Part, error) {
	return ctx.NewPart("S", []string{"t1", "t2"}, s.Flip), nil
}

// Network 串联网络：按顺序实例化每个成员并首尾相连，
// 对外暴露最外侧的一对端口。
type Network []Instantiable

func (n Network) Instantiate(ctx *net.Context) (*net.Part, error) {
	if len(n) == 0 {
		return nil, ErrEmptyNetwork
	}
	parts := make([]*net.Part, len(n))
	for i, member := range n {
		p, err := member.Instantiate(ctx)
		if err != nil {
			return nil, fmt.Errorf("串联网络第 %d 个成员: %w", i+1, err)
		}
		parts[i] = p
	}
	for i := 0; i+1 < len(parts); i++ {
		if err := ctx.Connect(parts[i].Second(), parts[i+1].First()); err != nil {
			return nil, err
		}
	}
	return ctx.NewComposite("NET", parts[0].First(), parts[len(parts)-1].Second()), nil
}

// Optional 可选元件的显式存在/缺席包装，拓扑装配据此做穷尽分支，
// 不使用空指针哨兵。
type Optional struct {
	present bool
	value   Instantiable
}

// Some 包装一个存在的元件。
func Some(v Instantiable) Optional { return Optional{present: true, value: v} }

// None 缺席。
func None() Optional { return Optional{} }

// Present 是否存在。
func (o Optional) Present() bool { return o.present }

// Get 取出元件，缺席时第二返回值为假。
func (o Optional) Get() (Instantiable, bool) { return o.value, o.present }
