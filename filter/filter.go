// Package filter 提供直连式的简单滤波拓扑：单端/平衡滤波器与二极管或门。
// 这些辅助只做端口接线、不做约束求解；两端元件的极性规则与
// 变换器装配完全一致：第一端默认朝向上游/输入侧，flip 翻转。
package filter

import (
	"errors"
	"fmt"

	"smps/element"
	"smps/net"
)

// ErrNoInputs 二极管或门至少需要一路输入
var ErrNoInputs = errors.New("filter: 二极管或门至少需要一路输入")

// Unbalanced 单端滤波器：火线上一个串联元件，两端各有可选的
// 对地旁路元件。依元件存在与否构成 L 型、T 型或 Π 型。
type Unbalanced struct {
	Series   element.Instantiable // 串联元件（电感/磁珠/网络）
	ShuntIn  element.Optional     // 输入侧对地旁路（可选）
	ShuntOut element.Optional     // 输出侧对地旁路（可选）
}

// Assemble 在 in 与 out 之间接入串联元件，旁路元件第一端接线路、
// 第二端接地。
func (f *Unbalanced) Assemble(ctx *net.Context, in, out, gnd *net.Port) error {
	s, err := f.Series.Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("串联元件: %w", err)
	}
	if err := ctx.Connect(s.First(), in); err != nil {
		return err
	}
	if err := ctx.Connect(s.Second(), out); err != nil {
		return err
	}
	if err := shuntToGround(ctx, f.ShuntIn, in, gnd, "输入侧旁路"); err != nil {
		return err
	}
	return shuntToGround(ctx, f.ShuntOut, out, gnd, "输出侧旁路")
}

// Balanced 平衡滤波器：火线与回线各有一个串联元件，
// 输出两线之间有可选的跨接元件。
type Balanced struct {
	SeriesLive   element.Instantiable // 火线串联元件
	SeriesReturn element.Instantiable // 回线串联元件
	Bridge       element.Optional     // 输出两线间跨接元件（可选）
}

// Assemble 对称接入两线的串联元件；跨接元件第一端接火线侧。
func (f *Balanced) Assemble(ctx *net.Context, inLive, inReturn, outLive, outReturn *net.Port) error {
	live, err := f.SeriesLive.Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("火线串联元件: %w", err)
	}
	if err := ctx.Connect(live.First(), inLive); err != nil {
		return err
	}
	if err := ctx.Connect(live.Second(), outLive); err != nil {
		return err
	}
	ret, err := f.SeriesReturn.Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("回线串联元件: %w", err)
	}
	if err := ctx.Connect(ret.First(), inReturn); err != nil {
		return err
	}
	if err := ctx.Connect(ret.Second(), outReturn); err != nil {
		return err
	}
	return shuntToGround(ctx, f.Bridge, outLive, outReturn, "跨接元件")
}

// DiodeOR 二极管或门：每路输入经一只二极管汇流到公共输出节点，
// 阳极朝输入、阴极并联。返回公共输出端口。
func DiodeOR(ctx *net.Context, inputs ...*net.Port) (*net.Port, error) {
	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}
	out := ctx.NewNode("or")
	for i, in := range inputs {
		d, err := (element.Diode{}).Instantiate(ctx)
		if err != nil {
			return nil, fmt.Errorf("第 %d 路二极管: %w", i+1, err)
		}
		if err := ctx.Connect(d.First(), in); err != nil {
			return nil, err
		}
		if err := ctx.Connect(d.Second(), out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// shuntToGround 可选旁路元件的统一接法：第一端接上游线路，第二端接地。
func shuntToGround(ctx *net.Context, opt element.Optional, line, gnd *net.Port, what string) error {
	e, ok := opt.Get()
	if !ok {
		return nil
	}
	p, err := e.Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if err := ctx.Connect(p.First(), line); err != nil {
		return err
	}
	return ctx.Connect(p.Second(), gnd)
}
