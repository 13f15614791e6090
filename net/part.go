package net

import "fmt"

// Part 已实例化的元件。每个引脚在实例化时分配独立节点，
// 后续通过 Connect 并入外部网络。
type Part struct {
	name     string
	pinNames []string
	pins     []*Port
	flip     bool
}

// NewPart 实例化元件：按引脚名列表逐一分配节点，元件名自动编号
// （如 C1、L2）。flip 翻转两端元件的极性约定。
func (ctx *Context) NewPart(kind string, pinNames []string, flip bool) *Part {
	p := &Part{
		name:     fmt.Sprintf("%s%d", kind, len(ctx.parts)+1),
		pinNames: pinNames,
		flip:     flip,
	}
	p.pins = make([]*Port, len(pinNames))
	for i, pn := range pinNames {
		label := p.name + "." + pn
		p.pins[i] = &Port{ctx: ctx, id: ctx.newNode(label), label: label}
	}
	ctx.parts = append(ctx.parts, p)
	return p
}

// NewComposite 以既有端口对登记一个组合元件（串联网络的外侧两端）。
func (ctx *Context) NewComposite(kind string, first, second *Port) *Part {
	p := &Part{
		name:     fmt.Sprintf("%s%d", kind, len(ctx.parts)+1),
		pinNames: []string{"1", "2"},
		pins:     []*Port{first, second},
	}
	ctx.parts = append(ctx.parts, p)
	return p
}

// Name 元件实例名。
func (p *Part) Name() string { return p.name }

// PinCount 引脚数量。
func (p *Part) PinCount() int { return len(p.pins) }

// Pin 按索引取引脚端口，越界时返回 nil。
func (p *Part) Pin(i int) *Port {
	if i < 0 || i >= len(p.pins) {
		return nil
	}
	return p.pins[i]
}

// PinByName 按引脚名取端口，未命中时返回 nil。
func (p *Part) PinByName(name string) *Port {
	for i, pn := range p.pinNames {
		if pn == name {
			return p.pins[i]
		}
	}
	return nil
}

// First 两端元件的第一端（有极性元件的阳极）。极性约定：
// 第一端默认朝向上游/输入侧，flip 为真时与 Second 互换。
func (p *Part) First() *Port {
	if p.flip {
		return p.pins[len(p.pins)-1]
	}
	return p.pins[0]
}

// Second 两端元件的第二端（有极性元件的阴极）。
func (p *Part) Second() *Port {
	if p.flip {
		return p.pins[0]
	}
	return p.pins[len(p.pins)-1]
}
