package net

import (
	"errors"
	"fmt"
	"sort"
)

// ErrPortNotFound 端口束上不存在指定名称的端口
var ErrPortNotFound = errors.New("net: 端口束上不存在指定端口")

// buck-converter 控制器端口束的标准引脚名。
const (
	PinVIn  = "vin"  // 输入电压
	PinGnd  = "gnd"  // 地
	PinSW   = "sw"   // 开关节点
	PinFB   = "fb"   // 反馈
	PinBoot = "boot" // 自举（可选）
)

// Bundle 命名端口束，描述一个电气接口暴露的端口集合。
// 端口束可以用声明辅助函数构造，也可以由中间组合逐个 Define 拼出，
// 因此对端口存在性的判断一律走 HasPort 的结构化检查，不依赖声明方式。
type Bundle struct {
	name  string
	ports map[string]*Port
}

// NewBundle 创建空端口束。
func NewBundle(name string) *Bundle {
	return &Bundle{name: name, ports: make(map[string]*Port)}
}

// NewBuckBundle 声明 buck-converter 控制器接口：
// vin/gnd/sw/fb 四个必备端口，withBootstrap 为真时附加 boot 端口。
func NewBuckBundle(ctx *Context, withBootstrap bool) *Bundle {
	b := NewBundle("buck-converter")
	b.Define(PinVIn, ctx.NewNode(PinVIn))
	b.Define(PinGnd, ctx.NewNode(PinGnd))
	b.Define(PinSW, ctx.NewNode(PinSW))
	b.Define(PinFB, ctx.NewNode(PinFB))
	if withBootstrap {
		b.Define(PinBoot, ctx.NewNode(PinBoot))
	}
	return b
}

// Name 端口束名称。
func (b *Bundle) Name() string { return b.name }

// Define 登记命名端口，同名覆盖。
func (b *Bundle) Define(name string, p *Port) {
	b.ports[name] = p
}

// HasPort 结构化检查端口是否实际存在于当前实例上。
func (b *Bundle) HasPort(name string) bool {
	_, ok := b.ports[name]
	return ok
}

// Port 按名称取端口，不存在时返回 ErrPortNotFound。
func (b *Bundle) Port(name string) (*Port, error) {
	p, ok := b.ports[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s 上无 %q", ErrPortNotFound, b.name, name)
	}
	return p, nil
}

// PortNames 端口名列表（排序后返回，便于稳定输出）。
func (b *Bundle) PortNames() []string {
	names := make([]string, 0, len(b.ports))
	for n := range b.ports {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
