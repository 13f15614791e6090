package converter

import (
	"errors"
	"fmt"

	"smps/element"
	"smps/net"
)

var (
	// ErrBadBundle 传入的接口不满足控制器端口束形状
	ErrBadBundle = errors.New("converter: 接口不满足 buck-converter 端口束形状")
	// ErrNoBootstrapPort 配置了自举元件但接口上没有自举端口
	ErrNoBootstrapPort = errors.New("converter: 接口上没有自举端口")
)

// OutputVOut 装配输出端口的命名键。
const OutputVOut = "VOUT"

// Architecture 变换器架构能力：对着控制器接口装配电路，
// 返回至少一个命名输出端口。新拓扑（boost、反激等）实现同一方法
// 即可接入，不需要改动引擎。
type Architecture interface {
	// Assemble 在搭建上下文中实例化元件并建立连接，
	// 返回 输出名 → 端口 的映射。
	Assemble(ctx *net.Context, itf *net.Bundle) (map[string]*net.Port, error)
}

// BuckArchitecture 降压拓扑装配器。五个元件位各自接受单个元件或
// 串联网络；自举与低侧通路为可选位，用显式包装表达存在与否。
// 构造一次、由 Assemble 消费一次，自身不持有可变状态。
type BuckArchitecture struct {
	InputCap  element.Instantiable // 输入储能电容
	OutputCap element.Instantiable // 输出储能电容
	Coil      element.Instantiable // 功率电感
	Bootstrap element.Optional     // 自举电荷泵网络（可选）
	LowSide   element.Optional     // 低侧续流通路（可选，非同步工作）
}

// Assemble 按固定顺序装配降压拓扑。顺序不能调换：后面的步骤
// 引用前面创建的节点。失败时上下文可能残留已完成步骤的连接，
// 调用者不应复用失败后的上下文。
func (b *BuckArchitecture) Assemble(ctx *net.Context, itf *net.Bundle) (map[string]*net.Port, error) {
	// 1. 形状校验，在任何实例化之前
	for _, name := range []string{net.PinVIn, net.PinGnd, net.PinSW, net.PinFB} {
		if !itf.HasPort(name) {
			return nil, fmt.Errorf("%w: 缺少 %q（实际端口 %v）", ErrBadBundle, name, itf.PortNames())
		}
	}
	vin, _ := itf.Port(net.PinVIn)
	gnd, _ := itf.Port(net.PinGnd)
	sw, _ := itf.Port(net.PinSW)

	// 2. 输入储能电容旁路在输入轨与地之间
	cin, err := b.InputCap.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("输入电容: %w", err)
	}
	if err := ctx.Connect(cin.First(), vin); err != nil {
		return nil, err
	}
	if err := ctx.Connect(cin.Second(), gnd); err != nil {
		return nil, err
	}

	// 3. 电感横跨开关节点与新建的输出节点
	coil, err := b.Coil.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("电感: %w", err)
	}
	out := ctx.NewNode(OutputVOut)
	if err := ctx.Connect(coil.First(), sw); err != nil {
		return nil, err
	}
	if err := ctx.Connect(coil.Second(), out); err != nil {
		return nil, err
	}

	// 4. 输出储能电容旁路在输出节点与地之间
	cout, err := b.OutputCap.Instantiate(ctx)
	if err != nil {
		return nil, fmt.Errorf("输出电容: %w", err)
	}
	if err := ctx.Connect(cout.First(), out); err != nil {
		return nil, err
	}
	if err := ctx.Connect(cout.Second(), gnd); err != nil {
		return nil, err
	}

	// 5. 自举网络：先做结构化端口检查，确认存在后才实例化与连接，
	// 保证失败时不留下任何自举侧的局部接线
	if bs, ok := b.Bootstrap.Get(); ok {
		if !itf.HasPort(net.PinBoot) {
			return nil, fmt.Errorf("%w: 配置了自举元件（实际端口 %v）", ErrNoBootstrapPort, itf.PortNames())
		}
		boot, _ := itf.Port(net.PinBoot)
		bp, err := bs.Instantiate(ctx)
		if err != nil {
			return nil, fmt.Errorf("自举网络: %w", err)
		}
		if err := ctx.Connect(bp.First(), boot); err != nil {
			return nil, err
		}
		if err := ctx.Connect(bp.Second(), sw); err != nil {
			return nil, err
		}
	}

	// 6. 低侧续流通路：阴极/第二端接开关节点，阳极/第一端接地
	if ls, ok := b.LowSide.Get(); ok {
		lp, err := ls.Instantiate(ctx)
		if err != nil {
			return nil, fmt.Errorf("低侧通路: %w", err)
		}
		if err := ctx.Connect(lp.Second(), sw); err != nil {
			return nil, err
		}
		if err := ctx.Connect(lp.First(), gnd); err != nil {
			return nil, err
		}
	}

	return map[string]*net.Port{OutputVOut: out}, nil
}
