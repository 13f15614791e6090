package net

import "testing"

func TestConnectIdempotentCommutative(t *testing.T) {
	ctx := NewContext()
	a := ctx.NewNode("a")
	b := ctx.NewNode("b")
	c := ctx.NewNode("c")

	if ctx.SameNet(a, b) {
		t.Fatal("未连接的节点不应同网")
	}
	if err := ctx.Connect(a, b); err != nil {
		t.Fatalf("连接失败: %v", err)
	}
	if !ctx.SameNet(a, b) {
		t.Fatal("连接后 a、b 应同网")
	}
	// 幂等：重复连接不改变结果
	if err := ctx.Connect(b, a); err != nil {
		t.Fatalf("重复连接失败: %v", err)
	}
	if !ctx.SameNet(a, b) {
		t.Fatal("重复连接后同网关系不应丢失")
	}
	// 可交换：任意顺序合并传递
	if err := ctx.Connect(c, b); err != nil {
		t.Fatalf("连接失败: %v", err)
	}
	if !ctx.SameNet(a, c) {
		t.Fatal("同网关系应可传递")
	}
}

func TestConnectRejectsBadPorts(t *testing.T) {
	ctx := NewContext()
	other := NewContext()
	a := ctx.NewNode("a")
	x := other.NewNode("x")

	if err := ctx.Connect(a, nil); err == nil {
		t.Fatal("空端口应报错")
	}
	if err := ctx.Connect(a, x); err == nil {
		t.Fatal("跨上下文端口应报错")
	}
}

func TestPartPinsAndPolarity(t *testing.T) {
	ctx := NewContext()
	p := ctx.NewPart("D", []string{"a", "k"}, false)
	if p.Name() != "D1" {
		t.Fatalf("元件名应自动编号，得到 %s", p.Name())
	}
	if p.First() != p.Pin(0) || p.Second() != p.Pin(1) {
		t.Fatal("默认极性：第一端应为 0 号引脚")
	}
	if p.PinByName("k") != p.Pin(1) {
		t.Fatal("按名取引脚错误")
	}
	if p.Pin(5) != nil {
		t.Fatal("越界引脚应返回 nil")
	}

	f := ctx.NewPart("D", []string{"a", "k"}, true)
	if f.First() != f.Pin(1) || f.Second() != f.Pin(0) {
		t.Fatal("flip 后两端应互换")
	}
}

func TestBundleStructuralInspection(t *testing.T) {
	ctx := NewContext()
	b := NewBuckBundle(ctx, false)
	for _, name := range []string{PinVIn, PinGnd, PinSW, PinFB} {
		if !b.HasPort(name) {
			t.Fatalf("缺少必备端口 %s", name)
		}
	}
	if b.HasPort(PinBoot) {
		t.Fatal("未声明自举端口时 HasPort 应为假")
	}
	if _, err := b.Port(PinBoot); err == nil {
		t.Fatal("取不存在的端口应报错")
	}

	// 结构化检查只看实际端口集合：组合拼出的端口束与声明构造等价
	manual := NewBundle("composed")
	manual.Define(PinBoot, ctx.NewNode(PinBoot))
	if !manual.HasPort(PinBoot) {
		t.Fatal("手工拼装的端口束应通过结构化检查")
	}
}
