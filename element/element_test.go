package element

import (
	"errors"
	"testing"

	"smps/net"
)

func TestCapacitorValidation(t *testing.T) {
	ctx := net.NewContext()
	if _, err := (Capacitor{Capacitance: 0}).Instantiate(ctx); !errors.Is(err, ErrNotPositive) {
		t.Fatalf("零容值应报 ErrNotPositive，得到 %v", err)
	}
	if _, err := (Inductor{Inductance: -1e-6}).Instantiate(ctx); !errors.Is(err, ErrNotPositive) {
		t.Fatalf("负感值应报 ErrNotPositive，得到 %v", err)
	}
	p, err := Capacitor{Capacitance: 10e-6}.Instantiate(ctx)
	if err != nil {
		t.Fatalf("实例化失败: %v", err)
	}
	if p.PinCount() != 2 {
		t.Fatalf("电容应有两个引脚，得到 %d", p.PinCount())
	}
}

func TestDiodePolarity(t *testing.T) {
	ctx := net.NewContext()
	d, err := Diode{}.Instantiate(ctx)
	if err != nil {
		t.Fatalf("实例化失败: %v", err)
	}
	if d.First() != d.PinByName("a") || d.Second() != d.PinByName("k") {
		t.Fatal("默认极性：第一端应为阳极")
	}
	f, _ := Diode{Flip: true}.Instantiate(ctx)
	if f.First() != f.PinByName("k") {
		t.Fatal("flip 后第一端应为阴极")
	}
}

func TestNetworkSeriesChain(t *testing.T) {
	ctx := net.NewContext()
	n := Network{
		Resistor{Resistance: 4.7},
		Capacitor{Capacitance: 100e-9},
	}
	p, err := n.Instantiate(ctx)
	if err != nil {
		t.Fatalf("网络实例化失败: %v", err)
	}
	parts := ctx.Parts()
	// 两个成员 + 组合元件本身
	if len(parts) != 3 {
		t.Fatalf("应登记 3 个元件，得到 %d", len(parts))
	}
	r, c := parts[0], parts[1]
	if !ctx.SameNet(r.Second(), c.First()) {
		t.Fatal("串联网络的相邻成员应首尾相连")
	}
	if p.First() != r.First() || p.Second() != c.Second() {
		t.Fatal("组合元件应暴露最外侧端口对")
	}

	if _, err := (Network{}).Instantiate(ctx); !errors.Is(err, ErrEmptyNetwork) {
		t.Fatalf("空网络应报 ErrEmptyNetwork，得到 %v", err)
	}
}

func TestOptional(t *testing.T) {
	o := None()
	if o.Present() {
		t.Fatal("None 不应存在")
	}
	if _, ok := o.Get(); ok {
		t.Fatal("None.Get 第二返回值应为假")
	}
	s := Some(Diode{})
	v, ok := s.Get()
	if !ok || v == nil {
		t.Fatal("Some 应取出元件")
	}
}
