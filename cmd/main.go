package main

import (
	"fmt"
	"log"
	"os"

	"smps/converter"
	"smps/element"
	"smps/maths"
	"smps/net"
	"smps/report"
)

func main() {
	// 参考设计：12±0.5V → 5V，0~2A 典型 1A，500kHz，K=30%
	vin, _ := maths.Centered(12, 0.5)
	iout, _ := maths.New(0, 1, 2)
	cons, err := converter.NewBuckConstraints(vin, maths.Scalar(5), 0.1, 0.05, iout, maths.Scalar(500e3), 0.3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("占空比:", cons.DutyCycle())
	fmt.Println("目标纹波电流:", cons.TargetRippleCurrent())
	lMin, err := cons.Inductance()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("最小电感:", lMin)

	// 向上取整到可购得的值
	l := maths.Scalar(22e-6)
	ripple, err := cons.RippleCurrent(l)
	if err != nil {
		log.Fatal(err)
	}
	peak, err := cons.PeakCurrent(l)
	if err != nil {
		log.Fatal(err)
	}
	rms, err := cons.RMSCurrent(l)
	if err != nil {
		log.Fatal(err)
	}
	coutMin, err := cons.MinOutputCapacitance(l)
	if err != nil {
		log.Fatal(err)
	}
	cinMin, err := cons.MinInputCapacitance()
	if err != nil {
		log.Fatal(err)
	}
	dcm, err := cons.IsCCMNominal(l)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("实际纹波电流:", ripple)
	fmt.Printf("峰值电流: %.3f A  有效值电流: %v\n", peak, rms)
	fmt.Printf("电容下限: Cin >= %.3g F, Cout >= %.3g F\n", cinMin, coutMin)
	fmt.Println("标称负载电流过零(断续导通):", dcm)

	sol, err := converter.NewBuckSolution(22e-6, 22e-6, 47e-6)
	if err != nil {
		log.Fatal(err)
	}

	// 装配拓扑
	arch := &converter.BuckArchitecture{
		InputCap:  element.Capacitor{Capacitance: sol.InputCapacitance},
		OutputCap: element.Capacitor{Capacitance: sol.OutputCapacitance},
		Coil:      element.Inductor{Inductance: sol.Inductance},
		Bootstrap: element.Some(element.Network{
			element.Resistor{Resistance: 2.2},
			element.Capacitor{Capacitance: 100e-9},
		}),
		LowSide: element.Some(element.Diode{}),
	}
	ctx := net.NewContext()
	itf := net.NewBuckBundle(ctx, true)
	outs, err := arch.Assemble(ctx, itf)
	if err != nil {
		log.Fatal(err)
	}
	for name, port := range outs {
		fmt.Printf("输出端口 %s -> 节点 %d\n", name, port.Node())
	}
	for _, p := range ctx.Parts() {
		fmt.Println("元件:", p.Name())
	}

	// 设计报告
	points, err := report.Sweep(cons, 5e-6, 50e-6, 50)
	if err != nil {
		log.Fatal(err)
	}
	ch := &report.Charts{
		Title:        "降压变换器设计报告",
		Points:       points,
		TargetRipple: cons.TargetRippleCurrent().Nominal(),
		Solution:     sol,
	}
	f, err := os.Create("report.html")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	if err := ch.Render(f); err != nil {
		log.Fatal(err)
	}
	if err := report.SavePlot(points, ch.TargetRipple, "curve.png"); err != nil {
		log.Fatal(err)
	}
	fmt.Println("已生成 report.html 与 curve.png")
}
