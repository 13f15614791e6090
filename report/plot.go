package report

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// SavePlot 将电感扫描曲线绘制为 PNG/SVG（按扩展名），
// 目标纹波画成水平参考线。
func SavePlot(points []SweepPoint, targetRipple float64, path string) error {
	if len(points) == 0 {
		return fmt.Errorf("扫描数据为空，无法绘图")
	}
	p := plot.New()
	p.Title.Text = "纹波电流设计曲线"
	p.X.Label.Text = "电感 (H)"
	p.Y.Label.Text = "纹波电流 (A)"
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.Inductance
		xys[i].Y = pt.Ripple
	}
	curve, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	p.Add(curve)
	p.Legend.Add("纹波电流", curve)

	if targetRipple > 0 {
		ref, err := plotter.NewLine(plotter.XYs{
			{X: points[0].Inductance, Y: targetRipple},
			{X: points[len(points)-1].Inductance, Y: targetRipple},
		})
		if err != nil {
			return err
		}
		ref.Dashes = []vg.Length{vg.Points(4), vg.Points(4)}
		p.Add(ref)
		p.Legend.Add("目标纹波", ref)
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
