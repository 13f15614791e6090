package report

import (
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"smps/converter"
)

// Charts 设计报告渲染
type Charts struct {
	Title        string                  // 报告标题
	Points       []SweepPoint            // 电感扫描数据
	TargetRipple float64                 // 目标纹波电流 (A)，为零时不画目标线
	Solution     *converter.BuckSolution // 最终选值（可为空）
}

// Render 渲染 HTML 报告
func (c *Charts) Render(w io.Writer) error {
	sub := "标称纹波电流随候选电感变化"
	if c.Solution != nil {
		sub = fmt.Sprintf("%s  |  选值 L=%.3g H, Cin=%.3g F, Cout=%.3g F",
			sub, c.Solution.Inductance, c.Solution.InputCapacitance, c.Solution.OutputCapacitance)
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: sub,
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:  "scroll",
			Right: "10",
			Top:   "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:  "电感 (H)",
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "纹波电流 (A)",
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithAnimation(true),
	)

	xs := make([]string, len(c.Points))
	ripple := make([]opts.LineData, len(c.Points))
	for i, p := range c.Points {
		xs[i] = fmt.Sprintf("%.3g", p.Inductance)
		ripple[i] = opts.LineData{Value: p.Ripple}
	}
	line.SetXAxis(xs).AddSeries("纹波电流", ripple)
	if c.TargetRipple > 0 {
		target := make([]opts.LineData, len(c.Points))
		for i := range target {
			target[i] = opts.LineData{Value: c.TargetRipple}
		}
		line.AddSeries("目标纹波", target)
	}

	page := components.NewPage()
	page.AddCharts(line)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		log.Println(err)
	}
}
