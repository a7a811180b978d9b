package debug

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 以网页形式查看计算结果
type Charts struct {
	Record
}

// Render 输出 HTML 页面
func (c *Charts) Render(w io.Writer) error {
	legend := opts.Legend{
		Type:   "scroll",
		Orient: "vertical",
		Right:  "10",
		Top:    "20",
		Bottom: "20",
	}
	lineW := charts.NewLine()
	lineW.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "波形",
			Subtitle: fmt.Sprintf("%s, φ = %.4f rad", c.Case, c.Phi),
		}),
		charts.WithLegendOpts(legend),
		charts.WithXAxisOpts(opts.XAxis{
			Name:        "ωt",
			SplitNumber: 4,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
	)
	lineP := charts.NewLine()
	lineP.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "相量",
			Subtitle: fmt.Sprintf("θ₁ = %.4f rad", c.Theta1),
		}),
		charts.WithLegendOpts(legend),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:  "value",
			Scale: opts.Bool(true),
		}),
	)

	// 波形
	axis := make([]string, len(c.Theta))
	for i, t := range c.Theta {
		axis[i] = fmt.Sprintf("%.3f", t)
	}
	lineW.SetXAxis(axis)
	for i, name := range c.Signals {
		if !c.Visible[i] {
			continue
		}
		items := make([]opts.LineData, len(c.Waves[i]))
		for x, v := range c.Waves[i] {
			items[x] = opts.LineData{Value: clean(v)}
		}
		lineW.AddSeries(name, items,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: c.Colors[i]}),
		)
	}

	// 相量：原点到端点
	for i, name := range c.Signals {
		if !c.Visible[i] {
			continue
		}
		tip := c.Tips[i]
		lineP.AddSeries(name, []opts.LineData{
			{Value: []any{0, 0}},
			{Value: []any{clean(tip.X), clean(tip.Y)}},
		}, charts.WithItemStyleOpts(opts.ItemStyle{Color: c.Colors[i]}))
	}

	page := components.NewPage()
	page.AddCharts(
		lineW,
		lineP,
	)
	return page.Render(w)
}

// clean 将无效值转为空，避免编码失败
func clean(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return v
}
