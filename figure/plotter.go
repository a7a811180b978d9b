package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Arrow 从原点出发的相量箭头，箭头长度计入相量长度
type Arrow struct {
	X, Y       float64     // 端点
	Color      color.Color // 颜色
	Width      vg.Length   // 线宽
	HeadWidth  float64     // 箭头宽度（数据单位）
	HeadLength float64     // 箭头长度（数据单位）
}

// Plot 实现 plot.Plotter
func (a *Arrow) Plot(c draw.Canvas, plt *plot.Plot) {
	length := math.Hypot(a.X, a.Y)
	if length == 0 || !finite(length) {
		return
	}
	trX, trY := plt.Transforms(&c)
	ux, uy := a.X/length, a.Y/length
	hl := math.Min(a.HeadLength, length)
	bx, by := a.X-ux*hl, a.Y-uy*hl
	if hl < length {
		c.StrokeLine2(draw.LineStyle{Color: a.Color, Width: a.Width}, trX(0), trY(0), trX(bx), trY(by))
	}
	px, py := -uy*a.HeadWidth/2, ux*a.HeadWidth/2
	c.FillPolygon(a.Color, []vg.Point{
		{X: trX(a.X), Y: trY(a.Y)},
		{X: trX(bx + px), Y: trY(by + py)},
		{X: trX(bx - px), Y: trY(by - py)},
	})
}

// Marker 带描边的圆形采样点，数据区域外的点不绘制
type Marker struct {
	X, Y   float64
	Fill   color.Color // 填充色
	Edge   color.Color // 描边色
	Radius vg.Length   // 半径
	Width  vg.Length   // 描边宽度
}

// Plot 实现 plot.Plotter
func (m *Marker) Plot(c draw.Canvas, plt *plot.Plot) {
	if !finite(m.X) || !finite(m.Y) {
		return
	}
	trX, trY := plt.Transforms(&c)
	pt := vg.Point{X: trX(m.X), Y: trY(m.Y)}
	if !c.Contains(pt) {
		return
	}
	var p vg.Path
	p.Move(vg.Point{X: pt.X + m.Radius, Y: pt.Y})
	p.Arc(pt, m.Radius, 0, 2*math.Pi)
	p.Close()
	c.SetColor(m.Fill)
	c.Fill(p)
	c.SetLineStyle(draw.LineStyle{Color: m.Edge, Width: m.Width})
	c.Stroke(p)
}

// newLine 生成折线，忽略 NaN 与 Inf 点
// 全部点无效时返回 nil
func newLine(xs, ys []float64, sty draw.LineStyle) (*plotter.Line, error) {
	xys := make(plotter.XYs, 0, len(xs))
	for i := range xs {
		if finite(xs[i]) && finite(ys[i]) {
			xys = append(xys, plotter.XY{X: xs[i], Y: ys[i]})
		}
	}
	if len(xys) == 0 {
		return nil, nil
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return nil, err
	}
	l.LineStyle = sty
	return l, nil
}

// newLabel 在数据坐标处放置文字
func newLabel(x, y float64, text string, size vg.Length) (*plotter.Labels, error) {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: x, Y: y}},
		Labels: []string{text},
	})
	if err != nil {
		return nil, err
	}
	for i := range l.TextStyle {
		l.TextStyle[i].Font.Size = size
		l.TextStyle[i].Color = black
	}
	return l, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
