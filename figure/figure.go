// Package figure 在 gonum/plot 画布上绘制相量图与波形图。
//
// 左侧为相量图，右侧为一个周期的波形图，宽度比 1:2，
// 相量端点与波形采样点之间以连接线相连。
package figure

import (
	"fmt"
	"math"

	"github.com/rs/zerolog"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"phasor/diagram"
	"phasor/types"
)

// Link 相量端点到波形采样点的连接线
type Link struct {
	Signal types.Signal
	From   vg.Point // 相量图中的端点
	To     vg.Point // 波形图中的采样点
}

// Figure 双面板图
type Figure struct {
	Canvas     draw.Canvas // 整体画布
	Phasor     *plot.Plot  // 相量图
	Wave       *plot.Plot  // 波形图
	PhasorArea draw.Canvas // 相量图数据区域
	WaveArea   draw.Canvas // 波形图数据区域
	Links      []Link      // 已绘制的连接线
}

// tickLabels 波形图横轴刻度
var tickLabels = []string{"0", "π/2", "π", "3π/2", "2π"}

// Render 将 d 绘制到画布 c 上
func Render(c draw.Canvas, d *diagram.Diagram, log zerolog.Logger) (*Figure, error) {
	log.Debug().
		Str("regime", d.Regime.String()).
		Float64("phi", d.Phi).
		Float64("theta1", d.Theta1).
		Int("traces", len(d.Visible())).
		Msg("绘制相量图")

	wave, err := wavePanel(d)
	if err != nil {
		return nil, fmt.Errorf("波形图: %w", err)
	}
	ph, err := phasorPanel(d)
	if err != nil {
		return nil, fmt.Errorf("相量图: %w", err)
	}

	fig := &Figure{Canvas: c, Phasor: ph, Wave: wave}
	left, right := split(c, d.Bounds)
	if d.CenterLegend {
		wave.Legend.XOffs = -(right.Max.X - right.Min.X) / 3
	}
	ph.Draw(left)
	wave.Draw(right)
	fig.PhasorArea = ph.DataCanvas(left)
	fig.WaveArea = wave.DataCanvas(right)
	fig.link(d)
	return fig, nil
}

// split 按 1:2 划分画布，相量图保持等比例
func split(c draw.Canvas, b diagram.Bounds) (left, right draw.Canvas) {
	c = draw.Crop(c, Margin, -Margin, Margin, -Margin)
	w := c.Max.X - c.Min.X
	h := c.Max.Y - c.Min.Y
	left, right = c, c
	left.Max.X = c.Min.X + w/3
	right.Min.X = left.Max.X + Margin

	// 等比例：数据宽高比 2r : (ymax - ymin)
	aspect := 2 * b.Radius / (b.YMax - b.YMin)
	lw := left.Max.X - left.Min.X
	if vg.Length(aspect)*h <= lw {
		pw := vg.Length(aspect) * h
		left.Min.X += (lw - pw) / 2
		left.Max.X = left.Min.X + pw
	} else {
		ph := lw / vg.Length(aspect)
		left.Min.Y += (h - ph) / 2
		left.Max.Y = left.Min.Y + ph
	}
	return left, right
}

// newPanel 无边框、无刻度的面板
func newPanel() *plot.Plot {
	p := plot.New()
	p.HideAxes()
	p.X.Padding, p.Y.Padding = 0, 0
	p.Legend.TextStyle.Font.Size = vg.Points(8)
	return p
}

// axes 过原点的坐标轴
func axes(p *plot.Plot, xmin, xmax, ymin, ymax float64) error {
	sty := draw.LineStyle{Color: black, Width: LineWidth}
	for _, seg := range [][4]float64{{xmin, 0, xmax, 0}, {0, ymin, 0, ymax}} {
		l, err := newLine([]float64{seg[0], seg[2]}, []float64{seg[1], seg[3]}, sty)
		if err != nil {
			return err
		}
		if l != nil {
			p.Add(l)
		}
	}
	return nil
}

func wavePanel(d *diagram.Diagram) (*plot.Plot, error) {
	p := newPanel()
	p.Legend.Top = true
	xmax := d.Theta[len(d.Theta)-1]
	if err := axes(p, 0, xmax, d.Bounds.YMin, d.Bounds.YMax); err != nil {
		return nil, err
	}
	omega, err := newLabel(xmax, 0.1, "ωt", vg.Points(10))
	if err != nil {
		return nil, err
	}
	p.Add(omega)

	for _, tr := range d.Visible() {
		l, err := newLine(d.Theta, tr.Wave, draw.LineStyle{
			Color: nrgba(tr.Color, StyleOf(tr.Kind).CurveAlpha),
			Width: LineWidth,
		})
		if err != nil {
			return nil, err
		}
		if l == nil {
			continue
		}
		p.Add(l)
		p.Legend.Add(tr.Label, l)
	}

	for i, label := range tickLabels {
		tick := 2 * math.Pi * float64(i) / float64(len(tickLabels)-1)
		l, err := newLine([]float64{tick, tick}, []float64{-0.03, 0.03},
			draw.LineStyle{Color: black, Width: TickWidth})
		if err != nil {
			return nil, err
		}
		text, err := newLabel(tick-0.15, -0.2, label, vg.Points(8))
		if err != nil {
			return nil, err
		}
		p.Add(text)
		if l != nil {
			p.Add(l)
		}
	}

	cursor, err := newLine([]float64{d.Theta1, d.Theta1}, []float64{d.Bounds.YMin, d.Bounds.YMax},
		draw.LineStyle{Color: nrgba(black, 0.4), Width: LineWidth, Dashes: Dashes})
	if err != nil {
		return nil, err
	}
	if cursor != nil {
		p.Add(cursor)
	}

	for _, tr := range d.Visible() {
		p.Add(marker(tr, tr.Sample.Theta, tr.Sample.Value))
	}

	p.X.Min, p.X.Max = 0, xmax
	p.Y.Min, p.Y.Max = d.Bounds.YMin, d.Bounds.YMax
	return p, nil
}

func phasorPanel(d *diagram.Diagram) (*plot.Plot, error) {
	p := newPanel()
	r := d.Bounds.Radius
	if err := axes(p, -r, r, d.Bounds.YMin, d.Bounds.YMax); err != nil {
		return nil, err
	}

	visible := d.Visible()
	for _, tr := range visible {
		xs := make([]float64, len(d.Theta))
		ys := make([]float64, len(d.Theta))
		for i, th := range d.Theta {
			xs[i] = tr.Amplitude * math.Cos(th)
			ys[i] = tr.Amplitude * math.Sin(th)
		}
		sty := StyleOf(tr.Kind)
		l, err := newLine(xs, ys, draw.LineStyle{
			Color:  nrgba(tr.Color, sty.CircleAlpha),
			Width:  sty.CircleWidth,
			Dashes: Dashes,
		})
		if err != nil {
			return nil, err
		}
		if l != nil {
			p.Add(l)
		}
	}
	for _, tr := range visible {
		p.Add(&Arrow{
			X:          tr.Tip.X,
			Y:          tr.Tip.Y,
			Color:      nrgba(tr.Color, StyleOf(tr.Kind).ArrowAlpha),
			Width:      ArrowWidth,
			HeadWidth:  HeadWidth,
			HeadLength: HeadLength,
		})
	}
	for _, tr := range visible {
		p.Add(marker(tr, tr.Tip.X, tr.Tip.Y))
	}

	p.X.Min, p.X.Max = -r, r
	p.Y.Min, p.Y.Max = d.Bounds.YMin, d.Bounds.YMax
	return p, nil
}

func marker(tr diagram.Trace, x, y float64) *Marker {
	sty := StyleOf(tr.Kind)
	return &Marker{
		X:      x,
		Y:      y,
		Fill:   nrgba(sty.MarkerFill, sty.MarkerAlpha),
		Edge:   nrgba(black, sty.MarkerAlpha),
		Radius: MarkerRadius,
		Width:  EdgeWidth,
	}
}

// link 跨面板绘制连接线
// 任一端点落在数据区域外时不绘制
func (fig *Figure) link(d *diagram.Diagram) {
	phX, phY := fig.Phasor.Transforms(&fig.PhasorArea)
	wvX, wvY := fig.Wave.Transforms(&fig.WaveArea)
	for _, tr := range d.Visible() {
		if !finite(tr.Tip.X) || !finite(tr.Tip.Y) || !finite(tr.Sample.Theta) || !finite(tr.Sample.Value) {
			continue
		}
		l := Link{
			Signal: tr.Signal,
			From:   vg.Point{X: phX(tr.Tip.X), Y: phY(tr.Tip.Y)},
			To:     vg.Point{X: wvX(tr.Sample.Theta), Y: wvY(tr.Sample.Value)},
		}
		if !fig.PhasorArea.Contains(l.From) || !fig.WaveArea.Contains(l.To) {
			continue
		}
		sty := draw.LineStyle{Color: nrgba(tr.Color, StyleOf(tr.Kind).LinkAlpha), Width: LineWidth}
		fig.Canvas.StrokeLine2(sty, l.From.X, l.From.Y, l.To.X, l.To.Y)
		fig.Links = append(fig.Links, l)
	}
}

var (
	_ plot.Plotter = (*Arrow)(nil)
	_ plot.Plotter = (*Marker)(nil)
)
