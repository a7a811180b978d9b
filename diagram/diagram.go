// Package diagram 描述一张相量/波形双面板图所需的全部数据。
//
// 三种图共用同一个 Diagram 结构，绘制由 figure 包完成。
package diagram

import (
	"image/color"

	"phasor/ac"
	"phasor/types"
)

// Detail 绘制详细程度
type Detail int

// 详细程度常量定义
const (
	DetailFull  Detail = iota // 全部信号
	DetailBasic               // 仅主信号
)

// Trace 一条信号的全部绘图数据
type Trace struct {
	Signal    types.Signal // 信号
	Kind      types.Kind   // 样式类别
	Label     string       // 图例
	Color     color.NRGBA  // 颜色
	Amplitude float64      // 峰值
	Offset    float64      // 相位偏移
	Wave      []float64    // 一个周期内的瞬时值
	Sample    types.Sample // θ₁ 处的波形采样点
	Tip       types.Tip    // θ₁ 时刻的相量端点
	Visible   bool         // 是否绘制
}

// 通用双相量图配色
var (
	phasorBlue = color.NRGBA{R: 0x0d, G: 0x47, B: 0xa1, A: 0xff} // 电压
	phasorRed  = color.NRGBA{R: 0xda, G: 0x1e, B: 0x37, A: 0xff} // 电流
)

// Bounds 面板坐标范围
type Bounds struct {
	Radius float64 // 相量图 x 方向半宽
	YMin   float64
	YMax   float64
}

// Diagram 双面板图数据
type Diagram struct {
	Theta        []float64    // 一个周期的相位采样
	Theta1       float64      // 快照相位
	Phi          float64      // 相位角
	Traces       []Trace      // 信号列表，按绘制顺序
	Bounds       Bounds       // 坐标范围
	Regime       types.Regime // 工况
	CenterLegend bool         // 图例居中置顶，否则置于右上
}

// LCRBounds LCR 图坐标范围
var LCRBounds = Bounds{Radius: 1.2, YMin: -1.2, YMax: 1.4}

// PhasorBounds 通用相量图坐标范围
var PhasorBounds = Bounds{Radius: 1.2, YMin: -1.2, YMax: 1.2}

// NewLCR 由电路参数生成 LCR 图数据
// 不同 detail 的计算结果完全相同，仅 Visible 不同
func NewLCR(theta1 float64, p types.Params, detail Detail) *Diagram {
	peaks := ac.GetPeaks(p)
	phi := ac.PhaseAngle(p.R, p.XL, p.XC)
	theta := ac.Period(types.DefaultSamples)
	waves := ac.Calculate(theta, phi, p.I0, peaks)
	colors := types.ColorScheme()

	d := &Diagram{
		Theta:        theta,
		Theta1:       theta1,
		Phi:          phi,
		Traces:       make([]Trace, 0, len(types.Signals)),
		Bounds:       LCRBounds,
		Regime:       ac.Classify(p.XL, p.XC),
		CenterLegend: true,
	}
	for _, s := range types.Signals {
		d.Traces = append(d.Traces, Trace{
			Signal:    s,
			Kind:      s.Kind(),
			Label:     s.Label(),
			Color:     colors.RGBA(s),
			Amplitude: ac.Amplitude(s, p.I0, peaks),
			Offset:    ac.Offset(s, phi),
			Wave:      waves[s],
			Sample:    ac.Wavesample(s, theta1, phi, p.I0, peaks),
			Tip:       ac.Phasortip(s, theta1, phi, p.I0, peaks),
			Visible:   detail == DetailFull || s.Kind() == types.KindPrimary,
		})
	}
	return d
}

// NewPhasor 通用双相量图数据，直接给定相位角与峰值
// regime 由调用方给出，不做计算
func NewPhasor(phi, theta1 float64, regime types.Regime, v0, i0 float64) *Diagram {
	theta := ac.Period(types.DefaultSamples)
	peaks := types.Peaks{V0: v0}

	d := &Diagram{
		Theta:  theta,
		Theta1: theta1,
		Phi:    phi,
		Bounds: PhasorBounds,
		Regime: regime,
	}
	for _, tc := range []struct {
		s types.Signal
		c color.NRGBA
	}{{types.SignalV, phasorBlue}, {types.SignalI, phasorRed}} {
		wave := make([]float64, len(theta))
		for i, th := range theta {
			wave[i] = ac.Value(tc.s, th, phi, i0, peaks)
		}
		d.Traces = append(d.Traces, Trace{
			Signal:    tc.s,
			Kind:      types.KindPrimary,
			Label:     tc.s.Label(),
			Color:     tc.c,
			Amplitude: ac.Amplitude(tc.s, i0, peaks),
			Offset:    ac.Offset(tc.s, phi),
			Wave:      wave,
			Sample:    ac.Wavesample(tc.s, theta1, phi, i0, peaks),
			Tip:       ac.Phasortip(tc.s, theta1, phi, i0, peaks),
			Visible:   true,
		})
	}
	return d
}

// Visible 返回需要绘制的信号
func (d *Diagram) Visible() []Trace {
	list := make([]Trace, 0, len(d.Traces))
	for _, tr := range d.Traces {
		if tr.Visible {
			list = append(list, tr)
		}
	}
	return list
}

// Trace 按信号查找
func (d *Diagram) Trace(s types.Signal) (Trace, bool) {
	for _, tr := range d.Traces {
		if tr.Signal == s {
			return tr, true
		}
	}
	return Trace{}, false
}
