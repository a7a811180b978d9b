// Package phasor 绘制串联 LCR 电路的相量图与波形图。
//
// 三个入口 PlotLCR、PlotLCRBasic、PlotPhasor 共用 diagram 与 figure 包，
// 调用方提供画布并负责导出。
package phasor

import (
	"github.com/rs/zerolog"
	"gonum.org/v1/plot/vg/draw"

	"phasor/diagram"
	"phasor/figure"
	"phasor/types"
)

// logger 包级日志，默认丢弃
var logger = zerolog.Nop()

// SetLogger 设置包级日志
func SetLogger(l zerolog.Logger) { logger = l }

// LCR 串联 LCR 图参数
type LCR struct {
	Theta1 float64 // 快照相位
	I0     float64 // 电流峰值
	R      float64 // 电阻
	XC     float64 // 容抗
	XL     float64 // 感抗
}

// DefaultLCR 默认参数：θ₁=π/4, i_0=1, R=0.5, X_C=0.7, X_L=0.3
func DefaultLCR() LCR {
	return LCR{
		Theta1: types.DefaultTheta1,
		I0:     types.DefaultI0,
		R:      types.DefaultR,
		XC:     types.DefaultXC,
		XL:     types.DefaultXL,
	}
}

// Params 电路参数
func (p LCR) Params() types.Params {
	return types.Params{I0: p.I0, R: p.R, XL: p.XL, XC: p.XC}
}

// Phasor 通用双相量图参数
type Phasor struct {
	Phi    float64      // 电流相对电压的相位角
	Theta1 float64      // 快照相位
	Case   types.Regime // 工况标签，仅原样返回
	V0     float64      // 电压峰值
	I0     float64      // 电流峰值
}

// DefaultPhasor 默认参数：θ₁=π/4, 工况 resistive, v_0=1, i_0=0.6
func DefaultPhasor(phi float64) Phasor {
	return Phasor{
		Phi:    phi,
		Theta1: types.DefaultTheta1,
		Case:   types.DefaultCase,
		V0:     types.DefaultPhasorV0,
		I0:     types.DefaultPhasorI0,
	}
}

// PlotLCR 绘制完整 LCR 图：电流、总电压及三个分量电压
func PlotLCR(c draw.Canvas, p LCR) (*figure.Figure, types.Regime, error) {
	return plotLCR(c, p, diagram.DetailFull)
}

// PlotLCRBasic 绘制简化 LCR 图，仅电流与总电压
func PlotLCRBasic(c draw.Canvas, p LCR) (*figure.Figure, types.Regime, error) {
	return plotLCR(c, p, diagram.DetailBasic)
}

func plotLCR(c draw.Canvas, p LCR, detail diagram.Detail) (*figure.Figure, types.Regime, error) {
	d := diagram.NewLCR(p.Theta1, p.Params(), detail)
	fig, err := figure.Render(c, d, logger)
	if err != nil {
		return nil, d.Regime, err
	}
	return fig, d.Regime, nil
}

// Regime 调用方给定的工况，为空时为 resistive
func (p Phasor) Regime() types.Regime {
	if p.Case == "" {
		return types.DefaultCase
	}
	return p.Case
}

// PlotPhasor 绘制通用双相量图，不涉及 LCR 峰值计算
// 返回的工况即 p.Regime()
func PlotPhasor(c draw.Canvas, p Phasor) (*figure.Figure, types.Regime, error) {
	fig, err := figure.Render(c, diagram.NewPhasor(p.Phi, p.Theta1, p.Regime(), p.V0, p.I0), logger)
	if err != nil {
		return nil, p.Regime(), err
	}
	return fig, p.Regime(), nil
}
