package figure

import (
	"image/color"

	"gonum.org/v1/plot/vg"

	"phasor/types"
)

// Style 信号类别对应的绘制样式
type Style struct {
	CurveAlpha  float64    // 波形曲线透明度
	CircleAlpha float64    // 相量轨迹圆透明度
	CircleWidth vg.Length  // 相量轨迹圆线宽
	ArrowAlpha  float64    // 相量箭头透明度
	MarkerFill  color.Gray // 采样点填充色
	MarkerAlpha float64    // 采样点透明度
	LinkAlpha   float64    // 连接线透明度
}

// styles 按类别区分主信号与分量信号
var styles = map[types.Kind]Style{
	types.KindPrimary: {
		CurveAlpha:  1.0,
		CircleAlpha: 0.4,
		CircleWidth: vg.Points(1),
		ArrowAlpha:  1.0,
		MarkerFill:  color.Gray{Y: 0x80},
		MarkerAlpha: 1.0,
		LinkAlpha:   0.6,
	},
	types.KindComponent: {
		CurveAlpha:  0.4,
		CircleAlpha: 0.4,
		CircleWidth: vg.Points(0.8),
		ArrowAlpha:  0.4,
		MarkerFill:  color.Gray{Y: 0xff},
		MarkerAlpha: 0.6,
		LinkAlpha:   0.4,
	},
}

// StyleOf 返回类别样式
func StyleOf(k types.Kind) Style {
	if s, ok := styles[k]; ok {
		return s
	}
	return styles[types.KindComponent]
}

// 尺寸常量定义
var (
	Width        = 8.5 * vg.Inch  // 默认画布宽度
	Height       = 3 * vg.Inch    // 默认画布高度
	DPI          = 150            // 默认分辨率
	Margin       = vg.Points(6)   // 画布边距
	LineWidth    = vg.Points(1)   // 坐标轴与曲线线宽
	TickWidth    = vg.Points(0.8) // 刻度线宽
	ArrowWidth   = vg.Points(1.5) // 相量箭头线宽
	MarkerRadius = vg.Points(2)   // 采样点半径
	EdgeWidth    = vg.Points(0.5) // 采样点描边宽度
	HeadWidth    = 0.07           // 箭头宽度（数据单位）
	HeadLength   = 0.1            // 箭头长度（数据单位）
	Dashes       = []vg.Length{vg.Points(3.7), vg.Points(1.6)}
)

// nrgba 带透明度的颜色
func nrgba(c color.Color, alpha float64) color.NRGBA {
	return types.Alpha(color.NRGBAModel.Convert(c).(color.NRGBA), alpha)
}

var black = color.NRGBA{A: 0xff}
