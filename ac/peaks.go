// Package ac 串联 LCR 电路的交流量计算。
//
// 所有函数均为纯函数，不做输入校验：
// 例如 R = 0 且 X_L = X_C 时相位角为 NaN，结果原样传递给绘图。
package ac

import (
	"math"

	"phasor/types"
)

// GetPeaks 由电流峰值与阻抗得到各电压峰值
func GetPeaks(p types.Params) types.Peaks {
	vR0 := p.I0 * p.R
	vL0 := p.I0 * p.XL
	vC0 := p.I0 * p.XC
	return types.Peaks{
		V0:  math.Sqrt(vR0*vR0 + (vC0-vL0)*(vC0-vL0)),
		VR0: vR0,
		VL0: vL0,
		VC0: vC0,
	}
}

// Classify 判断电路工况
// 使用严格相等比较，接近谐振的输入可能因舍入而被判为感性或容性
func Classify(xl, xc float64) types.Regime {
	switch {
	case xl == xc:
		return types.RegimeResonance
	case xl > xc:
		return types.RegimeInductive
	default:
		return types.RegimeCapacitive
	}
}

// PhaseAngle 电流相对总电压的相位角 arctan((X_C - X_L) / R)
// 容性时为正
func PhaseAngle(r, xl, xc float64) float64 {
	return math.Atan((xc - xl) / r)
}
