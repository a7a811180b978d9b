package ac

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"phasor/types"
)

// Waves 各信号的瞬时值序列，按 types.Signal 索引
type Waves [5][]float64

// Get 返回信号的瞬时值序列
func (w *Waves) Get(s types.Signal) []float64 { return w[s] }

// Offset 信号相对总电压的相位偏移
func Offset(s types.Signal, phi float64) float64 {
	switch s {
	case types.SignalV:
		return 0
	case types.SignalVL:
		return phi + math.Pi/2
	case types.SignalVC:
		return phi - math.Pi/2
	default:
		return phi
	}
}

// Amplitude 信号峰值
func Amplitude(s types.Signal, i0 float64, peaks types.Peaks) float64 {
	switch s {
	case types.SignalI:
		return i0
	case types.SignalV:
		return peaks.V0
	case types.SignalVR:
		return peaks.VR0
	case types.SignalVL:
		return peaks.VL0
	case types.SignalVC:
		return peaks.VC0
	}
	return 0
}

// Value 信号在相位 theta 处的瞬时值
func Value(s types.Signal, theta, phi, i0 float64, peaks types.Peaks) float64 {
	return Amplitude(s, i0, peaks) * math.Sin(theta+Offset(s, phi))
}

// Calculate 计算全部信号在 theta 各点处的瞬时值
func Calculate(theta []float64, phi, i0 float64, peaks types.Peaks) (w Waves) {
	for _, s := range types.Signals {
		amp, off := Amplitude(s, i0, peaks), Offset(s, phi)
		w[s] = make([]float64, len(theta))
		for i, t := range theta {
			w[s][i] = amp * math.Sin(t+off)
		}
	}
	return w
}

// Period 在 [0, 2π] 上均匀取 n 个相位点
func Period(n int) []float64 {
	if n < 2 {
		n = 2
	}
	return floats.Span(make([]float64, n), 0, 2*math.Pi)
}
