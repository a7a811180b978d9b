package ac

import (
	"math"

	"phasor/types"
)

// Wavesample 波形图上 theta1 处的采样点
func Wavesample(s types.Signal, theta1, phi, i0 float64, peaks types.Peaks) types.Sample {
	return types.Sample{Theta: theta1, Value: Value(s, theta1, phi, i0, peaks)}
}

// Phasortip 相量图上 theta1 时刻的相量端点
func Phasortip(s types.Signal, theta1, phi, i0 float64, peaks types.Peaks) types.Tip {
	amp, angle := Amplitude(s, i0, peaks), theta1+Offset(s, phi)
	return types.Tip{X: amp * math.Cos(angle), Y: amp * math.Sin(angle)}
}

// Wavesamples 全部信号的采样点，顺序同 types.Signals
func Wavesamples(theta1, phi, i0 float64, peaks types.Peaks) []types.Sample {
	list := make([]types.Sample, len(types.Signals))
	for i, s := range types.Signals {
		list[i] = Wavesample(s, theta1, phi, i0, peaks)
	}
	return list
}

// Phasortips 全部信号的相量端点，顺序同 types.Signals
func Phasortips(theta1, phi, i0 float64, peaks types.Peaks) []types.Tip {
	list := make([]types.Tip, len(types.Signals))
	for i, s := range types.Signals {
		list[i] = Phasortip(s, theta1, phi, i0, peaks)
	}
	return list
}
