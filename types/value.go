package types

// Params 串联 LCR 电路参数
type Params struct {
	I0 float64 // 电流峰值
	R  float64 // 电阻
	XL float64 // 感抗
	XC float64 // 容抗
}

// Peaks 各电压峰值
type Peaks struct {
	V0  float64 // 总电压
	VR0 float64 // 电阻电压
	VL0 float64 // 电感电压
	VC0 float64 // 电容电压
}

// Sample 波形图上的采样点 (相位, 瞬时值)
type Sample struct {
	Theta float64
	Value float64
}

// Tip 相量图上的相量端点
type Tip struct {
	X float64
	Y float64
}
