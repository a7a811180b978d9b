package types

import "math"

// 默认参数常量定义
var (
	DefaultTheta1  = math.Pi / 4     // 默认采样相位
	DefaultSamples = 500             // 一个周期内的采样点数
	DefaultCase    = RegimeResistive // 通用相量图默认工况
)

// 默认电路参数
var (
	DefaultI0 = 1.0 // 电流峰值
	DefaultR  = 0.5 // 电阻
	DefaultXC = 0.7 // 容抗
	DefaultXL = 0.3 // 感抗
)

// 通用相量图默认峰值
var (
	DefaultPhasorV0 = 1.0 // 电压峰值
	DefaultPhasorI0 = 0.6 // 电流峰值
)
