package types

// Regime 电路工况
type Regime string

// 工况常量定义
const (
	RegimeResonance  Regime = "resonance"  // 谐振：X_L = X_C
	RegimeInductive  Regime = "inductive"  // 感性：X_L > X_C
	RegimeCapacitive Regime = "capacitive" // 容性：X_L < X_C
	RegimeResistive  Regime = "resistive"  // 纯阻性，仅作为通用相量图的默认值
)

func (r Regime) String() string { return string(r) }

// Case 返回带电路前缀的工况标题，如 "LCR-capacitive"
// 非 LCR 工况原样返回
func (r Regime) Case() string {
	switch r {
	case RegimeResonance, RegimeInductive, RegimeCapacitive:
		return "LCR-" + string(r)
	}
	return string(r)
}
