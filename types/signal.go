package types

// Signal 电路中的信号
type Signal int

// 信号常量定义，顺序即绘制顺序
const (
	SignalI  Signal = iota // 电流
	SignalV                // 总电压
	SignalVR               // 电阻电压
	SignalVL               // 电感电压
	SignalVC               // 电容电压
)

// Kind 信号类别，决定绘制样式
type Kind int

// 信号类别常量定义
const (
	KindPrimary   Kind = iota // 主信号：不透明，灰色标记
	KindComponent             // 分量信号：半透明，白色标记
)

// signalTable 信号映射
var signalTable = map[Signal]struct {
	Name  string // 配色名称
	Label string // 图例名称
	Kind  Kind   // 类别
}{
	SignalI:  {Name: "I", Label: "i(t)", Kind: KindPrimary},
	SignalV:  {Name: "V", Label: "v(t)", Kind: KindPrimary},
	SignalVR: {Name: "V_R", Label: "v_R(t)", Kind: KindComponent},
	SignalVL: {Name: "V_L", Label: "v_L(t)", Kind: KindComponent},
	SignalVC: {Name: "V_C", Label: "v_C(t)", Kind: KindComponent},
}

// Signals 全部信号，按固定顺序
var Signals = []Signal{SignalI, SignalV, SignalVR, SignalVL, SignalVC}

// String 返回信号名称
func (s Signal) String() string {
	if v, ok := signalTable[s]; ok {
		return v.Name
	}
	return "Unknown"
}

// Label 返回图例文本
func (s Signal) Label() string {
	if v, ok := signalTable[s]; ok {
		return v.Label
	}
	return ""
}

// Kind 返回信号类别
func (s Signal) Kind() Kind {
	if v, ok := signalTable[s]; ok {
		return v.Kind
	}
	return KindComponent
}

func (k Kind) String() string {
	if k == KindPrimary {
		return "primary"
	}
	return "component"
}
