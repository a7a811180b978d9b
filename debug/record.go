package debug

import (
	"encoding/json"
	"io"
	"math"

	"phasor/diagram"
	"phasor/types"
)

// Record 记录一张图的计算结果
type Record struct {
	Regime  string         // 工况
	Case    string         // 工况标题
	Phi     float64        // 相位角
	Theta1  float64        // 快照相位
	Theta   []float64      // 相位列
	Signals []string       // 信号列表
	Visible []bool         // 是否绘制
	Colors  []string       // 信号颜色
	Waves   [][]float64    // 瞬时值列
	Samples []types.Sample // 波形采样点
	Tips    []types.Tip    // 相量端点
}

// Init 从图数据初始化
func (list *Record) Init(d *diagram.Diagram) {
	*list = Record{
		Regime: d.Regime.String(),
		Case:   d.Regime.Case(),
		Phi:    d.Phi,
		Theta1: d.Theta1,
		Theta:  append([]float64{}, d.Theta...),
	}
	for _, tr := range d.Traces {
		list.Signals = append(list.Signals, tr.Signal.String())
		list.Visible = append(list.Visible, tr.Visible)
		list.Colors = append(list.Colors, hex(tr.Color.R, tr.Color.G, tr.Color.B))
		list.Waves = append(list.Waves, append([]float64{}, tr.Wave...))
		list.Samples = append(list.Samples, tr.Sample)
		list.Tips = append(list.Tips, tr.Tip)
	}
}

// Render 以 JSON 输出，NaN 与 Inf 输出为 null
func (list *Record) Render(w io.Writer) error {
	type point struct{ Theta, Value any }
	type tip struct{ X, Y any }
	out := struct {
		Regime  string
		Case    string
		Phi     any
		Theta1  any
		Theta   []any
		Signals []string
		Visible []bool
		Colors  []string
		Waves   [][]any
		Samples []point
		Tips    []tip
	}{
		Regime:  list.Regime,
		Case:    list.Case,
		Phi:     number(list.Phi),
		Theta1:  number(list.Theta1),
		Theta:   numbers(list.Theta),
		Signals: list.Signals,
		Visible: list.Visible,
		Colors:  list.Colors,
	}
	for _, wave := range list.Waves {
		out.Waves = append(out.Waves, numbers(wave))
	}
	for _, s := range list.Samples {
		out.Samples = append(out.Samples, point{number(s.Theta), number(s.Value)})
	}
	for _, t := range list.Tips {
		out.Tips = append(out.Tips, tip{number(t.X), number(t.Y)})
	}
	return json.NewEncoder(w).Encode(out)
}

// number 无效值编码为 null
func number(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func numbers(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = number(v)
	}
	return out
}

func hex(r, g, b uint8) string {
	const digits = "0123456789abcdef"
	return string([]byte{'#',
		digits[r>>4], digits[r&0xf],
		digits[g>>4], digits[g&0xf],
		digits[b>>4], digits[b&0xf],
	})
}
