package types

import (
	"fmt"
	"image/color"
)

// Colors 信号配色
type Colors map[Signal]string

// ColorScheme 返回固定配色表
func ColorScheme() Colors {
	return Colors{
		SignalI:  "#da1e37",
		SignalV:  "#0d47a1",
		SignalVR: "#7b2cbf",
		SignalVC: "#ff4d6d",
		SignalVL: "#008000",
	}
}

// RGBA 返回信号颜色，未定义时为黑色
func (c Colors) RGBA(s Signal) color.NRGBA {
	rgba, err := ParseHex(c[s])
	if err != nil {
		return color.NRGBA{A: 0xff}
	}
	return rgba
}

// ParseHex 解析 "#rrggbb" 格式颜色
func ParseHex(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("颜色格式错误: %q", s)
	}
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("颜色格式错误: %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

// Alpha 以给定透明度返回颜色
func Alpha(c color.NRGBA, alpha float64) color.NRGBA {
	c.A = uint8(alpha*255 + 0.5)
	return c
}
