package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ParseAngle 解析数值，允许以 π 的倍数书写
// 支持 "0.5"、"pi"、"-pi/2"、"3pi/4"、"π/4"
func ParseAngle(s string) (float64, error) {
	str := strings.ToLower(strings.TrimSpace(s))
	str = strings.ReplaceAll(str, "π", "pi")
	if !strings.Contains(str, "pi") {
		return strconv.ParseFloat(str, 64)
	}

	num, den, hasDen := strings.Cut(str, "/")
	coef := strings.TrimSuffix(strings.TrimSuffix(num, "pi"), "*")
	k := 1.0
	switch coef {
	case "":
	case "-":
		k = -1
	case "+":
	default:
		v, err := strconv.ParseFloat(coef, 64)
		if err != nil || !strings.HasSuffix(num, "pi") {
			return 0, fmt.Errorf("无法解析角度: %q", s)
		}
		k = v
	}
	if !strings.HasSuffix(num, "pi") {
		return 0, fmt.Errorf("无法解析角度: %q", s)
	}
	if hasDen {
		d, err := strconv.ParseFloat(den, 64)
		if err != nil {
			return 0, fmt.Errorf("无法解析角度: %q: %w", s, err)
		}
		k /= d
	}
	return k * math.Pi, nil
}
