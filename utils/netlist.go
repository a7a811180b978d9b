package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// NetList 场景行字段
type NetList []string

// SeparationPrick 分离类型名与编号，如 "LCR12" -> ("LCR", 12)
func (value NetList) SeparationPrick(i int) (typeName string, id int) {
	if i >= len(value) {
		return "", 0
	}
	nameStr := strings.ToUpper(value[i])
	for i, char := range nameStr {
		if char >= '0' && char <= '9' {
			typeName = nameStr[:i]
			id, _ = strconv.Atoi(nameStr[i:])
			break
		}
	}
	if typeName == "" {
		typeName = nameStr
	}
	return typeName, id
}

// Has 字段是否存在且不是占位符 "-"
func (value NetList) Has(i int) bool {
	return i < len(value) && value[i] != "-"
}

// ParseFloat64 解析64位浮点数，支持 "pi"、"pi/4"、"3pi/2" 形式
// 字段缺省时返回默认值，格式错误时返回错误
func (value NetList) ParseFloat64(i int, defaultValue float64) (float64, error) {
	if !value.Has(i) {
		return defaultValue, nil
	}
	val, err := ParseAngle(value[i])
	if err != nil {
		return defaultValue, fmt.Errorf("第 %d 个字段: %w", i+1, err)
	}
	return val, nil
}

// ParseString 安全获取字符串
func (value NetList) ParseString(i int, defaultValue string) string {
	if value.Has(i) {
		return value[i]
	}
	return defaultValue
}
