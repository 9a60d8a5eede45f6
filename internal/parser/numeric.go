package parser

import (
	"math"
	"strconv"
	"strings"
)

// magnitudeClass 数量级后缀类
type magnitudeClass struct {
	units      []string
	multiplier float64
}

// magnitudeClasses 数量级后缀表
// 按声明顺序检测，只取第一个命中的类，不做多后缀复合
var magnitudeClasses = []magnitudeClass{
	{units: []string{"萬", "万"}, multiplier: 1e4},
	{units: []string{"千"}, multiplier: 1e3},
	{units: []string{"百萬", "百万"}, multiplier: 1e6},
	{units: []string{"億", "亿"}, multiplier: 1e8},
}

// ParseNumeric 将人工格式的数值字符串解析为浮点数
// 容忍千分位逗号、空白、货币符号、括号负数、百分号与中文数量级后缀
// 无法解析时返回 NaN，永不 panic
func ParseNumeric(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" || s == "-" {
		return math.NaN()
	}

	// 括号负数（会计格式）与前导负号可叠加：再次出现时抵消前一次
	negative := false
	for {
		if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") && len(s) >= 2 {
			s = strings.TrimSpace(s[1 : len(s)-1])
			negative = !negative
			continue
		}
		if strings.HasPrefix(s, "（") && strings.HasSuffix(s, "）") {
			s = strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(s, "（"), "）"))
			negative = !negative
			continue
		}
		if strings.HasPrefix(s, "-") {
			s = strings.TrimSpace(s[1:])
			negative = !negative
			continue
		}
		break
	}

	// 去除千分位与空白
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "，", "")
	s = strings.Join(strings.Fields(s), "")
	if s == "" {
		return math.NaN()
	}

	// 百分比：去掉百分号后剩余部分必须是纯数字
	if strings.HasSuffix(s, "%") || strings.HasSuffix(s, "％") {
		body := strings.TrimSuffix(s, "%")
		body = strings.TrimSuffix(body, "％")
		f, err := strconv.ParseFloat(body, 64)
		if err != nil {
			return math.NaN()
		}
		f /= 100
		if negative {
			f = -f
		}
		return f
	}

	// 数量级后缀：首个命中的类生效
	multiplier := 1.0
	for _, class := range magnitudeClasses {
		matched := false
		for _, unit := range class.units {
			if strings.Contains(s, unit) {
				matched = true
				break
			}
		}
		if matched {
			multiplier = class.multiplier
			for _, unit := range class.units {
				s = strings.ReplaceAll(s, unit, "")
			}
			break
		}
	}

	// 剔除货币符号等杂字符，保留数字、小数点、负号与科学计数法标记
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-', r == '+', r == 'e', r == 'E':
			b.WriteRune(r)
		}
	}

	f, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return math.NaN()
	}

	f *= multiplier
	if negative {
		f = -f
	}
	return f
}

// ParseCell 解析任意类型的单元格值
// 数值原样返回，字符串走 ParseNumeric，其余类型视为无法解析
func ParseCell(v any) float64 {
	switch t := v.(type) {
	case nil:
		return math.NaN()
	case string:
		return ParseNumeric(t)
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	}
	return math.NaN()
}
