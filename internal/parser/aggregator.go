package parser

import (
	"math"
	"strings"

	"profitlens/internal/model"
)

// nameColumnKeywords 长表中“科目名”列的列头关键词
var nameColumnKeywords = []string{
	"項目", "项目", "科目", "名稱", "名称", "item", "account", "name",
}

// valueColumnKeywords 长表中“金额”列的列头关键词
var valueColumnKeywords = []string{
	"金額", "金额", "數值", "数值", "amount", "value",
}

// Aggregate 将一张原始表聚合为五项规范科目合计与未识别科目桶
//
// 表的形状事先未知，分两遍处理：
//  1. 宽表：列头能分类到科目的，整列求和计入该科目（同一科目可累计多列）
//  2. 长表：定位科目名列与金额列，逐行分类科目名；未识别但金额有效的行
//     计入 Extras（按原始标签累计）
//
// 两遍之后若营业收入仍为零，取全表最大正数兜底
// 单元格解析失败只跳过该格，绝不中断整次聚合
func Aggregate(headers []string, rows [][]string) *model.StatementTotals {
	totals := model.NewStatementTotals()

	normalized := make([]string, len(headers))
	for i, h := range headers {
		normalized[i] = NormalizeLabel(h)
	}

	// 第一遍：宽表（按列头分类，整列求和）
	consumed := make(map[int]bool)
	for idx, header := range normalized {
		if header == "" {
			continue
		}
		field, ok := Classify(header)
		if !ok {
			continue
		}
		sum := 0.0
		for _, row := range rows {
			if idx >= len(row) {
				continue
			}
			v := ParseNumeric(row[idx])
			if math.IsNaN(v) {
				continue
			}
			sum += v
		}
		totals.Sums[field] += sum
		consumed[idx] = true
	}

	// 第二遍：长表（科目名列 + 金额列）
	// 金额列已在第一遍整列计入时跳过，避免重复累计
	if len(normalized) > 0 {
		nameIdx := findColumn(normalized, nameColumnKeywords, 0)
		valueFallback := 0
		if len(normalized) > 1 {
			valueFallback = 1
		}
		valueIdx := findColumn(normalized, valueColumnKeywords, valueFallback)

		if !consumed[valueIdx] {
			for _, row := range rows {
				if nameIdx >= len(row) || valueIdx >= len(row) {
					continue
				}
				label := strings.TrimSpace(row[nameIdx])
				v := ParseNumeric(row[valueIdx])

				if field, ok := Classify(label); ok {
					if !math.IsNaN(v) {
						totals.Sums[field] += v
					}
					continue
				}
				if label != "" && !math.IsNaN(v) {
					totals.Extras[label] += v
				}
			}
		}
	}

	// 兜底：表里找不到任何可识别的收入标签时，猜全表最大正数为营业收入
	// 其余四项科目不做兜底
	if totals.Sums[model.FieldRevenue] == 0 {
		best := 0.0
		for _, row := range rows {
			for _, cell := range row {
				v := ParseNumeric(cell)
				if !math.IsNaN(v) && v > best {
					best = v
				}
			}
		}
		if best > 0 {
			totals.Sums[model.FieldRevenue] = best
		}
	}

	return totals
}

// findColumn 返回第一个命中关键词的列下标，找不到时返回 fallback
func findColumn(headers []string, keywords []string, fallback int) int {
	for idx, h := range headers {
		if h == "" {
			continue
		}
		if ContainsAny(h, keywords) {
			return idx
		}
	}
	return fallback
}
