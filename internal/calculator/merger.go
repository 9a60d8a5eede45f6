package calculator

import (
	"math"
	"strings"

	"profitlens/internal/model"
	"profitlens/internal/parser"
)

// Merge 合并自动汇总、手工覆盖值与自定义科目，得到最终五项科目
//
// 规则：
//   - 以汇总结果的五项合计为基础，缺失或 NaN 按零处理
//   - 覆盖值非空且可解析时，替换（而非累加）对应科目
//   - 自定义科目按名称重新分类，命中的累加进对应科目；
//     未命中的不并入任何科目，也不影响利润率
func Merge(totals *model.StatementTotals, overrides map[model.Field]string, fields []*model.CustomField) model.FinalMap {
	final := make(model.FinalMap, len(model.FieldOrder))
	for _, f := range model.FieldOrder {
		v := 0.0
		if totals != nil {
			if sum, ok := totals.Sums[f]; ok && !math.IsNaN(sum) {
				v = sum
			}
		}
		final[f] = v
	}

	for _, f := range model.FieldOrder {
		raw := strings.TrimSpace(overrides[f])
		if raw == "" {
			continue
		}
		v := parser.ParseNumeric(raw)
		if math.IsNaN(v) {
			continue
		}
		final[f] = v
	}

	for _, cf := range fields {
		if cf == nil {
			continue
		}
		field, ok := parser.Classify(cf.Name)
		if !ok {
			continue
		}
		v := cf.Value
		if math.IsNaN(v) {
			v = 0
		}
		final[field] += v
	}

	return final
}
