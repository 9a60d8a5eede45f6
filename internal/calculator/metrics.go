package calculator

import (
	"errors"
	"math"

	"profitlens/internal/model"
)

// Metric 利润率指标
type Metric struct {
	ID    string  `json:"id"`    // 指标ID
	Name  string  `json:"name"`  // 指标名称
	Value float64 `json:"value"` // 指标值
	Unit  string  `json:"unit"`  // 单位 (%)
}

// ErrZeroRevenue 营业收入为零或无效，利润率没有可用分母
// 不是致命错误：五项科目照常展示，调用方应向用户提示
var ErrZeroRevenue = errors.New("營業收入為零或無效，無法計算利潤率")

// ComputeMetrics 由最终五项科目计算四项利润率
// 百分比形式，不做截断：利润率可以为负也可以超过 100
func ComputeMetrics(final model.FinalMap) ([]Metric, error) {
	revenue := final[model.FieldRevenue]
	if revenue == 0 || math.IsNaN(revenue) {
		return nil, ErrZeroRevenue
	}

	return []Metric{
		{
			ID:    "grossMargin",
			Name:  "毛利率",
			Value: (revenue - final[model.FieldCOGS]) / revenue * 100,
			Unit:  "%",
		},
		{
			ID:    "operatingMargin",
			Name:  "營業利益率",
			Value: final[model.FieldOperatingIncome] / revenue * 100,
			Unit:  "%",
		},
		{
			ID:    "preTaxMargin",
			Name:  "稅前淨利率",
			Value: final[model.FieldPreTaxIncome] / revenue * 100,
			Unit:  "%",
		},
		{
			ID:    "netMargin",
			Name:  "淨利率",
			Value: final[model.FieldNetIncome] / revenue * 100,
			Unit:  "%",
		},
	}, nil
}
