package model

// Field 规范损益科目
type Field string

const (
	FieldRevenue         Field = "revenue"         // 營業收入
	FieldCOGS            Field = "cogs"            // 營業成本
	FieldOperatingIncome Field = "operatingIncome" // 營業利益
	FieldPreTaxIncome    Field = "preTaxIncome"    // 稅前淨利
	FieldNetIncome       Field = "netIncome"       // 本期淨利
)

// FieldOrder 五项规范科目的固定顺序
// 分类匹配、合并与输出都按此顺序进行，保证结果可复现
var FieldOrder = []Field{
	FieldRevenue,
	FieldCOGS,
	FieldOperatingIncome,
	FieldPreTaxIncome,
	FieldNetIncome,
}

// DisplayName 科目显示名
func (f Field) DisplayName() string {
	switch f {
	case FieldRevenue:
		return "營業收入"
	case FieldCOGS:
		return "營業成本"
	case FieldOperatingIncome:
		return "營業利益"
	case FieldPreTaxIncome:
		return "稅前淨利"
	case FieldNetIncome:
		return "本期淨利"
	}
	return string(f)
}

// Valid 判断是否为已知的规范科目
func (f Field) Valid() bool {
	switch f {
	case FieldRevenue, FieldCOGS, FieldOperatingIncome, FieldPreTaxIncome, FieldNetIncome:
		return true
	}
	return false
}

// StatementTotals 一次解析产出的汇总结果
// Sums 是五项规范科目的合计，Extras 是未能归入任何科目的已标注金额
// 解析完成后不再修改
type StatementTotals struct {
	Sums   map[Field]float64  `json:"sums"`
	Extras map[string]float64 `json:"extras"`
}

// NewStatementTotals 创建全零汇总结果
func NewStatementTotals() *StatementTotals {
	sums := make(map[Field]float64, len(FieldOrder))
	for _, f := range FieldOrder {
		sums[f] = 0
	}
	return &StatementTotals{
		Sums:   sums,
		Extras: make(map[string]float64),
	}
}

// CustomField 用户自定义科目
// 来源：手工新增，或由 Extras 中的未识别科目提升而来
type CustomField struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Note  string  `json:"note,omitempty"`
}

// FinalMap 合并覆盖值与自定义科目后的最终五项科目
// 恒定包含全部五个科目，值恒为有效数字（缺失按零处理）
type FinalMap map[Field]float64
