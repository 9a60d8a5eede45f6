package parser

import (
	"strings"

	"profitlens/internal/model"
)

// fieldKeywords 单个规范科目的同义词表
type fieldKeywords struct {
	field    model.Field
	keywords []string
}

// keywordTable 规范科目关键词表
// 顺序即匹配优先级：先按科目顺序，再按科目内关键词顺序，首个命中即定
// 同时覆盖繁体、简体与常见英文写法
var keywordTable = []fieldKeywords{
	{model.FieldRevenue, []string{
		"營業收入", "营业收入", "銷貨收入", "销货收入", "營收", "营收", "revenue",
	}},
	{model.FieldCOGS, []string{
		"營業成本", "营业成本", "銷貨成本", "销货成本", "cogs", "cost of goods", "cost of sales", "成本",
	}},
	{model.FieldOperatingIncome, []string{
		"營業利益", "营业利益", "營業淨利", "营业净利", "營業利潤", "营业利润", "operating income", "operating profit",
	}},
	{model.FieldPreTaxIncome, []string{
		"稅前淨利", "税前净利", "稅前盈餘", "税前盈余", "稅前利潤", "税前利润", "pre-tax income", "pretax income", "income before tax", "稅前", "税前",
	}},
	{model.FieldNetIncome, []string{
		"本期淨利", "本期净利", "稅後淨利", "税后净利", "淨利", "净利", "net income", "net profit",
	}},
}

// Classify 判断标签（列头或行内科目名）是否指向某个规范科目
// 规则：小写化后的标签包含小写化关键词，或原始标签包含原始关键词
// （第二条处理 CJK 这类没有大小写折叠的文字）
// 先命中先得：同时命中多个科目的标签归入先检查到的科目
func Classify(label string) (model.Field, bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return "", false
	}
	lower := strings.ToLower(trimmed)

	for _, entry := range keywordTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, strings.ToLower(kw)) || strings.Contains(trimmed, kw) {
				return entry.field, true
			}
		}
	}
	return "", false
}
