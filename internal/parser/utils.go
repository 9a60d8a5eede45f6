package parser

import (
	"regexp"
	"strings"
)

var spacePattern = regexp.MustCompile(`\s+`)

// NormalizeLabel 规范化标签：去除首尾空白、换行符与内部空白
// 上传表格的列头经常带换行和全角空格，统一清理后再做关键词匹配
func NormalizeLabel(label string) string {
	label = strings.TrimSpace(label)
	label = strings.ReplaceAll(label, "\n", "")
	label = strings.ReplaceAll(label, "\r", "")
	label = strings.ReplaceAll(label, "\t", "")
	return spacePattern.ReplaceAllString(label, "")
}

// ContainsAny 检查标签是否包含任意一个关键词
// 与 Classify 相同的双重匹配规则：小写包含或原文包含
func ContainsAny(label string, keywords []string) bool {
	lower := strings.ToLower(label)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) || strings.Contains(label, kw) {
			return true
		}
	}
	return false
}
