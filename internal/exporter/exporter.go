package exporter

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"profitlens/internal/calculator"
	"profitlens/internal/model"
)

// SheetName 导出结果工作表名
const SheetName = "損益分析"

// BuildWorkbook 生成两段式结果工作簿
// 第一段：五项规范科目（項目/金額）；空一行；第二段：利润率指标（指標/數值）
// 指标值写成格式化的百分比字符串，科目金额保持数值
func BuildWorkbook(final model.FinalMap, metrics []calculator.Metric) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("重命名工作表失败: %w", err)
	}

	row := 1
	writeRow := func(cells []any) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, cell, &cells); err != nil {
			return err
		}
		row++
		return nil
	}

	if err := writeRow([]any{"項目", "金額"}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("写入科目表头失败: %w", err)
	}
	for _, field := range model.FieldOrder {
		if err := writeRow([]any{field.DisplayName(), final[field]}); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("写入科目 %s 失败: %w", field.DisplayName(), err)
		}
	}

	// 空行分隔两段
	row++

	if err := writeRow([]any{"指標", "數值"}); err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("写入指标表头失败: %w", err)
	}
	for _, m := range metrics {
		if err := writeRow([]any{m.Name, fmt.Sprintf("%.2f%%", m.Value)}); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("写入指标 %s 失败: %w", m.Name, err)
		}
	}

	f.SetActiveSheet(0)
	return f, nil
}
