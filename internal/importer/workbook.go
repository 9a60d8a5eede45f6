package importer

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table 从上传文件解出的原始表
// 第一行视为表头，其余为数据行
type Table struct {
	Sheet   string     `json:"sheet"`
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// Empty 是否没有任何数据行
func (t *Table) Empty() bool {
	return t == nil || len(t.Rows) == 0
}

// ReadTable 按扩展名解码上传的电子表格
// 解码失败导致整次解析失败，调用方应保持已有会话数据不变；
// 文件能解码但没有数据行不算错误，由调用方做软提示
func ReadTable(filename string, data []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(data)
	default:
		return readWorkbook(data)
	}
}

// readWorkbook 解码 xlsx 工作簿，取第一个有内容的 sheet
func readWorkbook(data []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("无法读取工作簿: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("工作簿中没有工作表")
	}

	for _, sheet := range sheets {
		rows, err := f.GetRows(sheet)
		if err != nil {
			continue
		}
		if len(rows) == 0 {
			continue
		}
		return newTable(sheet, rows), nil
	}

	// 所有 sheet 都为空：不是错误，返回空表
	return &Table{Sheet: sheets[0]}, nil
}

// readCSV 解码 CSV 文件，允许不等长的行
func readCSV(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("无法读取 CSV: %w", err)
	}
	if len(records) == 0 {
		return &Table{Sheet: "csv"}, nil
	}
	return newTable("csv", records), nil
}

// newTable 把原始行切成表头与数据行，并裁掉表头尾部的空列
func newTable(sheet string, rows [][]string) *Table {
	headers := trimTrailingEmpty(rows[0])
	return &Table{
		Sheet:   sheet,
		Headers: headers,
		Rows:    rows[1:],
	}
}

func trimTrailingEmpty(cells []string) []string {
	end := len(cells)
	for end > 0 && strings.TrimSpace(cells[end-1]) == "" {
		end--
	}
	return cells[:end]
}
