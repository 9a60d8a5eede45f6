package v1

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"profitlens/internal/importer"
	"profitlens/internal/model"
	"profitlens/internal/parser"
)

// maxUploadSize 上传文件大小上限
const maxUploadSize = 16 << 20

// StatementResponse 解析结果响应
type StatementResponse struct {
	Source string                  `json:"source"`
	Sums   map[model.Field]float64 `json:"sums"`
	Extras map[string]float64      `json:"extras"`
	Notice string                  `json:"notice,omitempty"` // 软提示（如表格无数据行）
}

// Import 上传并解析电子表格
// POST /api/import (multipart)
// 解码失败只使本次解析失败，已有会话数据保持不变
func (h *Handler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未找到上传文件"})
		return
	}
	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "文件过大"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法打开上传文件"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "读取上传文件失败"})
		return
	}

	table, err := importer.ReadTable(fileHeader.Filename, data)
	if err != nil {
		// 整次解析失败：不动已有数据
		c.JSON(http.StatusBadRequest, gin.H{"error": "无法解析上传文件，请确认文件格式"})
		return
	}

	h.respondParsed(c, table.Headers, table.Rows, fileHeader.Filename, table.Empty())
}

// TableRequest 手工表格解析请求
// 单元格允许字符串或数字
type TableRequest struct {
	Headers []string `json:"headers"`
	Rows    [][]any  `json:"rows"`
}

// ParseTable 解析手工输入的表格
// POST /api/table
func (h *Handler) ParseTable(c *gin.Context) {
	var req TableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的表格数据"})
		return
	}

	rows := make([][]string, len(req.Rows))
	for i, row := range req.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cellString(cell)
		}
		rows[i] = cells
	}

	h.respondParsed(c, req.Headers, rows, "manual", len(rows) == 0)
}

// GetStatement 获取当前解析结果
// GET /api/statement
func (h *Handler) GetStatement(c *gin.Context) {
	totals, source := h.session.Totals()
	if totals == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "当前会话还没有解析结果"})
		return
	}

	c.JSON(http.StatusOK, StatementResponse{
		Source: source,
		Sums:   totals.Sums,
		Extras: totals.Extras,
	})
}

// respondParsed 聚合并替换会话数据，返回汇总结果
func (h *Handler) respondParsed(c *gin.Context, headers []string, rows [][]string, source string, empty bool) {
	totals := parser.Aggregate(headers, rows)
	h.session.ReplaceTotals(totals, source)

	resp := StatementResponse{
		Source: source,
		Sums:   totals.Sums,
		Extras: totals.Extras,
	}
	if empty {
		resp.Notice = "表格没有数据行，已生成全零汇总"
	}

	c.JSON(http.StatusOK, resp)
}

// cellString 把 JSON 单元格值转成字符串形式
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		if t {
			return "1"
		}
		return "0"
	}
	return ""
}
