package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"profitlens/internal/exporter"
)

// Export 计算并导出两段式结果工作簿
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	var req ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}
	if err := validateOverrides(req.Overrides); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.compute(req.Overrides)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "计算失败"})
		return
	}

	f, err := exporter.BuildWorkbook(resp.Final, resp.Metrics)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "生成导出文件失败"})
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写出导出文件失败"})
		return
	}

	c.Header("Content-Disposition", buildExportContentDisposition(time.Now()))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// buildExportContentDisposition 生成下载文件名
// ASCII 文件名兜底 + RFC 5987 编码的中文文件名
func buildExportContentDisposition(now time.Time) string {
	stamp := now.Format("20060102")
	ascii := fmt.Sprintf("profit-analysis-%s.xlsx", stamp)
	utf8Name := url.PathEscape(fmt.Sprintf("損益分析-%s.xlsx", stamp))
	return fmt.Sprintf("attachment; filename=\"%s\"; filename*=UTF-8''%s", ascii, utf8Name)
}

// Reset 清空会话数据
// POST /api/reset
func (h *Handler) Reset(c *gin.Context) {
	h.session.Reset()
	c.JSON(http.StatusOK, gin.H{"reset": true})
}
