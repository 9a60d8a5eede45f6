package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	Loaded     bool   `json:"loaded"`     // 是否已有解析结果
	Source     string `json:"source"`     // 当前数据来源
	FieldCount int    `json:"fieldCount"` // 自定义科目数
	ExtraCount int    `json:"extraCount"` // 未识别科目数
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	totals, source := h.session.Totals()

	resp := StatusResponse{
		Loaded:     totals != nil,
		Source:     source,
		FieldCount: len(h.session.Fields()),
	}
	if totals != nil {
		resp.ExtraCount = len(totals.Extras)
	}

	c.JSON(http.StatusOK, resp)
}
