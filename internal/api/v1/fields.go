package v1

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"profitlens/internal/parser"
	"profitlens/internal/service/session"
)

// FieldRequest 自定义科目请求
// 数值允许数字或人工格式的字符串（如 "1,000萬"）
type FieldRequest struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
	Note  string `json:"note"`
}

// ListFields 列出自定义科目
// GET /api/fields
func (h *Handler) ListFields(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"fields": h.session.Fields()})
}

// AddField 新增自定义科目
// POST /api/fields
func (h *Handler) AddField(c *gin.Context) {
	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "科目名称不能为空"})
		return
	}

	value := parser.ParseCell(req.Value)
	if math.IsNaN(value) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的科目数值"})
		return
	}

	field := h.session.AddField(req.Name, value, req.Note)
	c.JSON(http.StatusOK, field)
}

// UpdateField 编辑自定义科目
// PATCH /api/fields/:id
func (h *Handler) UpdateField(c *gin.Context) {
	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	// 未提供数值时保持原值（ParseCell 对 nil 返回 NaN，Manager 按不修改处理）
	value := parser.ParseCell(req.Value)

	field, err := h.session.UpdateField(c.Param("id"), req.Name, value, req.Note)
	if err != nil {
		if errors.Is(err, session.ErrFieldNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "科目不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "更新科目失败"})
		return
	}

	c.JSON(http.StatusOK, field)
}

// DeleteField 删除自定义科目
// DELETE /api/fields/:id
func (h *Handler) DeleteField(c *gin.Context) {
	if err := h.session.DeleteField(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "科目不存在"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// PromoteRequest 提升未识别科目请求
type PromoteRequest struct {
	Label string `json:"label"`
}

// PromoteExtra 把未识别科目提升为自定义科目
// POST /api/fields/promote
func (h *Handler) PromoteExtra(c *gin.Context) {
	var req PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Label) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求数据"})
		return
	}

	field, err := h.session.PromoteExtra(req.Label)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNoTotals):
			c.JSON(http.StatusBadRequest, gin.H{"error": "当前会话还没有解析结果"})
		case errors.Is(err, session.ErrExtraNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "未识别科目不存在"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "提升科目失败"})
		}
		return
	}

	c.JSON(http.StatusOK, field)
}
