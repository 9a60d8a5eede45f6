package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"profitlens/internal/calculator"
	"profitlens/internal/model"
)

// ComputeRequest 计算请求：五项科目的手工覆盖值
// 空字符串表示不覆盖；值保持人工格式，由数值解析器处理
type ComputeRequest struct {
	Overrides map[model.Field]string `json:"overrides"`
}

// ComputeResponse 计算结果响应
type ComputeResponse struct {
	Final   model.FinalMap      `json:"final"`
	Metrics []calculator.Metric `json:"metrics"`
	Warning string              `json:"warning,omitempty"` // 分母无效时的用户提示
}

// Compute 合并覆盖值与自定义科目并计算利润率
// POST /api/compute
func (h *Handler) Compute(c *gin.Context) {
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
	c.JSON(http.StatusOK, resp)
}

// validateOverrides 检查覆盖值的科目键是否都是已知科目
func validateOverrides(overrides map[model.Field]string) error {
	for f := range overrides {
		if !f.Valid() {
			return fmt.Errorf("未知科目: %s", f)
		}
	}
	return nil
}

// compute 合并并计算，零收入不是错误而是带警告的空指标
func (h *Handler) compute(overrides map[model.Field]string) (*ComputeResponse, error) {
	totals, _ := h.session.Totals()
	fields := h.session.Fields()

	final := calculator.Merge(totals, overrides, fields)

	metrics, err := calculator.ComputeMetrics(final)
	if err != nil {
		if !errors.Is(err, calculator.ErrZeroRevenue) {
			return nil, err
		}
		return &ComputeResponse{
			Final:   final,
			Metrics: []calculator.Metric{},
			Warning: err.Error(),
		}, nil
	}

	return &ComputeResponse{
		Final:   final,
		Metrics: metrics,
	}, nil
}
