package v1

import (
	"github.com/gin-gonic/gin"

	"profitlens/internal/service/session"
)

// Handler API 处理器
type Handler struct {
	session *session.Manager
}

// NewHandler 创建 API 处理器
func NewHandler(sess *session.Manager) *Handler {
	return &Handler{
		session: sess,
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 数据导入
	router.POST("/import", h.Import)
	router.POST("/table", h.ParseTable)
	router.GET("/statement", h.GetStatement)

	// 自定义科目
	router.GET("/fields", h.ListFields)
	router.POST("/fields", h.AddField)
	router.PATCH("/fields/:id", h.UpdateField)
	router.DELETE("/fields/:id", h.DeleteField)
	router.POST("/fields/promote", h.PromoteExtra)

	// 计算与导出
	router.POST("/compute", h.Compute)
	router.POST("/export", h.Export)

	// 重置会话
	router.POST("/reset", h.Reset)
}
