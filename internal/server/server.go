package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "profitlens/internal/api/v1"
	"profitlens/internal/config"
	"profitlens/internal/service/session"
)

// Server HTTP服务器
type Server struct {
	router  *gin.Engine
	session *session.Manager
	v1      *v1.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) *Server {
	devMode := cfg.Server.DevMode
	if !devMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 会话数据只存在内存里，进程退出即清空
	sess := session.NewManager()
	handler := v1.NewHandler(sess)

	s := &Server{
		router:  gin.Default(),
		session: sess,
		v1:      handler,
	}

	s.setupRoutes(devMode)

	return s
}

// setupRoutes 设置路由
func (s *Server) setupRoutes(devMode bool) {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// API 路由
	api := s.router.Group("/api")
	{
		s.v1.RegisterRoutes(api)
	}

	if devMode {
		// 开发模式：前端由开发服务器提供
		s.router.NoRoute(func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "http://localhost:5173"+c.Request.URL.Path)
		})
	}
}

// Run 启动服务器
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

// Router 获取路由（用于测试）
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Session 获取会话管理器（用于测试）
func (s *Server) Session() *session.Manager {
	return s.session
}
