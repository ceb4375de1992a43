// internal/api/router.go
package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/byqzydy/story-ad-sub000/internal/config"
	"github.com/byqzydy/story-ad-sub000/internal/di"
	"github.com/byqzydy/story-ad-sub000/internal/services"
)

// SetupRouter 配置HTTP路由
// 只从容器获取服务，不在这里创建新实例
func SetupRouter() (*gin.Engine, error) {
	cfg := config.GetCurrentConfig()
	container := di.GetContainer()

	scriptService, ok := container.Get("script").(*services.ScriptService)
	if !ok {
		return nil, fmt.Errorf("脚本服务未正确初始化")
	}

	revisionService, ok := container.Get("revision").(*services.RevisionService)
	if !ok {
		return nil, fmt.Errorf("修订服务未正确初始化")
	}

	projectService, ok := container.Get("project").(*services.ProjectService)
	if !ok {
		return nil, fmt.Errorf("项目服务未正确初始化")
	}

	agentService, ok := container.Get("agent").(*services.AgentService)
	if !ok {
		return nil, fmt.Errorf("助理服务未正确初始化")
	}

	configService, ok := container.Get("config").(*services.ConfigService)
	if !ok {
		return nil, fmt.Errorf("配置服务未正确初始化")
	}

	handler := NewHandler(scriptService, revisionService, projectService, agentService, configService)

	if !cfg.DebugMode {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(corsMiddleware())

	r.GET("/health", handler.Health)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/scripts/generate", handler.GenerateScript)
		apiGroup.POST("/scripts/revise", handler.ReviseScript)

		apiGroup.POST("/projects", handler.CreateProject)
		apiGroup.GET("/projects", handler.ListProjects)
		apiGroup.GET("/projects/:id", handler.GetProject)
		apiGroup.PUT("/projects/:id", handler.UpdateProject)
		apiGroup.DELETE("/projects/:id", handler.DeleteProject)
		apiGroup.POST("/projects/:id/script", handler.GenerateProjectScript)
		apiGroup.GET("/projects/:id/script", handler.GetProjectScript)
		apiGroup.POST("/projects/:id/revise", handler.ReviseProjectScript)

		apiGroup.POST("/agent/message", handler.AgentMessage)

		apiGroup.GET("/config/llm", handler.GetLLMConfig)
		apiGroup.PUT("/config/llm", handler.UpdateLLMConfig)
	}

	r.GET("/ws/agent", handler.AgentWebSocket)

	return r, nil
}

// corsMiddleware 跨域中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
