// internal/api/handlers.go
package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/byqzydy/story-ad-sub000/internal/models"
	"github.com/byqzydy/story-ad-sub000/internal/services"
)

// Handler 处理API请求
type Handler struct {
	ScriptService   *services.ScriptService   // 脚本生成引擎
	RevisionService *services.RevisionService // 修订引擎
	ProjectService  *services.ProjectService  // 项目持久化
	AgentService    *services.AgentService    // 对话助理
	ConfigService   *services.ConfigService   // 运行期配置
	Response        *ResponseHelper           // 响应助手
}

// NewHandler 创建API处理器
func NewHandler(script *services.ScriptService, revision *services.RevisionService,
	project *services.ProjectService, agent *services.AgentService,
	configService *services.ConfigService) *Handler {
	return &Handler{
		ScriptService:   script,
		RevisionService: revision,
		ProjectService:  project,
		AgentService:    agent,
		ConfigService:   configService,
		Response:        NewResponseHelper(),
	}
}

// GenerateScriptRequest 脚本生成请求
type GenerateScriptRequest struct {
	Brief   models.Brief           `json:"brief"`
	Options models.GenerateOptions `json:"options"`
}

// ReviseScriptRequest 脚本修订请求
type ReviseScriptRequest struct {
	Script   string                  `json:"script"`
	Feedback models.RevisionFeedback `json:"feedback"`
}

// CreateProjectRequest 项目创建请求
type CreateProjectRequest struct {
	Title string       `json:"title"`
	Brief models.Brief `json:"brief"`
}

// AgentMessageRequest 助理对话请求
type AgentMessageRequest struct {
	Message string                  `json:"message"`
	History []services.AgentMessage `json:"history,omitempty"`
}

// UpdateLLMConfigRequest LLM配置更新请求
type UpdateLLMConfigRequest struct {
	Provider string            `json:"provider"`
	Config   map[string]string `json:"config"`
}

// GenerateScript 无项目上下文的一次性脚本生成
func (h *Handler) GenerateScript(c *gin.Context) {
	var req GenerateScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求格式错误: "+err.Error())
		return
	}
	if req.Brief.ProductName == "" {
		h.Response.BadRequest(c, "产品名称不能为空")
		return
	}

	result := h.ScriptService.GenerateScript(c.Request.Context(), req.Brief, req.Options)
	h.Response.Success(c, result)
}

// ReviseScript 无项目上下文的一次性脚本修订
func (h *Handler) ReviseScript(c *gin.Context) {
	var req ReviseScriptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求格式错误: "+err.Error())
		return
	}
	if req.Script == "" {
		h.Response.BadRequest(c, "脚本内容不能为空")
		return
	}

	revised := h.RevisionService.Revise(req.Script, req.Feedback)
	h.Response.Success(c, gin.H{"script": revised})
}

// CreateProject 创建项目
func (h *Handler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求格式错误: "+err.Error())
		return
	}

	project, err := h.ProjectService.CreateProject(req.Title, req.Brief)
	if err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Created(c, project)
}

// ListProjects 列出全部项目
func (h *Handler) ListProjects(c *gin.Context) {
	projects, err := h.ProjectService.ListProjects()
	if err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Success(c, projects)
}

// GetProject 获取项目
func (h *Handler) GetProject(c *gin.Context) {
	project, err := h.ProjectService.GetProject(c.Param("id"))
	if err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Success(c, project)
}

// UpdateProject 更新项目简报
func (h *Handler) UpdateProject(c *gin.Context) {
	var brief models.Brief
	if err := c.ShouldBindJSON(&brief); err != nil {
		h.Response.BadRequest(c, "请求格式错误: "+err.Error())
		return
	}

	project, err := h.ProjectService.UpdateBrief(c.Param("id"), brief)
	if err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Success(c, project)
}

// DeleteProject 删除项目
func (h *Handler) DeleteProject(c *gin.Context) {
	if err := h.ProjectService.DeleteProject(c.Param("id")); err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Success(c, nil, "项目已删除")
}

// GenerateProjectScript 为项目生成脚本并持久化
func (h *Handler) GenerateProjectScript(c *gin.Context) {
	var opts models.GenerateOptions
	if err := c.ShouldBindJSON(&opts); err != nil {
		h.Response.BadRequest(c, "请求格式错误: "+err.Error())
		return
	}

	result, err := h.ProjectService.GenerateScript(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Success(c, result)
}

// ReviseProjectScript 修订项目脚本并持久化为新版本
func (h *Handler) ReviseProjectScript(c *gin.Context) {
	var feedback models.RevisionFeedback
	if err := c.ShouldBindJSON(&feedback); err != nil {
		h.Response.BadRequest(c, "请求格式错误: "+err.Error())
		return
	}

	revised, err := h.ProjectService.ReviseScript(c.Param("id"), feedback)
	if err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Success(c, gin.H{"script": revised})
}

// GetProjectScript 读取项目脚本，?version=n 指定版本
func (h *Handler) GetProjectScript(c *gin.Context) {
	version := 0
	if v := c.Query("version"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			h.Response.BadRequest(c, "版本号格式错误")
			return
		}
		version = parsed
	}

	script, err := h.ProjectService.GetScript(c.Param("id"), version)
	if err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Success(c, gin.H{"script": script})
}

// AgentMessage 处理一条助理对话消息
func (h *Handler) AgentMessage(c *gin.Context) {
	var req AgentMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求格式错误: "+err.Error())
		return
	}
	if req.Message == "" {
		h.Response.BadRequest(c, "消息不能为空")
		return
	}

	reply, err := h.AgentService.SendMessage(c.Request.Context(), req.Message, req.History)
	if err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Success(c, reply)
}

// GetLLMConfig 获取LLM运行状态
func (h *Handler) GetLLMConfig(c *gin.Context) {
	h.Response.Success(c, h.ConfigService.GetLLMStatus())
}

// UpdateLLMConfig 更新LLM配置
func (h *Handler) UpdateLLMConfig(c *gin.Context) {
	var req UpdateLLMConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Response.BadRequest(c, "请求格式错误: "+err.Error())
		return
	}

	if err := h.ConfigService.UpdateLLMConfig(req.Provider, req.Config); err != nil {
		h.Response.Error(c, err)
		return
	}
	h.Response.Success(c, h.ConfigService.GetLLMStatus(), "LLM配置已更新")
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	h.Response.Success(c, gin.H{"status": "ok"})
}
