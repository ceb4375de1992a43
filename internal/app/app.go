// internal/app/app.go
package app

import (
	"fmt"
	"path/filepath"

	"github.com/byqzydy/story-ad-sub000/internal/config"
	"github.com/byqzydy/story-ad-sub000/internal/di"
	"github.com/byqzydy/story-ad-sub000/internal/services"
	"github.com/byqzydy/story-ad-sub000/internal/storage"
	"github.com/byqzydy/story-ad-sub000/internal/utils"

	// 注册LLM提供者
	_ "github.com/byqzydy/story-ad-sub000/internal/llm/providers/glm"
	_ "github.com/byqzydy/story-ad-sub000/internal/llm/providers/openai"
)

// InitServices 按依赖顺序初始化全部服务并注册进容器
func InitServices() error {
	cfg := config.GetCurrentConfig()
	container := di.GetContainer()

	// 日志
	if err := utils.InitLogger(filepath.Join(cfg.LogDir, "server.log")); err != nil {
		return fmt.Errorf("初始化日志失败: %w", err)
	}
	if cfg.DebugMode {
		utils.GetLogger().SetLogLevel(utils.DEBUG)
	}

	// 存储
	fileStorage, err := storage.NewFileStorage(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("初始化文件存储失败: %w", err)
	}
	container.Register("storage", fileStorage)

	// LLM（未配置密钥时降级为未就绪，引擎自动走模板填充）
	llmService := services.NewLLMService()
	container.Register("llm", llmService)
	if !llmService.IsReady() {
		utils.GetLogger().Warnf("LLM服务未就绪: %s", llmService.ReadyState())
	}

	// 引擎各部件
	analyzerService := services.NewAnalyzerService()
	container.Register("analyzer", analyzerService)

	archetypeService := services.NewArchetypeService()
	container.Register("archetype", archetypeService)

	characterService := services.NewCharacterService(analyzerService)
	container.Register("character", characterService)

	storyboardService := services.NewStoryboardService()
	container.Register("storyboard", storyboardService)

	scriptService := services.NewScriptService(
		analyzerService, archetypeService, characterService, storyboardService, llmService)
	container.Register("script", scriptService)

	revisionService := services.NewRevisionService()
	container.Register("revision", revisionService)

	// 应用层服务
	projectService := services.NewProjectService(fileStorage, scriptService, revisionService)
	container.Register("project", projectService)

	agentService := services.NewAgentService(llmService)
	container.Register("agent", agentService)

	configService := services.NewConfigService(llmService)
	container.Register("config", configService)

	utils.GetLogger().Infof("服务初始化完成，共注册%d个服务", len(container.GetNames()))
	return nil
}
