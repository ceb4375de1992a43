// internal/services/config_service.go
package services

import (
	"errors"
	"sync"
	"time"

	"github.com/byqzydy/story-ad-sub000/internal/config"
	"github.com/byqzydy/story-ad-sub000/internal/llm"
)

// ConfigService 提供运行期配置管理功能
type ConfigService struct {
	// 缓存最近获取的配置，减少反复访问底层存储
	cachedConfig *config.AppConfig
	lastUpdated  time.Time

	// LLM服务引用，配置变更后热切换提供者
	LLMService *LLMService

	mu sync.RWMutex
}

// NewConfigService 创建配置服务实例
func NewConfigService(llmService *LLMService) *ConfigService {
	return &ConfigService{
		cachedConfig: config.GetCurrentConfig(),
		lastUpdated:  time.Now(),
		LLMService:   llmService,
	}
}

// GetCurrentConfig 获取当前配置
func (s *ConfigService) GetCurrentConfig() *config.AppConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.cachedConfig == nil {
		s.cachedConfig = config.GetCurrentConfig()
	}
	return s.cachedConfig
}

// GetLLMStatus 返回LLM相关的运行状态
func (s *ConfigService) GetLLMStatus() map[string]interface{} {
	cfg := s.GetCurrentConfig()

	status := map[string]interface{}{
		"provider":            cfg.LLMProvider,
		"available_providers": llm.ListProviders(),
		"ready":               false,
		"ready_state":         "LLM服务未初始化",
	}
	if s.LLMService != nil {
		status["ready"] = s.LLMService.IsReady()
		status["ready_state"] = s.LLMService.ReadyState()
	}
	return status
}

// UpdateLLMConfig 更新LLM提供商和配置，并热切换底层提供者
func (s *ConfigService) UpdateLLMConfig(provider string, configMap map[string]string) error {
	if provider == "" {
		return errors.New("提供者名称不能为空")
	}

	if err := config.UpdateLLMConfig(provider, configMap); err != nil {
		return err
	}

	s.mu.Lock()
	s.cachedConfig = config.GetCurrentConfig()
	s.lastUpdated = time.Now()
	s.mu.Unlock()

	if s.LLMService != nil {
		return s.LLMService.UpdateProvider(provider, configMap)
	}
	return nil
}

// LastUpdated 返回配置最近一次变更时间
func (s *ConfigService) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}
